package wire

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
)

// Format is the wire sub-format of a column value or bind parameter.
type Format int16

// Formats understood by the server.
const (
	TextFormat   Format = pgtype.TextFormatCode
	BinaryFormat Format = pgtype.BinaryFormatCode
)

func (f Format) String() string {
	switch f {
	case TextFormat:
		return "text"
	case BinaryFormat:
		return "binary"
	}
	return fmt.Sprintf("format(%d)", int16(f))
}
