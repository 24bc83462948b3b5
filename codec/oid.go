package codec

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
)

// OID identifies a server type on the wire.
type OID uint32

// Unspecified stands for a missing type descriptor.
const Unspecified OID = 0

// Textual types.
const (
	CHAR    OID = pgtype.QCharOID
	NAME    OID = pgtype.NameOID
	TEXT    OID = pgtype.TextOID
	BPCHAR  OID = pgtype.BPCharOID
	VARCHAR OID = pgtype.VarcharOID
)

var oidNames = map[OID]string{
	CHAR:    "char",
	NAME:    "name",
	TEXT:    "text",
	BPCHAR:  "bpchar",
	VARCHAR: "varchar",
}

func (o OID) String() string {
	if n, ok := oidNames[o]; ok {
		return n
	}
	return fmt.Sprintf("oid(%d)", uint32(o))
}

// isTextual reports whether o is one of the character types whose text form
// is the raw string.
func isTextual(o OID) bool {
	switch o {
	case CHAR, NAME, TEXT, BPCHAR, VARCHAR:
		return true
	}
	return false
}
