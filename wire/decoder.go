package wire

import (
	"fmt"
	"io"

	"github.com/jackc/pgx/v5/pgproto3"
)

// Decoder reads column values of data row messages.
type Decoder struct {
	fe    *pgproto3.Frontend
	alloc Allocator
}

// NewDecoder returns a new Decoder that decodes messages read from src.
// Column values are stored in buffers taken from DefaultAllocator.
func NewDecoder(src io.Reader) *Decoder {
	return &Decoder{fe: pgproto3.NewFrontend(src, io.Discard), alloc: DefaultAllocator}
}

// SetReader replaces the underlying reader, next call to Decode methods will
// read from this
func (d *Decoder) SetReader(r io.Reader) {
	d.fe = pgproto3.NewFrontend(r, io.Discard)
}

// SetAllocator changes where column buffers come from.
func (d *Decoder) SetAllocator(a Allocator) {
	d.alloc = a
}

// Reset drops the underlying reader.
func (d *Decoder) Reset() {
	d.fe = nil
}

// DataRow reads the next message, which must be a data row, and copies its
// values into buffers. SQL NULL columns are nil.
func (d *Decoder) DataRow() ([]*Buffer, error) {
	if d.fe == nil {
		return nil, io.ErrClosedPipe
	}
	msg, err := d.fe.Receive()
	if err != nil {
		return nil, err
	}
	row, ok := msg.(*pgproto3.DataRow)
	if !ok {
		return nil, fmt.Errorf("wire: expected data row got %T", msg)
	}
	cols := make([]*Buffer, len(row.Values))
	for i, v := range row.Values {
		if v == nil {
			continue
		}
		b := d.alloc.Buffer()
		if _, err = b.Write(v); err != nil {
			for _, c := range cols[:i] {
				d.alloc.Release(c)
			}
			d.alloc.Release(b)
			return nil, err
		}
		cols[i] = b
	}
	return cols, nil
}
