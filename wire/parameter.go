package wire

import "fmt"

// NullValue is the payload of a parameter that carries no value. It is
// compared by identity and is never equal to an empty buffer. Do not write
// to it.
var NullValue = &Buffer{}

// Parameter is one encoded bind parameter: its sub-format, the OID of the
// type the server should assume and the payload.
type Parameter struct {
	Format Format
	Type   uint32
	Value  *Buffer
}

// NewParameter returns a Parameter. A nil value is stored as NullValue.
func NewParameter(format Format, oid uint32, value *Buffer) Parameter {
	if value == nil {
		value = NullValue
	}
	return Parameter{Format: format, Type: oid, Value: value}
}

// IsNull reports whether p carries the null sentinel.
func (p Parameter) IsNull() bool {
	return p.Value == NullValue
}

func (p Parameter) String() string {
	if p.IsNull() {
		return fmt.Sprintf("Parameter{format=%s, type=%d, value=NULL}", p.Format, p.Type)
	}
	return fmt.Sprintf("Parameter{format=%s, type=%d, value=%q}", p.Format, p.Type, p.Value.Bytes())
}
