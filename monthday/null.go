package monthday

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// NullMonthDay represents a MonthDay that may be null. It implements the
// sql.Scanner interface so it can be used as a scan destination, similar to
// sql.NullString.
type NullMonthDay struct {
	MonthDay MonthDay
	Valid    bool
}

// Scan implements the Scanner interface.
func (n *NullMonthDay) Scan(value any) error {
	if value == nil {
		n.MonthDay, n.Valid = MonthDay{}, false
		return nil
	}
	var err error
	switch s := value.(type) {
	case string:
		n.MonthDay, err = Parse(s)
	case []byte:
		n.MonthDay, err = Parse(string(s))
	case time.Time:
		n.MonthDay = FromTime(s)
	default:
		err = fmt.Errorf("unknown type %T for NullMonthDay", value)
	}
	n.Valid = err == nil
	return err
}

// Value implements the driver Valuer interface.
func (n NullMonthDay) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.MonthDay.String(), nil
}
