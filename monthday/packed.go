package monthday

import "time"

const (
	DayShift   = 0
	MonthShift = 8

	OneByteMask = 0xFF
)

// Pack returns m as month<<MonthShift | day. Packed values order the same
// way as the month-days they encode.
func Pack(m MonthDay) int32 {
	return (int32(m.month) << MonthShift) |
		(int32(m.day) << DayShift)
}

// Unpack reverses Pack. The result is validated like Of.
func Unpack(encoded int32) (MonthDay, error) {
	day := int((encoded >> DayShift) & OneByteMask)
	month := time.Month((encoded >> MonthShift) & OneByteMask)

	return Of(month, day)
}
