package monthday

import (
	"errors"
	"fmt"
	"time"
)

// textLen is the length of the canonical --MM-DD form.
const textLen = 7

var (
	// ErrSyntax is returned when the text does not follow --MM-DD.
	ErrSyntax = errors.New("invalid syntax")

	errUnparsedText = errors.New("unparsed text found")
)

// ParseError records a failed parse. Pos is the byte index at which parsing
// stopped. Range errors report index 0.
type ParseError struct {
	Text string
	Pos  int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("monthday: text %q could not be parsed at index %d: %v", e.Text, e.Pos, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse parses text in the --MM-DD form, with exactly two digits for the
// month and the day.
func Parse(text string) (MonthDay, error) {
	var month, day int
	for i := 0; i < textLen; i++ {
		if i >= len(text) {
			return MonthDay{}, &ParseError{Text: text, Pos: syntaxPos(i), Err: ErrSyntax}
		}
		c := text[i]
		switch i {
		case 0, 1, 4:
			if c != '-' {
				return MonthDay{}, &ParseError{Text: text, Pos: syntaxPos(i), Err: ErrSyntax}
			}
		default:
			if c < '0' || c > '9' {
				return MonthDay{}, &ParseError{Text: text, Pos: syntaxPos(i), Err: ErrSyntax}
			}
			if i < 4 {
				month = month*10 + int(c-'0')
			} else {
				day = day*10 + int(c-'0')
			}
		}
	}
	if len(text) > textLen {
		return MonthDay{}, &ParseError{Text: text, Pos: textLen, Err: errUnparsedText}
	}
	m, err := Of(time.Month(month), day)
	if err != nil {
		return MonthDay{}, &ParseError{Text: text, Pos: 0, Err: err}
	}
	return m, nil
}

// syntaxPos maps the failing byte to the start of the field it belongs to.
func syntaxPos(i int) int {
	switch i {
	case 1:
		return 0
	case 3:
		return 2
	case 6:
		return 5
	}
	return i
}
