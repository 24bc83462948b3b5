package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is matched by every error caused by a caller passing
	// a missing or unsupported argument.
	ErrInvalidArgument = errors.New("codec: invalid argument")

	// ErrNoCodec is returned by the Registry when no codec handles a request.
	ErrNoCodec = errors.New("codec: no codec found")
)

// ArgumentError reports a required argument that was missing.
type ArgumentError struct {
	Name string
}

func (e *ArgumentError) Error() string {
	return e.Name + " must not be null"
}

func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func notNull(name string) error {
	return &ArgumentError{Name: name}
}

func unsupported(value any) error {
	return fmt.Errorf("%w: cannot encode %T", ErrInvalidArgument, value)
}
