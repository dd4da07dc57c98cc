package notation

import (
	"errors"
	"fmt"
)

// ErrUnrecognizedColorFormat matches every *UnrecognizedColorFormatError with errors.Is.
var ErrUnrecognizedColorFormat = errors.New("unrecognized color format")

// ErrUnknownFormat is returned by ParseFormat for names outside the registry.
var ErrUnknownFormat = errors.New("unknown color format")

// UnrecognizedColorFormatError is returned by Parse when no matcher accepts the input.
// Input is the text as given, before trimming.
type UnrecognizedColorFormatError struct {
	Input string
}

func (e *UnrecognizedColorFormatError) Error() string {
	return fmt.Sprintf("%v: %q", ErrUnrecognizedColorFormat, e.Input)
}

func (e *UnrecognizedColorFormatError) Is(target error) bool {
	return target == ErrUnrecognizedColorFormat
}
