package lzw

import (
	"fmt"

	"github.com/pkg/errors"
)

// CodeWidthError reports an initial code width outside the range a
// variant supports.
type CodeWidthError struct {
	Width int
}

func (e *CodeWidthError) Error() string {
	return fmt.Sprintf("lzw: unsupported code width %d", e.Width)
}

// UnexpectedByteError reports an input byte that cannot be represented by
// the variant's root alphabet.
type UnexpectedByteError struct {
	Value byte
	Width int
}

func (e *UnexpectedByteError) Error() string {
	return fmt.Sprintf("lzw: byte %d exceeds alphabet for code width %d", e.Value, e.Width)
}

// UnexpectedCodeError reports a decoded code greater than the next code
// the decoder expects to install.
type UnexpectedCodeError struct {
	Code uint16
}

func (e *UnexpectedCodeError) Error() string {
	return fmt.Sprintf("lzw: unexpected code %d", e.Code)
}

// ErrMissingClear is returned when the dictionary has saturated and the
// following code is neither CLEAR nor EOI.
var ErrMissingClear = errors.New("lzw: missing clear code")

// errClosed is returned by Read after Close, matching compress/lzw's
// reader Close behavior.
var errClosed = errors.New("lzw: reader is closed")
