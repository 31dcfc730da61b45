package minefair

import (
	"fmt"
)

type DecodeErrorKind uint8

const (
	UnknownDecodeError DecodeErrorKind = iota
	// A header field ended before its 4 bytes were read.
	TruncatedRecord
	// The file ended inside a record's cells.
	TruncatedPayload
	// width * height is negative, NaN or infinite.
	InvalidDimensions
)

func (k DecodeErrorKind) String() string {
	switch k {
	case TruncatedRecord:
		return "truncated record"
	case TruncatedPayload:
		return "truncated payload"
	case InvalidDimensions:
		return "invalid dimensions"
	default:
		return "unknown decode error"
	}
}

// DecodeError reports a record that could not be decoded.  Scans return it
// unwrapped so callers can switch on Kind.
type DecodeError struct {
	Kind   DecodeErrorKind
	Index  int
	Offset int64
	Field  string
	Err    error
}

func (e *DecodeError) Error() string {
	msg := fmt.Sprintf("record %d at offset %d: %v", e.Index, e.Offset, e.Kind)
	if e.Field != "" {
		msg += " (" + e.Field + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsDecodeError returns whether err is a *DecodeError of the given kind.
func IsDecodeError(err error, kind DecodeErrorKind) bool {
	e, ok := err.(*DecodeError)
	return ok && e.Kind == kind
}
