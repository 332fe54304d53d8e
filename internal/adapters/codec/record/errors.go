package record

import (
	"errors"
	"fmt"
)

var (
	ErrTooFewFields = errors.New("too few fields")
	ErrBadNumber    = errors.New("bad number")
	ErrBadFlag      = errors.New("bad flag")
	ErrBadRole      = errors.New("bad role")
)

// ParseError describes a persisted line that could not be decoded. Kind is
// one of the Err* sentinels above.
type ParseError struct {
	Kind  error
	Field string
	Line  string
	Err   error
}

func (e *ParseError) Error() string {
	msg := e.Kind.Error()
	if e.Field != "" {
		msg = fmt.Sprintf("%s in field %s", msg, e.Field)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}

	return msg
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}

	return []error{e.Kind, e.Err}
}

func tooFewFields(line string, got, want int) error {
	return &ParseError{
		Kind: ErrTooFewFields,
		Line: line,
		Err:  fmt.Errorf("got %d, want at least %d", got, want),
	}
}
