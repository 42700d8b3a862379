package tstruct

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedStream matches every *MalformedStreamError via errors.Is.
var ErrMalformedStream = errors.New("malformed stream")

// MalformedStreamError reports wire-level damage: truncation, an invalid type
// code where a concrete value is expected, a bad length or excessive nesting.
type MalformedStreamError struct {
	Off int64
	Msg string
	Err error
}

func malformedf(off int64, err error, format string, args ...any) error {
	return &MalformedStreamError{off, fmt.Sprintf(format, args...), err}
}

func (e *MalformedStreamError) Unwrap() error {
	return e.Err
}

func (e *MalformedStreamError) Is(target error) bool {
	return target == ErrMalformedStream
}

func (e *MalformedStreamError) Error() string {
	var buf strings.Builder
	buf.WriteString("malformed stream")
	if e.Off >= 0 {
		fmt.Fprintf(&buf, " at offset %d", e.Off)
	}
	if e.Msg != "" {
		buf.WriteString(": ")
		buf.WriteString(e.Msg)
	}
	if e.Err != nil {
		buf.WriteString(": ")
		buf.WriteString(e.Err.Error())
	}
	return buf.String()
}

// UnknownFieldError is returned by reflective access with a tag or name that
// the struct does not declare.
type UnknownFieldError struct {
	Struct string
	Tag    int16
	Name   string
}

func (e *UnknownFieldError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s: unknown field %q", e.Struct, e.Name)
	}
	return fmt.Sprintf("%s: unknown field tag %d", e.Struct, e.Tag)
}

// TypeMismatchError is returned when a reflective set supplies a value whose Go
// type does not match the field's declared kind.
type TypeMismatchError struct {
	Struct string
	Field  string
	Want   Kind
	Got    string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s.%s: type mismatch: got %s, wanted %v", e.Struct, e.Field, e.Got, e.Want)
}

// MissingRequiredFieldError names the first REQUIRED field, in declaration
// order, that holds no value.
type MissingRequiredFieldError struct {
	Struct string
	Tag    int16
	Name   string
}

func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("%s: required field %s (tag %d) is not set", e.Struct, e.Name, e.Tag)
}
