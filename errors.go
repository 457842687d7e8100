package twist

import (
	errorutil "github.com/projectdiscovery/utils/errors"
)

// ParseErrorKind identifies which validation step of Domain parsing failed.
type ParseErrorKind string

const (
	EmptyInput    ParseErrorKind = "EmptyInput"
	InvalidSuffix ParseErrorKind = "InvalidSuffix"
	InvalidLabel  ParseErrorKind = "InvalidLabel"
)

// ParseError is returned by New when an input FQDN fails validation.
// Permutation generators never return this type: a candidate that would
// fail these checks is silently dropped by the dispatcher instead.
type ParseError struct {
	Kind  ParseErrorKind
	Input string
	err   error
}

func (e *ParseError) Error() string {
	return e.err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.err
}

func newParseError(kind ParseErrorKind, input, msg string) *ParseError {
	return &ParseError{
		Kind:  kind,
		Input: input,
		err:   errorutil.NewWithTag("twist", "%v: %v (input=%q)", kind, msg, input),
	}
}
