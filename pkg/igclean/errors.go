package igclean

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDomain = errors.New("please enter a valid Instagram URL")
	ErrMalformedURL  = errors.New("invalid URL format, please check the URL")
	ErrParse         = errors.New("parse url")

	errNotAbsolute = errors.New("url is not absolute")
)

// ParseError is returned by CleanInstagramURL when its input cannot be
// parsed as an absolute URL.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse url %q: %v", e.Input, e.Err)
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MalformedURLError wraps a cleaning failure on input that passed validation.
type MalformedURLError struct {
	Err error
}

func (e *MalformedURLError) Error() string {
	return ErrMalformedURL.Error()
}

func (e *MalformedURLError) Is(target error) bool {
	return target == ErrMalformedURL
}

func (e *MalformedURLError) Unwrap() error {
	return e.Err
}
