package service

import "errors"

var (
	ErrInvalid = errors.New("invalid")
)
