package service

import "errors"

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrBadObjectID  = errors.New("malformed object id")
	ErrMissingField = errors.New("missing required field")
)
