package domain

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidImage      = errors.New("invalid image")
	ErrMissingToken      = errors.New("missing token")
	ErrProviderFailure   = errors.New("provider failure")
	ErrMalformedResponse = errors.New("malformed provider response")
	ErrEmptyResponse     = errors.New("empty provider response")
)
