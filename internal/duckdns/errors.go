package duckdns

import "errors"

var (
	ErrStatusNotOK     = errors.New("HTTP status code is not valid")
	ErrInvalidResponse = errors.New("invalid response")
)
