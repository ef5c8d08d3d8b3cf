package client

import "errors"

var (
	ErrUnavailable        = errors.New("server unavailable")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrRejected           = errors.New("request rejected")
	ErrUnexpectedResponse = errors.New("unexpected response")
	ErrProfileNotFound    = errors.New("profile not found")
)
