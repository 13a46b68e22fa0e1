package apperrors

import "errors"

var (
	ErrEventNotFound       = errors.New("event not found")
	ErrNoActiveEvent       = errors.New("no active event")
	ErrLocationNotFound    = errors.New("location not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInternalServerError = errors.New("internal server error")
)
