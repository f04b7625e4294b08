package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token structure is invalid or the
	// signature doesn't match
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired
	ErrExpiredToken = errors.New("authentication token has expired")
)
