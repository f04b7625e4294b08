package auth

import "context"

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT whose subject is the given
	// username. Returns the token string or an error if signing fails.
	GenerateToken(ctx context.Context, username string) (string, error)

	// ExtractUsername parses the token, verifies its signature and time
	// claims, and returns the subject. Returns ErrExpiredToken if the
	// token is past its expiration, ErrInvalidToken for any other
	// parse or signature failure.
	ExtractUsername(ctx context.Context, tokenString string) (string, error)

	// ValidateToken reports whether the token's subject equals
	// expectedUsername and the token has not expired. Any parse failure
	// yields false.
	ValidateToken(ctx context.Context, tokenString, expectedUsername string) bool
}
