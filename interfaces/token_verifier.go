package interfaces

import "context"

// TokenVerifier verifies a service JWT with the auth backend.
//
// Implemented by adapters/grpcclient.Client for the auth endpoint. Called from
// handlers.HTTPServer (POST /v1/verify-token).
//
//go:generate moq -stub -out mock/token_verifier.go -pkg mock . TokenVerifier
type TokenVerifier interface {
	// VerifyToken returns whether the token is valid and, when valid, the user ID it
	// belongs to. A transport failure is an error, not an invalid token.
	VerifyToken(ctx context.Context, token string) (bool, string, error)
}
