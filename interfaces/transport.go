package interfaces

import (
	"context"

	"hrvalidation/domain"
)

// Transport performs remote lookups against one sibling service. A definitive answer
// (found / not found) is returned as a LookupOutcome with nil error; any connection
// failure, deadline or malformed response is returned as a non-nil error and never
// panics past this boundary. The retry policy in service.WithRetries retries only the
// error path.
//
// Implemented by adapters/grpcclient.Client. Called from service.Gateway on cache miss.
//
//go:generate moq -stub -out mock/transport.go -pkg mock . Transport
type Transport interface {
	// Lookup checks a single ID of the given kind.
	// Returns: (outcome, nil) on a definitive remote answer, including "does not exist";
	// (zero, error) on transport failure (dial, deadline, non-NotFound status).
	// Called from service.Gateway.Validate via the retry policy.
	Lookup(ctx context.Context, kind domain.EntityKind, id string) (domain.LookupOutcome, error)

	// LookupMany checks several IDs in one remote call when the kind has a batch
	// method, falling back to a per-ID loop otherwise. Partial results are normal:
	// IDs absent on the remote side map to a NotFound outcome.
	// Returns: (map id → outcome, nil) on success; (nil, error) on transport failure.
	// Called from service.Gateway.ValidateMany via the retry policy.
	LookupMany(ctx context.Context, kind domain.EntityKind, ids []string) (map[string]domain.LookupOutcome, error)

	// Close releases the underlying channel. Idempotent.
	Close() error
}
