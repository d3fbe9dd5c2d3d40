package interfaces

import (
	"context"

	"hrvalidation/domain"
)

// Validator is the gateway contract consumed by the field validator adapters and the
// HTTP handlers. Validate never returns an error: transport failures are classified
// into a StatusUnavailable result so callers can tell "bad data" from "dependency down".
//
// Implemented by service.Gateway.
//
//go:generate moq -stub -out mock/validator.go -pkg mock . Validator
type Validator interface {
	// Validate classifies one ID of the given kind against the given service.
	// Called from service.FieldValidators and handlers.HTTPServer.
	Validate(ctx context.Context, service domain.ServiceName, kind domain.EntityKind, id string) domain.ValidationResult

	// ValidateMany classifies several IDs, one result per ID (partial success is
	// representable; a transport failure marks every remaining ID unavailable).
	ValidateMany(ctx context.Context, service domain.ServiceName, kind domain.EntityKind, ids []string) map[string]domain.ValidationResult

	// Invalidate drops the cached result for one ID, e.g. after a remote entity was
	// just created and a stale negative entry must not shadow it.
	Invalidate(ctx context.Context, service domain.ServiceName, kind domain.EntityKind, id string) error
}
