// Package domain contains the core types of the validation gateway: service and
// entity-kind identifiers, remote endpoints, lookup outcomes and validation results.
package domain

import (
	"fmt"
	"time"
)

// ServiceName identifies a sibling microservice authoritative for one or more entity kinds.
type ServiceName string

const (
	// ServiceAuth is the auth backend (employees, users, branches).
	ServiceAuth ServiceName = "auth"
	// ServiceDepartment is the department backend (departments, sub-departments).
	ServiceDepartment ServiceName = "department"
)

// EntityKind is the category of identifier being validated.
type EntityKind string

const (
	KindEmployee      EntityKind = "employee"
	KindUser          EntityKind = "user"
	KindBranch        EntityKind = "branch"
	KindDepartment    EntityKind = "department"
	KindSubDepartment EntityKind = "sub-department"
)

// Display returns the entity kind as it appears in user-facing validation messages
// (e.g. "Employee", "Sub-department").
func (k EntityKind) Display() string {
	switch k {
	case KindEmployee:
		return "Employee"
	case KindUser:
		return "User"
	case KindBranch:
		return "Branch"
	case KindDepartment:
		return "Department"
	case KindSubDepartment:
		return "Sub-department"
	default:
		return string(k)
	}
}

// ServiceEndpoint describes how to reach one sibling service. Built once at startup
// from configuration and read-only afterwards.
type ServiceEndpoint struct {
	Name    ServiceName
	Host    string
	Port    int
	Timeout time.Duration // per-attempt deadline for one remote call
}

// Address returns "host:port" for dialing.
func (e ServiceEndpoint) Address() string {
	return fmt.Sprintf("%s:%d", e.Host, e.Port)
}

// Attributes is the record attached to a found entity (id, name, is_active,
// created_at, ... — the exact set is owned by the remote service).
type Attributes map[string]any

// ID returns the record's "id" attribute, or empty string when absent.
func (a Attributes) ID() string {
	if v, ok := a["id"].(string); ok {
		return v
	}
	return ""
}

// IsActive reports whether the record carries is_active=true. Records without the
// flag count as active, matching the remote services' contract.
func (a Attributes) IsActive() bool {
	if v, ok := a["is_active"].(bool); ok {
		return v
	}
	return true
}

// LookupOutcome is the raw result of one remote lookup. A transport failure is not an
// outcome: adapters return it as a separate error so the retry policy can tell
// definitive answers from transient ones.
type LookupOutcome struct {
	Exists     bool
	Active     bool
	Attributes Attributes
	Message    string // remote-provided detail, may be empty
}

// CacheKey identifies one cached validation result.
type CacheKey struct {
	Service ServiceName
	Kind    EntityKind
	ID      string
}

// String renders the key as "service:kind:id" (used as redis key suffix).
func (k CacheKey) String() string {
	return string(k.Service) + ":" + string(k.Kind) + ":" + k.ID
}
