package domain

// ResultStatus classifies a validation outcome.
type ResultStatus string

const (
	// StatusValid — the ID exists and is active.
	StatusValid ResultStatus = "valid"
	// StatusNotFound — the remote service says the ID does not exist (definitive, cacheable).
	StatusNotFound ResultStatus = "not_found"
	// StatusInactive — the ID exists but is flagged inactive (definitive, cacheable).
	StatusInactive ResultStatus = "inactive"
	// StatusUnavailable — transport/timeout failure after retries (transient, never cached).
	StatusUnavailable ResultStatus = "unavailable"
)

// ValidationResult is the classified outcome of validating one ID. Every non-valid
// result carries a human-readable Message naming the entity kind and the offending ID.
type ValidationResult struct {
	Status     ResultStatus `json:"status"`
	Attributes Attributes   `json:"attributes,omitempty"`
	Message    string       `json:"message,omitempty"`
}

// Valid reports whether the ID passed validation.
func (r ValidationResult) Valid() bool {
	return r.Status == StatusValid
}

// Definitive reports whether the result may be cached. Unavailable results are
// transient and must not mask a later successful check.
func (r ValidationResult) Definitive() bool {
	return r.Status == StatusValid || r.Status == StatusNotFound || r.Status == StatusInactive
}
