package service

import (
	"context"
	"fmt"
	"time"

	"hrvalidation/domain"
	"hrvalidation/helpers"
	"hrvalidation/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// GatewayConfig is the explicit, per-instance configuration of a Gateway. Enabled is a
// constructed field rather than ambient process state so multiple gateways (e.g. per
// test) do not interfere.
type GatewayConfig struct {
	// Enabled turns remote validation on. When false every Validate call returns a
	// valid result with empty attributes and no transport call is made.
	Enabled bool
	// MaxAttempts bounds transport attempts per lookup (definitive answers never retry).
	MaxAttempts int
	// RetryDelay is the fixed pause between transport attempts.
	RetryDelay time.Duration
	// CacheTTL bounds how long a definitive result may be served from cache.
	CacheTTL time.Duration
}

// Gateway is the core orchestrator: for a (service, kind, id) triple it consults the
// result cache, otherwise runs the retry policy over the service's transport,
// classifies the outcome into valid / not-found / inactive / unavailable, caches
// definitive results and returns the classification. It is the only place
// classification happens; adapters above it only translate results into field errors.
//
// Implements interfaces.Validator. Safe for concurrent use: the cache is the only
// shared mutable state and its implementations are concurrency-safe.
type Gateway struct {
	transports map[domain.ServiceName]interfaces.Transport
	cache      interfaces.ResultCache
	cfg        GatewayConfig
	logger     log.Logger
}

// NewGateway creates a Gateway over the given per-service transports and cache.
// Panics on nil transports, cache or logger (fail-fast at startup).
//
// Parameters: transports — one Transport per sibling service; cache — result cache
// (memcache or myredis adapter); cfg — explicit gateway configuration; logger — base logger.
//
// Called from cmd/main when building the service.
func NewGateway(
	transports map[domain.ServiceName]interfaces.Transport,
	cache interfaces.ResultCache,
	cfg GatewayConfig,
	logger log.Logger,
) *Gateway {
	return &Gateway{
		transports: helpers.NilPanic(transports, "service.gateway.go: transports are required"),
		cache:      helpers.NilPanic(cache, "service.gateway.go: cache is required"),
		cfg:        cfg,
		logger:     log.WithPrefix(helpers.NilPanic(logger, "service.gateway.go: logger is required"), "component", "gateway"),
	}
}

// Validate classifies one ID per the gateway algorithm: disabled gateway → valid with
// empty attributes; cache hit → cached result (including cached invalid ones); cache
// miss → retrying lookup over the service transport, classification, and caching of
// definitive results. Unavailable results are never cached so a later check can succeed.
//
// Returns a ValidationResult; transport failures surface as StatusUnavailable, never
// as an error or panic.
//
// Called from FieldValidators and handlers.HTTPServer.
func (g *Gateway) Validate(ctx context.Context, service domain.ServiceName, kind domain.EntityKind, id string) domain.ValidationResult {
	if !g.cfg.Enabled {
		return domain.ValidationResult{Status: domain.StatusValid, Attributes: domain.Attributes{}}
	}

	key := domain.CacheKey{Service: service, Kind: kind, ID: id}
	if cached, ok := g.cacheGet(ctx, key); ok {
		return cached
	}

	transport, ok := g.transports[service]
	if !ok {
		return g.classify(service, kind, id, domain.LookupOutcome{}, fmt.Errorf("no transport configured for service %q", service))
	}

	outcome, err := WithRetries(ctx, g.cfg.MaxAttempts, g.cfg.RetryDelay, func(ctx context.Context) (domain.LookupOutcome, error) {
		return transport.Lookup(ctx, kind, id)
	})
	result := g.classify(service, kind, id, outcome, err)
	g.cachePut(ctx, key, result)
	return result
}

// ValidateMany classifies several IDs of one kind: cached results are reused, the
// remainder goes through one retrying LookupMany call, and each ID gets its own
// result — partial success is normal. On transport failure every uncached ID is
// marked unavailable.
//
// Called from FieldValidators bulk validation and handlers.HTTPServer.
func (g *Gateway) ValidateMany(ctx context.Context, service domain.ServiceName, kind domain.EntityKind, ids []string) map[string]domain.ValidationResult {
	results := make(map[string]domain.ValidationResult, len(ids))
	if !g.cfg.Enabled {
		for _, id := range ids {
			results[id] = domain.ValidationResult{Status: domain.StatusValid, Attributes: domain.Attributes{}}
		}
		return results
	}

	missing := make([]string, 0, len(ids))
	queued := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, seen := results[id]; seen {
			continue
		}
		if _, seen := queued[id]; seen {
			continue
		}
		key := domain.CacheKey{Service: service, Kind: kind, ID: id}
		if cached, ok := g.cacheGet(ctx, key); ok {
			results[id] = cached
			continue
		}
		missing = append(missing, id)
		queued[id] = struct{}{}
	}
	if len(missing) == 0 {
		return results
	}

	transport, ok := g.transports[service]
	if !ok {
		err := fmt.Errorf("no transport configured for service %q", service)
		for _, id := range missing {
			results[id] = g.classify(service, kind, id, domain.LookupOutcome{}, err)
		}
		return results
	}

	outcomes, err := WithRetries(ctx, g.cfg.MaxAttempts, g.cfg.RetryDelay, func(ctx context.Context) (map[string]domain.LookupOutcome, error) {
		return transport.LookupMany(ctx, kind, missing)
	})
	for _, id := range missing {
		if err != nil {
			results[id] = g.classify(service, kind, id, domain.LookupOutcome{}, err)
			continue
		}
		result := g.classify(service, kind, id, outcomes[id], nil)
		results[id] = result
		g.cachePut(ctx, domain.CacheKey{Service: service, Kind: kind, ID: id}, result)
	}
	return results
}

// Invalidate drops the cached result for one ID. Exposed so callers that just created
// a remote entity can clear a stale negative entry before re-validating.
func (g *Gateway) Invalidate(ctx context.Context, service domain.ServiceName, kind domain.EntityKind, id string) error {
	return g.cache.Invalidate(ctx, domain.CacheKey{Service: service, Kind: kind, ID: id})
}

// classify turns a lookup outcome (or transport error) into a ValidationResult with
// the user-facing message for every non-valid status.
//
// Called from Validate and ValidateMany only.
func (g *Gateway) classify(service domain.ServiceName, kind domain.EntityKind, id string, outcome domain.LookupOutcome, err error) domain.ValidationResult {
	if err != nil {
		level.Warn(g.logger).Log(
			"msg", "lookup failed after retries",
			"service", service,
			"kind", kind,
			"id", id,
			"err", err,
		)
		return domain.ValidationResult{
			Status:  domain.StatusUnavailable,
			Message: fmt.Sprintf("Unable to validate %s ID - %s service is unavailable", kind, service),
		}
	}
	if !outcome.Exists {
		return domain.ValidationResult{
			Status:  domain.StatusNotFound,
			Message: fmt.Sprintf("%s with ID '%s' does not exist in the %s service", kind.Display(), id, service),
		}
	}
	if !outcome.Active {
		return domain.ValidationResult{
			Status:     domain.StatusInactive,
			Attributes: outcome.Attributes,
			Message:    fmt.Sprintf("%s with ID '%s' is not active", kind.Display(), id),
		}
	}
	return domain.ValidationResult{Status: domain.StatusValid, Attributes: outcome.Attributes}
}

// cacheGet reads the cache, treating backend errors as a miss (logged, not propagated).
func (g *Gateway) cacheGet(ctx context.Context, key domain.CacheKey) (domain.ValidationResult, bool) {
	result, ok, err := g.cache.Get(ctx, key)
	if err != nil {
		level.Warn(g.logger).Log("msg", "cache get failed", "key", key.String(), "err", err)
		return domain.ValidationResult{}, false
	}
	return result, ok
}

// cachePut stores definitive results only; unavailable results must not shadow a later
// successful check. Backend errors are logged and swallowed.
func (g *Gateway) cachePut(ctx context.Context, key domain.CacheKey, result domain.ValidationResult) {
	if !result.Definitive() {
		return
	}
	if err := g.cache.Put(ctx, key, result, g.cfg.CacheTTL); err != nil {
		level.Warn(g.logger).Log("msg", "cache put failed", "key", key.String(), "err", err)
	}
}
