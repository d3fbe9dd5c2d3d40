package grpcclient

import (
	"context"
	"fmt"
	"time"

	"hrvalidation/domain"
	"hrvalidation/helpers"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

// defaultTimeout bounds one remote attempt when the endpoint does not configure one.
const defaultTimeout = 5 * time.Second

// Client implements interfaces.Transport (and, for the auth endpoint,
// interfaces.TokenVerifier) over one long-lived gRPC channel. The channel is created
// lazily by grpc.NewClient, so construction never blocks on the network; dial failures
// surface as transport errors on the first call. Definitive remote answers — including
// a NOT_FOUND status — are LookupOutcomes; everything else (connection refused,
// deadline exceeded, internal errors, malformed responses) is returned as an error and
// never panics past this boundary.
type Client struct {
	endpoint    domain.ServiceEndpoint
	methods     map[domain.EntityKind]MethodSet
	tokenMethod string // empty when the service has no VerifyToken RPC
	conn        *grpc.ClientConn
	logger      log.Logger
}

// NewAuthClient creates the transport for the auth backend (employees, users,
// branches, token verification).
//
// Called from cmd/main at startup.
func NewAuthClient(endpoint domain.ServiceEndpoint, logger log.Logger) (*Client, error) {
	return New(endpoint, AuthMethods(), authVerifyTokenMethod, logger)
}

// NewDepartmentClient creates the transport for the department backend (departments,
// sub-departments).
//
// Called from cmd/main at startup.
func NewDepartmentClient(endpoint domain.ServiceEndpoint, logger log.Logger) (*Client, error) {
	return New(endpoint, DepartmentMethods(), "", logger)
}

// New creates a transport for one endpoint with an explicit method table. Sibling
// services are reached inside the mesh, so the channel uses insecure credentials and
// the registered JSON codec as default content-subtype. Panics on nil methods or
// logger, errors on an unresolvable target.
//
// Parameters: endpoint — host/port/timeout of the service; methods — kind → RPC names;
// tokenMethod — VerifyToken RPC name or empty; logger — base logger.
//
// Called from NewAuthClient, NewDepartmentClient and transport tests.
func New(endpoint domain.ServiceEndpoint, methods map[domain.EntityKind]MethodSet, tokenMethod string, logger log.Logger) (*Client, error) {
	helpers.StrPanic(endpoint.Host, "adapters.grpcclient.client.go: endpoint host is required")
	conn, err := grpc.NewClient(
		endpoint.Address(),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(CodecName)),
	)
	if err != nil {
		return nil, fmt.Errorf("dial %s service at %s: %w", endpoint.Name, endpoint.Address(), err)
	}
	return &Client{
		endpoint:    endpoint,
		methods:     helpers.NilPanic(methods, "adapters.grpcclient.client.go: methods are required"),
		tokenMethod: tokenMethod,
		conn:        conn,
		logger:      log.WithPrefix(helpers.NilPanic(logger, "adapters.grpcclient.client.go: logger is required"), "component", "grpcclient", "service", endpoint.Name),
	}, nil
}

// Lookup checks one ID via the kind's Validate RPC with the endpoint's per-attempt
// deadline. A NOT_FOUND status and an exists=false response body both map to a
// NotFound outcome (the remote services use either form); any other RPC error is a
// transport error for the retry policy.
//
// Called from service.Gateway.Validate via service.WithRetries.
func (c *Client) Lookup(ctx context.Context, kind domain.EntityKind, id string) (domain.LookupOutcome, error) {
	ms, ok := c.methods[kind]
	if !ok {
		return domain.LookupOutcome{}, fmt.Errorf("entity kind %q is not served by the %s service", kind, c.endpoint.Name)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout())
	defer cancel()

	var resp validateResponse
	if err := c.conn.Invoke(ctx, ms.Validate, &validateRequest{ID: id}, &resp); err != nil {
		if status.Code(err) == codes.NotFound {
			return domain.LookupOutcome{}, nil
		}
		level.Debug(c.logger).Log("msg", "validate call failed", "kind", kind, "id", id, "err", err)
		return domain.LookupOutcome{}, fmt.Errorf("validate %s %q: %w", kind, id, err)
	}
	if !resp.Exists {
		return domain.LookupOutcome{Message: resp.Message}, nil
	}
	attrs := domain.Attributes(resp.Record)
	return domain.LookupOutcome{
		Exists:     true,
		Active:     attrs.IsActive(),
		Attributes: attrs,
		Message:    resp.Message,
	}, nil
}

// LookupMany checks several IDs in one batch RPC when the kind has one, otherwise it
// loops Lookup per ID. Records returned by the batch map to found outcomes; requested
// IDs missing from the response map to NotFound. Partial success is normal.
//
// Called from service.Gateway.ValidateMany via service.WithRetries.
func (c *Client) LookupMany(ctx context.Context, kind domain.EntityKind, ids []string) (map[string]domain.LookupOutcome, error) {
	ms, ok := c.methods[kind]
	if !ok {
		return nil, fmt.Errorf("entity kind %q is not served by the %s service", kind, c.endpoint.Name)
	}

	outcomes := make(map[string]domain.LookupOutcome, len(ids))
	if ms.Batch == "" {
		for _, id := range ids {
			outcome, err := c.Lookup(ctx, kind, id)
			if err != nil {
				return nil, err
			}
			outcomes[id] = outcome
		}
		return outcomes, nil
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout())
	defer cancel()

	var resp getManyResponse
	if err := c.conn.Invoke(callCtx, ms.Batch, &getManyRequest{IDs: ids}, &resp); err != nil {
		level.Debug(c.logger).Log("msg", "batch call failed", "kind", kind, "count", len(ids), "err", err)
		return nil, fmt.Errorf("batch lookup of %d %s ids: %w", len(ids), kind, err)
	}

	found := make(map[string]domain.Attributes, len(resp.Records))
	for _, record := range resp.Records {
		attrs := domain.Attributes(record)
		if recordID := attrs.ID(); recordID != "" {
			found[recordID] = attrs
		}
	}
	for _, id := range ids {
		attrs, ok := found[id]
		if !ok {
			outcomes[id] = domain.LookupOutcome{}
			continue
		}
		outcomes[id] = domain.LookupOutcome{
			Exists:     true,
			Active:     attrs.IsActive(),
			Attributes: attrs,
		}
	}
	return outcomes, nil
}

// VerifyToken asks the auth backend to verify a service JWT. Services without a
// VerifyToken RPC return an error.
//
// Called from handlers.HTTPServer (POST /v1/verify-token).
func (c *Client) VerifyToken(ctx context.Context, token string) (bool, string, error) {
	if c.tokenMethod == "" {
		return false, "", fmt.Errorf("token verification is not supported by the %s service", c.endpoint.Name)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout())
	defer cancel()

	var resp verifyTokenResponse
	if err := c.conn.Invoke(ctx, c.tokenMethod, &verifyTokenRequest{Token: token}, &resp); err != nil {
		return false, "", fmt.Errorf("verify token: %w", err)
	}
	return resp.Valid, resp.UserID, nil
}

// Close releases the channel. Idempotent per grpc.ClientConn semantics.
func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) timeout() time.Duration {
	if c.endpoint.Timeout > 0 {
		return c.endpoint.Timeout
	}
	return defaultTimeout
}
