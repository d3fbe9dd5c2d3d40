// Package handlers contains the HTTP surface of the validation gateway, so sibling
// services without a Go client can reuse it as a sidecar API.
package handlers

import (
	"fmt"
	"net/http"

	"hrvalidation/domain"
	"hrvalidation/helpers"
	"hrvalidation/interfaces"
	"hrvalidation/service"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
)

// HTTPServer exposes the gateway over HTTP. Definitive validation results (valid,
// not-found, inactive) are data and served with 200 so callers can inspect the
// classification; an unavailable dependency is an error and maps to 503 via the
// service error handler.
type HTTPServer struct {
	validator     interfaces.Validator
	verifier      interfaces.TokenVerifier
	kindToService map[domain.EntityKind]domain.ServiceName
	logger        log.Logger
}

// NewHTTPServer creates the HTTP surface. Panics on nil validator, verifier,
// kindToService or logger.
//
// Parameters: validator — the gateway; verifier — auth transport for token checks;
// kindToService — which service is authoritative for each entity kind; logger — base logger.
//
// Called from cmd/main.
func NewHTTPServer(
	validator interfaces.Validator,
	verifier interfaces.TokenVerifier,
	kindToService map[domain.EntityKind]domain.ServiceName,
	logger log.Logger,
) *HTTPServer {
	return &HTTPServer{
		validator:     helpers.NilPanic(validator, "handlers.http.go: validator is required"),
		verifier:      helpers.NilPanic(verifier, "handlers.http.go: verifier is required"),
		kindToService: helpers.NilPanic(kindToService, "handlers.http.go: kindToService is required"),
		logger:        log.WithPrefix(helpers.NilPanic(logger, "handlers.http.go: logger is required"), "component", "HTTPServer"),
	}
}

// RegisterRoutes binds the HTTP surface onto the echo instance.
func RegisterRoutes(e *echo.Echo, s *HTTPServer) {
	e.GET("/v1/validate/:kind/:id", s.ValidateID)
	e.POST("/v1/validate/:kind", s.ValidateIDs)
	e.POST("/v1/invalidate/:kind/:id", s.InvalidateID)
	e.POST("/v1/verify-token", s.VerifyToken)
}

// validateManyRequest is the body of POST /v1/validate/{kind}.
type validateManyRequest struct {
	IDs []string `json:"ids"`
}

// validateManyResponse maps each requested ID to its own result (partial success).
type validateManyResponse struct {
	Results map[string]domain.ValidationResult `json:"results"`
}

// verifyTokenRequest is the body of POST /v1/verify-token.
type verifyTokenRequest struct {
	Token string `json:"token"`
}

// verifyTokenResponse reports token validity and the owning user ID when valid.
type verifyTokenResponse struct {
	Valid  bool   `json:"valid"`
	UserID string `json:"user_id,omitempty"`
}

// ValidateID (GET /v1/validate/{kind}/{id}) classifies one ID. Returns 200 with the
// result for definitive classifications, 400 on unknown kind, 503 when the owning
// service is unavailable.
func (s *HTTPServer) ValidateID(ectx echo.Context) error {
	kind, svc, err := s.resolveKind(ectx.Param("kind"))
	if err != nil {
		return err
	}
	id := ectx.Param("id")
	if id == "" {
		return service.NewBadParameterError("id is required", nil)
	}

	result := s.validator.Validate(ectx.Request().Context(), svc, kind, id)
	if result.Status == domain.StatusUnavailable {
		return service.NewServiceUnavailableError(string(kind), result.Message, nil)
	}
	return ectx.JSON(http.StatusOK, result)
}

// ValidateIDs (POST /v1/validate/{kind}) classifies a batch of IDs, one result per ID.
// Mixed statuses (including unavailable) are data here: the per-ID mapping is the point.
func (s *HTTPServer) ValidateIDs(ectx echo.Context) error {
	kind, svc, err := s.resolveKind(ectx.Param("kind"))
	if err != nil {
		return err
	}
	var req validateManyRequest
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("invalid request body", err)
	}
	if len(req.IDs) == 0 {
		return service.NewBadParameterError("ids must not be empty", nil)
	}

	results := s.validator.ValidateMany(ectx.Request().Context(), svc, kind, req.IDs)
	return ectx.JSON(http.StatusOK, validateManyResponse{Results: results})
}

// InvalidateID (POST /v1/invalidate/{kind}/{id}) drops the cached result for one ID,
// e.g. after the caller just created the remote entity. Returns 204.
func (s *HTTPServer) InvalidateID(ectx echo.Context) error {
	kind, svc, err := s.resolveKind(ectx.Param("kind"))
	if err != nil {
		return err
	}
	id := ectx.Param("id")
	if id == "" {
		return service.NewBadParameterError("id is required", nil)
	}

	if err := s.validator.Invalidate(ectx.Request().Context(), svc, kind, id); err != nil {
		return fmt.Errorf("invalidate %s %q: %w", kind, id, err)
	}
	return ectx.NoContent(http.StatusNoContent)
}

// VerifyToken (POST /v1/verify-token) passes a service JWT to the auth backend.
// An invalid token is a 200 with valid=false; an unreachable auth backend is 503.
func (s *HTTPServer) VerifyToken(ectx echo.Context) error {
	var req verifyTokenRequest
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("invalid request body", err)
	}
	if req.Token == "" {
		return service.NewBadParameterError("token is required", nil)
	}

	valid, userID, err := s.verifier.VerifyToken(ectx.Request().Context(), req.Token)
	if err != nil {
		return service.NewServiceUnavailableError("token", "Unable to verify token - auth service is unavailable", err)
	}
	return ectx.JSON(http.StatusOK, verifyTokenResponse{Valid: valid, UserID: userID})
}

// resolveKind maps the path parameter to an entity kind and its owning service.
func (s *HTTPServer) resolveKind(param string) (domain.EntityKind, domain.ServiceName, error) {
	kind := domain.EntityKind(param)
	svc, ok := s.kindToService[kind]
	if !ok {
		return "", "", service.NewBadParameterError(fmt.Sprintf("unknown entity kind %q", param), nil)
	}
	return kind, svc, nil
}
