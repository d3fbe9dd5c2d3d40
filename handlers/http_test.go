package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hrvalidation/domain"
	"hrvalidation/handlers"
	"hrvalidation/interfaces"
	"hrvalidation/interfaces/mock"
	"hrvalidation/service"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKindToService() map[domain.EntityKind]domain.ServiceName {
	return map[domain.EntityKind]domain.ServiceName{
		domain.KindEmployee:      domain.ServiceAuth,
		domain.KindUser:          domain.ServiceAuth,
		domain.KindBranch:        domain.ServiceAuth,
		domain.KindDepartment:    domain.ServiceDepartment,
		domain.KindSubDepartment: domain.ServiceDepartment,
	}
}

// newTestServer wires the HTTP surface with mocks onto a full echo instance, custom
// error handler included, so responses carry the real status codes and JSON envelopes.
func newTestServer(t *testing.T, validator interfaces.Validator, verifier interfaces.TokenVerifier) *echo.Echo {
	t.Helper()
	e := echo.New()
	service.RegisterErrorHandler(e, log.NewNopLogger())
	handlers.RegisterRoutes(e, handlers.NewHTTPServer(validator, verifier, testKindToService(), log.NewNopLogger()))
	return e
}

func doRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) *service.ValidationError {
	t.Helper()
	var body service.ErrResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	return body.Error
}

func TestNewHTTPServer_PanicsOnNilArgs(t *testing.T) {
	validator := &mock.ValidatorMock{}
	verifier := &mock.TokenVerifierMock{}

	assert.Panics(t, func() { handlers.NewHTTPServer(nil, verifier, testKindToService(), log.NewNopLogger()) })
	assert.Panics(t, func() { handlers.NewHTTPServer(validator, nil, testKindToService(), log.NewNopLogger()) })
	assert.Panics(t, func() { handlers.NewHTTPServer(validator, verifier, nil, log.NewNopLogger()) })
	assert.Panics(t, func() { handlers.NewHTTPServer(validator, verifier, testKindToService(), nil) })
}

func TestHTTPServer_ValidateID(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		validator := &mock.ValidatorMock{
			ValidateFunc: func(ctx context.Context, svc domain.ServiceName, kind domain.EntityKind, id string) domain.ValidationResult {
				return domain.ValidationResult{Status: domain.StatusValid, Attributes: domain.Attributes{"id": id}}
			},
		}
		e := newTestServer(t, validator, &mock.TokenVerifierMock{})

		rec := doRequest(e, http.MethodGet, "/v1/validate/employee/EMP-001", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		var result domain.ValidationResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal(t, domain.StatusValid, result.Status)

		calls := validator.ValidateCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, domain.ServiceAuth, calls[0].Service)
		assert.Equal(t, domain.KindEmployee, calls[0].Kind)
		assert.Equal(t, "EMP-001", calls[0].ID)
	})

	t.Run("not_found_is_data_not_error", func(t *testing.T) {
		validator := &mock.ValidatorMock{
			ValidateFunc: func(ctx context.Context, svc domain.ServiceName, kind domain.EntityKind, id string) domain.ValidationResult {
				return domain.ValidationResult{
					Status:  domain.StatusNotFound,
					Message: "Employee with ID 'INVALID-999' does not exist in the auth service",
				}
			},
		}
		e := newTestServer(t, validator, &mock.TokenVerifierMock{})

		rec := doRequest(e, http.MethodGet, "/v1/validate/employee/INVALID-999", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		var result domain.ValidationResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal(t, domain.StatusNotFound, result.Status)
	})

	t.Run("unavailable_maps_to_503", func(t *testing.T) {
		validator := &mock.ValidatorMock{
			ValidateFunc: func(ctx context.Context, svc domain.ServiceName, kind domain.EntityKind, id string) domain.ValidationResult {
				return domain.ValidationResult{
					Status:  domain.StatusUnavailable,
					Message: "Unable to validate department ID - department service is unavailable",
				}
			},
		}
		e := newTestServer(t, validator, &mock.TokenVerifierMock{})

		rec := doRequest(e, http.MethodGet, "/v1/validate/department/DEP-001", "")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		errBody := decodeError(t, rec)
		assert.Equal(t, service.ErrServiceUnavailable, errBody.Code)
		assert.Equal(t, "Unable to validate department ID - department service is unavailable", errBody.Message)
	})

	t.Run("unknown_kind_is_400", func(t *testing.T) {
		validator := &mock.ValidatorMock{}
		e := newTestServer(t, validator, &mock.TokenVerifierMock{})

		rec := doRequest(e, http.MethodGet, "/v1/validate/starship/NCC-1701", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, service.ErrBadParameter, decodeError(t, rec).Code)
		assert.Empty(t, validator.ValidateCalls())
	})
}

func TestHTTPServer_ValidateIDs(t *testing.T) {
	t.Run("mixed_results", func(t *testing.T) {
		validator := &mock.ValidatorMock{
			ValidateManyFunc: func(ctx context.Context, svc domain.ServiceName, kind domain.EntityKind, ids []string) map[string]domain.ValidationResult {
				return map[string]domain.ValidationResult{
					"EMP-001": {Status: domain.StatusValid},
					"EMP-404": {Status: domain.StatusNotFound, Message: "Employee with ID 'EMP-404' does not exist in the auth service"},
				}
			},
		}
		e := newTestServer(t, validator, &mock.TokenVerifierMock{})

		rec := doRequest(e, http.MethodPost, "/v1/validate/employee", `{"ids":["EMP-001","EMP-404"]}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		var body struct {
			Results map[string]domain.ValidationResult `json:"results"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body.Results, 2)
		assert.Equal(t, domain.StatusValid, body.Results["EMP-001"].Status)
		assert.Equal(t, domain.StatusNotFound, body.Results["EMP-404"].Status)
	})

	t.Run("empty_ids_is_400", func(t *testing.T) {
		validator := &mock.ValidatorMock{}
		e := newTestServer(t, validator, &mock.TokenVerifierMock{})

		rec := doRequest(e, http.MethodPost, "/v1/validate/employee", `{"ids":[]}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, validator.ValidateManyCalls())
	})

	t.Run("malformed_body_is_400", func(t *testing.T) {
		validator := &mock.ValidatorMock{}
		e := newTestServer(t, validator, &mock.TokenVerifierMock{})

		rec := doRequest(e, http.MethodPost, "/v1/validate/employee", `{"ids": not json`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHTTPServer_InvalidateID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		validator := &mock.ValidatorMock{
			InvalidateFunc: func(ctx context.Context, svc domain.ServiceName, kind domain.EntityKind, id string) error {
				return nil
			},
		}
		e := newTestServer(t, validator, &mock.TokenVerifierMock{})

		rec := doRequest(e, http.MethodPost, "/v1/invalidate/employee/EMP-001", "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		calls := validator.InvalidateCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, "EMP-001", calls[0].ID)
	})

	t.Run("cache_error_is_500", func(t *testing.T) {
		validator := &mock.ValidatorMock{
			InvalidateFunc: func(ctx context.Context, svc domain.ServiceName, kind domain.EntityKind, id string) error {
				return errors.New("backend down")
			},
		}
		e := newTestServer(t, validator, &mock.TokenVerifierMock{})

		rec := doRequest(e, http.MethodPost, "/v1/invalidate/employee/EMP-001", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestHTTPServer_VerifyToken(t *testing.T) {
	t.Run("valid_token", func(t *testing.T) {
		verifier := &mock.TokenVerifierMock{
			VerifyTokenFunc: func(ctx context.Context, token string) (bool, string, error) {
				return true, "U-1", nil
			},
		}
		e := newTestServer(t, &mock.ValidatorMock{}, verifier)

		rec := doRequest(e, http.MethodPost, "/v1/verify-token", `{"token":"jwt-token"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		var body struct {
			Valid  bool   `json:"valid"`
			UserID string `json:"user_id"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(t, body.Valid)
		assert.Equal(t, "U-1", body.UserID)
	})

	t.Run("invalid_token_is_200_with_valid_false", func(t *testing.T) {
		verifier := &mock.TokenVerifierMock{
			VerifyTokenFunc: func(ctx context.Context, token string) (bool, string, error) {
				return false, "", nil
			},
		}
		e := newTestServer(t, &mock.ValidatorMock{}, verifier)

		rec := doRequest(e, http.MethodPost, "/v1/verify-token", `{"token":"expired"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		var body struct {
			Valid bool `json:"valid"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.False(t, body.Valid)
	})

	t.Run("missing_token_is_400", func(t *testing.T) {
		e := newTestServer(t, &mock.ValidatorMock{}, &mock.TokenVerifierMock{})

		rec := doRequest(e, http.MethodPost, "/v1/verify-token", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("auth_backend_unreachable_is_503", func(t *testing.T) {
		verifier := &mock.TokenVerifierMock{
			VerifyTokenFunc: func(ctx context.Context, token string) (bool, string, error) {
				return false, "", errors.New("connection refused")
			},
		}
		e := newTestServer(t, &mock.ValidatorMock{}, verifier)

		rec := doRequest(e, http.MethodPost, "/v1/verify-token", `{"token":"jwt-token"}`)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, service.ErrServiceUnavailable, decodeError(t, rec).Code)
	})
}
