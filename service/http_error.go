package service

import (
	"net/http"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

// RegisterErrorHandler registers the custom error handler on the echo instance.
func RegisterErrorHandler(e *echo.Echo, logger log.Logger) {
	e.HTTPErrorHandler = NewHTTPErrorHandler(NewErrorCodeToStatusCodeMap(), logger).Handler
}

// NewErrorCodeToStatusCodeMap maps ValidationError codes to HTTP status codes.
// Note the unavailable/not-found split: 503 tells operators the dependency is down,
// 404/422 tell callers the data is bad.
func NewErrorCodeToStatusCodeMap() map[string]int {
	return map[string]int{
		ErrBadParameter:        http.StatusBadRequest,
		ErrEntityNotFound:      http.StatusNotFound,
		ErrEntityInactive:      http.StatusUnprocessableEntity,
		ErrServiceUnavailable:  http.StatusServiceUnavailable,
		ErrInternalServerError: http.StatusInternalServerError,
	}
}

// HTTPErrorHandler converts errors returned by echo handlers into JSON error responses.
type HTTPErrorHandler struct {
	errorCodeToHTTPStatusCode map[string]int
	logger                    log.Logger
}

// NewHTTPErrorHandler creates a new instance of the HTTPErrorHandler.
func NewHTTPErrorHandler(errorCodeToStatusCode map[string]int, logger log.Logger) *HTTPErrorHandler {
	return &HTTPErrorHandler{
		errorCodeToHTTPStatusCode: errorCodeToStatusCode,
		logger:                    logger,
	}
}

func (h *HTTPErrorHandler) getStatusCode(errorCode string) int {
	if status, ok := h.errorCodeToHTTPStatusCode[errorCode]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Handler handles errors returned by echo handlers: ValidationErrors keep their code
// and message, echo.HTTPErrors keep their status, everything else becomes a 500.
func (h *HTTPErrorHandler) Handler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	valErr := ToValidationError(err)
	if valErr == nil {
		valErr = NewInternalServerError("an internal server error has occurred", err)
	}

	var statusCode int
	if he, ok := err.(*echo.HTTPError); ok {
		m, _ := he.Message.(string)
		valErr = NewValidationError(ErrBadParameter, "", m, err)
		statusCode = he.Code
	} else {
		statusCode = h.getStatusCode(valErr.Code)
	}

	level.Error(h.logger).Log(
		"msg", "HTTP request error",
		"err", err,
	)

	if !c.Response().Committed {
		_ = c.JSON(statusCode, ErrResponse{Error: valErr})
	}
}

// ErrResponse is the JSON error envelope returned by the HTTP surface.
type ErrResponse struct {
	Error *ValidationError `json:"error,omitempty"`
}
