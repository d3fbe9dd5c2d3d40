package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntityNotFoundError(t *testing.T) {
	e := NewEntityNotFoundError("employee_id", "does not exist")
	assert.Equal(t, ErrEntityNotFound, e.Code)
	assert.Equal(t, "employee_id", e.Field)
	assert.Equal(t, "does not exist", e.Message)
	assert.Nil(t, e.Inner)
}

func TestNewEntityInactiveError(t *testing.T) {
	e := NewEntityInactiveError("user_id", "is not active")
	assert.Equal(t, ErrEntityInactive, e.Code)
	assert.Equal(t, "user_id", e.Field)
	assert.Equal(t, "is not active", e.Message)
}

func TestNewServiceUnavailableError(t *testing.T) {
	inner := errors.New("connection refused")
	e := NewServiceUnavailableError("department_id", "service is unavailable", inner)
	assert.Equal(t, ErrServiceUnavailable, e.Code)
	assert.Equal(t, "department_id", e.Field)
	assert.Same(t, inner, e.Inner)
}

func TestNewBadParameterError(t *testing.T) {
	e := NewBadParameterError("invalid body", nil)
	assert.Equal(t, ErrBadParameter, e.Code)
	assert.Empty(t, e.Field)
	assert.Equal(t, "invalid body", e.Message)
}

func TestNewInternalServerError(t *testing.T) {
	e := NewInternalServerError("cache failed", nil)
	assert.Equal(t, ErrInternalServerError, e.Code)
	assert.Equal(t, "cache failed", e.Message)
}

func TestValidationError_Error(t *testing.T) {
	e := ValidationError{Code: "x", Message: "msg"}
	assert.Equal(t, "x msg", e.Error())
}

func TestValidationError_Error_WithInner(t *testing.T) {
	inner := errors.New("cause")
	e := ValidationError{Code: "x", Message: "msg", Inner: inner}
	assert.Equal(t, "x msg: cause", e.Error())
}

func TestValidationError_Unwrap(t *testing.T) {
	inner := errors.New("cause")
	e := ValidationError{Inner: inner}
	assert.Same(t, inner, e.Unwrap())
}

func TestToValidationError(t *testing.T) {
	t.Run("validation_error", func(t *testing.T) {
		e := NewBadParameterError("bad", nil)
		got := ToValidationError(e)
		require.NotNil(t, got)
		assert.Equal(t, ErrBadParameter, got.Code)
	})
	t.Run("wrapped_validation_error", func(t *testing.T) {
		e := fmt.Errorf("handler: %w", NewEntityNotFoundError("employee_id", "gone"))
		got := ToValidationError(e)
		require.NotNil(t, got)
		assert.Equal(t, ErrEntityNotFound, got.Code)
		assert.Equal(t, "employee_id", got.Field)
	})
	t.Run("plain_error", func(t *testing.T) {
		assert.Nil(t, ToValidationError(errors.New("boom")))
	})
	t.Run("nil", func(t *testing.T) {
		assert.Nil(t, ToValidationError(nil))
	})
}

func TestIsHelpers(t *testing.T) {
	assert.True(t, IsEntityNotFound(NewEntityNotFoundError("f", "m")))
	assert.True(t, IsEntityInactive(NewEntityInactiveError("f", "m")))
	assert.True(t, IsServiceUnavailable(NewServiceUnavailableError("f", "m", nil)))
	assert.True(t, IsBadParameter(NewBadParameterError("m", nil)))
	assert.True(t, IsInternalServerError(NewInternalServerError("m", nil)))
	assert.False(t, IsEntityNotFound(NewEntityInactiveError("f", "m")))
	assert.False(t, IsServiceUnavailable(errors.New("boom")))
}
