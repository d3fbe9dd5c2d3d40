package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"hrvalidation/domain"
	"hrvalidation/helpers"
	"hrvalidation/interfaces"
)

// FieldValidators is the caller-facing API of the gateway: one thin method per
// cross-service identifier field. Each method fixes the service and entity kind, calls
// the gateway and converts a non-valid result into a field-keyed ValidationError.
// Callers invoke these explicitly as a pre-save step; there are no persistence hooks.
type FieldValidators struct {
	validator interfaces.Validator
}

// NewFieldValidators creates the adapters over a gateway. Panics on nil validator.
//
// Called from the surrounding model layer's wiring as an explicit pre-save step.
func NewFieldValidators(validator interfaces.Validator) *FieldValidators {
	return &FieldValidators{
		validator: helpers.NilPanic(validator, "service.fields.go: validator is required"),
	}
}

// ValidateEmployeeID checks an employee ID against the auth service. An empty ID is an
// optional field left blank: it short-circuits to success without a remote call.
//
// Returns: (attributes, nil) when valid or empty; (nil, *ValidationError) keyed to
// "employee_id" otherwise.
func (f *FieldValidators) ValidateEmployeeID(ctx context.Context, id string) (domain.Attributes, error) {
	return f.validateField(ctx, domain.ServiceAuth, domain.KindEmployee, "employee_id", id)
}

// ValidateUserID checks a user ID against the auth service. Empty ID short-circuits.
func (f *FieldValidators) ValidateUserID(ctx context.Context, id string) (domain.Attributes, error) {
	return f.validateField(ctx, domain.ServiceAuth, domain.KindUser, "user_id", id)
}

// ValidateBranchID checks a branch ID against the auth service. Empty ID short-circuits.
func (f *FieldValidators) ValidateBranchID(ctx context.Context, id string) (domain.Attributes, error) {
	return f.validateField(ctx, domain.ServiceAuth, domain.KindBranch, "branch_id", id)
}

// ValidateDepartmentID checks a department ID against the department service. Empty ID
// short-circuits.
func (f *FieldValidators) ValidateDepartmentID(ctx context.Context, id string) (domain.Attributes, error) {
	return f.validateField(ctx, domain.ServiceDepartment, domain.KindDepartment, "department_id", id)
}

// ValidateSubDepartmentID checks a sub-department ID against the department service.
// Empty ID short-circuits.
func (f *FieldValidators) ValidateSubDepartmentID(ctx context.Context, id string) (domain.Attributes, error) {
	return f.validateField(ctx, domain.ServiceDepartment, domain.KindSubDepartment, "sub_department_id", id)
}

// ValidateEmployeeIDs validates a list of employee IDs in one gateway call (for
// JSON-list fields referencing several employees). An empty list is success.
//
// Returns: (map id → attributes, nil) when every ID is valid; a service_unavailable
// error when any lookup could not be completed; otherwise an entity_not_found error
// naming every invalid or inactive ID.
func (f *FieldValidators) ValidateEmployeeIDs(ctx context.Context, ids []string) (map[string]domain.Attributes, error) {
	if len(ids) == 0 {
		return map[string]domain.Attributes{}, nil
	}
	results := f.validator.ValidateMany(ctx, domain.ServiceAuth, domain.KindEmployee, ids)

	attrs := make(map[string]domain.Attributes, len(results))
	var invalid []string
	for id, result := range results {
		switch result.Status {
		case domain.StatusValid:
			attrs[id] = result.Attributes
		case domain.StatusUnavailable:
			return nil, NewServiceUnavailableError("employee_ids", result.Message, nil)
		default:
			invalid = append(invalid, id)
		}
	}
	if len(invalid) > 0 {
		sort.Strings(invalid)
		return nil, NewEntityNotFoundError(
			"employee_ids",
			fmt.Sprintf("The following employee IDs are invalid or inactive: %s", strings.Join(invalid, ", ")),
		)
	}
	return attrs, nil
}

// validateField runs one gateway validation and maps the result to the adapter
// contract: valid → attributes, not-found/inactive/unavailable → field-keyed error.
//
// Called from the per-field Validate*ID methods only.
func (f *FieldValidators) validateField(ctx context.Context, service domain.ServiceName, kind domain.EntityKind, field string, id string) (domain.Attributes, error) {
	if strings.TrimSpace(id) == "" {
		return nil, nil
	}
	result := f.validator.Validate(ctx, service, kind, id)
	switch result.Status {
	case domain.StatusValid:
		return result.Attributes, nil
	case domain.StatusNotFound:
		return nil, NewEntityNotFoundError(field, result.Message)
	case domain.StatusInactive:
		return nil, NewEntityInactiveError(field, result.Message)
	case domain.StatusUnavailable:
		return nil, NewServiceUnavailableError(field, result.Message, nil)
	default:
		return nil, NewInternalServerError(fmt.Sprintf("unknown validation status %q", result.Status), nil)
	}
}
