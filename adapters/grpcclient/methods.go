package grpcclient

import "hrvalidation/domain"

// MethodSet names the remote RPCs serving one entity kind. Validate is required;
// Batch is optional — kinds without it fall back to per-ID lookups in LookupMany.
type MethodSet struct {
	// Validate is the full method name of the single-ID existence/activity check,
	// e.g. "/hr.auth.AuthService/ValidateEmployee".
	Validate string
	// Batch is the full method name of the multi-ID fetch, e.g.
	// "/hr.auth.AuthService/GetEmployees". Empty when the kind has no batch RPC.
	Batch string
}

// AuthMethods is the method table of the auth backend: employees, users and branches.
func AuthMethods() map[domain.EntityKind]MethodSet {
	return map[domain.EntityKind]MethodSet{
		domain.KindEmployee: {
			Validate: "/hr.auth.AuthService/ValidateEmployee",
			Batch:    "/hr.auth.AuthService/GetEmployees",
		},
		domain.KindUser: {
			Validate: "/hr.auth.AuthService/ValidateUser",
			Batch:    "/hr.auth.AuthService/GetUsers",
		},
		domain.KindBranch: {
			Validate: "/hr.auth.AuthService/ValidateBranch",
			Batch:    "/hr.auth.AuthService/GetBranches",
		},
	}
}

// authVerifyTokenMethod is the auth backend's JWT verification RPC.
const authVerifyTokenMethod = "/hr.auth.AuthService/VerifyToken"

// DepartmentMethods is the method table of the department backend: departments and
// sub-departments.
func DepartmentMethods() map[domain.EntityKind]MethodSet {
	return map[domain.EntityKind]MethodSet{
		domain.KindDepartment: {
			Validate: "/hr.department.DepartmentService/ValidateDepartment",
			Batch:    "/hr.department.DepartmentService/GetDepartments",
		},
		domain.KindSubDepartment: {
			Validate: "/hr.department.DepartmentService/ValidateSubDepartment",
			Batch:    "/hr.department.DepartmentService/GetSubDepartments",
		},
	}
}

// Wire shapes of the validation contract. The remote services accept and emit these
// JSON bodies over the "json" content-subtype.

// validateRequest asks whether one ID exists and is active.
type validateRequest struct {
	ID string `json:"id"`
}

// validateResponse carries the remote answer: exists flag, optional human-readable
// message and the record's attributes when found.
type validateResponse struct {
	Exists  bool           `json:"exists"`
	Message string         `json:"message,omitempty"`
	Record  map[string]any `json:"record,omitempty"`
}

// getManyRequest fetches several records by ID in one call.
type getManyRequest struct {
	IDs []string `json:"ids"`
}

// getManyResponse returns the records that exist; absent IDs are simply missing.
type getManyResponse struct {
	Records []map[string]any `json:"records"`
}

// verifyTokenRequest asks the auth backend to verify a service JWT.
type verifyTokenRequest struct {
	Token string `json:"token"`
}

// verifyTokenResponse reports validity and, when valid, the owning user ID.
type verifyTokenResponse struct {
	Valid  bool   `json:"valid"`
	UserID string `json:"user_id,omitempty"`
}
