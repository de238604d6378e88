package authorization

// RoleFlags captures the role claims carried in a signed token and
// stored on the account row.
type RoleFlags struct {
	IsAdmin    bool `json:"is_admin"`
	IsEmployee bool `json:"is_employee"`
}

// Requirement is the access level a route demands.
type Requirement string

const (
	RequireAdmin    Requirement = "admin"
	RequireEmployee Requirement = "employee"
)

// Satisfies reports whether the flags meet the requirement.
// Admins satisfy every requirement.
func (f RoleFlags) Satisfies(req Requirement) bool {
	switch req {
	case RequireAdmin:
		return f.IsAdmin
	case RequireEmployee:
		return f.IsEmployee || f.IsAdmin
	default:
		return false
	}
}

// OwnedResource is implemented by domain entities that belong to a
// single account.
type OwnedResource interface {
	GetOwnerID() uint
}

// CanAccessResource reports whether the account may act on the
// resource. Ownership is resource-level: being an employee is not
// enough on its own.
func CanAccessResource(accountID uint, flags RoleFlags, resource OwnedResource) bool {
	if flags.IsAdmin {
		return true
	}
	return accountID == resource.GetOwnerID()
}

// CanAccessResourceByOwnerID is the id-only variant of CanAccessResource.
func CanAccessResourceByOwnerID(accountID uint, flags RoleFlags, resourceOwnerID uint) bool {
	if flags.IsAdmin {
		return true
	}
	return accountID == resourceOwnerID
}
