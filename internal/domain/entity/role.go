// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
// It is a closed set: a user is exactly one of admin, supplier or customer.
type Role string

const (
	// RoleAdmin indicates an administrator role.
	RoleAdmin Role = "admin"
	// RoleSupplier indicates a supplier role.
	RoleSupplier Role = "supplier"
	// RoleCustomer indicates a regular customer role.
	RoleCustomer Role = "customer"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleSupplier, RoleCustomer:
		return true
	default:
		return false
	}
}

// RoleFromString converts a string to a Role, reporting whether it is valid.
func RoleFromString(s string) (Role, bool) {
	role := Role(s)

	return role, role.IsValid()
}
