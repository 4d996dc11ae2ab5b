// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// User is the core identity in the system. The Role field replaces the legacy
// trio of independent is_admin/is_supplier/is_customer flags with a single
// closed enum, so an invalid combination cannot be represented.
type User struct {
	ID             int64  `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	HashedPassword string `json:"-"`
	Role           Role   `json:"role"`
	IsActive       bool   `json:"is_active"`
}

// Identity is the decoded bearer-credential payload attached to every
// authenticated request. It carries authorization claims as issued; role
// changes take effect at the next token issuance.
type Identity struct {
	UserID   int64
	Username string
	Role     Role
}

// IsAdmin reports whether the identity carries the administrator role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// IsSupplier reports whether the identity carries the supplier role.
func (i Identity) IsSupplier() bool {
	return i.Role == RoleSupplier
}

// IsCustomer reports whether the identity carries the customer role.
func (i Identity) IsCustomer() bool {
	return i.Role == RoleCustomer
}
