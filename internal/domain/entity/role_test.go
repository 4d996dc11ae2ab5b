package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleFromString(t *testing.T) {
	for _, valid := range []string{"admin", "supplier", "customer"} {
		role, ok := RoleFromString(valid)
		assert.True(t, ok)
		assert.Equal(t, valid, role.String())
	}

	for _, invalid := range []string{"", "Admin", "ADMIN", "auditor", "customer "} {
		_, ok := RoleFromString(invalid)
		assert.False(t, ok, "expected %q to be rejected", invalid)
	}
}

func TestIdentityRoleChecks(t *testing.T) {
	admin := Identity{UserID: 1, Role: RoleAdmin}
	supplier := Identity{UserID: 2, Role: RoleSupplier}
	customer := Identity{UserID: 3, Role: RoleCustomer}

	assert.True(t, admin.IsAdmin())
	assert.False(t, admin.IsSupplier())

	assert.True(t, supplier.IsSupplier())
	assert.False(t, supplier.IsAdmin())

	assert.True(t, customer.IsCustomer())
	assert.False(t, customer.IsAdmin())
}

func TestGradeInRange(t *testing.T) {
	for grade := GradeMin; grade <= GradeMax; grade++ {
		assert.True(t, GradeInRange(grade))
	}

	for _, grade := range []int{0, -1, 6, 42} {
		assert.False(t, GradeInRange(grade))
	}
}
