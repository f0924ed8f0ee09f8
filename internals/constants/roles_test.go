package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaffRoleValid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleTutor.Valid())
	assert.True(t, RoleAdvisor.Valid())
	assert.False(t, StaffRole("owner").Valid())
	assert.False(t, StaffRole("").Valid())
}

func TestStaffRoleIn(t *testing.T) {
	assert.True(t, RoleAdmin.In(AdminOnly))
	assert.False(t, RoleTutor.In(AdminOnly))
	assert.True(t, RoleAdvisor.In(AllStaffRoles))
	assert.False(t, StaffRole("owner").In(AllStaffRoles))
	assert.False(t, RoleAdmin.In(nil))
}
