package constants

import "fmt"

// StaffRole adalah enum role staff. Dicek terhadap allow-list eksplisit,
// bukan string bebas dari middleware.
type StaffRole string

const (
	RoleAdmin   StaffRole = "admin"
	RoleTutor   StaffRole = "tutor"
	RoleAdvisor StaffRole = "advisor"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyStaffCanAccess  = "❌ Hanya staff yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllStaffRoles = []StaffRole{
		RoleAdmin,
		RoleTutor,
		RoleAdvisor,
	}

	AdminOnly = []StaffRole{
		RoleAdmin,
	}
)

func (r StaffRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleTutor, RoleAdvisor:
		return true
	}
	return false
}

func (r StaffRole) In(allowed []StaffRole) bool {
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}
