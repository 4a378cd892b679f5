package auth

// UserRole is the closed classification of an account. The application knows
// exactly two roles; anything else is rejected at every deserialization
// boundary rather than coerced.
type UserRole string

const (
	// RoleAdmin can manage accounts, coaches, clients and settings
	RoleAdmin UserRole = "ADMIN"
	// RoleCoach can manage its own planning and declare absences
	RoleCoach UserRole = "COACH"
)

// IsValid checks if the role is one of the predefined valid roles
func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleCoach:
		return true
	default:
		return false
	}
}

func (r UserRole) String() string {
	return string(r)
}

// IsAdmin reports whether the role grants administrative privileges
func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

// AllRoles returns the predefined roles
func AllRoles() []UserRole {
	return []UserRole{RoleAdmin, RoleCoach}
}

// ParseRole safely parses a string into a UserRole type
func ParseRole(roleStr string) (UserRole, bool) {
	role := UserRole(roleStr)
	return role, role.IsValid()
}
