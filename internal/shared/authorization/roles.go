// Package authorization defines the user roles and the role checks applied
// before every mutating operation.
package authorization

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleStaff    UserRole = "staff"
	RoleAdmin    UserRole = "admin"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsCustomer() bool {
	return r == RoleCustomer
}

func (r UserRole) IsStaff() bool {
	return r == RoleStaff
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

// IsStaffOrAdmin reports whether the role belongs to the support side.
func (r UserRole) IsStaffOrAdmin() bool {
	return r == RoleStaff || r == RoleAdmin
}

func (r UserRole) IsValid() bool {
	return r == RoleCustomer || r == RoleStaff || r == RoleAdmin
}

func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleCustomer
}
