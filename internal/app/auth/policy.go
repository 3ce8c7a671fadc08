// Package auth holds the role-based authorization policy. The policy is a
// single table from operation name to allowed role set, injected from
// configuration, so every permission the service enforces is visible in one
// place.
package auth

// Role tags carried in the X-User-Roles header.
const (
	RoleSecretary = "SECRETARY"
	RoleAdmin     = "ADMIN"
	RoleTeacher   = "TEACHER"
	RoleStudent   = "STUDENT"
)

// Operation names used as keys into the policy table.
const (
	OpCreateStudent = "students.create"
	OpListStudents  = "students.list"
	OpGetStudent    = "students.get"
	OpUpdateStudent = "students.update"
	OpStudentExists = "students.exists"
)

// Policy maps each operation to the roles allowed to perform it.
type Policy struct {
	permissions map[string][]string
}

// NewPolicy builds a policy from an operation→roles table. Operations
// missing from the table deny every role.
func NewPolicy(permissions map[string][]string) *Policy {
	table := make(map[string][]string, len(permissions))
	for op, roles := range permissions {
		table[op] = append([]string(nil), roles...)
	}
	return &Policy{permissions: table}
}

// DefaultPermissions is the policy used when configuration does not
// override it.
func DefaultPermissions() map[string][]string {
	return map[string][]string{
		OpCreateStudent: {RoleSecretary, RoleAdmin},
		OpListStudents:  {RoleSecretary, RoleAdmin},
		OpGetStudent:    {RoleSecretary, RoleAdmin},
		OpUpdateStudent: {RoleSecretary, RoleAdmin},
		OpStudentExists: {RoleSecretary, RoleAdmin, RoleTeacher},
	}
}

// Allowed reports whether any of the caller's roles intersects the
// operation's allowed set.
func (p *Policy) Allowed(operation string, roles []string) bool {
	allowed, ok := p.permissions[operation]
	if !ok {
		return false
	}
	for _, role := range roles {
		for _, a := range allowed {
			if role == a {
				return true
			}
		}
	}
	return false
}
