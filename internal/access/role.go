package access

import "strings"

// Role is the closed set of roles a credential can carry.
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleTeamleiter  Role = "teamleiter"
	RoleMitarbeiter Role = "mitarbeiter"
)

// ParseRole normalizes a stored role string to one of the known roles.
// The second return is false for anything outside the closed set.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleTeamleiter:
		return RoleTeamleiter, true
	case RoleMitarbeiter:
		return RoleMitarbeiter, true
	}
	return "", false
}

func (r Role) String() string { return string(r) }

// Identity is the result of a successful PIN resolution. It is recomputed
// on every request and never persisted. Stadt is empty for admins.
type Identity struct {
	Name  string `json:"name"`
	Role  Role   `json:"role"`
	Stadt string `json:"stadt"`
}
