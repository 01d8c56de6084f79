package access

import (
	"strings"

	"bordbuch-backend/internal/model"
)

// Hints carries the request parameters accompanying a filter call. For a
// teamleiter the Stadt hint wins over the Name hint; a mitarbeiter is
// matched by name only.
type Hints struct {
	Name  string
	Stadt string
}

// FilterMachines returns the subset of directory the identity may see.
//
// The filter is stable: relative order of the input is preserved and
// duplicates pass through unchanged. An empty result is a valid outcome.
// Matching rules deliberately mirror current production behavior: stadt and
// leitung compare case-sensitively, mitarbeiter compares trimmed and
// lowercased on both sides.
func FilterMachines(identity Identity, directory []model.Machine, hints Hints) ([]model.Machine, error) {
	role, ok := ParseRole(string(identity.Role))
	if !ok {
		return nil, ErrUnknownRole
	}

	switch role {
	case RoleAdmin:
		return directory, nil

	case RoleTeamleiter:
		if hints.Stadt != "" {
			return matchField(directory, func(m model.Machine) string { return m.Stadt }, hints.Stadt), nil
		}
		name := strings.TrimSpace(hints.Name)
		if name == "" {
			return nil, ErrMissingScopeOrName
		}
		return matchField(directory, func(m model.Machine) string { return m.Leitung }, name), nil

	case RoleMitarbeiter:
		if hints.Name == "" {
			return nil, ErrMissingName
		}
		target := strings.ToLower(strings.TrimSpace(hints.Name))
		var out []model.Machine
		for _, m := range directory {
			if strings.ToLower(strings.TrimSpace(m.Mitarbeiter)) == target {
				out = append(out, m)
			}
		}
		return out, nil
	}

	return nil, ErrUnknownRole
}

func matchField(directory []model.Machine, field func(model.Machine) string, want string) []model.Machine {
	var out []model.Machine
	for _, m := range directory {
		if field(m) == want {
			out = append(out, m)
		}
	}
	return out
}
