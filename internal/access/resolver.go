package access

import (
	"context"
	"strings"

	"bordbuch-backend/internal/model"
)

// CredentialStore is the read-only credential lookup the resolver needs.
type CredentialStore interface {
	// FindCredentialByPIN returns the first credential (primary-key order)
	// whose pin matches exactly, or nil when none does.
	FindCredentialByPIN(ctx context.Context, pin string) (*model.Credential, error)
}

// MachineDirectory is the read-only machine listing the resolver and the
// scope filter consume.
type MachineDirectory interface {
	ListMachines(ctx context.Context) ([]model.Machine, error)
}

// Resolver turns a submitted PIN into an Identity. It holds no state and
// performs only reads; a failed resolution is a business outcome, not a
// fault, and is never retried here.
type Resolver struct {
	credentials CredentialStore
	directory   MachineDirectory
}

// NewResolver creates a resolver over the given stores.
func NewResolver(credentials CredentialStore, directory MachineDirectory) *Resolver {
	return &Resolver{credentials: credentials, directory: directory}
}

// Resolve checks a PIN and returns the identity it stands for.
//
// The stored role is lowercased before use. A credential missing name or
// role is a resolution failure, never a partial identity. An admin's Stadt
// is always empty, regardless of what the credential row says.
func (r *Resolver) Resolve(ctx context.Context, pin string) (Identity, error) {
	pin = strings.TrimSpace(pin)
	if pin == "" {
		return Identity{}, ErrMissingPIN
	}

	cred, err := r.credentials.FindCredentialByPIN(ctx, pin)
	if err != nil {
		return Identity{}, storeErr("resolve pin", err)
	}
	if cred == nil {
		return Identity{}, ErrInvalidPIN
	}

	name := cred.Name
	role := Role(strings.ToLower(cred.Role))
	if name == "" || role == "" {
		return Identity{}, ErrIncompleteCredential
	}

	stadt := strings.TrimSpace(cred.Stadt)
	if stadt == "" && (role == RoleTeamleiter || role == RoleMitarbeiter) {
		stadt, err = r.deriveStadt(ctx, name, role)
		if err != nil {
			return Identity{}, err
		}
	}

	// An admin's scope never restricts anything.
	if role == RoleAdmin {
		stadt = ""
	}

	return Identity{Name: name, Role: role, Stadt: stadt}, nil
}

// deriveStadt scans the machine directory for the first machine assigned to
// the given name and returns its non-empty stadt. Matching is exact and
// case-sensitive for both roles; teamleiter matches the Leitung column,
// mitarbeiter the Mitarbeiter column. The directory listing's primary-key
// order makes the first match deterministic.
func (r *Resolver) deriveStadt(ctx context.Context, name string, role Role) (string, error) {
	machines, err := r.directory.ListMachines(ctx)
	if err != nil {
		return "", storeErr("derive stadt", err)
	}

	for _, m := range machines {
		if m.Stadt == "" {
			continue
		}
		if role == RoleTeamleiter && m.Leitung == name {
			return m.Stadt, nil
		}
		if role == RoleMitarbeiter && m.Mitarbeiter == name {
			return m.Stadt, nil
		}
	}
	return "", nil
}
