// Package policy decides whether a caller's role may perform an
// operation. Every role-gated route carries an immutable allow-set; an
// empty or missing set denies everyone. Authentication is someone
// else's problem: callers must only invoke Authorize with the role of
// an already-authenticated identity.
package policy

import (
	"errors"
	"strings"

	"github.com/upadhyaysaumya55/CruiseShip-Management-System/internal/models"
)

var (
	// ErrNoRolesConfigured means the operation declared no allowed
	// roles. This is treated as a configuration bug and denies access
	// rather than allowing it.
	ErrNoRolesConfigured = errors.New("no roles configured for this operation")

	ErrForbidden = errors.New("access denied")
)

// RoleSet is an immutable set of roles permitted to perform an
// operation. Build one with Roles and pass it by value; never mutate a
// set after handing it to a route.
type RoleSet map[models.Role]struct{}

// Roles builds a RoleSet. Role names are normalised to lowercase so
// membership checks are case-insensitive.
func Roles(roles ...models.Role) RoleSet {
	set := make(RoleSet, len(roles))
	for _, r := range roles {
		set[normalize(r)] = struct{}{}
	}
	return set
}

// Contains reports whether role is in the set, ignoring case.
func (s RoleSet) Contains(role models.Role) bool {
	_, ok := s[normalize(role)]
	return ok
}

// List returns the set's roles in no particular order, mainly for
// error messages and logs.
func (s RoleSet) List() []models.Role {
	out := make([]models.Role, 0, len(s))
	for r := range s {
		out = append(out, r)
	}
	return out
}

// Authorize grants access when callerRole is in allowed. An empty
// allow-set always denies (fail-closed), and an empty caller role is
// never granted anything.
func Authorize(callerRole models.Role, allowed RoleSet) error {
	if len(allowed) == 0 {
		return ErrNoRolesConfigured
	}
	if callerRole == "" {
		return ErrForbidden
	}
	if !allowed.Contains(callerRole) {
		return ErrForbidden
	}
	return nil
}

func normalize(r models.Role) models.Role {
	return models.Role(strings.ToLower(string(r)))
}
