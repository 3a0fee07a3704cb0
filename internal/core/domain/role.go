package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Role is the closed set of account roles.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleUser    Role = "user"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleUser:
		return true
	}
	return false
}

// ParseRole converts s into a Role, rejecting anything outside the enum.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", Invalid(fmt.Sprintf("role must be one of: %s, %s, %s", RoleAdmin, RoleManager, RoleUser))
	}
	return r, nil
}

// RoleSet is the allow-list a protected route declares.
type RoleSet map[Role]struct{}

// Roles builds a RoleSet from the given roles.
func Roles(roles ...Role) RoleSet {
	set := make(RoleSet, len(roles))
	for _, r := range roles {
		set[r] = struct{}{}
	}
	return set
}

// Contains reports whether r is a member of the set.
func (s RoleSet) Contains(r Role) bool {
	_, ok := s[r]
	return ok
}

func (s RoleSet) String() string {
	names := make([]string, 0, len(s))
	for r := range s {
		names = append(names, string(r))
	}
	sort.Strings(names)
	return strings.Join(names, ",")
}

// Authorize returns ErrForbidden unless role is in allowed.
func Authorize(role Role, allowed RoleSet) error {
	if !allowed.Contains(role) {
		return ErrForbidden
	}
	return nil
}
