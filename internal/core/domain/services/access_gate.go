package services

import (
	"fmt"
	"sort"
	"strings"

	"logistics/internal/core/domain/model/user"
	"logistics/internal/pkg/errs"
)

// AccessGate admits a fixed set of roles. It is built once per route so a
// misspelled role fails at startup rather than on the first request.
type AccessGate struct {
	allowed map[user.Role]struct{}
}

// NewAccessGate parses role names case-insensitively. An unknown name is
// returned as errs.ValueIsInvalidError.
func NewAccessGate(roles ...string) (AccessGate, error) {
	if len(roles) == 0 {
		return AccessGate{}, errs.NewValueIsRequiredError("roles")
	}

	allowed := make(map[user.Role]struct{}, len(roles))
	for _, name := range roles {
		role, err := user.ParseRole(name)
		if err != nil {
			return AccessGate{}, err
		}
		allowed[role] = struct{}{}
	}
	return AccessGate{allowed: allowed}, nil
}

// MustNewAccessGate is NewAccessGate for route registration.
func MustNewAccessGate(roles ...string) AccessGate {
	gate, err := NewAccessGate(roles...)
	if err != nil {
		panic(fmt.Sprintf("access gate: %v", err))
	}
	return gate
}

// Authorize returns errs.AuthorizationError unless role is admitted.
func (g AccessGate) Authorize(role user.Role) error {
	if _, ok := g.allowed[role]; !ok {
		return errs.NewAuthorizationError("")
	}
	return nil
}

// Roles lists the admitted role names in a stable order.
func (g AccessGate) Roles() []string {
	names := make([]string, 0, len(g.allowed))
	for role := range g.allowed {
		names = append(names, role.String())
	}
	sort.Strings(names)
	return names
}

func (g AccessGate) String() string {
	return "AccessGate(" + strings.Join(g.Roles(), ",") + ")"
}
