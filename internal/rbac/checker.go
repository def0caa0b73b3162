package rbac

import (
	"context"
	"strings"
)

// Checker answers role -> permission questions against a policy table.
// "*" grants everything; a trailing "*" grants a prefix, so "quiz:*"
// covers quiz:view and quiz:generate alike.
type Checker struct {
	policy map[string][]string
}

// NewChecker wraps a policy table, defaulting to RolePermissions.
func NewChecker(policy map[string][]string) *Checker {
	if policy == nil {
		policy = RolePermissions
	}
	return &Checker{policy: policy}
}

func (c *Checker) Has(role, perm string) bool {
	for _, p := range c.policy[role] {
		if p == "*" || p == perm {
			return true
		}
		if strings.HasSuffix(p, "*") && strings.HasPrefix(perm, strings.TrimSuffix(p, "*")) {
			return true
		}
	}
	return false
}

func (c *Checker) Any(role string, perms ...string) bool {
	for _, p := range perms {
		if c.Has(role, p) {
			return true
		}
	}
	return false
}

// ---- role in context ----

type roleKey struct{}

// WithRole attaches the authenticated role so route middleware and handlers
// can consult the policy without re-parsing the token.
func WithRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, roleKey{}, role)
}

func RoleFromContext(ctx context.Context) string {
	s, _ := ctx.Value(roleKey{}).(string)
	return s
}
