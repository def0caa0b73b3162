package rbac

import "net/http"

var defaultChecker = NewChecker(nil)

// Allowed checks one permission against the default policy. Handlers use it
// for per-record decisions the route-level gate cannot make, like serving
// the answer-keyed quiz view or another student's submission.
func Allowed(role, perm string) bool {
	return defaultChecker.Has(role, perm)
}

// Require gates a route on a single permission for the role in context.
func Require(perm string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := RoleFromContext(r.Context())
			if role == "" || !defaultChecker.Has(role, perm) {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAny gates a route on holding at least one of the permissions. The
// submissions route pairs view-own with view-all this way; ownership of the
// record itself is checked in the handler.
func RequireAny(perms ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := RoleFromContext(r.Context())
			if role == "" || !defaultChecker.Any(role, perms...) {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
