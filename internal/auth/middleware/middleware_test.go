package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/quizforge/quizforge/internal/rbac"
)

func TestJWTRoundTrip(t *testing.T) {
	a := NewAuthService("test-secret")
	tok, err := a.IssueJWT("user-1", "instructor")
	if err != nil {
		t.Fatalf("IssueJWT: %v", err)
	}
	c, err := a.Parse(tok)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c.Sub != "user-1" || c.Role != "instructor" {
		t.Fatalf("claims = %+v", c)
	}
}

func TestParseRejectsForgedToken(t *testing.T) {
	a := NewAuthService("secret-a")
	other := NewAuthService("secret-b")
	tok, err := other.IssueJWT("user-1", "admin")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := a.Parse(tok); err == nil {
		t.Fatal("token signed with a different secret accepted")
	}
	if _, err := a.Parse("not-a-token"); err == nil {
		t.Fatal("garbage token accepted")
	}
}

func TestJWTMiddlewareAttachesSubjectAndRole(t *testing.T) {
	a := NewAuthService("test-secret")
	tok, err := a.IssueJWT("user-1", "student")
	if err != nil {
		t.Fatal(err)
	}

	var gotSub, gotRole string
	h := JWTMiddleware(a)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSub = SubjectFromContext(r.Context())
		gotRole = rbac.RoleFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/quizzes/q1", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if gotSub != "user-1" || gotRole != "student" {
		t.Fatalf("sub = %q, role = %q", gotSub, gotRole)
	}
}

func TestJWTMiddlewareRejects(t *testing.T) {
	a := NewAuthService("test-secret")
	h := JWTMiddleware(a)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler reached without a valid token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/quizzes/q1", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("missing header: status = %d", w.Code)
	}

	req.Header.Set("Authorization", "Bearer bogus")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad token: status = %d", w.Code)
	}
}
