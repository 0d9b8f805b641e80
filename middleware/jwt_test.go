package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken("user-1", "sup@example.com", "Supervisor", "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	var got *Claims
	handler := JWTMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetClaims(r)
	}))

	req := httptest.NewRequest("GET", "/api/v1/projects", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if got == nil {
		t.Fatal("claims not attached to context")
	}
	if got.UserID != "user-1" || got.Email != "sup@example.com" || got.Role != "admin" {
		t.Errorf("claims = %+v", got)
	}
}

func TestJWTMiddlewareRejects(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
		{"malformed token", "Bearer not.a.jwt"},
	}

	handler := JWTMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	}))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/v1/projects", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, expected 401", rec.Code)
			}
		})
	}
}

// Tokens must be signed with the secret as it stands at call time;
// .env is only loaded by config.Connect, well after this package's init.
func TestSigningKeyReadAtUse(t *testing.T) {
	t.Setenv("JWT_SECRET", "late-loaded-secret")

	token, err := GenerateToken("user-1", "sup@example.com", "Supervisor", "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte("late-loaded-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token not signed with current JWT_SECRET: %v", err)
	}

	t.Setenv("JWT_SECRET", "rotated-secret")
	handler := JWTMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("token signed under the old secret should not validate")
	}))
	req := httptest.NewRequest("GET", "/api/v1/projects", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, expected 401 after secret change", rec.Code)
	}
}

func TestGetClaimsWithoutContext(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if GetClaims(req) != nil {
		t.Error("expected nil claims on bare request")
	}
	if GetUserID(req) != "" || GetEmail(req) != "" || GetRole(req) != "" {
		t.Error("expected empty accessors on bare request")
	}
}
