package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const testSecret = "unit-test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func runJWT(t *testing.T, authHeader string) (*httptest.ResponseRecorder, any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/booking", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var captured any
	next := func(c echo.Context) error {
		captured = c.Get("user_id")
		return c.NoContent(http.StatusOK)
	}
	if err := JWTAuth(testSecret)(next)(c); err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	return rec, captured
}

func TestJWTAuthMissingHeader(t *testing.T) {
	rec, _ := runJWT(t, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestJWTAuthWrongSecret(t *testing.T) {
	token := signToken(t, "other-secret", jwt.MapClaims{
		"sub": float64(1),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	rec, _ := runJWT(t, "Bearer "+token)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestJWTAuthExpiredToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": float64(1),
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	rec, _ := runJWT(t, "Bearer "+token)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestJWTAuthMissingSubject(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	rec, _ := runJWT(t, "Bearer "+token)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestJWTAuthValidToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": float64(42),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	rec, captured := runJWT(t, "Bearer "+token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	uid, ok := captured.(uint64)
	if !ok || uid != 42 {
		t.Fatalf("expected user_id uint64(42), got %#v", captured)
	}
}

// Numeric subjects encoded as strings are accepted too.
func TestJWTAuthStringSubject(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "42",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	rec, captured := runJWT(t, "Bearer "+token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if uid, ok := captured.(uint64); !ok || uid != 42 {
		t.Fatalf("expected user_id uint64(42), got %#v", captured)
	}
}
