package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func TestSessionGuardNoToken(t *testing.T) {
	r, _ := newAuthTestRouter(t, newMemoryAuthStore())

	w := doJSON(r, http.MethodGet, "/user-data", "", nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 without token, got %d", w.Code)
	}
	envelope := decodeEnvelope(t, w)
	if envelope.Error != "no token provided" {
		t.Fatalf("expected 'no token provided', got %v", envelope.Error)
	}
}

func TestSessionGuardMalformedToken(t *testing.T) {
	r, _ := newAuthTestRouter(t, newMemoryAuthStore())

	w := doJSON(r, http.MethodGet, "/user-data", "", &http.Cookie{Name: "token", Value: "garbage"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for malformed token, got %d", w.Code)
	}
	envelope := decodeEnvelope(t, w)
	if envelope.Error != "invalid or expired token" {
		t.Fatalf("expected 'invalid or expired token', got %v", envelope.Error)
	}
}

func TestSessionGuardRevokedSession(t *testing.T) {
	store := newMemoryAuthStore()
	r, _ := newAuthTestRouter(t, store)

	doJSON(r, http.MethodPost, "/signup", `{"username":"ana","email":"ana@x.com","password":"secret123"}`, nil)
	login := doJSON(r, http.MethodPost, "/login", `{"email":"ana@x.com","password":"secret123"}`, nil)
	cookie := tokenCookie(t, login)

	// Revoke behind the guard's back; the next request must observe it.
	now := time.Now()
	store.sessions[cookie.Value].RevokedAt = &now

	w := doJSON(r, http.MethodGet, "/user-data", "", cookie)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for revoked session, got %d", w.Code)
	}
	envelope := decodeEnvelope(t, w)
	if envelope.Error != "invalid session" {
		t.Fatalf("expected 'invalid session', got %v", envelope.Error)
	}
}

func TestSessionGuardExpiredTokenWithActiveSession(t *testing.T) {
	store := newMemoryAuthStore()
	r, _ := newAuthTestRouter(t, store)

	// A signed but expired token, with a still-active session row.
	// Expiry must win.
	claims := jwt.MapClaims{
		"userId": int64(1),
		"email":  "ana@x.com",
		"exp":    time.Now().Add(-time.Minute).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing: %v", err)
	}
	if err := store.CreateSession(context.Background(), 1, expired, "127.0.0.1", "test"); err != nil {
		t.Fatalf("seeding session: %v", err)
	}

	w := doJSON(r, http.MethodGet, "/user-data", "", &http.Cookie{Name: "token", Value: expired})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %d", w.Code)
	}
}

func TestSessionGuardBearerHeaderFallback(t *testing.T) {
	r, _ := newAuthTestRouter(t, newMemoryAuthStore())

	doJSON(r, http.MethodPost, "/signup", `{"username":"ana","email":"ana@x.com","password":"secret123"}`, nil)
	login := doJSON(r, http.MethodPost, "/login", `{"email":"ana@x.com","password":"secret123"}`, nil)
	token := tokenCookie(t, login).Value

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/user-data", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 via bearer header, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestCORSMiddlewareAllowsConfiguredOrigin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORSMiddleware([]string{"https://app.example.com"}, true))
	r.GET("/ping", Ping)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://app.example.com")
	r.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Fatalf("expected origin echoed, got %q", got)
	}
	if w.Header().Get("Access-Control-Allow-Credentials") != "true" {
		t.Fatalf("expected credentials allowed")
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	r.ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Fatalf("unexpected origin allowed")
	}
}
