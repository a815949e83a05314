package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ErlanBelekov/rideboard/internal/domain"
	"github.com/ErlanBelekov/rideboard/internal/transport/http/middleware"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeGate struct {
	calls     int
	lastToken string
	err       error
}

func (g *fakeGate) Authorize(_ context.Context, token string) error {
	g.calls++
	g.lastToken = token
	return g.err
}

// newEngine protects GET /protected with RequireSession; the handler echoes
// the token it finds in the context.
func newEngine(gate *fakeGate) *gin.Engine {
	r := gin.New()
	r.GET("/protected", middleware.RequireSession(gate), func(c *gin.Context) {
		c.String(http.StatusOK, "%s", c.GetString(middleware.TokenKey))
	})
	return r
}

func doRequest(gate *fakeGate, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	newEngine(gate).ServeHTTP(w, req)
	return w
}

func TestExtractBearer(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr error
	}{
		{"Bearer abc123", "abc123", nil},
		{"Bearer  abc123 ", "abc123", nil},
		{"", "", middleware.ErrMissingAuthHeader},
		{"bearer abc123", "", middleware.ErrMalformedAuth},
		{"Basic dXNlcjpwYXNz", "", middleware.ErrMalformedAuth},
		{"Bearerabc123", "", middleware.ErrMalformedAuth},
		{"Bearer ", "", middleware.ErrEmptyToken},
		{"Bearer    ", "", middleware.ErrEmptyToken},
	}

	for _, tt := range tests {
		got, err := middleware.ExtractBearer(tt.header)
		if !errors.Is(err, tt.wantErr) || (tt.wantErr == nil && err != nil) {
			t.Errorf("ExtractBearer(%q) error = %v, want %v", tt.header, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ExtractBearer(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}

func TestRequireSession_MissingHeader_Returns401WithoutCheckingSession(t *testing.T) {
	gate := &fakeGate{}
	w := doRequest(gate, "")

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Missing Authorization header") {
		t.Errorf("body = %s", w.Body.String())
	}
	if gate.calls != 0 {
		t.Errorf("Authorize called %d times, want 0", gate.calls)
	}
}

func TestRequireSession_NonBearerScheme_Returns401(t *testing.T) {
	w := doRequest(&fakeGate{}, "Basic dXNlcjpwYXNz")

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Expected: Bearer <token>") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestRequireSession_NotLoggedIn_Returns401(t *testing.T) {
	w := doRequest(&fakeGate{err: domain.ErrNotLoggedIn}, "Bearer abc123")

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Not logged in") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestRequireSession_Expired_Returns401WithReason(t *testing.T) {
	w := doRequest(&fakeGate{err: domain.ErrSessionExpired}, "Bearer abc123")

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Session expired") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestRequireSession_Active_PassesTokenOnce(t *testing.T) {
	gate := &fakeGate{}
	w := doRequest(gate, "Bearer abc123")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := w.Body.String(); got != "abc123" {
		t.Errorf("body = %q, want abc123", got)
	}
	if gate.calls != 1 || gate.lastToken != "abc123" {
		t.Errorf("Authorize calls = %d token = %q, want 1 call with abc123", gate.calls, gate.lastToken)
	}
}
