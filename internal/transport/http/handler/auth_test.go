package handler_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/ErlanBelekov/rideboard/internal/domain"
	"github.com/ErlanBelekov/rideboard/internal/transport/http/handler"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testLogger = slog.New(slog.NewTextHandler(os.Stderr, nil))

// fakeAuthUsecase implements the unexported authUsecaser interface via method matching.
type fakeAuthUsecase struct {
	login func(ctx context.Context, token string) error
}

func (f *fakeAuthUsecase) Login(ctx context.Context, token string) error {
	return f.login(ctx, token)
}

func newAuthEngine(uc *fakeAuthUsecase) *gin.Engine {
	h := handler.NewAuthHandler(uc, testLogger)

	r := gin.New()
	r.POST("/login/:token", h.Login)
	return r
}

func postLogin(uc *fakeAuthUsecase, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login/"+token, nil)
	newAuthEngine(uc).ServeHTTP(w, req)
	return w
}

func TestLogin_Valid_Returns200WithOK(t *testing.T) {
	var gotToken string
	uc := &fakeAuthUsecase{
		login: func(_ context.Context, token string) error {
			gotToken = token
			return nil
		},
	}

	w := postLogin(uc, "abc123")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := strings.TrimSpace(w.Body.String()); got != `{"ok":true}` {
		t.Errorf("body = %s, want {\"ok\":true}", got)
	}
	if gotToken != "abc123" {
		t.Errorf("token = %q, want abc123", gotToken)
	}
}

func TestLogin_InvalidToken_Returns401(t *testing.T) {
	uc := &fakeAuthUsecase{
		login: func(_ context.Context, _ string) error { return domain.ErrInvalidToken },
	}

	w := postLogin(uc, "nope")

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid token") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestLogin_StoreError_Returns500WithoutDetails(t *testing.T) {
	uc := &fakeAuthUsecase{
		login: func(_ context.Context, _ string) error { return errors.New("dial tcp: connection refused") },
	}

	w := postLogin(uc, "abc123")

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
	if strings.Contains(w.Body.String(), "connection refused") {
		t.Errorf("internal error leaked: %s", w.Body.String())
	}
}
