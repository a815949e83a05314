package httptransport

import (
	"context"
	"log/slog"

	"github.com/ErlanBelekov/rideboard/internal/transport/http/handler"
	"github.com/ErlanBelekov/rideboard/internal/transport/http/middleware"
	"github.com/gin-gonic/gin"
)

// loginRoute carries the credential as a path parameter.
const loginRoute = "/login/:token"

// SessionGate checks that a bearer token has a live session.
type SessionGate interface {
	Authorize(ctx context.Context, token string) error
}

func NewRouter(
	logger *slog.Logger,
	authHandler *handler.AuthHandler,
	entryHandler *handler.EntryHandler,
	userHandler *handler.UserHandler,
	gate SessionGate,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Security())
	r.Use(middleware.AccessLog(logger, loginRoute))
	r.Use(middleware.Metrics())

	// The token in the path is the credential, so login sits outside the session check.
	r.POST(loginRoute, authHandler.Login)

	requireSession := middleware.RequireSession(gate)

	r.GET("/users", requireSession, userHandler.List)

	entries := r.Group("/entries", requireSession)
	entries.GET("", entryHandler.List)
	entries.POST("", entryHandler.Create)
	entries.GET("/:id", entryHandler.GetByID)
	entries.GET("/:id/contact", entryHandler.GetContact)

	return r
}
