package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	sloggin "github.com/samber/slog-gin"
)

// AccessLog logs every request through slog-gin, except for the given route
// templates. Those carry a credential in the path, so they get a reduced line
// with the template in place of the path and no params.
func AccessLog(logger *slog.Logger, redactedRoutes ...string) gin.HandlerFunc {
	redacted := make(map[string]struct{}, len(redactedRoutes))
	for _, r := range redactedRoutes {
		redacted[r] = struct{}{}
	}
	isRedacted := func(c *gin.Context) bool {
		_, ok := redacted[c.FullPath()]
		return ok
	}

	cfg := sloggin.DefaultConfig()
	cfg.Filters = []sloggin.Filter{sloggin.Ignore(isRedacted)}
	full := sloggin.NewWithConfig(logger, cfg)

	return func(c *gin.Context) {
		start := time.Now()
		full(c)

		if !isRedacted(c) {
			return
		}

		status := c.Writer.Status()
		level := slog.LevelInfo
		switch {
		case status >= http.StatusInternalServerError:
			level = slog.LevelError
		case status >= http.StatusBadRequest:
			level = slog.LevelWarn
		}

		logger.LogAttrs(c.Request.Context(), level, "Incoming request",
			slog.Group("request",
				slog.String("method", c.Request.Method),
				slog.String("route", c.FullPath()),
				slog.String("ip", c.ClientIP()),
			),
			slog.Group("response",
				slog.Duration("latency", time.Since(start)),
				slog.Int("status", status),
			),
		)
	}
}
