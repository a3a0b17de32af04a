package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/ericjank/httpkit/core/handler"
	"github.com/ericjank/httpkit/core/logger"
)

// LoggingConfig configures the request logging middleware.
type LoggingConfig struct {
	// Skip disables logging for specific requests, e.g. health checks
	Skip func(ctx handler.Context) bool

	// Logger is the slog logger to use (default: slog.Default())
	Logger *slog.Logger

	// LogLevel for completed requests (default: slog.LevelInfo)
	LogLevel slog.Level

	// SlowRequestThreshold logs requests above it at warn level (0 disables)
	SlowRequestThreshold time.Duration
}

// statusWriter is the optional capability of the router's response writer
// used to report the final status code.
type statusWriter interface {
	Status() int
	Written() bool
}

// Logging creates a request logging middleware with default configuration.
func Logging[C handler.Context]() handler.Middleware[C] {
	return LoggingWithConfig[C](LoggingConfig{})
}

// LoggingWithConfig creates a request logging middleware. Each request is
// logged after its response renders, with method, path, status, and
// duration. Render errors still propagate to the error handler.
func LoggingWithConfig[C handler.Context](cfg LoggingConfig) handler.Middleware[C] {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			start := time.Now()
			resp := next(ctx)
			if resp == nil {
				return nil
			}

			return func(w http.ResponseWriter, r *http.Request) error {
				err := resp(w, r)
				elapsed := time.Since(start)

				status := 0
				if sw, ok := w.(statusWriter); ok && sw.Written() {
					status = sw.Status()
				}

				attrs := []slog.Attr{
					logger.Method(r.Method),
					logger.Path(r.URL.Path),
					logger.Status(status),
					logger.Duration(elapsed),
				}
				if id, ok := GetRequestID(ctx); ok {
					attrs = append(attrs, logger.RequestID(id))
				}
				attrs = append(attrs, logger.Error(err))

				level := cfg.LogLevel
				switch {
				case err != nil || status >= http.StatusInternalServerError:
					level = slog.LevelError
				case cfg.SlowRequestThreshold > 0 && elapsed > cfg.SlowRequestThreshold:
					level = slog.LevelWarn
				}

				cfg.Logger.LogAttrs(r.Context(), level, "request completed", attrs...)
				return err
			}
		}
	}
}
