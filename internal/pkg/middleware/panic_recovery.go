package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// PanicRecoveryMiddleware creates a middleware that recovers from panics
// and logs them with stack traces before returning a 500 response.
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					handlePanic(c, r, zapLogger)
				}
			}()

			return next(c)
		}
	}
}

// handlePanic handles the panic recovery, logging, and response
func handlePanic(c echo.Context, r interface{}, zapLogger *logger.ZapLogger) {
	stackTrace := string(debug.Stack())

	err, ok := r.(error)
	if !ok {
		err = fmt.Errorf("%v", r)
	}

	zapLogger.Error("Panic recovered",
		logger.String("method", c.Request().Method),
		logger.String("path", c.Request().URL.Path),
		logger.String("client_ip", c.RealIP()),
		logger.Err(err),
		logger.String("stacktrace", stackTrace),
	)

	// Notify New Relic if a transaction is in flight
	if txn, ok := c.Get("nr_txn").(*newrelic.Transaction); ok && txn != nil {
		txn.NoticeError(err)
	}

	if !c.Response().Committed {
		_ = c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"error":   "Internal server error",
			"code":    http.StatusInternalServerError,
		})
	}
}
