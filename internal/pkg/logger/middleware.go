package logger

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// ZapEchoMiddleware creates request-logging middleware for Echo using the
// Zap logger, starting a New Relic transaction per request when available.
func ZapEchoMiddleware(zapLogger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var txn *newrelic.Transaction

			// Start New Relic transaction if app is available
			if zapLogger.nrApp != nil {
				txn = zapLogger.nrApp.StartTransaction(c.Request().Method + " " + c.Path())
				defer txn.End()

				c.Set("nr_txn", txn)
				txn.SetWebRequestHTTP(c.Request())
				txn.SetWebResponse(c.Response().Writer)
			}

			// Start timer
			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			// Process request
			err := next(c)

			// Calculate metrics
			latency := time.Since(start)
			statusCode := c.Response().Status
			clientIP := c.RealIP()
			method := c.Request().Method

			if raw != "" {
				path = path + "?" + raw
			}

			// Get user ID if available
			userID := c.Get("user_id")
			userIDStr := "anonymous"
			if userID != nil {
				userIDStr = fmt.Sprintf("%v", userID)
			}

			requestID := c.Response().Header().Get(echo.HeaderXRequestID)

			fields := []Field{
				String("method", method),
				String("path", path),
				Int("status", statusCode),
				Duration("latency", latency),
				String("client_ip", clientIP),
				String("user_id", userIDStr),
				String("request_id", requestID),
			}

			if err != nil {
				fields = append(fields, Err(err))
				zapLogger.Error("HTTP request failed", fields...)
				if txn != nil {
					txn.NoticeError(err)
				}
				return err
			}

			zapLogger.Info("HTTP request", fields...)
			return nil
		}
	}
}
