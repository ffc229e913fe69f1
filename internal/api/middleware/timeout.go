package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// TimeoutConfig returns timeout middleware configuration
func TimeoutConfig(timeout time.Duration) echo.MiddlewareFunc {
	return middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: timeout,
	})
}

// SelectiveTimeoutConfig applies a longer timeout to collection endpoints,
// which wait on external job boards, and the default everywhere else.
func SelectiveTimeoutConfig(defaultTimeout, collectionTimeout time.Duration) echo.MiddlewareFunc {
	defaultMiddleware := TimeoutConfig(defaultTimeout)
	collectionMiddleware := TimeoutConfig(collectionTimeout)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			switch c.Path() {
			case "/api/v1/jobs/refresh", "/api/v1/recommendations":
				return collectionMiddleware(next)(c)
			default:
				return defaultMiddleware(next)(c)
			}
		}
	}
}
