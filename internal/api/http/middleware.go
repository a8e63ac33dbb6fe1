package http

import (
	"context"
	"errors"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk/internal/observability"
	apperrors "github.com/spec-kit/helpdesk/pkg/util"
)

// RegisterMiddlewares attaches global middlewares such as error handling and logging.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, metrics *observability.Metrics, timeout time.Duration) {
	app.Use(observability.RequestLogger(logger, metrics))
	app.Use(errorHandlingMiddleware(logger, metrics))
	if timeout > 0 {
		app.Use(requestTimeoutMiddleware(timeout))
	}
}

func requestTimeoutMiddleware(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

// errorHandlingMiddleware is the boundary where errors become responses:
// redirect-carrying domain errors become a bare 302, everything else a plain
// status page.
func errorHandlingMiddleware(logger *zap.Logger, metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = apperrors.NewInternalError(nil)
			}
			if err == nil {
				return
			}

			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				c.Status(fiberErr.Code)
				err = c.SendString(fiberErr.Message)
				return
			}

			domainErr := apperrors.ToDomainError(err)
			metrics.RecordError(observability.RoutePattern(c), c.Method(), domainErr.Code)
			if domainErr.Redirect != "" {
				c.Response().ResetBody()
				err = c.Redirect(domainErr.Redirect)
				return
			}
			if domainErr.HTTPStatus >= http.StatusInternalServerError {
				logger.Error("request failed", zap.String("path", c.Path()), zap.Error(domainErr))
			}
			c.Response().ResetBody()
			c.Status(domainErr.HTTPStatus)
			err = c.SendString(http.StatusText(domainErr.HTTPStatus))
		}()
		return c.Next()
	}
}
