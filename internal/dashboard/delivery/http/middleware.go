package http

import (
	"errors"
	"net/http"

	"golang-stock-sentiment/internal/dashboard/service"
	"golang-stock-sentiment/internal/entity"
	"golang-stock-sentiment/pkg/common"
	"golang-stock-sentiment/pkg/logger"

	"github.com/labstack/echo/v4"
)

const sessionContextKey = "dashboard.session"

// SessionMiddleware loads the session named by the X-Session-ID header (or
// starts a new one), echoes its id back and stores it after the handler ran.
func SessionMiddleware(sessions service.SessionService, log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			session, err := sessions.Load(ctx, c.Request().Header.Get(common.HeaderSessionID))
			if err != nil {
				log.ErrorContext(ctx, "Failed to load session", logger.ErrorField(err))
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to load session"})
			}
			c.Set(sessionContextKey, session)
			c.Response().Header().Set(common.HeaderSessionID, session.ID)

			handlerErr := next(c)

			if err := sessions.Save(ctx, session); err != nil {
				log.ErrorContext(ctx, "Failed to save session", logger.ErrorField(err), logger.StringField("session_id", session.ID))
			}
			return handlerErr
		}
	}
}

func sessionFrom(c echo.Context) *entity.Session {
	session, _ := c.Get(sessionContextKey).(*entity.Session)
	return session
}

// errorResponse maps service errors onto status codes.
func errorResponse(c echo.Context, err error) error {
	if errors.Is(err, common.ErrInvalidInput) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
}
