package api

import (
	"strings"

	"github.com/enermap/enermap/internal/pkg/constants"
	"github.com/enermap/enermap/internal/pkg/logger"
	"github.com/enermap/enermap/internal/pkg/utils"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestIDMiddleware tags every request with a uuid carried through the
// context so all log lines below can be correlated.
func (svc *APIService) RequestIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		requestID := ctx.Request().Header.Get(echo.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx.Response().Header().Set(echo.HeaderXRequestID, requestID)
		ctx.SetRequest(ctx.Request().WithContext(
			logger.WithRequestID(ctx.Request().Context(), requestID),
		))

		return next(ctx)
	}
}

// AuthMiddleware resolves the caller's username from a bearer token or the
// auth cookie when present. It does not reject anonymous requests: the save
// endpoint takes the username in its body and only uses the token identity
// as a fallback.
func (svc *APIService) AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		raw := ""
		if header := ctx.Request().Header.Get(echo.HeaderAuthorization); strings.HasPrefix(header, "Bearer ") {
			raw = strings.TrimPrefix(header, "Bearer ")
		} else if cookie, err := ctx.Cookie(constants.CookieKeyAuthToken); err == nil {
			raw = cookie.Value
		}

		if raw != "" {
			if token, err := utils.ParseAuthToken(raw); err == nil {
				ctx.Set(constants.CtxKeyUsername, token.Username)
			}
		}

		return next(ctx)
	}
}
