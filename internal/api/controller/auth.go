package controller

import (
	"net/http"
	"time"

	"github.com/enermap/enermap/internal/domain/dto"
	"github.com/enermap/enermap/internal/pkg/constants"
	"github.com/labstack/echo/v4"
)

func (c *Controller) Login(ctx echo.Context) error {
	req := &dto.LoginRequest{}
	if err := ctx.Bind(req); err != nil {
		return err
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	resp, err := c.auth.Login(ctx.Request().Context(), req)
	if err != nil {
		return err
	}

	ctx.SetCookie(&http.Cookie{
		Name:     constants.CookieKeyAuthToken,
		Value:    resp.AuthToken,
		Path:     "/",
		Expires:  time.Now().Add(24 * time.Hour),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return ctx.JSON(http.StatusOK, resp)
}
