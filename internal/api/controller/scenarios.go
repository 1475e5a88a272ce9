package controller

import (
	"net/http"

	"github.com/enermap/enermap/internal/domain/dto"
	"github.com/enermap/enermap/internal/pkg/constants"
	"github.com/labstack/echo/v4"
)

func (c *Controller) ListScenarios(ctx echo.Context) error {
	scenarios, err := c.scenarios.ListScenarios(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, scenarios)
}

func (c *Controller) ListParamKeys(ctx echo.Context) error {
	keys, err := c.scenarios.ListParamKeys(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, keys)
}

func (c *Controller) GetScenarioValues(ctx echo.Context) error {
	req := &dto.ScenarioValuesRequest{}
	if err := ctx.Bind(req); err != nil {
		return err
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	values, err := c.scenarios.ScenarioValues(ctx.Request().Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, values)
}

func (c *Controller) GetTerritoryParams(ctx echo.Context) error {
	req := &dto.TerritoryParamsRequest{}
	if err := ctx.Bind(req); err != nil {
		return err
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	resp, err := c.scenarios.TerritoryParams(ctx.Request().Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, resp)
}

func (c *Controller) PreviewScenario(ctx echo.Context) error {
	req := &dto.ScenarioPreviewRequest{}
	if err := ctx.Bind(req); err != nil {
		return err
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	records, err := c.scenarios.Preview(ctx.Request().Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, records)
}

func (c *Controller) SaveScenario(ctx echo.Context) error {
	req := &dto.ScenarioSaveRequest{}
	if err := ctx.Bind(req); err != nil {
		return err
	}

	// Token identity fills in when the body omits the username.
	if req.Username == "" {
		if username, ok := ctx.Get(constants.CtxKeyUsername).(string); ok {
			req.Username = username
		}
	}

	if err := ctx.Validate(req); err != nil {
		return err
	}

	result, err := c.scenarios.Save(ctx.Request().Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, result)
}
