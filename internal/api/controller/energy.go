package controller

import (
	"net/http"

	"github.com/enermap/enermap/internal/domain/dto"
	"github.com/labstack/echo/v4"
)

func (c *Controller) GetEnergyValues(ctx echo.Context) error {
	req := &dto.EnergyValuesRequest{}
	if err := ctx.Bind(req); err != nil {
		return err
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	values, err := c.energy.Values(ctx.Request().Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, values)
}

func (c *Controller) GetEnergySeries(ctx echo.Context) error {
	req := &dto.EnergySeriesRequest{}
	if err := ctx.Bind(req); err != nil {
		return err
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	points, err := c.energy.Series(ctx.Request().Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, points)
}
