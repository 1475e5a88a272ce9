package api

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/enermap/enermap/internal/api/controller"
	"github.com/enermap/enermap/internal/pkg/constants"
	"github.com/enermap/enermap/internal/pkg/store"
	"github.com/enermap/enermap/internal/service/auth"
	"github.com/enermap/enermap/internal/service/energy"
	"github.com/enermap/enermap/internal/service/scenario"
)

type APIService struct {
	router          *echo.Echo
	scenarioService *scenario.Service
	energyService   *energy.Service
	authService     *auth.Service
}

func (svc *APIService) Start(addr string) error {
	return svc.router.Start(addr)
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func NewAPIService(store store.Store) (*APIService, error) {
	svc := &APIService{router: echo.New()}
	svc.router.HideBanner = true

	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.JSONSerializer = sonicSerializer{}
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.Logger())
	svc.router.Use(svc.RequestIDMiddleware)
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: viper.GetStringSlice(constants.ViperKeyCORSOrigins),
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.DELETE},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	svc.scenarioService = scenario.NewScenarioService(store)
	svc.energyService = energy.NewEnergyService(store)
	svc.authService = auth.NewService()

	svc.router.GET("/", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	api := svc.router.Group("/api/v1")
	cntrl := controller.NewController(svc.scenarioService, svc.energyService, svc.authService)

	api.POST("/auth/login", cntrl.Login)

	scenarios := api.Group("/scenarios")
	scenarios.GET("/list", cntrl.ListScenarios)
	scenarios.GET("/param-keys", cntrl.ListParamKeys)
	scenarios.GET("/values", cntrl.GetScenarioValues)
	scenarios.GET("/territory", cntrl.GetTerritoryParams)
	scenarios.GET("/preview", cntrl.PreviewScenario)
	scenarios.POST("/save", cntrl.SaveScenario, svc.AuthMiddleware)

	energyGroup := api.Group("/energy")
	energyGroup.GET("/values", cntrl.GetEnergyValues)
	energyGroup.GET("/series", cntrl.GetEnergySeries)

	return svc, nil
}
