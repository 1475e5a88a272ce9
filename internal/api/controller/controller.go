package controller

import (
	"github.com/enermap/enermap/internal/service/auth"
	"github.com/enermap/enermap/internal/service/energy"
	"github.com/enermap/enermap/internal/service/scenario"
)

type Controller struct {
	scenarios *scenario.Service
	energy    *energy.Service
	auth      *auth.Service
}

func NewController(scenarios *scenario.Service, energy *energy.Service, auth *auth.Service) *Controller {
	return &Controller{scenarios: scenarios, energy: energy, auth: auth}
}
