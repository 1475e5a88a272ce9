package energy

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/enermap/enermap/internal/domain"
	"github.com/enermap/enermap/internal/domain/dto"
	"github.com/enermap/enermap/internal/pkg/constants"
	"github.com/enermap/enermap/internal/pkg/store"
)

type Service struct {
	store store.Store
}

func NewEnergyService(store store.Store) *Service {
	return &Service{store: store}
}

func (s *Service) Values(ctx context.Context, req *dto.EnergyValuesRequest) ([]*domain.EnergyValue, error) {
	opts := valuesOpts(req)

	values, err := s.store.ListEnergyValues(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("list energy values: %w", err)
	}

	for _, v := range values {
		v.Domain = opts.Domain
		v.BaseGroup = opts.BaseGroup
		v.CategoryCode = opts.CategoryCode
	}

	return values, nil
}

func (s *Service) Series(ctx context.Context, req *dto.EnergySeriesRequest) ([]*domain.SeriesPoint, error) {
	code := req.TerritoryCode()
	if code == "" {
		return nil, constants.NewCodedError(fmt.Sprintf("missing code for level %s", req.Level), http.StatusBadRequest)
	}

	points, err := s.store.ListEnergySeries(ctx, store.EnergySeriesOpts{
		EnergyValuesOpts: valuesOpts(&req.EnergyValuesRequest),
		TerritoryCode:    code,
	})
	if err != nil {
		return nil, fmt.Errorf("list energy series: %w", err)
	}

	return points, nil
}

func valuesOpts(req *dto.EnergyValuesRequest) store.EnergyValuesOpts {
	opts := store.EnergyValuesOpts{
		Level:        domain.Level(req.Level),
		Resolution:   domain.Resolution(req.Resolution),
		Domain:       domain.EnergyDomain(req.Domain),
		ScenarioCode: req.ScenarioOrDefault(),
		Year:         req.Year,
	}

	if req.DayType != "" {
		dayType := strings.ToLower(req.DayType)
		opts.DayType = &dayType
	}
	if req.BaseGroup != "" {
		baseGroup := strings.ToLower(req.BaseGroup)
		opts.BaseGroup = &baseGroup
	}
	if req.CategoryCode != "" {
		code := req.CategoryCode
		opts.CategoryCode = &code
	}

	return opts
}
