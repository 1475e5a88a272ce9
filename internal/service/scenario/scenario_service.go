package scenario

import (
	"context"
	"fmt"
	"net/http"

	"github.com/enermap/enermap/internal/domain"
	"github.com/enermap/enermap/internal/domain/dto"
	"github.com/enermap/enermap/internal/pkg/constants"
	"github.com/enermap/enermap/internal/pkg/store"
)

type Service struct {
	store store.Store
}

func NewScenarioService(store store.Store) *Service {
	return &Service{store: store}
}

func (s *Service) ListScenarios(ctx context.Context) ([]*domain.ScenarioWithYears, error) {
	scenarios, err := s.store.ListScenarios(ctx)
	if err != nil {
		return nil, fmt.Errorf("list scenarios: %w", err)
	}

	return scenarios, nil
}

type ParamKeyInfo struct {
	ParamKey string `json:"param_key"`
	domain.ParamMeta
}

func (s *Service) ListParamKeys(ctx context.Context) ([]*ParamKeyInfo, error) {
	keys, err := s.store.ListParamKeys(ctx)
	if err != nil {
		return nil, fmt.Errorf("list param keys: %w", err)
	}

	infos := make([]*ParamKeyInfo, 0, len(keys))
	for _, key := range keys {
		infos = append(infos, &ParamKeyInfo{ParamKey: key, ParamMeta: domain.MetaForParamKey(key)})
	}

	return infos, nil
}

type ScenarioValueRecord struct {
	TerritoryID int64            `json:"territory_id"`
	Name        string           `json:"name"`
	RegCod      *string          `json:"reg_cod"`
	ProvCod     *string          `json:"prov_cod"`
	MunCod      *string          `json:"mun_cod"`
	ParamKey    string           `json:"param_key"`
	Value       *float64         `json:"value"`
	Unit        *string          `json:"unit"`
	Meta        domain.ParamMeta `json:"meta"`
}

func (s *Service) ScenarioValues(ctx context.Context, req *dto.ScenarioValuesRequest) ([]*ScenarioValueRecord, error) {
	values, err := s.store.ListScenarioValues(ctx, store.ScenarioValuesOpts{
		Level:        domain.Level(req.Level),
		ScenarioCode: req.Scenario,
		Year:         req.Year,
		ParamKey:     req.ParamKey,
	})
	if err != nil {
		return nil, fmt.Errorf("list scenario values: %w", err)
	}

	meta := domain.MetaForParamKey(req.ParamKey)
	records := make([]*ScenarioValueRecord, 0, len(values))
	for _, v := range values {
		records = append(records, &ScenarioValueRecord{
			TerritoryID: v.TerritoryID,
			Name:        v.Name,
			RegCod:      v.RegCod,
			ProvCod:     v.ProvCod,
			MunCod:      v.MunCod,
			ParamKey:    v.ParamKey,
			Value:       nullDecimalToFloat(v.ParamValue),
			Unit:        v.Unit,
			Meta:        meta,
		})
	}

	return records, nil
}

type TerritoryParamValue struct {
	Value *float64         `json:"value"`
	Unit  *string          `json:"unit"`
	Meta  domain.ParamMeta `json:"meta"`
}

type TerritoryInfo struct {
	TerritoryID int64        `json:"territory_id"`
	Level       domain.Level `json:"level"`
	Name        string       `json:"name"`
	RegCod      *string      `json:"reg_cod"`
	ProvCod     *string      `json:"prov_cod"`
	MunCod      *string      `json:"mun_cod"`
}

type TerritoryParamsResponse struct {
	Scenario  string                          `json:"scenario"`
	Year      int                             `json:"year"`
	Territory TerritoryInfo                   `json:"territory"`
	Values    map[string]*TerritoryParamValue `json:"values"`
}

// TerritoryParams returns every stored param key for one territory. An
// empty result is a 404 here: the territory selection is explicit, so
// nothing matching means the caller picked a territory without data.
func (s *Service) TerritoryParams(ctx context.Context, req *dto.TerritoryParamsRequest) (*TerritoryParamsResponse, error) {
	code := req.TerritoryCode()
	if code == "" {
		return nil, constants.NewCodedError(fmt.Sprintf("missing code for level %s", req.Level), http.StatusBadRequest)
	}

	rows, err := s.store.ListTerritoryParams(ctx, store.TerritoryParamsOpts{
		Level:         domain.Level(req.Level),
		ScenarioCode:  req.Scenario,
		Year:          req.Year,
		TerritoryCode: code,
	})
	if err != nil {
		return nil, fmt.Errorf("list territory params: %w", err)
	}

	if len(rows) == 0 {
		return nil, constants.ErrDBNotFound
	}

	values := make(map[string]*TerritoryParamValue, len(rows))
	for _, row := range rows {
		values[row.ParamKey] = &TerritoryParamValue{
			Value: nullDecimalToFloat(row.ParamValue),
			Unit:  row.Unit,
			Meta:  domain.MetaForParamKey(row.ParamKey),
		}
	}

	return &TerritoryParamsResponse{
		Scenario: req.Scenario,
		Year:     req.Year,
		Territory: TerritoryInfo{
			TerritoryID: rows[0].TerritoryID,
			Level:       domain.Level(req.Level),
			Name:        rows[0].Name,
			RegCod:      rows[0].RegCod,
			ProvCod:     rows[0].ProvCod,
			MunCod:      rows[0].MunCod,
		},
		Values: values,
	}, nil
}
