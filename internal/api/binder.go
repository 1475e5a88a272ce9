package api

import (
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/enermap/enermap/internal/pkg/constants"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return constants.NewCodedError(err.Error(), http.StatusBadRequest)
	}
	return nil
}

// Binder decodes JSON bodies through sonic and defers everything else
// (query, path params) to the echo default binder.
type Binder struct {
	fallback echo.DefaultBinder
}

func NewBinder() *Binder {
	return &Binder{}
}

func (b *Binder) Bind(i interface{}, ctx echo.Context) error {
	req := ctx.Request()
	if req.Method != http.MethodGet && req.ContentLength != 0 &&
		strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		if err := sonic.ConfigDefault.NewDecoder(req.Body).Decode(i); err != nil {
			return constants.NewCodedError("malformed json body: "+err.Error(), http.StatusBadRequest)
		}
		return b.fallback.BindQueryParams(ctx, i)
	}

	return b.fallback.Bind(i, ctx)
}

// sonicSerializer plugs sonic in as echo's JSON codec.
type sonicSerializer struct{}

func (sonicSerializer) Serialize(ctx echo.Context, i interface{}, _ string) error {
	return sonic.ConfigDefault.NewEncoder(ctx.Response()).Encode(i)
}

func (sonicSerializer) Deserialize(ctx echo.Context, i interface{}) error {
	return sonic.ConfigDefault.NewDecoder(ctx.Request().Body).Decode(i)
}
