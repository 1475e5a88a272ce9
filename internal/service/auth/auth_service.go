package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/enermap/enermap/internal/domain"
	"github.com/enermap/enermap/internal/domain/dto"
	"github.com/enermap/enermap/internal/pkg/constants"
	"github.com/enermap/enermap/internal/pkg/logger"
	"github.com/enermap/enermap/internal/pkg/utils"
)

// Service issues auth tokens for scenario authors. There is no user table:
// the username travels inside the signed token and ends up in the scenario
// source and code.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

func (svc *Service) Login(ctx context.Context, request *dto.LoginRequest) (*domain.LoginResponse, error) {
	username := strings.TrimSpace(request.Username)
	if username == "" {
		return nil, constants.NewCodedError("missing username", http.StatusBadRequest)
	}

	authToken, err := utils.GenerateAuthToken(&utils.AuthTokenWrapper{Username: username})
	if err != nil {
		return nil, err
	}

	logger.Debugf(ctx, "login: username: [%s]", username)

	return &domain.LoginResponse{Username: username, AuthToken: authToken}, nil
}
