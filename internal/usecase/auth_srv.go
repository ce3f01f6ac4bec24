package usecase

import (
	"context"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/store"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest) (*response.UserResponse, error)
}

type authService struct {
	store *store.Store
	log   *zap.Logger
}

func NewAuthService(st *store.Store, log *zap.Logger) AuthService {
	return &authService{
		store: st,
		log:   log.With(zap.String("service", "auth")),
	}
}

// Login resolves a username to an identity. No credential is checked; this
// is an identity lookup, not authentication.
func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user := s.store.User.FindByUsername(req.Username)
	if user == nil {
		return nil, entity.ErrUserNotFound
	}

	s.log.Info("User logged in",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)),
	)

	return buildUserResponse(user), nil
}

func buildUserResponse(user *entity.User) *response.UserResponse {
	return &response.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		FullName: user.FullName,
		Role:     user.Role,
	}
}
