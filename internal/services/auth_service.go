package services

import (
	"context"
	"fmt"

	"ironlog/internal/models/db_models"
	"ironlog/internal/models/request_models"
	"ironlog/internal/models/response_models"
	"ironlog/internal/repositories"
	"ironlog/pkg/utils"
)

type AuthServiceInterface interface {
	Register(ctx context.Context, req request_models.RegisterRequest) (*response_models.AuthResponse, error)
	Login(ctx context.Context, req request_models.LoginRequest) (*response_models.AuthResponse, error)
	GetUser(ctx context.Context, userID string) (*response_models.PublicUser, error)
}

type AuthService struct {
	userRepo repositories.UserRepository
	tokens   *utils.JWTManager
}

func NewAuthService(userRepo repositories.UserRepository, tokens *utils.JWTManager) AuthServiceInterface {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (a *AuthService) Register(ctx context.Context, req request_models.RegisterRequest) (*response_models.AuthResponse, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, utils.ErrMissingRequiredFields
	}

	existing, err := a.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	user := &db_models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
	}
	if err := a.userRepo.Insert(ctx, user); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	token, err := a.tokens.CreateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	return &response_models.AuthResponse{
		Token: token,
		User:  publicUser(user),
	}, nil
}

func (a *AuthService) Login(ctx context.Context, req request_models.LoginRequest) (*response_models.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, utils.ErrMissingRequiredFields
	}

	user, err := a.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	// Unknown email and wrong password must be indistinguishable to the
	// caller, including by response time.
	if user == nil {
		utils.CompareDummy(req.Password)
		return nil, utils.ErrInvalidCredentials
	}
	if err := utils.ComparePasswords(user.PasswordHash, req.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := a.tokens.CreateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	return &response_models.AuthResponse{
		Token: token,
		User:  publicUser(user),
	}, nil
}

func (a *AuthService) GetUser(ctx context.Context, userID string) (*response_models.PublicUser, error) {
	user, err := a.userRepo.FindById(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	pub := publicUser(user)
	return &pub, nil
}

func publicUser(user *db_models.User) response_models.PublicUser {
	return response_models.PublicUser{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
	}
}
