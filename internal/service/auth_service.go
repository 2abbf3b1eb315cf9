package service

import (
	"errors"

	"github.com/google/uuid"
	"github.com/schoolhub/sims-backend/internal/common"
	"github.com/schoolhub/sims-backend/internal/domain"
	"github.com/schoolhub/sims-backend/internal/repository"
	"github.com/schoolhub/sims-backend/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles login, token refresh and account creation
type AuthService interface {
	Login(req *domain.LoginRequest) (*domain.TokenPair, *domain.UserResponse, error)
	Refresh(refreshToken string) (*domain.TokenPair, error)
	Register(req *domain.RegisterUserRequest) (*domain.UserResponse, error)
	GetMe(userID string) (*domain.UserResponse, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtManager *jwt.Manager
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, jwtManager *jwt.Manager) AuthService {
	return &authService{userRepo: userRepo, jwtManager: jwtManager}
}

// Login verifies credentials and issues a token pair
func (s *authService) Login(req *domain.LoginRequest) (*domain.TokenPair, *domain.UserResponse, error) {
	user, err := s.userRepo.FindByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, common.ErrInvalidCredentials
		}
		return nil, nil, err
	}
	if !user.Active {
		return nil, nil, common.ErrForbidden
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, nil, common.ErrInvalidCredentials
	}

	pair, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return pair, user.ToResponse(), nil
}

// Refresh exchanges a valid refresh token for a new pair
func (s *authService) Refresh(refreshToken string) (*domain.TokenPair, error) {
	claims, err := s.jwtManager.VerifyToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrExpiredToken) {
			return nil, common.ErrExpiredToken
		}
		return nil, common.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, common.ErrUserNotFound
	}
	if !user.Active {
		return nil, common.ErrForbidden
	}
	return s.issueTokens(user)
}

// Register creates a new account. Admin only; enforced at the route.
func (s *authService) Register(req *domain.RegisterUserRequest) (*domain.UserResponse, error) {
	if _, err := s.userRepo.FindByUsername(req.Username); err == nil {
		return nil, common.ErrUserAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.New().String(),
		Username:     req.Username,
		PasswordHash: string(hash),
		Name:         req.Name,
		Email:        req.Email,
		Role:         req.Role,
		Active:       true,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user.ToResponse(), nil
}

// GetMe returns the authenticated user's profile
func (s *authService) GetMe(userID string) (*domain.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, err
	}
	return user.ToResponse(), nil
}

func (s *authService) issueTokens(user *domain.User) (*domain.TokenPair, error) {
	access, err := s.jwtManager.GenerateToken(user.ID, user.Name, user.Role)
	if err != nil {
		return nil, err
	}
	refresh, err := s.jwtManager.GenerateRefreshToken(user.ID, user.Name, user.Role)
	if err != nil {
		return nil, err
	}
	return &domain.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
