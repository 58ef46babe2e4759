package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/service"
	"gearguard/pkg/utils"
)

type AuthServiceInterface interface {
	Signup(ctx context.Context, d dto.SignupDTO) (*dto.TokenPairDTO, error)
	Login(ctx context.Context, d dto.LoginDTO) (*dto.TokenPairDTO, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*dto.TokenPairDTO, error)
	ForgotPassword(ctx context.Context, email string) (*dto.ResetTokenDTO, error)
	ResetPassword(ctx context.Context, d dto.ResetPasswordDTO) error
	Me(ctx context.Context, userID uint64) (*entities.User, error)
}

type AuthService struct {
	userRepo      repositories.UserRepositoryInterface
	jwtService    service.JWTService
	resetTokenTTL time.Duration
	logger        *zap.Logger
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	jwtService service.JWTService,
	resetTokenTTL time.Duration,
	logger *zap.Logger,
) AuthServiceInterface {
	return &AuthService{
		userRepo:      userRepo,
		jwtService:    jwtService,
		resetTokenTTL: resetTokenTTL,
		logger:        logger,
	}
}

func (s *AuthService) Signup(ctx context.Context, d dto.SignupDTO) (*dto.TokenPairDTO, error) {
	if _, err := s.userRepo.FindByEmail(ctx, d.Email); err == nil {
		return nil, apperrors.NewConflictError("email %s is already registered", d.Email)
	} else if !apperrors.IsNotFound(err) {
		return nil, err
	}

	role := entities.RoleTechnician
	if d.Role != "" {
		parsed, err := entities.ParseRole(d.Role)
		if err != nil {
			return nil, err
		}
		role = parsed
	}

	hash, err := utils.HashPassword(d.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: hash,
		Role:         role,
	}
	id, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user registered", zap.Uint64("userId", id), zap.String("role", string(role)))
	return s.issueTokens(id, role)
}

func (s *AuthService) Login(ctx context.Context, d dto.LoginDTO) (*dto.TokenPairDTO, error) {
	user, err := s.userRepo.FindByEmail(ctx, d.Email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := utils.ComparePasswords(user.PasswordHash, d.Password); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokens(user.ID, user.Role)
}

func (s *AuthService) RefreshTokens(ctx context.Context, refreshToken string) (*dto.TokenPairDTO, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if !claims.IsRefreshToken {
		return nil, apperrors.ErrTokenIsNotRefresh
	}

	// Role is re-read so a role change invalidates stale claims on refresh.
	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	return s.issueTokens(user.ID, user.Role)
}

// ForgotPassword hands the reset token back to the caller instead of mailing
// it. There is no outbound mail transport in this deployment.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) (*dto.ResetTokenDTO, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	token := uuid.NewString()
	expiry := time.Now().Add(s.resetTokenTTL)
	if err := s.userRepo.SetResetToken(ctx, user.ID, token, expiry); err != nil {
		return nil, err
	}

	s.logger.Info("password reset token issued", zap.Uint64("userId", user.ID))
	return &dto.ResetTokenDTO{ResetToken: token}, nil
}

func (s *AuthService) ResetPassword(ctx context.Context, d dto.ResetPasswordDTO) error {
	user, err := s.userRepo.FindByResetToken(ctx, d.Token)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.NewValidationError("invalid or expired reset token")
		}
		return err
	}
	if !user.ResetTokenExpiry.Valid || user.ResetTokenExpiry.Time.Before(time.Now()) {
		return apperrors.NewValidationError("invalid or expired reset token")
	}

	hash, err := utils.HashPassword(d.Password)
	if err != nil {
		return err
	}
	return s.userRepo.UpdatePassword(ctx, user.ID, hash)
}

func (s *AuthService) Me(ctx context.Context, userID uint64) (*entities.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

func (s *AuthService) issueTokens(userID uint64, role entities.Role) (*dto.TokenPairDTO, error) {
	access, refresh, err := s.jwtService.GenerateTokens(userID, string(role))
	if err != nil {
		return nil, err
	}
	return &dto.TokenPairDTO{AccessToken: access, RefreshToken: refresh}, nil
}
