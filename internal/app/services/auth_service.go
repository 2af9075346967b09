package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/emre/coursehub/internal/app/models"
	"github.com/emre/coursehub/internal/app/models/dto"
	"github.com/emre/coursehub/internal/app/repositories"
	"github.com/emre/coursehub/internal/pkg/apperrors"
	"github.com/emre/coursehub/internal/pkg/auth"
	"github.com/emre/coursehub/internal/pkg/validation"
)

// AuthService handles registration and login
type AuthService struct {
	userRepo      *repositories.UserRepository
	analyticsRepo *repositories.AnalyticsRepository
	jwtService    *auth.JWTService
	logger        zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo *repositories.UserRepository,
	analyticsRepo *repositories.AnalyticsRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:      userRepo,
		analyticsRepo: analyticsRepo,
		jwtService:    jwtService,
		logger:        logger,
	}
}

// normalizeEmail canonicalizes an address so the duplicate pre-check,
// the stored row and login lookups all agree on case and whitespace.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return apperrors.NewBadRequestError("email cannot be empty")
	}
	if !validation.IsValidEmail(email) {
		return apperrors.ErrInvalidEmail
	}
	return nil
}

// validatePassword checks if password meets requirements
func (s *AuthService) validatePassword(password string) error {
	if len(password) < validation.PasswordMinLength {
		return fmt.Errorf("%w: password must be at least %d characters long",
			apperrors.ErrInvalidPassword, validation.PasswordMinLength)
	}

	hasLetter := false
	hasDigit := false
	for _, char := range password {
		if unicode.IsLetter(char) {
			hasLetter = true
		}
		if unicode.IsDigit(char) {
			hasDigit = true
		}
	}
	if !hasLetter {
		return fmt.Errorf("%w: password must contain at least one letter", apperrors.ErrInvalidPassword)
	}
	if !hasDigit {
		return fmt.Errorf("%w: password must contain at least one digit", apperrors.ErrInvalidPassword)
	}

	return nil
}

// Register creates a new account and returns a signed access token.
// Only the student and teacher roles can be chosen at registration.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	email := normalizeEmail(req.Email)
	if err := s.validateEmail(email); err != nil {
		return nil, err
	}
	if err := s.validatePassword(req.Password); err != nil {
		return nil, err
	}

	role := models.RoleStudent
	if req.Role != "" {
		role = models.RoleType(req.Role)
		if role != models.RoleStudent && role != models.RoleTeacher {
			return nil, apperrors.NewBadRequestError("role must be student or teacher")
		}
	}

	exists, err := s.userRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error checking if email exists: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		UUID:     uuid.NewString(),
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Password: hashedPassword,
		Role:     role,
		IsActive: true,
	}
	if req.Bio != "" {
		user.Bio = &req.Bio
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, _, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	s.recordEvent(ctx, models.EventUserRegistered, user.ID)

	return &dto.AuthResponse{
		Message: "registration successful",
		Token:   token,
		User:    user,
	}, nil
}

// Login authenticates a user by email and password
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, _, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	s.recordEvent(ctx, models.EventUserLogin, user.ID)

	return &dto.AuthResponse{
		Message: "login successful",
		Token:   token,
		User:    user,
	}, nil
}

// recordEvent stores an analytics event best-effort; failures are logged
// and never fail the request.
func (s *AuthService) recordEvent(ctx context.Context, eventType string, userID int64) {
	event := &models.AnalyticsEvent{
		EventType: eventType,
		UserID:    &userID,
	}
	if err := s.analyticsRepo.RecordEvent(ctx, event); err != nil {
		s.logger.Warn().Err(err).Str("eventType", eventType).Msg("Failed to record analytics event")
	}
}
