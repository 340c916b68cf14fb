package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/warehousehq/warehouse-backend/internal/users"
	"github.com/warehousehq/warehouse-backend/pkg/auth"
	"github.com/warehousehq/warehouse-backend/pkg/config"
	"github.com/warehousehq/warehouse-backend/pkg/db"
	"github.com/warehousehq/warehouse-backend/pkg/db/models"
	"github.com/warehousehq/warehouse-backend/pkg/enums"
	pkgerrors "github.com/warehousehq/warehouse-backend/pkg/errors"
	"github.com/warehousehq/warehouse-backend/pkg/security"
)

// invalidCredentialsMsg is shared by unknown-email and wrong-password
// failures so a caller cannot probe which emails are registered.
const invalidCredentialsMsg = "invalid credentials"

type userRepository interface {
	Create(ctx context.Context, dto users.CreateUserDTO) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// Service exposes register/login/profile operations.
type Service interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, input LoginInput) (*AuthResult, error)
	Profile(ctx context.Context, userID uuid.UUID) (*users.UserDTO, error)
}

type service struct {
	repo        userRepository
	jwtCfg      config.JWTConfig
	passwordCfg config.PasswordConfig
	now         func() time.Time
}

// NewService builds the auth service.
func NewService(repo userRepository, jwtCfg config.JWTConfig, passwordCfg config.PasswordConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("user repository required")
	}
	return &service{
		repo:        repo,
		jwtCfg:      jwtCfg,
		passwordCfg: passwordCfg,
		now:         time.Now,
	}, nil
}

// RegisterInput captures the data required to create a staff account.
type RegisterInput struct {
	Email            string
	Password         string
	FullName         string
	EmployeeID       string
	Phone            *string
	DateOfBirth      *time.Time
	Address          *string
	NationalID       *string
	FaceImageURL     *string
	Role             *enums.Role
	Shift            *enums.Shift
	PerformanceLevel *string
}

// LoginInput carries the login credentials.
type LoginInput struct {
	Email    string
	Password string
}

// AuthResult bundles the minted token with the user profile.
type AuthResult struct {
	Token string         `json:"token"`
	User  *users.UserDTO `json:"user"`
}

func (s *service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "valid email is required")
	}
	if len(input.Password) < 8 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "password must be at least 8 characters")
	}
	if strings.TrimSpace(input.FullName) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "full name is required")
	}
	if input.Role != nil && !input.Role.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid role")
	}
	if input.Shift != nil && !input.Shift.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid shift")
	}

	hash, err := security.HashPassword(input.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	user, err := s.repo.Create(ctx, users.CreateUserDTO{
		Email:            email,
		PasswordHash:     hash,
		FullName:         strings.TrimSpace(input.FullName),
		EmployeeID:       strings.TrimSpace(input.EmployeeID),
		Phone:            input.Phone,
		DateOfBirth:      input.DateOfBirth,
		Address:          input.Address,
		NationalID:       input.NationalID,
		FaceImageURL:     input.FaceImageURL,
		Role:             input.Role,
		Shift:            input.Shift,
		PerformanceLevel: input.PerformanceLevel,
	})
	if err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create user")
	}

	return s.issueToken(user)
}

func (s *service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email and password are required")
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMsg)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "lookup user")
	}

	ok, err := security.VerifyPassword(input.Password, user.PasswordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMsg)
	}

	return s.issueToken(user)
}

func (s *service) Profile(ctx context.Context, userID uuid.UUID) (*users.UserDTO, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load user")
	}
	return users.FromModel(user), nil
}

func (s *service) issueToken(user *models.User) (*AuthResult, error) {
	token, err := auth.MintAccessToken(s.jwtCfg, s.now(), auth.AccessTokenPayload{
		UserID: user.ID,
		Role:   user.Role,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint access token")
	}
	return &AuthResult{Token: token, User: users.FromModel(user)}, nil
}
