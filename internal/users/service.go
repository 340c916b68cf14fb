package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/warehousehq/warehouse-backend/pkg/db/models"
	"github.com/warehousehq/warehouse-backend/pkg/enums"
	pkgerrors "github.com/warehousehq/warehouse-backend/pkg/errors"
)

type userRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service exposes personnel record operations. Role gating for mutations is
// enforced in the middleware layer; the service assumes an authorized caller.
type Service interface {
	List(ctx context.Context) ([]UserDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*UserDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*UserDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo userRepository
}

// NewService builds a user service with the provided repository.
func NewService(repo userRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("user repository required")
	}
	return &service{repo: repo}, nil
}

// UpdateUserInput captures the allowed user fields for mutation. Nil fields
// are left untouched.
type UpdateUserInput struct {
	FullName         *string
	EmployeeID       *string
	Phone            *string
	DateOfBirth      *time.Time
	Address          *string
	NationalID       *string
	FaceImageURL     *string
	Role             *enums.Role
	Shift            *enums.Shift
	PerformanceLevel *string
	SupervisorRating *float64
}

func (s *service) List(ctx context.Context) ([]UserDTO, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list users")
	}
	dtos := make([]UserDTO, 0, len(records))
	for i := range records {
		dtos = append(dtos, *FromModel(&records[i]))
	}
	return dtos, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*UserDTO, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load user")
	}
	return FromModel(user), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*UserDTO, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load user")
	}

	if input.Role != nil && !input.Role.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid role")
	}
	if input.Shift != nil && *input.Shift != "" && !input.Shift.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid shift")
	}

	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.EmployeeID != nil {
		user.EmployeeID = *input.EmployeeID
	}
	if input.Phone != nil {
		user.Phone = cloneStringPtr(input.Phone)
	}
	if input.DateOfBirth != nil {
		dob := *input.DateOfBirth
		user.DateOfBirth = &dob
	}
	if input.Address != nil {
		user.Address = cloneStringPtr(input.Address)
	}
	if input.NationalID != nil {
		user.NationalID = cloneStringPtr(input.NationalID)
	}
	if input.FaceImageURL != nil {
		user.FaceImageURL = cloneStringPtr(input.FaceImageURL)
	}
	if input.Role != nil {
		user.Role = *input.Role
	}
	if input.Shift != nil {
		shift := *input.Shift
		user.Shift = &shift
	}
	if input.PerformanceLevel != nil {
		user.PerformanceLevel = cloneStringPtr(input.PerformanceLevel)
	}
	if input.SupervisorRating != nil {
		rating := *input.SupervisorRating
		user.SupervisorRating = &rating
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update user")
	}
	return FromModel(user), nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete user")
	}
	return nil
}

func cloneStringPtr(value *string) *string {
	if value == nil {
		return nil
	}
	cpy := *value
	return &cpy
}
