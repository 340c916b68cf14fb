package worklogs

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

type worklogRepository interface {
	CreateLog(ctx context.Context, dto CreateUserLogDTO) (*models.UserLog, error)
	FindLogByID(ctx context.Context, id uuid.UUID) (*models.UserLog, error)
	ListLogs(ctx context.Context) ([]models.UserLog, error)
	ListLogsByUser(ctx context.Context, userID uuid.UUID) ([]models.UserLog, error)
	UpdateLog(ctx context.Context, log *models.UserLog) error
	DeleteLog(ctx context.Context, id uuid.UUID) error

	CreateDaily(ctx context.Context, dto CreateUserDailyDetailDTO) (*models.UserDailyDetail, error)
	FindDailyByID(ctx context.Context, id uuid.UUID) (*models.UserDailyDetail, error)
	ListDailies(ctx context.Context) ([]models.UserDailyDetail, error)
	ListDailiesByUser(ctx context.Context, userID uuid.UUID) ([]models.UserDailyDetail, error)
	UpdateDaily(ctx context.Context, daily *models.UserDailyDetail) error
	DeleteDaily(ctx context.Context, id uuid.UUID) error
}

type usersReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// Service exposes performance snapshot operations at both granularities.
type Service interface {
	CreateLog(ctx context.Context, input CreateUserLogDTO) (*UserLogDTO, error)
	ListLogs(ctx context.Context) ([]UserLogDTO, error)
	ListLogsByUser(ctx context.Context, userID uuid.UUID) ([]UserLogDTO, error)
	GetLogByID(ctx context.Context, id uuid.UUID) (*UserLogDTO, error)
	UpdateLog(ctx context.Context, id uuid.UUID, input UpdateUserLogInput) (*UserLogDTO, error)
	DeleteLog(ctx context.Context, id uuid.UUID) error

	CreateDaily(ctx context.Context, input CreateUserDailyDetailDTO) (*UserDailyDetailDTO, error)
	ListDailies(ctx context.Context) ([]UserDailyDetailDTO, error)
	ListDailiesByUser(ctx context.Context, userID uuid.UUID) ([]UserDailyDetailDTO, error)
	GetDailyByID(ctx context.Context, id uuid.UUID) (*UserDailyDetailDTO, error)
	UpdateDaily(ctx context.Context, id uuid.UUID, input UpdateUserDailyDetailInput) (*UserDailyDetailDTO, error)
	DeleteDaily(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo  worklogRepository
	users usersReader
}

// NewService builds a work log service with the provided collaborators.
func NewService(repo worklogRepository, users usersReader) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("worklog repository required")
	}
	if users == nil {
		return nil, fmt.Errorf("users reader required")
	}
	return &service{repo: repo, users: users}, nil
}

// UpdateUserLogInput captures the allowed shift snapshot fields for mutation.
type UpdateUserLogInput struct {
	LoggedAt    *time.Time
	Shift       *enums.Shift
	ItemsPacked *int
	ItemsPicked *int
	ErrorCount  *int
	LateCheckIn *bool
	Month       *string
}

// UpdateUserDailyDetailInput captures the allowed daily snapshot fields.
type UpdateUserDailyDetailInput struct {
	LoggedAt    *time.Time
	Shift       *enums.Shift
	ItemsPacked *int
	ItemsPicked *int
	ErrorCount  *int
	LateCheckIn *bool
}

func (s *service) CreateLog(ctx context.Context, input CreateUserLogDTO) (*UserLogDTO, error) {
	if err := s.validateSnapshot(ctx, input.UserID, input.LoggedAt, input.Shift, input.ItemsPacked, input.ItemsPicked, input.ErrorCount); err != nil {
		return nil, err
	}

	log, err := s.repo.CreateLog(ctx, input)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create user log")
	}
	dto := logFromModel(log)
	dto.UserName = s.userName(ctx, log.UserID)
	return dto, nil
}

func (s *service) ListLogs(ctx context.Context) ([]UserLogDTO, error) {
	logs, err := s.repo.ListLogs(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list user logs")
	}
	return s.resolveLogs(ctx, logs), nil
}

func (s *service) ListLogsByUser(ctx context.Context, userID uuid.UUID) ([]UserLogDTO, error) {
	logs, err := s.repo.ListLogsByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list user logs")
	}
	return s.resolveLogs(ctx, logs), nil
}

func (s *service) GetLogByID(ctx context.Context, id uuid.UUID) (*UserLogDTO, error) {
	log, err := s.repo.FindLogByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user log not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load user log")
	}
	dto := logFromModel(log)
	dto.UserName = s.userName(ctx, log.UserID)
	return dto, nil
}

func (s *service) UpdateLog(ctx context.Context, id uuid.UUID, input UpdateUserLogInput) (*UserLogDTO, error) {
	log, err := s.repo.FindLogByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user log not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load user log")
	}

	if input.Shift != nil && !input.Shift.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid shift")
	}
	if input.LoggedAt != nil {
		log.LoggedAt = *input.LoggedAt
	}
	if input.Shift != nil {
		log.Shift = shiftString(input.Shift)
	}
	if input.ItemsPacked != nil {
		log.ItemsPacked = *input.ItemsPacked
	}
	if input.ItemsPicked != nil {
		log.ItemsPicked = *input.ItemsPicked
	}
	if input.ErrorCount != nil {
		log.ErrorCount = *input.ErrorCount
	}
	if input.LateCheckIn != nil {
		log.LateCheckIn = *input.LateCheckIn
	}
	if input.Month != nil {
		month := *input.Month
		log.Month = &month
	}

	if err := s.repo.UpdateLog(ctx, log); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update user log")
	}
	dto := logFromModel(log)
	dto.UserName = s.userName(ctx, log.UserID)
	return dto, nil
}

func (s *service) DeleteLog(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteLog(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "user log not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete user log")
	}
	return nil
}

func (s *service) CreateDaily(ctx context.Context, input CreateUserDailyDetailDTO) (*UserDailyDetailDTO, error) {
	if err := s.validateSnapshot(ctx, input.UserID, input.LoggedAt, input.Shift, input.ItemsPacked, input.ItemsPicked, input.ErrorCount); err != nil {
		return nil, err
	}

	daily, err := s.repo.CreateDaily(ctx, input)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create daily detail")
	}
	dto := dailyFromModel(daily)
	dto.UserName = s.userName(ctx, daily.UserID)
	return dto, nil
}

func (s *service) ListDailies(ctx context.Context) ([]UserDailyDetailDTO, error) {
	dailies, err := s.repo.ListDailies(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list daily details")
	}
	return s.resolveDailies(ctx, dailies), nil
}

func (s *service) ListDailiesByUser(ctx context.Context, userID uuid.UUID) ([]UserDailyDetailDTO, error) {
	dailies, err := s.repo.ListDailiesByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list daily details")
	}
	return s.resolveDailies(ctx, dailies), nil
}

func (s *service) GetDailyByID(ctx context.Context, id uuid.UUID) (*UserDailyDetailDTO, error) {
	daily, err := s.repo.FindDailyByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "daily detail not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load daily detail")
	}
	dto := dailyFromModel(daily)
	dto.UserName = s.userName(ctx, daily.UserID)
	return dto, nil
}

func (s *service) UpdateDaily(ctx context.Context, id uuid.UUID, input UpdateUserDailyDetailInput) (*UserDailyDetailDTO, error) {
	daily, err := s.repo.FindDailyByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "daily detail not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load daily detail")
	}

	if input.Shift != nil && !input.Shift.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid shift")
	}
	if input.LoggedAt != nil {
		daily.LoggedAt = *input.LoggedAt
	}
	if input.Shift != nil {
		daily.Shift = shiftString(input.Shift)
	}
	if input.ItemsPacked != nil {
		daily.ItemsPacked = *input.ItemsPacked
	}
	if input.ItemsPicked != nil {
		daily.ItemsPicked = *input.ItemsPicked
	}
	if input.ErrorCount != nil {
		daily.ErrorCount = *input.ErrorCount
	}
	if input.LateCheckIn != nil {
		daily.LateCheckIn = *input.LateCheckIn
	}

	if err := s.repo.UpdateDaily(ctx, daily); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update daily detail")
	}
	dto := dailyFromModel(daily)
	dto.UserName = s.userName(ctx, daily.UserID)
	return dto, nil
}

func (s *service) DeleteDaily(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteDaily(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "daily detail not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete daily detail")
	}
	return nil
}

func (s *service) validateSnapshot(ctx context.Context, userID uuid.UUID, loggedAt time.Time, shift *enums.Shift, packed, picked, errorCount int) error {
	if loggedAt.IsZero() {
		return pkgerrors.New(pkgerrors.CodeValidation, "logged_at is required")
	}
	if shift != nil && !shift.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid shift")
	}
	if packed < 0 || picked < 0 || errorCount < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "counts must not be negative")
	}
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeValidation, "referenced user does not exist")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check user")
	}
	return nil
}

func (s *service) userName(ctx context.Context, userID uuid.UUID) *string {
	if user, err := s.users.FindByID(ctx, userID); err == nil && user != nil {
		name := user.FullName
		return &name
	}
	return nil
}

func (s *service) resolveLogs(ctx context.Context, logs []models.UserLog) []UserLogDTO {
	dtos := make([]UserLogDTO, 0, len(logs))
	for i := range logs {
		dto := logFromModel(&logs[i])
		dto.UserName = s.userName(ctx, logs[i].UserID)
		dtos = append(dtos, *dto)
	}
	return dtos
}

func (s *service) resolveDailies(ctx context.Context, dailies []models.UserDailyDetail) []UserDailyDetailDTO {
	dtos := make([]UserDailyDetailDTO, 0, len(dailies))
	for i := range dailies {
		dto := dailyFromModel(&dailies[i])
		dto.UserName = s.userName(ctx, dailies[i].UserID)
		dtos = append(dtos, *dto)
	}
	return dtos
}
