package worklogs

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/warehousehq/warehouse-backend/pkg/db/models"
)

// Repository handles work log persistence for both snapshot granularities.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to work log operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateLog persists a new shift snapshot.
func (r *Repository) CreateLog(ctx context.Context, dto CreateUserLogDTO) (*models.UserLog, error) {
	log := dto.toModel()
	if err := r.db.WithContext(ctx).Create(log).Error; err != nil {
		return nil, err
	}
	return log, nil
}

// FindLogByID loads a shift snapshot by its UUID.
func (r *Repository) FindLogByID(ctx context.Context, id uuid.UUID) (*models.UserLog, error) {
	var log models.UserLog
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

// ListLogs returns all shift snapshots, newest first.
func (r *Repository) ListLogs(ctx context.Context) ([]models.UserLog, error) {
	var logs []models.UserLog
	if err := r.db.WithContext(ctx).Order("logged_at DESC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// ListLogsByUser returns the shift snapshots for one user, newest first.
func (r *Repository) ListLogsByUser(ctx context.Context, userID uuid.UUID) ([]models.UserLog, error) {
	var logs []models.UserLog
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("logged_at DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// UpdateLog saves the provided shift snapshot.
func (r *Repository) UpdateLog(ctx context.Context, log *models.UserLog) error {
	if log == nil {
		return fmt.Errorf("log is required")
	}
	return r.db.WithContext(ctx).Save(log).Error
}

// DeleteLog removes the shift snapshot row.
func (r *Repository) DeleteLog(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.UserLog{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CreateDaily persists a new daily snapshot.
func (r *Repository) CreateDaily(ctx context.Context, dto CreateUserDailyDetailDTO) (*models.UserDailyDetail, error) {
	daily := dto.toModel()
	if err := r.db.WithContext(ctx).Create(daily).Error; err != nil {
		return nil, err
	}
	return daily, nil
}

// FindDailyByID loads a daily snapshot by its UUID.
func (r *Repository) FindDailyByID(ctx context.Context, id uuid.UUID) (*models.UserDailyDetail, error) {
	var daily models.UserDailyDetail
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&daily).Error; err != nil {
		return nil, err
	}
	return &daily, nil
}

// ListDailies returns all daily snapshots, newest first.
func (r *Repository) ListDailies(ctx context.Context) ([]models.UserDailyDetail, error) {
	var dailies []models.UserDailyDetail
	if err := r.db.WithContext(ctx).Order("logged_at DESC").Find(&dailies).Error; err != nil {
		return nil, err
	}
	return dailies, nil
}

// ListDailiesByUser returns the daily snapshots for one user, newest first.
func (r *Repository) ListDailiesByUser(ctx context.Context, userID uuid.UUID) ([]models.UserDailyDetail, error) {
	var dailies []models.UserDailyDetail
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("logged_at DESC").
		Find(&dailies).Error; err != nil {
		return nil, err
	}
	return dailies, nil
}

// UpdateDaily saves the provided daily snapshot.
func (r *Repository) UpdateDaily(ctx context.Context, daily *models.UserDailyDetail) error {
	if daily == nil {
		return fmt.Errorf("daily detail is required")
	}
	return r.db.WithContext(ctx).Save(daily).Error
}

// DeleteDaily removes the daily snapshot row.
func (r *Repository) DeleteDaily(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.UserDailyDetail{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
