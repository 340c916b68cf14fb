package worklogs

import (
	"time"

	"github.com/google/uuid"

	"github.com/warehousehq/warehouse-backend/pkg/db/models"
	"github.com/warehousehq/warehouse-backend/pkg/enums"
)

// UserLogDTO exposes a per-shift performance snapshot. UserName is resolved
// inline when the user record still exists.
type UserLogDTO struct {
	ID          uuid.UUID    `json:"id"`
	UserID      uuid.UUID    `json:"user_id"`
	UserName    *string      `json:"user_name,omitempty"`
	LoggedAt    time.Time    `json:"logged_at"`
	Shift       *enums.Shift `json:"shift,omitempty"`
	ItemsPacked int          `json:"items_packed"`
	ItemsPicked int          `json:"items_picked"`
	ErrorCount  int          `json:"error_count"`
	LateCheckIn bool         `json:"late_check_in"`
	Month       *string      `json:"month,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// CreateUserLogDTO holds creation-time data for a shift snapshot.
type CreateUserLogDTO struct {
	UserID      uuid.UUID
	LoggedAt    time.Time
	Shift       *enums.Shift
	ItemsPacked int
	ItemsPicked int
	ErrorCount  int
	LateCheckIn bool
	Month       *string
}

// UserDailyDetailDTO exposes a per-day performance snapshot.
type UserDailyDetailDTO struct {
	ID          uuid.UUID    `json:"id"`
	UserID      uuid.UUID    `json:"user_id"`
	UserName    *string      `json:"user_name,omitempty"`
	LoggedAt    time.Time    `json:"logged_at"`
	Shift       *enums.Shift `json:"shift,omitempty"`
	ItemsPacked int          `json:"items_packed"`
	ItemsPicked int          `json:"items_picked"`
	ErrorCount  int          `json:"error_count"`
	LateCheckIn bool         `json:"late_check_in"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// CreateUserDailyDetailDTO holds creation-time data for a daily snapshot.
type CreateUserDailyDetailDTO struct {
	UserID      uuid.UUID
	LoggedAt    time.Time
	Shift       *enums.Shift
	ItemsPacked int
	ItemsPicked int
	ErrorCount  int
	LateCheckIn bool
}

func logFromModel(m *models.UserLog) *UserLogDTO {
	if m == nil {
		return nil
	}
	return &UserLogDTO{
		ID:          m.ID,
		UserID:      m.UserID,
		LoggedAt:    m.LoggedAt,
		Shift:       shiftPtr(m.Shift),
		ItemsPacked: m.ItemsPacked,
		ItemsPicked: m.ItemsPicked,
		ErrorCount:  m.ErrorCount,
		LateCheckIn: m.LateCheckIn,
		Month:       m.Month,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func dailyFromModel(m *models.UserDailyDetail) *UserDailyDetailDTO {
	if m == nil {
		return nil
	}
	return &UserDailyDetailDTO{
		ID:          m.ID,
		UserID:      m.UserID,
		LoggedAt:    m.LoggedAt,
		Shift:       shiftPtr(m.Shift),
		ItemsPacked: m.ItemsPacked,
		ItemsPicked: m.ItemsPicked,
		ErrorCount:  m.ErrorCount,
		LateCheckIn: m.LateCheckIn,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (c CreateUserLogDTO) toModel() *models.UserLog {
	return &models.UserLog{
		ID:          uuid.New(),
		UserID:      c.UserID,
		LoggedAt:    c.LoggedAt,
		Shift:       shiftString(c.Shift),
		ItemsPacked: c.ItemsPacked,
		ItemsPicked: c.ItemsPicked,
		ErrorCount:  c.ErrorCount,
		LateCheckIn: c.LateCheckIn,
		Month:       c.Month,
	}
}

func (c CreateUserDailyDetailDTO) toModel() *models.UserDailyDetail {
	return &models.UserDailyDetail{
		ID:          uuid.New(),
		UserID:      c.UserID,
		LoggedAt:    c.LoggedAt,
		Shift:       shiftString(c.Shift),
		ItemsPacked: c.ItemsPacked,
		ItemsPicked: c.ItemsPicked,
		ErrorCount:  c.ErrorCount,
		LateCheckIn: c.LateCheckIn,
	}
}

func shiftPtr(value *string) *enums.Shift {
	if value == nil {
		return nil
	}
	shift := enums.Shift(*value)
	return &shift
}

func shiftString(value *enums.Shift) *string {
	if value == nil {
		return nil
	}
	s := value.String()
	return &s
}
