package controllers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/warehousehq/warehouse-backend/api/responses"
	"github.com/warehousehq/warehouse-backend/api/validators"
	"github.com/warehousehq/warehouse-backend/internal/worklogs"
	"github.com/warehousehq/warehouse-backend/pkg/enums"
	pkgerrors "github.com/warehousehq/warehouse-backend/pkg/errors"
	"github.com/warehousehq/warehouse-backend/pkg/logger"
)

type userLogCreateRequest struct {
	UserID      string    `json:"user_id" validate:"required,uuid"`
	LoggedAt    time.Time `json:"logged_at" validate:"required"`
	Shift       *string   `json:"shift,omitempty"`
	ItemsPacked int       `json:"items_packed" validate:"gte=0"`
	ItemsPicked int       `json:"items_picked" validate:"gte=0"`
	ErrorCount  int       `json:"error_count" validate:"gte=0"`
	LateCheckIn bool      `json:"late_check_in"`
	Month       *string   `json:"month,omitempty"`
}

// UserLogCreate records a per-shift performance snapshot.
func UserLogCreate(svc worklogs.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "work log service unavailable"))
			return
		}

		var payload userLogCreateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		userID, err := uuid.Parse(payload.UserID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid user id"))
			return
		}

		shift, err := optionalShift(payload.Shift)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		log, err := svc.CreateLog(r.Context(), worklogs.CreateUserLogDTO{
			UserID:      userID,
			LoggedAt:    payload.LoggedAt,
			Shift:       shift,
			ItemsPacked: payload.ItemsPacked,
			ItemsPicked: payload.ItemsPicked,
			ErrorCount:  payload.ErrorCount,
			LateCheckIn: payload.LateCheckIn,
			Month:       payload.Month,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, log)
	}
}

// UserLogsList returns every shift snapshot, newest first.
func UserLogsList(svc worklogs.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "work log service unavailable"))
			return
		}

		list, err := svc.ListLogs(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, list)
	}
}

// UserLogsByUser returns the shift snapshots of one user.
func UserLogsByUser(svc worklogs.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "work log service unavailable"))
			return
		}

		userID, err := validators.ParsePathUUID(r, "userId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list, err := svc.ListLogsByUser(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, list)
	}
}

// UserLogGet returns one shift snapshot by id.
func UserLogGet(svc worklogs.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "work log service unavailable"))
			return
		}

		id, err := validators.ParsePathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		log, err := svc.GetLogByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, log)
	}
}

type userLogUpdateRequest struct {
	LoggedAt    *time.Time `json:"logged_at,omitempty"`
	Shift       *string    `json:"shift,omitempty"`
	ItemsPacked *int       `json:"items_packed,omitempty" validate:"omitempty,gte=0"`
	ItemsPicked *int       `json:"items_picked,omitempty" validate:"omitempty,gte=0"`
	ErrorCount  *int       `json:"error_count,omitempty" validate:"omitempty,gte=0"`
	LateCheckIn *bool      `json:"late_check_in,omitempty"`
	Month       *string    `json:"month,omitempty"`
}

// UserLogUpdate applies a partial update to one shift snapshot.
func UserLogUpdate(svc worklogs.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "work log service unavailable"))
			return
		}

		id, err := validators.ParsePathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload userLogUpdateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		shift, err := optionalShift(payload.Shift)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		log, err := svc.UpdateLog(r.Context(), id, worklogs.UpdateUserLogInput{
			LoggedAt:    payload.LoggedAt,
			Shift:       shift,
			ItemsPacked: payload.ItemsPacked,
			ItemsPicked: payload.ItemsPicked,
			ErrorCount:  payload.ErrorCount,
			LateCheckIn: payload.LateCheckIn,
			Month:       payload.Month,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, log)
	}
}

// UserLogDelete removes one shift snapshot.
func UserLogDelete(svc worklogs.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "work log service unavailable"))
			return
		}

		id, err := validators.ParsePathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeleteLog(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, nil)
	}
}

type userDailyDetailCreateRequest struct {
	UserID      string    `json:"user_id" validate:"required,uuid"`
	LoggedAt    time.Time `json:"logged_at" validate:"required"`
	Shift       *string   `json:"shift,omitempty"`
	ItemsPacked int       `json:"items_packed" validate:"gte=0"`
	ItemsPicked int       `json:"items_picked" validate:"gte=0"`
	ErrorCount  int       `json:"error_count" validate:"gte=0"`
	LateCheckIn bool      `json:"late_check_in"`
}

// UserDailyDetailCreate records a per-day performance snapshot.
func UserDailyDetailCreate(svc worklogs.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "work log service unavailable"))
			return
		}

		var payload userDailyDetailCreateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		userID, err := uuid.Parse(payload.UserID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid user id"))
			return
		}

		shift, err := optionalShift(payload.Shift)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		daily, err := svc.CreateDaily(r.Context(), worklogs.CreateUserDailyDetailDTO{
			UserID:      userID,
			LoggedAt:    payload.LoggedAt,
			Shift:       shift,
			ItemsPacked: payload.ItemsPacked,
			ItemsPicked: payload.ItemsPicked,
			ErrorCount:  payload.ErrorCount,
			LateCheckIn: payload.LateCheckIn,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, daily)
	}
}

// UserDailyDetailsList returns every daily snapshot, newest first.
func UserDailyDetailsList(svc worklogs.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "work log service unavailable"))
			return
		}

		list, err := svc.ListDailies(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, list)
	}
}

// UserDailyDetailsByUser returns the daily snapshots of one user.
func UserDailyDetailsByUser(svc worklogs.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "work log service unavailable"))
			return
		}

		userID, err := validators.ParsePathUUID(r, "userId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list, err := svc.ListDailiesByUser(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, list)
	}
}

// UserDailyDetailGet returns one daily snapshot by id.
func UserDailyDetailGet(svc worklogs.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "work log service unavailable"))
			return
		}

		id, err := validators.ParsePathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		daily, err := svc.GetDailyByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, daily)
	}
}

type userDailyDetailUpdateRequest struct {
	LoggedAt    *time.Time `json:"logged_at,omitempty"`
	Shift       *string    `json:"shift,omitempty"`
	ItemsPacked *int       `json:"items_packed,omitempty" validate:"omitempty,gte=0"`
	ItemsPicked *int       `json:"items_picked,omitempty" validate:"omitempty,gte=0"`
	ErrorCount  *int       `json:"error_count,omitempty" validate:"omitempty,gte=0"`
	LateCheckIn *bool      `json:"late_check_in,omitempty"`
}

// UserDailyDetailUpdate applies a partial update to one daily snapshot.
func UserDailyDetailUpdate(svc worklogs.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "work log service unavailable"))
			return
		}

		id, err := validators.ParsePathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload userDailyDetailUpdateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		shift, err := optionalShift(payload.Shift)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		daily, err := svc.UpdateDaily(r.Context(), id, worklogs.UpdateUserDailyDetailInput{
			LoggedAt:    payload.LoggedAt,
			Shift:       shift,
			ItemsPacked: payload.ItemsPacked,
			ItemsPicked: payload.ItemsPicked,
			ErrorCount:  payload.ErrorCount,
			LateCheckIn: payload.LateCheckIn,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, daily)
	}
}

// UserDailyDetailDelete removes one daily snapshot.
func UserDailyDetailDelete(svc worklogs.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "work log service unavailable"))
			return
		}

		id, err := validators.ParsePathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeleteDaily(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, nil)
	}
}

func optionalShift(raw *string) (*enums.Shift, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	shift, err := enums.ParseShift(*raw)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid shift")
	}
	return &shift, nil
}
