package controllers

import (
	"net/http"
	"time"

	"github.com/warehousehq/warehouse-backend/api/responses"
	"github.com/warehousehq/warehouse-backend/api/validators"
	"github.com/warehousehq/warehouse-backend/internal/fires"
	pkgerrors "github.com/warehousehq/warehouse-backend/pkg/errors"
	"github.com/warehousehq/warehouse-backend/pkg/logger"
)

type fireEventCreateRequest struct {
	DetectedAt time.Time `json:"detected_at" validate:"required"`
	Size       *float64  `json:"size,omitempty"`
	Distance   *float64  `json:"distance,omitempty"`
	Direction  *string   `json:"direction,omitempty"`
	Active     bool      `json:"active"`
}

// FireEventCreate records a sensor detection.
func FireEventCreate(svc fires.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "fire service unavailable"))
			return
		}

		var payload fireEventCreateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		event, err := svc.Create(r.Context(), fires.CreateFireEventDTO{
			DetectedAt: payload.DetectedAt,
			Size:       payload.Size,
			Distance:   payload.Distance,
			Direction:  payload.Direction,
			Active:     payload.Active,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, event)
	}
}

// FireEventsList returns all detections, newest first.
func FireEventsList(svc fires.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "fire service unavailable"))
			return
		}

		list, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, list)
	}
}

// FireEventGet returns one detection by id.
func FireEventGet(svc fires.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "fire service unavailable"))
			return
		}

		id, err := validators.ParsePathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		event, err := svc.GetByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, event)
	}
}

type fireEventUpdateRequest struct {
	DetectedAt *time.Time `json:"detected_at,omitempty"`
	Size       *float64   `json:"size,omitempty"`
	Distance   *float64   `json:"distance,omitempty"`
	Direction  *string    `json:"direction,omitempty"`
	Active     *bool      `json:"active,omitempty"`
}

// FireEventUpdate applies a partial update, typically to clear the active flag.
func FireEventUpdate(svc fires.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "fire service unavailable"))
			return
		}

		id, err := validators.ParsePathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload fireEventUpdateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		event, err := svc.Update(r.Context(), id, fires.UpdateFireEventInput{
			DetectedAt: payload.DetectedAt,
			Size:       payload.Size,
			Distance:   payload.Distance,
			Direction:  payload.Direction,
			Active:     payload.Active,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, event)
	}
}

// FireEventDelete removes one detection record.
func FireEventDelete(svc fires.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "fire service unavailable"))
			return
		}

		id, err := validators.ParsePathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, nil)
	}
}
