package controllers

import (
	"net/http"

	"github.com/warehousehq/warehouse-backend/api/responses"
	"github.com/warehousehq/warehouse-backend/api/validators"
	"github.com/warehousehq/warehouse-backend/internal/shelves"
	pkgerrors "github.com/warehousehq/warehouse-backend/pkg/errors"
	"github.com/warehousehq/warehouse-backend/pkg/logger"
)

type shelfCreateRequest struct {
	Number    string  `json:"number" validate:"required"`
	Name      string  `json:"name"`
	Width     float64 `json:"width" validate:"gte=0"`
	Height    float64 `json:"height" validate:"gte=0"`
	Depth     float64 `json:"depth" validate:"gte=0"`
	LocationX float64 `json:"location_x"`
	LocationY float64 `json:"location_y"`
}

// ShelfCreate registers a new shelf.
func ShelfCreate(svc shelves.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "shelf service unavailable"))
			return
		}

		var payload shelfCreateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		shelf, err := svc.Create(r.Context(), shelves.CreateShelfDTO{
			Number:    payload.Number,
			Name:      payload.Name,
			Width:     payload.Width,
			Height:    payload.Height,
			Depth:     payload.Depth,
			LocationX: payload.LocationX,
			LocationY: payload.LocationY,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, shelf)
	}
}

// ShelvesList returns every shelf ordered by number.
func ShelvesList(svc shelves.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "shelf service unavailable"))
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

// ShelfGet returns one shelf by id.
func ShelfGet(svc shelves.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "shelf service unavailable"))
			return
		}

		id, err := validators.ParsePathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		shelf, err := svc.GetByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, shelf)
	}
}

type shelfUpdateRequest struct {
	Number    *string  `json:"number,omitempty" validate:"omitempty,min=1"`
	Name      *string  `json:"name,omitempty"`
	Width     *float64 `json:"width,omitempty" validate:"omitempty,gte=0"`
	Height    *float64 `json:"height,omitempty" validate:"omitempty,gte=0"`
	Depth     *float64 `json:"depth,omitempty" validate:"omitempty,gte=0"`
	LocationX *float64 `json:"location_x,omitempty"`
	LocationY *float64 `json:"location_y,omitempty"`
}

// ShelfUpdate applies a partial update to one shelf.
func ShelfUpdate(svc shelves.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "shelf service unavailable"))
			return
		}

		id, err := validators.ParsePathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload shelfUpdateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		shelf, err := svc.Update(r.Context(), id, shelves.UpdateShelfInput{
			Number:    payload.Number,
			Name:      payload.Name,
			Width:     payload.Width,
			Height:    payload.Height,
			Depth:     payload.Depth,
			LocationX: payload.LocationX,
			LocationY: payload.LocationY,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, shelf)
	}
}

// ShelfDelete removes one shelf. Placements and categories on it are kept.
func ShelfDelete(svc shelves.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "shelf service unavailable"))
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

// ShelfCapacity returns the advisory free-volume estimate for one shelf.
func ShelfCapacity(svc shelves.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "shelf service unavailable"))
			return
		}

		id, err := validators.ParsePathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		capacity, err := svc.Capacity(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, capacity)
	}
}
