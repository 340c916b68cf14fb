package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/warehousehq/warehouse-backend/api/responses"
	"github.com/warehousehq/warehouse-backend/api/validators"
	"github.com/warehousehq/warehouse-backend/internal/shelfcats"
	pkgerrors "github.com/warehousehq/warehouse-backend/pkg/errors"
	"github.com/warehousehq/warehouse-backend/pkg/logger"
)

type shelfCategoryCreateRequest struct {
	Name    string  `json:"name" validate:"required"`
	Color   *string `json:"color,omitempty"`
	ShelfID string  `json:"shelf_id" validate:"required,uuid"`
}

// ShelfCategoryCreate attaches a labelled zone to an existing shelf.
func ShelfCategoryCreate(svc shelfcats.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "shelf category service unavailable"))
			return
		}

		var payload shelfCategoryCreateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		shelfID, err := uuid.Parse(payload.ShelfID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid shelf id"))
			return
		}

		category, err := svc.Create(r.Context(), shelfcats.CreateShelfCategoryDTO{
			Name:    payload.Name,
			Color:   payload.Color,
			ShelfID: shelfID,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, category)
	}
}

// ShelfCategoriesList returns every shelf category.
func ShelfCategoriesList(svc shelfcats.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "shelf category service unavailable"))
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

// ShelfCategoriesByShelf returns the categories attached to one shelf.
func ShelfCategoriesByShelf(svc shelfcats.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "shelf category service unavailable"))
			return
		}

		shelfID, err := validators.ParsePathUUID(r, "shelfId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list, err := svc.ListByShelf(r.Context(), shelfID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, list)
	}
}

// ShelfCategoryGet returns one shelf category by id.
func ShelfCategoryGet(svc shelfcats.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "shelf category service unavailable"))
			return
		}

		id, err := validators.ParsePathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		category, err := svc.GetByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, category)
	}
}

type shelfCategoryUpdateRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Color   *string `json:"color,omitempty"`
	ShelfID *string `json:"shelf_id,omitempty" validate:"omitempty,uuid"`
}

// ShelfCategoryUpdate applies a partial update, re-checking a moved shelf ref.
func ShelfCategoryUpdate(svc shelfcats.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "shelf category service unavailable"))
			return
		}

		id, err := validators.ParsePathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload shelfCategoryUpdateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := shelfcats.UpdateShelfCategoryInput{
			Name:  payload.Name,
			Color: payload.Color,
		}
		if payload.ShelfID != nil {
			shelfID, err := uuid.Parse(*payload.ShelfID)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid shelf id"))
				return
			}
			input.ShelfID = &shelfID
		}

		category, err := svc.Update(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, category)
	}
}

// ShelfCategoryDelete removes one shelf category.
func ShelfCategoryDelete(svc shelfcats.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "shelf category service unavailable"))
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
