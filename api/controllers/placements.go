package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/warehousehq/warehouse-backend/api/middleware"
	"github.com/warehousehq/warehouse-backend/api/responses"
	"github.com/warehousehq/warehouse-backend/api/validators"
	"github.com/warehousehq/warehouse-backend/internal/placements"
	pkgerrors "github.com/warehousehq/warehouse-backend/pkg/errors"
	"github.com/warehousehq/warehouse-backend/pkg/logger"
)

type placementCreateRequest struct {
	ProductDetailID string  `json:"product_detail_id" validate:"required,uuid"`
	ShelfID         string  `json:"shelf_id" validate:"required,uuid"`
	CategoryID      string  `json:"category_id" validate:"required,uuid"`
	BoxWidth        float64 `json:"box_width" validate:"gte=0"`
	BoxHeight       float64 `json:"box_height" validate:"gte=0"`
	BoxDepth        float64 `json:"box_depth" validate:"gte=0"`
	Quantity        int     `json:"quantity" validate:"gte=0"`
}

// PlacementCreate records stock on a shelf. The placing user comes from the
// bearer token, not the body.
func PlacementCreate(svc placements.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "placement service unavailable"))
			return
		}

		userID := middleware.UserIDFromContext(r.Context())
		if userID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "user context missing"))
			return
		}
		placedBy, err := uuid.Parse(userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid user id"))
			return
		}

		var payload placementCreateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		productID, err := uuid.Parse(payload.ProductDetailID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}
		shelfID, err := uuid.Parse(payload.ShelfID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid shelf id"))
			return
		}
		categoryID, err := uuid.Parse(payload.CategoryID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category id"))
			return
		}

		placement, err := svc.Create(r.Context(), placements.CreatePlacementDTO{
			ProductDetailID: productID,
			ShelfID:         shelfID,
			CategoryID:      categoryID,
			BoxWidth:        payload.BoxWidth,
			BoxHeight:       payload.BoxHeight,
			BoxDepth:        payload.BoxDepth,
			Quantity:        payload.Quantity,
			PlacedBy:        placedBy,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, placement)
	}
}

// PlacementsList returns every placement with names resolved where possible.
func PlacementsList(svc placements.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "placement service unavailable"))
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

// PlacementsByShelf returns the placements sitting on one shelf.
func PlacementsByShelf(svc placements.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "placement service unavailable"))
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

// PlacementGet returns one placement by id.
func PlacementGet(svc placements.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "placement service unavailable"))
			return
		}

		id, err := validators.ParsePathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		placement, err := svc.GetByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, placement)
	}
}

type placementUpdateRequest struct {
	ProductDetailID *string  `json:"product_detail_id,omitempty" validate:"omitempty,uuid"`
	ShelfID         *string  `json:"shelf_id,omitempty" validate:"omitempty,uuid"`
	CategoryID      *string  `json:"category_id,omitempty" validate:"omitempty,uuid"`
	BoxWidth        *float64 `json:"box_width,omitempty" validate:"omitempty,gte=0"`
	BoxHeight       *float64 `json:"box_height,omitempty" validate:"omitempty,gte=0"`
	BoxDepth        *float64 `json:"box_depth,omitempty" validate:"omitempty,gte=0"`
	Quantity        *int     `json:"quantity,omitempty" validate:"omitempty,gte=0"`
}

func (p placementUpdateRequest) toInput() (placements.UpdatePlacementInput, error) {
	input := placements.UpdatePlacementInput{
		BoxWidth:  p.BoxWidth,
		BoxHeight: p.BoxHeight,
		BoxDepth:  p.BoxDepth,
		Quantity:  p.Quantity,
	}
	if p.ProductDetailID != nil {
		id, err := uuid.Parse(*p.ProductDetailID)
		if err != nil {
			return input, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id")
		}
		input.ProductDetailID = &id
	}
	if p.ShelfID != nil {
		id, err := uuid.Parse(*p.ShelfID)
		if err != nil {
			return input, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid shelf id")
		}
		input.ShelfID = &id
	}
	if p.CategoryID != nil {
		id, err := uuid.Parse(*p.CategoryID)
		if err != nil {
			return input, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category id")
		}
		input.CategoryID = &id
	}
	return input, nil
}

// PlacementUpdate applies a partial update. Only changed references are
// re-checked for existence.
func PlacementUpdate(svc placements.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "placement service unavailable"))
			return
		}

		id, err := validators.ParsePathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload placementUpdateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		placement, err := svc.Update(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, placement)
	}
}

// PlacementDelete removes one placement row.
func PlacementDelete(svc placements.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "placement service unavailable"))
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
