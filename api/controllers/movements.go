package controllers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/warehousehq/warehouse-backend/api/responses"
	"github.com/warehousehq/warehouse-backend/api/validators"
	"github.com/warehousehq/warehouse-backend/internal/movements"
	pkgerrors "github.com/warehousehq/warehouse-backend/pkg/errors"
	"github.com/warehousehq/warehouse-backend/pkg/logger"
)

type movementCreateRequest struct {
	ProductDetailID string    `json:"product_detail_id" validate:"required,uuid"`
	MovedOn         time.Time `json:"moved_on" validate:"required"`
	Quantity        int       `json:"quantity" validate:"gte=0"`
}

// MovementCreate appends an entry to the inbound or outbound ledger.
func MovementCreate(svc movements.Service, kind movements.Kind, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "movement service unavailable"))
			return
		}

		var payload movementCreateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		productID, err := uuid.Parse(payload.ProductDetailID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		movement, err := svc.Create(r.Context(), kind, movements.CreateMovementDTO{
			ProductDetailID: productID,
			MovedOn:         payload.MovedOn,
			Quantity:        payload.Quantity,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, movement)
	}
}

// MovementsList returns one ledger, newest movement first.
func MovementsList(svc movements.Service, kind movements.Kind, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "movement service unavailable"))
			return
		}

		list, err := svc.List(r.Context(), kind)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, list)
	}
}

// MovementGet returns one ledger entry by id.
func MovementGet(svc movements.Service, kind movements.Kind, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "movement service unavailable"))
			return
		}

		id, err := validators.ParsePathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		movement, err := svc.GetByID(r.Context(), kind, id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, movement)
	}
}

type movementUpdateRequest struct {
	ProductDetailID *string    `json:"product_detail_id,omitempty" validate:"omitempty,uuid"`
	MovedOn         *time.Time `json:"moved_on,omitempty"`
	Quantity        *int       `json:"quantity,omitempty" validate:"omitempty,gte=0"`
}

// MovementUpdate applies a partial update to one ledger entry.
func MovementUpdate(svc movements.Service, kind movements.Kind, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "movement service unavailable"))
			return
		}

		id, err := validators.ParsePathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload movementUpdateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := movements.UpdateMovementInput{
			MovedOn:  payload.MovedOn,
			Quantity: payload.Quantity,
		}
		if payload.ProductDetailID != nil {
			productID, err := uuid.Parse(*payload.ProductDetailID)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
				return
			}
			input.ProductDetailID = &productID
		}

		movement, err := svc.Update(r.Context(), kind, id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, movement)
	}
}

// MovementDelete removes one ledger entry.
func MovementDelete(svc movements.Service, kind movements.Kind, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "movement service unavailable"))
			return
		}

		id, err := validators.ParsePathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), kind, id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, nil)
	}
}
