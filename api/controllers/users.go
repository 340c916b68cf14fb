package controllers

import (
	"net/http"
	"time"

	"github.com/warehousehq/warehouse-backend/api/responses"
	"github.com/warehousehq/warehouse-backend/api/validators"
	"github.com/warehousehq/warehouse-backend/internal/users"
	"github.com/warehousehq/warehouse-backend/pkg/enums"
	pkgerrors "github.com/warehousehq/warehouse-backend/pkg/errors"
	"github.com/warehousehq/warehouse-backend/pkg/logger"
)

// UsersList returns every staff record.
func UsersList(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "user service unavailable"))
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

// UserGet returns one staff record by id.
func UserGet(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "user service unavailable"))
			return
		}

		id, err := validators.ParsePathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		user, err := svc.GetByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, user)
	}
}

type userUpdateRequest struct {
	FullName         *string  `json:"full_name,omitempty" validate:"omitempty,min=1"`
	EmployeeID       *string  `json:"employee_id,omitempty" validate:"omitempty,min=1"`
	Phone            *string  `json:"phone,omitempty"`
	DateOfBirth      *string  `json:"date_of_birth,omitempty"`
	Address          *string  `json:"address,omitempty"`
	NationalID       *string  `json:"national_id,omitempty"`
	FaceImageURL     *string  `json:"face_image_url,omitempty"`
	Role             *string  `json:"role,omitempty"`
	Shift            *string  `json:"shift,omitempty"`
	PerformanceLevel *string  `json:"performance_level,omitempty"`
	SupervisorRating *float64 `json:"supervisor_rating,omitempty"`
}

func (r userUpdateRequest) toInput() (users.UpdateUserInput, error) {
	input := users.UpdateUserInput{
		FullName:         r.FullName,
		EmployeeID:       r.EmployeeID,
		Phone:            r.Phone,
		Address:          r.Address,
		NationalID:       r.NationalID,
		FaceImageURL:     r.FaceImageURL,
		PerformanceLevel: r.PerformanceLevel,
		SupervisorRating: r.SupervisorRating,
	}
	if r.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *r.DateOfBirth)
		if err != nil {
			return users.UpdateUserInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid date_of_birth")
		}
		input.DateOfBirth = &dob
	}
	if r.Role != nil {
		role := enums.Role(*r.Role)
		input.Role = &role
	}
	if r.Shift != nil {
		shift := enums.Shift(*r.Shift)
		input.Shift = &shift
	}
	return input, nil
}

// UserUpdate applies a partial update to one staff record.
func UserUpdate(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "user service unavailable"))
			return
		}

		id, err := validators.ParsePathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload userUpdateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		user, err := svc.Update(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, user)
	}
}

// UserDelete removes one staff record. Work history rows are kept.
func UserDelete(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "user service unavailable"))
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
