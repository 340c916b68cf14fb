package controllers

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/warehousehq/warehouse-backend/api/middleware"
	"github.com/warehousehq/warehouse-backend/api/responses"
	"github.com/warehousehq/warehouse-backend/api/validators"
	"github.com/warehousehq/warehouse-backend/internal/auth"
	"github.com/warehousehq/warehouse-backend/pkg/enums"
	pkgerrors "github.com/warehousehq/warehouse-backend/pkg/errors"
	"github.com/warehousehq/warehouse-backend/pkg/logger"
)

const maxRegisterFormBytes = 10 << 20

// FaceUploader pushes a face image to the external host and returns its URL.
type FaceUploader interface {
	Upload(ctx context.Context, filename string, content io.Reader) (string, error)
}

type registerRequest struct {
	Email            string  `json:"email" validate:"required,email"`
	Password         string  `json:"password" validate:"required,min=8"`
	FullName         string  `json:"full_name" validate:"required"`
	EmployeeID       string  `json:"employee_id" validate:"required"`
	Phone            *string `json:"phone,omitempty"`
	DateOfBirth      *string `json:"date_of_birth,omitempty"`
	Address          *string `json:"address,omitempty"`
	NationalID       *string `json:"national_id,omitempty"`
	Role             *string `json:"role,omitempty"`
	Shift            *string `json:"shift,omitempty"`
	PerformanceLevel *string `json:"performance_level,omitempty"`
}

func (r registerRequest) toInput() (auth.RegisterInput, error) {
	input := auth.RegisterInput{
		Email:            r.Email,
		Password:         r.Password,
		FullName:         strings.TrimSpace(r.FullName),
		EmployeeID:       strings.TrimSpace(r.EmployeeID),
		Phone:            r.Phone,
		Address:          r.Address,
		NationalID:       r.NationalID,
		PerformanceLevel: r.PerformanceLevel,
	}
	if r.DateOfBirth != nil && *r.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", *r.DateOfBirth)
		if err != nil {
			return auth.RegisterInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid date_of_birth")
		}
		input.DateOfBirth = &dob
	}
	if r.Role != nil && *r.Role != "" {
		role, err := enums.ParseRole(*r.Role)
		if err != nil {
			return auth.RegisterInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid role")
		}
		input.Role = &role
	}
	if r.Shift != nil && *r.Shift != "" {
		shift, err := enums.ParseShift(*r.Shift)
		if err != nil {
			return auth.RegisterInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid shift")
		}
		input.Shift = &shift
	}
	return input, nil
}

// Register creates a staff account. The body is JSON, or multipart form data
// when a face_image file rides along; only the hosted URL is persisted.
func Register(svc auth.Service, uploader FaceUploader, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		var payload registerRequest
		var faceImage multipart.File
		var faceImageName string

		if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
			if err := r.ParseMultipartForm(maxRegisterFormBytes); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid form data"))
				return
			}
			payload = registerFromForm(r)
			if file, header, err := r.FormFile("face_image"); err == nil {
				faceImage = file
				faceImageName = header.Filename
				defer file.Close()
			}
		} else {
			if err := validators.DecodeJSONBody(r, &payload); err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if faceImage != nil {
			if uploader == nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeDependency, "image host not configured"))
				return
			}
			url, err := uploader.Upload(r.Context(), faceImageName, faceImage)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			input.FaceImageURL = &url
		}

		result, err := svc.Register(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

func registerFromForm(r *http.Request) registerRequest {
	payload := registerRequest{
		Email:      r.FormValue("email"),
		Password:   r.FormValue("password"),
		FullName:   r.FormValue("full_name"),
		EmployeeID: r.FormValue("employee_id"),
	}
	payload.Phone = optionalFormValue(r, "phone")
	payload.DateOfBirth = optionalFormValue(r, "date_of_birth")
	payload.Address = optionalFormValue(r, "address")
	payload.NationalID = optionalFormValue(r, "national_id")
	payload.Role = optionalFormValue(r, "role")
	payload.Shift = optionalFormValue(r, "shift")
	payload.PerformanceLevel = optionalFormValue(r, "performance_level")
	return payload
}

func optionalFormValue(r *http.Request, key string) *string {
	value := strings.TrimSpace(r.FormValue(key))
	if value == "" {
		return nil
	}
	return &value
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login exchanges credentials for a bearer token.
func Login(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		var payload loginRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Login(r.Context(), auth.LoginInput{
			Email:    payload.Email,
			Password: payload.Password,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// Profile returns the caller's own user record.
func Profile(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		userID := middleware.UserIDFromContext(r.Context())
		if userID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "user context missing"))
			return
		}

		uid, err := uuid.Parse(userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid user id"))
			return
		}

		profile, err := svc.Profile(r.Context(), uid)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, profile)
	}
}
