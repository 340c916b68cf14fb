package controllers

import (
	"context"
	"net/http"

	"github.com/warehousehq/warehouse-backend/api/responses"
	"github.com/warehousehq/warehouse-backend/api/validators"
	pkgerrors "github.com/warehousehq/warehouse-backend/pkg/errors"
	"github.com/warehousehq/warehouse-backend/pkg/logger"
	"github.com/warehousehq/warehouse-backend/pkg/renderer"
)

// LayoutRenderer is the slice of the renderer client the layout endpoints use.
type LayoutRenderer interface {
	RenderRoute(ctx context.Context, req renderer.RouteRequest) (string, error)
	RenderShelves(ctx context.Context, req renderer.ShelfSceneRequest) (string, error)
}

type layoutResponse struct {
	URL string `json:"url"`
}

// LayoutRoute forwards the floor layout and target shelf to the route
// renderer and returns the animation URL.
func LayoutRoute(client LayoutRenderer, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if client == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeDependency, "renderer not configured"))
			return
		}

		var payload renderer.RouteRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		url, err := client.RenderRoute(r.Context(), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, layoutResponse{URL: url})
	}
}

// LayoutShelves forwards the floor layout to the shelf renderer and returns
// the scene URL.
func LayoutShelves(client LayoutRenderer, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if client == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeDependency, "renderer not configured"))
			return
		}

		var payload renderer.ShelfSceneRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		url, err := client.RenderShelves(r.Context(), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, layoutResponse{URL: url})
	}
}
