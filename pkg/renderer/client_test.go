package renderer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/warehousehq/warehouse-backend/pkg/config"
	pkgerrors "github.com/warehousehq/warehouse-backend/pkg/errors"
)

func TestRenderRouteReturnsAnimationURL(t *testing.T) {
	var gotReq RouteRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"url": "https://render.example.com/route/42.mp4"})
	}))
	defer srv.Close()

	client, err := NewClient(config.RendererConfig{RouteURL: srv.URL, ShelfURL: srv.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	url, err := client.RenderRoute(context.Background(), RouteRequest{
		Shelves:       []ShelfBox{{ID: "shelf-1", Number: "A1", Width: 2, Height: 2, Depth: 1}},
		TargetShelfID: "shelf-1",
	})
	if err != nil {
		t.Fatalf("render route failed: %v", err)
	}
	if url != "https://render.example.com/route/42.mp4" {
		t.Fatalf("unexpected url %q", url)
	}
	if gotReq.TargetShelfID != "shelf-1" || len(gotReq.Shelves) != 1 {
		t.Fatalf("unexpected payload %+v", gotReq)
	}
}

func TestRenderRouteRequiresTarget(t *testing.T) {
	client, err := NewClient(config.RendererConfig{RouteURL: "http://127.0.0.1:1", ShelfURL: "http://127.0.0.1:1"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	_, err = client.RenderRoute(context.Background(), RouteRequest{})
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRenderShelvesMapsFailureToDependencyError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "renderer down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client, err := NewClient(config.RendererConfig{RouteURL: srv.URL, ShelfURL: srv.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	_, err = client.RenderShelves(context.Background(), ShelfSceneRequest{})
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}

func TestNewClientRequiresEndpoints(t *testing.T) {
	if _, err := NewClient(config.RendererConfig{}); err == nil {
		t.Fatalf("expected error for missing endpoints")
	}
}
