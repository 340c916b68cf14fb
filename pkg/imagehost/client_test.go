package imagehost

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/warehousehq/warehouse-backend/pkg/config"
	pkgerrors "github.com/warehousehq/warehouse-backend/pkg/errors"
)

func TestUploadReturnsHostedURL(t *testing.T) {
	var gotFolder, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		gotFolder = r.FormValue("folder")
		gotAuth = r.Header.Get("Authorization")
		if _, _, err := r.FormFile("file"); err != nil {
			t.Fatalf("missing file part: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"url": "https://img.example.com/faces/abc.jpg"})
	}))
	defer srv.Close()

	client, err := NewClient(config.ImageHostConfig{
		UploadURL: srv.URL,
		APIKey:    "secret",
		Folder:    "faces",
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	url, err := client.Upload(context.Background(), "face.jpg", strings.NewReader("jpegbytes"))
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	if url != "https://img.example.com/faces/abc.jpg" {
		t.Fatalf("unexpected url %q", url)
	}
	if gotFolder != "faces" {
		t.Fatalf("expected folder field, got %q", gotFolder)
	}
	if gotAuth != "Bearer secret" {
		t.Fatalf("expected bearer auth, got %q", gotAuth)
	}
}

func TestUploadMapsFailureToDependencyError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	client, err := NewClient(config.ImageHostConfig{UploadURL: srv.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	_, err = client.Upload(context.Background(), "face.jpg", strings.NewReader("jpegbytes"))
	if err == nil {
		t.Fatalf("expected error")
	}
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}

func TestNewClientRequiresUploadURL(t *testing.T) {
	if _, err := NewClient(config.ImageHostConfig{}); err == nil {
		t.Fatalf("expected error for missing upload url")
	}
}
