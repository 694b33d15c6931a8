package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	inventoryHTTP "inventory-service/internal/inventory/delivery/http"
	"inventory-service/internal/inventory/repository/memory"
	"inventory-service/internal/inventory/usecase"
	"inventory-service/pkg/photostore"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// ── Helpers ────────────────────────────────────────────────────────────────

type itemBody struct {
	ID          string  `json:"id"`
	Name        string  `json:"inventory_name"`
	Description string  `json:"description"`
	PhotoURL    *string `json:"photo_url"`
}

func setupRouter(t *testing.T, maxUpload int64) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	l := &mockLogger{}
	photos, err := photostore.New(context.Background(), dir, l)
	if err != nil {
		t.Fatalf("photostore.New: %v", err)
	}
	uc := usecase.New(memory.New(l), photos, l)

	r := gin.New()
	inventoryHTTP.RegisterRoutes(r, inventoryHTTP.New(l, uc, maxUpload))
	return r, dir
}

func multipartBody(t *testing.T, fields map[string]string, photo []byte) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		w.WriteField(k, v)
	}
	if photo != nil {
		fw, err := w.CreateFormFile("photo", "photo.jpg")
		if err != nil {
			t.Fatalf("CreateFormFile: %v", err)
		}
		fw.Write(photo)
	}
	w.Close()
	return &buf, w.FormDataContentType()
}

func do(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func register(t *testing.T, r http.Handler, name, desc string, photo []byte) itemBody {
	t.Helper()
	body, ct := multipartBody(t, map[string]string{"inventory_name": name, "description": desc}, photo)
	req := httptest.NewRequest(http.MethodPost, "/register", body)
	req.Header.Set("Content-Type", ct)

	w := do(r, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var item itemBody
	if err := json.Unmarshal(w.Body.Bytes(), &item); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return item
}

func dirEntries(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestRegister(t *testing.T) {
	t.Run("Without Photo", func(t *testing.T) {
		r, _ := setupRouter(t, 0)
		item := register(t, r, "Drill", "Cordless", nil)

		if item.ID != "1" || item.Name != "Drill" || item.Description != "Cordless" {
			t.Errorf("unexpected item %+v", item)
		}
		if item.PhotoURL != nil {
			t.Errorf("photo_url should be absent, got %q", *item.PhotoURL)
		}
	})

	t.Run("With Photo", func(t *testing.T) {
		r, dir := setupRouter(t, 0)
		item := register(t, r, "Drill", "", []byte("jpeg"))

		if item.PhotoURL == nil || *item.PhotoURL != "/inventory/1/photo" {
			t.Fatalf("expected photo_url, got %+v", item.PhotoURL)
		}
		if n := len(dirEntries(t, dir)); n != 1 {
			t.Errorf("expected 1 stored file, got %d", n)
		}
	})

	t.Run("Missing Name Leaves No File", func(t *testing.T) {
		r, dir := setupRouter(t, 0)
		body, ct := multipartBody(t, map[string]string{"inventory_name": "  ", "description": "x"}, []byte("jpeg"))
		req := httptest.NewRequest(http.MethodPost, "/register", body)
		req.Header.Set("Content-Type", ct)

		w := do(r, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if w.Body.String() != "inventory_name is required" {
			t.Errorf("unexpected body %q", w.Body.String())
		}
		if n := len(dirEntries(t, dir)); n != 0 {
			t.Errorf("expected no stored files, got %d", n)
		}
	})

	t.Run("URL Encoded Form", func(t *testing.T) {
		r, _ := setupRouter(t, 0)
		form := url.Values{"inventory_name": {"Saw"}}
		req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		w := do(r, req)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("Photo Too Large", func(t *testing.T) {
		r, dir := setupRouter(t, 64)
		body, ct := multipartBody(t, map[string]string{"inventory_name": "Drill"}, bytes.Repeat([]byte("x"), 1024))
		req := httptest.NewRequest(http.MethodPost, "/register", body)
		req.Header.Set("Content-Type", ct)

		w := do(r, req)
		if w.Code != http.StatusRequestEntityTooLarge {
			t.Fatalf("expected 413, got %d: %s", w.Code, w.Body.String())
		}
		if n := len(dirEntries(t, dir)); n != 0 {
			t.Errorf("expected no stored files, got %d", n)
		}
	})
}

func TestListAndDetail(t *testing.T) {
	r, _ := setupRouter(t, 0)

	w := do(r, httptest.NewRequest(http.MethodGet, "/inventory", nil))
	if w.Code != http.StatusOK || strings.TrimSpace(w.Body.String()) != "[]" {
		t.Fatalf("expected empty array, got %d %q", w.Code, w.Body.String())
	}

	register(t, r, "Drill", "Cordless", nil)
	register(t, r, "Saw", "", []byte("jpeg"))

	w = do(r, httptest.NewRequest(http.MethodGet, "/inventory", nil))
	var items []itemBody
	json.Unmarshal(w.Body.Bytes(), &items)
	if len(items) != 2 || items[0].Name != "Drill" || items[1].Name != "Saw" {
		t.Fatalf("unexpected list %+v", items)
	}
	if items[0].PhotoURL != nil || items[1].PhotoURL == nil {
		t.Errorf("photo_url only expected on the second item")
	}

	w = do(r, httptest.NewRequest(http.MethodGet, "/inventory/1", nil))
	var item itemBody
	json.Unmarshal(w.Body.Bytes(), &item)
	if w.Code != http.StatusOK || item.Name != "Drill" || item.Description != "Cordless" {
		t.Errorf("unexpected detail %d %+v", w.Code, item)
	}

	for _, path := range []string{"/inventory/3", "/inventory/abc"} {
		w = do(r, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusNotFound || w.Body.String() != "Not found" {
			t.Errorf("%s: expected 404 Not found, got %d %q", path, w.Code, w.Body.String())
		}
	}
}

func TestUpdate(t *testing.T) {
	r, _ := setupRouter(t, 0)
	register(t, r, "A", "B", nil)

	t.Run("JSON Partial Merge", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/inventory/1", strings.NewReader(`{"inventory_name":"","description":"C"}`))
		req.Header.Set("Content-Type", "application/json")

		w := do(r, req)
		var item itemBody
		json.Unmarshal(w.Body.Bytes(), &item)
		if w.Code != http.StatusOK || item.Name != "A" || item.Description != "C" {
			t.Errorf("unexpected response %d %+v", w.Code, item)
		}
	})

	t.Run("Form", func(t *testing.T) {
		form := url.Values{"inventory_name": {"Z"}}
		req := httptest.NewRequest(http.MethodPut, "/inventory/1", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		w := do(r, req)
		var item itemBody
		json.Unmarshal(w.Body.Bytes(), &item)
		if w.Code != http.StatusOK || item.Name != "Z" || item.Description != "C" {
			t.Errorf("unexpected response %d %+v", w.Code, item)
		}
	})

	t.Run("Empty Body", func(t *testing.T) {
		w := do(r, httptest.NewRequest(http.MethodPut, "/inventory/1", nil))
		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/inventory/1", strings.NewReader(`{`))
		req.Header.Set("Content-Type", "application/json")
		if w := do(r, req); w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Not Found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/inventory/9", strings.NewReader(`{"inventory_name":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		if w := do(r, req); w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})
}

func TestDelete(t *testing.T) {
	r, dir := setupRouter(t, 0)
	register(t, r, "Drill", "", []byte("jpeg"))

	w := do(r, httptest.NewRequest(http.MethodDelete, "/inventory/1", nil))
	if w.Code != http.StatusOK || w.Body.String() != "Deleted" {
		t.Fatalf("unexpected response %d %q", w.Code, w.Body.String())
	}
	if n := len(dirEntries(t, dir)); n != 0 {
		t.Errorf("photo file should be removed, %d left", n)
	}

	if w := do(r, httptest.NewRequest(http.MethodGet, "/inventory/1", nil)); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", w.Code)
	}
	if w := do(r, httptest.NewRequest(http.MethodDelete, "/inventory/1", nil)); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 on second delete, got %d", w.Code)
	}

	next := register(t, r, "Saw", "", nil)
	if next.ID == "1" {
		t.Errorf("id reused after delete")
	}
}

func TestPhotoLifecycle(t *testing.T) {
	r, dir := setupRouter(t, 0)
	register(t, r, "Drill", "", []byte("first"))
	oldFiles := dirEntries(t, dir)

	w := do(r, httptest.NewRequest(http.MethodGet, "/inventory/1/photo", nil))
	if w.Code != http.StatusOK || w.Body.String() != "first" {
		t.Fatalf("unexpected photo %d %q", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/jpeg" {
		t.Errorf("expected image/jpeg, got %q", ct)
	}

	body, ct := multipartBody(t, nil, []byte("second"))
	req := httptest.NewRequest(http.MethodPut, "/inventory/1/photo", body)
	req.Header.Set("Content-Type", ct)
	w = do(r, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var item itemBody
	json.Unmarshal(w.Body.Bytes(), &item)
	if item.PhotoURL == nil || *item.PhotoURL != "/inventory/1/photo" {
		t.Errorf("expected photo_url, got %+v", item.PhotoURL)
	}

	newFiles := dirEntries(t, dir)
	if len(newFiles) != 1 || newFiles[0] == oldFiles[0] {
		t.Fatalf("old file should be replaced, before=%v after=%v", oldFiles, newFiles)
	}
	if _, err := os.Stat(filepath.Join(dir, oldFiles[0])); !os.IsNotExist(err) {
		t.Errorf("old file still resolves")
	}

	w = do(r, httptest.NewRequest(http.MethodGet, "/inventory/1/photo", nil))
	if w.Body.String() != "second" {
		t.Errorf("expected new photo bytes, got %q", w.Body.String())
	}

	// File removed behind the service's back.
	os.Remove(filepath.Join(dir, newFiles[0]))
	w = do(r, httptest.NewRequest(http.MethodGet, "/inventory/1/photo", nil))
	if w.Code != http.StatusNotFound || w.Body.String() != "Photo file not found on server" {
		t.Errorf("unexpected response %d %q", w.Code, w.Body.String())
	}
}

func TestGetPhotoWithoutPhoto(t *testing.T) {
	r, _ := setupRouter(t, 0)
	register(t, r, "Drill", "", nil)

	for _, path := range []string{"/inventory/1/photo", "/inventory/2/photo"} {
		w := do(r, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusNotFound || w.Body.String() != "Not found" {
			t.Errorf("%s: expected 404 Not found, got %d %q", path, w.Code, w.Body.String())
		}
	}
}

func TestUpdatePhotoErrors(t *testing.T) {
	r, dir := setupRouter(t, 0)
	register(t, r, "Drill", "", nil)

	t.Run("Photo Required", func(t *testing.T) {
		body, ct := multipartBody(t, map[string]string{"x": "y"}, nil)
		req := httptest.NewRequest(http.MethodPut, "/inventory/1/photo", body)
		req.Header.Set("Content-Type", ct)

		w := do(r, req)
		if w.Code != http.StatusBadRequest || w.Body.String() != "photo is required" {
			t.Errorf("unexpected response %d %q", w.Code, w.Body.String())
		}
	})

	t.Run("Item Missing", func(t *testing.T) {
		body, ct := multipartBody(t, nil, []byte("jpeg"))
		req := httptest.NewRequest(http.MethodPut, "/inventory/5/photo", body)
		req.Header.Set("Content-Type", ct)

		w := do(r, req)
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
		if n := len(dirEntries(t, dir)); n != 0 {
			t.Errorf("upload for a missing item left %d files", n)
		}
	})
}

func TestSearch(t *testing.T) {
	r, _ := setupRouter(t, 0)
	register(t, r, "Drill", "", []byte("jpeg"))
	register(t, r, "Saw", "", nil)

	search := func(form url.Values) (int, itemBody, string) {
		req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := do(r, req)
		var item itemBody
		json.Unmarshal(w.Body.Bytes(), &item)
		return w.Code, item, w.Body.String()
	}

	tests := []struct {
		name      string
		form      url.Values
		wantCode  int
		wantPhoto bool
	}{
		{"Photo Not Requested", url.Values{"id": {"1"}}, http.StatusOK, false},
		{"Photo Explicitly False", url.Values{"id": {"1"}, "includePhoto": {"false"}}, http.StatusOK, false},
		{"Checkbox On", url.Values{"id": {"1"}, "includePhoto": {"on"}}, http.StatusOK, true},
		{"Photo Requested True", url.Values{"id": {"1"}, "includePhoto": {"true"}}, http.StatusOK, true},
		{"Requested Without Photo", url.Values{"id": {"2"}, "includePhoto": {"on"}}, http.StatusOK, false},
		{"Unknown ID", url.Values{"id": {"42"}}, http.StatusNotFound, false},
		{"Missing ID", url.Values{}, http.StatusNotFound, false},
		{"Missing ID With Photo Flag", url.Values{"includePhoto": {"on"}}, http.StatusNotFound, false},
		{"Fractional ID", url.Values{"id": {"1.5"}}, http.StatusNotFound, false},
		{"Integral Float ID", url.Values{"id": {"1.0"}}, http.StatusOK, false},
		{"Exponent ID", url.Values{"id": {"1e0"}, "includePhoto": {"on"}}, http.StatusOK, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, item, raw := search(tt.form)
			if code != tt.wantCode {
				t.Fatalf("expected %d, got %d: %s", tt.wantCode, code, raw)
			}
			if code == http.StatusOK && (item.PhotoURL != nil) != tt.wantPhoto {
				t.Errorf("photo_url presence = %t, want %t", item.PhotoURL != nil, tt.wantPhoto)
			}
		})
	}

	t.Run("JSON Body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(`{"id":1,"includePhoto":true}`))
		req.Header.Set("Content-Type", "application/json")
		w := do(r, req)
		var item itemBody
		json.Unmarshal(w.Body.Bytes(), &item)
		if w.Code != http.StatusOK || item.PhotoURL == nil {
			t.Errorf("unexpected response %d %q", w.Code, w.Body.String())
		}
	})
}
