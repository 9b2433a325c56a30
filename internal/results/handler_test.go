package results

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"aurelia-backend/internal/recommendations"
	"aurelia-backend/internal/shared/server/middleware"
)

func setupResultsRouter(t *testing.T, store Store) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.SetHTMLTemplate(Templates())
	r.Use(middleware.Identity(false))
	h := NewHandler(store, NewRenderer(store))
	h.RegisterRoutes(r.Group("/api/v1"))
	h.RegisterPages(r)
	return r
}

func doRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("X-Guest-Id", "visitor-1")
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestGetResultsFallback(t *testing.T) {
	r := setupResultsRouter(t, NewMemoryStore())
	resp := doRequest(r, http.MethodGet, "/api/v1/results", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var view View
	if err := json.NewDecoder(resp.Body).Decode(&view); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if view.Found || view.Message != FallbackMessage {
		t.Fatalf("unexpected view: %+v", view)
	}
}

func TestResultsPageRendersStoredResult(t *testing.T) {
	store := NewMemoryStore()
	if err := store.Save(context.Background(), "guest:visitor-1", recommendations.Derive(oilyAnswers())); err != nil {
		t.Fatalf("Save: %v", err)
	}
	r := setupResultsRouter(t, store)

	resp := doRequest(r, http.MethodGet, "/results", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	body := resp.Body.String()
	for _, want := range []string{"Acne, Oiliness", "Night Repair Cream", "Niacinamide Serum", `data-step="4"`} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in page", want)
		}
	}
}

func TestResultsPageFallback(t *testing.T) {
	r := setupResultsRouter(t, NewMemoryStore())
	resp := doRequest(r, http.MethodGet, "/results", "")
	body := resp.Body.String()
	if !strings.Contains(body, FallbackMessage) || !strings.Contains(body, "Start Skin Analysis") {
		t.Fatalf("expected fallback page, got %s", body)
	}
	if !strings.Contains(body, `<form method="post" action="`+DefaultStartPath+`">`) {
		t.Fatalf("expected start form posting to %s, got %s", DefaultStartPath, body)
	}
}

func TestClearResults(t *testing.T) {
	store := NewMemoryStore()
	_ = store.Save(context.Background(), "guest:visitor-1", recommendations.Defaults())
	r := setupResultsRouter(t, store)

	resp := doRequest(r, http.MethodDelete, "/api/v1/results", "")
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}
	if _, ok, _ := store.Load(context.Background(), "guest:visitor-1"); ok {
		t.Fatalf("expected slot to be cleared")
	}
}

func TestClearResultsStorageError(t *testing.T) {
	r := setupResultsRouter(t, failingStore{})
	resp := doRequest(r, http.MethodDelete, "/api/v1/results", "")
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "storage_error") {
		t.Fatalf("expected storage_error body, got %s", resp.Body.String())
	}
}

func TestImportResults(t *testing.T) {
	store := NewMemoryStore()
	r := setupResultsRouter(t, store)

	payload := `{"skinType":"Sensitive","concerns":"Redness","budget":"High","morningRoutine":["Gentle Cleanser"],"nightRoutine":[],"products":[]}`
	resp := doRequest(r, http.MethodPut, "/api/v1/results/import", payload)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	got, ok, _ := store.Load(context.Background(), "guest:visitor-1")
	if !ok || got.SkinType != "Sensitive" {
		t.Fatalf("expected imported slot, got ok=%v %+v", ok, got)
	}
}

func TestImportResultsRejectsMalformed(t *testing.T) {
	r := setupResultsRouter(t, NewMemoryStore())
	for _, body := range []string{"null", "{}"} {
		resp := doRequest(r, http.MethodPut, "/api/v1/results/import", body)
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %s, got %d", body, resp.Code)
		}
	}
}
