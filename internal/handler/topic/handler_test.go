package topic

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	topicModel "github.com/itf-dev/schedule-masters/internal/model/topic"
)

func setupRouter() *chi.Mux {
	r := chi.NewRouter()
	New(topicModel.NewMemoryCatalog(topicModel.Seed())).RegisterRoutes(r)
	return r
}

func TestListTopics(t *testing.T) {
	r := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/topics", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var topics []topicModel.Topic
	if err := json.NewDecoder(resp.Body).Decode(&topics); err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if len(topics) != len(topicModel.Seed()) {
		t.Fatalf("expected %d topics, got %d", len(topicModel.Seed()), len(topics))
	}
}

func TestGetTopicNotFound(t *testing.T) {
	r := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/topics/nonexistent-topic", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}
