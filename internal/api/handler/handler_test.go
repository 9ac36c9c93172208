package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/yeonsu-dev/mentor-match/internal/api/handler"
	"github.com/yeonsu-dev/mentor-match/internal/api/middleware"
	"github.com/yeonsu-dev/mentor-match/internal/domain"
)

func TestHealthCheck(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()

	handler.HealthCheck(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var response map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if response["success"] != true {
		t.Error("expected success to be true")
	}

	data, ok := response["data"].(map[string]any)
	if !ok {
		t.Fatal("expected data to be a map")
	}

	if data["status"] != "ok" {
		t.Errorf("expected status 'ok', got %v", data["status"])
	}
}

func TestAuthHandler_SignupValidation(t *testing.T) {
	h := handler.NewAuthHandler(nil, nil)

	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{`},
		{"missing fields", `{}`},
		{"bad email", `{"email":"nope","password":"password123","name":"A","role":"mentor"}`},
		{"short password", `{"email":"a@example.com","password":"short","name":"A","role":"mentor"}`},
		{"unknown role", `{"email":"a@example.com","password":"password123","name":"A","role":"admin"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/signup", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			h.Signup(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
			}
		})
	}
}

func TestMatchHandler_BadRequestID(t *testing.T) {
	h := handler.NewMatchHandler(nil)

	r := chi.NewRouter()
	r.Put("/api/match-requests/{requestID}/accept", h.Accept)

	req := httptest.NewRequest(http.MethodPut, "/api/match-requests/not-a-uuid/accept", nil)
	req = req.WithContext(middleware.WithIdentity(req.Context(), domain.Identity{
		UserID: uuid.New(),
		Role:   domain.RoleMentor,
	}))
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
}

func TestMatchHandler_MissingIdentity(t *testing.T) {
	h := handler.NewMatchHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/match-requests/incoming", nil)
	req = req.WithContext(context.Background())
	rec := httptest.NewRecorder()

	h.Incoming(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestProfileHandler_ImageBadUserID(t *testing.T) {
	h := handler.NewProfileHandler(nil, nil)

	r := chi.NewRouter()
	r.Get("/api/images/{role}/{userID}", h.Image)

	req := httptest.NewRequest(http.MethodGet, "/api/images/mentor/not-a-uuid", nil)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
}
