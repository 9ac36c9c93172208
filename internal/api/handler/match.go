package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/yeonsu-dev/mentor-match/internal/api/middleware"
	"github.com/yeonsu-dev/mentor-match/internal/api/response"
	"github.com/yeonsu-dev/mentor-match/internal/domain"
	"github.com/yeonsu-dev/mentor-match/internal/service"
)

// MatchHandler handles match request endpoints
type MatchHandler struct {
	matchService *service.MatchService
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(matchService *service.MatchService) *MatchHandler {
	return &MatchHandler{matchService: matchService}
}

// Create handles POST /match-requests
func (h *MatchHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	var input domain.MatchRequestCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, validationMessages(err))
		return
	}

	req, err := h.matchService.Create(r.Context(), identity.UserID, input)
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.OK(w, req)
}

// Incoming handles GET /match-requests/incoming
func (h *MatchHandler) Incoming(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	requests, err := h.matchService.Incoming(r.Context(), identity.UserID)
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.OK(w, requests)
}

// Outgoing handles GET /match-requests/outgoing
func (h *MatchHandler) Outgoing(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	requests, err := h.matchService.Outgoing(r.Context(), identity.UserID)
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.OK(w, requests)
}

// Accept handles PUT /match-requests/{requestID}/accept
func (h *MatchHandler) Accept(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, func(requestID, actorID uuid.UUID) (*domain.MatchRequest, error) {
		return h.matchService.Accept(r.Context(), requestID, actorID)
	})
}

// Reject handles PUT /match-requests/{requestID}/reject
func (h *MatchHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, func(requestID, actorID uuid.UUID) (*domain.MatchRequest, error) {
		return h.matchService.Reject(r.Context(), requestID, actorID)
	})
}

// Cancel handles DELETE /match-requests/{requestID}
func (h *MatchHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, func(requestID, actorID uuid.UUID) (*domain.MatchRequest, error) {
		return h.matchService.Cancel(r.Context(), requestID, actorID)
	})
}

func (h *MatchHandler) resolve(w http.ResponseWriter, r *http.Request, transition func(requestID, actorID uuid.UUID) (*domain.MatchRequest, error)) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	requestID, err := uuid.Parse(chi.URLParam(r, "requestID"))
	if err != nil {
		response.NotFound(w, domain.ErrRequestNotFound.Error())
		return
	}

	req, err := transition(requestID, identity.UserID)
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.OK(w, req)
}
