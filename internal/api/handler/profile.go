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

// ProfileHandler handles profile update and image endpoints
type ProfileHandler struct {
	authService    *service.AuthService
	profileService *service.ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(authService *service.AuthService, profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		authService:    authService,
		profileService: profileService,
	}
}

// Update handles PUT /profile
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	var input domain.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, validationMessages(err))
		return
	}

	user, err := h.authService.GetUserByID(r.Context(), identity.UserID)
	if err != nil {
		response.InternalError(w, "failed to load user")
		return
	}
	if user == nil {
		response.Unauthorized(w, "user not found")
		return
	}

	view, err := h.profileService.Update(r.Context(), user, input)
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.OK(w, view)
}

// Image handles GET /images/{role}/{userID}, streaming the stored picture.
func (h *ProfileHandler) Image(w http.ResponseWriter, r *http.Request) {
	role := domain.Role(chi.URLParam(r, "role"))

	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		response.NotFound(w, domain.ErrImageNotFound.Error())
		return
	}

	data, contentType, err := h.profileService.Image(r.Context(), role, userID)
	if err != nil {
		response.DomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
