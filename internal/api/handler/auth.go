package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/yeonsu-dev/mentor-match/internal/api/middleware"
	"github.com/yeonsu-dev/mentor-match/internal/api/response"
	"github.com/yeonsu-dev/mentor-match/internal/domain"
	"github.com/yeonsu-dev/mentor-match/internal/service"
)

var validate = validator.New()

// AuthHandler handles signup and login endpoints
type AuthHandler struct {
	authService    *service.AuthService
	profileService *service.ProfileService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService, profileService *service.ProfileService) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		profileService: profileService,
	}
}

// Signup handles user registration
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var input domain.UserCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, validationMessages(err))
		return
	}

	user, err := h.authService.Register(r.Context(), input)
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.Created(w, map[string]any{
		"id":    user.ID,
		"email": user.Email,
		"role":  user.Role,
	})
}

// Login handles user login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input domain.UserLogin
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, validationMessages(err))
		return
	}

	token, err := h.authService.Login(r.Context(), input)
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.OK(w, map[string]string{"token": token})
}

// Me returns the current authenticated user with profile
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
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

	view, err := h.profileService.Get(r.Context(), user)
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.OK(w, view)
}

// validationMessages flattens validator errors into a field -> message map.
func validationMessages(err error) any {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	messages := make(map[string]string)
	for _, e := range validationErrors {
		switch e.Tag() {
		case "required":
			messages[e.Field()] = "field is required"
		case "email":
			messages[e.Field()] = "invalid email format"
		case "min":
			messages[e.Field()] = "must be at least " + e.Param() + " characters"
		case "max":
			messages[e.Field()] = "must be at most " + e.Param() + " characters"
		case "oneof":
			messages[e.Field()] = "must be one of: " + e.Param()
		default:
			messages[e.Field()] = "validation failed on " + e.Tag()
		}
	}
	return messages
}
