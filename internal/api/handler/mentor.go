package handler

import (
	"net/http"

	"github.com/yeonsu-dev/mentor-match/internal/api/response"
	"github.com/yeonsu-dev/mentor-match/internal/domain"
	"github.com/yeonsu-dev/mentor-match/internal/service"
)

// MentorHandler handles the mentor directory endpoint
type MentorHandler struct {
	mentorService *service.MentorService
}

// NewMentorHandler creates a new mentor handler
func NewMentorHandler(mentorService *service.MentorService) *MentorHandler {
	return &MentorHandler{mentorService: mentorService}
}

// List handles GET /mentors?skill=&order_by=
func (h *MentorHandler) List(w http.ResponseWriter, r *http.Request) {
	q := domain.MentorQuery{
		Skill:   r.URL.Query().Get("skill"),
		OrderBy: domain.MentorOrder(r.URL.Query().Get("order_by")),
	}

	mentors, err := h.mentorService.List(r.Context(), q)
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.OK(w, mentors)
}
