package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"worldofml/src/app/http/dto"
	"worldofml/src/app/http/response"
	"worldofml/src/app/middleware"
	"worldofml/src/core/usecase"
)

// AdminHandler handles the reviewer-facing endpoints.
type AdminHandler struct {
	submissions *usecase.SubmissionService
}

func NewAdminHandler(submissions *usecase.SubmissionService) *AdminHandler {
	return &AdminHandler{submissions: submissions}
}

// Review applies a rubric verdict to a submission.
// POST /api/admin/review
func (h *AdminHandler) Review(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	var req dto.ReviewSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c,
			"Missing review fields.",
			"Send { submissionId, rubricScore, feedback, approve } to review a project.",
			requestID,
		)
		return
	}

	result, err := h.submissions.Review(c.Request.Context(), learnerID(c), usecase.ReviewInput{
		SubmissionID: req.SubmissionID,
		RubricScore:  *req.RubricScore,
		Feedback:     strings.TrimSpace(req.Feedback),
		Approve:      *req.Approve,
	})
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err,
			"Double-check submission id and rubric score range (0-100).",
			requestID,
		)
		return
	}
	response.OK(c, result)
}

// ListSubmissions returns the learner's submissions, newest first.
// GET /api/admin/submissions
func (h *AdminHandler) ListSubmissions(c *gin.Context) {
	submissions, err := h.submissions.List(c.Request.Context(), learnerID(c))
	if err != nil {
		c.Error(err)
		response.InternalError(c,
			"Could not load submissions.",
			"Check local data file permissions.",
			middleware.GetRequestID(c),
		)
		return
	}
	response.OK(c, gin.H{"submissions": submissions})
}
