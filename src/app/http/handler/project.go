package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"worldofml/src/app/http/dto"
	"worldofml/src/app/http/response"
	"worldofml/src/app/middleware"
	"worldofml/src/core/domain"
	"worldofml/src/core/usecase"
)

// ProjectHandler handles final-project submission.
type ProjectHandler struct {
	submissions *usecase.SubmissionService
}

func NewProjectHandler(submissions *usecase.SubmissionService) *ProjectHandler {
	return &ProjectHandler{submissions: submissions}
}

// Track and metric membership is validated here, at the edge; the engine
// only range-checks the metric value.
func parseTrack(raw string) (domain.Track, bool) {
	switch domain.Track(raw) {
	case domain.TrackImage, domain.TrackText, domain.TrackAudio:
		return domain.Track(raw), true
	}
	return "", false
}

func parseMetricName(raw string) (domain.MetricName, bool) {
	switch domain.MetricName(raw) {
	case domain.MetricAccuracy, domain.MetricF1:
		return domain.MetricName(raw), true
	}
	return "", false
}

// Submit records a new project submission.
// POST /api/projects/submit
func (h *ProjectHandler) Submit(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	var req dto.SubmitProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c,
			"Missing required project submission fields.",
			"Required: title, track, metricName, metricValue, repoUrl, demoUrl, summary, modelArtifact.",
			requestID,
		)
		return
	}

	track, ok := parseTrack(req.Track)
	if !ok {
		response.BadRequest(c, "Unsupported track.", "Use one of: image, text, audio.", requestID)
		return
	}
	metricName, ok := parseMetricName(req.MetricName)
	if !ok {
		response.BadRequest(c, "Unsupported metric name.", "Use one of: accuracy, f1.", requestID)
		return
	}

	result, err := h.submissions.Submit(c.Request.Context(), learnerID(c), usecase.SubmissionInput{
		Title:         strings.TrimSpace(req.Title),
		Track:         track,
		MetricName:    metricName,
		MetricValue:   *req.MetricValue,
		RepoURL:       strings.TrimSpace(req.RepoURL),
		DemoURL:       strings.TrimSpace(req.DemoURL),
		Summary:       strings.TrimSpace(req.Summary),
		ModelArtifact: strings.TrimSpace(req.ModelArtifact),
	})
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err,
			"Use decimal metrics (ex: 0.84), and include a repo + demo URL that reviewers can open.",
			requestID,
		)
		return
	}
	response.Created(c, result)
}
