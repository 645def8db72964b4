// Package handler contains HTTP handlers for the API.
// Handlers are responsible for:
// - Parsing and validating HTTP requests
// - Calling use case methods
// - Converting results to HTTP responses
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

// UserIDHeader selects the learner record. The single-learner UI never
// sends it, so it falls back to the demo learner.
const UserIDHeader = "X-User-Id"

func learnerID(c *gin.Context) string {
	id := strings.TrimSpace(c.GetHeader(UserIDHeader))
	if id == "" {
		return domain.DefaultUserID
	}
	return id
}

// ProgramHandler handles program state, lesson, and hours endpoints.
type ProgramHandler struct {
	progress *usecase.ProgressService
}

func NewProgramHandler(progress *usecase.ProgressService) *ProgramHandler {
	return &ProgramHandler{progress: progress}
}

// State returns the full program snapshot.
// GET /api/program/state
func (h *ProgramHandler) State(c *gin.Context) {
	snapshot, err := h.progress.Snapshot(c.Request.Context(), learnerID(c))
	if err != nil {
		c.Error(err)
		response.InternalError(c,
			"Could not load program state.",
			"Try refreshing. If this persists, check that the state file is writable.",
			middleware.GetRequestID(c),
		)
		return
	}
	response.OK(c, snapshot)
}

// CompleteLesson marks a lesson complete.
// POST /api/program/lesson
func (h *ProgramHandler) CompleteLesson(c *gin.Context) {
	var req dto.CompleteLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Missing lessonId.", `Send { lessonId: "01-intro" }.`, middleware.GetRequestID(c))
		return
	}

	result, err := h.progress.CompleteLesson(c.Request.Context(), learnerID(c), req.LessonID)
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, "Check the lesson id from /api/program/state.", middleware.GetRequestID(c))
		return
	}
	response.OK(c, result)
}

// AddHours appends a time log entry.
// POST /api/program/hours
func (h *ProgramHandler) AddHours(c *gin.Context) {
	var req dto.AddTimeLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c,
			"Missing required fields for time logging.",
			"Send { hours: number, note: string, proofUrl?: string, date?: YYYY-MM-DD }.",
			middleware.GetRequestID(c),
		)
		return
	}

	result, err := h.progress.AddTimeLog(c.Request.Context(), learnerID(c), usecase.AddTimeLogInput{
		Hours:    *req.Hours,
		Note:     req.Note,
		ProofURL: req.ProofURL,
		Date:     req.Date,
	})
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err,
			"Keep each entry under 12 hours and include a clear build note.",
			middleware.GetRequestID(c),
		)
		return
	}
	response.Created(c, result)
}
