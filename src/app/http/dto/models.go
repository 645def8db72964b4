// Package dto contains Data Transfer Objects for HTTP requests.
//
// DTOs are separate from domain entities to control what the API accepts
// and to carry gin binding tags. Required numeric and boolean fields use
// pointers so that zero values survive binding and reach the engine's own
// range checks.
package dto

// CompleteLessonRequest is the payload for POST /api/program/lesson.
type CompleteLessonRequest struct {
	LessonID string `json:"lessonId" binding:"required"`
}

// AddTimeLogRequest is the payload for POST /api/program/hours.
type AddTimeLogRequest struct {
	Hours    *float64 `json:"hours" binding:"required"`
	Note     string   `json:"note" binding:"required"`
	ProofURL string   `json:"proofUrl"`
	Date     string   `json:"date"` // YYYY-MM-DD, optional
}

// SubmitProjectRequest is the payload for POST /api/projects/submit.
type SubmitProjectRequest struct {
	Title         string   `json:"title" binding:"required"`
	Track         string   `json:"track" binding:"required"`
	MetricName    string   `json:"metricName" binding:"required"`
	MetricValue   *float64 `json:"metricValue" binding:"required"`
	RepoURL       string   `json:"repoUrl" binding:"required"`
	DemoURL       string   `json:"demoUrl" binding:"required"`
	Summary       string   `json:"summary" binding:"required"`
	ModelArtifact string   `json:"modelArtifact" binding:"required"`
}

// ReviewSubmissionRequest is the payload for POST /api/admin/review.
type ReviewSubmissionRequest struct {
	SubmissionID string   `json:"submissionId" binding:"required"`
	RubricScore  *float64 `json:"rubricScore" binding:"required"`
	Feedback     string   `json:"feedback" binding:"required"`
	Approve      *bool    `json:"approve" binding:"required"`
}

// RedemptionRequest is the payload for POST /api/redeem/request.
type RedemptionRequest struct {
	ShippingName string `json:"shippingName" binding:"required"`
	Email        string `json:"email" binding:"required"`
	Country      string `json:"country" binding:"required"`
	Notes        string `json:"notes"`
}
