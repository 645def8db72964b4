package domain

import "time"

// Track categorizes a project submission and selects which metric
// threshold applies to it.
type Track string

const (
	TrackImage Track = "image"
	TrackText  Track = "text"
	TrackAudio Track = "audio"
)

// MetricName identifies the evaluation metric a submission reports.
type MetricName string

const (
	MetricAccuracy MetricName = "accuracy"
	MetricF1       MetricName = "f1"
)

// SubmissionStatus represents the review lifecycle of a submission.
// The only transitions are submitted -> approved and submitted -> needs_changes,
// both set by a reviewer.
type SubmissionStatus string

const (
	SubmissionSubmitted    SubmissionStatus = "submitted"
	SubmissionApproved     SubmissionStatus = "approved"
	SubmissionNeedsChanges SubmissionStatus = "needs_changes"
)

// RedemptionStatus represents the lifecycle of a redemption request.
// Only pending is ever set by this engine; the rest belong to fulfillment
// tooling outside it.
type RedemptionStatus string

const (
	RedemptionPending  RedemptionStatus = "pending"
	RedemptionApproved RedemptionStatus = "approved"
	RedemptionShipped  RedemptionStatus = "shipped"
	RedemptionRejected RedemptionStatus = "rejected"
)

// LessonDefinition describes one lesson in the immutable curriculum catalog.
type LessonDefinition struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Phase            int    `json:"phase"`
	Objective        string `json:"objective"`
	EstimatedMinutes int    `json:"estimatedMinutes"`
	Required         bool   `json:"required"`
}

// TimeLog is one logged block of build time. Immutable once created.
type TimeLog struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"` // YYYY-MM-DD
	Hours     float64   `json:"hours"`
	Note      string    `json:"note"`
	ProofURL  string    `json:"proofUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Submission is a final-project submission with its review outcome.
type Submission struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	Track         Track            `json:"track"`
	MetricName    MetricName       `json:"metricName"`
	MetricValue   float64          `json:"metricValue"`
	RepoURL       string           `json:"repoUrl"`
	DemoURL       string           `json:"demoUrl"`
	Summary       string           `json:"summary"`
	ModelArtifact string           `json:"modelArtifact"`
	CreatedAt     time.Time        `json:"createdAt"`
	Status        SubmissionStatus `json:"status"`
	RubricScore   *float64         `json:"rubricScore,omitempty"`
	Feedback      string           `json:"feedback,omitempty"`
}

// RedemptionRequest is a learner's request for the hardware kit.
type RedemptionRequest struct {
	ID           string           `json:"id"`
	CreatedAt    time.Time        `json:"createdAt"`
	Status       RedemptionStatus `json:"status"`
	ShippingName string           `json:"shippingName"`
	Email        string           `json:"email"`
	Country      string           `json:"country"`
	Notes        string           `json:"notes,omitempty"`
}

// ProgramUser is the full progress record for one learner.
//
// TotalHours caches the sum of TimeLogs[].Hours and is maintained only by
// the add-time-log operation. Badges is always the output of ComputeBadges,
// never hand-edited.
type ProgramUser struct {
	ID                 string              `json:"id"`
	DisplayName        string              `json:"displayName"`
	CompletedLessonIDs []string            `json:"completedLessonIds"`
	Badges             []string            `json:"badges"`
	TotalHours         float64             `json:"totalHours"`
	TimeLogs           []TimeLog           `json:"timeLogs"`
	Submissions        []Submission        `json:"submissions"`
	RedemptionRequests []RedemptionRequest `json:"redemptionRequests"`
}

// HasCompletedLesson reports whether the lesson id is in the user's
// completed set.
func (u *ProgramUser) HasCompletedLesson(lessonID string) bool {
	for _, id := range u.CompletedLessonIDs {
		if id == lessonID {
			return true
		}
	}
	return false
}

// FindSubmission returns the user's submission with the given id, or nil.
func (u *ProgramUser) FindSubmission(submissionID string) *Submission {
	for i := range u.Submissions {
		if u.Submissions[i].ID == submissionID {
			return &u.Submissions[i]
		}
	}
	return nil
}

// DeviceCatalogItem is one entry in the static hardware catalog.
type DeviceCatalogItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	PriceUSD    float64 `json:"priceUsd"`
	Stock       int     `json:"stock"`
	Active      bool    `json:"active"`
}

// MetricThreshold pairs a metric with the minimum value an approved
// submission must reach for its track.
type MetricThreshold struct {
	Metric MetricName `json:"metric"`
	Min    float64    `json:"min"`
}

// MetricThresholds holds the per-track thresholds.
type MetricThresholds struct {
	Image MetricThreshold `json:"image"`
	Text  MetricThreshold `json:"text"`
	Audio MetricThreshold `json:"audio"`
}

// ForTrack returns the threshold configured for the given track.
func (t MetricThresholds) ForTrack(track Track) MetricThreshold {
	switch track {
	case TrackText:
		return t.Text
	case TrackAudio:
		return t.Audio
	default:
		return t.Image
	}
}

// ProgramConfig holds the program-wide eligibility thresholds. Loaded once
// with the state document and treated as immutable by the engine.
type ProgramConfig struct {
	MinHoursForDevice float64          `json:"minHoursForDevice"`
	RubricPassScore   float64          `json:"rubricPassScore"`
	MetricThresholds  MetricThresholds `json:"metricThresholds"`
}

// ProgramState is the entire persisted document: config, device catalog,
// and every learner record keyed by user id.
type ProgramState struct {
	Version   string                  `json:"version"`
	UpdatedAt time.Time               `json:"updatedAt"`
	Config    ProgramConfig           `json:"config"`
	Devices   []DeviceCatalogItem     `json:"devices"`
	Users     map[string]*ProgramUser `json:"users"`
}

// EligibilityCheck is the derived redemption checklist. It is computed on
// demand and never stored.
type EligibilityCheck struct {
	PhaseOneComplete bool     `json:"phaseOneComplete"`
	HoursMet         bool     `json:"hoursMet"`
	MetricMet        bool     `json:"metricMet"`
	RubricMet        bool     `json:"rubricMet"`
	ReadyToRedeem    bool     `json:"readyToRedeem"`
	Reasons          []string `json:"reasons"`
}
