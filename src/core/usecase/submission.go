package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"worldofml/src/core/domain"
	"worldofml/src/core/ports"
)

// SubmissionService handles project submission and rubric review.
type SubmissionService struct {
	store ports.StateStore
	log   *slog.Logger
}

func NewSubmissionService(store ports.StateStore, log *slog.Logger) *SubmissionService {
	return &SubmissionService{store: store, log: log}
}

// SubmissionInput carries a new project submission.
type SubmissionInput struct {
	Title         string
	Track         domain.Track
	MetricName    domain.MetricName
	MetricValue   float64
	RepoURL       string
	DemoURL       string
	Summary       string
	ModelArtifact string
}

// SubmissionResult pairs the touched submission with fresh eligibility.
type SubmissionResult struct {
	Submission  domain.Submission       `json:"submission"`
	Eligibility domain.EligibilityCheck `json:"eligibility"`
}

// Submit records a new submission with status "submitted". Track and metric
// name membership is the route handler's concern; only the metric value is
// range-checked here.
func (s *SubmissionService) Submit(ctx context.Context, userID string, input SubmissionInput) (*SubmissionResult, error) {
	if !(input.MetricValue >= 0 && input.MetricValue <= 1.5) {
		return nil, domain.NewValidationError("metricValue",
			"Metric value must be in a sane range. For percentages, use decimal (e.g. 0.82).")
	}

	var result SubmissionResult
	_, err := s.store.UpdateState(ctx, func(state *domain.ProgramState) error {
		user := state.EnsureUser(userID)

		sub := domain.Submission{
			ID:            uuid.NewString(),
			Title:         input.Title,
			Track:         input.Track,
			MetricName:    input.MetricName,
			MetricValue:   domain.Round4(input.MetricValue),
			RepoURL:       input.RepoURL,
			DemoURL:       input.DemoURL,
			Summary:       input.Summary,
			ModelArtifact: input.ModelArtifact,
			CreatedAt:     time.Now().UTC(),
			Status:        domain.SubmissionSubmitted,
		}

		user.Submissions = append([]domain.Submission{sub}, user.Submissions...)
		user.Badges = domain.ComputeBadges(user, state.Config)

		result = SubmissionResult{
			Submission:  sub,
			Eligibility: domain.ComputeEligibility(user, state.Config),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("project submitted", "user_id", userID, "track", input.Track, "metric", input.MetricName)
	return &result, nil
}

// ReviewInput carries a reviewer's verdict on a submission.
type ReviewInput struct {
	SubmissionID string
	RubricScore  float64
	Feedback     string
	Approve      bool
}

// Review sets the rubric score, feedback, and final status on the matched
// submission in place. The only transitions are submitted -> approved and
// submitted -> needs_changes.
func (s *SubmissionService) Review(ctx context.Context, userID string, input ReviewInput) (*SubmissionResult, error) {
	if !(input.RubricScore >= 0 && input.RubricScore <= 100) {
		return nil, domain.NewValidationError("rubricScore", "Rubric score must be between 0 and 100.")
	}

	var result SubmissionResult
	_, err := s.store.UpdateState(ctx, func(state *domain.ProgramState) error {
		user := state.EnsureUser(userID)

		target := user.FindSubmission(input.SubmissionID)
		if target == nil {
			return domain.NewNotFoundError("submission")
		}

		score := input.RubricScore
		target.RubricScore = &score
		target.Feedback = input.Feedback
		if input.Approve {
			target.Status = domain.SubmissionApproved
		} else {
			target.Status = domain.SubmissionNeedsChanges
		}

		user.Badges = domain.ComputeBadges(user, state.Config)

		result = SubmissionResult{
			Submission:  *target,
			Eligibility: domain.ComputeEligibility(user, state.Config),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("submission reviewed",
		"user_id", userID,
		"submission_id", input.SubmissionID,
		"approved", input.Approve,
	)
	return &result, nil
}

// List returns the user's submissions, newest first. Badges are refreshed
// and persisted on the way, matching the snapshot read path.
func (s *SubmissionService) List(ctx context.Context, userID string) ([]domain.Submission, error) {
	var submissions []domain.Submission
	_, err := s.store.UpdateState(ctx, func(state *domain.ProgramState) error {
		user := state.EnsureUser(userID)
		user.Badges = domain.ComputeBadges(user, state.Config)
		submissions = user.Submissions
		return nil
	})
	if err != nil {
		return nil, err
	}
	return submissions, nil
}
