package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"worldofml/src/core/domain"
	"worldofml/src/core/ports"
)

// ProgressService handles lesson completion, time logging, and the
// program snapshot read path.
type ProgressService struct {
	store ports.StateStore
	log   *slog.Logger
}

func NewProgressService(store ports.StateStore, log *slog.Logger) *ProgressService {
	return &ProgressService{store: store, log: log}
}

// CompleteLessonResult is returned after marking a lesson complete.
type CompleteLessonResult struct {
	CompletedLessons []string                `json:"completedLessons"`
	Eligibility      domain.EligibilityCheck `json:"eligibility"`
}

// CompleteLesson records a lesson as completed for the user. Completing an
// already-completed lesson is a no-op, not an error.
func (s *ProgressService) CompleteLesson(ctx context.Context, userID, lessonID string) (*CompleteLessonResult, error) {
	if !domain.IsKnownLesson(lessonID) {
		return nil, domain.NewUnknownLessonError(lessonID)
	}

	var result CompleteLessonResult
	_, err := s.store.UpdateState(ctx, func(state *domain.ProgramState) error {
		user := state.EnsureUser(userID)
		if !user.HasCompletedLesson(lessonID) {
			user.CompletedLessonIDs = append(user.CompletedLessonIDs, lessonID)
		}
		user.Badges = domain.ComputeBadges(user, state.Config)

		result = CompleteLessonResult{
			CompletedLessons: user.CompletedLessonIDs,
			Eligibility:      domain.ComputeEligibility(user, state.Config),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("lesson completed", "user_id", userID, "lesson_id", lessonID)
	return &result, nil
}

// AddTimeLogInput carries a new time log entry.
type AddTimeLogInput struct {
	Hours    float64
	Note     string
	ProofURL string
	Date     string // YYYY-MM-DD, defaults to today
}

// AddTimeLogResult is returned after logging hours.
type AddTimeLogResult struct {
	TotalHours  float64                 `json:"totalHours"`
	Log         domain.TimeLog          `json:"log"`
	Eligibility domain.EligibilityCheck `json:"eligibility"`
}

// AddTimeLog appends a time log and bumps the user's cached hour total.
// Each entry is capped at 12 hours; the note is mandatory.
func (s *ProgressService) AddTimeLog(ctx context.Context, userID string, input AddTimeLogInput) (*AddTimeLogResult, error) {
	if !(input.Hours > 0 && input.Hours <= 12) {
		return nil, domain.NewValidationError("hours", "Hours must be between 0 and 12 per log.")
	}
	note := strings.TrimSpace(input.Note)
	if note == "" {
		return nil, domain.NewValidationError("note", "A build note is required.")
	}
	date := input.Date
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}

	var result AddTimeLogResult
	_, err := s.store.UpdateState(ctx, func(state *domain.ProgramState) error {
		user := state.EnsureUser(userID)

		entry := domain.TimeLog{
			ID:        uuid.NewString(),
			Date:      date,
			Hours:     domain.Round2(input.Hours),
			Note:      note,
			ProofURL:  strings.TrimSpace(input.ProofURL),
			CreatedAt: time.Now().UTC(),
		}

		// Newest first. TotalHours is only ever touched here, rounded per
		// entry so it always equals the sum of the stored log hours.
		user.TimeLogs = append([]domain.TimeLog{entry}, user.TimeLogs...)
		user.TotalHours = domain.Round2(user.TotalHours + entry.Hours)
		user.Badges = domain.ComputeBadges(user, state.Config)

		result = AddTimeLogResult{
			TotalHours:  user.TotalHours,
			Log:         entry,
			Eligibility: domain.ComputeEligibility(user, state.Config),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("time logged", "user_id", userID, "hours", input.Hours)
	return &result, nil
}

// ProgramSnapshot is the consistent read view used to render all progress
// UI: the user record, both static catalogs, the config, and the freshly
// derived eligibility.
type ProgramSnapshot struct {
	User        *domain.ProgramUser        `json:"user"`
	Lessons     []domain.LessonDefinition  `json:"lessons"`
	Devices     []domain.DeviceCatalogItem `json:"devices"`
	Config      domain.ProgramConfig       `json:"config"`
	Eligibility domain.EligibilityCheck    `json:"eligibility"`
	ServerTime  time.Time                  `json:"serverTime"`
}

// Snapshot assembles the read view. It lazily creates the user and persists
// recomputed badges, so badges are fresh even on pure reads.
func (s *ProgressService) Snapshot(ctx context.Context, userID string) (*ProgramSnapshot, error) {
	var snapshot ProgramSnapshot
	_, err := s.store.UpdateState(ctx, func(state *domain.ProgramState) error {
		user := state.EnsureUser(userID)
		user.Badges = domain.ComputeBadges(user, state.Config)

		snapshot = ProgramSnapshot{
			User:        user,
			Lessons:     domain.AllLessons(),
			Devices:     state.Devices,
			Config:      state.Config,
			Eligibility: domain.ComputeEligibility(user, state.Config),
			ServerTime:  time.Now().UTC(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}
