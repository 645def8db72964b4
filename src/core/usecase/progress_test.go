package usecase_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worldofml/src/core/domain"
	"worldofml/src/core/ports"
	"worldofml/src/core/usecase"
	"worldofml/src/infra/logger"
	"worldofml/src/infra/store"
)

func newTestStore(t *testing.T) ports.StateStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "program-state.json")
	return store.NewFileStore(path, domain.DefaultConfig(), logger.Discard())
}

func TestSnapshotFreshUser(t *testing.T) {
	svc := usecase.NewProgressService(newTestStore(t), logger.Discard())

	snapshot, err := svc.Snapshot(context.Background(), domain.DefaultUserID)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultUserID, snapshot.User.ID)
	assert.Len(t, snapshot.Lessons, 11)
	assert.Len(t, snapshot.Devices, 2)
	assert.False(t, snapshot.Eligibility.ReadyToRedeem)
	assert.Len(t, snapshot.Eligibility.Reasons, 4)
	assert.False(t, snapshot.ServerTime.IsZero())
}

func TestSnapshotPersistsRecomputedBadges(t *testing.T) {
	st := newTestStore(t)
	svc := usecase.NewProgressService(st, logger.Discard())
	ctx := context.Background()

	_, err := svc.CompleteLesson(ctx, domain.DefaultUserID, "01-intro")
	require.NoError(t, err)

	state, err := st.ReadState(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{domain.BadgeKickoff}, state.Users[domain.DefaultUserID].Badges)
}

func TestCompleteLessonIdempotent(t *testing.T) {
	svc := usecase.NewProgressService(newTestStore(t), logger.Discard())
	ctx := context.Background()

	first, err := svc.CompleteLesson(ctx, domain.DefaultUserID, "01-intro")
	require.NoError(t, err)
	assert.Equal(t, []string{"01-intro"}, first.CompletedLessons)

	second, err := svc.CompleteLesson(ctx, domain.DefaultUserID, "01-intro")
	require.NoError(t, err)
	assert.Equal(t, []string{"01-intro"}, second.CompletedLessons)
}

func TestCompleteLessonUnknownID(t *testing.T) {
	st := newTestStore(t)
	svc := usecase.NewProgressService(st, logger.Discard())
	ctx := context.Background()

	_, err := svc.CompleteLesson(ctx, domain.DefaultUserID, "99-bonus")
	require.Error(t, err)
	assert.True(t, domain.IsUnknownLesson(err))

	// Nothing was persisted for the user.
	state, err := st.ReadState(ctx)
	require.NoError(t, err)
	assert.Empty(t, state.Users[domain.DefaultUserID].CompletedLessonIDs)
}

func TestAddTimeLogValidation(t *testing.T) {
	svc := usecase.NewProgressService(newTestStore(t), logger.Discard())
	ctx := context.Background()

	cases := []struct {
		name  string
		input usecase.AddTimeLogInput
	}{
		{"zero hours", usecase.AddTimeLogInput{Hours: 0, Note: "built stuff"}},
		{"negative hours", usecase.AddTimeLogInput{Hours: -1, Note: "built stuff"}},
		{"over twelve hours", usecase.AddTimeLogInput{Hours: 12.5, Note: "built stuff"}},
		{"empty note", usecase.AddTimeLogInput{Hours: 2, Note: ""}},
		{"whitespace note", usecase.AddTimeLogInput{Hours: 2, Note: "   "}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.AddTimeLog(ctx, domain.DefaultUserID, tc.input)
			require.Error(t, err)
			assert.True(t, domain.IsValidationError(err))
		})
	}
}

func TestAddTimeLogAccumulatesRoundedTotal(t *testing.T) {
	svc := usecase.NewProgressService(newTestStore(t), logger.Discard())
	ctx := context.Background()

	var last *usecase.AddTimeLogResult
	var err error
	for _, hours := range []float64{1.004, 1.006, 2.5} {
		last, err = svc.AddTimeLog(ctx, domain.DefaultUserID, usecase.AddTimeLogInput{
			Hours: hours,
			Note:  "training run",
		})
		require.NoError(t, err)
	}

	// Per-entry rounding: 1.0 + 1.01 + 2.5.
	assert.Equal(t, 4.51, last.TotalHours)

	snapshot, err := svc.Snapshot(ctx, domain.DefaultUserID)
	require.NoError(t, err)
	require.Len(t, snapshot.User.TimeLogs, 3)

	sum := 0.0
	for _, entry := range snapshot.User.TimeLogs {
		sum += entry.Hours
	}
	assert.Equal(t, snapshot.User.TotalHours, domain.Round2(sum))

	// Newest first.
	assert.Equal(t, 2.5, snapshot.User.TimeLogs[0].Hours)
}

func TestAddTimeLogDefaultsDateAndTrims(t *testing.T) {
	svc := usecase.NewProgressService(newTestStore(t), logger.Discard())

	result, err := svc.AddTimeLog(context.Background(), domain.DefaultUserID, usecase.AddTimeLogInput{
		Hours:    3,
		Note:     "  labeled dataset  ",
		ProofURL: " https://example.com/proof ",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.Log.ID)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, result.Log.Date)
	assert.Equal(t, "labeled dataset", result.Log.Note)
	assert.Equal(t, "https://example.com/proof", result.Log.ProofURL)
}
