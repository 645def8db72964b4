package store_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worldofml/src/core/domain"
	"worldofml/src/infra/logger"
	"worldofml/src/infra/store"
)

func newFileStore(t *testing.T) (*store.FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "program-state.json")
	return store.NewFileStore(path, domain.DefaultConfig(), logger.Discard()), path
}

func TestReadStateCreatesDefaultDocument(t *testing.T) {
	fs, path := newFileStore(t)

	state, err := fs.ReadState(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.StateVersion, state.Version)
	assert.Len(t, state.Devices, 2)
	require.Contains(t, state.Users, domain.DefaultUserID)
	assert.Equal(t, "Demo Learner", state.Users[domain.DefaultUserID].DisplayName)

	// The document now exists on disk.
	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestReadStateAppliesSeedThresholds(t *testing.T) {
	seed := domain.DefaultConfig()
	seed.MinHoursForDevice = 25
	seed.RubricPassScore = 70

	path := filepath.Join(t.TempDir(), "program-state.json")
	fs := store.NewFileStore(path, seed, logger.Discard())

	state, err := fs.ReadState(context.Background())
	require.NoError(t, err)
	assert.Equal(t, float64(25), state.Config.MinHoursForDevice)
	assert.Equal(t, float64(70), state.Config.RubricPassScore)
}

func TestReadStateCorruptFile(t *testing.T) {
	fs, path := newFileStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := fs.ReadState(context.Background())
	require.Error(t, err)
	assert.True(t, domain.IsStorageError(err))
}

func TestReadStateWrongShape(t *testing.T) {
	fs, path := newFileStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(`{"foo": "bar"}`), 0o644))

	_, err := fs.ReadState(context.Background())
	require.Error(t, err)
	assert.True(t, domain.IsStorageError(err))
}

func TestWriteStateRoundTrip(t *testing.T) {
	fs, _ := newFileStore(t)
	ctx := context.Background()

	state, err := fs.ReadState(ctx)
	require.NoError(t, err)

	state.EnsureUser("learner-2").CompletedLessonIDs = []string{"01-intro"}
	require.NoError(t, fs.WriteState(ctx, state))
	assert.False(t, state.UpdatedAt.IsZero())

	reread, err := fs.ReadState(ctx)
	require.NoError(t, err)
	require.Contains(t, reread.Users, "learner-2")
	assert.Equal(t, []string{"01-intro"}, reread.Users["learner-2"].CompletedLessonIDs)
}

func TestUpdateStateAppliesMutation(t *testing.T) {
	fs, _ := newFileStore(t)
	ctx := context.Background()

	updated, err := fs.UpdateState(ctx, func(state *domain.ProgramState) error {
		state.EnsureUser(domain.DefaultUserID).TotalHours = 12
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, float64(12), updated.Users[domain.DefaultUserID].TotalHours)

	reread, err := fs.ReadState(ctx)
	require.NoError(t, err)
	assert.Equal(t, float64(12), reread.Users[domain.DefaultUserID].TotalHours)
}

func TestUpdateStateMutatorErrorLeavesDocumentUntouched(t *testing.T) {
	fs, _ := newFileStore(t)
	ctx := context.Background()

	boom := errors.New("boom")
	_, err := fs.UpdateState(ctx, func(state *domain.ProgramState) error {
		state.EnsureUser(domain.DefaultUserID).TotalHours = 99
		return boom
	})
	require.ErrorIs(t, err, boom)

	state, err := fs.ReadState(ctx)
	require.NoError(t, err)
	assert.Equal(t, float64(0), state.Users[domain.DefaultUserID].TotalHours)
}
