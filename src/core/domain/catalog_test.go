package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"worldofml/src/core/domain"
)

func TestLessonCatalog(t *testing.T) {
	assert.Len(t, domain.RequiredPhaseOneLessonIDs(), 8)
	assert.Len(t, domain.AllLessons(), 11)

	assert.True(t, domain.IsKnownLesson("01-intro"))
	assert.True(t, domain.IsKnownLesson("p2-inference-demo"))
	assert.False(t, domain.IsKnownLesson("99-bonus"))
}

func TestDefaultState(t *testing.T) {
	state := domain.NewDefaultState(domain.DefaultConfig())

	assert.Equal(t, domain.StateVersion, state.Version)
	assert.Len(t, state.Devices, 2)
	assert.Contains(t, state.Users, domain.DefaultUserID)
	assert.Equal(t, float64(40), state.Config.MinHoursForDevice)
	assert.Equal(t, float64(85), state.Config.RubricPassScore)
}

func TestEnsureUserLazilyCreates(t *testing.T) {
	state := domain.NewDefaultState(domain.DefaultConfig())

	user := state.EnsureUser("new-learner")
	assert.Equal(t, "new-learner", user.ID)
	assert.Empty(t, user.CompletedLessonIDs)
	assert.Same(t, user, state.EnsureUser("new-learner"))

	// Empty id falls back to the demo learner.
	assert.Equal(t, domain.DefaultUserID, state.EnsureUser("").ID)
}
