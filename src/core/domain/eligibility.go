package domain

import (
	"fmt"
	"math"
)

// Eligibility and badge derivation. Pure functions over a user record and
// the program config: no storage access, no side effects.

// Round2 rounds to 2 decimal places. Applied per time-log entry so the
// cached TotalHours accumulates the same rounded values a reader would sum.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round4 rounds to 4 decimal places, used for reported metric values.
func Round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

// MeetsTrackThreshold reports whether the submission's reported metric
// matches the configured metric for its track and reaches the minimum.
func MeetsTrackThreshold(sub Submission, config ProgramConfig) bool {
	threshold := config.MetricThresholds.ForTrack(sub.Track)
	if sub.MetricName != threshold.Metric {
		return false
	}
	return sub.MetricValue >= threshold.Min
}

// ComputeEligibility derives the four redemption gates and their failure
// reasons. Reasons are appended in the fixed order lessons, hours, metric,
// rubric so callers can render a stable checklist.
func ComputeEligibility(user *ProgramUser, config ProgramConfig) EligibilityCheck {
	phaseOneComplete := true
	for _, lessonID := range RequiredPhaseOneLessonIDs() {
		if !user.HasCompletedLesson(lessonID) {
			phaseOneComplete = false
			break
		}
	}

	hoursMet := user.TotalHours >= config.MinHoursForDevice

	metricMet := false
	rubricMet := false
	for _, sub := range user.Submissions {
		if sub.Status != SubmissionApproved {
			continue
		}
		if MeetsTrackThreshold(sub, config) {
			metricMet = true
		}
		// A missing rubric score counts as 0.
		if sub.RubricScore != nil && *sub.RubricScore >= config.RubricPassScore {
			rubricMet = true
		}
	}

	var reasons []string
	if !phaseOneComplete {
		reasons = append(reasons, "Finish all required Phase 1 lessons.")
	}
	if !hoursMet {
		reasons = append(reasons, fmt.Sprintf("Log at least %g hours of build time with proof.", config.MinHoursForDevice))
	}
	if !metricMet {
		reasons = append(reasons, "Submit an approved project that meets the track metric threshold.")
	}
	if !rubricMet {
		reasons = append(reasons, fmt.Sprintf("Receive a rubric score of at least %g/100.", config.RubricPassScore))
	}

	return EligibilityCheck{
		PhaseOneComplete: phaseOneComplete,
		HoursMet:         hoursMet,
		MetricMet:        metricMet,
		RubricMet:        rubricMet,
		ReadyToRedeem:    len(reasons) == 0,
		Reasons:          reasons,
	}
}

// ComputeBadges returns the user's badge set after applying the earning
// rules. Badges are monotonic: the existing set is the starting point and
// nothing is ever removed. The result is filtered and ordered by the
// canonical badge catalog, not by when badges were earned.
func ComputeBadges(user *ProgramUser, config ProgramConfig) []string {
	earned := make(map[string]bool, len(user.Badges))
	for _, id := range user.Badges {
		earned[id] = true
	}

	if len(user.CompletedLessonIDs) > 0 {
		earned[BadgeKickoff] = true
	}

	eligibility := ComputeEligibility(user, config)
	if eligibility.PhaseOneComplete {
		earned[BadgePhaseOne] = true
	}

	if len(user.Submissions) > 0 {
		earned[BadgeBuilder] = true
	}

	for _, sub := range user.Submissions {
		if sub.Status == SubmissionApproved && MeetsTrackThreshold(sub, config) {
			earned[BadgeBenchmarker] = true
			break
		}
	}

	if eligibility.ReadyToRedeem {
		earned[BadgeDeviceReady] = true
	}

	badges := make([]string, 0, len(BadgeDefinitions))
	for _, def := range BadgeDefinitions {
		if earned[def.ID] {
			badges = append(badges, def.ID)
		}
	}
	return badges
}
