package domain

// The curriculum and badge catalogs are compiled in. They are reference data:
// user records point at them by id but never embed or mutate them.

// PhaseOneLessons is the guided curriculum. Every required entry gates the
// phase-one-complete eligibility check.
var PhaseOneLessons = []LessonDefinition{
	{
		ID:               "01-intro",
		Title:            "Intro to Practical ML",
		Phase:            1,
		Objective:        "Understand the full ML workflow and how to define a useful problem.",
		EstimatedMinutes: 30,
		Required:         true,
	},
	{
		ID:               "02-problem-discovery",
		Title:            "Problem Discovery and Scoping",
		Phase:            1,
		Objective:        "Frame a measurable question and choose success metrics before coding.",
		EstimatedMinutes: 45,
		Required:         true,
	},
	{
		ID:               "03-data-collection-cleaning",
		Title:            "Dataset Sourcing and Cleaning",
		Phase:            1,
		Objective:        "Source and clean a dataset while avoiding data leakage.",
		EstimatedMinutes: 60,
		Required:         true,
	},
	{
		ID:               "04-feature-engineering",
		Title:            "Feature Engineering",
		Phase:            1,
		Objective:        "Create robust features and justify your design choices.",
		EstimatedMinutes: 60,
		Required:         true,
	},
	{
		ID:               "05-model-design-training",
		Title:            "Model Design and Training",
		Phase:            1,
		Objective:        "Train a baseline and an improved model with reproducible scripts.",
		EstimatedMinutes: 75,
		Required:         true,
	},
	{
		ID:               "06-metrics-evaluation",
		Title:            "Metrics and Evaluation",
		Phase:            1,
		Objective:        "Evaluate with task-appropriate metrics and explain errors clearly.",
		EstimatedMinutes: 60,
		Required:         true,
	},
	{
		ID:               "07-deployment-basics",
		Title:            "Deployment Basics",
		Phase:            1,
		Objective:        "Package and serve inference locally with a clear CLI or web demo.",
		EstimatedMinutes: 45,
		Required:         true,
	},
	{
		ID:               "08-final-project",
		Title:            "Final Project Spec",
		Phase:            1,
		Objective:        "Submit a scoped project proposal for phase two device deployment.",
		EstimatedMinutes: 40,
		Required:         true,
	},
}

// PhaseTwoMilestones is the on-device deployment track. Tracked as lessons
// but not part of any eligibility gate.
var PhaseTwoMilestones = []LessonDefinition{
	{
		ID:               "p2-hardware-setup",
		Title:            "Hardware + OS Setup",
		Phase:            2,
		Objective:        "Prepare low-cost hardware and verify remote access.",
		EstimatedMinutes: 45,
		Required:         true,
	},
	{
		ID:               "p2-optimize-convert",
		Title:            "Optimize + Convert Model",
		Phase:            2,
		Objective:        "Apply quantization and export to ONNX/TFLite.",
		EstimatedMinutes: 75,
		Required:         true,
	},
	{
		ID:               "p2-inference-demo",
		Title:            "On-Device Inference Demo",
		Phase:            2,
		Objective:        "Run inference on-device and capture proof.",
		EstimatedMinutes: 45,
		Required:         true,
	},
}

// AllLessons returns the full lesson catalog, phase 1 followed by phase 2.
func AllLessons() []LessonDefinition {
	lessons := make([]LessonDefinition, 0, len(PhaseOneLessons)+len(PhaseTwoMilestones))
	lessons = append(lessons, PhaseOneLessons...)
	lessons = append(lessons, PhaseTwoMilestones...)
	return lessons
}

// IsKnownLesson reports whether the id exists in the lesson catalog.
func IsKnownLesson(lessonID string) bool {
	for _, lesson := range AllLessons() {
		if lesson.ID == lessonID {
			return true
		}
	}
	return false
}

// RequiredPhaseOneLessonIDs returns the ids gating phase-one completion.
func RequiredPhaseOneLessonIDs() []string {
	ids := make([]string, 0, len(PhaseOneLessons))
	for _, lesson := range PhaseOneLessons {
		if lesson.Required {
			ids = append(ids, lesson.ID)
		}
	}
	return ids
}

// Badge ids, in canonical definition order. ComputeBadges emits badges in
// this order regardless of when they were earned.
const (
	BadgeKickoff     = "kickoff"
	BadgePhaseOne    = "phase_one"
	BadgeBuilder     = "builder"
	BadgeBenchmarker = "benchmarker"
	BadgeDeviceReady = "device_ready"
)

// BadgeDefinition describes one achievement marker.
type BadgeDefinition struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// BadgeDefinitions is the canonical badge catalog. Order matters: it fixes
// the output order of ComputeBadges.
var BadgeDefinitions = []BadgeDefinition{
	{ID: BadgeKickoff, Description: "Started WorldOfML v2.0"},
	{ID: BadgePhaseOne, Description: "Completed Phase 1 curriculum"},
	{ID: BadgeBuilder, Description: "Submitted final project"},
	{ID: BadgeBenchmarker, Description: "Passed metric threshold"},
	{ID: BadgeDeviceReady, Description: "Eligible for device redemption"},
}
