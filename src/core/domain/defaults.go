package domain

import "time"

// StateVersion is stamped into freshly created state documents.
const StateVersion = "2.0.0"

// DefaultUserID is the learner record used when a caller does not identify
// itself. The single-learner UI never sends a user id.
const DefaultUserID = "demo-learner"

// Default eligibility thresholds, used when seeding a fresh state document.
const (
	DefaultMinHoursForDevice = 40
	DefaultRubricPassScore   = 85
)

// DefaultConfig returns the compiled-in program configuration.
func DefaultConfig() ProgramConfig {
	return ProgramConfig{
		MinHoursForDevice: DefaultMinHoursForDevice,
		RubricPassScore:   DefaultRubricPassScore,
		MetricThresholds: MetricThresholds{
			Image: MetricThreshold{Metric: MetricAccuracy, Min: 0.8},
			Text:  MetricThreshold{Metric: MetricF1, Min: 0.75},
			Audio: MetricThreshold{Metric: MetricF1, Min: 0.7},
		},
	}
}

// DefaultDevices returns the static hardware catalog for a fresh document.
func DefaultDevices() []DeviceCatalogItem {
	return []DeviceCatalogItem{
		{
			ID:          "pi-zero-2w",
			Name:        "Raspberry Pi Zero 2 W Kit",
			Description: "Low-cost Linux board for local inference and sensors.",
			PriceUSD:    20,
			Stock:       250,
			Active:      true,
		},
		{
			ID:          "esp32-s3",
			Name:        "ESP32-S3 TinyML Kit",
			Description: "Microcontroller path for low-power always-on inference.",
			PriceUSD:    10,
			Stock:       180,
			Active:      true,
		},
	}
}

// NewUser returns an empty learner record for the given id.
func NewUser(userID, displayName string) *ProgramUser {
	return &ProgramUser{
		ID:                 userID,
		DisplayName:        displayName,
		CompletedLessonIDs: []string{},
		Badges:             []string{},
		TotalHours:         0,
		TimeLogs:           []TimeLog{},
		Submissions:        []Submission{},
		RedemptionRequests: []RedemptionRequest{},
	}
}

// NewDefaultState builds the document written on first access: the given
// config, the device catalog, and one demo learner.
func NewDefaultState(config ProgramConfig) *ProgramState {
	return &ProgramState{
		Version:   StateVersion,
		UpdatedAt: time.Now().UTC(),
		Config:    config,
		Devices:   DefaultDevices(),
		Users: map[string]*ProgramUser{
			DefaultUserID: NewUser(DefaultUserID, "Demo Learner"),
		},
	}
}

// EnsureUser returns the user record for the id, lazily creating an empty
// one in the state when absent. A missing id never fails.
func (s *ProgramState) EnsureUser(userID string) *ProgramUser {
	if userID == "" {
		userID = DefaultUserID
	}
	if s.Users == nil {
		s.Users = map[string]*ProgramUser{}
	}
	user, ok := s.Users[userID]
	if !ok {
		user = NewUser(userID, userID)
		s.Users[userID] = user
	}
	return user
}
