package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"worldofml/src/core/domain"
	"worldofml/src/core/ports"
)

// RedemptionService handles hardware redemption requests.
type RedemptionService struct {
	store ports.StateStore
	log   *slog.Logger
}

func NewRedemptionService(store ports.StateStore, log *slog.Logger) *RedemptionService {
	return &RedemptionService{store: store, log: log}
}

// RedemptionInput carries the shipping details for a redemption request.
type RedemptionInput struct {
	ShippingName string
	Email        string
	Country      string
	Notes        string
}

// RedemptionResult pairs the created request with the eligibility that
// authorized it.
type RedemptionResult struct {
	Request     domain.RedemptionRequest `json:"request"`
	Eligibility domain.EligibilityCheck  `json:"eligibility"`
}

// Create records a pending redemption request. Eligibility is checked
// against the current record inside the same update, so a request can only
// ever be created while all four gates hold.
func (s *RedemptionService) Create(ctx context.Context, userID string, input RedemptionInput) (*RedemptionResult, error) {
	var result RedemptionResult
	_, err := s.store.UpdateState(ctx, func(state *domain.ProgramState) error {
		user := state.EnsureUser(userID)

		eligibility := domain.ComputeEligibility(user, state.Config)
		if !eligibility.ReadyToRedeem {
			return domain.NewNotEligibleError("User is not eligible for device redemption yet.")
		}

		request := domain.RedemptionRequest{
			ID:           uuid.NewString(),
			CreatedAt:    time.Now().UTC(),
			Status:       domain.RedemptionPending,
			ShippingName: input.ShippingName,
			Email:        input.Email,
			Country:      input.Country,
			Notes:        input.Notes,
		}

		user.RedemptionRequests = append([]domain.RedemptionRequest{request}, user.RedemptionRequests...)
		user.Badges = domain.ComputeBadges(user, state.Config)

		result = RedemptionResult{
			Request:     request,
			Eligibility: eligibility,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("redemption requested", "user_id", userID, "country", input.Country)
	return &result, nil
}

// RedemptionOverview lists the user's requests alongside current eligibility.
type RedemptionOverview struct {
	Requests    []domain.RedemptionRequest `json:"requests"`
	Eligibility domain.EligibilityCheck    `json:"eligibility"`
}

// Overview returns the user's redemption requests, newest first, with the
// freshly derived eligibility checklist.
func (s *RedemptionService) Overview(ctx context.Context, userID string) (*RedemptionOverview, error) {
	var overview RedemptionOverview
	_, err := s.store.UpdateState(ctx, func(state *domain.ProgramState) error {
		user := state.EnsureUser(userID)
		user.Badges = domain.ComputeBadges(user, state.Config)

		overview = RedemptionOverview{
			Requests:    user.RedemptionRequests,
			Eligibility: domain.ComputeEligibility(user, state.Config),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &overview, nil
}
