package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"go-care-backend/config"
	"go-care-backend/internal/domain"
	"go-care-backend/internal/matching"
	"go-care-backend/pkg/apperror"
	"go-care-backend/pkg/email"
	"go-care-backend/pkg/logger"

	"github.com/google/uuid"
)

type matchingUsecase struct {
	requestRepo      domain.CareRequestRepository
	recipientRepo    domain.CareRecipientRepository
	carerRepo        domain.CarerRepository
	matchRepo        domain.MatchRepository
	notificationRepo domain.NotificationRepository
	userRepo         domain.UserRepository
	emailService     *email.EmailService
	scorer           *matching.Scorer
	maxDistanceKm    float64
	minScore         float64
	limit            int
	frontendURL      string
}

func NewMatchingUsecase(
	requestRepo domain.CareRequestRepository,
	recipientRepo domain.CareRecipientRepository,
	carerRepo domain.CarerRepository,
	matchRepo domain.MatchRepository,
	notificationRepo domain.NotificationRepository,
	userRepo domain.UserRepository,
	emailService *email.EmailService,
	cfg *config.Config,
) domain.MatchingUsecase {
	return &matchingUsecase{
		requestRepo:      requestRepo,
		recipientRepo:    recipientRepo,
		carerRepo:        carerRepo,
		matchRepo:        matchRepo,
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		emailService:     emailService,
		scorer:           matching.NewScorer(matching.DefaultWeights()),
		maxDistanceKm:    cfg.MatchMaxDistanceKm,
		minScore:         cfg.MatchMinScore,
		limit:            cfg.MatchLimit,
		frontendURL:      cfg.FrontendURL,
	}
}

type scoredCandidate struct {
	candidate domain.CarerCandidate
	score     float64
}

// FindMatches runs the matching engine for a care request: retrieve eligible
// carers, score and rank them, persist the shortlist and notify each carer.
// Re-running for a request that already has matches returns the existing
// shortlist instead of creating duplicates.
func (u *matchingUsecase) FindMatches(ctx context.Context, careRequestID string) ([]domain.MatchWithCarer, error) {
	req, err := u.requestRepo.GetByID(ctx, careRequestID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Care request not found")
		}
		return nil, apperror.Internal(err)
	}

	exists, err := u.matchRepo.ExistsForRequest(ctx, careRequestID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		logger.Log.Info("Matches already exist for request, returning existing shortlist", "care_request_id", careRequestID)
		matches, err := u.matchRepo.FetchByRequestID(ctx, careRequestID)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		return matches, nil
	}

	recipient, err := u.recipientRepo.GetByID(ctx, req.RecipientID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Care recipient not found")
		}
		return nil, apperror.Internal(err)
	}

	requiredTags := matching.InferSpecializations(recipient.MedicalConditions, recipient.MobilityLevel)

	candidates, err := u.carerRepo.FindEligible(ctx, req.CareType)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	if req.Status == domain.RequestStatusCreated {
		if err := u.requestRepo.UpdateStatus(ctx, req.ID, domain.RequestStatusMatching); err != nil {
			logger.Log.Warn("Failed to move request to matching status", "care_request_id", req.ID, "error", err)
		}
	}

	if len(candidates) == 0 {
		logger.Log.Info("No eligible carers for request", "care_request_id", careRequestID, "care_type", req.CareType)
		return []domain.MatchWithCarer{}, nil
	}

	scored := u.scoreCandidates(req, requiredTags, candidates)

	// Stable sort: ties preserve retrieval order
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if len(scored) > u.limit {
		scored = scored[:u.limit]
	}

	return u.persistMatches(ctx, req, scored), nil
}

// scoreCandidates applies the distance cutoff and the minimum score
// threshold, clamping malformed source data instead of failing the batch.
func (u *matchingUsecase) scoreCandidates(req *domain.CareRequest, requiredTags []string, candidates []domain.CarerCandidate) []scoredCandidate {
	budgetMin, budgetMax := req.BudgetMin, req.BudgetMax
	if budgetMin > budgetMax {
		logger.Log.Warn("Care request has inverted budget range, swapping",
			"care_request_id", req.ID, "budget_min", budgetMin, "budget_max", budgetMax)
		budgetMin, budgetMax = budgetMax, budgetMin
	}
	scoringReq := *req
	scoringReq.BudgetMin = budgetMin
	scoringReq.BudgetMax = budgetMax

	var scored []scoredCandidate
	for _, c := range candidates {
		if u.maxDistanceKm > 0 && req.Latitude != nil && req.Longitude != nil && c.Latitude != nil && c.Longitude != nil {
			dist := matching.HaversineKm(*req.Latitude, *req.Longitude, *c.Latitude, *c.Longitude)
			if dist > u.maxDistanceKm {
				continue
			}
		}

		if c.YearsExperience < 0 {
			logger.Log.Warn("Carer has negative experience, clamping to zero", "carer_id", c.UserID)
			c.YearsExperience = 0
		}

		total := u.scorer.Score(&scoringReq, requiredTags, &c).Total()
		if total < u.minScore {
			continue
		}
		scored = append(scored, scoredCandidate{candidate: c, score: total})
	}
	return scored
}

// persistMatches writes a Match and a Notification per retained candidate in
// rank order. A failure for one candidate is logged and skipped; the rest of
// the batch still goes through.
func (u *matchingUsecase) persistMatches(ctx context.Context, req *domain.CareRequest, scored []scoredCandidate) []domain.MatchWithCarer {
	now := time.Now()
	results := make([]domain.MatchWithCarer, 0, len(scored))

	for _, sc := range scored {
		match := &domain.Match{
			ID:            uuid.NewString(),
			CareRequestID: req.ID,
			CarerID:       sc.candidate.UserID,
			Score:         sc.score,
			Status:        domain.MatchStatusSuggested,
			CreatedAt:     now,
			UpdatedAt:     now,
		}

		if err := u.matchRepo.Create(ctx, match); err != nil {
			logger.Log.Error("Failed to persist match, skipping candidate",
				"care_request_id", req.ID, "carer_id", sc.candidate.UserID, "error", err)
			continue
		}

		notification := &domain.Notification{
			ID:        uuid.NewString(),
			UserID:    sc.candidate.UserID,
			Type:      domain.NotificationTypeNewMatch,
			Title:     "New care match",
			Content:   fmt.Sprintf("You have been matched with a family looking for %s care.", req.CareType),
			Link:      "/dashboard/matches/" + match.ID,
			CreatedAt: now,
		}
		if err := u.notificationRepo.Create(ctx, notification); err != nil {
			logger.Log.Error("Failed to persist match notification",
				"match_id", match.ID, "carer_id", sc.candidate.UserID, "error", err)
		}

		u.sendMatchAlert(ctx, &sc.candidate, req.CareType, sc.score)

		results = append(results, u.toMatchWithCarer(match, &sc.candidate, req.CareType))
	}

	return results
}

// sendMatchAlert emails the carer about the new match. Best effort: delivery
// failures never affect the matching result.
func (u *matchingUsecase) sendMatchAlert(ctx context.Context, c *domain.CarerCandidate, careType string, score float64) {
	if u.emailService == nil || !u.emailService.IsConfigured() {
		return
	}
	user, err := u.userRepo.GetByID(ctx, c.UserID)
	if err != nil {
		logger.Log.Warn("Could not resolve carer email for match alert", "carer_id", c.UserID, "error", err)
		return
	}
	data := email.MatchAlertData{
		CarerName:    c.DisplayName,
		CareType:     careType,
		Score:        score,
		DashboardURL: u.frontendURL + "/dashboard/matches",
	}
	if err := u.emailService.SendMatchAlert(user.Email, data); err != nil {
		logger.Log.Warn("Failed to send match alert email", "carer_id", c.UserID, "error", err)
	}
}

func (u *matchingUsecase) toMatchWithCarer(match *domain.Match, c *domain.CarerCandidate, careType string) domain.MatchWithCarer {
	result := domain.MatchWithCarer{
		Match:           *match,
		CarerName:       c.DisplayName,
		Specializations: c.Specializations,
		YearsExperience: c.YearsExperience,
		Rate:            c.RateFor(careType),
		ReviewCount:     len(c.Reviews),
	}
	if len(c.Reviews) > 0 {
		sum := 0
		for _, r := range c.Reviews {
			sum += r.Rating
		}
		avg := float64(sum) / float64(len(c.Reviews))
		result.AvgRating = &avg
	}
	return result
}

func (u *matchingUsecase) ListMatches(ctx context.Context, familyID, careRequestID string) ([]domain.MatchWithCarer, error) {
	req, err := u.requestRepo.GetByID(ctx, careRequestID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Care request not found")
		}
		return nil, apperror.Internal(err)
	}
	if req.FamilyID != familyID {
		return nil, apperror.Forbidden("You can only view matches for your own care requests")
	}

	matches, err := u.matchRepo.FetchByRequestID(ctx, careRequestID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return matches, nil
}
