package matching

import (
	"math"
	"time"

	"go-care-backend/internal/domain"
)

const earthRadiusKm = 6371

// HaversineKm returns the great-circle distance between two points in
// kilometers.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	rLat1 := lat1 * math.Pi / 180
	rLat2 := lat2 * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// Scorer computes match scores for carer candidates against a care request.
// It holds no per-request state; Now is injected so the recent-review window
// is deterministic under test.
type Scorer struct {
	Weights Weights
	Now     func() time.Time
}

func NewScorer(w Weights) *Scorer {
	return &Scorer{Weights: w, Now: time.Now}
}

// Breakdown is the per-factor decomposition of a match score.
type Breakdown struct {
	Location       float64 `json:"location"`
	Specialization float64 `json:"specialization"`
	Experience     float64 `json:"experience"`
	Rating         float64 `json:"rating"`
	Budget         float64 `json:"budget"`
	Availability   float64 `json:"availability"`
}

// Total sums the factors and rounds to one decimal place, the precision
// persisted and displayed.
func (b Breakdown) Total() float64 {
	sum := b.Location + b.Specialization + b.Experience + b.Rating + b.Budget + b.Availability
	return math.Round(sum*10) / 10
}

// Score computes the full breakdown for one candidate. requiredTags comes
// from InferSpecializations on the request's recipient.
func (s *Scorer) Score(req *domain.CareRequest, requiredTags []string, c *domain.CarerCandidate) Breakdown {
	return Breakdown{
		Location:       s.LocationScore(req.Latitude, req.Longitude, c.Latitude, c.Longitude),
		Specialization: s.SpecializationScore(requiredTags, c.Specializations),
		Experience:     s.ExperienceScore(c.YearsExperience),
		Rating:         s.RatingScore(c.Reviews),
		Budget:         s.BudgetScore(req.BudgetMin, req.BudgetMax, c.RateFor(req.CareType)),
		Availability:   s.AvailabilityScore(c.ApprovalStatus, c.HasActivePlacement),
	}
}

// LocationScore decays logarithmically with distance: full weight at 0 km,
// floored at 0 as distance grows. Missing coordinates on either side score a
// neutral 50% of the weight rather than penalizing un-geocoded profiles.
func (s *Scorer) LocationScore(familyLat, familyLon, carerLat, carerLon *float64) float64 {
	if familyLat == nil || familyLon == nil || carerLat == nil || carerLon == nil {
		return s.Weights.Location * 0.5
	}
	dist := HaversineKm(*familyLat, *familyLon, *carerLat, *carerLon)
	score := s.Weights.Location * (1 - math.Log10(dist+1)/2)
	if score < 0 {
		return 0
	}
	return score
}

// SpecializationScore is the coverage ratio of required tags scaled by the
// weight, plus a flat high-acuity bonus when a dementia or palliative need is
// covered. The bonus can push the contribution past the nominal weight.
func (s *Scorer) SpecializationScore(required, declared []string) float64 {
	if len(required) == 0 {
		return s.Weights.Specialization * 0.5
	}

	have := make(map[string]bool, len(declared))
	for _, tag := range declared {
		have[tag] = true
	}

	matched := 0
	bonus := 0.0
	for _, tag := range required {
		if have[tag] {
			matched++
			if HighAcuityTags[tag] && bonus == 0 {
				bonus = HighAcuityBonus
			}
		}
	}

	base := float64(matched) / float64(len(required)) * s.Weights.Specialization
	return base + bonus
}

// ExperienceScore rewards years of experience with diminishing returns,
// approaching the full weight asymptotically. Negative input is treated as 0.
func (s *Scorer) ExperienceScore(years int) float64 {
	if years < 0 {
		years = 0
	}
	return s.Weights.Experience * (1 - math.Exp(-float64(years)/5))
}

// RatingScore averages historical ratings, scaled by a confidence factor that
// grows with review count (0.7 at zero reviews toward 1.0 at ten or more).
// Carers with no reviews score a neutral half weight. Recent well-rated
// reviews add a small capped bonus on top.
func (s *Scorer) RatingScore(reviews []domain.Review) float64 {
	if len(reviews) == 0 {
		return s.Weights.Rating * 0.5
	}

	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := float64(sum) / float64(len(reviews))

	confidence := 0.7 + 0.3*math.Min(1, float64(len(reviews))/10)
	score := avg / 5 * s.Weights.Rating * confidence

	cutoff := s.Now().AddDate(0, 0, -RecentReviewWindowDays)
	bonus := 0.0
	for _, r := range reviews {
		if r.Rating >= RecentReviewMinRating && r.CreatedAt.After(cutoff) {
			bonus += RecentReviewBonus
		}
	}
	if bonus > RecentReviewBonusCap {
		bonus = RecentReviewBonusCap
	}

	return score + bonus
}

// BudgetScore checks the carer's rate against the family's range. No rate
// configured scores neutral; inside the range scores full weight; cheaper
// than the range is still rewarded highly; over budget steps down with the
// percentage overage.
func (s *Scorer) BudgetScore(budgetMin, budgetMax float64, rate *float64) float64 {
	if rate == nil {
		return s.Weights.Budget * 0.5
	}

	r := *rate
	switch {
	case r >= budgetMin && r <= budgetMax:
		return s.Weights.Budget
	case r < budgetMin:
		return s.Weights.Budget * budgetBelowMinFactor
	}

	// Over budget: step down by percentage overage.
	if budgetMax <= 0 {
		return s.Weights.Budget * budgetFarOverFactor
	}
	overage := (r - budgetMax) / budgetMax
	switch {
	case overage <= 0.10:
		return s.Weights.Budget * budgetOver10Factor
	case overage <= 0.20:
		return s.Weights.Budget * budgetOver20Factor
	case overage <= 0.30:
		return s.Weights.Budget * budgetOver30Factor
	default:
		return s.Weights.Budget * budgetFarOverFactor
	}
}

// AvailabilityScore zeroes out unapproved carers and discounts carers already
// holding an active placement.
func (s *Scorer) AvailabilityScore(approvalStatus string, hasActivePlacement bool) float64 {
	if approvalStatus != domain.CarerStatusApproved {
		return 0
	}
	if hasActivePlacement {
		return s.Weights.Availability * 0.5
	}
	return s.Weights.Availability
}
