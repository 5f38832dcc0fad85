package matching_test

import (
	"testing"
	"time"

	"go-care-backend/internal/domain"
	"go-care-backend/internal/matching"

	"github.com/stretchr/testify/assert"
)

var (
	londonLat = 51.5074
	londonLon = -0.1278
	parisLat  = 48.8566
	parisLon  = 2.3522
)

func testScorer() *matching.Scorer {
	s := matching.NewScorer(matching.DefaultWeights())
	// Frozen clock so the recent-review window is deterministic.
	s.Now = func() time.Time { return time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC) }
	return s
}

func floatPtr(f float64) *float64 { return &f }

func TestHaversine(t *testing.T) {
	t.Run("identical points are zero", func(t *testing.T) {
		assert.Equal(t, 0.0, matching.HaversineKm(londonLat, londonLon, londonLat, londonLon))
	})

	t.Run("symmetry", func(t *testing.T) {
		d1 := matching.HaversineKm(londonLat, londonLon, parisLat, parisLon)
		d2 := matching.HaversineKm(parisLat, parisLon, londonLat, londonLon)
		assert.InDelta(t, d1, d2, 1e-9)
	})

	t.Run("london to paris", func(t *testing.T) {
		d := matching.HaversineKm(londonLat, londonLon, parisLat, parisLon)
		assert.InDelta(t, 343.5, d, 2)
	})
}

func TestLocationScore(t *testing.T) {
	s := testScorer()
	w := s.Weights.Location

	t.Run("zero distance scores full weight", func(t *testing.T) {
		score := s.LocationScore(&londonLat, &londonLon, &londonLat, &londonLon)
		assert.Equal(t, w, score)
	})

	t.Run("missing coordinates score neutral", func(t *testing.T) {
		assert.Equal(t, w*0.5, s.LocationScore(nil, nil, &londonLat, &londonLon))
		assert.Equal(t, w*0.5, s.LocationScore(&londonLat, &londonLon, nil, nil))
	})

	t.Run("never negative at extreme distance", func(t *testing.T) {
		sydneyLat, sydneyLon := -33.8688, 151.2093
		score := s.LocationScore(&londonLat, &londonLon, &sydneyLat, &sydneyLon)
		assert.GreaterOrEqual(t, score, 0.0)
	})

	t.Run("monotone: closer is never worse", func(t *testing.T) {
		prev := s.LocationScore(&londonLat, &londonLon, &londonLat, &londonLon)
		for _, dLat := range []float64{0.1, 0.5, 1, 2, 5, 10} {
			lat := londonLat + dLat
			score := s.LocationScore(&londonLat, &londonLon, &lat, &londonLon)
			assert.LessOrEqual(t, score, prev)
			prev = score
		}
	})
}

func TestSpecializationScore(t *testing.T) {
	s := testScorer()
	w := s.Weights.Specialization

	t.Run("full coverage without acuity bonus", func(t *testing.T) {
		score := s.SpecializationScore(
			[]string{matching.TagElderlyCare},
			[]string{matching.TagElderlyCare, matching.TagAutism},
		)
		assert.Equal(t, w, score)
	})

	t.Run("half coverage", func(t *testing.T) {
		score := s.SpecializationScore(
			[]string{matching.TagPostSurgery, matching.TagMobilitySupport},
			[]string{matching.TagPostSurgery},
		)
		assert.Equal(t, w*0.5, score)
	})

	t.Run("high acuity bonus exceeds nominal weight", func(t *testing.T) {
		score := s.SpecializationScore(
			[]string{matching.TagDementia},
			[]string{matching.TagDementia},
		)
		assert.Equal(t, w+matching.HighAcuityBonus, score)
	})

	t.Run("bonus applied once for two acuity tags", func(t *testing.T) {
		score := s.SpecializationScore(
			[]string{matching.TagDementia, matching.TagPalliative},
			[]string{matching.TagDementia, matching.TagPalliative},
		)
		assert.Equal(t, w+matching.HighAcuityBonus, score)
	})

	t.Run("unmatched acuity tag earns no bonus", func(t *testing.T) {
		score := s.SpecializationScore(
			[]string{matching.TagDementia, matching.TagMobilitySupport},
			[]string{matching.TagMobilitySupport},
		)
		assert.Equal(t, w*0.5, score)
	})

	t.Run("empty required set scores neutral", func(t *testing.T) {
		assert.Equal(t, w*0.5, s.SpecializationScore(nil, []string{matching.TagDementia}))
	})
}

func TestExperienceScore(t *testing.T) {
	s := testScorer()
	w := s.Weights.Experience

	assert.Equal(t, 0.0, s.ExperienceScore(0))
	assert.Equal(t, 0.0, s.ExperienceScore(-3), "negative input clamps to zero")

	t.Run("monotone non-decreasing", func(t *testing.T) {
		prev := -1.0
		for years := 0; years <= 40; years++ {
			score := s.ExperienceScore(years)
			assert.Greater(t, score, prev)
			assert.Less(t, score, w)
			prev = score
		}
	})

	t.Run("approaches weight asymptotically", func(t *testing.T) {
		assert.InDelta(t, w, s.ExperienceScore(100), 0.001)
	})
}

func TestRatingScore(t *testing.T) {
	s := testScorer()
	w := s.Weights.Rating
	now := s.Now()

	review := func(rating int, age time.Duration) domain.Review {
		return domain.Review{Rating: rating, CreatedAt: now.Add(-age)}
	}

	t.Run("no reviews scores neutral", func(t *testing.T) {
		assert.Equal(t, w*0.5, s.RatingScore(nil))
	})

	t.Run("single old five-star review", func(t *testing.T) {
		score := s.RatingScore([]domain.Review{review(5, 365*24*time.Hour)})
		// avg 5/5, confidence 0.7 + 0.3*0.1 = 0.73, no recency bonus
		assert.InDelta(t, w*0.73, score, 1e-9)
	})

	t.Run("confidence saturates at ten reviews", func(t *testing.T) {
		var reviews []domain.Review
		for i := 0; i < 12; i++ {
			reviews = append(reviews, review(5, 400*24*time.Hour))
		}
		assert.InDelta(t, w, s.RatingScore(reviews), 1e-9)
	})

	t.Run("recent good reviews add capped bonus", func(t *testing.T) {
		var reviews []domain.Review
		for i := 0; i < 8; i++ {
			reviews = append(reviews, review(5, 24*time.Hour))
		}
		// bonus would be 4.0 uncapped; capped at 3
		base := 5.0 / 5 * w * (0.7 + 0.3*0.8)
		assert.InDelta(t, base+matching.RecentReviewBonusCap, s.RatingScore(reviews), 1e-9)
	})

	t.Run("recent poor reviews earn no bonus", func(t *testing.T) {
		score := s.RatingScore([]domain.Review{review(2, 24*time.Hour)})
		assert.InDelta(t, 2.0/5*w*0.73, score, 1e-9)
	})
}

func TestBudgetScore(t *testing.T) {
	s := testScorer()
	w := s.Weights.Budget

	tests := []struct {
		name     string
		min, max float64
		rate     *float64
		expected float64
	}{
		{"no rate is neutral", 500, 900, nil, w * 0.5},
		{"inside range", 500, 900, floatPtr(700), w},
		{"at lower bound", 500, 900, floatPtr(500), w},
		{"at upper bound", 500, 900, floatPtr(900), w},
		{"below range", 500, 900, floatPtr(400), w * 0.9},
		{"10 percent over", 500, 900, floatPtr(990), w * 0.7},
		{"20 percent over", 500, 900, floatPtr(1080), w * 0.5},
		{"30 percent over", 500, 900, floatPtr(1170), w * 0.3},
		{"far over", 500, 900, floatPtr(2000), w * 0.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, s.BudgetScore(tt.min, tt.max, tt.rate), 1e-9)
		})
	}

	t.Run("monotone non-increasing in overage", func(t *testing.T) {
		prev := s.BudgetScore(500, 900, floatPtr(900))
		for rate := 901.0; rate < 1500; rate += 25 {
			score := s.BudgetScore(500, 900, floatPtr(rate))
			assert.LessOrEqual(t, score, prev)
			prev = score
		}
	})
}

func TestAvailabilityScore(t *testing.T) {
	s := testScorer()
	w := s.Weights.Availability

	assert.Equal(t, 0.0, s.AvailabilityScore(domain.CarerStatusPending, false))
	assert.Equal(t, w, s.AvailabilityScore(domain.CarerStatusApproved, false))
	assert.Equal(t, w*0.5, s.AvailabilityScore(domain.CarerStatusApproved, true))
}

func TestScoreBreakdown(t *testing.T) {
	s := testScorer()

	req := &domain.CareRequest{
		CareType:  domain.CareTypeLiveIn,
		BudgetMin: 800,
		BudgetMax: 1200,
		Latitude:  &londonLat,
		Longitude: &londonLon,
	}
	candidate := &domain.CarerCandidate{
		Carer: domain.Carer{
			UserID:          "carer-1",
			ApprovalStatus:  domain.CarerStatusApproved,
			DBSVerified:     true,
			Latitude:        &londonLat,
			Longitude:       &londonLon,
			YearsExperience: 10,
			Specializations: []string{matching.TagDementia, matching.TagMobilitySupport},
			Rates:           []domain.CarerRate{{CareType: domain.CareTypeLiveIn, Rate: 1000}},
		},
	}

	b := s.Score(req, []string{matching.TagDementia, matching.TagMobilitySupport}, candidate)

	assert.Equal(t, s.Weights.Location, b.Location)
	assert.Equal(t, s.Weights.Specialization+matching.HighAcuityBonus, b.Specialization)
	assert.Equal(t, s.Weights.Budget, b.Budget)
	assert.Equal(t, s.Weights.Availability, b.Availability)
	assert.Equal(t, s.Weights.Rating*0.5, b.Rating)

	t.Run("deterministic across runs", func(t *testing.T) {
		again := s.Score(req, []string{matching.TagDementia, matching.TagMobilitySupport}, candidate)
		assert.Equal(t, b, again)
		assert.Equal(t, b.Total(), again.Total())
	})

	t.Run("total is rounded to one decimal", func(t *testing.T) {
		total := b.Total()
		assert.InDelta(t, total, float64(int(total*10))/10, 1e-9)
	})
}
