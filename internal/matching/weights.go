package matching

// Weights holds the relative weight of each scoring factor. The defaults sum
// to 100 so a match score reads as a percentage.
type Weights struct {
	Location       float64
	Specialization float64
	Experience     float64
	Rating         float64
	Budget         float64
	Availability   float64
}

// DefaultWeights is the canonical production weighting. Budget is a soft
// scoring factor here, not a retrieval filter.
func DefaultWeights() Weights {
	return Weights{
		Location:       30,
		Specialization: 25,
		Experience:     15,
		Rating:         15,
		Budget:         10,
		Availability:   5,
	}
}

// HighAcuityBonus is added on top of the specialization base score when the
// carer covers a high-acuity tag (dementia, palliative). Deliberately not
// capped by the specialization weight.
const HighAcuityBonus = 5.0

// Recent-review bonus parameters: each review rated >= 4 within the window
// adds RecentReviewBonus, up to RecentReviewBonusCap in total.
const (
	RecentReviewWindowDays = 183
	RecentReviewBonus      = 0.5
	RecentReviewBonusCap   = 3.0
	RecentReviewMinRating  = 4
)

// Budget overage breakpoints, as fractions of the budget weight.
const (
	budgetBelowMinFactor = 0.9
	budgetOver10Factor   = 0.7
	budgetOver20Factor   = 0.5
	budgetOver30Factor   = 0.3
	budgetFarOverFactor  = 0.1
)
