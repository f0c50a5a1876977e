package attendance

// Band is the discrete attendance-rate category driving message tone.
type Band string

const (
	BandExcellent        Band = "excellent"
	BandGood             Band = "good"
	BandNeedsImprovement Band = "needs_improvement"
)

// Category selects the message template for a band.
type Category string

const (
	CategoryPraise        Category = "praise"
	CategoryEncouragement Category = "encouragement"
	CategoryMotivation    Category = "motivation"
)

// Classify maps a rate to its band and message category. Bands are evaluated
// high to low with half-open boundaries: [80,100] excellent, [45,80) good,
// [0,45) needs_improvement.
func Classify(rate int) (Band, Category) {
	switch {
	case rate >= 80:
		return BandExcellent, CategoryPraise
	case rate >= 45:
		return BandGood, CategoryEncouragement
	default:
		return BandNeedsImprovement, CategoryMotivation
	}
}
