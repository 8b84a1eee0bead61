package domain

// Rating bounds for a single submission.
const (
	MinRating = 1
	MaxRating = 5
)

// ValidRating reports whether a submitted value lies on the rating scale.
// Fractional values inside the bounds are accepted.
func ValidRating(value float64) bool {
	return value >= MinRating && value <= MaxRating
}

// NextRating folds one submission into a running weighted average:
// average' = (average*count + value) / (count+1).
func NextRating(average float64, count int, value float64) Rating {
	next := Rating{Count: count + 1}
	next.Average = (average*float64(count) + value) / float64(next.Count)
	return next
}
