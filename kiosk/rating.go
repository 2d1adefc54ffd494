package kiosk

// starRatings maps detected emotions to a 0-5 star rating. Unrecognized
// labels map to 0.
var starRatings = map[string]int{
	"angry":    1,
	"sad":      2,
	"neutral":  3,
	"surprise": 4,
	"happy":    5,
}

// StarRating returns the star rating for a detected emotion label.
func StarRating(emotion string) int {
	return starRatings[emotion]
}

// IsNegative reports whether the emotion triggers the reason-capture
// sub-flow.
func IsNegative(emotion string) bool {
	return emotion == "angry" || emotion == "sad"
}
