package session

import "fmt"

// Slider domains for the personality snapshot. Pace and ending run 0-100,
// novelty runs 0-100 with a single midpoint split.

// PaceLabel buckets the pacing slider.
func PaceLabel(pace int) string {
	switch {
	case pace < 33:
		return "Slow Burn"
	case pace < 67:
		return "Balanced"
	default:
		return "Fast Paced"
	}
}

// EndingLabel buckets the ending-tone slider.
func EndingLabel(ending int) string {
	switch {
	case ending < 33:
		return "Happy"
	case ending < 67:
		return "Neutral"
	default:
		return "Somber"
	}
}

// NoveltyLabel buckets the novelty slider.
func NoveltyLabel(novelty int) string {
	if novelty < 50 {
		return "Classic"
	}
	return "Experimental"
}

// DerivePersonality regenerates the whole summary string from the three
// slider values. It is recomputed, never merged, on every slider change.
func DerivePersonality(pace, ending, novelty int) string {
	return fmt.Sprintf("%s pacing, %s endings, %s picks",
		PaceLabel(pace), EndingLabel(ending), NoveltyLabel(novelty))
}
