package domain

import "math"

// Progress returns the completed share of items as a whole percentage,
// rounded half away from zero. An empty checklist is 0%.
func Progress(items []Item) int {
	done, pending := CountItems(items)
	return Percent(done, done+pending)
}

// Percent converts done/total into a rounded percentage in [0, 100].
func Percent(done, total int) int {
	if total <= 0 || done <= 0 {
		return 0
	}
	if done >= total {
		return 100
	}
	return int(math.Round(float64(done) / float64(total) * 100))
}

// ProgressMap holds the derived completion percentage per checklist ID.
// A checklist missing from the map has not been measured yet and reads as 0.
type ProgressMap map[string]int

// Of returns the percentage for a checklist, or 0 when unknown.
func (m ProgressMap) Of(checklistID string) int {
	return m[checklistID]
}
