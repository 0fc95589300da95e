package catalog

import "math/rand"

// Filter narrows the practice working set.
type Filter struct {
	Difficulty   Difficulty // empty selects all difficulties
	BookmarkOnly bool
}

// Matches reports whether a question satisfies the filter.
func (f Filter) Matches(question Question, bookmarks map[int]bool) bool {
	if f.Difficulty != "" && question.Difficulty != f.Difficulty {
		return false
	}
	if f.BookmarkOnly && !bookmarks[question.ID] {
		return false
	}
	return true
}

// WorkingSet derives the filtered, shuffled question list for practice mode.
// The input slice is never mutated. A nil rng keeps catalog order.
func WorkingSet(questions []Question, f Filter, bookmarks map[int]bool, rng *rand.Rand) []Question {
	working := make([]Question, 0, len(questions))
	for _, question := range questions {
		if f.Matches(question, bookmarks) {
			working = append(working, question)
		}
	}
	if rng != nil {
		rng.Shuffle(len(working), func(i, j int) {
			working[i], working[j] = working[j], working[i]
		})
	}
	return working
}
