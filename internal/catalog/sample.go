package catalog

import "math/rand"

// ExamSample draws up to size questions without replacement from the full
// question list, in shuffled order. Practice filters are deliberately
// ignored: exams always draw from the whole catalog.
func ExamSample(questions []Question, size int, rng *rand.Rand) []Question {
	if size <= 0 {
		return nil
	}
	sampled := make([]Question, len(questions))
	copy(sampled, questions)
	if rng != nil {
		rng.Shuffle(len(sampled), func(i, j int) {
			sampled[i], sampled[j] = sampled[j], sampled[i]
		})
	}
	if size < len(sampled) {
		sampled = sampled[:size]
	}
	return sampled
}
