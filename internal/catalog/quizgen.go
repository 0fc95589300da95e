package catalog

import "math/rand"

// maxDistractors limits how many wrong answers a generated question carries.
const maxDistractors = 3

// GeneratedQuiz builds multiple-choice questions from flashcards by mixing
// each card's back with distractor answers drawn from the other cards.
// Cards without at least one usable distractor are skipped.
func GeneratedQuiz(cards []Flashcard, rng *rand.Rand) []Question {
	shuffled := make([]Flashcard, len(cards))
	copy(shuffled, cards)
	if rng != nil {
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
	}

	questions := make([]Question, 0, len(shuffled))
	for _, card := range shuffled {
		distractors := make([]string, 0, len(cards))
		for _, other := range cards {
			if other.Back != card.Back {
				distractors = append(distractors, other.Back)
			}
		}
		if len(distractors) == 0 {
			continue
		}
		if rng != nil {
			rng.Shuffle(len(distractors), func(i, j int) {
				distractors[i], distractors[j] = distractors[j], distractors[i]
			})
		}
		if len(distractors) > maxDistractors {
			distractors = distractors[:maxDistractors]
		}

		options := append([]string{card.Back}, distractors...)
		if rng != nil {
			rng.Shuffle(len(options), func(i, j int) {
				options[i], options[j] = options[j], options[i]
			})
		}
		answer := 0
		for i, option := range options {
			if option == card.Back {
				answer = i
				break
			}
		}

		questions = append(questions, Question{
			ID:          card.ID,
			Subject:     card.Subject,
			Prompt:      card.Front,
			Options:     options,
			Answer:      answer,
			Explanation: card.Back,
			Difficulty:  DifficultyMedium,
		})
	}
	return questions
}
