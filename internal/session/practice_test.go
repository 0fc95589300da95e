package session

import (
	"testing"

	"prepdeck/internal/catalog"
	"prepdeck/internal/store"
)

func practiceQuestions() []catalog.Question {
	return []catalog.Question{
		{ID: 1, Prompt: "q1", Options: []string{"a", "b", "c"}, Answer: 0, Difficulty: catalog.DifficultyEasy},
		{ID: 2, Prompt: "q2", Options: []string{"a", "b", "c"}, Answer: 1, Difficulty: catalog.DifficultyMedium},
		{ID: 3, Prompt: "q3", Options: []string{"a", "b", "c"}, Answer: 2, Difficulty: catalog.DifficultyHard},
		{ID: 4, Prompt: "q4", Options: []string{"a", "b", "c"}, Answer: 0, Difficulty: catalog.DifficultyEasy},
	}
}

func newPractice(t *testing.T) (*Practice, *store.MemoryStore) {
	t.Helper()
	st := store.NewMemoryStore()
	return NewPractice(practiceQuestions(), st, nil), st
}

// answerCurrent confirms the current question with a correct or wrong choice.
func answerCurrent(t *testing.T, p *Practice, correct bool) {
	t.Helper()
	question, ok := p.Current()
	if !ok {
		t.Fatalf("expected a current question")
	}
	choice := question.Answer
	if !correct {
		choice = (question.Answer + 1) % len(question.Options)
	}
	p.SelectOption(choice)
	p.ConfirmAnswer()
	p.Advance()
}

// TestPracticeFreshStart verifies a fresh session starts from defaults.
func TestPracticeFreshStart(t *testing.T) {
	p, _ := newPractice(t)
	if p.Score() != 0 || p.Pos() != 0 {
		t.Fatalf("expected zero score and position, got %d/%d", p.Score(), p.Pos())
	}
	if p.Phase() != PhaseAnswering {
		t.Fatalf("expected answering phase")
	}
}

// TestPracticeScoringScenario verifies 3 correct and 1 wrong answer score 3.
func TestPracticeScoringScenario(t *testing.T) {
	p, st := newPractice(t)
	answerCurrent(t, p, true)
	answerCurrent(t, p, true)
	answerCurrent(t, p, false)
	answerCurrent(t, p, true)
	if p.Score() != 3 {
		t.Fatalf("expected score 3, got %d", p.Score())
	}
	if st.Progress().Score != 3 {
		t.Fatalf("expected persisted score 3, got %d", st.Progress().Score)
	}
}

// TestPracticeConfirmWithoutSelectionIsNoop verifies the guarded precondition.
func TestPracticeConfirmWithoutSelectionIsNoop(t *testing.T) {
	p, _ := newPractice(t)
	p.ConfirmAnswer()
	if p.Phase() != PhaseAnswering || p.Score() != 0 {
		t.Fatalf("expected confirm to be a no-op")
	}
}

// TestPracticeConfirmScoresExactlyOnce verifies repeated confirms do not double count.
func TestPracticeConfirmScoresExactlyOnce(t *testing.T) {
	p, _ := newPractice(t)
	question, _ := p.Current()
	p.SelectOption(question.Answer)
	p.ConfirmAnswer()
	p.ConfirmAnswer()
	p.ConfirmAnswer()
	if p.Score() != 1 {
		t.Fatalf("expected score 1, got %d", p.Score())
	}
}

// TestPracticeSelectAfterRevealIsNoop verifies selection freezes on reveal.
func TestPracticeSelectAfterRevealIsNoop(t *testing.T) {
	p, _ := newPractice(t)
	question, _ := p.Current()
	wrong := (question.Answer + 1) % len(question.Options)
	p.SelectOption(wrong)
	p.ConfirmAnswer()
	p.SelectOption(question.Answer)
	view := p.View()
	if view.Options[question.Answer].Class != OptionCorrect {
		t.Fatalf("expected correct option class after reveal")
	}
	if view.Options[wrong].Class != OptionIncorrect {
		t.Fatalf("expected incorrect class on the frozen selection")
	}
}

// TestPracticeSelectOutOfBoundsIsNoop verifies index validation.
func TestPracticeSelectOutOfBoundsIsNoop(t *testing.T) {
	p, _ := newPractice(t)
	p.SelectOption(-1)
	p.SelectOption(99)
	if p.Phase() != PhaseAnswering {
		t.Fatalf("expected no selection recorded")
	}
}

// TestPracticeAdvanceBeforeRevealIsNoop verifies advance requires reveal.
func TestPracticeAdvanceBeforeRevealIsNoop(t *testing.T) {
	p, _ := newPractice(t)
	p.Advance()
	if p.Pos() != 0 {
		t.Fatalf("expected position 0, got %d", p.Pos())
	}
	p.SelectOption(0)
	p.Advance()
	if p.Pos() != 0 {
		t.Fatalf("expected position 0 while selected, got %d", p.Pos())
	}
}

// TestPracticeWrapsAround verifies the session loops past the last question.
func TestPracticeWrapsAround(t *testing.T) {
	p, _ := newPractice(t)
	for i := 0; i < p.Len(); i++ {
		answerCurrent(t, p, true)
	}
	if p.Pos() != 0 {
		t.Fatalf("expected wrap to position 0, got %d", p.Pos())
	}
	if p.Phase() != PhaseAnswering {
		t.Fatalf("expected answering phase after wrap")
	}
	if p.Score() != 4 {
		t.Fatalf("expected score to survive the wrap, got %d", p.Score())
	}
}

// TestPracticeSetFilterResetsPosition verifies a filter change discards progress
// through the working set and any in-progress answer.
func TestPracticeSetFilterResetsPosition(t *testing.T) {
	p, _ := newPractice(t)
	answerCurrent(t, p, true)
	p.SelectOption(1)
	p.SetFilter(catalog.Filter{Difficulty: catalog.DifficultyEasy})
	if p.Pos() != 0 || p.Phase() != PhaseAnswering {
		t.Fatalf("expected reset position and phase")
	}
	if p.Len() != 2 {
		t.Fatalf("expected 2 easy questions, got %d", p.Len())
	}
	if p.Score() != 1 {
		t.Fatalf("expected score untouched by filter change, got %d", p.Score())
	}
}

// TestPracticeEmptyWorkingSet verifies the distinct terminal display state.
func TestPracticeEmptyWorkingSet(t *testing.T) {
	p, _ := newPractice(t)
	p.SetFilter(catalog.Filter{BookmarkOnly: true})
	if !p.Empty() {
		t.Fatalf("expected empty working set")
	}
	if _, ok := p.Current(); ok {
		t.Fatalf("expected no current question")
	}
	view := p.View()
	if !view.Empty {
		t.Fatalf("expected empty projection")
	}
	p.SelectOption(0)
	p.ConfirmAnswer()
	p.Advance()
	if p.Score() != 0 {
		t.Fatalf("expected operations on empty set to be no-ops")
	}
}

// TestPracticeBookmarkRoundTrip verifies toggling twice restores the original state.
func TestPracticeBookmarkRoundTrip(t *testing.T) {
	p, st := newPractice(t)
	p.ToggleBookmark(2)
	if !st.Bookmarks()[2] {
		t.Fatalf("expected bookmark set")
	}
	p.ToggleBookmark(2)
	if len(st.Bookmarks()) != 0 {
		t.Fatalf("expected bookmark cleared")
	}
}

// TestPracticeFeedbackTriState verifies setting the same value clears it.
func TestPracticeFeedbackTriState(t *testing.T) {
	p, st := newPractice(t)
	p.SetFeedback(1, store.FeedbackLiked)
	if st.Feedback()[1] != store.FeedbackLiked {
		t.Fatalf("expected liked feedback")
	}
	p.SetFeedback(1, store.FeedbackDisliked)
	if st.Feedback()[1] != store.FeedbackDisliked {
		t.Fatalf("expected disliked feedback")
	}
	p.SetFeedback(1, store.FeedbackDisliked)
	if st.Feedback()[1] != store.FeedbackNone {
		t.Fatalf("expected feedback cleared, got %q", st.Feedback()[1])
	}
}

// TestPracticeResetProgress verifies reset clears score and position but not
// bookmarks or feedback.
func TestPracticeResetProgress(t *testing.T) {
	p, st := newPractice(t)
	answerCurrent(t, p, true)
	p.ToggleBookmark(1)
	p.SetFeedback(1, store.FeedbackLiked)
	p.ResetProgress()
	if p.Score() != 0 || p.Pos() != 0 {
		t.Fatalf("expected zeroed score and position")
	}
	if st.Progress().Score != 0 {
		t.Fatalf("expected persisted score erased")
	}
	if !st.Bookmarks()[1] || st.Feedback()[1] != store.FeedbackLiked {
		t.Fatalf("expected bookmarks and feedback untouched by reset")
	}
}

// TestPracticeRestoresPersistedScore verifies load-once initialization.
func TestPracticeRestoresPersistedScore(t *testing.T) {
	st := store.NewMemoryStore()
	st.SaveProgress(store.Progress{Score: 12})
	p := NewPractice(practiceQuestions(), st, nil)
	if p.Score() != 12 {
		t.Fatalf("expected restored score 12, got %d", p.Score())
	}
}
