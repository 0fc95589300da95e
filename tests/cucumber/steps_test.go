package cucumber

import (
	"context"
	"fmt"
	"math/rand"

	"prepdeck/internal/catalog"
	"prepdeck/internal/session"
	"prepdeck/internal/store"

	"github.com/cucumber/godog"
)

// featureState holds the scenario fixtures and the sessions under test.
type featureState struct {
	questions []catalog.Question
	store     *store.MemoryStore
	practice  *session.Practice
	exam      *session.Exam
}

// InitializeScenario wires cucumber steps to the feature state.
func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})

	ctx.Step(`^a catalog of (\d+) questions, (\d+) of them easy$`, state.aCatalogOfQuestions)
	ctx.Step(`^an empty state store$`, state.anEmptyStateStore)

	ctx.Step(`^I start a practice session$`, state.iStartAPracticeSession)
	ctx.Step(`^I answer the current question correctly$`, state.iAnswerCorrectly)
	ctx.Step(`^I answer the current question incorrectly$`, state.iAnswerIncorrectly)
	ctx.Step(`^I answer the current question correctly (\d+) times$`, state.iAnswerCorrectlyTimes)
	ctx.Step(`^I confirm without selecting an option$`, state.iConfirmWithoutSelecting)
	ctx.Step(`^I filter practice to easy questions$`, state.iFilterToEasy)
	ctx.Step(`^I filter practice to bookmarked questions$`, state.iFilterToBookmarked)
	ctx.Step(`^I bookmark question (\d+)$`, state.iBookmarkQuestion)
	ctx.Step(`^I like question (\d+)$`, state.iLikeQuestion)
	ctx.Step(`^I reset practice progress$`, state.iResetProgress)

	ctx.Step(`^the practice score is (\d+)$`, state.thePracticeScoreIs)
	ctx.Step(`^the persisted score is (\d+)$`, state.thePersistedScoreIs)
	ctx.Step(`^the practice position is (\d+) of (\d+)$`, state.thePracticePositionIs)
	ctx.Step(`^the current question is not revealed$`, state.theCurrentQuestionIsNotRevealed)
	ctx.Step(`^the working set is empty$`, state.theWorkingSetIsEmpty)
	ctx.Step(`^question (\d+) is bookmarked$`, state.questionIsBookmarked)
	ctx.Step(`^question (\d+) is not bookmarked$`, state.questionIsNotBookmarked)
	ctx.Step(`^question (\d+) is liked$`, state.questionIsLiked)

	ctx.Step(`^I start an exam of (\d+) questions lasting (\d+) seconds$`, state.iStartAnExam)
	ctx.Step(`^I answer exam question (\d+) correctly$`, state.iAnswerExamQuestionCorrectly)
	ctx.Step(`^I answer exam question (\d+) incorrectly$`, state.iAnswerExamQuestionIncorrectly)
	ctx.Step(`^I submit the exam$`, state.iSubmitTheExam)
	ctx.Step(`^the exam clock ticks (\d+) times$`, state.theExamClockTicks)
	ctx.Step(`^the exam has (\d+) distinct questions$`, state.theExamHasDistinctQuestions)
	ctx.Step(`^the exam is finished$`, state.theExamIsFinished)
	ctx.Step(`^the exam score is (\d+)$`, state.theExamScoreIs)
	ctx.Step(`^the exam clock shows "([^"]+)"$`, state.theExamClockShows)
}

func (s *featureState) reset() {
	s.questions = nil
	s.store = store.NewMemoryStore()
	s.practice = nil
	s.exam = nil
}

func (s *featureState) aCatalogOfQuestions(total, easy int) error {
	if easy > total {
		return fmt.Errorf("cannot make %d of %d questions easy", easy, total)
	}
	s.questions = make([]catalog.Question, 0, total)
	for i := 0; i < total; i++ {
		difficulty := catalog.DifficultyMedium
		if i < easy {
			difficulty = catalog.DifficultyEasy
		}
		s.questions = append(s.questions, catalog.Question{
			ID:         i + 1,
			Subject:    catalog.SubjectPolity,
			Prompt:     fmt.Sprintf("Question %d", i+1),
			Options:    []string{"right", "wrong", "also wrong"},
			Answer:     0,
			Difficulty: difficulty,
		})
	}
	return nil
}

func (s *featureState) anEmptyStateStore() error {
	s.store = store.NewMemoryStore()
	return nil
}

func (s *featureState) iStartAPracticeSession() error {
	s.practice = session.NewPractice(s.questions, s.store, nil)
	return nil
}

// answerCurrent selects an option, confirms, and advances past the reveal.
func (s *featureState) answerCurrent(correct bool) error {
	q, ok := s.practice.Current()
	if !ok {
		return fmt.Errorf("no current question")
	}
	option := q.Answer
	if !correct {
		option = (q.Answer + 1) % len(q.Options)
	}
	s.practice.SelectOption(option)
	s.practice.ConfirmAnswer()
	s.practice.Advance()
	return nil
}

func (s *featureState) iAnswerCorrectly() error {
	return s.answerCurrent(true)
}

func (s *featureState) iAnswerIncorrectly() error {
	return s.answerCurrent(false)
}

func (s *featureState) iAnswerCorrectlyTimes(count int) error {
	for i := 0; i < count; i++ {
		if err := s.answerCurrent(true); err != nil {
			return err
		}
	}
	return nil
}

func (s *featureState) iConfirmWithoutSelecting() error {
	s.practice.ConfirmAnswer()
	return nil
}

func (s *featureState) iFilterToEasy() error {
	s.practice.SetFilter(catalog.Filter{Difficulty: catalog.DifficultyEasy})
	return nil
}

func (s *featureState) iFilterToBookmarked() error {
	s.practice.SetFilter(catalog.Filter{BookmarkOnly: true})
	return nil
}

func (s *featureState) iBookmarkQuestion(id int) error {
	s.practice.ToggleBookmark(id)
	return nil
}

func (s *featureState) iLikeQuestion(id int) error {
	s.practice.SetFeedback(id, store.FeedbackLiked)
	return nil
}

func (s *featureState) iResetProgress() error {
	s.practice.ResetProgress()
	return nil
}

func (s *featureState) thePracticeScoreIs(want int) error {
	if got := s.practice.Score(); got != want {
		return fmt.Errorf("expected score %d, got %d", want, got)
	}
	return nil
}

func (s *featureState) thePersistedScoreIs(want int) error {
	if got := s.store.Progress().Score; got != want {
		return fmt.Errorf("expected persisted score %d, got %d", want, got)
	}
	return nil
}

func (s *featureState) thePracticePositionIs(pos, total int) error {
	if got := s.practice.Pos() + 1; got != pos {
		return fmt.Errorf("expected position %d, got %d", pos, got)
	}
	if got := s.practice.Len(); got != total {
		return fmt.Errorf("expected %d questions in the working set, got %d", total, got)
	}
	return nil
}

func (s *featureState) theCurrentQuestionIsNotRevealed() error {
	if s.practice.Phase() == session.PhaseRevealed {
		return fmt.Errorf("expected the current question to stay hidden")
	}
	return nil
}

func (s *featureState) theWorkingSetIsEmpty() error {
	if !s.practice.Empty() {
		return fmt.Errorf("expected an empty working set, got %d questions", s.practice.Len())
	}
	return nil
}

func (s *featureState) questionIsBookmarked(id int) error {
	if !s.practice.Bookmarked(id) {
		return fmt.Errorf("expected question %d to be bookmarked", id)
	}
	return nil
}

func (s *featureState) questionIsNotBookmarked(id int) error {
	if s.practice.Bookmarked(id) {
		return fmt.Errorf("expected question %d to not be bookmarked", id)
	}
	return nil
}

func (s *featureState) questionIsLiked(id int) error {
	if got := s.practice.FeedbackFor(id); got != store.FeedbackLiked {
		return fmt.Errorf("expected question %d to be liked, got %q", id, got)
	}
	return nil
}

func (s *featureState) iStartAnExam(length, duration int) error {
	s.exam = session.StartExam(s.questions, length, duration, rand.New(rand.NewSource(1)))
	return nil
}

// answerExam records an answer for a 1-based exam position.
func (s *featureState) answerExam(pos int, correct bool) error {
	q, ok := s.exam.Question(pos - 1)
	if !ok {
		return fmt.Errorf("exam has no question at position %d", pos)
	}
	option := q.Answer
	if !correct {
		option = (q.Answer + 1) % len(q.Options)
	}
	s.exam.Answer(pos-1, option)
	return nil
}

func (s *featureState) iAnswerExamQuestionCorrectly(pos int) error {
	return s.answerExam(pos, true)
}

func (s *featureState) iAnswerExamQuestionIncorrectly(pos int) error {
	return s.answerExam(pos, false)
}

func (s *featureState) iSubmitTheExam() error {
	s.exam.Submit()
	return nil
}

func (s *featureState) theExamClockTicks(count int) error {
	for i := 0; i < count; i++ {
		s.exam.Tick()
	}
	return nil
}

func (s *featureState) theExamHasDistinctQuestions(want int) error {
	if got := s.exam.Len(); got != want {
		return fmt.Errorf("expected %d exam questions, got %d", want, got)
	}
	seen := map[int]bool{}
	for i := 0; i < s.exam.Len(); i++ {
		q, _ := s.exam.Question(i)
		if seen[q.ID] {
			return fmt.Errorf("question %d sampled more than once", q.ID)
		}
		seen[q.ID] = true
	}
	return nil
}

func (s *featureState) theExamIsFinished() error {
	if !s.exam.Finished() {
		return fmt.Errorf("expected the exam to be finished")
	}
	return nil
}

func (s *featureState) theExamScoreIs(want int) error {
	if got := s.exam.Score(); got != want {
		return fmt.Errorf("expected exam score %d, got %d", want, got)
	}
	return nil
}

func (s *featureState) theExamClockShows(want string) error {
	if got := session.FormatClock(s.exam.Remaining()); got != want {
		return fmt.Errorf("expected clock %s, got %s", want, got)
	}
	return nil
}
