package session

import (
	"math/rand"

	"github.com/google/uuid"

	"prepdeck/internal/catalog"
)

// ExamState is the exam lifecycle. The transition to Finished is one-way;
// a new exam requires StartExam.
type ExamState int

// Exam states.
const (
	ExamActive ExamState = iota
	ExamFinished
)

// Exam is a time-boxed session over a fixed question sample. It is
// ephemeral: nothing about it is ever persisted. The countdown advances
// only through Tick, which the UI calls once per wall-clock second.
type Exam struct {
	id        string
	questions []catalog.Question
	answers   map[int]int
	remaining int
	state     ExamState
	pos       int
}

// StartExam samples length questions without replacement from the full
// catalog, ignoring practice filters, and starts the countdown at
// duration seconds.
func StartExam(questions []catalog.Question, length, duration int, rng *rand.Rand) *Exam {
	return &Exam{
		id:        uuid.NewString(),
		questions: catalog.ExamSample(questions, length, rng),
		answers:   map[int]int{},
		remaining: duration,
	}
}

// ID returns the session id, used to match timer ticks against the exam
// they were scheduled for.
func (e *Exam) ID() string {
	return e.id
}

// Len returns the number of sampled questions.
func (e *Exam) Len() int {
	return len(e.questions)
}

// Pos returns the current position.
func (e *Exam) Pos() int {
	return e.pos
}

// Remaining returns the seconds left on the countdown.
func (e *Exam) Remaining() int {
	return e.remaining
}

// Finished reports whether the exam is over.
func (e *Exam) Finished() bool {
	return e.state == ExamFinished
}

// Question returns the question at a position, if in bounds.
func (e *Exam) Question(pos int) (catalog.Question, bool) {
	if pos < 0 || pos >= len(e.questions) {
		return catalog.Question{}, false
	}
	return e.questions[pos], true
}

// Answered returns the recorded answer at a position, if any.
func (e *Exam) Answered(pos int) (int, bool) {
	chosen, ok := e.answers[pos]
	return chosen, ok
}

// AnsweredCount returns how many positions have a recorded answer.
func (e *Exam) AnsweredCount() int {
	return len(e.answers)
}

// Answer records a choice for a position, overwriting any prior answer.
// Correctness is withheld until the exam finishes. No-op once finished or
// out of bounds.
func (e *Exam) Answer(pos, option int) {
	if e.state != ExamActive {
		return
	}
	question, ok := e.Question(pos)
	if !ok {
		return
	}
	if option < 0 || option >= len(question.Options) {
		return
	}
	e.answers[pos] = option
}

// Navigate jumps to any in-bounds position; answering is not required
// first. No-op once finished.
func (e *Exam) Navigate(pos int) {
	if e.state != ExamActive {
		return
	}
	if pos < 0 || pos >= len(e.questions) {
		return
	}
	e.pos = pos
}

// Tick advances the countdown by one second. Reaching zero is a hard
// deadline that forces the exam to finish.
func (e *Exam) Tick() {
	if e.state != ExamActive {
		return
	}
	e.remaining--
	if e.remaining <= 0 {
		e.remaining = 0
		e.state = ExamFinished
	}
}

// Submit ends the exam, freezing answers and the clock.
func (e *Exam) Submit() {
	e.state = ExamFinished
}

// Score counts positions whose recorded answer matches the correct index.
// Unanswered positions count as incorrect.
func (e *Exam) Score() int {
	score := 0
	for pos, question := range e.questions {
		if chosen, ok := e.answers[pos]; ok && chosen == question.Answer {
			score++
		}
	}
	return score
}
