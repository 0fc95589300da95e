package ui

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"prepdeck/internal/catalog"
	"prepdeck/internal/session"
	"prepdeck/internal/store"
)

// examTickMsg carries one second of wall-clock time for an exam session.
// The id ties the tick to the exam it was scheduled for so a stale tick
// from an exited or restarted exam is dropped instead of decrementing the
// wrong countdown.
type examTickMsg struct {
	id string
}

// scheduleExamTick emits the next countdown tick for an exam session.
func scheduleExamTick(id string) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return examTickMsg{id: id}
	})
}

// mcqModel hosts the practice machine and, when started, an exam session.
// The two modes are mutually exclusive over the same catalog.
type mcqModel struct {
	questions    []catalog.Question
	practice     *session.Practice
	exam         *session.Exam
	review       table.Model
	examLength   int
	examDuration int
	rng          *rand.Rand
	log          *zap.Logger
	status       string
}

func newMCQModel(questions []catalog.Question, st store.Store, examLength, examDuration int, rng *rand.Rand, log *zap.Logger) mcqModel {
	return mcqModel{
		questions:    questions,
		practice:     session.NewPractice(questions, st, rng),
		examLength:   examLength,
		examDuration: examDuration,
		rng:          rng,
		log:          log,
	}
}

func (m mcqModel) examActive() bool {
	return m.exam != nil && !m.exam.Finished()
}

// handleTick forwards a countdown tick to the matching exam session and
// schedules the next one while the exam stays active.
func (m mcqModel) handleTick(msg examTickMsg) (mcqModel, tea.Cmd) {
	if m.exam == nil || msg.id != m.exam.ID() {
		return m, nil
	}
	if m.exam.Finished() {
		return m, nil
	}
	m.exam.Tick()
	if m.exam.Finished() {
		m.review = newReviewTable(m.exam.View().Review)
		return m, nil
	}
	return m, scheduleExamTick(m.exam.ID())
}

func (m mcqModel) update(key tea.KeyMsg) (mcqModel, tea.Cmd) {
	m.status = ""
	if m.exam != nil {
		return m.updateExam(key)
	}
	return m.updatePractice(key)
}

func (m mcqModel) updatePractice(key tea.KeyMsg) (mcqModel, tea.Cmd) {
	switch key.String() {
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		m.practice.SelectOption(int(key.String()[0]-'0') - 1)
	case "enter":
		if m.practice.Phase() == session.PhaseRevealed {
			m.practice.Advance()
		} else {
			m.practice.ConfirmAnswer()
		}
	case "f":
		m.practice.SetFilter(cycleDifficulty(m.practice.Filter()))
	case "o":
		filter := m.practice.Filter()
		filter.BookmarkOnly = !filter.BookmarkOnly
		m.practice.SetFilter(filter)
	case "b":
		if question, ok := m.practice.Current(); ok {
			m.practice.ToggleBookmark(question.ID)
		}
	case "l":
		if question, ok := m.practice.Current(); ok {
			m.practice.SetFeedback(question.ID, store.FeedbackLiked)
		}
	case "d":
		if question, ok := m.practice.Current(); ok {
			m.practice.SetFeedback(question.ID, store.FeedbackDisliked)
		}
	case "r":
		m.practice.ResetProgress()
	case "y":
		m.status = m.copyExplanation()
	case "e":
		m.exam = session.StartExam(m.questions, m.examLength, m.examDuration, m.rng)
		m.log.Info("exam started", zap.String("session", m.exam.ID()), zap.Int("questions", m.exam.Len()))
		return m, scheduleExamTick(m.exam.ID())
	}
	return m, nil
}

func (m mcqModel) updateExam(key tea.KeyMsg) (mcqModel, tea.Cmd) {
	if m.exam.Finished() {
		switch key.String() {
		case "esc":
			m.exam = nil
			return m, nil
		case "e":
			m.exam = session.StartExam(m.questions, m.examLength, m.examDuration, m.rng)
			return m, scheduleExamTick(m.exam.ID())
		}
		var cmd tea.Cmd
		m.review, cmd = m.review.Update(key)
		return m, cmd
	}

	switch key.String() {
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		m.exam.Answer(m.exam.Pos(), int(key.String()[0]-'0')-1)
	case "left":
		m.exam.Navigate(m.exam.Pos() - 1)
	case "right":
		m.exam.Navigate(m.exam.Pos() + 1)
	case "s":
		m.exam.Submit()
		m.review = newReviewTable(m.exam.View().Review)
	case "esc":
		// Exit discards the session; a pending tick for this id is
		// dropped by handleTick.
		m.log.Info("exam exited", zap.String("session", m.exam.ID()))
		m.exam = nil
	}
	return m, nil
}

// copyExplanation puts the revealed explanation on the system clipboard
// and returns the transient status to display.
func (m mcqModel) copyExplanation() string {
	view := m.practice.View()
	if !view.Revealed || view.Explanation == "" {
		return ""
	}
	if err := writeClipboard(view.Explanation); err != nil {
		m.log.Warn("clipboard copy failed", zap.Error(err))
		return "Copy failed"
	}
	return "Copied"
}

// cycleDifficulty advances the difficulty filter All -> Easy -> Medium -> Hard -> All.
func cycleDifficulty(filter catalog.Filter) catalog.Filter {
	switch filter.Difficulty {
	case "":
		filter.Difficulty = catalog.DifficultyEasy
	case catalog.DifficultyEasy:
		filter.Difficulty = catalog.DifficultyMedium
	case catalog.DifficultyMedium:
		filter.Difficulty = catalog.DifficultyHard
	default:
		filter.Difficulty = ""
	}
	return filter
}
