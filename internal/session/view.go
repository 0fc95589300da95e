package session

import (
	"fmt"

	"prepdeck/internal/store"
)

// OptionClass is the display class for one answer option.
type OptionClass int

// Option display classes. Correct and Incorrect appear only once an
// answer is revealed.
const (
	OptionNeutral OptionClass = iota
	OptionSelected
	OptionCorrect
	OptionIncorrect
)

// OptionView pairs an option's text with its display class.
type OptionView struct {
	Text  string
	Class OptionClass
}

// PracticeView is a pure projection of practice state for rendering. The
// presentation layer renders from this alone, never from session internals.
type PracticeView struct {
	Empty       bool
	Prompt      string
	Subject     string
	Difficulty  string
	Options     []OptionView
	Revealed    bool
	Correct     bool
	Explanation string
	Score       int
	Position    int
	Total       int
	Bookmarked  bool
	Feedback    store.Feedback
	CanConfirm  bool
}

// View projects the current practice state.
func (p *Practice) View() PracticeView {
	question, ok := p.Current()
	if !ok {
		return PracticeView{Empty: true, Score: p.score}
	}
	view := PracticeView{
		Prompt:     question.Prompt,
		Subject:    string(question.Subject),
		Difficulty: string(question.Difficulty),
		Options:    make([]OptionView, len(question.Options)),
		Revealed:   p.revealed,
		Score:      p.score,
		Position:   p.pos + 1,
		Total:      len(p.working),
		Bookmarked: p.Bookmarked(question.ID),
		Feedback:   p.FeedbackFor(question.ID),
		CanConfirm: !p.revealed && p.selected != noSelection,
	}
	if p.revealed {
		view.Correct = p.selected == question.Answer
		view.Explanation = question.Explanation
	}
	for i, option := range question.Options {
		view.Options[i] = OptionView{Text: option, Class: optionClass(i, p.selected, question.Answer, p.revealed)}
	}
	return view
}

// optionClass mirrors the option coloring rules: before reveal only the
// selection is highlighted; after reveal the correct option wins, a wrong
// selection shows as incorrect, and everything else is neutral.
func optionClass(index, selected, correct int, revealed bool) OptionClass {
	if !revealed {
		if index == selected {
			return OptionSelected
		}
		return OptionNeutral
	}
	if index == correct {
		return OptionCorrect
	}
	if index == selected {
		return OptionIncorrect
	}
	return OptionNeutral
}

// ReviewRow summarizes one exam question in the results review.
type ReviewRow struct {
	Index       int
	Prompt      string
	Answered    bool
	Right       bool
	ChosenText  string
	CorrectText string
}

// ExamView is a pure projection of exam state for rendering.
type ExamView struct {
	Finished bool
	Prompt   string
	Subject  string
	Options  []OptionView
	Position int
	Total    int
	Answered int
	Clock    string
	Score    int
	Review   []ReviewRow
}

// View projects the current exam state. While active it shows the current
// question with the recorded answer highlighted; once finished it carries
// the score and the full review.
func (e *Exam) View() ExamView {
	view := ExamView{
		Finished: e.Finished(),
		Position: e.pos + 1,
		Total:    len(e.questions),
		Answered: len(e.answers),
		Clock:    FormatClock(e.remaining),
	}
	if view.Finished {
		view.Score = e.Score()
		view.Review = e.reviewRows()
		return view
	}
	question, ok := e.Question(e.pos)
	if !ok {
		return view
	}
	view.Prompt = question.Prompt
	view.Subject = string(question.Subject)
	view.Options = make([]OptionView, len(question.Options))
	chosen, answered := e.answers[e.pos]
	for i, option := range question.Options {
		class := OptionNeutral
		if answered && i == chosen {
			class = OptionSelected
		}
		view.Options[i] = OptionView{Text: option, Class: class}
	}
	return view
}

func (e *Exam) reviewRows() []ReviewRow {
	rows := make([]ReviewRow, len(e.questions))
	for pos, question := range e.questions {
		row := ReviewRow{
			Index:       pos + 1,
			Prompt:      question.Prompt,
			CorrectText: question.Options[question.Answer],
		}
		if chosen, ok := e.answers[pos]; ok {
			row.Answered = true
			row.Right = chosen == question.Answer
			row.ChosenText = question.Options[chosen]
		}
		rows[pos] = row
	}
	return rows
}

// FormatClock renders remaining seconds as MM:SS.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
