// Package session implements the quiz session state machines: an endless
// practice loop with persisted progress, and a time-boxed exam. Both are
// pure state holders driven by discrete events; the exam clock advances
// only through Tick calls from an external scheduler.
package session

import (
	"math/rand"

	"prepdeck/internal/catalog"
	"prepdeck/internal/store"
)

// Phase is the practice answer lifecycle for the current question.
type Phase int

// Practice phases. Answering and Selected both accept option changes;
// Revealed freezes the question until the session advances.
const (
	PhaseAnswering Phase = iota
	PhaseSelected
	PhaseRevealed
)

const noSelection = -1

// Practice is the untimed practice session over a filtered working set.
// Score, bookmarks, and feedback flags live in the injected store and
// survive restarts; position and the in-progress answer do not.
type Practice struct {
	store     store.Store
	questions []catalog.Question
	filter    catalog.Filter
	working   []catalog.Question
	rng       *rand.Rand

	pos      int
	selected int
	revealed bool
	score    int
}

// NewPractice starts a practice session over the catalog questions,
// restoring the persisted score. The rng drives working-set shuffles and
// may be nil for deterministic order.
func NewPractice(questions []catalog.Question, st store.Store, rng *rand.Rand) *Practice {
	p := &Practice{
		store:     st,
		questions: questions,
		rng:       rng,
		selected:  noSelection,
		score:     st.Progress().Score,
	}
	p.rebuild()
	return p
}

// rebuild recomputes the working set. Shuffling happens here and only
// here, so positions stay stable between filter changes.
func (p *Practice) rebuild() {
	p.working = catalog.WorkingSet(p.questions, p.filter, p.store.Bookmarks(), p.rng)
	p.pos = 0
	p.selected = noSelection
	p.revealed = false
}

// Filter returns the active filter.
func (p *Practice) Filter() catalog.Filter {
	return p.filter
}

// SetFilter applies a new filter, discarding any in-progress answer and
// resetting the position to the start of the new working set.
func (p *Practice) SetFilter(f catalog.Filter) {
	p.filter = f
	p.rebuild()
}

// Empty reports whether the filter matched no questions.
func (p *Practice) Empty() bool {
	return len(p.working) == 0
}

// Len returns the size of the working set.
func (p *Practice) Len() int {
	return len(p.working)
}

// Pos returns the current position within the working set.
func (p *Practice) Pos() int {
	return p.pos
}

// Score returns the running practice score.
func (p *Practice) Score() int {
	return p.score
}

// Phase returns the answer lifecycle phase for the current question.
func (p *Practice) Phase() Phase {
	switch {
	case p.revealed:
		return PhaseRevealed
	case p.selected != noSelection:
		return PhaseSelected
	default:
		return PhaseAnswering
	}
}

// Current returns the question at the current position, if any.
func (p *Practice) Current() (catalog.Question, bool) {
	if p.Empty() {
		return catalog.Question{}, false
	}
	return p.working[p.pos], true
}

// SelectOption records a tentative choice. It is a no-op once the answer
// is revealed or when the index is out of bounds.
func (p *Practice) SelectOption(index int) {
	question, ok := p.Current()
	if !ok || p.revealed {
		return
	}
	if index < 0 || index >= len(question.Options) {
		return
	}
	p.selected = index
}

// ConfirmAnswer reveals correctness for the selected option, incrementing
// the persisted score by exactly one on a correct choice. It is a no-op
// without a selection or after reveal.
func (p *Practice) ConfirmAnswer() {
	question, ok := p.Current()
	if !ok || p.revealed || p.selected == noSelection {
		return
	}
	p.revealed = true
	if p.selected == question.Answer {
		p.score++
		p.store.SaveProgress(store.Progress{Score: p.score})
	}
}

// Advance moves to the next question, wrapping past the end. Practice is
// an endless loop, not a finite exam. Only valid once revealed.
func (p *Practice) Advance() {
	if p.Empty() || !p.revealed {
		return
	}
	p.pos = (p.pos + 1) % len(p.working)
	p.selected = noSelection
	p.revealed = false
}

// Bookmarked reports whether a question is bookmarked.
func (p *Practice) Bookmarked(id int) bool {
	return p.store.Bookmarks()[id]
}

// ToggleBookmark flips the bookmark flag for a question. The working set
// is not recomputed, so a bookmark-only set keeps its positions until the
// next filter change.
func (p *Practice) ToggleBookmark(id int) {
	p.store.SetBookmark(id, !p.store.Bookmarks()[id])
}

// FeedbackFor returns the recorded feedback for a question.
func (p *Practice) FeedbackFor(id int) store.Feedback {
	return p.store.Feedback()[id]
}

// SetFeedback records tri-state feedback; setting the current value again
// clears it.
func (p *Practice) SetFeedback(id int, value store.Feedback) {
	if p.store.Feedback()[id] == value {
		value = store.FeedbackNone
	}
	p.store.SetFeedback(id, value)
}

// ResetProgress zeroes the score and position and erases the persisted
// progress entry. Bookmarks and feedback are a separate persistence
// domain and stay untouched.
func (p *Practice) ResetProgress() {
	p.score = 0
	p.pos = 0
	p.selected = noSelection
	p.revealed = false
	p.store.ClearProgress()
}
