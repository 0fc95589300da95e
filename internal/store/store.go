// Package store persists practice state to per-user key/value entries.
// Each domain (progress, bookmarks, feedback) is an independent entry:
// clearing one never touches the others.
package store

// Feedback is the tri-state per-question feedback flag.
type Feedback string

// Feedback values; the zero value means no feedback recorded.
const (
	FeedbackNone     Feedback = ""
	FeedbackLiked    Feedback = "liked"
	FeedbackDisliked Feedback = "disliked"
)

// Progress is the persisted practice progress entry.
type Progress struct {
	Score int `json:"score"`
}

// Store is the persistence boundary for session state. Loading happens
// once at construction; saves are fire-and-forget and must never fail
// the caller.
type Store interface {
	Progress() Progress
	SaveProgress(progress Progress)
	ClearProgress()

	Bookmarks() map[int]bool
	SetBookmark(id int, on bool)

	Feedback() map[int]Feedback
	SetFeedback(id int, value Feedback)
}
