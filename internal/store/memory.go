package store

// MemoryStore is an in-memory Store for tests and ephemeral runs.
type MemoryStore struct {
	progress  Progress
	bookmarks map[int]bool
	feedback  map[int]Feedback
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		bookmarks: map[int]bool{},
		feedback:  map[int]Feedback{},
	}
}

// Progress returns the stored practice progress.
func (s *MemoryStore) Progress() Progress {
	return s.progress
}

// SaveProgress records practice progress.
func (s *MemoryStore) SaveProgress(progress Progress) {
	s.progress = progress
}

// ClearProgress erases the progress entry.
func (s *MemoryStore) ClearProgress() {
	s.progress = Progress{}
}

// Bookmarks returns a copy of the bookmark map.
func (s *MemoryStore) Bookmarks() map[int]bool {
	return copyBookmarks(s.bookmarks)
}

// SetBookmark records a bookmark flag.
func (s *MemoryStore) SetBookmark(id int, on bool) {
	if on {
		s.bookmarks[id] = true
	} else {
		delete(s.bookmarks, id)
	}
}

// Feedback returns a copy of the feedback map.
func (s *MemoryStore) Feedback() map[int]Feedback {
	return copyFeedback(s.feedback)
}

// SetFeedback records a feedback value. FeedbackNone removes the entry.
func (s *MemoryStore) SetFeedback(id int, value Feedback) {
	if value == FeedbackNone {
		delete(s.feedback, id)
	} else {
		s.feedback[id] = value
	}
}
