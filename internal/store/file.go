package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// File names of the three persistence domains inside the state directory.
const (
	progressFile  = "progress.json"
	bookmarksFile = "bookmarks.json"
	feedbackFile  = "feedback.json"
)

// FileStore keeps state in JSON files under a state directory. Reads happen
// once at construction and tolerate missing or malformed files by falling
// back to defaults. Writes are atomic (tmp file plus rename); failures are
// logged and swallowed so storage trouble never blocks a session.
type FileStore struct {
	dir string
	log *zap.Logger

	progress  Progress
	bookmarks map[int]bool
	feedback  map[int]Feedback
}

// NewFileStore loads persisted state from dir. A nil logger disables logging.
func NewFileStore(dir string, log *zap.Logger) *FileStore {
	if log == nil {
		log = zap.NewNop()
	}
	s := &FileStore{
		dir:       dir,
		log:       log,
		bookmarks: map[int]bool{},
		feedback:  map[int]Feedback{},
	}
	s.loadInto(progressFile, &s.progress)
	if s.progress.Score < 0 {
		s.progress = Progress{}
	}
	s.loadInto(bookmarksFile, &s.bookmarks)
	s.loadInto(feedbackFile, &s.feedback)
	if s.bookmarks == nil {
		s.bookmarks = map[int]bool{}
	}
	if s.feedback == nil {
		s.feedback = map[int]Feedback{}
	}
	return s
}

// Progress returns the loaded practice progress.
func (s *FileStore) Progress() Progress {
	return s.progress
}

// SaveProgress records and persists practice progress.
func (s *FileStore) SaveProgress(progress Progress) {
	s.progress = progress
	s.save(progressFile, s.progress)
}

// ClearProgress erases the persisted progress entry.
func (s *FileStore) ClearProgress() {
	s.progress = Progress{}
	if err := os.Remove(filepath.Join(s.dir, progressFile)); err != nil && !os.IsNotExist(err) {
		s.log.Warn("clear progress failed", zap.Error(err))
	}
}

// Bookmarks returns a copy of the bookmark map.
func (s *FileStore) Bookmarks() map[int]bool {
	return copyBookmarks(s.bookmarks)
}

// SetBookmark records and persists a bookmark flag.
func (s *FileStore) SetBookmark(id int, on bool) {
	if on {
		s.bookmarks[id] = true
	} else {
		delete(s.bookmarks, id)
	}
	s.save(bookmarksFile, s.bookmarks)
}

// Feedback returns a copy of the feedback map.
func (s *FileStore) Feedback() map[int]Feedback {
	return copyFeedback(s.feedback)
}

// SetFeedback records and persists a feedback value. FeedbackNone removes
// the entry.
func (s *FileStore) SetFeedback(id int, value Feedback) {
	if value == FeedbackNone {
		delete(s.feedback, id)
	} else {
		s.feedback[id] = value
	}
	s.save(feedbackFile, s.feedback)
}

// loadInto reads one persistence domain, leaving the target untouched on
// any read or decode error.
func (s *FileStore) loadInto(name string, target any) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("read state failed", zap.String("file", name), zap.Error(err))
		}
		return
	}
	if err := json.Unmarshal(data, target); err != nil {
		s.log.Warn("corrupt state ignored", zap.String("file", name), zap.Error(err))
	}
}

func (s *FileStore) save(name string, value any) {
	if err := writeAtomic(filepath.Join(s.dir, name), value); err != nil {
		s.log.Warn("persist failed", zap.String("file", name), zap.Error(err))
	}
}

// writeAtomic persists a value as JSON using a tmp file and rename.
func writeAtomic(path string, value any) error {
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmpPath := path + ".tmp"
	file, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	_, writeErr := file.Write(payload)
	syncErr := file.Sync()
	closeErr := file.Close()
	if writeErr != nil {
		_ = os.Remove(tmpPath)
		return writeErr
	}
	if syncErr != nil {
		_ = os.Remove(tmpPath)
		return syncErr
	}
	if closeErr != nil {
		_ = os.Remove(tmpPath)
		return closeErr
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}

func copyBookmarks(src map[int]bool) map[int]bool {
	dst := make(map[int]bool, len(src))
	for id, on := range src {
		dst[id] = on
	}
	return dst
}

func copyFeedback(src map[int]Feedback) map[int]Feedback {
	dst := make(map[int]Feedback, len(src))
	for id, value := range src {
		dst[id] = value
	}
	return dst
}
