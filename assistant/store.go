package assistant

import (
	"sync"

	"github.com/google/uuid"
)

// Document is the current upload's processed state. There is exactly one
// per process: a new upload replaces the previous document wholesale.
type Document struct {
	ID        uuid.UUID `json:"id"`
	Filename  string    `json:"filename"`
	Text      string    `json:"-"`
	Summary   string    `json:"summary"`
	Questions []string  `json:"questions"`
}

// Store is the process-wide slot for the most recently uploaded document.
// The lock only prevents torn reads; last writer wins when requests race.
type Store struct {
	mu      sync.RWMutex
	current *Document
}

func NewStore() *Store {
	return &Store{}
}

// SetCurrent replaces the stored document with a fresh one and returns its
// assigned ID.
func (s *Store) SetCurrent(filename, text string) uuid.UUID {
	doc := &Document{
		ID:       uuid.New(),
		Filename: filename,
		Text:     text,
	}

	s.mu.Lock()
	s.current = doc
	s.mu.Unlock()

	return doc.ID
}

// Current returns a snapshot of the stored document.
func (s *Store) Current() (Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return Document{}, ErrNoDocument
	}

	snapshot := *s.current
	snapshot.Questions = append([]string(nil), s.current.Questions...)
	return snapshot, nil
}

// SetSummary attaches the generated summary to the stored document.
func (s *Store) SetSummary(summary string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return ErrNoDocument
	}
	s.current.Summary = summary
	return nil
}

// SetQuestions replaces the stored question set wholesale.
func (s *Store) SetQuestions(questions []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return ErrNoDocument
	}
	s.current.Questions = append([]string(nil), questions...)
	return nil
}

// Questions returns a copy of the stored question set.
func (s *Store) Questions() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil, ErrNoDocument
	}
	return append([]string(nil), s.current.Questions...), nil
}
