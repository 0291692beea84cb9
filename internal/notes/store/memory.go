package store

import (
	"context"
	"sync"

	"github.com/shandysiswandi/gofault/internal/notes/entity"
)

type InMemoryStore struct {
	mu     sync.RWMutex
	notes  map[int64]entity.Note
	titles map[string]int64
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		notes:  make(map[int64]entity.Note),
		titles: make(map[string]int64),
	}
}

func (s *InMemoryStore) Create(_ context.Context, note entity.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.titles[note.Title]; taken {
		return entity.ErrDuplicateTitle
	}

	s.notes[note.ID] = note
	s.titles[note.Title] = note.ID

	return nil
}

func (s *InMemoryStore) Get(_ context.Context, id int64) (entity.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	note, ok := s.notes[id]
	if !ok {
		return entity.Note{}, entity.ErrNotFound
	}

	return note, nil
}

// Update applies fn to a copy of the note and stores the result, all under
// the write lock. The note is left untouched when fn fails.
func (s *InMemoryStore) Update(_ context.Context, id int64, fn func(note *entity.Note) error) (entity.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.notes[id]
	if !ok {
		return entity.Note{}, entity.ErrNotFound
	}

	next := current
	if err := fn(&next); err != nil {
		return current, err
	}

	if next.Title != current.Title {
		if _, taken := s.titles[next.Title]; taken {
			return current, entity.ErrDuplicateTitle
		}
		delete(s.titles, current.Title)
		s.titles[next.Title] = id
	}
	s.notes[id] = next

	return next, nil
}
