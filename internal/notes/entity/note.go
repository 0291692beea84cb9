package entity

import (
	"errors"
	"time"
)

// Note is a titled text document. Titles are unique across all notes,
// archived ones included.
type Note struct {
	ID        int64
	Title     string
	Body      string
	Version   int64
	Archived  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

var (
	ErrNotFound        = errors.New("note not found")
	ErrDuplicateTitle  = errors.New("note title already taken")
	ErrArchived        = errors.New("note archived")
	ErrVersionMismatch = errors.New("note version mismatch")
)
