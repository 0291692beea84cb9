package inbound

import (
	"net/http"
	"time"

	"github.com/shandysiswandi/gofault/internal/notes/entity"
)

type NoteRequest struct {
	Title string `json:"title" validate:"required,max=120"`
	Body  string `json:"body" validate:"max=4000"`
}

type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateResponse struct {
	Note
}

func (CreateResponse) StatusCode() int {
	return http.StatusCreated
}

func (CreateResponse) Message() string {
	return "note created"
}

type archiveResponse struct{}

func (archiveResponse) StatusCode() int {
	return http.StatusNoContent
}

func toHTTPNote(n entity.Note) Note {
	return Note{
		ID:        formatID(n.ID),
		Title:     n.Title,
		Body:      n.Body,
		Version:   n.Version,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}
