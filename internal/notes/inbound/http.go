package inbound

import (
	"context"

	"github.com/shandysiswandi/gofault/internal/notes/entity"
	"github.com/shandysiswandi/gofault/internal/notes/usecase"
	"github.com/shandysiswandi/gofault/internal/pkg/pkgrouter"
)

type uc interface {
	Create(ctx context.Context, in usecase.CreateInput) (entity.Note, error)
	Get(ctx context.Context, id int64) (entity.Note, error)
	Update(ctx context.Context, in usecase.UpdateInput) (entity.Note, error)
	Archive(ctx context.Context, id int64) error
}

func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/notes", end.Create)
	r.GET("/notes/:id", end.Get)
	r.PUT("/notes/:id", end.Update) // If-Match: <version>
	r.DELETE("/notes/:id", end.Archive)
}
