package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/shandysiswandi/gofault/internal/notes/entity"
	"github.com/shandysiswandi/gofault/internal/pkg/pkgerror"
	"github.com/shandysiswandi/gofault/internal/pkg/pkguid"
)

// HeaderVersion carries the current note version on responses.
const HeaderVersion = "X-Note-Version"

type Store interface {
	Create(ctx context.Context, note entity.Note) error
	Get(ctx context.Context, id int64) (entity.Note, error)
	Update(ctx context.Context, id int64, fn func(note *entity.Note) error) (entity.Note, error)
}

type Clock interface {
	Now() time.Time
}

// HeaderFunc stages a response header for the current request.
type HeaderFunc func(ctx context.Context, key, value string)

type Dependency struct {
	Store  Store
	Clock  Clock
	ID     pkguid.NumberID
	Header HeaderFunc
}

type Usecase struct {
	store  Store
	clock  Clock
	id     pkguid.NumberID
	header HeaderFunc
}

func New(dep Dependency) *Usecase {
	clock := dep.Clock
	if clock == nil {
		clock = realClock{}
	}

	header := dep.Header
	if header == nil {
		header = func(context.Context, string, string) {}
	}

	return &Usecase{
		store:  dep.Store,
		clock:  clock,
		id:     dep.ID,
		header: header,
	}
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (entity.Note, error) {
	now := u.clock.Now()
	note := entity.Note{
		ID:        u.id.Generate(),
		Title:     in.Title,
		Body:      in.Body,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.store.Create(ctx, note); err != nil {
		return entity.Note{}, mapStoreErr(ctx, err)
	}

	u.stageVersion(ctx, note)
	slog.InfoContext(ctx, "note created", "note_id", note.ID)

	return note, nil
}

func (u *Usecase) Get(ctx context.Context, id int64) (entity.Note, error) {
	note, err := u.store.Get(ctx, id)
	if err != nil {
		return entity.Note{}, mapStoreErr(ctx, err)
	}
	if note.Archived {
		return entity.Note{}, mapStoreErr(ctx, entity.ErrArchived)
	}

	u.stageVersion(ctx, note)

	return note, nil
}

// Update replaces title and body when in.Version matches the stored version.
// On a mismatch the current version is still staged so the client can retry.
func (u *Usecase) Update(ctx context.Context, in UpdateInput) (entity.Note, error) {
	note, err := u.store.Update(ctx, in.ID, func(note *entity.Note) error {
		if note.Archived {
			return entity.ErrArchived
		}
		if note.Version != in.Version {
			return entity.ErrVersionMismatch
		}

		note.Title = in.Title
		note.Body = in.Body
		note.Version++
		note.UpdatedAt = u.clock.Now()
		return nil
	})
	if errors.Is(err, entity.ErrVersionMismatch) {
		u.stageVersion(ctx, note)
	}
	if err != nil {
		return entity.Note{}, mapStoreErr(ctx, err)
	}

	u.stageVersion(ctx, note)

	return note, nil
}

func (u *Usecase) Archive(ctx context.Context, id int64) error {
	_, err := u.store.Update(ctx, id, func(note *entity.Note) error {
		if note.Archived {
			return entity.ErrArchived
		}
		note.Archived = true
		note.Version++
		note.UpdatedAt = u.clock.Now()
		return nil
	})
	if err != nil {
		return mapStoreErr(ctx, err)
	}

	slog.InfoContext(ctx, "note archived", "note_id", id)

	return nil
}

func (u *Usecase) stageVersion(ctx context.Context, note entity.Note) {
	u.header(ctx, HeaderVersion, strconv.FormatInt(note.Version, 10))
}

func mapStoreErr(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		return pkgerror.NewNotFound("note not found")
	case errors.Is(err, entity.ErrArchived):
		return pkgerror.NewGone("note has been archived")
	case errors.Is(err, entity.ErrVersionMismatch):
		return pkgerror.NewPreconditionFailed("note has been modified since it was read")
	case errors.Is(err, entity.ErrDuplicateTitle):
		return pkgerror.NewConflict("a note with this title already exists")
	}

	slog.ErrorContext(ctx, "note store failure", "error", err)
	return pkgerror.Wrap(err, pkgerror.KindInternalServerError)
}
