package inbound

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/shandysiswandi/gofault/internal/notes/usecase"
	"github.com/shandysiswandi/gofault/internal/pkg/pkgerror"
	"github.com/shandysiswandi/gofault/internal/pkg/pkgrouter"
)

type HTTPEndpoint struct {
	uc uc
}

func (h *HTTPEndpoint) Create(ctx context.Context, r *http.Request) (any, error) {
	var in NoteRequest
	if err := pkgrouter.BindJSON(r, &in); err != nil {
		return nil, err
	}

	note, err := h.uc.Create(ctx, usecase.CreateInput{Title: in.Title, Body: in.Body})
	if err != nil {
		return nil, err
	}

	return CreateResponse{Note: toHTTPNote(note)}, nil
}

func (h *HTTPEndpoint) Get(ctx context.Context, _ *http.Request) (any, error) {
	id, err := parseID(pkgrouter.GetParam(ctx, "id"))
	if err != nil {
		return nil, err
	}

	note, err := h.uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return toHTTPNote(note), nil
}

func (h *HTTPEndpoint) Update(ctx context.Context, r *http.Request) (any, error) {
	id, err := parseID(pkgrouter.GetParam(ctx, "id"))
	if err != nil {
		return nil, err
	}

	version, err := parseIfMatch(r.Header.Get("If-Match"))
	if err != nil {
		return nil, err
	}

	var in NoteRequest
	if err := pkgrouter.BindJSON(r, &in); err != nil {
		return nil, err
	}

	note, err := h.uc.Update(ctx, usecase.UpdateInput{
		ID:      id,
		Version: version,
		Title:   in.Title,
		Body:    in.Body,
	})
	if err != nil {
		return nil, err
	}

	return toHTTPNote(note), nil
}

func (h *HTTPEndpoint) Archive(ctx context.Context, _ *http.Request) (any, error) {
	id, err := parseID(pkgrouter.GetParam(ctx, "id"))
	if err != nil {
		return nil, err
	}

	if err := h.uc.Archive(ctx, id); err != nil {
		return nil, err
	}

	return archiveResponse{}, nil
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, pkgerror.NewBadRequest("note id must be a positive integer")
	}
	return id, nil
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// parseIfMatch accepts a bare version or a quoted entity tag ("3" or W/"3").
func parseIfMatch(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, pkgerror.NewBadRequest("If-Match header is required")
	}

	raw = strings.TrimPrefix(raw, "W/")
	raw = strings.Trim(raw, `"`)

	version, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || version < 1 {
		return 0, pkgerror.NewBadRequest("If-Match header must be a note version")
	}
	return version, nil
}
