package notes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shandysiswandi/gofault/internal/pkg/pkgrouter"
)

type staticID string

func (s staticID) Generate() string { return string(s) }

func TestNewRegistersEndpoints(t *testing.T) {
	router := pkgrouter.NewRouter(staticID("cid"))

	if err := New(Dependency{Router: router}); err != nil {
		t.Fatalf("New: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/notes", strings.NewReader(`{"title":"hello"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}
