package notes

import (
	"github.com/shandysiswandi/gofault/internal/notes/inbound"
	"github.com/shandysiswandi/gofault/internal/notes/store"
	"github.com/shandysiswandi/gofault/internal/notes/usecase"
	"github.com/shandysiswandi/gofault/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/gofault/internal/pkg/pkguid"
)

type Dependency struct {
	Router *pkgrouter.Router
	ID     pkguid.NumberID
}

// New wires the notes endpoints onto dep.Router. Without an ID generator it
// falls back to a snowflake node with a random id.
func New(dep Dependency) error {
	if dep.ID == nil {
		ids, err := pkguid.NewSnowflake(-1)
		if err != nil {
			return err
		}
		dep.ID = ids
	}

	uc := usecase.New(usecase.Dependency{
		Store:  store.NewInMemoryStore(),
		ID:     dep.ID,
		Header: pkgrouter.SetHeader,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
