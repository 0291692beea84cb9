package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/gofault/internal/notes"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.notes.enabled") {
		err := notes.New(notes.Dependency{
			Router: a.router,
			ID:     a.snowflake,
		})
		if err != nil {
			slog.Error("failed to init module notes", "error", err)
			os.Exit(1)
		}
	}
}
