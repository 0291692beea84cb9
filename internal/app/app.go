package app

import (
	"context"
	"io"
	"net/http"

	"github.com/shandysiswandi/gofault/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/gofault/internal/pkg/pkglog"
	"github.com/shandysiswandi/gofault/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/gofault/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/gofault/internal/pkg/pkguid"
)

type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config pkgconfig.Config

	// libraries
	uuid      pkguid.StringID
	snowflake pkguid.NumberID
	goroutine *pkgroutine.Manager

	// server
	router     *pkgrouter.Router
	httpServer *http.Server

	// closed concurrently on Stop, after the HTTP server
	closers map[string]io.Closer
}

func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:     ctx,
		cancel:  cancel,
		closers: map[string]io.Closer{},
	}

	app.initConfig()
	pkglog.InitLogging(app.config.GetString("log.level"))

	app.initLibraries()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
