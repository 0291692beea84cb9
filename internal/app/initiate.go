package app

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/rs/cors"
	"github.com/shandysiswandi/gofault/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/gofault/internal/pkg/pkgfault"
	"github.com/shandysiswandi/gofault/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/gofault/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/gofault/internal/pkg/pkguid"
)

func (a *App) initConfig() {
	path := "/config/config.yaml"
	if os.Getenv("LOCAL") == "true" {
		path = "./config/config.yaml"
	}

	cfg, err := pkgconfig.NewViper(path)
	if err != nil {
		slog.Error("failed to init config", "path", path, "error", err)
		os.Exit(1)
	}

	if tz := cfg.GetString("tz"); tz != "" {
		//nolint:errcheck,gosec // ignore error
		os.Setenv("TZ", tz)
	}

	a.config = cfg
}

func (a *App) initLibraries() {
	a.goroutine = pkgroutine.NewManager(100)
	a.uuid = pkguid.NewUUID()

	node := int64(-1)
	if a.config.GetString("snowflake.node") != "" {
		node = a.config.GetInt("snowflake.node")
	}
	sf, err := pkguid.NewSnowflake(node)
	if err != nil {
		slog.Error("failed to init snowflake", "node", node, "error", err)
		os.Exit(1)
	}
	a.snowflake = sf
}

func (a *App) initHTTPServer() {
	a.router = pkgrouter.NewRouter(a.uuid)
	a.router.OnError(pkgfault.New(faultConfig(a.config.GetString("fault.format"))))

	origins := a.config.GetArray("cors.allowed_origins")
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{pkgrouter.HeaderCorrelationID, "X-Note-Version"},
		AllowCredentials: true,
	})

	a.httpServer = &http.Server{
		Addr:              a.config.GetString("server.address.http"),
		Handler:           corsHandler.Handler(a.router),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// faultConfig returns the interceptor settings for the configured format.
// "text" answers unknown routes and application errors with plain text;
// validation failures keep the JSON body and its status either way.
func faultConfig(format string) pkgfault.Config {
	if format != "text" {
		return pkgfault.Config{}
	}

	return pkgfault.Config{
		OnUnknownRoute: func(info pkgfault.RouteInfo) any {
			return fmt.Sprintf("no route for %s %s", info.Method, info.URL)
		},
		OnApplicationError: func(info pkgfault.ApplicationInfo) any {
			return info.Name + ": " + info.Message
		},
	}
}

func (a *App) initClosers() {
	a.closers["Config"] = a.config
}
