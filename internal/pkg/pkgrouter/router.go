package pkgrouter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shandysiswandi/gofault/internal/pkg/pkgerror"
	"github.com/shandysiswandi/gofault/internal/pkg/pkgfault"
)

// Handler is the application-style handler used by this router.
//
// It returns a response payload (that will be JSON encoded) or an error.
type Handler func(ctx context.Context, r *http.Request) (any, error)

// ErrorHook renders errors returned by handlers or raised by the router.
//
// HandleError reports false when it leaves the error to the router's default
// handling.
type ErrorHook interface {
	HandleError(w http.ResponseWriter, r *http.Request, err error) bool
}

// Router is an http.Handler that wraps httprouter and a middleware chain.
type Router struct {
	hr       *httprouter.Router
	hook     ErrorHook
	encoder  func(ctx context.Context, w http.ResponseWriter, resp any)
	mws      []Middleware
	registry *prometheus.Registry
}

// NewRouter builds the default application router with standard middleware.
func NewRouter(uuid Generator) *Router {
	registry := prometheus.NewRegistry()

	ro := &Router{
		encoder:  okCodec,
		registry: registry,
	}

	ro.mws = []Middleware{
		middlewareRecoverer,
		middlewareCorrelationID(uuid),
		middlewareHeaderStage,
		middlewareLogging,
		middlewareMetrics(newMetrics(registry)),
	}

	ro.hr = &httprouter.Router{
		RedirectTrailingSlash:  true,
		RedirectFixedPath:      true,
		HandleMethodNotAllowed: true,
		HandleOPTIONS:          true,
		NotFound:               http.HandlerFunc(ro.notFound),
		MethodNotAllowed: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, map[string]string{"message": "method not allowed"}, http.StatusMethodNotAllowed)
		}),
	}

	ro.Handle(http.MethodGet, "/", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]string{"message": "hi from gofault"}, http.StatusOK)
	}))

	ro.Handle(http.MethodGet, "/health", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]string{"message": "server is running well"}, http.StatusOK)
	}))

	ro.hr.Handler(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	return ro
}

// notFound raises a RouteNotFoundError through the standard middleware stack,
// so unknown routes are logged, measured and rendered like any other error.
func (r *Router) notFound(w http.ResponseWriter, req *http.Request) {
	h := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		r.errorCodec(w, req, &pkgerror.RouteNotFoundError{
			Method:  req.Method,
			URL:     pkgfault.RequestURL(req),
			Message: pkgerror.RouteNotFoundSentinel,
		})
	})

	Chain(h, r.mws...).ServeHTTP(w, req.WithContext(withRoute(req.Context(), routeNotFound)))
}

// OnError registers the global error hook. Registering again replaces it.
func (r *Router) OnError(h ErrorHook) {
	r.hook = h
}

// Registry returns the prometheus registry backing the /metrics endpoint.
func (r *Router) Registry() *prometheus.Registry {
	return r.registry
}

// Use appends middleware to the existing middleware stack.
func (r *Router) Use(mws ...Middleware) {
	r.mws = append(r.mws, mws...)
}

// GET registers a GET endpoint using the application Handler signature.
func (r *Router) GET(path string, h Handler, mws ...Middleware) {
	r.endpoint(http.MethodGet, path, h, mws...)
}

// POST registers a POST endpoint using the application Handler signature.
func (r *Router) POST(path string, h Handler, mws ...Middleware) {
	r.endpoint(http.MethodPost, path, h, mws...)
}

// PUT registers a PUT endpoint using the application Handler signature.
func (r *Router) PUT(path string, h Handler, mws ...Middleware) {
	r.endpoint(http.MethodPut, path, h, mws...)
}

// PATCH registers a PATCH endpoint using the application Handler signature.
func (r *Router) PATCH(path string, h Handler, mws ...Middleware) {
	r.endpoint(http.MethodPatch, path, h, mws...)
}

// DELETE registers a DELETE endpoint using the application Handler signature.
func (r *Router) DELETE(path string, h Handler, mws ...Middleware) {
	r.endpoint(http.MethodDelete, path, h, mws...)
}

// Handle registers a raw http.Handler with the router.
func (r *Router) Handle(method, path string, h http.Handler, mws ...Middleware) {
	r.hr.Handler(method, path, routed(path, Chain(h, append(r.mws, mws...)...)))
}

func (r *Router) endpoint(method, path string, h Handler, mws ...Middleware) {
	r.hr.Handler(method, path, routed(path, Chain(http.HandlerFunc(func(w http.ResponseWriter, re *http.Request) {
		resp, err := h(re.Context(), re)
		if err != nil {
			r.errorCodec(w, re, err)
			return
		}
		r.encoder(re.Context(), w, resp)
	}), append(r.mws, mws...)...)))
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.hr.ServeHTTP(w, req)
}

// errorCodec hands err to the registered hook and falls back to the router's
// own rendering when there is no hook or the hook declines.
func (r *Router) errorCodec(w http.ResponseWriter, req *http.Request, err error) {
	if r.hook != nil && r.hook.HandleError(w, req, err) {
		return
	}

	var routeErr *pkgerror.RouteNotFoundError
	if errors.As(err, &routeErr) {
		writeJSON(w, errorResponse{Message: "endpoint not found"}, http.StatusNotFound)
		return
	}

	slog.ErrorContext(req.Context(), "unhandled error", "method", req.Method, "path", req.URL.Path, "error", err)
	writeJSON(w, errorResponse{Message: "Internal server error"}, http.StatusInternalServerError)
}

func okCodec(_ context.Context, w http.ResponseWriter, resp any) {
	code := http.StatusOK
	if sc, ok := resp.(interface {
		StatusCode() int
	}); ok {
		code = sc.StatusCode()
	}

	if code == http.StatusNoContent || resp == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	msg := "request has been successfully"
	if m, ok := resp.(interface {
		Message() string
	}); ok {
		msg = m.Message()
	}

	var meta map[string]any
	if m, ok := resp.(interface {
		Meta() map[string]any
	}); ok {
		meta = m.Meta()
	}

	writeJSON(w, successReponse{
		Message: msg,
		Data:    resp,
		Meta:    meta,
	}, code)
}

type errorResponse struct {
	Message string `json:"message"`
}

type successReponse struct {
	Message string         `json:"message"`
	Data    any            `json:"data"`
	Meta    map[string]any `json:"meta,omitempty"`
}

func writeJSON(w http.ResponseWriter, data any, code int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		slog.Error("server: failed to encode data to json", "error", err)
	}
}
