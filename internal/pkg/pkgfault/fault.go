package pkgfault

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/shandysiswandi/gofault/internal/pkg/pkgerror"
)

// ContentTypeJSON is set on every JSON body produced by the interceptor.
const ContentTypeJSON = "application/json; charset=utf-8"

// Category is the classification bucket of an error.
type Category int

const (
	CategoryUnclassified Category = iota // Left to the host's default handling.
	CategoryUnknownRoute                 // No route matched the request.
	CategoryValidation                   // The request payload failed validation.
	CategoryApplication                  // A typed *pkgerror.Error.
)

func (c Category) String() string {
	switch c {
	case CategoryUnknownRoute:
		return "unknown_route"
	case CategoryValidation:
		return "validation"
	case CategoryApplication:
		return "application"
	case CategoryUnclassified:
		return "unclassified"
	default:
		return "unclassified"
	}
}

// Request is the part of an HTTP request the interceptor needs.
type Request struct {
	Method string
	// URL is the absolute request URL, see RequestURL.
	URL string
}

// Response is a rendered error response.
type Response struct {
	Category Category
	Status   int
	Body     []byte
	// ContentType is empty for raw text bodies returned by a callback.
	ContentType string
}

// Interceptor classifies errors and renders them. It holds no mutable state
// and is safe for concurrent use.
type Interceptor struct {
	cfg Config
}

// New creates an Interceptor. The zero Config renders default bodies for
// every category.
func New(cfg Config) *Interceptor {
	return &Interceptor{cfg: cfg}
}

type unknownRouteBody struct {
	Message string `json:"message"`
}

type validationBody struct {
	Message    string                `json:"message"`
	Parameters []pkgerror.FieldError `json:"parameters"`
}

type applicationBody struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// Classify maps err to a response. It reports false when err belongs to none
// of the handled categories, in which case the caller should fall back to
// its own error handling.
func (i *Interceptor) Classify(err error, req Request) (Response, bool) {
	if err == nil {
		return Response{}, false
	}

	var routeErr *pkgerror.RouteNotFoundError
	if errors.As(err, &routeErr) {
		return i.unknownRoute(routeErr, req), true
	}

	var valErr *pkgerror.ValidationError
	if errors.As(err, &valErr) {
		return i.validation(valErr, req), true
	}

	var appErr *pkgerror.Error
	if errors.As(err, &appErr) {
		return i.application(appErr), true
	}

	return Response{Category: CategoryUnclassified}, false
}

func (i *Interceptor) unknownRoute(err *pkgerror.RouteNotFoundError, req Request) Response {
	if i.cfg.OnUnknownRoute != nil {
		out := i.cfg.OnUnknownRoute(RouteInfo{Method: req.Method, URL: req.URL})
		return render(CategoryUnknownRoute, http.StatusNotFound, out)
	}

	msg := err.Message
	if err.Generic() {
		msg = fmt.Sprintf("%s %s is not a valid endpoint.", req.Method, req.URL)
	}

	return render(CategoryUnknownRoute, http.StatusNotFound, unknownRouteBody{Message: msg})
}

func (i *Interceptor) validation(err *pkgerror.ValidationError, req Request) Response {
	fields := make([]pkgerror.FieldError, 0, len(err.Fields))
	for _, f := range err.Fields {
		fields = append(fields, pkgerror.FieldError{Path: f.Path, Message: f.Message})
	}

	if i.cfg.OnValidationFailure != nil {
		out := i.cfg.OnValidationFailure(ValidationInfo{URL: req.URL, Fields: fields, Status: err.Status})
		return render(CategoryValidation, http.StatusNotFound, out)
	}

	return render(CategoryValidation, err.Status, validationBody{
		Message:    fmt.Sprintf("Validation error at url %s with the following parameters", req.URL),
		Parameters: fields,
	})
}

func (i *Interceptor) application(err *pkgerror.Error) Response {
	if i.cfg.OnApplicationError != nil {
		out := i.cfg.OnApplicationError(ApplicationInfo{Name: err.Name(), Message: err.Msg()})
		return render(CategoryApplication, err.Status(), out)
	}

	return render(CategoryApplication, err.Status(), applicationBody{Name: err.Name(), Message: err.Msg()})
}

// render turns a body value into a Response. Strings are written raw; any
// other value is JSON-encoded. A value that cannot be encoded is a bug in the
// caller's callback and panics, like any other failing callback.
func render(cat Category, status int, body any) Response {
	if s, ok := body.(string); ok {
		return Response{Category: cat, Status: status, Body: []byte(s)}
	}

	data, err := json.Marshal(body)
	if err != nil {
		panic(fmt.Errorf("pkgfault: cannot encode %s response body: %w", cat, err))
	}

	return Response{Category: cat, Status: status, Body: data, ContentType: ContentTypeJSON}
}
