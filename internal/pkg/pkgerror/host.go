package pkgerror

import (
	"fmt"
	"strings"
)

// RouteNotFoundSentinel is the generic message the router puts on a
// RouteNotFoundError when it has nothing more specific to say.
const RouteNotFoundSentinel = "NOT_FOUND"

// RouteNotFoundError is raised by the router when no route matches a request.
type RouteNotFoundError struct {
	Method  string
	URL     string
	Message string
}

func (e *RouteNotFoundError) Error() string {
	if e.Generic() {
		return fmt.Sprintf("%s %s: route not found", e.Method, e.URL)
	}
	return e.Message
}

// Generic reports whether the error carries no message beyond the sentinel.
func (e *RouteNotFoundError) Generic() bool {
	return e.Message == "" || e.Message == RouteNotFoundSentinel
}

// FieldError is a single failed check of a request payload.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ValidationError is raised when request data fails schema checks.
//
// Status is the status the validator itself reports for the failure.
type ValidationError struct {
	Status int
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Path+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
