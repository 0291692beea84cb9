package pkgfault

import "github.com/shandysiswandi/gofault/internal/pkg/pkgerror"

// RouteInfo is passed to Config.OnUnknownRoute.
type RouteInfo struct {
	Method string
	URL    string
}

// ValidationInfo is passed to Config.OnValidationFailure.
type ValidationInfo struct {
	URL    string
	Fields []pkgerror.FieldError
	// Status is the status reported by the validator.
	Status int
}

// ApplicationInfo is passed to Config.OnApplicationError.
type ApplicationInfo struct {
	Name    string
	Message string
}

// Config holds the optional per-category formatting callbacks.
//
// Each callback returns the response body: a string is written as is, any
// other value is encoded as JSON. A nil callback selects the default body.
// Callbacks must not panic; a panic is not recovered by the interceptor.
type Config struct {
	// OnUnknownRoute formats responses for requests that matched no route.
	// The response status is always 404.
	OnUnknownRoute func(RouteInfo) any

	// OnValidationFailure formats responses for payloads that failed validation.
	// The response status is always 404 when this callback is set, whatever
	// ValidationInfo.Status says; the default body uses the validator status.
	OnValidationFailure func(ValidationInfo) any

	// OnApplicationError formats responses for *pkgerror.Error values.
	// The response status is the error's own status.
	OnApplicationError func(ApplicationInfo) any
}
