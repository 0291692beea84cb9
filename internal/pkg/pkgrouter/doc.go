// Package pkgrouter wraps HTTP routing and common middleware used by the API.
//
// It provides a small router abstraction over httprouter plus shared concerns
// like JSON encoding, request binding and validation, logging, recovery,
// metrics and correlation ID propagation.
//
// Errors returned by handlers, and unknown routes, are handed to the error
// hook registered with OnError (for example a pkgfault.Interceptor). Errors
// the hook declines get a generic 500 response.
package pkgrouter
