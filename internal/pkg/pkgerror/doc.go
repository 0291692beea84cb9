// Package pkgerror defines the error vocabulary shared by handlers, the router
// and the fault interceptor.
//
// It provides:
//   - Error, a typed application error carrying a message, an HTTP status and
//     a display name.
//   - Kind, the closed catalog of predefined application errors (one per
//     common HTTP status) with their default messages.
//   - RouteNotFoundError and ValidationError, the errors raised by the router
//     itself when no route matches or a payload fails validation.
//
// Kinds are matched by identity, either with errors.Is(err, KindNotFound) or
// with KindOf(err), never by comparing strings.
package pkgerror
