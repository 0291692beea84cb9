// Package pkgfault converts errors surfacing from request processing into
// consistent HTTP responses.
//
// An Interceptor classifies an error into one of four categories:
//   - unknown route (*pkgerror.RouteNotFoundError), rendered with status 404;
//   - validation failure (*pkgerror.ValidationError);
//   - typed application error (*pkgerror.Error), rendered with its own status;
//   - anything else, which is left to the host's default handling.
//
// Each of the first three categories can be reformatted by a callback in
// Config. A callback returning a string produces a raw text body; any other
// value is JSON-encoded.
//
// Classify is a pure function usable without a server. HandleError plugs the
// interceptor into pkgrouter; Gin and GinNoRoute plug it into gin.
package pkgfault
