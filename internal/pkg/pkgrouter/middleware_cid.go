package pkgrouter

import (
	"net/http"
	"strings"

	"github.com/shandysiswandi/gofault/internal/pkg/pkglog"
)

// Generator generates a unique string (used for correlation/request IDs).
type Generator interface {
	Generate() string
}

const (
	// HeaderCorrelationID is the canonical header used to track requests end-to-end.
	HeaderCorrelationID = "X-Correlation-ID"
	// HeaderRequestID is an accepted alternative header name used by some proxies.
	HeaderRequestID = "X-Request-ID"
)

const maxCIDLen = 128

func normalizeCID(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || strings.ContainsAny(v, "\r\n") {
		return ""
	}
	if len(v) > maxCIDLen {
		v = v[:maxCIDLen]
	}
	return v
}

// incomingCID returns the first usable correlation id sent by the client.
func incomingCID(h http.Header) string {
	for _, key := range []string{HeaderCorrelationID, HeaderRequestID} {
		if cid := normalizeCID(h.Get(key)); cid != "" {
			return cid
		}
	}
	return ""
}

// middlewareCorrelationID stages the correlation id on the response before
// any handler runs, so error responses carry it too.
func middlewareCorrelationID(uid Generator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cid := incomingCID(r.Header)
			if cid == "" && uid != nil {
				cid = uid.Generate()
			}

			if cid != "" {
				w.Header().Set(HeaderCorrelationID, cid)
				r = r.WithContext(pkglog.SetCorrelationID(r.Context(), cid))
			}

			next.ServeHTTP(w, r)
		})
	}
}
