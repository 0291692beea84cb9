package pkgrouter

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"
)

const maxLoggedBodyBytes = 64 * 1024

const binaryBodyOmitted = "<binary body omitted>"

//nolint:gochecknoglobals // global for fast reuse
var sensitiveKeys = map[string]struct{}{
	"password":      {},
	"access_token":  {},
	"refresh_token": {},
	"authorization": {},
	"cookie":        {},
	"set-cookie":    {},
	"api_key":       {},
	"x-api-key":     {},
}

func isSensitive(key string) bool {
	_, found := sensitiveKeys[strings.ToLower(key)]
	return found
}

func maskHeaders(headers http.Header) http.Header {
	result := headers.Clone()
	for key := range result {
		if isSensitive(key) {
			result.Set(key, "***")
		}
	}
	return result
}

func maskData(v any) any {
	switch val := v.(type) {
	case map[string]any:
		masked := make(map[string]any, len(val))
		for k, v2 := range val {
			if isSensitive(k) {
				masked[k] = "***"
			} else {
				masked[k] = maskData(v2)
			}
		}
		return masked
	case []any:
		res := make([]any, len(val))
		for i, v2 := range val {
			res[i] = maskData(v2)
		}
		return res
	default:
		return v
	}
}

// statusRecorder remembers the status and size of a response and, when body
// is set, a capped copy of what was written.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
	body   *bytes.Buffer
	capped bool
}

func (w *statusRecorder) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusRecorder) Write(p []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	if w.body != nil && !w.capped && len(p) > 0 {
		remaining := maxLoggedBodyBytes - w.body.Len()
		switch {
		case remaining <= 0:
			w.capped = true
		case len(p) > remaining:
			w.body.Write(p[:remaining])
			w.capped = true
		default:
			w.body.Write(p)
		}
	}

	n, err := w.ResponseWriter.Write(p)
	w.bytes += n
	return n, err
}

// Status returns the status written so far, 200 when nothing was written.
func (w *statusRecorder) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

func (w *statusRecorder) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

//nolint:err113 // it use dynamic error
func (w *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("hijack not supported")
	}
	return h.Hijack()
}

func (w *statusRecorder) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func parseAndMaskBody(contentType string, body []byte) any {
	if len(body) == 0 {
		return nil
	}

	var jsonBody any
	if err := json.Unmarshal(body, &jsonBody); err == nil {
		return maskData(jsonBody)
	}

	if strings.HasPrefix(strings.ToLower(contentType), "application/x-www-form-urlencoded") {
		if values, err := url.ParseQuery(string(body)); err == nil {
			masked := make(map[string]any, len(values))
			for k, v := range values {
				switch {
				case isSensitive(k):
					masked[k] = "***"
				case len(v) == 1:
					masked[k] = v[0]
				default:
					masked[k] = v
				}
			}
			return masked
		}
	}

	if !utf8.Valid(body) {
		return binaryBodyOmitted
	}
	if len(body) > maxLoggedBodyBytes {
		return string(body[:maxLoggedBodyBytes]) + "...(truncated)"
	}
	return string(body)
}

func loggedResponseBody(rec *statusRecorder) any {
	if rec.body == nil || rec.body.Len() == 0 {
		return nil
	}

	var body any
	var respJSON any
	switch {
	case json.Unmarshal(rec.body.Bytes(), &respJSON) == nil:
		body = maskData(respJSON)
	case utf8.Valid(rec.body.Bytes()):
		body = rec.body.String()
	default:
		body = binaryBodyOmitted
	}

	if rec.capped {
		return map[string]any{"body": body, "truncated": true}
	}
	return body
}

// responseLevel logs client errors as warnings and server errors as errors.
func responseLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

func middlewareLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := RoutePattern(r)
		start := time.Now()

		var reqBody []byte
		if r.Body != nil {
			//nolint:errcheck // best effort for logging only
			reqBody, _ = io.ReadAll(r.Body)
		}
		r.Body = io.NopCloser(bytes.NewReader(reqBody))

		slog.InfoContext(
			r.Context(),
			"request received",
			"method", r.Method,
			"route", route,
			"path", r.URL.Path,
			"headers", maskHeaders(r.Header),
			"body", parseAndMaskBody(r.Header.Get("Content-Type"), reqBody),
		)

		rec := &statusRecorder{ResponseWriter: w, body: &bytes.Buffer{}}
		next.ServeHTTP(rec, r)

		status := rec.Status()
		slog.Log(
			r.Context(),
			responseLevel(status),
			"response sent",
			"method", r.Method,
			"route", route,
			"path", r.URL.Path,
			"status", status,
			"bytes", rec.bytes,
			"latency_ms", time.Since(start).Milliseconds(),
			"body", loggedResponseBody(rec),
		)
	})
}
