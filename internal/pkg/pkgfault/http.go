package pkgfault

import "net/http"

// RequestURL reconstructs the absolute URL of r (scheme, host, path, query).
func RequestURL(r *http.Request) string {
	if r.URL.IsAbs() {
		return r.URL.String()
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}

	return scheme + "://" + r.Host + r.URL.RequestURI()
}

// HandleError classifies err for the request r and writes the response to w.
//
// Headers already staged on w are kept. It reports false, writing nothing,
// when err is not handled by the interceptor.
func (i *Interceptor) HandleError(w http.ResponseWriter, r *http.Request, err error) bool {
	resp, ok := i.Classify(err, Request{Method: r.Method, URL: RequestURL(r)})
	if !ok {
		return false
	}

	resp.Write(w)
	return true
}

// Write writes the response status, content type and body to w.
func (resp Response) Write(w http.ResponseWriter) {
	if resp.ContentType != "" {
		w.Header().Set("Content-Type", resp.ContentType)
	}
	w.WriteHeader(resp.Status)
	//nolint:errcheck,gosec // client went away, nothing left to do
	w.Write(resp.Body)
}
