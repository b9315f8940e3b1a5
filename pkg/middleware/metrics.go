package middleware

import "net/http"

// Metrics creates a middleware that reports each request's path and
// final status code to the given recorder.
func Metrics(record func(endpoint string, status int)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			record(r.URL.Path, rec.status)
		})
	}
}
