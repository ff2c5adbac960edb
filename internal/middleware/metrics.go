package middleware

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/passa-a-bola/passa-web/internal/obs"
)

// Metrics records request counts and latencies. Routes are labelled by
// their mux template so path parameters do not explode cardinality.
func Metrics(m *obs.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			done := m.RequestStarted()
			wrapped := NewResponseWriter(w)

			defer func() {
				// A panicking handler is answered by Recovery further out
				if p := recover(); p != nil {
					done(r.Method, routeLabel(r), strconv.Itoa(http.StatusInternalServerError))
					panic(p)
				}
				done(r.Method, routeLabel(r), strconv.Itoa(wrapped.Status()))
			}()

			next.ServeHTTP(wrapped, r)
		})
	}
}

func routeLabel(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return "unmatched"
}
