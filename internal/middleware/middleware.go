// Package middleware holds the HTTP middleware shared by all routes.
package middleware

import (
	"log"
	"net/http"
	"runtime/debug"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// Recovery turns a panic in a handler into a 500 response
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			log.Printf("[%s] panic serving %s %s: %v\n%s",
				chimw.GetReqID(r.Context()), r.Method, r.URL.Path, rec, debug.Stack())
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}

// Logger logs one line per request with its status, size and duration
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		defer func() {
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			log.Printf("[%s] %s %s %d %dB %s",
				chimw.GetReqID(r.Context()), r.Method, r.URL.RequestURI(), status, ww.BytesWritten(), time.Since(start))
		}()

		next.ServeHTTP(ww, r)
	})
}
