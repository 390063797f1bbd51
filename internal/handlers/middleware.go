package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"planweaver/internal/planclient"
)

// RequestLogger logs every request with method, path, and duration
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s (%s)", r.Method, r.URL.Path, time.Since(start))
	})
}

// SessionToken carries the caller's bearer token into the request context so
// the downstream plan client can forward it
func SessionToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if token, ok := strings.CutPrefix(auth, "Bearer "); ok && token != "" {
			r = r.WithContext(planclient.WithSessionToken(r.Context(), token))
		}
		next.ServeHTTP(w, r)
	})
}
