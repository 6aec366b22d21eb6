package middleware

import (
	"net/http"

	"github.com/gorilla/handlers"
)

const headerRequestMethod = "Access-Control-Request-Method"

// CORS разрешает запросы с любого origin.
// OPTIONS без Access-Control-Request-Method не является preflight и передаётся маршруту.
func CORS() func(http.Handler) http.Handler {
	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization", HeaderRequestID}),
		handlers.ExposedHeaders([]string{HeaderRequestID}),
	)

	return func(next http.Handler) http.Handler {
		withCORS := cors(next)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions && r.Header.Get(headerRequestMethod) == "" {
				if r.Header.Get("Origin") != "" {
					w.Header().Set("Access-Control-Allow-Origin", "*")
				}
				next.ServeHTTP(w, r)
				return
			}
			withCORS.ServeHTTP(w, r)
		})
	}
}
