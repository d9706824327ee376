package api

import (
	"net/http"

	"github.com/rs/cors"
)

// WithCORS allows any origin, method and header, with credentials. The request
// origin is echoed back because browsers reject "*" together with credentials.
func WithCORS(handler http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodHead,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}).Handler(handler)
}
