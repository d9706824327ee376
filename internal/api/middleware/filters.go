package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog"
)

// NewLogger logs one line per request.
func NewLogger(logger *zerolog.Logger) restful.FilterFunction {
	return func(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
		start := time.Now()
		chain.ProcessFilter(req, resp)

		logger.Info().
			Str("method", req.Request.Method).
			Str("path", req.Request.URL.Path).
			Int("status", resp.StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("Request handled")
	}
}

// NewRecoverPanic turns a panic in a route function into a 500 response.
func NewRecoverPanic(logger *zerolog.Logger) restful.FilterFunction {
	return func(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error().
					Str("panic", fmt.Sprint(r)).
					Str("path", req.Request.URL.Path).
					Bytes("stack", debug.Stack()).
					Msg("Recovered from panic")
				WriteError(resp, http.StatusInternalServerError, fmt.Sprintf("An internal server error occurred: %v", r))
			}
		}()
		chain.ProcessFilter(req, resp)
	}
}
