package middleware

import (
	"net/http"

	"github.com/emicklei/go-restful/v3"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Detail string `json:"detail" description:"Human readable error detail"`
}

func HandleError(resp *restful.Response, err error, status int) {
	WriteError(resp, status, err.Error())
}

// WriteError always answers with JSON, whatever the request's Accept header.
func WriteError(resp *restful.Response, status int, detail string) {
	_ = resp.WriteHeaderAndJson(status, ErrorResponse{Detail: detail}, restful.MIME_JSON)
}

// WriteServiceError replaces the container's plain text router errors.
func WriteServiceError(serviceErr restful.ServiceError, _ *restful.Request, resp *restful.Response) {
	for header, values := range serviceErr.Header {
		for _, value := range values {
			resp.Header().Add(header, value)
		}
	}
	WriteError(resp, serviceErr.Code, http.StatusText(serviceErr.Code))
}
