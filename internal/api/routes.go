package api

import (
	"net/http"

	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/go-openapi/spec"
	"github.com/povarna/generative-ai-agents/er-diagram-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/er-diagram-agent/internal/models"
	"github.com/rs/zerolog"
)

const (
	OpenAPIPath = "/openapi.json"
	Version     = "0.1.0"
)

// NewContainer builds the restful container with logging and panic recovery
// filters and all routes registered. Router errors (404, 405, 415) are written
// as JSON error details, and a request body without a Content-Type is read as
// JSON.
func NewContainer(handler *Handler, logger *zerolog.Logger) *restful.Container {
	restful.DefaultRequestContentType(restful.MIME_JSON)

	container := restful.NewContainer()
	container.ServiceErrorHandler(middleware.WriteServiceError)
	container.Filter(middleware.NewLogger(logger))
	container.Filter(middleware.NewRecoverPanic(logger))
	RegisterRoutes(container, handler)

	return container
}

// RegisterRoutes adds the diagram API, its OpenAPI document and the root
// greeting. The root route is kept out of the OpenAPI document.
func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/generate-er-diagram").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	ws.
		Route(ws.POST("").
			To(handler.GenerateERDiagram).
			AllowedMethodsWithoutContentType([]string{http.MethodPost}).
			Doc("Generate ER Diagram from Natural Language").
			Notes("Takes a natural language prompt describing a database and returns Mermaid.js code for an ER diagram.").
			Metadata(restfulspec.KeyOpenAPITags, []string{"diagram"}).
			Reads(models.DiagramRequest{}).
			Writes(models.DiagramResponse{}).
			Returns(200, "OK", models.DiagramResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(422, "Unprocessable Entity", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}).
			Returns(503, "Service Unavailable", middleware.ErrorResponse{}))

	container.Add(ws)

	container.Add(restfulspec.NewOpenAPIService(restfulspec.Config{
		WebServices:                   []*restful.WebService{ws},
		APIPath:                       OpenAPIPath,
		PostBuildSwaggerObjectHandler: enrichSwaggerObject,
	}))

	root := new(restful.WebService)
	root.
		Path("/").
		Produces(restful.MIME_JSON)

	root.Route(root.GET("/").To(handler.Root))

	container.Add(root)
}

func enrichSwaggerObject(swo *spec.Swagger) {
	swo.Info = &spec.Info{
		InfoProps: spec.InfoProps{
			Title:       "Natural Language to ER Diagram Tool",
			Description: "API to convert natural language database descriptions into Mermaid ER diagrams using AI.",
			Version:     Version,
		},
	}
	swo.Tags = []spec.Tag{
		{TagProps: spec.TagProps{Name: "diagram", Description: "ER diagram generation"}},
	}
}
