package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/er-diagram-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/er-diagram-agent/internal/diagram"
	"github.com/povarna/generative-ai-agents/er-diagram-agent/internal/llm"
	"github.com/povarna/generative-ai-agents/er-diagram-agent/internal/models"
	"github.com/rs/zerolog"
)

const welcomeMessage = "Welcome to the NL to ER Diagram API. Use the " + OpenAPIPath + " endpoint for API documentation."

// DiagramGenerator is implemented by *diagram.Generator.
type DiagramGenerator interface {
	Generate(ctx context.Context, description string) (models.DiagramResponse, error)
}

type Handler struct {
	generator DiagramGenerator
	logger    *zerolog.Logger
}

func NewHandler(generator DiagramGenerator, logger *zerolog.Logger) *Handler {
	return &Handler{
		generator: generator,
		logger:    logger,
	}
}

// POST /generate-er-diagram
// Body: DiagramRequest
// Returns: DiagramResponse
func (h *Handler) GenerateERDiagram(req *restful.Request, resp *restful.Response) {
	var diagramRequest models.DiagramRequest
	if err := req.ReadEntity(&diagramRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, fmt.Errorf("Invalid request body: %w", err), http.StatusUnprocessableEntity)
		return
	}

	ctx := req.Request.Context()
	result, err := h.generator.Generate(ctx, diagramRequest.Prompt)
	if err != nil {
		status := statusFor(err)
		h.logger.Error().Err(err).Int("status", status).Msg("Diagram generation failed")
		middleware.WriteError(resp, status, diagram.Detail(err))
		return
	}

	_ = resp.WriteHeaderAndEntity(http.StatusOK, result)
}

// Root handler GET /
func (h *Handler) Root(req *restful.Request, resp *restful.Response) {
	_ = resp.WriteHeaderAndEntity(http.StatusOK, models.WelcomeResponse{Message: welcomeMessage})
}

func statusFor(err error) int {
	var upstreamErr *llm.UpstreamError

	switch {
	case errors.Is(err, diagram.ErrEmptyPrompt):
		return http.StatusBadRequest
	case errors.Is(err, diagram.ErrServiceUnavailable), errors.As(err, &upstreamErr):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
