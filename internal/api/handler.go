package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Shoply-rag-poc-v1/server/internal/agent/model"
	errx "github.com/Shoply-rag-poc-v1/server/internal/core/error"
	"github.com/Shoply-rag-poc-v1/server/internal/retrieval"
	logx "github.com/Shoply-rag-poc-v1/server/pkg/logger"
)

// AgentRunner drives the full routed agent loop for one question.
type AgentRunner interface {
	Run(ctx context.Context, question string) (*model.RunResult, error)
}

// CitationResolver maps citations to display records.
type CitationResolver interface {
	Resolve(ctx context.Context, refs []model.Citation) ([]model.DisplayContext, error)
}

// SearchPipeline is the single-shot retrieve-and-generate path.
type SearchPipeline interface {
	Run(ctx context.Context, question string) (*retrieval.PipelineResult, error)
}

type Handler struct {
	agent    AgentRunner
	resolver CitationResolver
	pipeline SearchPipeline
}

func NewHandler(agent AgentRunner, resolver CitationResolver, pipeline SearchPipeline) *Handler {
	return &Handler{agent: agent, resolver: resolver, pipeline: pipeline}
}

// HandleRAG runs the agent loop and resolves its citations into displayable
// product records.
func (h *Handler) HandleRAG(c *gin.Context) {
	var req RAGRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}

	result, err := h.agent.Run(c.Request.Context(), req.Query)
	if err != nil {
		h.fail(c, err)
		return
	}

	used, err := h.resolver.Resolve(c.Request.Context(), result.References)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, RAGResponse{
		RequestID:   requestIDFrom(c),
		Answer:      result.Answer,
		UsedContext: used,
	})
}

// HandleSearch runs the non-agentic pipeline: one retrieval, one grounded
// generation, citation resolution.
func (h *Handler) HandleSearch(c *gin.Context) {
	var req RAGRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}

	result, err := h.pipeline.Run(c.Request.Context(), req.Query)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, RAGResponse{
		RequestID:   requestIDFrom(c),
		Answer:      result.Answer,
		UsedContext: result.UsedContext,
	})
}

// fail maps internal errors to the wire without leaking their detail.
func (h *Handler) fail(c *gin.Context, err error) {
	logx.Error().Err(err).Str("request_id", requestIDFrom(c)).Msg("request failed")
	c.JSON(errx.StatusOf(err), gin.H{"error": errx.SystemErrorMessage})
}
