package api

import "github.com/Shoply-rag-poc-v1/server/internal/agent/model"

// RAGRequest is the body accepted by both the agent and search endpoints.
type RAGRequest struct {
	Query string `json:"query" binding:"required"`
}

// RAGResponse is the wire shape returned to the storefront client.
type RAGResponse struct {
	RequestID   string                 `json:"request_id"`
	Answer      string                 `json:"answer"`
	UsedContext []model.DisplayContext `json:"used_context"`
}
