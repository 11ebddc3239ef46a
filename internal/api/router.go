package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter wires the HTTP surface. All business errors surface through the
// handlers; gin's recovery middleware only catches panics.
func NewRouter(h *Handler) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery(), RequestID())

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	rag := engine.Group("/rag")
	{
		rag.POST("/", h.HandleRAG)
		rag.POST("/search", h.HandleSearch)
	}

	return engine
}
