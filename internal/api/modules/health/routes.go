package health

import (
	"github.com/ethanbaker/lineramind/internal/chain"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the routes for the health module
func RegisterRoutes(g *gin.RouterGroup, c *chain.Chain) {
	h := &handler{chain: c}
	g.GET("/health", h.getStatus)
}
