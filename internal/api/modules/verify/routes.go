package verify_module

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the routes for the verify module
func RegisterRoutes(g *gin.RouterGroup, svc *Service) {
	h := &handler{svc: svc}

	group := g.Group("/verify")
	group.GET("", h.getView)              // Resolve ?id=<proof or number> into a verified view
	group.GET("/:id/report", h.getReport) // Download the PDF report of a verified entry
}
