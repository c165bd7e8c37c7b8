package ai

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the routes for the ai module. Asking is throttled
// by limit when it is non-nil.
func RegisterRoutes(g *gin.RouterGroup, svc *Service, limit gin.HandlerFunc) {
	h := &handler{svc: svc}

	group := g.Group("/ai")

	ask := []gin.HandlerFunc{h.postAsk}
	if limit != nil {
		ask = append([]gin.HandlerFunc{limit}, ask...)
	}
	group.POST("/ask", ask...)           // Answer a question and commit it
	group.GET("/verify/:id", h.getEntry) // Read a committed entry by id
}
