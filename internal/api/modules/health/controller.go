package health

import (
	"github.com/ethanbaker/lineramind/internal/chain"
	"github.com/ethanbaker/lineramind/pkg/sdk"
	"github.com/gin-gonic/gin"
)

type handler struct {
	chain *chain.Chain
}

// Return status of the API and the simulated chain
func (h *handler) getStatus(c *gin.Context) {
	status := sdk.HealthStatus{}
	if h.chain != nil {
		status.ChainID = h.chain.ID()
		status.Height = h.chain.Height()
	}

	c.JSON(sdk.NewSuccessResponse("OK", status).AsGinResponse())
}
