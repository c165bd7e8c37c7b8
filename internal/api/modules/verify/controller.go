package verify_module

import (
	"fmt"
	"log"
	"net/http"

	"github.com/ethanbaker/lineramind/pkg/report"
	"github.com/ethanbaker/lineramind/pkg/sdk"
	"github.com/ethanbaker/lineramind/pkg/verify"
	"github.com/gin-gonic/gin"
)

type handler struct {
	svc *Service
}

// resolve parses and resolves raw, writing an error response and returning
// false unless the entry was found
func (h *handler) resolve(c *gin.Context, raw string) (verify.Result, bool) {
	res, err := h.svc.Resolve(c.Request.Context(), raw)
	if err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "Invalid proof identifier", err).AsGinResponse())
		return res, false
	}

	switch res.State {
	case verify.Found:
		return res, true
	case verify.NotFound:
		c.JSON(sdk.NewErrorResponse(http.StatusNotFound, "Entry not found", res.Err).AsGinResponse())
	default:
		c.JSON(sdk.NewErrorResponse(http.StatusBadGateway, "Could not reach the record store", res.Err).AsGinResponse())
	}
	return res, false
}

// getView handles GET requests to verify a proof identifier
func (h *handler) getView(c *gin.Context) {
	raw, ok := c.GetQuery("id")
	if !ok {
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "No proof identifier supplied", "missing query parameter 'id'").AsGinResponse())
		return
	}

	res, ok := h.resolve(c, raw)
	if !ok {
		return
	}

	view, err := h.svc.View(res)
	if err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusInternalServerError, "Failed to build view", err).AsGinResponse())
		return
	}

	c.JSON(sdk.NewSuccessResponse("Entry verified successfully", view).AsGinResponse())
}

// getReport handles GET requests to download the PDF report of an entry
func (h *handler) getReport(c *gin.Context) {
	res, ok := h.resolve(c, c.Param("id"))
	if !ok {
		return
	}

	pdf, err := h.svc.Report(res)
	if err != nil {
		log.Printf("[VERIFY]: Failed to render report for entry %d: %v\n", res.ID, err)
		c.JSON(sdk.NewErrorResponse(http.StatusInternalServerError, "Failed to render report", err).AsGinResponse())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.Filename(res.ID)))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
