package ai

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ethanbaker/lineramind/pkg/entry"
	"github.com/ethanbaker/lineramind/pkg/sdk"
	"github.com/gin-gonic/gin"
)

type handler struct {
	svc *Service
}

// postAsk handles POST requests to answer a question
func (h *handler) postAsk(c *gin.Context) {
	var req sdk.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "Could not parse request body", err).AsGinResponse())
		return
	}

	resp, err := h.svc.Ask(c.Request.Context(), &req)
	switch {
	case errors.Is(err, ErrEmptyQuestion):
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "Question cannot be empty", err).AsGinResponse())
		return
	case errors.Is(err, ErrAnswerFailed):
		c.JSON(sdk.NewErrorResponse(http.StatusBadGateway, "Failed to generate answer", err).AsGinResponse())
		return
	case err != nil:
		c.JSON(sdk.NewErrorResponse(http.StatusInternalServerError, "Failed to commit answer", err).AsGinResponse())
		return
	}

	c.JSON(sdk.NewSuccessResponse("Answer committed successfully", resp).AsGinResponse())
}

// getEntry handles GET requests to read a committed entry by numeric id
func (h *handler) getEntry(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "Invalid entry id", c.Param("id")).AsGinResponse())
		return
	}

	e, err := h.svc.GetEntry(c.Request.Context(), id)
	switch {
	case errors.Is(err, entry.ErrNotFound):
		c.JSON(sdk.NewErrorResponse(http.StatusNotFound, "Entry not found", err).AsGinResponse())
		return
	case err != nil:
		c.JSON(sdk.NewErrorResponse(http.StatusInternalServerError, "Failed to read entry", err).AsGinResponse())
		return
	}

	c.JSON(sdk.NewSuccessResponse("Entry retrieved successfully", e).AsGinResponse())
}
