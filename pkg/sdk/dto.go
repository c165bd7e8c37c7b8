package sdk

import (
	"net/http"

	"github.com/ethanbaker/api/pkg/api_types"
	"github.com/ethanbaker/lineramind/pkg/entry"
)

// ApiResponse represents a standard API response structure
type ApiResponse[T any] struct {
	Status  api_types.StatusType `json:"status"`          // Status message
	Code    int                  `json:"code"`            // Status code
	Message string               `json:"message"`         // Human-readable message
	Data    T                    `json:"data,omitempty"`  // Optional data field for successful responses
	Error   any                  `json:"error,omitempty"` // Optional errors field for error responses
}

// AsGinResponse converts the ApiResponse to a format suitable for Gin framework
func (r ApiResponse[T]) AsGinResponse() (int, any) {
	return r.Code, r
}

// NewSuccessResponse builds a 200 envelope around data
func NewSuccessResponse[T any](message string, data T) ApiResponse[T] {
	return ApiResponse[T]{
		Status:  api_types.StatusSuccess,
		Code:    http.StatusOK,
		Message: message,
		Data:    data,
	}
}

// NewErrorResponse builds an error envelope. Errors are reported by message,
// since most error values marshal to an empty object.
func NewErrorResponse(code int, message string, err any) ApiResponse[any] {
	if e, ok := err.(error); ok {
		err = e.Error()
	}

	status := api_types.StatusError
	if code >= 400 && code < 500 {
		status = api_types.StatusFail
	}

	return ApiResponse[any]{
		Status:  status,
		Code:    code,
		Message: message,
		Error:   err,
	}
}

/** AI Module DTOs */

// Turn is one earlier message of a conversation
type Turn struct {
	Role    string `json:"role" yaml:"role"`
	Content string `json:"content" yaml:"content"`
}

// AskRequest represents the request body for asking a question
type AskRequest struct {
	Question string `json:"question" binding:"required"`
	History  []Turn `json:"history"`
}

// AskResponse represents a committed answer
type AskResponse struct {
	Entry   *entry.Entry `json:"entry" yaml:"entry"`
	ProofID string       `json:"proof_id" yaml:"proof_id"` // linera:<chainId>:<entryId>
	Label   string       `json:"label" yaml:"label"`       // Shortened display form of the proof id
}

/** Health Module DTOs */

// HealthStatus reports the state of the simulated chain
type HealthStatus struct {
	ChainID string `json:"chain_id" yaml:"chain_id"`
	Height  int64  `json:"height" yaml:"height"`
}
