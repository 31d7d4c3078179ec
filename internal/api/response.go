package api

import (
	"errors"
	"net/http"

	"networth/pkg/networth"
)

// Response represents a successful API response with unified format.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse represents an error API response with structured information.
type ErrorResponse struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	ErrorCode string `json:"error_code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// writeSuccess writes a successful response with data.
func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, Response{
		Code: 0,
		Data: data,
	})
}

// writeErrorResponse writes an error response. Structured engine errors
// carry their classification code into the body and pick the HTTP
// status; anything else keeps the caller's status.
func writeErrorResponse(w http.ResponseWriter, httpStatus int, err error) {
	response := ErrorResponse{
		Code:    httpStatus,
		Message: err.Error(),
	}

	var engineErr *networth.Error
	if errors.As(err, &engineErr) {
		response.ErrorCode = string(engineErr.Code)
		httpStatus = mapErrorCodeToHTTPStatus(engineErr.Code)
		response.Code = httpStatus
	}

	if recorder, ok := w.(interface{ SetErrorMessage(string) }); ok {
		recorder.SetErrorMessage(response.Message)
	}

	writeJSON(w, httpStatus, response)
}

// mapErrorCodeToHTTPStatus maps engine error codes to HTTP status codes.
func mapErrorCodeToHTTPStatus(code networth.ErrorCode) int {
	switch code {
	case networth.ErrCodeInvalidInput:
		return http.StatusBadRequest
	case networth.ErrCodeEmptySeries:
		return http.StatusNotFound
	case networth.ErrCodeBadSchema, networth.ErrCodeUpstreamFailure:
		return http.StatusBadGateway
	case networth.ErrCodeUnconfigured:
		return http.StatusServiceUnavailable
	case networth.ErrCodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
