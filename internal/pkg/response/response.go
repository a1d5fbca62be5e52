package response

import (
	"time"

	"github.com/gin-gonic/gin"
)

type PaginationMeta struct {
	Page            int   `json:"page"`
	PageSize        int   `json:"pageSize"`
	Total           int64 `json:"total"`
	TotalPages      int   `json:"totalPages"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

type APIResponse struct {
	Success    bool            `json:"success"`
	Data       any             `json:"data"`
	Pagination *PaginationMeta `json:"pagination,omitempty"` // omitted for non-list responses
	Error      *ErrorDetail    `json:"error"`
	RequestID  string          `json:"requestId"`
	Timestamp  string          `json:"timestamp"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details"`
}

// Success writes data with optional pagination meta (nil for single resources).
func Success(c *gin.Context, status int, data any, meta *PaginationMeta) {
	c.JSON(status, APIResponse{
		Success:    true,
		Data:       data,
		Pagination: meta,
		RequestID:  c.GetString("X-Request-ID"),
		Timestamp:  time.Now().Format(time.RFC3339),
	})
}

func Error(c *gin.Context, status int, errCode string, message string, details any) {
	c.JSON(status, APIResponse{
		Success: false,
		Data:    nil,
		Error: &ErrorDetail{
			Code:    errCode,
			Message: message,
			Details: details,
		},
		RequestID: c.GetString("X-Request-ID"),
		Timestamp: time.Now().Format(time.RFC3339),
	})
}
