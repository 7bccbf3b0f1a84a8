package response

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"marketplace-ledger/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SuccessResponse is the standard success envelope.
type SuccessResponse struct {
	Data      interface{} `json:"data"`
	RequestID string      `json:"request_id"`
	Timestamp string      `json:"timestamp"`
}

// PageResponse wraps list results with the total row count.
type PageResponse struct {
	Items    interface{} `json:"items"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
}

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	ErrorCode  string `json:"error_code"`
	Message    string `json:"message"`
	RetryAfter int64  `json:"retry_after_seconds,omitempty"`
	RequestID  string `json:"request_id"`
	Timestamp  string `json:"timestamp"`
}

// OK sends a 200 response with data.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, SuccessResponse{
		Data:      data,
		RequestID: getRequestID(c),
		Timestamp: now(),
	})
}

// Created sends a 201 response with data.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, SuccessResponse{
		Data:      data,
		RequestID: getRequestID(c),
		Timestamp: now(),
	})
}

// Page sends a 200 response carrying one page of a listing.
func Page(c *gin.Context, items interface{}, total int64, page, pageSize int) {
	OK(c, PageResponse{Items: items, Total: total, Page: page, PageSize: pageSize})
}

// Error sends an error response. Rate limited errors also set Retry-After.
// Anything that is not an *apperror.AppError becomes a 500.
func Error(c *gin.Context, err error) {
	appErr, ok := apperror.As(err)
	if !ok {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			ErrorCode: "SYS_000",
			Message:   "Internal server error",
			RequestID: getRequestID(c),
			Timestamp: now(),
		})
		return
	}

	body := ErrorResponse{
		ErrorCode: appErr.Code,
		Message:   appErr.Message,
		RequestID: getRequestID(c),
		Timestamp: now(),
	}
	if appErr.RetryAfter > 0 {
		secs := int64(math.Ceil(appErr.RetryAfter.Seconds()))
		body.RetryAfter = secs
		c.Header("Retry-After", strconv.FormatInt(secs, 10))
	}
	c.JSON(appErr.HTTPStatus, body)
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// getRequestID retrieves request ID from context, or generates one.
func getRequestID(c *gin.Context) string {
	if id, exists := c.Get("request_id"); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return uuid.New().String()
}
