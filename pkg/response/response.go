package response

import (
	"errors"
	"net/http"
	"time"

	"wexel-ledger/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the gin context key holding the request ID.
const RequestIDKey = "request_id"

// ReplayedHeader marks a response served for an already-applied tx hash.
const ReplayedHeader = "Idempotent-Replayed"

// SuccessResponse is the standard success envelope.
type SuccessResponse struct {
	Data      interface{} `json:"data"`
	Page      *Page       `json:"page,omitempty"`
	RequestID string      `json:"request_id"`
	Timestamp string      `json:"timestamp"`
}

// Page describes the window of a paged list.
type Page struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Count  int `json:"count"`
}

// ErrorResponse is the standard error envelope. Kind lets clients branch on
// the error class without matching individual codes.
type ErrorResponse struct {
	ErrorCode string        `json:"error_code"`
	Kind      apperror.Kind `json:"kind"`
	Message   string        `json:"message"`
	RequestID string        `json:"request_id"`
	Timestamp string        `json:"timestamp"`
}

var errInternal = &apperror.AppError{
	Code:       "SYS_000",
	Kind:       apperror.KindInternal,
	Message:    "Internal server error",
	HTTPStatus: http.StatusInternalServerError,
}

func OK(c *gin.Context, data interface{}) {
	success(c, http.StatusOK, data, nil)
}

func Created(c *gin.Context, data interface{}) {
	success(c, http.StatusCreated, data, nil)
}

// Applied answers a ledger mutation: 201 when it was applied by this request,
// 200 with the replay header when the tx hash had already been applied.
func Applied(c *gin.Context, replayed bool, data interface{}) {
	if replayed {
		c.Header(ReplayedHeader, "true")
		OK(c, data)
		return
	}
	Created(c, data)
}

// Paged sends one page of a list.
func Paged(c *gin.Context, data interface{}, limit, offset, count int) {
	success(c, http.StatusOK, data, &Page{Limit: limit, Offset: offset, Count: count})
}

// Error renders err. Anything that is not an *apperror.AppError becomes an
// opaque 500.
func Error(c *gin.Context, err error) {
	appErr := errInternal
	var target *apperror.AppError
	if errors.As(err, &target) {
		appErr = target
	}
	c.JSON(appErr.HTTPStatus, ErrorResponse{
		ErrorCode: appErr.Code,
		Kind:      appErr.Kind,
		Message:   appErr.Message,
		RequestID: requestID(c),
		Timestamp: timestamp(),
	})
}

func success(c *gin.Context, status int, data interface{}, page *Page) {
	c.JSON(status, SuccessResponse{
		Data:      data,
		Page:      page,
		RequestID: requestID(c),
		Timestamp: timestamp(),
	})
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func requestID(c *gin.Context) string {
	if id := c.GetString(RequestIDKey); id != "" {
		return id
	}
	return uuid.New().String()
}
