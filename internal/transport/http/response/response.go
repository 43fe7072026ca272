package response

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// FieldError is one entry of a validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

type APIResponse struct {
	Success bool         `json:"success"`
	Data    interface{}  `json:"data,omitempty"`
	Error   string       `json:"error,omitempty"`
	Details []FieldError `json:"details,omitempty"`
}

// AppError carries an HTTP status alongside the message so the terminal
// error handler can answer with something better than a blanket 500.
type AppError struct {
	Status  int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(status int, message string) *AppError {
	return &AppError{Status: status, Message: message}
}

func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    data,
	})
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   message,
	})
}

// ValidationFailed answers 400 with the per-field details plus a
// concatenated human-readable summary.
func ValidationFailed(c *gin.Context, details []FieldError) {
	messages := make([]string, 0, len(details))
	for _, d := range details {
		messages = append(messages, d.Message)
	}
	c.JSON(http.StatusBadRequest, APIResponse{
		Success: false,
		Error:   strings.Join(messages, "; "),
		Details: details,
	})
}
