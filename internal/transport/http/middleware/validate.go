package middleware

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"learn-with-jiji/internal/transport/http/response"
)

const ContextAskRequestKey = "ask_request"

const maxQueryLength = 1000

type AskRequest struct {
	Query string `json:"query" binding:"required"`
}

// ValidateAsk parses and normalizes the request body before the handler
// runs. On failure it answers 400 with per-field details and never calls the
// next stage; on success the trimmed request is stored in the context.
func ValidateAsk() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AskRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.ValidationFailed(c, bindingDetails(err))
			c.Abort()
			return
		}

		req.Query = strings.TrimSpace(req.Query)

		var details []response.FieldError
		switch {
		case req.Query == "":
			details = append(details, response.FieldError{
				Field:   "query",
				Message: "query must not be empty or whitespace only",
				Code:    "empty",
			})
		case utf8.RuneCountInString(req.Query) > maxQueryLength:
			details = append(details, response.FieldError{
				Field:   "query",
				Message: "query must be at most 1000 characters",
				Code:    "too_long",
			})
		}
		if len(details) > 0 {
			response.ValidationFailed(c, details)
			c.Abort()
			return
		}

		c.Set(ContextAskRequestKey, req)
		c.Next()
	}
}

func bindingDetails(err error) []response.FieldError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]response.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			field := strings.ToLower(fe.Field())
			message := field + " failed validation on the '" + fe.Tag() + "' rule"
			if fe.Tag() == "required" {
				message = field + " is required"
			}
			details = append(details, response.FieldError{
				Field:   field,
				Message: message,
				Code:    fe.Tag(),
			})
		}
		return details
	}
	return []response.FieldError{{
		Field:   "body",
		Message: "request body must be valid JSON",
		Code:    "invalid_json",
	}}
}

// AskRequestFrom pulls the validated request out of the gin context.
func AskRequestFrom(c *gin.Context) (AskRequest, bool) {
	value, exists := c.Get(ContextAskRequestKey)
	if !exists {
		return AskRequest{}, false
	}
	req, ok := value.(AskRequest)
	return req, ok
}
