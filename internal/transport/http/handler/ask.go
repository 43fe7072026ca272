package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"learn-with-jiji/internal/answer"
	appsvc "learn-with-jiji/internal/app"
	"learn-with-jiji/internal/transport/http/middleware"
	"learn-with-jiji/internal/transport/http/response"
)

type AskHandler struct {
	search   *appsvc.SearchService
	queryLog *appsvc.QueryLogService
}

func NewAskHandler(search *appsvc.SearchService, queryLog *appsvc.QueryLogService) *AskHandler {
	return &AskHandler{
		search:   search,
		queryLog: queryLog,
	}
}

// Ask answers the learner's question: resource search plus canned answer,
// then a detached log write that the response never waits for.
func (h *AskHandler) Ask(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "identity missing from request context")
		return
	}
	req, ok := middleware.AskRequestFrom(c)
	if !ok {
		// Only reachable when the route is wired without the validation
		// middleware; let the terminal error handler answer.
		_ = c.Error(response.NewAppError(http.StatusInternalServerError, "validated request missing from context"))
		return
	}

	resources := h.search.Search(c.Request.Context(), req.Query)
	answerText := answer.Generate(req.Query)

	resourceIDs := make([]string, 0, len(resources))
	for _, r := range resources {
		resourceIDs = append(resourceIDs, r.ID)
	}

	userID := ""
	if !identity.Mock {
		userID = identity.ID
	}
	h.queryLog.Record(userID, req.Query, answerText, resourceIDs)

	response.OK(c, gin.H{
		"answer":    answerText,
		"resources": resources,
	})
}
