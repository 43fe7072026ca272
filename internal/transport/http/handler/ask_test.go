package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	appsvc "learn-with-jiji/internal/app"
	"learn-with-jiji/internal/transport/http/middleware"
	"learn-with-jiji/internal/transport/http/response"
)

func askTestHandler() (*AskHandler, *logrus.Logger) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewAskHandler(
		appsvc.NewSearchService(nil, nil, "", 5, log),
		appsvc.NewQueryLogService(nil, nil, log),
	), log
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) response.APIResponse {
	t.Helper()
	var body response.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body failed: %v", err)
	}
	return body
}

func TestAskWithoutIdentityIsUnauthorized(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h, log := askTestHandler()

	router := gin.New()
	router.Use(middleware.ErrorHandler(log, false))
	// No auth middleware, so no identity ever lands in the context.
	router.POST("/ask-jiji", middleware.ValidateAsk(), h.Ask)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/ask-jiji", strings.NewReader(`{"query":"explain rag"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAskWithoutValidatedRequestIsInternalError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h, log := askTestHandler()

	router := gin.New()
	router.Use(middleware.ErrorHandler(log, false))
	// Validation middleware deliberately absent; the handler must hand a
	// typed error to the terminal handler rather than answer itself.
	router.POST("/ask-jiji", middleware.Auth("", false), h.Ask)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/ask-jiji", strings.NewReader(`{"query":"explain rag"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	body := decodeResponse(t, w)
	if body.Success {
		t.Error("expected success=false")
	}
	if !strings.Contains(body.Error, "validated request missing") {
		t.Errorf("unexpected error message: %q", body.Error)
	}
}
