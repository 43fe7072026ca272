package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"learn-with-jiji/internal/bootstrap"
	"learn-with-jiji/internal/transport/http/handler"
	"learn-with-jiji/internal/transport/http/middleware"
	"learn-with-jiji/internal/transport/http/response"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	production := app.Config.Production()

	router := gin.New()
	router.Use(
		middleware.RequestLogger(app.Log),
		gin.CustomRecovery(middleware.Recovery(app.Log, production)),
		middleware.ErrorHandler(app.Log, production),
	)

	healthHandler := handler.NewHealthHandler(app)
	router.GET("/health", healthHandler.Check)

	askHandler := handler.NewAskHandler(app.Search, app.QueryLog)
	router.POST("/ask-jiji",
		middleware.Auth(app.Config.Auth.JWTSecret, app.Avail.Auth),
		middleware.ValidateAsk(),
		askHandler.Ask,
	)

	router.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "route not found")
	})

	return router
}
