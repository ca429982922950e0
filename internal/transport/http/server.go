package http

import (
	"time"

	"github.com/gin-gonic/gin"

	appsvc "docvault/internal/app"
	"docvault/internal/bootstrap"
	"docvault/internal/cache"
	"docvault/internal/platform/rabbitmq"
	"docvault/internal/repository"
	"docvault/internal/transport/http/handler"
	"docvault/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	healthHandler := handler.NewHealthHandler(app)
	router.GET("/healthz", healthHandler.Check)

	userRepo := repository.NewUserRepository(app.MySQL)
	docRepo := repository.NewDocumentRepository(app.MySQL)
	qnaRepo := repository.NewQnARepository(app.MySQL)

	publisher := rabbitmq.NewAuditPublisher(app.MQConn, app.Config.RabbitMQ.AuditQueue)
	historyCache := cache.NewQnAHistoryCache(
		app.Redis,
		time.Duration(app.Config.Redis.QnAHistoryTTLSeconds)*time.Second,
		time.Duration(app.Config.Redis.QnADirtyTTLSeconds)*time.Second,
	)

	authService := appsvc.NewAuthService(
		userRepo,
		app.Config.Auth.JWTSecret,
		time.Duration(app.Config.Auth.JWTExpireMinute)*time.Minute,
	)
	docService := appsvc.NewDocumentService(docRepo, app.Blobs, publisher)
	qnaService := appsvc.NewQnAService(qnaRepo, docRepo, historyCache, publisher)

	authHandler := handler.NewAuthHandler(authService)
	docHandler := handler.NewDocumentHandler(authService, docService, app.Config.MaxUploadBytes())
	qnaHandler := handler.NewQnAHandler(authService, qnaService)

	authJWT := middleware.AuthJWT(app.Config.Auth.JWTSecret)

	router.POST("/signup", authHandler.Signup)
	router.POST("/signin", authHandler.Signin)
	router.GET("/me", authJWT, authHandler.Me)
	router.POST("/upload", authJWT, docHandler.Upload)
	router.GET("/documents", authJWT, docHandler.List)
	router.POST("/ask", authJWT, qnaHandler.Ask)
	router.GET("/documents/:document_id/qna", authJWT, qnaHandler.History)

	return router
}
