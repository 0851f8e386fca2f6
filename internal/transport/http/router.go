package httptransport

import (
	"log/slog"

	"github.com/StudenikinNikolay/filecloud/internal/auth"
	"github.com/StudenikinNikolay/filecloud/internal/transport/http/handler"
	"github.com/StudenikinNikolay/filecloud/internal/transport/http/middleware"
	"github.com/gin-gonic/gin"

	sloggin "github.com/samber/slog-gin"
)

func NewRouter(logger *slog.Logger, authHandler *handler.AuthHandler, fileHandler *handler.FileHandler, tokens *auth.TokenService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Security())
	r.Use(sloggin.New(logger))
	r.Use(middleware.Metrics())

	// Login issues the token; logout only decodes it and swallows its own
	// failures. Neither goes through the gate.
	r.POST("/login", authHandler.Login)
	r.POST("/logout", authHandler.Logout)

	// Everything else requires a valid session token.
	protected := r.Group("", middleware.Auth(tokens))
	protected.POST("/file", fileHandler.Upload)
	protected.GET("/file", fileHandler.Download)
	protected.PUT("/file", fileHandler.Rename)
	protected.DELETE("/file", fileHandler.Delete)
	protected.GET("/list", fileHandler.List)

	return r
}
