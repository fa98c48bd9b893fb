package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/pepiapp/citizen_registry_microservice/internal/config"
	"github.com/pepiapp/citizen_registry_microservice/internal/core/ports"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	config *config.HTTP,
	tokenService ports.TokenService,
	userRepo ports.UserRepository,
	logger ports.LoggerPort,
	authHandler *AuthHandler,
	citizenHandler *CitizenHandler,
) (*Router, error) {
	if config.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	// CORS
	ginConfig := cors.DefaultConfig()
	allowedOrigins := config.AllowedOrigins
	originsList := strings.Split(allowedOrigins, ",")
	ginConfig.AllowOrigins = originsList

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), cors.New(ginConfig))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	auth := router.Group("/api/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)

		authed := auth.Group("")
		authed.Use(AuthMiddleware(tokenService, userRepo, logger))
		{
			authed.GET("/me", authHandler.Me)
			authed.POST("/verify", authHandler.Verify)
		}
	}

	citizens := router.Group("/api/citizens")
	{
		// Public search: both anonymous and logged-in callers may query.
		citizens.GET("/lookup/:passportNumber",
			OptionalAuthMiddleware(tokenService, userRepo, logger),
			citizenHandler.Lookup,
		)

		managed := citizens.Group("")
		managed.Use(AuthMiddleware(tokenService, userRepo, logger), EmployeeMiddleware())
		{
			managed.GET("", citizenHandler.List)
			managed.POST("", citizenHandler.Create)
			managed.GET("/:id", citizenHandler.Get)
			managed.PUT("/:id", citizenHandler.Update)
			managed.DELETE("/:id", citizenHandler.Delete)
		}
	}

	return &Router{
		Engine: router,
	}, nil
}

// Starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
