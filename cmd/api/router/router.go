package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"jessster/cmd/api/handlers"
	"jessster/cmd/api/middleware"
	"jessster/cmd/api/services"
	_ "jessster/docs"
	"jessster/gateway"
)

func New(gw *gateway.Client) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestTrace())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	{
		contentSvc := services.NewContentService(gw)
		api.GET("/posts", handlers.ListPostsHandler(contentSvc))
		api.GET("/categories", handlers.ListCategoriesHandler(contentSvc))
		api.GET("/videos", handlers.ListVideosHandler(contentSvc))
		api.GET("/search", handlers.SearchHandler(contentSvc))
		api.GET("/home", handlers.HomeHandler(contentSvc))
		api.GET("/posts/:slug/comments", handlers.ListCommentsHandler(contentSvc))
		api.POST("/posts/:slug/comments", handlers.AddCommentHandler(contentSvc))
		api.POST("/posts/:slug/like", handlers.ToggleLikeHandler(contentSvc))
		api.GET("/liked", handlers.ListLikedPostsHandler(contentSvc))

		accountSvc := services.NewAccountService(gw)
		auth := api.Group("/auth")
		auth.POST("/login", handlers.LoginHandler(accountSvc))
		auth.POST("/register", handlers.RegisterHandler(accountSvc))
		auth.POST("/google", handlers.GoogleTokenHandler(accountSvc))
		auth.POST("/apple", handlers.AppleTokenHandler(accountSvc))
		auth.POST("/logout", handlers.LogoutHandler(accountSvc))
		auth.GET("/session", handlers.SessionHandler(accountSvc))

		api.GET("/profile", handlers.GetProfileHandler(accountSvc))
		api.PUT("/profile", handlers.UpdateProfileHandler(accountSvc))
		api.DELETE("/profile", handlers.DeleteProfileHandler(accountSvc))
	}

	return r
}

// WithCORS wraps h so browsers on origins may call the facade.
func WithCORS(h http.Handler, origins []string) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Origin", "Content-Type", "Accept", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id", "X-Span-Id"},
		MaxAge:         12 * 3600,
	}).Handler(h)
}
