package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/inkwellhq/inkwell/internal/auth"
	"github.com/inkwellhq/inkwell/internal/cache"
	"github.com/inkwellhq/inkwell/internal/db"
	"github.com/inkwellhq/inkwell/pkg/logging"
)

// Router sets up the REST routes
type Router struct {
	db     *db.DB
	cache  *cache.Cache
	auth   *auth.Service
	logger *zap.Logger
}

// NewRouter creates a new API router
func NewRouter(database *db.DB, redisCache *cache.Cache, authService *auth.Service) *Router {
	return &Router{
		db:     database,
		cache:  redisCache,
		auth:   authService,
		logger: logging.WithComponent("api-router"),
	}
}

// SetupRoutes registers all routes on the gin engine
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check endpoints
	engine.GET("/health", r.healthHandler)
	engine.GET("/.well-known/healthcheck.json", r.healthHandler)

	// Marketing landing page
	engine.StaticFile("/", "web/static/index.html")
	engine.Static("/assets", "web/static")

	repo := db.NewRepository(r.db.DB)
	userHandler := NewUserHandler(db.NewUserRepository(repo), r.auth)
	categoryHandler := NewCategoryHandler(db.NewCategoryRepository(repo))
	postHandler := NewPostHandler(db.NewPostRepository(repo), r.cache)
	commentHandler := NewCommentHandler(db.NewCommentRepository(repo))
	likeHandler := NewLikeHandler(db.NewLikeRepository(repo))

	api := engine.Group("/api")

	// Public routes
	api.POST("/users/register", userHandler.Register)
	api.POST("/users/login", userHandler.Login)
	api.GET("/categories", categoryHandler.List)
	api.GET("/posts", postHandler.List)
	api.GET("/posts/:id", postHandler.Get)
	api.GET("/posts/:id/comments", commentHandler.ListByPost)

	// Protected routes
	authorized := api.Group("")
	authorized.Use(RequireAuth(r.auth))
	{
		authorized.POST("/categories", categoryHandler.Create)
		authorized.POST("/posts", postHandler.Create)
		authorized.PUT("/posts/:id", postHandler.Update)
		authorized.DELETE("/posts/:id", postHandler.Delete)
		authorized.POST("/comments", commentHandler.Create)
		authorized.POST("/likes", likeHandler.Create)
		authorized.DELETE("/likes", likeHandler.Delete)
	}
}

// healthHandler handles health check requests
func (r *Router) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"service": "inkwell-api",
	})
}
