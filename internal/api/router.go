package api

import (
	"context"
	"net/http"
	"time"

	"github.com/blog-content-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// HealthFunc probes a dependency, typically the database connection.
type HealthFunc func(ctx context.Context) error

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, log zerolog.Logger, health HealthFunc) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	// Handlers
	authorHandler := NewAuthorHandler(services, log)
	postHandler := NewPostHandler(services, log)

	router.GET("/", index)
	router.GET("/health", healthCheck(health))
	router.GET("/metrics", metricsHandler(services))

	authors := router.Group("/authors")
	{
		authors.GET("", authorHandler.ListAuthors)
		authors.POST("", authorHandler.CreateAuthor)
		authors.GET("/:id", authorHandler.GetAuthor)
	}

	posts := router.Group("/posts")
	{
		posts.GET("", postHandler.ListPosts)
		posts.POST("", postHandler.CreatePost)
		posts.GET("/:id", postHandler.GetPost)
	}

	return router
}

// index returns the service banner
func index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "blog-content-api",
		"message": "Validated Authors & Posts API",
	})
}

// healthCheck returns the health status, probing the database when wired
func healthCheck(health HealthFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "healthy"
		code := http.StatusOK
		if health != nil {
			if err := health(c.Request.Context()); err != nil {
				status = "unhealthy"
				code = http.StatusServiceUnavailable
			}
		}
		c.JSON(code, gin.H{
			"status":    status,
			"timestamp": time.Now().Format(time.RFC3339),
			"service":   "blog-content-api",
		})
	}
}

// metricsHandler returns entity counts
func metricsHandler(services *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		authorsCount, _ := services.Author.Count(ctx)
		postsCount, _ := services.Post.Count(ctx)

		c.JSON(http.StatusOK, gin.H{
			"database": gin.H{
				"authors": authorsCount,
				"posts":   postsCount,
			},
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
