// Package api implements the HTTP API for the page insights service.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jonesrussell/pageinsights/internal/domain"
	"github.com/jonesrussell/pageinsights/internal/logger"
)

// requestIDHeader carries the per-request correlation ID.
const requestIDHeader = "X-Request-ID"

// InsightsService defines the operations the HTTP surface exposes.
type InsightsService interface {
	GetPage(ctx context.Context, pageID string) (*domain.Page, error)
	ListPages(ctx context.Context, filter domain.PageFilter, page, pageSize int) (*domain.Paged[domain.Page], error)
	ListPosts(ctx context.Context, pageID string, page, pageSize int) (*domain.Paged[domain.Post], error)
	ListEmployees(ctx context.Context, pageID string, page, pageSize int) (*domain.Paged[domain.Employee], error)
	FollowerSummary(ctx context.Context, pageID string) (*domain.FollowerSummary, error)
	CreateDemoPage(ctx context.Context, pageID string) (bool, error)
}

// SetupRouter creates and configures the Gin router with all routes.
func SetupRouter(log logger.Interface, svc InsightsService, corsOrigins []string) *gin.Engine {
	// Disable Gin's default logging
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware(corsOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	handler := NewPagesHandler(svc, log)

	apiGroup := router.Group("/api")
	apiGroup.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Page Insights API",
			"version": "1.0.0",
		})
	})
	apiGroup.GET("/pages", handler.ListPages)
	apiGroup.GET("/pages/:page_id", handler.GetPage)
	apiGroup.GET("/pages/:page_id/posts", handler.ListPosts)
	apiGroup.GET("/pages/:page_id/employees", handler.ListEmployees)
	apiGroup.GET("/pages/:page_id/followers", handler.GetFollowers)
	apiGroup.POST("/pages/demo/:page_id", handler.CreateDemoPage)

	return router
}

// requestIDMiddleware assigns every request a correlation ID, reusing the
// caller's when present.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Writer.Header().Set(requestIDHeader, requestID)
		c.Next()
	}
}

// loggingMiddleware creates a middleware that logs HTTP requests.
func loggingMiddleware(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		log.Info("HTTP Request",
			"method", c.Request.Method,
			"path", path,
			"query", query,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}

// corsMiddleware adds CORS headers for the configured origins. An empty
// configuration allows all origins. The Allow-Origin header admits one
// value, so the request's Origin is echoed back when it is allowed.
func corsMiddleware(origins []string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(origins))
	for _, origin := range origins {
		allowed[origin] = true
	}

	return func(c *gin.Context) {
		switch origin := c.GetHeader("Origin"); {
		case len(allowed) == 0:
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		case allowed[origin]:
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Add("Vary", "Origin")
		}
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers",
			"Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, "+
				"Cache-Control, X-Requested-With, "+requestIDHeader)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
