package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/coasterdudebob/wwj/config"
	"github.com/coasterdudebob/wwj/middleware"
	"github.com/coasterdudebob/wwj/routes"
)

// setupRouter initializes Gin routes and middleware
func setupRouter(cfg config.Config, identity middleware.Identity) *gin.Engine {
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup REST routes
	routes.SetupRoutes(r, identity)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now()})
	})

	return r
}

func main() {
	// Load env variables
	cfg := config.Load()

	// Connect to database
	db := config.SetupDatabase(cfg.DatabaseURL)

	// Tokens are resolved against the users table
	identity := &middleware.TokenStore{DB: db}

	// Setup Gin router
	router := setupRouter(cfg, identity)

	// Start server
	log.Printf("🎲 WagerWise journal server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("[FATAL] Failed to start server: %v", err)
	}
}
