package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/coasterdudebob/wwj/controllers"
	"github.com/coasterdudebob/wwj/middleware"
)

func SetupRoutes(r *gin.Engine, identity middleware.Identity) {
	api := r.Group("/api")
	api.Use(middleware.Auth(identity))

	// ----------------------
	// Casino routes
	// ----------------------
	api.GET("/casinos", controllers.ListCasinos)          // List casinos by name
	api.POST("/casinos", controllers.CreateCasino)        // Add a casino
	api.GET("/casinos/nearby", controllers.NearbyCasinos) // Casinos within a radius
	api.GET("/casinos/:id", controllers.GetCasino)        // Casino with its sessions
	api.PUT("/casinos/:id", controllers.UpdateCasino)     // Edit a casino
	api.DELETE("/casinos/:id", controllers.DeleteCasino)  // Remove an unused casino

	// ----------------------
	// Session routes
	// ----------------------
	api.GET("/sessions", controllers.ListSessions)         // Current user's sessions
	api.POST("/sessions", controllers.CreateSession)       // Start a session
	api.GET("/sessions/active", controllers.ActiveSession) // Active session or create signal
	api.GET("/sessions/:id", controllers.GetSession)       // Session details with bets
	api.POST("/sessions/:id/end", controllers.EndSession)  // Close a session
	api.DELETE("/sessions/:id", controllers.DeleteSession) // Remove a session and its bets

	// ----------------------
	// Bet routes
	// ----------------------
	api.POST("/bets", controllers.CreateBet)       // Record a bet
	api.GET("/bets/:id", controllers.GetBet)       // Bet details
	api.PUT("/bets/:id", controllers.UpdateBet)    // Edit a bet
	api.DELETE("/bets/:id", controllers.DeleteBet) // Remove a bet

	// ----------------------
	// User routes
	// ----------------------
	api.GET("/users/me", controllers.Me) // Current user's profile
}
