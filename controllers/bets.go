package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coasterdudebob/wwj/config"
	"github.com/coasterdudebob/wwj/middleware"
	"github.com/coasterdudebob/wwj/services"
)

// CreateBet records a bet against one of the current user's sessions.
// Any timestamp in the request body is discarded; the server assigns it.
func CreateBet(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var input services.BetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bet, err := services.CreateBet(c.Request.Context(), config.DB, user.ID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newBetResponse(*bet))
}

// GetBet returns one bet scoped to the current user's sessions
func GetBet(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	bet, err := services.GetBet(c.Request.Context(), config.DB, user.ID, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newBetResponse(*bet))
}

// UpdateBet edits a bet's game type, amount, winnings and description.
// The body id must match the path; session and timestamp never change.
func UpdateBet(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req struct {
		ID uint `json:"id"`
		services.BetUpdate
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ID != id {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	bet, err := services.UpdateBet(c.Request.Context(), config.DB, user.ID, id, req.BetUpdate)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newBetResponse(*bet))
}

// DeleteBet removes a bet and reports which session it belonged to
func DeleteBet(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	sessionID, err := services.DeleteBet(c.Request.Context(), config.DB, user.ID, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session_id": sessionID})
}
