package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coasterdudebob/wwj/config"
	"github.com/coasterdudebob/wwj/middleware"
	"github.com/coasterdudebob/wwj/services"
)

// ListSessions returns the current user's sessions, newest first
func ListSessions(c *gin.Context) {
	user := middleware.CurrentUser(c)

	sessions, err := services.ListSessions(c.Request.Context(), config.DB, user.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newSessionResponses(sessions))
}

// CreateSession starts a new session owned by the current user
func CreateSession(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var input services.SessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := services.StartSession(c.Request.Context(), config.DB, user.ID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newSessionResponse(*session))
}

// GetSession returns one of the current user's sessions with its bets
func GetSession(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	session, err := services.GetSession(c.Request.Context(), config.DB, user.ID, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newSessionResponse(*session))
}

// EndSession closes one of the current user's sessions
func EndSession(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	session, err := services.EndSession(c.Request.Context(), config.DB, user.ID, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newSessionResponse(*session))
}

// ActiveSession returns the current user's active session. When there is
// none the 404 body carries create=true so clients know to start one.
func ActiveSession(c *gin.Context) {
	user := middleware.CurrentUser(c)

	session, err := services.ActiveSession(c.Request.Context(), config.DB, user.ID)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "No active session", "create": true})
		return
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newSessionResponse(*session))
}

// DeleteSession removes one of the current user's sessions and its bets
func DeleteSession(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := services.DeleteSession(c.Request.Context(), config.DB, user.ID, id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
