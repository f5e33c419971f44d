package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coasterdudebob/wwj/config"
	"github.com/coasterdudebob/wwj/middleware"
	"github.com/coasterdudebob/wwj/services"
)

// Me returns the current user's profile
func Me(c *gin.Context) {
	user := middleware.CurrentUser(c)

	profile, err := services.GetProfile(c.Request.Context(), config.DB, user.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
