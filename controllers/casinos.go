package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/coasterdudebob/wwj/config"
	"github.com/coasterdudebob/wwj/services"
)

// defaultNearbyRadiusKm applies when the nearby search omits radiusKm.
const defaultNearbyRadiusKm = 50

// ListCasinos returns every casino ordered by name
func ListCasinos(c *gin.Context) {
	casinos, err := services.ListCasinos(c.Request.Context(), config.DB)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, casinos)
}

// CreateCasino adds a casino to the directory
func CreateCasino(c *gin.Context) {
	var input services.CasinoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	casino, err := services.CreateCasino(c.Request.Context(), config.DB, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, casino)
}

// GetCasino returns one casino with its sessions
func GetCasino(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	casino, err := services.GetCasino(c.Request.Context(), config.DB, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, casino)
}

// UpdateCasino rewrites a casino's fields. The body id must match the path.
func UpdateCasino(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req struct {
		ID uint `json:"id"`
		services.CasinoInput
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ID != id {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	casino, err := services.UpdateCasino(c.Request.Context(), config.DB, id, req.CasinoInput)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, casino)
}

// DeleteCasino removes a casino with no recorded sessions
func DeleteCasino(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := services.DeleteCasino(c.Request.Context(), config.DB, id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// NearbyCasinos returns casinos within radiusKm of a center point, sorted
// by ascending distance
func NearbyCasinos(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("latitude"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid latitude"})
		return
	}
	lon, err := strconv.ParseFloat(c.Query("longitude"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid longitude"})
		return
	}

	radius := float64(defaultNearbyRadiusKm)
	if raw := c.Query("radiusKm"); raw != "" {
		radius, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid radiusKm"})
			return
		}
	}

	nearby, err := services.NearbyCasinos(c.Request.Context(), config.DB, lat, lon, radius)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, nearby)
}

// pathID parses the :id path parameter, answering 404 for garbage so that
// probing ids and probing other users' data look the same.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return 0, false
	}
	return uint(id), true
}
