package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/coasterdudebob/wwj/models"
	"github.com/coasterdudebob/wwj/services"
	"github.com/coasterdudebob/wwj/utils/logger"
)

// betResponse is a bet plus its derived net result.
type betResponse struct {
	models.Bet
	NetResult decimal.Decimal `json:"net_result"`
}

// sessionResponse is a session plus its derived money figures, none of
// which are ever persisted.
type sessionResponse struct {
	models.BettingSession
	Bets          []betResponse   `json:"bets,omitempty"`
	TotalWagered  decimal.Decimal `json:"total_wagered"`
	TotalWinnings decimal.Decimal `json:"total_winnings"`
	NetProfit     decimal.Decimal `json:"net_profit"`
}

func newBetResponse(b models.Bet) betResponse {
	return betResponse{Bet: b, NetResult: b.NetResult()}
}

func newSessionResponse(s models.BettingSession) sessionResponse {
	resp := sessionResponse{
		BettingSession: s,
		TotalWagered:   s.TotalWagered(),
		TotalWinnings:  s.TotalWinnings(),
		NetProfit:      s.NetProfit(),
	}
	for _, b := range s.Bets {
		resp.Bets = append(resp.Bets, newBetResponse(b))
	}
	return resp
}

func newSessionResponses(sessions []models.BettingSession) []sessionResponse {
	resp := make([]sessionResponse, 0, len(sessions))
	for _, s := range sessions {
		resp = append(resp, newSessionResponse(s))
	}
	return resp
}

// respondServiceError maps service-layer errors onto HTTP statuses.
func respondServiceError(c *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": verr.Fields})
	case errors.Is(err, services.ErrCasinoInUse):
		c.JSON(http.StatusConflict, gin.H{"error": "Casino has recorded sessions"})
	case errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Record was modified concurrently, reload and retry"})
	default:
		logger.Errorf("unhandled service error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
	}
}
