// README: Handlers for recommendation, evaluation and usage endpoints.
package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tripwise/internal/modules/recommend"
)

type recommendationRequest struct {
	Query          string            `json:"query"`
	IncludeFlights *bool             `json:"include_flights"`
	Context        map[string]string `json:"context"`
}

type recommendationResponse struct {
	Recommendation *recommend.TripRecommendation `json:"recommendation"`
	Evaluation     any                           `json:"evaluation"`
}

func (s *Server) HandleCreateRecommendation(c *gin.Context) {
	var req recommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		writeError(c, http.StatusBadRequest, "query is required")
		return
	}

	includeFlights := true
	if req.IncludeFlights != nil {
		includeFlights = *req.IncludeFlights
	}

	rec, err := s.recommender.Process(c.Request.Context(), req.Query, includeFlights, req.Context)
	if err != nil {
		s.log.Error("recommendation failed", "error", err)
		writeError(c, http.StatusBadGateway, "recommendation generation failed")
		return
	}

	metrics := s.evaluator.Evaluate(c.Request.Context(), rec)
	writeJSON(c, http.StatusOK, recommendationResponse{
		Recommendation: rec,
		Evaluation:     metrics,
	})
}

type evaluationRequest struct {
	Recommendation json.RawMessage `json:"recommendation"`
}

func (s *Server) HandleEvaluate(c *gin.Context) {
	var req evaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if len(req.Recommendation) == 0 {
		writeError(c, http.StatusBadRequest, "recommendation is required")
		return
	}

	rec, err := recommend.ParseRecommendation(req.Recommendation)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid recommendation payload")
		return
	}

	metrics := s.evaluator.Evaluate(c.Request.Context(), rec)
	writeJSON(c, http.StatusOK, metrics)
}

func (s *Server) HandleUsageMetrics(c *gin.Context) {
	writeJSON(c, http.StatusOK, s.recorder.ExportData())
}

func (s *Server) HandleHealth(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"status": "healthy"})
}
