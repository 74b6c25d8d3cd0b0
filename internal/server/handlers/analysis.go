// internal/server/handlers/analysis.go

package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"tweetpulse/internal/domain/sentiment"
)

// AnalysisHandler handles sentiment analysis HTTP requests
type AnalysisHandler struct {
	service sentiment.Service
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(service sentiment.Service) *AnalysisHandler {
	return &AnalysisHandler{
		service: service,
	}
}

// analyzeRequest is the POST /analyze request body
type analyzeRequest struct {
	Topic string `json:"topic"`
	Count int    `json:"count"`
}

// Analyze runs a sentiment analysis for the requested topic
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	result, err := h.service.Analyze(r.Context(), req.Topic, req.Count)
	if err != nil {
		var rateErr *sentiment.RateLimitError
		switch {
		case errors.Is(err, sentiment.ErrInvalidInput):
			respondWithError(w, http.StatusBadRequest, err.Error(), nil)
		case errors.As(err, &rateErr):
			respondWithError(w, http.StatusTooManyRequests, rateErr.Error(), nil)
		default:
			respondWithError(w, http.StatusInternalServerError, "Failed to analyze tweets. Please try again.", err)
		}
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

// RecentAnalyses returns the most recently completed analyses
func (h *AnalysisHandler) RecentAnalyses(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			respondWithError(w, http.StatusBadRequest, "Invalid limit", nil)
			return
		}
		limit = parsed
	}

	analyses, err := h.service.RecentAnalyses(r.Context(), limit)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to get analyses", err)
		return
	}

	respondWithJSON(w, http.StatusOK, analyses)
}

// Helper for JSON responses
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Failed to marshal response"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// Helper for error responses
func respondWithError(w http.ResponseWriter, code int, message string, err error) {
	response := map[string]string{"error": message}

	if err != nil && code >= 500 {
		log.Printf("HTTP %d: %s: %v", code, message, err)
	}

	jsonResponse, _ := json.Marshal(response)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(jsonResponse)
}
