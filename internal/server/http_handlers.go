package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"resumetric/internal/ai"
	"resumetric/internal/config"
)

// getHealthCheckTimeout returns the configured health check timeout
func (s *Server) getHealthCheckTimeout() time.Duration {
	return s.AppConfig.Observability.HealthCheck.Timeout
}

// healthHandler provides a health check endpoint covering the analysis
// engine and, when configured, the AI model status
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := map[string]any{
		"status":  "healthy",
		"service": "resumetric",
		"version": s.Version,
	}

	// The deterministic engine has no external dependencies; report its
	// effective tunables so operators can confirm live reloads took effect.
	response["engine"] = s.engineStatus()

	overallHealthy := true

	// AI status only matters when a key is configured; the analyze endpoint
	// stays fully functional without one.
	if s.AppConfig.HasAIKey() {
		aiStatus := s.checkAIModelsHealth()
		response["ai_models"] = aiStatus

		circuitBreakerStatus := s.checkCircuitBreakerHealth()
		response["circuit_breakers"] = circuitBreakerStatus

		for _, modelStatus := range aiStatus {
			if modelInfo, ok := modelStatus.(map[string]any); ok {
				if available, exists := modelInfo["available"]; exists {
					if avail, ok := available.(bool); ok && !avail {
						overallHealthy = false
						break
					}
				}
			}
		}
	} else {
		response["ai_models"] = map[string]any{
			"configured": false,
			"message":    "No AI key configured; deterministic analysis only",
		}
	}

	if !overallHealthy {
		response["status"] = "degraded"
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		log.Printf("Failed to encode health response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// engineStatus reports the current analysis tunables and watcher state
func (s *Server) engineStatus() map[string]any {
	status := map[string]any{
		"healthy": true,
	}
	if eng := s.currentEngine(); eng != nil {
		tun := eng.Tunables()
		status["tunables"] = map[string]any{
			"min_words":          tun.MinWords,
			"max_words":          tun.MaxWords,
			"top_suggestions":    tun.TopSuggestions,
			"industry_threshold": tun.IndustryThreshold,
		}
	} else {
		status["healthy"] = false
		status["error"] = "engine not initialized"
	}

	if s.tunablesWatcher != nil {
		status["tunables_watcher"] = map[string]any{
			"enabled": true,
			"running": s.tunablesWatcher.IsRunning(),
			"file":    s.AppConfig.Analysis.TunablesFile,
		}
	} else {
		status["tunables_watcher"] = map[string]any{
			"enabled": false,
		}
	}

	return status
}

// checkAIModelsHealth checks the health of the AI models used by each operation
func (s *Server) checkAIModelsHealth() map[string]any {
	// Use configurable health check timeout
	timeout := s.getHealthCheckTimeout()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	aiStatus := make(map[string]any)

	suggestConfig := s.AppConfig.GetSuggestConfig()
	if suggestService, err := ai.NewService(&suggestConfig, config.OperationSuggest, s.Logger); err == nil {
		aiStatus["suggest"] = suggestService.GetModelInfo(ctx)
	} else {
		aiStatus["suggest"] = map[string]any{
			"available": false,
			"error":     fmt.Sprintf("Failed to create suggest service: %v", err),
		}
	}

	realtimeConfig := s.AppConfig.GetRealtimeConfig()
	if realtimeService, err := ai.NewService(&realtimeConfig, config.OperationRealtime, s.Logger); err == nil {
		aiStatus["realtime"] = realtimeService.GetModelInfo(ctx)
	} else {
		aiStatus["realtime"] = map[string]any{
			"available": false,
			"error":     fmt.Sprintf("Failed to create realtime service: %v", err),
		}
	}

	return aiStatus
}

// checkCircuitBreakerHealth checks the circuit breakers for the AI operations
func (s *Server) checkCircuitBreakerHealth() map[string]any {
	circuitBreakerStatus := make(map[string]any)

	suggestConfig := s.AppConfig.GetSuggestConfig()
	if svc, err := ai.NewService(&suggestConfig, config.OperationSuggest, s.Logger); err == nil {
		circuitBreakerStatus["suggest"] = svc.Provider.GetCircuitBreakerStats()
	} else {
		circuitBreakerStatus["suggest"] = map[string]any{
			"available": false,
			"error":     fmt.Sprintf("Failed to create suggest service: %v", err),
		}
	}

	realtimeConfig := s.AppConfig.GetRealtimeConfig()
	if svc, err := ai.NewService(&realtimeConfig, config.OperationRealtime, s.Logger); err == nil {
		circuitBreakerStatus["realtime"] = svc.Provider.GetCircuitBreakerStats()
	} else {
		circuitBreakerStatus["realtime"] = map[string]any{
			"available": false,
			"error":     fmt.Sprintf("Failed to create realtime service: %v", err),
		}
	}

	return circuitBreakerStatus
}

// statsHandler provides server statistics including rate limiting info
func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := map[string]any{
		"service": "resumetric",
		"version": s.Version,
		"server": map[string]any{
			"max_request_size_bytes": s.MaxRequestSize,
		},
	}

	// Add rate limiting stats if enabled
	if s.RateLimiter != nil {
		response["rate_limiting"] = s.RateLimiter.GetStats()
	} else {
		response["rate_limiting"] = map[string]any{
			"enabled": false,
		}
	}

	// Add configuration info
	if s.RateLimit != nil {
		response["rate_limit_config"] = map[string]any{
			"enabled":          s.RateLimit.Enabled,
			"requests_per_min": s.RateLimit.RequestsPerMin,
			"burst_capacity":   s.RateLimit.BurstCapacity,
			"by_ip":            s.RateLimit.ByIP,
			"by_api_key":       s.RateLimit.ByAPIKey,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		log.Printf("Failed to encode stats response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// parseJSONRequest parses JSON request body into the provided struct
func parseJSONRequest(r *http.Request, v any) error {
	if r.Header.Get("Content-Type") != "application/json" {
		return fmt.Errorf("content-type must be application/json")
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return fmt.Errorf("request body too large (limit is %d bytes)", maxBytesErr.Limit)
		}
		return fmt.Errorf("failed to read request body: %w", err)
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			log.Printf("Failed to close request body: %v", err)
		}
	}()

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	return nil
}

// writeErrorResponse writes a standardized error response
func writeErrorResponse(w http.ResponseWriter, error, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	response := ErrorResponse{
		Error:   error,
		Message: message,
	}

	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		log.Printf("Failed to encode error response: %v", err)
		http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
	}
}
