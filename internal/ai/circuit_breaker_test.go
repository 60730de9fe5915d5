package ai

import (
	"fmt"
	"testing"
	"time"

	"resumetric/internal/config"
	apperrors "resumetric/internal/errors"

	"google.golang.org/genai"
)

func TestIndependentCircuitBreakerConfigurations(t *testing.T) {
	// Each operation gets its own circuit breaker with its own settings.

	suggestConfig := &config.OperationAIConfig{
		Provider: "gemini",
		Model:    "gemini-2.0-flash",
		CircuitBreaker: config.CircuitBreakerConfig{
			Enabled:          true,
			MaxRequests:      3,
			Interval:         60 * time.Second,
			Timeout:          60 * time.Second,
			MinRequests:      3,
			FailureThreshold: 0.6,
		},
	}

	realtimeConfig := &config.OperationAIConfig{
		Provider: "gemini",
		Model:    "gemini-2.0-flash-lite",
		CircuitBreaker: config.CircuitBreakerConfig{
			Enabled:          true,
			MaxRequests:      5,                // Different from suggest
			Interval:         30 * time.Second, // Different from suggest
			Timeout:          45 * time.Second, // Different from suggest
			MinRequests:      2,                // Different from suggest
			FailureThreshold: 0.7,              // Different from suggest
		},
	}

	suggestCB := NewAICircuitBreaker("Suggest", suggestConfig, nil)
	realtimeCB := NewAICircuitBreaker("Realtime", realtimeConfig, nil)

	t.Run("SuggestCircuitBreaker", func(t *testing.T) {
		stats := suggestCB.GetStats()

		name, ok := stats["name"].(string)
		if !ok {
			t.Fatal("Circuit breaker name not found")
		}
		if name != "AI-Suggest" {
			t.Errorf("Expected circuit breaker name 'AI-Suggest', got '%s'", name)
		}

		// Verify it's in closed state initially
		state, ok := stats["state"].(string)
		if !ok {
			t.Fatal("Circuit breaker state not found")
		}
		if state != "closed" {
			t.Errorf("Expected initial state 'closed', got '%s'", state)
		}

		enabled, ok := stats["enabled"].(bool)
		if !ok {
			t.Fatal("Circuit breaker enabled status not found")
		}
		if !enabled {
			t.Error("Circuit breaker should be enabled")
		}
	})

	t.Run("RealtimeCircuitBreaker", func(t *testing.T) {
		stats := realtimeCB.GetStats()

		name, ok := stats["name"].(string)
		if !ok {
			t.Fatal("Circuit breaker name not found")
		}
		if name != "AI-Realtime" {
			t.Errorf("Expected circuit breaker name 'AI-Realtime', got '%s'", name)
		}
	})

	t.Run("IndependentInstances", func(t *testing.T) {
		if suggestCB == realtimeCB {
			t.Error("Suggest and realtime circuit breakers should be different instances")
		}
	})

	t.Run("IndependentHealthStates", func(t *testing.T) {
		if !suggestCB.IsHealthy() {
			t.Error("Suggest circuit breaker should be healthy initially")
		}
		if !realtimeCB.IsHealthy() {
			t.Error("Realtime circuit breaker should be healthy initially")
		}
	})
}

func TestCircuitBreakerDisabled(t *testing.T) {
	disabledConfig := &config.OperationAIConfig{
		Provider: "gemini",
		Model:    "test-model",
		CircuitBreaker: config.CircuitBreakerConfig{
			Enabled: false,
		},
	}

	cb := NewAICircuitBreaker("Test", disabledConfig, nil)
	if cb != nil {
		t.Fatal("Circuit breaker should be nil when disabled")
	}

	// A nil breaker executes calls directly.
	called := false
	_, err := cb.Execute(func() (*genai.GenerateContentResponse, error) {
		called = true
		return nil, nil
	})
	if err != nil {
		t.Fatalf("Execute through nil breaker failed: %v", err)
	}
	if !called {
		t.Error("Execute should invoke the function when the breaker is disabled")
	}

	stats := cb.GetStats()
	if enabled, ok := stats["enabled"].(bool); !ok || enabled {
		t.Error("Disabled circuit breaker stats should report enabled=false")
	}

	if !cb.IsHealthy() {
		t.Error("Disabled circuit breaker should report healthy")
	}
}

func TestCircuitBreakerTripsAfterFailures(t *testing.T) {
	cfg := &config.OperationAIConfig{
		Provider: "gemini",
		Model:    "test-model",
		CircuitBreaker: config.CircuitBreakerConfig{
			Enabled:          true,
			MaxRequests:      1,
			Interval:         time.Minute,
			Timeout:          time.Minute,
			MinRequests:      3,
			FailureThreshold: 0.6,
		},
	}

	logger, err := apperrors.New("error")
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	cb := NewAICircuitBreaker("Trip", cfg, logger)

	failing := func() (*genai.GenerateContentResponse, error) {
		return nil, fmt.Errorf("backend unavailable")
	}

	for i := 0; i < 3; i++ {
		if _, execErr := cb.Execute(failing); execErr == nil {
			t.Fatal("Expected error from failing call")
		}
	}

	if cb.IsHealthy() {
		t.Error("Circuit breaker should be open after repeated failures")
	}

	stats := cb.GetStats()
	if state, ok := stats["state"].(string); !ok || state != "open" {
		t.Errorf("Expected state 'open', got %v", stats["state"])
	}
}

func TestModelCircuitBreakerDisabled(t *testing.T) {
	disabledConfig := &config.OperationAIConfig{
		Provider: "gemini",
		Model:    "test-model",
		CircuitBreaker: config.CircuitBreakerConfig{
			Enabled: false,
		},
	}

	mcb := NewModelCircuitBreaker("Test", disabledConfig, nil)
	if mcb != nil {
		t.Fatal("Model circuit breaker should be nil when disabled")
	}

	model, err := mcb.ExecuteModel(func() (*genai.Model, error) {
		return &genai.Model{Name: "test-model"}, nil
	})
	if err != nil {
		t.Fatalf("ExecuteModel through nil breaker failed: %v", err)
	}
	if model == nil || model.Name != "test-model" {
		t.Error("ExecuteModel should pass the result through unchanged")
	}
}
