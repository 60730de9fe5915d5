package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"resumetric/internal/ai"
	"resumetric/internal/engine"
	"resumetric/internal/observability"
	"resumetric/internal/types"

	"go.opentelemetry.io/otel/attribute"
)

// createAnalyzeHandler wraps the deterministic analysis handler with observability
func (s *Server) createAnalyzeHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumetric.api")
		ctx, span := tracer.Start(ctx, "api.analyze")
		defer span.End()

		// Parse request
		var req AnalyzeRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		// Validation
		if strings.TrimSpace(req.ResumeText) == "" {
			err := fmt.Errorf("missing resume text")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing resume text", "resumeText field is required", http.StatusBadRequest)
			return
		}

		// Size validation
		if s.MaxRequestSize > 0 && len(req.ResumeText) > int(s.MaxRequestSize/2) {
			err := fmt.Errorf("resume too large: %d chars", len(req.ResumeText))
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Resume too large", fmt.Sprintf("resumeText exceeds recommended size limit of %d characters", s.MaxRequestSize/2), http.StatusBadRequest)
			return
		}
		if s.MaxRequestSize > 0 && len(req.JobDescription) > int(s.MaxRequestSize/2) {
			err := fmt.Errorf("job description too large: %d chars", len(req.JobDescription))
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Job description too large", fmt.Sprintf("jobDescription exceeds recommended size limit of %d characters", s.MaxRequestSize/2), http.StatusBadRequest)
			return
		}

		// Add request attributes to span
		span.SetAttributes(
			attribute.Int("request.resume_length", len(req.ResumeText)),
			attribute.Int("request.job_length", len(req.JobDescription)),
			attribute.String("operation", "analyze"),
		)

		input := engine.AnalyzeInput{
			Resume: types.ResumeDocument{
				RawText:  req.ResumeText,
				FileType: parseFileType(req.FileType),
				FileName: req.FileName,
			},
		}
		if strings.TrimSpace(req.JobDescription) != "" {
			input.Job = &types.JobDescription{RawText: req.JobDescription}
		}

		// Track the analysis with observability
		metrics := om.GetMetrics()
		var result *types.AnalysisResult
		err := metrics.TrackAnalysisOperation(ctx, func(ctx context.Context) *observability.AnalysisOperationResult {
			output, analyzeErr := s.currentEngine().Analyze(ctx, input)
			result = output
			opResult := &observability.AnalysisOperationResult{Error: analyzeErr}
			if output != nil {
				opResult.TotalScore = output.TotalScore
				opResult.ATSScore = output.ATSScore
			}
			return opResult
		}, om)

		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "analysis"))
			metrics.RecordBusinessMetric(ctx, "resume_analyzed", false, om,
				attribute.String("error", err.Error()))
			writeErrorResponse(w, "Failed to analyze resume", err.Error(), http.StatusBadRequest)
			return
		}

		// Record success metrics
		metrics.RecordBusinessMetric(ctx, "resume_analyzed", true, om,
			attribute.Int("total_score", result.TotalScore),
			attribute.Int("ats_score", result.ATSScore),
			attribute.String("industry", result.Industry))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("response.total_score", result.TotalScore),
			attribute.Int("response.ats_score", result.ATSScore),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createRealtimeHandler wraps the fast AI feedback handler with observability
func (s *Server) createRealtimeHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumetric.api")
		ctx, span := tracer.Start(ctx, "api.realtime")
		defer span.End()

		var req RealtimeRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.ResumeText) == "" {
			err := fmt.Errorf("missing resume text")
			span.RecordError(err)
			writeErrorResponse(w, "Missing resume text", "resumeText field is required", http.StatusBadRequest)
			return
		}

		if !s.AppConfig.HasAIKey() {
			err := fmt.Errorf("no AI key configured")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "configuration"))
			writeErrorResponse(w, "Realtime feedback unavailable", "no AI API key is configured on this server", http.StatusServiceUnavailable)
			return
		}

		span.SetAttributes(
			attribute.Int("request.resume_length", len(req.ResumeText)),
			attribute.Int("request.job_length", len(req.JobDescription)),
			attribute.String("operation", "realtime"),
		)

		// Create AI service for the realtime operation
		realtimeConfig := s.AppConfig.GetRealtimeConfig()
		aiService, err := ai.NewService(&realtimeConfig, "realtime", s.Logger)
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "service_creation"))
			writeErrorResponse(w, "Failed to create AI service", err.Error(), http.StatusInternalServerError)
			return
		}

		// Track AI operation with observability and token usage
		metrics := om.GetMetrics()
		var result *types.RealtimeResult
		err = metrics.TrackAIOperationWithTokens(ctx, "realtime", func(ctx context.Context) *observability.AIOperationResult {
			output, tokenUsage, aiErr := aiService.RealtimeWithUsage(ctx, req.ResumeText, req.JobDescription)
			result = output
			return &observability.AIOperationResult{
				Error:      aiErr,
				TokenUsage: (*observability.TokenUsage)(tokenUsage),
			}
		}, om)

		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "ai_processing"))
			metrics.RecordBusinessMetric(ctx, "realtime_feedback", false, om,
				attribute.String("error", err.Error()))
			writeErrorResponse(w, "Failed to get realtime feedback", err.Error(), http.StatusInternalServerError)
			return
		}

		// Record success metrics
		metrics.RecordBusinessMetric(ctx, "realtime_feedback", true, om,
			attribute.Int("ai_score", result.AIScore),
			attribute.Int("suggestions_count", len(result.AISuggestions)))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("response.ai_score", result.AIScore),
			attribute.Int("response.suggestions_count", len(result.AISuggestions)),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// parseFileType maps the request fileType field to a known file type.
// Unknown values count as "other" so ATS checks stay conservative.
func parseFileType(raw string) types.FileType {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "txt", "text":
		return types.FileTypeTXT
	case "pdf":
		return types.FileTypePDF
	case "docx", "doc":
		return types.FileTypeDOCX
	default:
		return types.FileTypeOther
	}
}

// createRateLimitMiddleware adds observability to rate limiting
func (s *Server) createRateLimitMiddleware(om *observability.ObservabilityManager) func(http.HandlerFunc) http.HandlerFunc {
	originalMiddleware := s.rateLimitMiddleware()

	return func(next http.HandlerFunc) http.HandlerFunc {
		return originalMiddleware(func(w http.ResponseWriter, r *http.Request) {
			// Check if this request was rate limited by examining the response
			// We'll wrap the ResponseWriter to detect rate limit responses
			wrapper := &responseWrapper{ResponseWriter: w, statusCode: 200}

			next(wrapper, r)

			// If rate limited, record metric
			if wrapper.statusCode == http.StatusTooManyRequests {
				metrics := om.GetMetrics()
				metrics.RecordBusinessMetric(r.Context(), "rate_limit_hit", true, om,
					attribute.String("endpoint", r.URL.Path),
					attribute.String("method", r.Method))
			}
		})
	}
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
