package server

import (
	"context"
	"fmt"
	"net/http"

	"resumelens/internal/ai"
	"resumelens/internal/common"
	"resumelens/internal/lexical"
	"resumelens/internal/observability"
	"resumelens/internal/types"

	"go.opentelemetry.io/otel/attribute"
)

// validateRequest applies the shared request validation and writes the error
// response when validation fails. Returns false when the request was rejected.
func (s *Server) validateRequest(w http.ResponseWriter, req *AnalyzeRequest) bool {
	minLen := s.AppConfig.Analysis.MinJobDescLen
	if err := common.ValidateAnalysisInput(req.ResumeText, req.JobDescription, minLen); err != nil {
		writeErrorResponse(w, "Invalid request", err.Error(), http.StatusBadRequest)
		return false
	}

	if s.MaxRequestSize > 0 {
		half := int(s.MaxRequestSize / 2)
		if len(req.ResumeText) > half {
			writeErrorResponse(w, "Resume too large",
				fmt.Sprintf("resume_text exceeds recommended size limit of %d characters", half), http.StatusBadRequest)
			return false
		}
		if len(req.JobDescription) > half {
			writeErrorResponse(w, "Job description too large",
				fmt.Sprintf("job_description exceeds recommended size limit of %d characters", half), http.StatusBadRequest)
			return false
		}
	}

	return true
}

// createAnalyzeHandler wraps the generative analyze handler with observability
func (s *Server) createAnalyzeHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumelens.api")
		ctx, span := tracer.Start(ctx, "api.analyze")
		defer span.End()

		var req AnalyzeRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if !s.validateRequest(w, &req) {
			span.SetAttributes(attribute.String("error.type", "validation"))
			return
		}

		span.SetAttributes(
			attribute.Int("request.resume_length", len(req.ResumeText)),
			attribute.Int("request.job_length", len(req.JobDescription)),
			attribute.String("operation", "analyze"),
		)

		analyzeConfig := s.AppConfig.GetAnalyzeConfig()
		analyzer, err := ai.NewAnalyzer(&analyzeConfig, s.AppConfig.Analysis, s.Logger)
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "service_creation"))
			writeErrorResponse(w, "Failed to create AI service", err.Error(), http.StatusInternalServerError)
			return
		}

		metrics := om.GetMetrics()
		var result *types.AnalysisResult
		err = metrics.TrackAIOperationWithTokens(ctx, "analyze", func(ctx context.Context) *observability.AIOperationResult {
			output, tokenUsage, aiErr := analyzer.Analyze(ctx, req.ResumeText, req.JobDescription)
			result = output
			return &observability.AIOperationResult{
				Error:      aiErr,
				TokenUsage: (*observability.TokenUsage)(tokenUsage),
			}
		}, om)

		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "ai_processing"))
			metrics.RecordBusinessMetric(ctx, "analysis_completed", false, om,
				attribute.String("error", err.Error()))
			writeErrorResponse(w, "Failed to analyze resume", err.Error(), http.StatusInternalServerError)
			return
		}

		metrics.RecordBusinessMetric(ctx, "analysis_completed", true, om,
			attribute.Int("ats.score", result.ATSScore),
			attribute.Int("matched_keywords", len(result.MatchedKeywords)),
			attribute.Int("missing_keywords", len(result.MissingKeywords)))
		metrics.RecordATSScore(ctx, result.ATSScore, "generative", om)

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("ats.score", result.ATSScore),
		)

		writeJSONResponse(w, span, AnalysisResponse{
			Status:         "success",
			Message:        "Resume analyzed successfully",
			AnalysisResult: *result,
		})
	}
}

// createScoreHandler handles the lexical scoring endpoint. Scoring is fully
// local, so there is no AI service involved.
func (s *Server) createScoreHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumelens.api")
		ctx, span := tracer.Start(ctx, "api.score")
		defer span.End()

		var req AnalyzeRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if !s.validateRequest(w, &req) {
			span.SetAttributes(attribute.String("error.type", "validation"))
			return
		}

		span.SetAttributes(
			attribute.Int("request.resume_length", len(req.ResumeText)),
			attribute.Int("request.job_length", len(req.JobDescription)),
			attribute.String("operation", "score"),
		)

		scorer := lexical.NewScorer(s.AppConfig.Analysis.TopKeywords)
		result, err := scorer.Analyze(req.ResumeText, req.JobDescription)

		metrics := om.GetMetrics()
		if err != nil {
			span.RecordError(err)
			metrics.RecordBusinessMetric(ctx, "resume_scored", false, om)
			writeErrorResponse(w, "Failed to score resume", err.Error(), http.StatusBadRequest)
			return
		}

		metrics.RecordBusinessMetric(ctx, "resume_scored", true, om,
			attribute.Int("ats.score", result.ATSScore),
			attribute.Int("matched_keywords", len(result.MatchedKeywords)))
		metrics.RecordATSScore(ctx, result.ATSScore, "lexical", om)

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("ats.score", result.ATSScore),
		)

		writeJSONResponse(w, span, AnalysisResponse{
			Status:         "success",
			Message:        "Resume scored successfully",
			AnalysisResult: *result,
		})
	}
}

// createEnhanceHandler wraps the enhance handler with observability. The
// enhancement prompt is seeded with a lexical analysis of the resume, so only
// the rewrite itself costs an AI round trip.
func (s *Server) createEnhanceHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumelens.api")
		ctx, span := tracer.Start(ctx, "api.enhance")
		defer span.End()

		var req AnalyzeRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if !s.validateRequest(w, &req) {
			span.SetAttributes(attribute.String("error.type", "validation"))
			return
		}

		span.SetAttributes(
			attribute.Int("request.resume_length", len(req.ResumeText)),
			attribute.Int("request.job_length", len(req.JobDescription)),
			attribute.String("operation", "enhance"),
		)

		scorer := lexical.NewScorer(s.AppConfig.Analysis.TopKeywords)
		analysis, err := scorer.Analyze(req.ResumeText, req.JobDescription)
		if err != nil {
			span.RecordError(err)
			writeErrorResponse(w, "Failed to analyze resume", err.Error(), http.StatusBadRequest)
			return
		}

		enhanceConfig := s.AppConfig.GetEnhanceConfig()
		enhancer, err := ai.NewEnhancer(&enhanceConfig, s.AppConfig.Analysis, s.Logger)
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "service_creation"))
			writeErrorResponse(w, "Failed to create AI service", err.Error(), http.StatusInternalServerError)
			return
		}

		metrics := om.GetMetrics()
		var result *types.EnhancementResult
		_ = metrics.TrackAIOperationWithTokens(ctx, "enhance", func(ctx context.Context) *observability.AIOperationResult {
			output, tokenUsage := enhancer.Enhance(ctx, req.ResumeText, req.JobDescription, analysis)
			result = output
			return &observability.AIOperationResult{
				TokenUsage: (*observability.TokenUsage)(tokenUsage),
			}
		}, om)

		// Enhancement is best-effort: an error status still returns 200 with
		// the original resume so the caller never loses their input.
		success := result.Status == "success"
		metrics.RecordBusinessMetric(ctx, "resume_enhanced", success, om,
			attribute.Int("changes_made", len(result.ChangesMade)))

		span.SetAttributes(
			attribute.Bool("success", success),
			attribute.Int("changes_made", len(result.ChangesMade)),
		)

		message := "Resume enhanced successfully"
		if !success {
			message = "Enhancement unavailable, original resume returned"
		}

		writeJSONResponse(w, span, EnhancementResponse{
			Status:         result.Status,
			Message:        message,
			EnhancedResume: result.EnhancedResume,
			ChangesMade:    result.ChangesMade,
		})
	}
}

// createRateLimitMiddleware adds observability to rate limiting
func (s *Server) createRateLimitMiddleware(om *observability.ObservabilityManager) func(http.HandlerFunc) http.HandlerFunc {
	originalMiddleware := s.rateLimitMiddleware()

	return func(next http.HandlerFunc) http.HandlerFunc {
		limited := originalMiddleware(next)
		return func(w http.ResponseWriter, r *http.Request) {
			// Wrap the ResponseWriter to detect rate limit responses
			wrapper := &responseWrapper{ResponseWriter: w, statusCode: 200}

			limited(wrapper, r)

			if wrapper.statusCode == http.StatusTooManyRequests {
				metrics := om.GetMetrics()
				metrics.RecordBusinessMetric(r.Context(), "rate_limit_hit", true, om,
					attribute.String("endpoint", r.URL.Path),
					attribute.String("method", r.Method))
			}
		}
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
