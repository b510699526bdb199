package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/articledry/dryer/errors"
	"github.com/articledry/dryer/pipeline"
	"github.com/articledry/dryer/plugin"
	"github.com/articledry/dryer/sse"
	"github.com/articledry/dryer/validation"
)

// ProcessRequest is the body of POST /v1/process. Exactly one of
// Content or URL must be set; URL is passed to the pipeline as the
// initial payload so a fetch stage can resolve it. Pipeline overrides
// the server's configured default pipeline for this request only.
type ProcessRequest struct {
	Content  string           `json:"content"`
	URL      string           `json:"url"`
	Pipeline *pipeline.Config `json:"pipeline,omitempty"`
}

// RegisterProcessRoutes registers the article-processing API on the
// server. Each request assembles a fresh pipeline from the registry so
// plugin state never leaks between runs; opts (metrics, sinks) are
// applied to every assembled pipeline.
func (s *Server) RegisterProcessRoutes(reg *plugin.Registry, defaults pipeline.Config, opts ...pipeline.Option) {
	s.engine.POST("/v1/process", s.handleProcess(reg, defaults, opts...))
	s.engine.GET("/v1/plugins", s.handlePlugins(reg))
}

func (s *Server) handleProcess(reg *plugin.Registry, defaults pipeline.Config, opts ...pipeline.Option) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ProcessRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			RespondWithError(c, apperrors.InvalidInput("request body must be valid JSON").WithCause(err))
			return
		}
		if err := validateProcessRequest(req); err != nil {
			RespondWithError(c, err)
			return
		}

		cfg := defaults
		if req.Pipeline != nil {
			cfg = *req.Pipeline
		}

		p, err := pipeline.FromConfig(reg, cfg, append([]pipeline.Option{pipeline.WithLogger(s.log)}, opts...)...)
		if err != nil {
			RespondWithError(c, err)
			return
		}

		payload := req.Content
		initialMetadata := map[string]any{}
		if req.URL != "" {
			payload = req.URL
			initialMetadata["requested_url"] = req.URL
		}

		// From here on the response is a stream; errors inside the run
		// arrive as error events, not as an HTTP status.
		c.Header("Content-Type", "application/x-ndjson")
		c.Header("Cache-Control", "no-cache")
		c.Status(http.StatusOK)

		p.BindStreaming(sse.NewEventWriter(c.Writer))
		if err := p.ProcessStreamingRequest(c.Request.Context(), payload, initialMetadata); err != nil {
			s.log.Warn("Processing run failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
}

func validateProcessRequest(req ProcessRequest) error {
	return validation.New().
		Custom(req.Content != "" || req.URL != "", "content", "one of content or url is required").
		Custom(req.Content == "" || req.URL == "", "content", "content and url are mutually exclusive").
		Err()
}

// handlePlugins lists the registered plugin names so clients can
// discover what a pipeline definition may reference.
func (s *Server) handlePlugins(reg *plugin.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		RespondOK(c, gin.H{"plugins": reg.List()})
	}
}
