// internal/api/handlers.go
package api

import (
	"io"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/xeipuuv/gojsonschema"

	commonerrors "hoopmatch/internal/common/errors"
	"hoopmatch/internal/common/metrics"
	"hoopmatch/internal/common/validation"
	"hoopmatch/internal/models"
	"hoopmatch/internal/narrative"
)

const maxBodyBytes = 1 << 20

type sourcesRequest struct {
	Teams []string `json:"teams"`
}

type quizRequest struct {
	Answers models.QuizAnswers `json:"answers"`
}

type playersRequest struct {
	Players []string `json:"players"`
}

type matchResponse struct {
	Results []models.MatchResult `json:"results"`
}

type narrativeRequest struct {
	TopThree []models.MatchResult `json:"topThree"`
	Sources  []string             `json:"sources"`
}

type quizNarrativeRequest struct {
	Results []models.MatchResult `json:"results"`
	Answers models.QuizAnswers   `json:"answers"`
}

type playerNarrativeRequest struct {
	Players []models.TraitPlayer `json:"players"`
	Traits  []string             `json:"traits"`
}

// decode validates the request body against schema and unmarshals it.
func (s *Server) decode(r *http.Request, schema *gojsonschema.Schema, out interface{}) *commonerrors.StandardError {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return commonerrors.NewInvalidRequestBodyError(err)
	}
	result, err := validation.ValidateBytes(schema, body)
	if err != nil {
		return commonerrors.NewInvalidRequestBodyError(err)
	}
	if !result.Valid {
		return commonerrors.NewValidationFailedError(strings.Join(result.GetErrorMessages(), "; "))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return commonerrors.NewInvalidRequestBodyError(err)
	}
	return nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", map[string]interface{}{"error": err.Error()})
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"app":     s.config.App.Name,
		"version": s.config.App.Version,
	})
}

// --- Match endpoints ---

func (s *Server) handleSourcesMatch(w http.ResponseWriter, r *http.Request) {
	var req sourcesRequest
	if stdErr := s.decode(r, sourcesSchema, &req); stdErr != nil {
		metrics.MatchRequestsFailed.WithLabelValues("sources", string(stdErr.Code)).Inc()
		s.errors.Respond(w, requestID(r), stdErr)
		return
	}

	metrics.MatchRequestsTotal.WithLabelValues("sources").Inc()
	start := time.Now()

	key := s.cache.Key("sources", req)
	var resp matchResponse
	if s.cache.Get(r.Context(), key, &resp) {
		metrics.CacheLookups.WithLabelValues("sources", "hit").Inc()
		s.writeJSON(w, http.StatusOK, resp)
		return
	}
	metrics.CacheLookups.WithLabelValues("sources", "miss").Inc()

	results := s.sources.Rank(req.Teams)
	results = s.enricher.Enrich(results, req.Teams)
	resp = matchResponse{Results: results}

	s.cache.Set(r.Context(), key, resp)
	metrics.MatchRequestDuration.WithLabelValues("sources").Observe(time.Since(start).Seconds())
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleQuizMatch(w http.ResponseWriter, r *http.Request) {
	var req quizRequest
	if stdErr := s.decode(r, quizSchema, &req); stdErr != nil {
		metrics.MatchRequestsFailed.WithLabelValues("quiz", string(stdErr.Code)).Inc()
		s.errors.Respond(w, requestID(r), stdErr)
		return
	}

	metrics.MatchRequestsTotal.WithLabelValues("quiz").Inc()
	start := time.Now()

	key := s.cache.Key("quiz", req)
	var resp matchResponse
	if s.cache.Get(r.Context(), key, &resp) {
		metrics.CacheLookups.WithLabelValues("quiz", "hit").Inc()
		s.writeJSON(w, http.StatusOK, resp)
		return
	}
	metrics.CacheLookups.WithLabelValues("quiz", "miss").Inc()

	resp = matchResponse{Results: s.quizEngine.Match(req.Answers)}

	s.cache.Set(r.Context(), key, resp)
	metrics.MatchRequestDuration.WithLabelValues("quiz").Observe(time.Since(start).Seconds())
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePlayersMatch(w http.ResponseWriter, r *http.Request) {
	var req playersRequest
	if stdErr := s.decode(r, playersSchema, &req); stdErr != nil {
		metrics.MatchRequestsFailed.WithLabelValues("players", string(stdErr.Code)).Inc()
		s.errors.Respond(w, requestID(r), stdErr)
		return
	}

	metrics.MatchRequestsTotal.WithLabelValues("players").Inc()
	start := time.Now()

	key := s.cache.Key("players", req)
	var resp matchResponse
	if s.cache.Get(r.Context(), key, &resp) {
		metrics.CacheLookups.WithLabelValues("players", "hit").Inc()
		s.writeJSON(w, http.StatusOK, resp)
		return
	}
	metrics.CacheLookups.WithLabelValues("players", "miss").Inc()

	resp = matchResponse{Results: s.legacy.Players(req.Players)}
	if resp.Results == nil {
		resp.Results = []models.MatchResult{}
	}

	s.cache.Set(r.Context(), key, resp)
	metrics.MatchRequestDuration.WithLabelValues("players").Observe(time.Since(start).Seconds())
	s.writeJSON(w, http.StatusOK, resp)
}

// --- Narrative endpoints ---

func (s *Server) handleNarrative(w http.ResponseWriter, r *http.Request) {
	var req narrativeRequest
	if stdErr := s.decode(r, narrativeSchema, &req); stdErr != nil {
		s.errors.Respond(w, requestID(r), stdErr)
		return
	}

	system, user := narrative.BuildSourcesPrompt(s.store, req.TopThree, req.Sources)
	s.streamNarrative(w, r, "sources", narrative.StreamRequest{
		System:    system,
		User:      user,
		Model:     s.narrCfg.Model,
		MaxTokens: s.narrCfg.MaxTokens,
	}, func() string { return narrative.Synthesize(req.TopThree) })
}

func (s *Server) handleQuizNarrative(w http.ResponseWriter, r *http.Request) {
	var req quizNarrativeRequest
	if stdErr := s.decode(r, quizNarrativeSchema, &req); stdErr != nil {
		s.errors.Respond(w, requestID(r), stdErr)
		return
	}

	system, user := narrative.BuildQuizPrompt(s.store, req.Results, req.Answers)
	s.streamNarrative(w, r, "quiz", narrative.StreamRequest{
		System:    system,
		User:      user,
		Model:     s.narrCfg.Model,
		MaxTokens: s.narrCfg.QuizMaxTokens,
	}, func() string { return narrative.Synthesize(req.Results) })
}

// handlePlayerNarrative streams one hook per requested player, with
// "__NL__" between hooks so the caller can split them back apart.
func (s *Server) handlePlayerNarrative(w http.ResponseWriter, r *http.Request) {
	var req playerNarrativeRequest
	if stdErr := s.decode(r, playerNarrativeSchema, &req); stdErr != nil {
		s.errors.Respond(w, requestID(r), stdErr)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	start := time.Now()

	for i, player := range req.Players {
		if i > 0 {
			_, _ = io.WriteString(w, "__NL__")
		}
		system, user := narrative.BuildPlayerPrompt(player, req.Traits)
		streamed := s.streamPlayerHook(w, r, narrative.StreamRequest{
			System:             system,
			User:               user,
			Model:              s.narrCfg.PlayerModel,
			MaxTokens:          s.narrCfg.PlayerMaxTokens,
			CollapseWhitespace: true,
		})
		if streamed {
			metrics.NarrativeStreams.WithLabelValues("players", "upstream").Inc()
		} else {
			metrics.NarrativeStreams.WithLabelValues("players", "fallback").Inc()
			_, _ = io.WriteString(w, narrative.PlayerFallbackLine)
		}
		if f, ok := w.(http.Flusher); ok {
			f.Flush()
		}
	}

	metrics.NarrativeStreamDuration.WithLabelValues("players").Observe(time.Since(start).Seconds())
}

// streamNarrative re-streams upstream deltas, or serves the local
// synthesizer when the upstream is disabled or fails before the first
// byte. Once bytes are on the wire the response cannot be swapped.
func (s *Server) streamNarrative(w http.ResponseWriter, r *http.Request, kind string, req narrative.StreamRequest, fallback func() string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	start := time.Now()
	defer func() {
		metrics.NarrativeStreamDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	}()

	if s.narrative.Enabled() {
		cw := &countingWriter{w: w}
		err := s.narrative.Stream(r.Context(), req, cw)
		if err == nil {
			metrics.NarrativeStreams.WithLabelValues(kind, "upstream").Inc()
			return
		}
		if cw.n > 0 {
			s.logger.Error("narrative stream broke mid-flight", map[string]interface{}{
				"requestId": requestID(r),
				"kind":      kind,
				"written":   cw.n,
				"error":     err.Error(),
			})
			metrics.NarrativeStreams.WithLabelValues(kind, "upstream").Inc()
			return
		}
		s.logger.Warn("narrative upstream failed, serving local fallback", map[string]interface{}{
			"requestId": requestID(r),
			"kind":      kind,
			"error":     err.Error(),
		})
	}

	metrics.NarrativeStreams.WithLabelValues(kind, "fallback").Inc()
	_, _ = io.WriteString(w, fallback())
}

func (s *Server) streamPlayerHook(w http.ResponseWriter, r *http.Request, req narrative.StreamRequest) bool {
	if !s.narrative.Enabled() {
		return false
	}
	cw := &countingWriter{w: w}
	if err := s.narrative.Stream(r.Context(), req, cw); err != nil && cw.n == 0 {
		s.logger.Warn("player hook upstream failed, using fallback line", map[string]interface{}{
			"requestId": requestID(r),
			"error":     err.Error(),
		})
		return false
	}
	return true
}

// countingWriter tracks whether any bytes reached the client, and
// forwards Flush so deltas leave as they arrive.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(b []byte) (int, error) {
	n, err := c.w.Write(b)
	c.n += int64(n)
	return n, err
}

func (c *countingWriter) Flush() {
	if f, ok := c.w.(http.Flusher); ok {
		f.Flush()
	}
}
