package api

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"

	"github.com/go-chi/chi/v5"

	"roadcost/pkg/catalog"
)

// EstimateRequest is the request body for POST /api/v1/estimate.
type EstimateRequest struct {
	Text   string `json:"text"`
	Source string `json:"source"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.config.MaxRequestSize)

	var req EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Text == "" {
		jsonError(w, "text is required", http.StatusBadRequest)
		return
	}

	source, err := catalog.ParseSource(req.Source)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := s.estimator.Estimate(req.Text, source)
	if err != nil {
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if s.archive != nil {
		if err := s.archive.InsertRun(r.Context(), result); err != nil {
			// Archive failures never fail the estimate.
			s.log.Warn("failed to archive run", "run_id", result.RunID, "error", err)
		}
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	source, err := catalog.ParseSource(chi.URLParam(r, "source"))
	if err != nil {
		jsonError(w, err.Error(), http.StatusNotFound)
		return
	}

	cat, err := s.estimator.Sources().Catalog(source)
	if err != nil {
		jsonError(w, err.Error(), http.StatusNotFound)
		return
	}

	// Stable order for clients.
	entries := make([]catalog.MaterialEntry, 0, len(cat))
	for _, e := range cat {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Code < entries[j].Code })

	writeJSON(w, http.StatusOK, map[string]any{
		"source":  source,
		"entries": entries,
	})
}

func (s *Server) handleStandards(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Standards())
}

func (s *Server) handlePatterns(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.estimator.Patterns())
}

func (s *Server) handleRecentRuns(w http.ResponseWriter, r *http.Request) {
	if s.archive == nil {
		jsonError(w, "archive not configured", http.StatusNotFound)
		return
	}

	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	runs, err := s.archive.RecentRuns(r.Context(), limit)
	if err != nil {
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, runs)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers are gone; nothing useful left to do.
		return
	}
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, status, map[string]string{"error": msg})
}
