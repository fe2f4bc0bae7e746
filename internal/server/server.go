package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"homecast/internal/calculation"
	"homecast/internal/config"
	"homecast/internal/domain"
)

type handler struct {
	logger  *zap.Logger
	engine  *calculation.Engine
	parser  *config.InputParser
	cache   ResultCache
	version string
}

// NewHandler constructs the HTTP handler that serves the projection API.
func NewHandler(logger *zap.Logger, engine *calculation.Engine, cache ResultCache, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cache == nil {
		cache = NewMemoryCache(24 * time.Hour)
	}
	if version == "" {
		version = "dev"
	}

	h := &handler{
		logger:  logger,
		engine:  engine,
		parser:  config.NewInputParser(),
		cache:   cache,
		version: version,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/project", h.handleProject)
	mux.HandleFunc("/api/locations", h.handleLocations)
	mux.HandleFunc("/api/version", h.handleVersion)
	mux.HandleFunc("/healthz", h.handleHealth)

	return mux
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *handler) handleProject(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var input domain.AffordabilityInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.parser.ValidateInput(&input); err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	key, err := cacheKey(&input)
	if err == nil {
		if cached, ok := h.cache.Get(key); ok {
			h.logger.Debug("projection cache hit", zap.String("location", input.Location))
			h.writeRawJSON(w, http.StatusOK, []byte(cached))
			return
		}
	}

	start := time.Now()
	result, err := h.engine.Project(&input)
	if err != nil {
		h.writeError(w, statusForError(err), err.Error())
		return
	}

	h.logger.Info("projection computed",
		zap.String("location", input.Location),
		zap.Int("target_year", result.TargetYear),
		zap.Duration("duration", time.Since(start)),
	)

	payload, err := json.Marshal(result)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "failed to encode result")
		return
	}
	if key != "" {
		if cacheErr := h.cache.Set(key, string(payload)); cacheErr != nil {
			h.logger.Warn("failed to cache projection", zap.Error(cacheErr))
		}
	}
	h.writeRawJSON(w, http.StatusOK, payload)
}

func (h *handler) handleLocations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string][]string{"locations": h.engine.Prices.Locations()})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"version": h.version})
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// statusForError maps the engine's error taxonomy onto HTTP statuses. Every
// engine failure is terminal for the request; only encoding problems are 500s.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnknownLocation),
		errors.Is(err, domain.ErrNoProjectionForYear),
		errors.Is(err, domain.ErrNoProjectionAvailable):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidPercentage),
		errors.Is(err, domain.ErrInvalidAmortizationInput),
		errors.Is(err, domain.ErrConflictingInputs):
		return http.StatusBadRequest
	default:
		return http.StatusBadRequest
	}
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeRawJSON(w, status, data)
}

func (h *handler) writeRawJSON(w http.ResponseWriter, status int, data []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		h.logger.Warn("failed to write response", zap.Error(err))
	}
}

func (h *handler) writeError(w http.ResponseWriter, status int, message string) {
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", zap.Int("status", status), zap.String("error", message))
	} else {
		h.logger.Debug("request rejected", zap.Int("status", status), zap.String("error", message))
	}
	h.writeJSON(w, status, errorResponse{Error: message})
}
