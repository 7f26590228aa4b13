package api

import (
	"context"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/trogers1052/trade-transparency/internal/config"
	"github.com/trogers1052/trade-transparency/internal/dashboard"
	"github.com/trogers1052/trade-transparency/internal/i18n"
	"github.com/trogers1052/trade-transparency/internal/trades"
)

// Pinger is a dependency that can report its reachability
type Pinger interface {
	Ping(ctx context.Context) error
}

// Options are the dependencies of a Handler. Database and Cache are left nil
// when the corresponding backend is not in use.
type Options struct {
	Service  *dashboard.Service
	Catalog  *i18n.Catalog
	Logger   *zap.Logger
	Source   string
	TraderID string
	Database Pinger
	Cache    Pinger
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	service  *dashboard.Service
	catalog  *i18n.Catalog
	logger   *zap.Logger
	source   string
	traderID string
	db       Pinger
	cache    Pinger
	pages    *template.Template
}

// NewHandler creates a new Handler
func NewHandler(opts Options) (*Handler, error) {
	pages, err := parsePages()
	if err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		service:  opts.Service,
		catalog:  opts.Catalog,
		logger:   logger,
		source:   opts.Source,
		traderID: opts.TraderID,
		db:       opts.Database,
		cache:    opts.Cache,
		pages:    pages,
	}, nil
}

// GetTraders handles GET /traders
func (h *Handler) GetTraders(w http.ResponseWriter, r *http.Request) {
	traders, err := h.service.Provider().Traders(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, traders)
}

// GetTrader handles GET /traders/{id}
func (h *Handler) GetTrader(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	header, err := h.service.Header(r.Context(), id, i18n.FromContext(r.Context()))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, header)
}

// GetTraderTrades handles GET /traders/{id}/trades?period=&page=
func (h *Handler) GetTraderTrades(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	query, err := parseHistoryQuery(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	history, err := h.service.History(r.Context(), id, query, i18n.FromContext(r.Context()))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, history)
}

// GetOtherTraders handles GET /traders/{id}/others
func (h *Handler) GetOtherTraders(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	others, err := h.service.OtherTraders(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, others)
}

// GetTrade handles GET /trades/{id}
func (h *Handler) GetTrade(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	detail, err := h.service.Detail(r.Context(), id, i18n.FromContext(r.Context()))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, detail)
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	health := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"source":    h.source,
		"services":  map[string]string{},
	}
	services := health["services"].(map[string]string)
	allHealthy := true

	// Check database
	switch {
	case h.db != nil:
		if err := h.db.Ping(ctx); err != nil {
			services["postgres"] = "unhealthy: " + err.Error()
			allHealthy = false
		} else {
			services["postgres"] = "healthy"
		}
	case h.source == config.SourcePostgres:
		services["postgres"] = "not configured"
		allHealthy = false
	default:
		services["postgres"] = "not configured"
	}

	// Check Redis
	if h.cache != nil {
		if err := h.cache.Ping(ctx); err != nil {
			services["redis"] = "unhealthy: " + err.Error()
		} else {
			services["redis"] = "healthy"
		}
	} else {
		services["redis"] = "not configured"
	}

	if !allHealthy {
		health["status"] = "degraded"
	}

	respondJSON(w, http.StatusOK, health)
}

// ErrInvalidPage is returned for a page selector that is not a number
var ErrInvalidPage = errors.New("invalid page")

func parseHistoryQuery(r *http.Request) (dashboard.HistoryQuery, error) {
	q := r.URL.Query()

	period, err := trades.ParsePeriod(q.Get("period"))
	if err != nil {
		return dashboard.HistoryQuery{}, err
	}

	page := 1
	if raw := q.Get("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil {
			return dashboard.HistoryQuery{}, ErrInvalidPage
		}
	}

	return dashboard.HistoryQuery{Period: period, Page: page}, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, dashboard.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, trades.ErrInvalidPeriod), errors.Is(err, ErrInvalidPage):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("Request failed",
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
	respondJSON(w, status, map[string]string{"error": err.Error()})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
