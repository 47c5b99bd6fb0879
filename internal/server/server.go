// Package server exposes the amortization engine over a small HTTP JSON API.
package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/iwvelando/loan-engine/internal/cache"
	"github.com/iwvelando/loan-engine/pkg/engine"
	"github.com/iwvelando/loan-engine/pkg/mathutil"
	"go.uber.org/zap"
)

type handler struct {
	logger    *zap.Logger
	generator *engine.ScheduleGenerator
	cache     cache.ScheduleCache
	version   string
}

// NewHandler constructs the HTTP handler that serves the amortization API.
// A nil cache disables schedule response caching.
func NewHandler(logger *zap.Logger, scheduleCache cache.ScheduleCache, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:    logger,
		generator: engine.NewScheduleGenerator(logger),
		cache:     scheduleCache,
		version:   trimmedVersion,
	}

	mux := http.NewServeMux()

	// Periodic payment and its totals
	mux.HandleFunc("/api/payment", h.handlePayment)

	// Largest principal a payment amortizes
	mux.HandleFunc("/api/maxprincipal", h.handleMaxPrincipal)

	// Per-period interest/principal split and remaining balance
	mux.HandleFunc("/api/period", h.handlePeriod)

	// Full amortization schedule
	mux.HandleFunc("/api/schedule", h.handleSchedule)

	// Version endpoint for client metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

type termsRequest struct {
	Principal float64 `json:"principal"`
	Payment   float64 `json:"payment"`
	Rate      float64 `json:"rate"`
	Period    int     `json:"period"`
	Periods   int     `json:"periods"`
}

type paymentResponse struct {
	Payment       float64 `json:"payment"`
	TotalPayment  float64 `json:"totalPayment"`
	TotalInterest float64 `json:"totalInterest"`
}

type maxPrincipalResponse struct {
	Principal float64 `json:"principal"`
}

type periodResponse struct {
	Payment   float64 `json:"payment"`
	Interest  float64 `json:"interest"`
	Principal float64 `json:"principal"`
	Balance   float64 `json:"balance"`
}

type scheduleResponse struct {
	Rows           engine.Schedule `json:"rows"`
	TotalPrincipal float64         `json:"totalPrincipal"`
	TotalInterest  float64         `json:"totalInterest"`
}

func (h *handler) decodeRequest(w http.ResponseWriter, r *http.Request) (*termsRequest, bool) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return nil, false
	}

	var req termsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return nil, false
	}
	return &req, true
}

func (h *handler) writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}

func (h *handler) handlePayment(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	payment, err := engine.Payment(req.Principal, req.Rate, req.Periods)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Scalar responses are rounded to cents; schedule rows are not, so their
	// column sums stay exact. Totals derive from the rounded payment to keep
	// the response internally consistent.
	payment = mathutil.Round(payment)
	total := payment * float64(req.Periods)
	h.writeJSON(w, paymentResponse{
		Payment:       payment,
		TotalPayment:  mathutil.Round(total),
		TotalInterest: mathutil.Round(total - req.Principal),
	})
}

func (h *handler) handleMaxPrincipal(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	principal, err := engine.MaxPrincipal(req.Payment, req.Rate, req.Periods)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.writeJSON(w, maxPrincipalResponse{Principal: mathutil.Round(principal)})
}

func (h *handler) handlePeriod(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	payment, err := engine.Payment(req.Principal, req.Rate, req.Periods)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	interest, err := engine.InterestPayment(req.Principal, req.Rate, req.Period, req.Periods)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	balance, err := engine.RemainingBalance(req.Principal, req.Rate, req.Period, req.Periods)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	payment = mathutil.Round(payment)
	interest = mathutil.Round(interest)
	h.writeJSON(w, periodResponse{
		Payment:   payment,
		Interest:  interest,
		Principal: payment - interest,
		Balance:   mathutil.Round(balance),
	})
}

func (h *handler) handleSchedule(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	key := cache.Key(req.Principal, req.Rate, req.Periods)
	if h.cache != nil {
		if cached, hit := h.cache.Get(key); hit {
			h.logger.Debug("serving cached schedule",
				zap.String("op", "server.handleSchedule"),
				zap.String("key", key),
			)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(cached))
			return
		}
	}

	schedule, err := h.generator.GenerateSchedule(req.Principal, req.Rate, req.Periods)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := scheduleResponse{
		Rows:           schedule,
		TotalPrincipal: schedule.TotalPrincipal(),
		TotalInterest:  schedule.TotalInterest(),
	}

	body, err := json.Marshal(resp)
	if err != nil {
		h.logger.Error("failed to encode schedule",
			zap.String("op", "server.handleSchedule"),
			zap.Error(err),
		)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if h.cache != nil {
		// Cache failures are not fatal; the next request recomputes.
		if err := h.cache.Set(key, string(body)); err != nil {
			h.logger.Warn("failed to cache schedule",
				zap.String("op", "server.handleSchedule"),
				zap.String("key", key),
				zap.Error(err),
			)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	h.writeJSON(w, map[string]string{"version": h.version})
}
