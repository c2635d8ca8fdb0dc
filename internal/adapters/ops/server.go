// Package ops exposes the operational endpoint: health, metrics, and a
// read-only tail of the audit trail. It is off unless OPS_ADDR is set and
// carries no reservation operations.
package ops

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"hotel_desk/internal/adapters/observability"
	"hotel_desk/internal/app"
)

type Server struct{ mux *chi.Mux }

func New(desk *app.DeskService, reg *prometheus.Registry) *Server {
	m := chi.NewRouter()

	// Middlewares before any routes are added.
	m.Use(chimw.RealIP)
	m.Use(chimw.RequestID)
	m.Use(chimw.Recoverer)
	m.Use(Timeout(10 * time.Second))
	m.Use(Metrics)
	m.Use(Logger(log.Logger))

	m.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	m.Handle("/metrics", observability.MetricsHandler(reg))
	m.Get("/v1/audit", auditTail(desk))

	return &Server{mux: m}
}

func (s *Server) Mux() http.Handler { return s.mux }

func auditTail(desk *app.DeskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 50
		if ls := r.URL.Query().Get("limit"); ls != "" {
			l, err := strconv.Atoi(ls)
			if err != nil || l <= 0 || l > 500 {
				http.Error(w, "limit must be an integer between 1 and 500", http.StatusBadRequest)
				return
			}
			limit = l
		}
		lines := desk.AuditTail(limit)
		if lines == nil {
			lines = []string{}
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{"lines": lines}); err != nil {
			log.Error().Err(err).Msg("write audit tail failed")
		}
	}
}
