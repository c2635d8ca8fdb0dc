package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"hotel_desk/internal/adapters/audit"
	"hotel_desk/internal/adapters/console"
	"hotel_desk/internal/adapters/observability"
	"hotel_desk/internal/adapters/ops"
	"hotel_desk/internal/app"
	"hotel_desk/internal/domain"
	"hotel_desk/internal/shared"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	sink := newSink(cfg)

	hotel := domain.NewHotel(cfg.HotelName, sink)
	seedCatalog(hotel)

	session := console.NewSession(os.Stdin, os.Stdout)
	name, budget, err := session.Greet()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			log.Error().Err(err).Msg("reading guest details failed")
		}
		closeSink(sink)
		return
	}

	guest := domain.NewCustomer(name, budget)
	guest.Loyalty = cfg.Loyalty
	desk := app.NewDeskService(hotel, guest, log.Logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	if cfg.OpsAddr != "" {
		reg := observability.InitRegistry()
		srv := &http.Server{
			Addr:              cfg.OpsAddr,
			Handler:           ops.New(desk, reg).Mux(),
			ReadHeaderTimeout: 5 * time.Second,
		}
		g.Go(func() error {
			log.Info().Str("addr", cfg.OpsAddr).Msg("ops endpoint listening")
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutCtx)
		})
	}

	g.Go(func() error {
		defer stop() // session over: wind down the ops endpoint too
		return session.Run(ctx, desk)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("session ended with error")
	}
	closeSink(sink)
}

func newSink(cfg shared.Config) domain.AuditSink {
	if cfg.AuditBackend == "redis" {
		log.Info().Str("addr", cfg.RedisAddr).Str("key", cfg.AuditListKey).Msg("audit sink: redis")
		return audit.NewRedis(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, cfg.AuditListKey)
	}
	s, err := audit.NewFile(cfg.AuditLogPath)
	if err != nil {
		log.Fatal().Err(err).Msg("open audit log failed")
	}
	log.Info().Str("path", cfg.AuditLogPath).Msg("audit sink: file")
	return s
}

func closeSink(sink domain.AuditSink) {
	if err := sink.Close(); err != nil {
		log.Error().Err(err).Msg("audit sink close failed")
	}
}

func seedCatalog(h *domain.Hotel) {
	for _, r := range []*domain.Room{
		domain.NewRoom(5, "Single", 80, 1),
		domain.NewRoom(10, "Double", 160, 2),
		domain.NewRoom(15, "Family", 300, 4),
	} {
		if err := h.AddRoom(r); err != nil {
			log.Fatal().Err(err).Int("room", r.Number).Msg("seed catalog failed")
		}
	}
}
