package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	apischedule "github.com/prakharVirus1289/calender-scheduler/api/schedule"
	"github.com/prakharVirus1289/calender-scheduler/config"
	coremetrics "github.com/prakharVirus1289/calender-scheduler/core/metrics"
	"github.com/prakharVirus1289/calender-scheduler/infra/logger"
	"github.com/prakharVirus1289/calender-scheduler/infra/metrics"
	"github.com/prakharVirus1289/calender-scheduler/infra/store"
)

// Service wires the scheduling API together: storage, metrics, logging and
// the HTTP server.
type Service struct {
	cfg *config.Config
	log logger.Logger
	srv *http.Server
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	st, err := store.NewJSONStore(cfg.Storage.Dir)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	var sink coremetrics.Sink = coremetrics.NopSink{}
	if cfg.Metrics.PrometheusEnabled {
		promSink, err := metrics.NewPromSink()
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sink = promSink
	}

	handler := apischedule.NewHandler(st, sink, logger.New("api"))

	r := chi.NewRouter()
	r.Mount("/api", handler.Routes())

	srv := &http.Server{Addr: cfg.Server.Addr, Handler: r}
	return &Service{cfg: cfg, log: logg, srv: srv}, nil
}

// Run starts the HTTP server, and the Prometheus endpoint when enabled, and
// blocks until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	if s.cfg.Metrics.PrometheusEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusPort); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Infof("listening on %s", s.cfg.Server.Addr)
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.srv.Shutdown(shutdownCtx)
}
