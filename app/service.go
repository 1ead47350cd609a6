// Package app wires configuration, logging, metrics and the scheduling
// engine into a runnable service.
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	apiplanner "github.com/campsched/campsched/api/planner"
	"github.com/campsched/campsched/config"
	coremetrics "github.com/campsched/campsched/core/metrics"
	"github.com/campsched/campsched/core/planner"
	"github.com/campsched/campsched/infra/logger"
	"github.com/campsched/campsched/infra/metrics"
	"github.com/campsched/campsched/internal/eventbus"
)

// Service hosts the planning API and its observability plumbing.
type Service struct {
	Generator   *planner.Generator
	Suggestions planner.SuggestionEngine

	cfg  *config.Config
	bus  *eventbus.Bus[planner.PlanEvent]
	sink coremetrics.Sink
	log  logger.Logger
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")
	bus := eventbus.New[planner.PlanEvent]()

	var sink coremetrics.Sink = coremetrics.Nop{}
	if cfg.Metrics.PrometheusEnabled {
		prom, err := metrics.NewPromSink()
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sink = prom
	}

	return &Service{
		Generator:   planner.NewGenerator(cfg.Planner, logger.New("planner"), bus),
		Suggestions: planner.NewSuggestionEngine(cfg.Planner),
		cfg:         cfg,
		bus:         bus,
		sink:        sink,
		log:         logg,
	}, nil
}

// Run serves the planning API until the context is canceled.
func (s *Service) Run(ctx context.Context) error {
	metrics.StartEventCollector(ctx, s.bus, s.sink)
	if s.cfg.Metrics.PrometheusEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusPort); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	weeks := s.cfg.Weeks.Slots()
	var rec apiplanner.SuggestionRecorder
	if r, ok := s.sink.(coremetrics.SuggestionRecorder); ok {
		rec = r
	}
	mux := http.NewServeMux()
	mux.Handle("/api/plan", apiplanner.NewPlanHandler(s.Generator, weeks, s.log))
	mux.Handle("/api/plan/suggestions", apiplanner.NewSuggestionHandler(s.Suggestions, weeks, rec, s.log))

	srv := &http.Server{Addr: s.cfg.API.Listen, Handler: mux}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Errorf("api shutdown: %v", err)
		}
	}()
	s.log.Infof("planning API listening on %s", s.cfg.API.Listen)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	s.bus.Close()
	return nil
}
