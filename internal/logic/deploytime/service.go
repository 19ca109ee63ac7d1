package deploytime

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/skillcoder/deploytime-exporter/internal/infra/metrics"
)

// Service runs generation passes on a schedule and keeps the result of the
// last successful pass for the metrics collector.
type Service struct {
	logger     *slog.Logger
	repo       Repository
	generator  *Generator
	schedule   schedule
	namespaces []string
	staleAfter time.Duration
	ready      chan struct{}
	doneCh     chan struct{}
	started    atomic.Bool
	inShutdown atomic.Bool

	mu              sync.RWMutex
	snapshot        []DeployTimeMetric
	lastPassEndTime time.Time
}

// New creates a new exporter service. When namespaces is empty, every
// namespace running pods with the application label is watched.
func New(
	logger *slog.Logger,
	repo Repository,
	generator *Generator,
	schedule schedule,
	namespaces []string,
	staleAfter time.Duration,
) *Service {
	return &Service{
		logger:     logger,
		repo:       repo,
		generator:  generator,
		schedule:   schedule,
		namespaces: namespaces,
		staleAfter: staleAfter,
		ready:      make(chan struct{}),
		doneCh:     make(chan struct{}),
	}
}

func (s *Service) Start(ctx context.Context) error {
	if s.inShutdown.Load() {
		s.logger.InfoContext(ctx, "exporter service is shutting down, skipping start")

		return nil
	}

	s.started.Store(true)

	go s.RunCommand(ctx)

	return nil
}

// Name returns the name of the exporter component
func (s *Service) Name() string {
	return "deploytime-exporter"
}

// Ping fails until the first successful pass and whenever the pass scheduled
// after the last successful one is overdue by more than the staleness limit.
func (s *Service) Ping(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.ready:
		lastPassEndTime := s.getLastPassEndTime()
		if lastPassEndTime.IsZero() {
			return ErrNoGenerationPass
		}

		return s.checkStale(lastPassEndTime, time.Now())
	default:
		return errors.New("exporter service is not ready")
	}
}

// checkStale counts staleness from the pass due after lastPassEndTime.
func (s *Service) checkStale(lastPassEndTime, now time.Time) error {
	due := s.schedule.Next(lastPassEndTime)
	if due.IsZero() {
		due = lastPassEndTime
	}

	overdue := now.Sub(due)
	if overdue > s.staleAfter {
		return fmt.Errorf("%w: last pass ended %s ago, next was due %s ago",
			ErrStaleSnapshot,
			now.Sub(lastPassEndTime).Round(time.Second),
			overdue.Round(time.Second),
		)
	}

	return nil
}

// PingerCritical reports that a stale snapshot only affects readiness.
// Restarting the process does not make the API server reachable again.
func (s *Service) PingerCritical() bool {
	return false
}

func (s *Service) Shutdown(ctx context.Context) error {
	if !s.inShutdown.CompareAndSwap(false, true) {
		s.logger.ErrorContext(ctx, "exporter service is already shutting down, skipping shutdown")

		return nil
	}

	defer func() {
		s.logger.InfoContext(ctx, "exporter service shut downed")
	}()

	s.logger.InfoContext(ctx, "shutting down exporter service")

	if !s.started.Load() {
		return nil
	}

	select {
	case <-ctx.Done():
		return fmt.Errorf("shutdown context done before exporter loop exited: %w", ctx.Err())
	case <-s.doneCh:
		s.logger.InfoContext(ctx, "exporter loop exited")
	}

	return nil
}

func (s *Service) Ready() <-chan struct{} {
	return s.ready
}

// Snapshot returns a copy of the metrics of the last successful generation pass.
func (s *Service) Snapshot() []DeployTimeMetric {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := slices.Clone(s.snapshot)
	for i := range records {
		records[i].Labels = maps.Clone(records[i].Labels)
	}

	return records
}

// RefreshCommand runs one generation pass and replaces the snapshot on success.
// A failed pass keeps the previous snapshot.
func (s *Service) RefreshCommand(ctx context.Context) error {
	logger := s.logger.With("controller", "RefreshCommand", "pass", uuid.NewString())
	start := time.Now()

	namespaces, err := s.WatchedNamespacesQuery(ctx)
	if err != nil {
		metrics.RecordGenerationPass(passResultFailure, time.Since(start))

		return fmt.Errorf("watched namespaces: %w", err)
	}

	logger.DebugContext(ctx, "starting generation pass", "namespaces", namespaces)

	records, err := s.generator.GenerateMetricsQuery(ctx, namespaces)
	if err != nil {
		metrics.RecordGenerationPass(passResultFailure, time.Since(start))

		return fmt.Errorf("generate metrics: %w", err)
	}

	duration := time.Since(start)

	s.setSnapshot(records)
	metrics.RecordGenerationPass(passResultSuccess, duration)
	metrics.SetDeployTimeRecords(len(records))

	logger.InfoContext(ctx, "generation pass completed",
		"namespaces", len(namespaces),
		"metrics", len(records),
		"duration", duration,
	)

	return nil
}

// WatchedNamespacesQuery returns the configured namespaces, or discovers the
// namespaces of pods carrying the application label.
func (s *Service) WatchedNamespacesQuery(ctx context.Context) ([]string, error) {
	if len(s.namespaces) > 0 {
		return s.namespaces, nil
	}

	selectors := []string{s.generator.labels.App}
	if s.generator.podLabelSelector != "" {
		selectors = append(selectors, s.generator.podLabelSelector)
	}

	namespaces, err := s.repo.ListPodNamespacesQuery(ctx, strings.Join(selectors, ","))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDiscoverNamespaces, err)
	}

	return namespaces, nil
}

// RunCommand runs generation passes until the context is cancelled.
func (s *Service) RunCommand(ctx context.Context) {
	defer close(s.doneCh)

	logger := s.logger.With("controller", "RunCommand")

	close(s.ready)

	for {
		err := s.RefreshCommand(ctx)
		if err != nil {
			logger.ErrorContext(ctx, "generation pass error", "reason", err)
		}

		now := time.Now()

		next := s.schedule.Next(now)
		if !next.After(now) {
			logger.ErrorContext(ctx, "schedule has no further pass, waiting for shutdown", "next", next)
			<-ctx.Done()

			return
		}

		timer := time.NewTimer(next.Sub(now))

		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			logger.InfoContext(ctx, "terminating main exporter loop")

			return
		}
	}
}

func (s *Service) getLastPassEndTime() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lastPassEndTime
}

func (s *Service) setSnapshot(records []DeployTimeMetric) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot = records
	s.lastPassEndTime = time.Now()
}
