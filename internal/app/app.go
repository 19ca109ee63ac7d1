package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/tools/clientcmd"

	"github.com/skillcoder/deploytime-exporter/internal/adapters/inbound/promexporter"
	"github.com/skillcoder/deploytime-exporter/internal/adapters/outbound/k8s"
	"github.com/skillcoder/deploytime-exporter/internal/config"
	"github.com/skillcoder/deploytime-exporter/internal/httpserver"
	"github.com/skillcoder/deploytime-exporter/internal/infra/schedule"
	"github.com/skillcoder/deploytime-exporter/internal/infra/shutdown"
	"github.com/skillcoder/deploytime-exporter/internal/logic/deploytime"
)

type App struct {
	logger        *slog.Logger
	appState      appstater
	signalHandler signalHandler
	pinger        component
	components    []appServer
}

// New creates a new application instance with all dependencies wired.
// Components are shut down in reverse order of the list built here.
func New(
	logger *slog.Logger,
	cfg *config.Config,
	appState appstater,
	pingers component,
) (*App, error) {
	exporter, err := NewExporter(logger, cfg)
	if err != nil {
		return nil, err
	}

	err = prometheus.DefaultRegisterer.Register(promexporter.NewCollector(exporter))
	if err != nil {
		return nil, fmt.Errorf("register deploy time collector: %w", err)
	}

	httpServer := httpserver.New(logger, appState, cfg.HTTPPort)
	metricsServer := httpserver.NewMetricsServer(logger, cfg.MetricsPort, prometheus.DefaultGatherer)

	components := []appServer{httpServer, metricsServer, exporter}

	for _, c := range components {
		if err := appState.RegisterPinger(c); err != nil {
			return nil, fmt.Errorf("register pinger %s: %w", c.Name(), err)
		}
	}

	appState.RegisterShutdowner(httpServer)
	appState.RegisterShutdowner(metricsServer)
	appState.RegisterShutdowner(pingers)
	appState.RegisterShutdowner(exporter)

	return &App{
		logger:        logger,
		appState:      appState,
		signalHandler: shutdown.New(logger, appState),
		pinger:        pingers,
		components:    components,
	}, nil
}

// NewExporter builds the exporter service and its Kubernetes repository from cfg.
func NewExporter(logger *slog.Logger, cfg *config.Config) (*deploytime.Service, error) {
	kubeConfig, err := clientcmd.BuildConfigFromFlags(
		cfg.KubeMaster,
		cfg.KubeConfig,
	)
	if err != nil {
		return nil, fmt.Errorf("build k8s config: %w", err)
	}

	clientset, err := kubernetes.NewForConfig(kubeConfig)
	if err != nil {
		return nil, fmt.Errorf("create clientset: %w", err)
	}

	dynamicClient, err := dynamic.NewForConfig(kubeConfig)
	if err != nil {
		return nil, fmt.Errorf("create dynamic client: %w", err)
	}

	passSchedule, err := schedule.New(cfg.Schedule, cfg.ScheduleTZ, cfg.Interval)
	if err != nil {
		return nil, fmt.Errorf("generation schedule: %w", err)
	}

	repo := k8s.New(logger.With("component", "k8s"), clientset, dynamicClient)
	generator := deploytime.NewGenerator(logger, repo, cfg.LabelKeys(), cfg.ProdLabel)

	logger.Info("exporter configured",
		"namespaces", cfg.Namespaces,
		"appLabel", cfg.AppLabel,
		"serverlessLabel", cfg.ServerlessLabel,
		"prodLabel", cfg.ProdLabel,
		"schedule", passSchedule.String(),
	)

	return deploytime.New(logger, repo, generator, passSchedule, cfg.Namespaces, cfg.StaleAfter), nil
}

// Run starts the application and blocks until a termination signal arrives
// or the context is cancelled.
func (a *App) Run(originCtx context.Context) error {
	ctx, cancel := context.WithCancel(originCtx)
	defer cancel()

	go a.signalHandler.HandleSignals(ctx, cancel)

	if err := a.appState.SetStarting(ctx); err != nil {
		return fmt.Errorf("set starting: %w", err)
	}

	startErr := a.start(ctx)
	if startErr == nil {
		a.logger.InfoContext(ctx, "application is running")
		<-ctx.Done()
	}

	cancel()

	err := a.appState.Shutdown(originCtx)

	return errors.Join(startErr, err)
}

func (a *App) start(ctx context.Context) error {
	readyChans := make([]<-chan struct{}, 0, len(a.components)+1)

	for _, c := range a.components {
		if err := c.Start(ctx); err != nil {
			return fmt.Errorf("start %s: %w", c.Name(), err)
		}

		readyChans = append(readyChans, c.Ready())
	}

	if err := a.pinger.Start(ctx); err != nil {
		return fmt.Errorf("start %s: %w", a.pinger.Name(), err)
	}

	readyChans = append(readyChans, a.pinger.Ready())

	<-allChannelsClose(ctx, a.logger, readyChans...)

	if ctx.Err() != nil {
		return nil
	}

	if err := a.appState.SetRunning(ctx); err != nil {
		return fmt.Errorf("set running: %w", err)
	}

	return nil
}

// allChannelsClose returns a channel that is closed once every given channel
// is closed or ctx is done.
func allChannelsClose(ctx context.Context, logger *slog.Logger, chans ...<-chan struct{}) <-chan struct{} {
	out := make(chan struct{})

	go func() {
		defer close(out)

		for _, ch := range chans {
			select {
			case <-ch:
			case <-ctx.Done():
				logger.DebugContext(ctx, "stopped waiting for components readiness", "reason", ctx.Err())

				return
			}
		}
	}()

	return out
}
