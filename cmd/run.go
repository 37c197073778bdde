package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli/v2"
	walletkit "github.com/zkbridge/walletkit"
	"github.com/zkbridge/walletkit/healthcheck"
	"github.com/zkbridge/walletkit/log"
	"github.com/zkbridge/walletkit/pprof"
	"github.com/zkbridge/walletkit/prometheus"
	"github.com/zkbridge/walletkit/types"
	"github.com/zkbridge/walletkit/wallet/metrics"
	"github.com/zkbridge/walletkit/walletservice"
)

func start(cliCtx *cli.Context) error {
	cfg, err := loadConfig(cliCtx)
	if err != nil {
		return err
	}

	if cfg.Log.Environment == log.EnvironmentDevelopment {
		walletkit.PrintVersion(os.Stdout)
		log.Info("Starting application")
	} else if cfg.Log.Environment == log.EnvironmentProduction {
		logVersion()
	}

	if cfg.Prometheus.Enabled {
		prometheus.Init()
		metrics.Register()
	}

	ctx, cancel := context.WithCancel(cliCtx.Context)
	env, err := newRuntimeEnv(ctx, cfg)
	if err != nil {
		cancel()
		return err
	}
	defer env.Close()

	if cfg.REST.Enabled {
		health := healthcheck.NewHealthCheckHandler(log.WithFields("module", "healthcheck")).
			WithCheck("l1", chainCheck(env.l1)).
			WithCheck("l2", chainCheck(env.l2))
		service := walletservice.New(
			log.WithFields("module", "walletservice"),
			cfg.REST.ReadTimeout.Duration,
			cfg.REST.WriteTimeout.Duration,
			env.wallet,
			env.tokens,
			env.store,
			health,
		)
		go func() {
			address := fmt.Sprintf("%s:%d", cfg.REST.Host, cfg.REST.Port)
			if err := service.Start(ctx, address); err != nil {
				log.Fatal(err)
			}
		}()
	}

	if cfg.Prometheus.Enabled {
		go startPrometheusHTTPServer(cfg.Prometheus)
	} else {
		log.Info("metrics are disabled")
	}

	if cfg.Profiling.Enabled {
		go func() {
			if err := pprof.StartProfilingHTTPServer(ctx, cfg.Profiling); err != nil {
				log.Error(err)
			}
		}()
	}

	waitSignal([]context.CancelFunc{cancel})

	return nil
}

// chainCheck is healthy while the node answers its chain id
func chainCheck(client types.ChainClienter) healthcheck.Check {
	return func(ctx context.Context) error {
		_, err := client.ChainID(ctx)
		return err
	}
}

func logVersion() {
	log.Infow("Starting application",
		// version is already logged by default
		"gitRevision", walletkit.GitRev,
		"gitBranch", walletkit.GitBranch,
		"goVersion", runtime.Version(),
		"built", walletkit.BuildDate,
		"os/arch", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	)
}

func waitSignal(cancelFuncs []context.CancelFunc) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt)

	for sig := range signals {
		switch sig {
		case os.Interrupt, os.Kill:
			log.Info("terminating application gracefully...")
			for _, cancel := range cancelFuncs {
				cancel()
			}
			// let the REST service drain its connections
			time.Sleep(time.Second)
			return
		}
	}
}

func startPrometheusHTTPServer(c prometheus.Config) {
	const ten = 10
	mux := http.NewServeMux()
	lis, err := net.Listen("tcp", c.Address())
	if err != nil {
		log.Errorf("failed to create tcp listener for metrics: %v", err)
		return
	}
	mux.Handle(prometheus.Endpoint, promhttp.HandlerFor(prometheus.Gatherer(), promhttp.HandlerOpts{}))

	metricsServer := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: ten * time.Second,
		ReadTimeout:       ten * time.Second,
	}
	log.Infof("prometheus server listening on %s", c.Address())
	if err := metricsServer.Serve(lis); err != nil {
		if err == http.ErrServerClosed {
			log.Warnf("prometheus http server stopped")
			return
		}
		log.Errorf("closed http connection for prometheus server: %v", err)
		return
	}
}
