package pprof

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/zkbridge/walletkit/log"
)

const (
	IndexEndpoint   = "/debug/pprof/"
	ProfileEndpoint = "/debug/pprof/profile"
	CmdlineEndpoint = "/debug/pprof/cmdline"
	SymbolEndpoint  = "/debug/pprof/symbol"
	TraceEndpoint   = "/debug/pprof/trace"

	serverTimeout = 2 * time.Minute
)

// Handler serves the runtime profiles
func Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(IndexEndpoint, pprof.Index)
	mux.HandleFunc(ProfileEndpoint, pprof.Profile)
	mux.HandleFunc(CmdlineEndpoint, pprof.Cmdline)
	mux.HandleFunc(SymbolEndpoint, pprof.Symbol)
	mux.HandleFunc(TraceEndpoint, pprof.Trace)
	return mux
}

// StartProfilingHTTPServer serves the profiles on the configured address until ctx is done
func StartProfilingHTTPServer(ctx context.Context, c Config) error {
	lis, err := net.Listen("tcp", fmt.Sprintf("%s:%d", c.Host, c.Port))
	if err != nil {
		return fmt.Errorf("failed to create tcp listener for profiling: %w", err)
	}
	return serve(ctx, lis)
}

func serve(ctx context.Context, lis net.Listener) error {
	srv := &http.Server{
		Handler:           Handler(),
		ReadHeaderTimeout: serverTimeout,
		ReadTimeout:       serverTimeout,
	}
	go func() {
		<-ctx.Done()
		if err := srv.Close(); err != nil {
			log.Warnf("closing profiling server: %v", err)
		}
	}()
	log.Infof("profiling server listening on %s", lis.Addr())
	if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("closed http connection for profiling server: %w", err)
	}
	log.Warnf("http server for profiling stopped")
	return nil
}
