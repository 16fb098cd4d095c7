package cmdutil

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

// ServeMetrics exposes the prometheus registry on addr until ctx is done
// and returns the address it listens on.
func ServeMetrics(ctx context.Context, addr string) (net.Addr, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to listen on %s for metrics", addr)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("metrics server shutdown error")
		}
	}()

	go func() {
		log.Infof("serving metrics on %s/metrics", listener.Addr())
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Errorf("metrics server error")
		}
	}()

	return listener.Addr(), nil
}
