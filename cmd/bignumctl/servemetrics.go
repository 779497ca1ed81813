package main

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"go.firedancer.io/bignum/pkg/metrics"
)

func newServeMetricsCmd(reg *metrics.Registry) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve-metrics",
		Short: "Expose the Prometheus metrics recorded by other bignumctl subcommands over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			promReg := prometheus.NewRegistry()
			if err := reg.Register(promReg); err != nil {
				return err
			}
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.HandlerFor(promReg, promhttp.HandlerOpts{}))

			srv := &http.Server{Addr: addr, Handler: mux}
			klog.Infof("serve-metrics: listening on %s", addr)
			err := srv.ListenAndServe()
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":9400", "address to serve /metrics on")
	return cmd
}
