// Command bignumctl is the ambient operator surface around the
// go.firedancer.io/bignum arithmetic core: an arbitrary-precision
// calculator, a probable-prime tester/search, a BigDecimal evaluator,
// a property-check fuzzing harness (spec.md §8), and a Prometheus
// metrics exporter. It follows the teacher repo's
// (go.firedancer.io/radiance) cobra/klog/yaml CLI conventions; none of
// this package's code is imported by the core packages, which stay
// pure per spec.md §5.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"go.firedancer.io/bignum/pkg/metrics"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	klog.Flush()
}

func newRootCmd() *cobra.Command {
	klog.InitFlags(nil)

	cfg := new(Config)
	reg := metrics.NewRegistry()

	root := &cobra.Command{
		Use:           "bignumctl",
		Short:         "Arbitrary-precision arithmetic calculator and diagnostics for go.firedancer.io/bignum",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}
			*cfg = *loaded
			return nil
		},
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", defaultConfigPath(), "path to bignumctl config (yaml)")
	root.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	root.AddCommand(newCalcCmd())
	root.AddCommand(newPrimeCmd(cfg))
	root.AddCommand(newDecimalCmd(cfg))
	root.AddCommand(newBase58Cmd())
	root.AddCommand(newBenchCmd(reg))
	root.AddCommand(newServeMetricsCmd(reg))
	return root
}

var cfgPath string
