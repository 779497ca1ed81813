package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"go.firedancer.io/bignum/pkg/bigdecimal"
)

func newDecimalCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decimal",
		Short: "BigDecimal arithmetic under a MathContext",
	}
	cmd.AddCommand(newDecimalArithCmd("add", bigdecimal.Add))
	cmd.AddCommand(newDecimalArithCmd("sub", bigdecimal.Sub))
	cmd.AddCommand(newDecimalArithCmd("mul", bigdecimal.Mul))
	cmd.AddCommand(newDecimalDivCmd(cfg))
	cmd.AddCommand(newDecimalSetScaleCmd(cfg))
	return cmd
}

func newDecimalArithCmd(name string, op func(a, b *bigdecimal.Decimal) (*bigdecimal.Decimal, error)) *cobra.Command {
	var engineering bool
	cmd := &cobra.Command{
		Use:   name + " <a> <b>",
		Short: name + " two BigDecimal values",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bigdecimal.Parse(args[0])
			if err != nil {
				return err
			}
			b, err := bigdecimal.Parse(args[1])
			if err != nil {
				return err
			}
			result, err := op(a, b)
			if err != nil {
				return err
			}
			klog.V(2).Infof("decimal %s(%s,%s) -> %s", name, args[0], args[1], result)
			fmt.Println(formatDecimal(result, engineering))
			return nil
		},
	}
	cmd.Flags().BoolVar(&engineering, "engineering", false, "print using engineering notation")
	return cmd
}

func newDecimalDivCmd(cfg *Config) *cobra.Command {
	var precision uint32
	var roundingFlag string
	var exact bool
	var engineering bool

	cmd := &cobra.Command{
		Use:   "div <a> <b>",
		Short: "Divide two BigDecimal values under a MathContext",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bigdecimal.Parse(args[0])
			if err != nil {
				return err
			}
			b, err := bigdecimal.Parse(args[1])
			if err != nil {
				return err
			}
			if exact {
				result, err := bigdecimal.DivideExact(a, b)
				if err != nil {
					return err
				}
				fmt.Println(formatDecimal(result, engineering))
				return nil
			}
			if precision == 0 {
				precision = cfg.Decimal.Precision
			}
			roundingName := roundingFlag
			if roundingName == "" {
				roundingName = cfg.Decimal.Rounding
			}
			mode, err := parseRoundingMode(roundingName)
			if err != nil {
				return err
			}
			result, err := bigdecimal.DivideContext(a, b, bigdecimal.MathContext{Precision: precision, Mode: mode})
			if err != nil {
				return err
			}
			klog.V(2).Infof("decimal div(%s,%s) precision=%d mode=%s -> %s", args[0], args[1], precision, roundingName, result)
			fmt.Println(formatDecimal(result, engineering))
			return nil
		},
	}
	cmd.Flags().Uint32Var(&precision, "precision", 0, "MathContext precision (0 uses config default)")
	cmd.Flags().StringVar(&roundingFlag, "mode", "", "rounding mode: UP, DOWN, CEILING, FLOOR, HALF_UP, HALF_DOWN, HALF_EVEN, UNNECESSARY")
	cmd.Flags().BoolVar(&exact, "exact", false, "require an exact (non-rounded) quotient")
	cmd.Flags().BoolVar(&engineering, "engineering", false, "print using engineering notation")
	return cmd
}

func newDecimalSetScaleCmd(cfg *Config) *cobra.Command {
	var scale int32
	var roundingFlag string

	cmd := &cobra.Command{
		Use:   "setscale <a>",
		Short: "Rescale a BigDecimal to the given scale under a rounding mode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bigdecimal.Parse(args[0])
			if err != nil {
				return err
			}
			roundingName := roundingFlag
			if roundingName == "" {
				roundingName = cfg.Decimal.Rounding
			}
			mode, err := parseRoundingMode(roundingName)
			if err != nil {
				return err
			}
			result, err := bigdecimal.SetScale(a, scale, mode)
			if err != nil {
				return err
			}
			fmt.Println(result)
			return nil
		},
	}
	cmd.Flags().Int32Var(&scale, "scale", 0, "target scale")
	cmd.Flags().StringVar(&roundingFlag, "mode", "", "rounding mode (empty uses config default)")
	return cmd
}

func formatDecimal(d *bigdecimal.Decimal, engineering bool) string {
	if engineering {
		return d.EngineeringString()
	}
	return d.String()
}
