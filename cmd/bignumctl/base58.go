package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.firedancer.io/bignum/pkg/bigint"
)

func newBase58Cmd() *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "base58 <encode|decode> <value>",
		Short: "Fixed-width (32 or 64 byte) base58 encode/decode of a BigInt",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "encode":
				x, err := bigint.FromString(args[1])
				if err != nil {
					return err
				}
				enc, err := x.Base58Wide(width)
				if err != nil {
					return err
				}
				fmt.Println(enc)
				return nil
			case "decode":
				x, err := bigint.FromBase58Wide(args[1], width)
				if err != nil {
					return err
				}
				fmt.Println(x)
				return nil
			default:
				return fmt.Errorf("bignumctl: base58 subcommand must be encode or decode, got %q", args[0])
			}
		},
	}
	cmd.Flags().IntVar(&width, "width", 32, "fixed encoding width in bytes (32 or 64)")
	return cmd
}
