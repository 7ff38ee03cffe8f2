package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/tvirgg/p2p-sc-v2/msgaddr"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <address>...",
		Short: "verify friendly addresses and print their raw form",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd.OutOrStdout(), args)
		},
	}
}

func runInspect(out io.Writer, addrs []string) error {
	for _, addr := range addrs {
		workchain, hash, err := msgaddr.ParseFriendly(addr)
		if err != nil {
			return errors.Wrapf(err, "invalid address %s", addr)
		}
		logger.WithField("address", addr).Debug("parsed address")

		fmt.Fprintf(out, "address:   %s\n", addr)
		fmt.Fprintf(out, "workchain: %d\n", workchain)
		fmt.Fprintf(out, "hash:      %s\n", hash)
		fmt.Fprintf(out, "raw:       %s\n", msgaddr.Raw(workchain, hash))
	}
	return nil
}
