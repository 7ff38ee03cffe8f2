package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tvirgg/p2p-sc-v2/cellhex"
	"github.com/tvirgg/p2p-sc-v2/msgaddr"
)

type convertOptions struct {
	file   string
	raw    bool
	strict bool
}

func newConvertCmd() *cobra.Command {
	opts := convertOptions{}
	cmd := &cobra.Command{
		Use:   "convert [hex...]",
		Short: "convert msg_address hex dumps to friendly addresses",
		Long:  "convert decodes hex dumps of serialized msg_address records, optionally wrapped in Cell{...}, and prints one friendly address per input.",
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := args
			if opts.file != "" {
				lines, err := readInputs(opts.file)
				if err != nil {
					return err
				}
				inputs = append(inputs, lines...)
			}
			if len(inputs) == 0 {
				return errors.New("provide hex records as arguments or with --file")
			}
			return runConvert(cmd.OutOrStdout(), inputs, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "read hex records from this file, one per line")
	cmd.Flags().BoolVar(&opts.raw, "raw", false, "also print the workchain:hash form")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "never drop a leading zero byte from the decoded record")
	return cmd
}

// readInputs returns the non-empty lines of path, skipping # comments.
func readInputs(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open input file")
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return lines, nil
}

func runConvert(out io.Writer, inputs []string, opts convertOptions) error {
	normalize := cellhex.Normalize
	if opts.strict {
		normalize = cellhex.NormalizeStrict
	}

	failed := 0
	for i, input := range inputs {
		l := logger.WithFields(log.Fields{"index": i, "input": input})

		raw, err := normalize(input)
		if err != nil {
			l.WithError(err).Error("could not decode record")
			failed++
			continue
		}

		workchain, hash, err := msgaddr.Decode(raw)
		if err != nil {
			l.WithError(err).Error("could not convert record")
			failed++
			continue
		}

		addr := msgaddr.Encode(workchain, hash)
		l.WithField("address", addr).Debug("converted record")
		if opts.raw {
			fmt.Fprintf(out, "%s %s\n", addr, msgaddr.Raw(workchain, hash))
		} else {
			fmt.Fprintln(out, addr)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d records failed", failed, len(inputs))
	}
	return nil
}
