package main

/*
 * tonaddr - raw msg_address to user-friendly TON address converter
 *
 * Converts hex dumps of serialized msg_address records (as printed by
 * contract getters, optionally wrapped in Cell{...}) into the base64url
 * friendly form, and inspects friendly addresses back into raw form.
 *
 * Example usage:
 * ./tonaddr convert 00438002a3a4fdecfc7d88b9e00213ec4b253dda4b481fb7617c690e4ab4500d5d918d30
 * ./tonaddr convert --file records.txt --raw
 * ./tonaddr inspect UYACo6T97Px9iLngAhPsSyU92ktIH7dhfGkOSrRQDV2RjXeE
 */

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tvirgg/p2p-sc-v2/config"
)

// Calling os.Exit() directly will not honor any defer'd statements.
// Instead, we panic with an exit value and handle it in exitHandler.
type exit struct {
	RC int // The exit code
}

func exitHandler() {
	if err := recover(); err != nil {
		if exit, ok := err.(exit); ok {
			os.Exit(exit.RC)
		}

		// It's not actually an exit type, restore panic
		panic(err)
	}
}

// Requires that main have defer exitHandler() called first
func maybeFail(err error, errfmt string, params ...interface{}) {
	if err == nil {
		return
	}
	logger.WithError(err).Errorf(errfmt, params...)
	panic(exit{1})
}

var (
	logLevel string
	logFile  string
	logger   *log.Logger
	v        = viper.New()
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tonaddr",
		Short: "TON msg_address converter",
		Long:  "tonaddr converts serialized msg_address records into user-friendly TON addresses and back.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			//If no arguments passed, we should fallback to help
			cmd.HelpFunc()(cmd, args)
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Load(v, "."); err != nil {
				return err
			}
			config.BindFlagSet(v, cmd.Flags())
			return configureLogger()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info", "verbosity of logs: [error, warn, info, debug, trace]")
	rootCmd.PersistentFlags().StringVarP(&logFile, "log-file", "", "", "write logs to this file instead of stderr")

	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newInspectCmd())
	return rootCmd
}

func configureLogger() error {
	level, err := log.ParseLevel(strings.ToLower(logLevel))
	if err != nil {
		return err
	}
	logger.SetLevel(level)

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
		if err != nil {
			return err
		}
		logger.SetOutput(f)
	}
	return nil
}

func init() {
	logger = log.New()
	logger.SetFormatter(&log.JSONFormatter{
		DisableHTMLEscape: true,
	})
	logger.SetOutput(os.Stderr)
	logger.SetLevel(log.InfoLevel)
}

func main() {
	defer exitHandler()

	err := newRootCmd().Execute()
	maybeFail(err, "tonaddr failed")
}
