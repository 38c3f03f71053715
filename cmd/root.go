package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oshokin/localapi-logger/internal/app"
	"github.com/oshokin/localapi-logger/internal/config"
	"github.com/oshokin/localapi-logger/internal/logger"
)

var (
	//nolint:gochecknoglobals // It is required for configuration initialization before the application starts.
	configFilenameFromFlag string

	//nolint:gochecknoglobals,lll // It is initialized once during the application's startup and shared across the command execution logic.
	appConfig *config.Config

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	rootCmd = &cobra.Command{
		Use:   "localapi-logger [flags] {urls}",
		Short: "Send requests and log the ones aimed at the local backend.",
		Long: `localapi-logger issues HTTP requests through a transport that logs every
request aimed at the local development backend (localhost:8080 by default).

Logging is active only when the front-end origin runs on a local-development host
(localhost or 127.0.0.1 by default). Requests, responses and errors are never modified.`,
		Args:             cobra.MinimumNArgs(1),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, urls []string) {
			if err := bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
				logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
			}

			logger.SetLevel(appConfig.ParsedLogLevel)

			app.ExecuteRootCommand(cmd.Context(), appConfig, requestOptionsFromFlags(cmd.Flags()), urls)
		},
	}
)

// Execute executes the root command.
func Execute() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	defer func() {
		_ = logger.Logger().Sync()
	}()

	defer stop()

	go func() {
		defer stop()

		err := rootCmd.ExecuteContext(ctx)
		cobra.CheckErr(err)
	}()

	<-ctx.Done()
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	rootCmd.PersistentFlags().StringVarP(
		&configFilenameFromFlag,
		"config",
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is '%s')",
			config.DefaultConfigFilename))

	registerRootFlags(rootCmd.Flags())
}

// registerRootFlags declares the request and configuration override flags.
func registerRootFlags(flags *pflag.FlagSet) {
	flags.StringP(
		"method",
		"X",
		"",
		"HTTP method of every request (default GET).")

	flags.StringArrayP(
		"header",
		"H",
		nil,
		"request header in 'Name: value' form, can be repeated.")

	flags.StringP(
		"data",
		"d",
		"",
		"request body.")

	flags.String(
		"origin",
		"",
		"front-end origin URL, its hostname decides whether logging is active, for example: http://localhost:3000.")

	flags.String(
		"marker",
		"",
		"URL substring that identifies the local backend, for example: localhost:8080.")

	flags.StringSlice(
		"local-hosts",
		nil,
		"host identifiers that activate logging, for example: localhost,127.0.0.1,::1.")

	flags.String(
		"log-level",
		"",
		"log level: debug, info, warn, error.")
}

func initConfig(cmd *cobra.Command, _ []string) {
	var err error

	appConfig, err = config.LoadConfig(configFilenameFromFlag)
	if err != nil {
		logger.Fatalf(cmd.Context(), "Failed to load configuration: %v", err)
	}
}

func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if flag := flags.Lookup("origin"); flag != nil && flag.Changed {
		cfg.OriginURL, _ = flags.GetString("origin")
	}

	if flag := flags.Lookup("marker"); flag != nil && flag.Changed {
		cfg.BackendMarker, _ = flags.GetString("marker")
	}

	if flag := flags.Lookup("local-hosts"); flag != nil && flag.Changed {
		cfg.LocalHosts, _ = flags.GetStringSlice("local-hosts")
	}

	if flag := flags.Lookup("log-level"); flag != nil && flag.Changed {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}

	return config.ValidateConfig(cfg)
}

func requestOptionsFromFlags(flags *pflag.FlagSet) *app.RequestOptions {
	var opts app.RequestOptions

	opts.Method, _ = flags.GetString("method")
	opts.Headers, _ = flags.GetStringArray("header")
	opts.Body, _ = flags.GetString("data")

	return &opts
}
