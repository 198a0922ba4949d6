package commands

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"nycschools/internal/app"
)

var (
	home      string
	baseURL   string
	storeKind string
	output    string
	logLevel  string
	timeout   time.Duration
	envFile   string

	wire *app.Wire
)

// Execute runs the CLI with ctx as the base context of every command.
func Execute(ctx context.Context) error {
	return execute(ctx, newRoot())
}

// execute runs root and releases the wire whether or not the command failed.
func execute(ctx context.Context, root *cobra.Command) error {
	err := root.ExecuteContext(ctx)
	if wire != nil {
		err = errors.Join(err, wire.Close())
		wire = nil
	}
	return err
}

func newRoot() *cobra.Command {
	root := &cobra.Command{
		Use:          "nycschools",
		Short:        "Browse NYC schools and their average SAT scores",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(envFile)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("home") {
				cfg.Home = home
			}
			if flags.Changed("base-url") {
				cfg.BaseURL = baseURL
			}
			if flags.Changed("store") {
				cfg.Store = storeKind
			}
			if flags.Changed("output") {
				cfg.Output = output
			}
			if flags.Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if flags.Changed("timeout") {
				cfg.Timeout = timeout
			}
			if flags.Changed("metrics-addr") {
				cfg.MetricsAddr = metricsAddr
			}

			wire, err = app.NewWire(cfg, app.WithOutput(cmd.OutOrStdout()))
			return err
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&home, "home", "", "state dir (default ~/.nycschools)")
	pf.StringVar(&baseURL, "base-url", "", "school data base URL (default NYC Open Data)")
	pf.StringVar(&storeKind, "store", app.StoreFile, "selection store: file, sqlite or memory")
	pf.StringVarP(&output, "output", "o", "text", "output format: text, json or yaml")
	pf.StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	pf.DurationVar(&timeout, "timeout", 15*time.Second, "HTTP request timeout")
	pf.StringVar(&envFile, "env-file", ".env", "dotenv file loaded before the environment is read")

	root.AddCommand(listCmd(), showCmd(), selectCmd(), browseCmd())
	return root
}
