package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"nycschools/internal/mockapi"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRoot().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRoot() *cobra.Command {
	var (
		addr     string
		fixture  string
		fail     []string
		latency  time.Duration
		logLevel string
	)
	cmd := &cobra.Command{
		Use:          "mockapi",
		Short:        "Serve the school and SAT score resources from a fixture",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var lvl slog.Level
			if err := lvl.UnmarshalText([]byte(logLevel)); err != nil {
				return fmt.Errorf("invalid log level %q", logLevel)
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))

			data := mockapi.DefaultFixture()
			if fixture != "" {
				var err error
				if data, err = mockapi.LoadFixture(fixture); err != nil {
					return err
				}
			}

			opts := []mockapi.Option{mockapi.WithLogger(logger), mockapi.WithLatency(latency)}
			for _, f := range fail {
				switch f {
				case mockapi.FailSchools, mockapi.FailScores:
					opts = append(opts, mockapi.WithFailure(f))
				default:
					return fmt.Errorf("--fail: unknown resource %q (want schools or scores)", f)
				}
			}

			srv := mockapi.NewServer(addr, data, opts...)
			errc := make(chan error, 1)
			go func() { errc <- srv.Start() }()

			select {
			case err := <-errc:
				return err
			case <-cmd.Context().Done():
			}
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			return <-errc
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", "listen address")
	cmd.Flags().StringVar(&fixture, "fixture", "", "YAML fixture file (default built-in)")
	cmd.Flags().StringSliceVar(&fail, "fail", nil, "resources answering 500: schools, scores")
	cmd.Flags().DurationVar(&latency, "latency", 0, "delay added to every resource response")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level")
	return cmd
}
