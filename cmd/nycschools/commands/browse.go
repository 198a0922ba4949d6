package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"nycschools/internal/domain"
	"nycschools/internal/logfields"
)

var metricsAddr string

// browse: an interactive session rendering every published state.
func browseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Interactive loop reading list, show, select <id> and quit from stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr := wire.Config.MetricsAddr; addr != "" {
				stop, err := serveMetrics(addr)
				if err != nil {
					return err
				}
				defer stop()
			}
			return browse(cmd.Context(), cmd.InOrStdin(), cmd.ErrOrStderr())
		},
	}
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (e.g. 127.0.0.1:9090)")
	return cmd
}

// browse runs commands read from in until quit or EOF. Commands run one at a
// time; states they publish are rendered between commands, the latest one
// winning when several were published.
func browse(ctx context.Context, in io.Reader, prompt io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	states, unsubscribe := wire.Coordinator.States().Subscribe()
	defer unsubscribe()

	lines, scanErr := scanLines(ctx, in)

	var last domain.StateKind
	show := func(state domain.UIState) error {
		// Loading is rendered once however often it is republished.
		if state.Kind() == domain.KindLoading && last == domain.KindLoading {
			return nil
		}
		last = state.Kind()
		return wire.Sink.Render(state)
	}
	flush := func() error {
		select {
		case state := <-states:
			return show(state)
		default:
			return nil
		}
	}

	wire.Coordinator.Start(ctx)
	for {
		if err := flush(); err != nil {
			return err
		}
		fmt.Fprint(prompt, "> ")

		var line string
		select {
		case <-ctx.Done():
			return nil
		case state := <-states:
			if err := show(state); err != nil {
				return err
			}
			continue
		case l, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					return err
				default:
					return nil
				}
			}
			line = l
		}

		quit, err := dispatch(ctx, line, prompt)
		if err != nil {
			return err
		}
		if quit {
			return flush()
		}
	}
}

// scanLines sends the lines of in until EOF or until ctx ends. The channel is
// closed when the reader stops; a read error is delivered on the second
// channel first. A reader blocked in Read exits after its next line.
func scanLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			if ctx.Err() != nil {
				return
			}
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- sc.Err()
	}()
	return lines, scanErr
}

func dispatch(ctx context.Context, line string, prompt io.Writer) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	switch fields[0] {
	case "list", "ls":
		wire.Coordinator.Start(ctx)
	case "show":
		wire.Coordinator.ShowList(ctx)
	case "select", "sel":
		if len(fields) != 2 {
			fmt.Fprintln(prompt, "usage: select <id>")
			return false, nil
		}
		if err := selectSchool(ctx, wire.Coordinator, fields[1]); err != nil {
			fmt.Fprintln(prompt, err)
		}
	case "quit", "exit", "q":
		return true, nil
	default:
		fmt.Fprintf(prompt, "unknown command %q (list, show, select <id>, quit)\n", fields[0])
	}
	return false, nil
}

// serveMetrics exposes the wire's recorder on addr until stop is called.
func serveMetrics(addr string) (stop func(), err error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen metrics: %w", err)
	}
	r := chi.NewRouter()
	r.Method(http.MethodGet, "/metrics", wire.Metrics.Handler())
	srv := &http.Server{Handler: r, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			wire.Logger.Error("metrics server stopped", logfields.Error(err))
		}
	}()
	wire.Logger.Info("serving metrics", logfields.URL("http://"+ln.Addr().String()+"/metrics"))
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}
