package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Alia5/keycycle/mapping"
	"github.com/Alia5/keycycle/vdev"
)

// Run replays a controller event script through a mapping.
type Run struct {
	Mapping string `arg:"" help:"Mapping file (YAML, TOML or JSON)" type:"existingfile"`
	Events  string `help:"Controller event script (default: stdin)" short:"e" env:"KEYCYCLE_EVENTS"`
	Output  string `help:"Report output file (default: stdout)" short:"o" env:"KEYCYCLE_OUTPUT"`

	Metrics struct {
		Addr string        `help:"Serve Prometheus metrics on this address while running (e.g. :2112)" env:"KEYCYCLE_METRICS_ADDR"`
		Hold time.Duration `help:"Keep serving metrics this long after the replay finished" default:"0s" env:"KEYCYCLE_METRICS_HOLD"`
	} `embed:"" prefix:"metrics."`
}

// ReportsToStdout reports whether device reports are written to stdout.
func (r *Run) ReportsToStdout() bool {
	return r.Output == "" || r.Output == "-"
}

// Run is called by Kong when the run command is executed.
func (r *Run) Run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := mapping.LoadFile(r.Mapping)
	if err != nil {
		return err
	}

	in, closeIn, err := openInput(r.Events)
	if err != nil {
		return err
	}
	defer closeIn()
	events, err := mapping.ReadEvents(in)
	if err != nil {
		return fmt.Errorf("read events: %w", err)
	}

	out, closeOut, err := openOutput(r.Output)
	if err != nil {
		return err
	}
	defer closeOut()

	reg := prometheus.NewRegistry()
	hub := vdev.NewHub(vdev.NewWriterSink(out), logger, vdev.NewMetrics(reg))

	m, err := mapping.New(hub, cfg, logger)
	if err != nil {
		return err
	}
	logger.Info("mapping loaded", "file", r.Mapping, "slot", cfg.Slot, "buttons", len(m.Buttons()), "sequences", len(m.Sequences()))

	var srv *http.Server
	if r.Metrics.Addr != "" {
		srv, err = serveMetrics(r.Metrics.Addr, statusHandler(reg, hub), logger)
		if err != nil {
			return err
		}
		defer func() { _ = srv.Close() }()
	}

	n := Replay(ctx, m, events)
	hub.ReleaseAll()
	logger.Info("replay finished", "events", n, "total", len(events))

	if srv != nil && r.Metrics.Hold > 0 {
		select {
		case <-ctx.Done():
		case <-time.After(r.Metrics.Hold):
		}
	}
	return nil
}

// Replay feeds events to m until all are handled or ctx is cancelled and
// returns the number of events handled.
func Replay(ctx context.Context, m *mapping.Mapper, events []mapping.Event) int {
	for i, ev := range events {
		if ctx.Err() != nil {
			return i
		}
		m.Handle(ev)
	}
	return len(events)
}

// statusHandler serves the hub metrics and the list of opened devices.
func statusHandler(reg *prometheus.Registry, hub *vdev.Hub) http.Handler {
	r := chi.NewRouter()
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Get("/devices", func(w http.ResponseWriter, _ *http.Request) {
		devs := hub.Devices()
		out := make([]string, len(devs))
		for i, id := range devs {
			out[i] = id.String()
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(out)
	})
	return r
}

func serveMetrics(addr string, h http.Handler, logger *slog.Logger) (*http.Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("metrics listen: %w", err)
	}
	srv := &http.Server{Handler: h, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server stopped", "error", err)
		}
	}()
	logger.Info("metrics listening", "addr", ln.Addr().String())
	return srv, nil
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "" || path == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}
