// Command atisvoice resolves a TTS provider setting and renders numbers the
// way the selected voice should speak them.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync/atomic"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MrWong99/atisvoice/internal/config"
	"github.com/MrWong99/atisvoice/internal/health"
	"github.com/MrWong99/atisvoice/internal/observe"
	"github.com/MrWong99/atisvoice/pkg/provider/tts"
	"github.com/MrWong99/atisvoice/pkg/spoken"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// options holds the parsed command line.
type options struct {
	configPath string
	setting    tts.Setting
	ttsFlag    string
	settingSet bool
	pronounce  bool
	places     int
	hundreds   bool
	watch      bool
	listenAddr string
	numbers    []string
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("atisvoice", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "path to the YAML settings file")
	fs.Func("tts", "TTS provider as [GC:|AWS:|WIN:]VOICE; overrides the settings file", func(v string) error {
		opts.settingSet = true
		opts.ttsFlag = v
		return opts.setting.Set(v)
	})
	fs.BoolVar(&opts.pronounce, "pronounce", false, "render digits phonetically (ZERO, NINER)")
	fs.IntVar(&opts.places, "round", -1, "round numbers to this many decimal places before speaking")
	fs.BoolVar(&opts.hundreds, "hundreds", false, "round whole numbers down to the nearest hundred")
	fs.BoolVar(&opts.watch, "watch", false, "keep running and reload the settings file on change")
	fs.StringVar(&opts.listenAddr, "listen", "", "serve /metrics, /healthz and /readyz on this address (e.g. :9090)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	opts.numbers = fs.Args()
	if opts.watch && opts.configPath == "" {
		return nil, errors.New("-watch requires -config")
	}
	return opts, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	// ── CLI flags ──────────────────────────────────────────────────────────────
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "atisvoice: %v\n", err)
		return 2
	}

	// ── Load configuration ────────────────────────────────────────────────────
	cfg := &config.Config{}
	if opts.configPath != "" {
		cfg, err = config.Load(opts.configPath)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				fmt.Fprintf(stderr, "atisvoice: settings file %q not found\n", opts.configPath)
			} else {
				fmt.Fprintf(stderr, "atisvoice: %v\n", err)
			}
			return 1
		}
	}

	// ── Logger ────────────────────────────────────────────────────────────────
	slog.SetDefault(newLogger(cfg.LogLevel, stderr))

	var current atomic.Pointer[config.Config]
	current.Store(cfg)

	// The HTTP endpoint and the watcher run until ctx is done or one fails.
	g, gctx := errgroup.WithContext(ctx)

	// ── HTTP endpoint ─────────────────────────────────────────────────────────
	var srv *httpEndpoint
	if opts.listenAddr != "" {
		srv, err = newHTTPEndpoint(gctx, opts.listenAddr, current.Load)
		if err != nil {
			slog.Error("failed to start http endpoint", "addr", opts.listenAddr, "err", err)
			return 1
		}
		g.Go(srv.serve)
	}

	code := present(gctx, cfg, opts, stdout)
	if code == 0 && opts.watch {
		g.Go(func() error { return watch(gctx, opts.configPath, &current, stdout, stderr) })
		<-gctx.Done()
	}

	// ── Graceful shutdown ─────────────────────────────────────────────────────
	if srv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.shutdown(shutdownCtx); err != nil {
			slog.Warn("http shutdown error", "err", err)
		}
	}
	if err := g.Wait(); err != nil {
		slog.Error("run error", "err", err)
		return 1
	}
	return code
}

// present prints the resolved provider and the spoken form of every numeric
// argument.
func present(ctx context.Context, cfg *config.Config, opts *options, stdout io.Writer) int {
	p, err := resolveProvider(ctx, cfg, opts)
	if err != nil {
		slog.Error("failed to resolve tts provider", "err", err)
		return 1
	}
	pronounce := cfg.Pronounce || opts.pronounce
	fmt.Fprintf(stdout, "%s\n", p)

	for _, arg := range opts.numbers {
		out, err := speak(arg, opts, pronounce)
		if err != nil {
			slog.Error("cannot speak argument", "arg", arg, "err", err)
			return 1
		}
		observe.DefaultMetrics().RecordPronunciation(ctx, pronounce)
		fmt.Fprintf(stdout, "%s: %s\n", arg, out)
	}
	return 0
}

// resolveProvider picks the -tts flag when given, else the settings file, and
// records the selection.
func resolveProvider(ctx context.Context, cfg *config.Config, opts *options) (tts.Provider, error) {
	input, source := cfg.TTS, "settings"
	var (
		p   tts.Provider
		err error
	)
	if opts.settingSet {
		input, source = opts.ttsFlag, "flag"
		p = opts.setting.Provider()
	} else {
		p, err = cfg.Provider()
	}
	observe.DefaultMetrics().RecordSelection(ctx, input, p, err)
	if err != nil {
		return nil, err
	}
	if input != "" && observe.SelectionOutcome(input, p) == observe.OutcomeFallback {
		slog.Debug("tts setting not recognised, using default provider", "tts", input, "source", source)
	}
	slog.Debug("tts provider selected", "provider", p.String(), "source", source)
	return p, nil
}

// speak renders one numeric argument. Integers stay integers so that
// -hundreds applies; anything else is parsed as a float.
func speak(arg string, opts *options, pronounce bool) (string, error) {
	if n, err := strconv.Atoi(arg); err == nil {
		if opts.hundreds {
			n = spoken.RoundHundreds(n)
		}
		return spoken.Pronounce(n, pronounce), nil
	}
	f, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return "", fmt.Errorf("not a number: %w", err)
	}
	if opts.places >= 0 {
		f = spoken.Round(f, opts.places)
	}
	if opts.hundreds {
		// Also rejects NaN.
		if !(math.Abs(f) < math.MaxInt64) {
			return "", fmt.Errorf("%s is out of range for -hundreds", arg)
		}
		f = float64(spoken.RoundHundreds(int(f)))
	}
	return spoken.Pronounce(f, pronounce), nil
}

// watch blocks until ctx is done, publishing every accepted settings change
// to current.
func watch(ctx context.Context, path string, current *atomic.Pointer[config.Config], stdout, stderr io.Writer) error {
	w, err := config.NewWatcher(ctx, path, func(old, new *config.Config) {
		current.Store(new)
		d := config.Diff(old, new)
		if d.LogLevelChanged {
			slog.SetDefault(newLogger(d.NewLogLevel, stderr))
			slog.Info("log level changed", "level", d.NewLogLevel)
		}
		if d.ProviderChanged {
			observe.DefaultMetrics().RecordSelection(ctx, new.TTS, d.NewProvider, nil)
			fmt.Fprintf(stdout, "%s\n", d.NewProvider)
		}
		if d.PronounceChanged {
			slog.Info("pronounce setting changed", "pronounce", new.Pronounce)
		}
		if d.CredentialsChanged {
			slog.Info("tts credentials changed")
		}
	})
	if err != nil {
		return fmt.Errorf("watch settings: %w", err)
	}
	defer w.Stop()

	slog.Info("watching settings file, press Ctrl+C to stop", "path", path)
	<-ctx.Done()
	slog.Info("goodbye")
	return nil
}

// ── HTTP endpoint ─────────────────────────────────────────────────────────────

// httpEndpoint exposes Prometheus metrics and health probes.
type httpEndpoint struct {
	srv              *http.Server
	shutdownProvider func(context.Context) error
}

func newHTTPEndpoint(ctx context.Context, addr string, current func() *config.Config) (*httpEndpoint, error) {
	metricsHandler, shutdownProvider, err := observe.InitProvider(ctx, observe.ProviderConfig{ServiceVersion: version})
	if err != nil {
		return nil, err
	}
	mux := http.NewServeMux()
	mux.Handle("GET /metrics", metricsHandler)
	health.New(
		health.SettingsCheck(current),
		health.CredentialsCheck(current),
	).Register(mux)

	return &httpEndpoint{
		srv: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		shutdownProvider: shutdownProvider,
	}, nil
}

func (e *httpEndpoint) serve() error {
	slog.Info("http endpoint listening", "addr", e.srv.Addr)
	if err := e.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http endpoint: %w", err)
	}
	return nil
}

// shutdown stops the server and flushes the meter provider.
func (e *httpEndpoint) shutdown(ctx context.Context) error {
	return errors.Join(e.srv.Shutdown(ctx), e.shutdownProvider(ctx))
}

// ── Logger ─────────────────────────────────────────────────────────────────────

func newLogger(level config.LogLevel, w io.Writer) *slog.Logger {
	var lvl slog.Level
	switch level {
	case config.LogDebug:
		lvl = slog.LevelDebug
	case config.LogWarn:
		lvl = slog.LevelWarn
	case config.LogError:
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
