package config

import (
	"bytes"
	"context"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/MrWong99/atisvoice/internal/observe"
)

// Watcher monitors a settings file for changes and calls a callback when a
// new valid version is written. File system notifications trigger an
// immediate check; polling of the file's mtime runs alongside and is the only
// mechanism when notifications are unavailable. Content is hashed only when
// the mtime moves.
type Watcher struct {
	path     string
	interval time.Duration
	onChange func(old, new *Config)
	metrics  *observe.Metrics
	notify   *fsnotify.Watcher

	mu       sync.Mutex
	current  *Config
	done     chan struct{}
	stopOnce sync.Once

	lastMtime time.Time
	lastHash  [sha256.Size]byte
}

// WatcherOption configures a [Watcher].
type WatcherOption func(*Watcher)

// WithInterval sets the polling interval. The default is 5 seconds.
func WithInterval(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d > 0 {
			w.interval = d
		}
	}
}

// WithMetrics records reloads on m instead of [observe.DefaultMetrics].
func WithMetrics(m *observe.Metrics) WatcherOption {
	return func(w *Watcher) {
		if m != nil {
			w.metrics = m
		}
	}
}

// NewWatcher creates a settings file watcher. It loads the initial config
// immediately and starts polling in a background goroutine until ctx is
// cancelled or [Watcher.Stop] is called.
func NewWatcher(ctx context.Context, path string, onChange func(old, new *Config), opts ...WatcherOption) (*Watcher, error) {
	w := &Watcher{
		path:     filepath.Clean(path),
		interval: 5 * time.Second,
		onChange: onChange,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.metrics == nil {
		w.metrics = observe.DefaultMetrics()
	}

	cfg, hash, mtime, err := w.loadAndHash()
	if err != nil {
		return nil, fmt.Errorf("config: watcher initial load: %w", err)
	}
	w.current = cfg
	w.lastHash = hash
	w.lastMtime = mtime
	w.notify = newNotifier(w.path)

	go w.poll(ctx)
	return w, nil
}

// newNotifier watches the directory of path, so that editors replacing the
// file by rename are seen too. It returns nil if notifications are
// unavailable.
func newNotifier(path string) *fsnotify.Watcher {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		slog.Warn("config watcher: file notifications unavailable, polling only", "err", err)
		return nil
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		slog.Warn("config watcher: file notifications unavailable, polling only", "path", path, "err", err)
		_ = fw.Close()
		return nil
	}
	return fw
}

// Current returns the most recently loaded valid config.
func (w *Watcher) Current() *Config {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current
}

// Stop stops the file watcher.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
	})
}

func (w *Watcher) poll(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// Nil channels block forever, leaving only the ticker.
	var (
		events <-chan fsnotify.Event
		errs   <-chan error
	)
	if w.notify != nil {
		defer w.notify.Close()
		events, errs = w.notify.Events, w.notify.Errors
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case <-ticker.C:
			w.check(ctx)
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if filepath.Clean(ev.Name) == w.path && (ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				w.check(ctx)
			}
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			slog.Warn("config watcher: notification error", "path", w.path, "err", err)
		}
	}
}

// check reloads the file if it changed. An invalid file is logged and the
// previous config stays current.
func (w *Watcher) check(ctx context.Context) {
	info, err := os.Stat(w.path)
	if err != nil {
		slog.Warn("config watcher: cannot stat file", "path", w.path, "err", err)
		return
	}

	w.mu.Lock()
	mtime := w.lastMtime
	w.mu.Unlock()

	if info.ModTime().Equal(mtime) {
		return
	}

	if info.Size() == 0 {
		// Truncated, the new content is not written yet.
		return
	}

	cfg, hash, newMtime, err := w.loadAndHash()
	if err != nil {
		// Remember the bad version so it is reported once, not on every tick.
		w.mu.Lock()
		w.lastMtime = info.ModTime()
		w.mu.Unlock()
		w.metrics.RecordConfigReload(ctx, "error")
		slog.Warn("config watcher: failed to load config", "path", w.path, "err", err)
		return
	}

	w.mu.Lock()
	if hash == w.lastHash {
		// Touched, content identical.
		w.lastMtime = newMtime
		w.mu.Unlock()
		return
	}
	old := w.current
	w.current = cfg
	w.lastHash = hash
	w.lastMtime = newMtime
	w.mu.Unlock()

	w.metrics.RecordConfigReload(ctx, "ok")
	slog.Info("config watcher: configuration reloaded", "path", w.path)

	// Outside the lock so the callback may call Current.
	if w.onChange != nil {
		w.onChange(old, cfg)
	}
}

func (w *Watcher) loadAndHash() (*Config, [sha256.Size]byte, time.Time, error) {
	var zeroHash [sha256.Size]byte

	info, err := os.Stat(w.path)
	if err != nil {
		return nil, zeroHash, time.Time{}, err
	}
	data, err := os.ReadFile(w.path)
	if err != nil {
		return nil, zeroHash, time.Time{}, err
	}

	cfg, err := LoadFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, zeroHash, time.Time{}, err
	}
	return cfg, sha256.Sum256(data), info.ModTime(), nil
}
