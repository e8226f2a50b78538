package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/raglet/raglet/internal/logger"
	"github.com/raglet/raglet/settings"
)

// defaultDebounce coalesces the burst of filesystem events editors and
// atomic-rename writers produce for a single save.
const defaultDebounce = 250 * time.Millisecond

// OnChange receives the freshly loaded document and the summary of what
// changed relative to the previous one.
type OnChange func(*settings.Settings, ChangeSummary)

// Watcher observes a settings file and reloads it through the standard
// loader whenever it changes. A reload that fails to parse or validate is
// logged and discarded; the last good document stays in effect.
type Watcher struct {
	loader   *Loader
	log      *logger.Logger
	onChange OnChange
	debounce time.Duration

	mu      sync.RWMutex
	current *settings.Settings
}

// NewWatcher performs the initial load and returns a watcher ready to run.
func NewWatcher(loader *Loader, log *logger.Logger, onChange OnChange) (*Watcher, error) {
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("error loading settings before watch: %w", err)
	}

	return &Watcher{
		loader:   loader,
		log:      log,
		onChange: onChange,
		debounce: defaultDebounce,
		current:  cfg,
	}, nil
}

// Settings returns the current document. Safe for concurrent use with Run.
func (w *Watcher) Settings() *settings.Settings {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.current
}

// Run watches the settings file until ctx is canceled. The parent
// directory is watched rather than the file itself so atomic
// write-and-rename saves keep being observed.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating filesystem watcher: %w", err)
	}
	defer fw.Close()

	path, err := filepath.Abs(w.loader.path)
	if err != nil {
		return fmt.Errorf("error resolving settings path: %w", err)
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("error watching settings directory: %w", err)
	}

	w.log.Info().Str("file", path).Msg("watching settings file")

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Error().Err(err).Msg("filesystem watcher error")

		case <-timerC:
			timer = nil
			timerC = nil
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	next, err := w.loader.Load()
	if err != nil {
		w.log.Error().Err(err).Msg("settings reload failed; keeping last good document")
		return
	}

	w.mu.Lock()
	prev := w.current
	w.current = next
	w.mu.Unlock()

	summary := Diff(prev, next)
	if len(summary.ChangedKeys) == 0 {
		w.log.Debug().Msg("settings file rewritten without changes")
		return
	}

	w.log.Info().
		Strs("changed", summary.ChangedKeys).
		Bool("restart_required", summary.RestartRequired).
		Msg("settings reloaded")

	if w.onChange != nil {
		w.onChange(next, summary)
	}
}
