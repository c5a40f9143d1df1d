package content

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"vitrine/internal/logging"
)

// Watcher watches a content file for changes and delivers re-parsed
// pages on Pages. Parse failures while editing are expected (half-saved
// files) and are reported on Errs instead of tearing the watcher down.
//
// The directory is watched rather than the file itself because most
// editors replace files on save, which drops a file-level watch.
type Watcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	pending  bool
	lastEvt  time.Time
	running  bool

	pages  chan *Page
	errs   chan error
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewWatcher creates a watcher for the content file at path.
func NewWatcher(path string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		watcher:  fsw,
		path:     filepath.Clean(path),
		debounce: 300 * time.Millisecond,
		pages:    make(chan *Page, 1),
		errs:     make(chan error, 1),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Pages delivers successfully re-parsed pages.
func (w *Watcher) Pages() <-chan *Page { return w.pages }

// Errs delivers reload failures (typically transient parse errors).
func (w *Watcher) Errs() <-chan error { return w.errs }

// Start begins watching. Non-blocking; events arrive on the channels.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		return err
	}
	logging.Get(logging.CategoryContent).Infof("watching %s", w.path)

	go w.run(ctx)
	return nil
}

// Stop stops the watcher and waits for its goroutine to exit. Safe to
// call when never started.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	if err := w.watcher.Close(); err != nil {
		logging.Get(logging.CategoryContent).Errorf("error closing watcher: %v", err)
	}
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	log := logging.Get(logging.CategoryContent)
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			log.Debugf("%s changed (%s)", event.Name, event.Op)
			w.mu.Lock()
			w.pending = true
			w.lastEvt = time.Now()
			w.mu.Unlock()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Errorf("watch error: %v", err)

		case <-ticker.C:
			w.mu.Lock()
			due := w.pending && time.Since(w.lastEvt) >= w.debounce
			if due {
				w.pending = false
			}
			w.mu.Unlock()
			if due {
				w.reload()
			}
		}
	}
}

// reload re-parses the file and publishes the result, keeping only the
// newest page when the consumer lags behind.
func (w *Watcher) reload() {
	p, err := Load(w.path)
	if err != nil {
		select {
		case w.errs <- err:
		default:
		}
		return
	}
	logging.Get(logging.CategoryContent).Infof("reloaded %s", w.path)
	select {
	case w.pages <- p:
	default:
		// Drop the stale undelivered page and replace it.
		select {
		case <-w.pages:
		default:
		}
		select {
		case w.pages <- p:
		default:
		}
	}
}
