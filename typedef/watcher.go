package typedef

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
	"github.com/teranos/dtsgen/errors"
	"github.com/teranos/dtsgen/logger"
	"go.uber.org/zap"
)

// RegenerateCallback is called after every regeneration attempt
type RegenerateCallback func(*Result, error)

// Watcher regenerates a declaration file whenever one of its inputs changes
type Watcher struct {
	opts           Options
	outputPath     string
	watcher        *fsnotify.Watcher
	callbacks      []RegenerateCallback
	mu             sync.Mutex
	regenMu        sync.Mutex // one regeneration at a time
	debounceTimer  *time.Timer
	debouncePeriod time.Duration
	logger         *zap.SugaredLogger
}

// NewWatcher watches the directories the input patterns can match in.
// Patterns containing ** watch every directory below their base.
func NewWatcher(opts Options, outputPath string, debounce time.Duration) (*Watcher, error) {
	dirs, err := watchDirs(opts.Inputs)
	if err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, errors.Wrapf(err, "failed to watch %s", dir)
		}
	}

	return &Watcher{
		opts:           opts,
		outputPath:     outputPath,
		watcher:        fw,
		debouncePeriod: debounce,
		logger:         logger.ChildLogger(logger.ComponentLogger("typedef.watch"), logger.FieldOutput, outputPath),
	}, nil
}

// OnRegenerate registers a callback to be called after each regeneration
func (w *Watcher) OnRegenerate(callback RegenerateCallback) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, callback)
}

// Run blocks, regenerating on input changes, until ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			w.mu.Lock()
			if w.debounceTimer != nil {
				w.debounceTimer.Stop()
			}
			w.mu.Unlock()
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debugw("Input changed",
				logger.FieldFile, event.Name,
				"op", event.Op.String())
			w.scheduleRegenerate()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warnw("Watcher error", logger.FieldError, err)
		}
	}
}

// Regenerate runs a generation pass and writes the output if it changed.
// On failure the previous output is left in place.
func (w *Watcher) Regenerate() (*Result, error) {
	w.regenMu.Lock()
	res, err := w.regenerate()
	w.regenMu.Unlock()

	w.mu.Lock()
	callbacks := make([]RegenerateCallback, len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.Unlock()

	for _, callback := range callbacks {
		callback(res, err)
	}
	return res, err
}

func (w *Watcher) regenerate() (*Result, error) {
	res, err := Generate(w.opts)
	if err != nil {
		w.logger.Errorw("Regeneration failed, keeping previous output",
			logger.FieldError, err,
			logger.FieldHint, strings.Join(errors.Hints(err), "; "))
		return nil, err
	}

	if existing, readErr := os.ReadFile(w.outputPath); readErr == nil && string(existing) == res.Output {
		w.logger.Debugw("Output unchanged")
		return res, nil
	}

	if err := WriteOutput(w.outputPath, res.Output); err != nil {
		w.logger.Errorw("Failed to write output", logger.FieldError, err)
		return nil, err
	}

	w.logger.Infow("Regenerated", logger.FieldCount, res.Records)
	return res, nil
}

// scheduleRegenerate debounces rapid file changes
func (w *Watcher) scheduleRegenerate() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.debouncePeriod, func() {
		_, _ = w.Regenerate()
	})
}

// relevant filters out events for the output file, its temp files, and
// files no input pattern selects.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	name := filepath.Clean(event.Name)
	if name == filepath.Clean(w.outputPath) {
		return false
	}
	if strings.HasPrefix(filepath.Base(name), "."+filepath.Base(w.outputPath)+".") {
		return false
	}
	return matchesInput(w.opts.Inputs, name)
}

// watchDirs returns the sorted directories to watch for the given patterns.
func watchDirs(patterns []string) ([]string, error) {
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		base, _ := doublestar.SplitPattern(filepath.ToSlash(filepath.Clean(pattern)))
		base = filepath.FromSlash(base)

		if !strings.Contains(pattern, "**") {
			seen[base] = true
			continue
		}

		err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				seen[path] = true
			}
			return nil
		})
		if err != nil {
			return nil, ioError(err, "failed to walk %s", base)
		}
	}

	dirs := make([]string, 0, len(seen))
	for dir := range seen {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	return dirs, nil
}
