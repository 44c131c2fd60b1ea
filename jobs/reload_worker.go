package jobs

import (
	"os"
	"time"

	"github.com/heet2604/food-recommendation-using-ML/dataset"
	"github.com/heet2604/food-recommendation-using-ML/logger"
	"github.com/heet2604/food-recommendation-using-ML/recommend"
)

// ReloadWorker rebuilds the dataset and similarity state in the
// background. It watches the dataset file's modification time and also
// accepts manual triggers. A rebuild always produces a complete new
// state bundle which is swapped in atomically; on failure the old
// state keeps serving.
type ReloadWorker struct {
	svc      *recommend.Service
	path     string
	interval time.Duration

	triggers chan struct{}
	quit     chan struct{}
	lastMod  time.Time
}

// NewReloadWorker creates a worker for the given service and dataset
// path. interval controls how often the file is polled; zero disables
// polling (manual triggers still work).
func NewReloadWorker(svc *recommend.Service, path string, interval time.Duration) *ReloadWorker {
	w := &ReloadWorker{
		svc:      svc,
		path:     path,
		interval: interval,
		triggers: make(chan struct{}, 1),
		quit:     make(chan struct{}),
	}
	if info, err := os.Stat(path); err == nil {
		w.lastMod = info.ModTime()
	}
	return w
}

// Start launches the worker goroutine.
func (w *ReloadWorker) Start() {
	go w.run()
	logger.Info("Dataset reload worker started", "path", w.path, "poll_interval", w.interval)
}

// Stop terminates the worker goroutine.
func (w *ReloadWorker) Stop() {
	close(w.quit)
}

// Enqueue requests a rebuild. A trigger already in flight is enough;
// extra requests are dropped.
func (w *ReloadWorker) Enqueue() {
	select {
	case w.triggers <- struct{}{}:
		logger.Info("Dataset reload enqueued")
	default:
		logger.Warn("Dataset reload already pending, dropping trigger")
	}
}

func (w *ReloadWorker) run() {
	var tick <-chan time.Time
	if w.interval > 0 {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		select {
		case <-w.quit:
			return
		case <-w.triggers:
			w.rebuild()
		case <-tick:
			if w.fileChanged() {
				w.rebuild()
			}
		}
	}
}

func (w *ReloadWorker) fileChanged() bool {
	info, err := os.Stat(w.path)
	if err != nil {
		return false
	}
	if info.ModTime().After(w.lastMod) {
		w.lastMod = info.ModTime()
		return true
	}
	return false
}

func (w *ReloadWorker) rebuild() {
	logger.Info("Rebuilding dataset state", "path", w.path)

	foods, err := dataset.Load(w.path)
	if err != nil {
		logger.Error("Dataset reload failed, keeping current state", "error", err)
		return
	}

	w.svc.Swap(recommend.BuildState(foods))
	logger.Info("Dataset state rebuilt", "foods", len(foods))
}
