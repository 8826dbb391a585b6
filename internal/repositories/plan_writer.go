package repositories

import (
	"os"
	"path/filepath"
	"sync"

	"triptalk/pkg/logger"
)

// PlanWriter keeps a copy of the most recently generated plan on disk. It is a
// diagnostic artifact and never read back.
type PlanWriter struct {
	mu   sync.Mutex
	path string
	log  *logger.Logger
}

func NewPlanWriter(path string, log *logger.Logger) *PlanWriter {
	return &PlanWriter{path: path, log: log}
}

// WriteLatest overwrites the file with content. Failures are only logged.
func (w *PlanWriter) WriteLatest(content string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(w.path), 0o755); err != nil {
		w.log.Warn("creating plan output directory", "path", w.path, "error", err)
		return
	}
	if err := os.WriteFile(w.path, []byte(content), 0o644); err != nil {
		w.log.Warn("writing latest plan", "path", w.path, "error", err)
	}
}
