// Package eventlog appends delivered window events to a size-rotated log
// file.
package eventlog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// Config controls where events are recorded and how the file rotates.
type Config struct {
	// Path is the log file. Empty disables recording.
	Path      string
	MaxSizeMB int
	MaxFiles  int
}

// Recorder writes one line per event. A nil or disabled Recorder drops
// everything.
type Recorder struct {
	mu          sync.Mutex
	file        *os.File
	config      Config
	currentSize int64
	now         func() time.Time
}

// Open creates the recorder, creating the parent directory if needed.
func Open(cfg Config) (*Recorder, error) {
	if cfg.Path == "" {
		return &Recorder{config: cfg, now: time.Now}, nil
	}

	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
	}

	f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", cfg.Path, err)
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to stat log file: %w", err)
	}

	return &Recorder{
		file:        f,
		config:      cfg,
		currentSize: stat.Size(),
		now:         time.Now,
	}, nil
}

// Enabled reports whether Record writes anything.
func (r *Recorder) Enabled() bool {
	return r != nil && r.config.Path != ""
}

// Record appends event with details as sorted key=value pairs.
func (r *Recorder) Record(event string, details map[string]any) {
	if !r.Enabled() {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return
	}

	maxBytes := int64(r.config.MaxSizeMB) * 1024 * 1024
	if maxBytes > 0 && r.currentSize >= maxBytes {
		if err := r.rotate(); err != nil {
			fmt.Fprintf(os.Stderr, "event log rotation failed: %v\n", err)
		}
		if r.file == nil {
			return
		}
	}

	var sb strings.Builder
	sb.WriteString(r.now().Format("2006-01-02 15:04:05.000"))
	sb.WriteString(" [")
	sb.WriteString(event)
	sb.WriteString("]")

	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		switch val := details[k].(type) {
		case string:
			sb.WriteString(fmt.Sprintf(" %s=%q", k, val))
		default:
			sb.WriteString(fmt.Sprintf(" %s=%v", k, val))
		}
	}
	sb.WriteString("\n")

	n, err := r.file.WriteString(sb.String())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to write event log entry: %v\n", err)
		return
	}
	r.currentSize += int64(n)
}

// Close closes the file.
func (r *Recorder) Close() error {
	if r == nil {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// rotate shifts events.log -> events.log.1 -> events.log.2 and drops the
// file past MaxFiles.
func (r *Recorder) rotate() error {
	if r.file != nil {
		r.file.Close()
		r.file = nil
	}

	basePath := r.config.Path
	for i := r.config.MaxFiles; i >= 1; i-- {
		oldPath := fmt.Sprintf("%s.%d", basePath, i)
		if i == r.config.MaxFiles {
			os.Remove(oldPath)
		} else {
			os.Rename(oldPath, fmt.Sprintf("%s.%d", basePath, i+1))
		}
	}

	if r.config.MaxFiles > 0 {
		if err := os.Rename(basePath, basePath+".1"); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to rotate log file: %w", err)
		}
	}

	f, err := os.OpenFile(basePath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return fmt.Errorf("failed to open new log file: %w", err)
	}

	r.file = f
	r.currentSize = 0
	return nil
}
