package logging

import (
	"context"
	"sync"
)

// Entry is one record captured by a Recorder.
type Entry struct {
	Level   string
	Message string
	Args    []any
	Fields  map[string]any
}

type recordLog struct {
	mu      sync.Mutex
	entries []Entry
}

// Recorder is an in-memory Logger, mainly for tests and diagnostics.
// Children created with WithFields share the parent's log.
type Recorder struct {
	log    *recordLog
	fields map[string]any
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{log: &recordLog{}}
}

// Entries returns a copy of the captured entries.
func (r *Recorder) Entries() []Entry {
	r.log.mu.Lock()
	defer r.log.mu.Unlock()
	out := make([]Entry, len(r.log.entries))
	copy(out, r.log.entries)
	return out
}

// Count returns the number of entries at the given level.
func (r *Recorder) Count(level string) int {
	count := 0
	for _, entry := range r.Entries() {
		if entry.Level == level {
			count++
		}
	}
	return count
}

func (r *Recorder) Trace(msg string, args ...any) { r.record("trace", msg, args) }
func (r *Recorder) Debug(msg string, args ...any) { r.record("debug", msg, args) }
func (r *Recorder) Info(msg string, args ...any)  { r.record("info", msg, args) }
func (r *Recorder) Warn(msg string, args ...any)  { r.record("warn", msg, args) }
func (r *Recorder) Error(msg string, args ...any) { r.record("error", msg, args) }

func (r *Recorder) WithContext(context.Context) Logger {
	return r
}

func (r *Recorder) WithFields(fields map[string]any) Logger {
	merged := make(map[string]any, len(r.fields)+len(fields))
	for key, value := range r.fields {
		merged[key] = value
	}
	for key, value := range fields {
		merged[key] = value
	}
	return &Recorder{log: r.log, fields: merged}
}

func (r *Recorder) record(level, msg string, args []any) {
	r.log.mu.Lock()
	defer r.log.mu.Unlock()
	r.log.entries = append(r.log.entries, Entry{Level: level, Message: msg, Args: args, Fields: r.fields})
}
