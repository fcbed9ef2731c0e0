// Where: cli/internal/infra/telemetry/recorder.go
// What: Command event collection for one invocation.
// Why: Record what the command resolved (language, template) without
// coupling the engine to an emitter.
package telemetry

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NotAvailable marks an event whose value could not be resolved.
const NotAvailable = "N/A"

// Recorder collects command events keyed by name. The last write wins.
type Recorder struct {
	mu           sync.Mutex
	invocationID string
	events       map[string]string
}

// NewRecorder returns a Recorder with a fresh invocation ID.
func NewRecorder() *Recorder {
	return &Recorder{
		invocationID: uuid.NewString(),
		events:       map[string]string{},
	}
}

// InvocationID identifies this run across emitted events.
func (r *Recorder) InvocationID() string {
	return r.invocationID
}

// Add records value under key.
func (r *Recorder) Add(key, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events[key] = value
}

// Get returns the recorded value for key.
func (r *Recorder) Get(key string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	value, ok := r.events[key]
	return value, ok
}

// Flush writes the collected events to logger at debug level.
func (r *Recorder) Flush(logger *zap.Logger, command string) {
	if logger == nil {
		return
	}
	r.mu.Lock()
	keys := make([]string, 0, len(r.events))
	for key := range r.events {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	fields := make([]zap.Field, 0, len(keys)+2)
	fields = append(fields, zap.String("invocation", r.invocationID), zap.String("command", command))
	for _, key := range keys {
		fields = append(fields, zap.String(key, r.events[key]))
	}
	r.mu.Unlock()
	logger.Debug("command events", fields...)
}
