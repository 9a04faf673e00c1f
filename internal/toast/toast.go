package toast

// toast.go = user-facing feedback sink.
// Repositories report outcomes here instead of returning storage errors to callers.

import (
	"log/slog"
	"sync"
)

type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Toast is a short, fire-and-forget message for the user
type Toast struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Variant     Variant `json:"variant"`
}

// Sink receives toasts. Implementations must not block.
type Sink interface {
	Notify(t Toast)
}

// Success builds a default toast
func Success(title, description string) Toast {
	return Toast{Title: title, Description: description, Variant: VariantDefault}
}

// Failure builds a destructive toast
func Failure(title, description string) Toast {
	return Toast{Title: title, Description: description, Variant: VariantDestructive}
}

// LogSink writes toasts as structured log records
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSink{logger: logger}
}

func (s *LogSink) Notify(t Toast) {
	if t.Variant == VariantDestructive {
		s.logger.Warn("toast", "title", t.Title, "description", t.Description)
		return
	}
	s.logger.Info("toast", "title", t.Title, "description", t.Description)
}

// Recorder keeps the most recent toasts in memory.
// The API exposes them so a UI polling the server can show them.
type Recorder struct {
	mu    sync.Mutex
	items []Toast
	limit int
	next  Sink
}

// NewRecorder keeps up to limit toasts and forwards each one to next (may be nil)
func NewRecorder(limit int, next Sink) *Recorder {
	if limit <= 0 {
		limit = 50
	}
	return &Recorder{limit: limit, next: next}
}

func (r *Recorder) Notify(t Toast) {
	r.mu.Lock()
	r.items = append(r.items, t)
	if len(r.items) > r.limit {
		r.items = r.items[len(r.items)-r.limit:]
	}
	r.mu.Unlock()

	if r.next != nil {
		r.next.Notify(t)
	}
}

// Drain returns the recorded toasts oldest first and forgets them
func (r *Recorder) Drain() []Toast {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.items
	r.items = nil
	if out == nil {
		return []Toast{}
	}
	return out
}

// Discard drops every toast
type Discard struct{}

func (Discard) Notify(Toast) {}
