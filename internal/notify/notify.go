// Package notify turns engine results into short-lived user notifications.
// Front ends call Report after each engine operation and draw whatever
// Active returns.
package notify

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"gridlock/internal/engine"
)

const (
	// DefaultTTL is how long a toast stays visible.
	DefaultTTL = 3 * time.Second
	// DefaultLimit caps the number of toasts kept at once.
	DefaultLimit = 5

	// ViolationMessage is the headline shown for a rejected toggle.
	ViolationMessage = "Action violates constraints!"
)

// Level grades a toast.
type Level int

const (
	LevelInfo Level = iota
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// Toast is one notification.
type Toast struct {
	Level   Level
	Message string
	Detail  string
	Expires time.Time
}

// Center queues toasts. The zero value is not usable; call NewCenter.
type Center struct {
	mu     sync.Mutex
	ttl    time.Duration
	limit  int
	now    func() time.Time
	log    *slog.Logger
	toasts []Toast
}

// Option customises a Center.
type Option func(*Center)

// WithTTL sets the toast lifetime.
func WithTTL(d time.Duration) Option {
	return func(c *Center) {
		if d > 0 {
			c.ttl = d
		}
	}
}

// WithLimit sets the maximum number of queued toasts.
func WithLimit(n int) Option {
	return func(c *Center) {
		if n > 0 {
			c.limit = n
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Center) {
		if now != nil {
			c.now = now
		}
	}
}

// WithLogger mirrors every toast to l.
func WithLogger(l *slog.Logger) Option {
	return func(c *Center) {
		if l != nil {
			c.log = l
		}
	}
}

// NewCenter returns an empty Center.
func NewCenter(opts ...Option) *Center {
	c := &Center{
		ttl:   DefaultTTL,
		limit: DefaultLimit,
		now:   time.Now,
		log:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Report converts an engine error into a toast. A nil error posts nothing.
func (c *Center) Report(err error) {
	if err == nil {
		return
	}
	var (
		v  *engine.Violation
		ge *engine.GenerationError
	)
	switch {
	case errors.As(err, &v):
		c.push(LevelError, ViolationMessage, v.Detail())
	case errors.As(err, &ge):
		c.push(LevelWarn, "Random fill gave up", ge.Error())
	case errors.Is(err, engine.ErrOutOfRange):
		c.push(LevelError, "Cell out of range", err.Error())
	default:
		c.push(LevelError, "Operation failed", err.Error())
	}
}

// Info posts an informational toast.
func (c *Center) Info(msg string) { c.push(LevelInfo, msg, "") }

func (c *Center) push(level Level, msg, detail string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	c.pruneLocked(now)
	c.toasts = append(c.toasts, Toast{Level: level, Message: msg, Detail: detail, Expires: now.Add(c.ttl)})
	if over := len(c.toasts) - c.limit; over > 0 {
		c.toasts = c.toasts[over:]
	}
	c.log.Debug("toast", "level", level.String(), "message", msg, "detail", detail)
}

// Active returns unexpired toasts, newest first.
func (c *Center) Active() []Toast {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pruneLocked(c.now())
	out := make([]Toast, len(c.toasts))
	for i, t := range c.toasts {
		out[len(out)-1-i] = t
	}
	return out
}

// Clear drops every toast.
func (c *Center) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.toasts = nil
}

func (c *Center) pruneLocked(now time.Time) {
	keep := c.toasts[:0]
	for _, t := range c.toasts {
		if now.Before(t.Expires) {
			keep = append(keep, t)
		}
	}
	c.toasts = keep
}
