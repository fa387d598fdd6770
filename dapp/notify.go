package dapp

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Severity of a notification
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notification is a transient user-visible message
type Notification struct {
	Severity Severity
	Message  string
	Time     time.Time
}

// Notifier displays notifications. The controller never reads anything back.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(n Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

// Feed keeps the most recent notifications until they are drained.
// Draining is the API's equivalent of a toast being dismissed.
type Feed struct {
	mu    sync.Mutex
	items []Notification
	limit int
	log   *zap.Logger
}

// NewFeed creates a feed holding at most limit undrained notifications
func NewFeed(limit int, log *zap.Logger) *Feed {
	if limit <= 0 {
		limit = 50
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Feed{limit: limit, log: log}
}

// Notify appends n, dropping the oldest entry when full
func (f *Feed) Notify(n Notification) {
	f.log.Debug("notification", zap.String("severity", string(n.Severity)), zap.String("message", n.Message))

	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.items) == f.limit {
		f.items = f.items[1:]
	}
	f.items = append(f.items, n)
}

// Drain returns pending notifications oldest first and empties the feed
func (f *Feed) Drain() []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := f.items
	f.items = nil
	return out
}
