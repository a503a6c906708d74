package notify

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// Type classifies a notification for styling and default behavior.
type Type int

const (
	Info Type = iota
	Success
	Warning
	Error
)

func (t Type) String() string {
	switch t {
	case Success:
		return "success"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "info"
	}
}

// DefaultDuration applies when a notification does not set its own.
const DefaultDuration = 5 * time.Second

// DefaultMaxEntries bounds the queue when no cap is given.
const DefaultMaxEntries = 8

// Action is a button attached to a notification.
type Action struct {
	Label string
	Run   func()
}

// Notification is one transient or sticky UI message.
type Notification struct {
	ID        string
	Type      Type
	Title     string
	Message   string
	Duration  time.Duration
	AutoClose bool
	Actions   []Action
}

// Queue is an ordered, bounded list of active notifications. Insertion
// order is render order; when the cap is reached the oldest non-error
// entry is evicted first (errors persist until nothing else remains).
type Queue struct {
	mu       sync.Mutex
	entries  []Notification
	timers   map[string]*time.Timer
	max      int
	onChange func([]Notification)
}

// NewQueue creates a queue capped at max entries; max <= 0 uses the
// default cap.
func NewQueue(max int) *Queue {
	if max <= 0 {
		max = DefaultMaxEntries
	}
	return &Queue{
		timers: make(map[string]*time.Timer),
		max:    max,
	}
}

// OnChange installs the listener invoked with a snapshot after every
// mutation. The TUI redraws the toast overlay from it.
func (q *Queue) OnChange(fn func([]Notification)) {
	q.mu.Lock()
	q.onChange = fn
	q.mu.Unlock()
}

// Add appends a notification, assigning its id and defaults, and
// schedules auto-removal when the entry auto-closes. The assigned id is
// returned.
func (q *Queue) Add(n Notification) string {
	n.ID = newID()
	if n.Duration <= 0 {
		n.Duration = DefaultDuration
	}

	q.mu.Lock()
	if len(q.entries) >= q.max {
		q.evictLocked()
	}
	q.entries = append(q.entries, n)
	if n.AutoClose {
		id := n.ID
		q.timers[id] = time.AfterFunc(n.Duration, func() {
			q.Remove(id)
		})
	}
	fn, snapshot := q.onChange, q.snapshotLocked()
	q.mu.Unlock()

	if fn != nil {
		fn(snapshot)
	}
	return n.ID
}

// Success adds an auto-closing success notification.
func (q *Queue) Success(title, message string) string {
	return q.Add(Notification{Type: Success, Title: title, Message: message, AutoClose: true})
}

// Info adds an auto-closing info notification.
func (q *Queue) Info(title, message string) string {
	return q.Add(Notification{Type: Info, Title: title, Message: message, AutoClose: true})
}

// Warning adds an auto-closing warning notification.
func (q *Queue) Warning(title, message string) string {
	return q.Add(Notification{Type: Warning, Title: title, Message: message, AutoClose: true})
}

// Error adds a sticky error notification; errors persist until manually
// dismissed.
func (q *Queue) Error(title, message string) string {
	return q.Add(Notification{Type: Error, Title: title, Message: message, AutoClose: false})
}

// Remove dismisses the notification with the given id. Removing an
// absent id is a no-op, and removing the same id twice is harmless.
func (q *Queue) Remove(id string) {
	q.mu.Lock()
	if timer, ok := q.timers[id]; ok {
		timer.Stop()
		delete(q.timers, id)
	}
	found := false
	kept := q.entries[:0]
	for _, n := range q.entries {
		if n.ID == id {
			found = true
			continue
		}
		kept = append(kept, n)
	}
	q.entries = kept
	fn, snapshot := q.onChange, q.snapshotLocked()
	q.mu.Unlock()

	if found && fn != nil {
		fn(snapshot)
	}
}

// Active returns a snapshot of the current entries in insertion order.
func (q *Queue) Active() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.snapshotLocked()
}

// evictLocked drops the oldest non-error entry, or the oldest entry
// outright when only errors remain.
func (q *Queue) evictLocked() {
	victim := -1
	for i, n := range q.entries {
		if n.Type != Error {
			victim = i
			break
		}
	}
	if victim == -1 {
		victim = 0
	}
	id := q.entries[victim].ID
	if timer, ok := q.timers[id]; ok {
		timer.Stop()
		delete(q.timers, id)
	}
	q.entries = append(q.entries[:victim], q.entries[victim+1:]...)
}

func (q *Queue) snapshotLocked() []Notification {
	snapshot := make([]Notification, len(q.entries))
	copy(snapshot, q.entries)
	return snapshot
}

func newID() string {
	return fmt.Sprintf("%d-%04x", time.Now().UnixMilli(), rand.Intn(1<<16))
}
