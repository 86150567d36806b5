package notify

import "log"

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notification is the user-facing outcome of a ledger mutation. It is
// informational only; the ledger never depends on how (or whether) a sink
// renders it.
type Notification struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
}

type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(n Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

// NewLogNotifier is the default sink: one log line per event.
func NewLogNotifier() Notifier {
	return NotifierFunc(func(n Notification) {
		log.Printf("notify [%s] %s: %s", n.Severity, n.Title, n.Description)
	})
}

// NewNopNotifier discards events; handy in tests.
func NewNopNotifier() Notifier {
	return NotifierFunc(func(Notification) {})
}
