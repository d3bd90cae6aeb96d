package dispatch

import (
	"time"
)

// DefaultAutoDismiss is how long an unacknowledged alert stays visible.
const DefaultAutoDismiss = 60 * time.Second

// Category is the alert class. Each category has its own visibility guard, so
// a periodic alert and a task alert may be visible at the same time.
type Category string

const (
	CategoryPeriodic Category = "periodic"
	CategoryTask     Category = "task"
)

// Alert is an accepted fire event awaiting acknowledgment or auto-dismiss.
// Seq ties the alert to its auto-dismiss timer; a release with a stale
// sequence does nothing.
type Alert struct {
	Category Category
	Title    string
	Body     string
	Seq      uint64
	ShownAt  time.Time
}

// Dispatcher serializes fire events into user-visible alerts, enforcing at
// most one visible alert per category. It must only be touched from the
// update loop; the guard is a plain map with no locking of its own.
type Dispatcher struct {
	visible  map[Category]Alert
	seq      uint64
	notifier Notifier
	timeout  time.Duration
}

func New(notifier Notifier, timeout time.Duration) *Dispatcher {
	if notifier == nil {
		notifier = NoopNotifier{}
	}
	if timeout <= 0 {
		timeout = DefaultAutoDismiss
	}
	return &Dispatcher{
		visible:  make(map[Category]Alert),
		notifier: notifier,
		timeout:  timeout,
	}
}

// Accept admits a fire event unless an alert of the same category is already
// visible; the existing alert is left to finish its own lifecycle. On
// acceptance the platform notification is sent best-effort and the returned
// alert carries the sequence its auto-dismiss must present.
func (d *Dispatcher) Accept(category Category, title, body string, now time.Time) (Alert, bool) {
	if _, busy := d.visible[category]; busy {
		return Alert{}, false
	}
	d.seq++
	alert := Alert{Category: category, Title: title, Body: body, Seq: d.seq, ShownAt: now}
	d.visible[category] = alert
	_ = d.notifier.Notify(title, body, d.timeout)
	return alert, true
}

// Release clears the category guard when seq matches the visible alert. A
// stale sequence, left over from an alert that was already acknowledged,
// is a no-op.
func (d *Dispatcher) Release(category Category, seq uint64) bool {
	current, ok := d.visible[category]
	if !ok || current.Seq != seq {
		return false
	}
	delete(d.visible, category)
	return true
}

// Acknowledge releases whatever alert is visible for the category.
func (d *Dispatcher) Acknowledge(category Category) bool {
	if _, ok := d.visible[category]; !ok {
		return false
	}
	delete(d.visible, category)
	return true
}

// Visible returns the currently displayed alert for the category, if any.
func (d *Dispatcher) Visible(category Category) (Alert, bool) {
	alert, ok := d.visible[category]
	return alert, ok
}

// VisibleAlerts lists visible alerts in stable category order.
func (d *Dispatcher) VisibleAlerts() []Alert {
	out := make([]Alert, 0, 2)
	for _, category := range []Category{CategoryTask, CategoryPeriodic} {
		if alert, ok := d.visible[category]; ok {
			out = append(out, alert)
		}
	}
	return out
}

// Announce sends an informational notification without occupying any guard.
// Used for the one-time hide notice.
func (d *Dispatcher) Announce(title, body string, timeout time.Duration) {
	_ = d.notifier.Notify(title, body, timeout)
}

func (d *Dispatcher) Timeout() time.Duration {
	return d.timeout
}
