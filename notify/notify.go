package notify

import (
	"sync"
	"time"

	"github.com/ARNOB663/Food-Network/models"
)

// DefaultDuration is the auto-dismiss delay when Show gets zero.
const DefaultDuration = 3 * time.Second

// Emitter is a single-slot notification: showing a new message replaces any
// visible one outright and restarts its auto-dismiss timer. There is no
// queue and no history.
type Emitter struct {
	mu        sync.Mutex
	current   models.Notification
	timer     *time.Timer
	seq       uint64
	listeners []func(models.Notification)
}

func NewEmitter() *Emitter {
	return &Emitter{}
}

// Subscribe registers a listener invoked on every show and hide transition.
// Listeners are called outside the emitter lock, in registration order.
func (e *Emitter) Subscribe(fn func(models.Notification)) {
	e.mu.Lock()
	e.listeners = append(e.listeners, fn)
	e.mu.Unlock()
}

// Show makes the notification visible, replacing whatever was on screen and
// resetting the auto-dismiss timer.
func (e *Emitter) Show(message string, severity models.Severity, duration time.Duration) {
	if duration <= 0 {
		duration = DefaultDuration
	}

	e.mu.Lock()
	if e.timer != nil {
		e.timer.Stop()
	}
	e.seq++
	seq := e.seq
	e.current = models.Notification{
		Message:  message,
		Severity: severity,
		Visible:  true,
		Duration: duration,
	}
	e.timer = time.AfterFunc(duration, func() { e.dismiss(seq) })
	snapshot := e.current
	listeners := e.listeners
	e.mu.Unlock()

	for _, fn := range listeners {
		fn(snapshot)
	}
}

func (e *Emitter) Success(message string) { e.Show(message, models.SeveritySuccess, 0) }
func (e *Emitter) Error(message string)   { e.Show(message, models.SeverityError, 0) }
func (e *Emitter) Info(message string)    { e.Show(message, models.SeverityInfo, 0) }

// Hide dismisses the current notification immediately.
func (e *Emitter) Hide() {
	e.mu.Lock()
	seq := e.seq
	e.mu.Unlock()
	e.dismiss(seq)
}

// Current reports the visible notification, if any.
func (e *Emitter) Current() (models.Notification, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current, e.current.Visible
}

// dismiss hides the notification only if no newer Show superseded seq, so an
// expired timer never knocks out a replacement message.
func (e *Emitter) dismiss(seq uint64) {
	e.mu.Lock()
	if seq != e.seq || !e.current.Visible {
		e.mu.Unlock()
		return
	}
	if e.timer != nil {
		e.timer.Stop()
	}
	e.current.Visible = false
	snapshot := e.current
	listeners := e.listeners
	e.mu.Unlock()

	for _, fn := range listeners {
		fn(snapshot)
	}
}
