package identity

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/debemdeboas/dallama/internal/model"
)

// Notification is the "now posting as" toast shown after an identity switch.
type Notification struct {
	ID       uuid.UUID `json:"id"`
	UserName string    `json:"user_name"`
	Open     bool      `json:"open"`
	ShownAt  time.Time `json:"shown_at"`
}

type stopper interface {
	Stop() bool
}

// Notifier shows one notification at a time and dismisses it after a delay.
// Showing a new notification cancels the pending dismissal of the previous one.
type Notifier struct {
	delay time.Duration

	mu       sync.Mutex
	current  Notification
	timer    stopper
	onChange func()

	afterFunc func(time.Duration, func()) stopper
}

func NewNotifier(delay time.Duration) *Notifier {
	return &Notifier{
		delay: delay,
		afterFunc: func(d time.Duration, f func()) stopper {
			return time.AfterFunc(d, f)
		},
	}
}

// SetOnChange registers a callback run after the notification is auto-dismissed.
func (n *Notifier) SetOnChange(fn func()) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.onChange = fn
}

func (n *Notifier) Show(u model.User) Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
	}

	note := Notification{
		ID:       uuid.New(),
		UserName: u.Name,
		Open:     true,
		ShownAt:  time.Now().UTC(),
	}
	n.current = note
	n.timer = n.afterFunc(n.delay, func() {
		if n.Dismiss(note.ID) {
			n.mu.Lock()
			fn := n.onChange
			n.mu.Unlock()
			if fn != nil {
				fn()
			}
		}
	})

	return note
}

// Dismiss closes the notification if id is still the current one.
func (n *Notifier) Dismiss(id uuid.UUID) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.current.ID != id || !n.current.Open {
		identityLogger.Debug().Str("notification_id", id.String()).Msg("Ignoring stale dismissal")
		return false
	}
	n.current.Open = false
	n.timer = nil
	return true
}

func (n *Notifier) Current() Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Stop cancels any pending dismissal.
func (n *Notifier) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}
