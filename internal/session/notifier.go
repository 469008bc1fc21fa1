package session

// Notifier receives the "play ended" signal emitted when a decay drains the
// balance to zero. Alerting (sound, desktop notification, terminal bell) is
// entirely the notifier's business; the session only relays the event.
type Notifier interface {
	PlayEnded()
}

// NotifierFunc adapts a plain function to the Notifier interface.
type NotifierFunc func()

func (f NotifierFunc) PlayEnded() { f() }

type nopNotifier struct{}

func (nopNotifier) PlayEnded() {}
