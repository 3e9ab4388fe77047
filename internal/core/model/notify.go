package model

// Kind classifies a change notification.
type Kind int

const (
	KindSet Kind = iota + 1
	KindUnset
	KindAdd
	KindRemove
)

func (k Kind) String() string {
	switch k {
	case KindSet:
		return "set"
	case KindUnset:
		return "unset"
	case KindAdd:
		return "add"
	case KindRemove:
		return "remove"
	}
	return "unknown"
}

// Notification describes one change made to a feature of Notifier.
type Notification struct {
	Notifier  Object
	Kind      Kind
	FeatureID int
	Feature   string
	Old       any
	New       any
	// WasSet is the is-set state before the change, for unsettable features.
	WasSet bool
	// Position is the list index for Add and Remove, -1 otherwise.
	Position int
	// Touch marks a set that did not change the value.
	Touch bool
}

// Observer receives notifications synchronously, in the goroutine making the change.
type Observer interface {
	Notify(n Notification)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(n Notification)

func (f ObserverFunc) Notify(n Notification) {
	f(n)
}

// Recorder is an Observer that keeps every notification it receives.
type Recorder struct {
	Notifications []Notification
}

func (r *Recorder) Notify(n Notification) {
	r.Notifications = append(r.Notifications, n)
}

// Last returns the most recent notification.
func (r *Recorder) Last() (Notification, bool) {
	if len(r.Notifications) == 0 {
		return Notification{}, false
	}
	return r.Notifications[len(r.Notifications)-1], true
}

func (r *Recorder) Reset() {
	r.Notifications = nil
}
