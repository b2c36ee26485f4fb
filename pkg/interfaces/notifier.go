package interfaces

// Severity classifies user-facing notifications emitted by the console
// runtime. Blocking notifications replace the page content (a failed bundle
// load), non-blocking ones surface as transient toasts.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notification is a single user-facing message.
type Notification struct {
	Severity Severity
	Message  string
	Blocking bool
}

// Notifier receives user-facing notifications. The console host decides how
// to render them; the library never blocks on delivery.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to the Notifier contract.
type NotifierFunc func(n Notification)

func (f NotifierFunc) Notify(n Notification) {
	if f != nil {
		f(n)
	}
}
