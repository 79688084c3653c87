package notify

// Severity of a user-visible notification.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

// Notifier displays a message to the user. Fire-and-forget, no return value.
type Notifier interface {
	Notify(message string, severity Severity)
}
