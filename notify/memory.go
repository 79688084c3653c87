package notify

import "sync"

// Notification is one recorded message.
type Notification struct {
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// Recorder collects notifications in memory. The HTTP facade uses one per
// request to return notifications in the response body; tests assert on it.
type Recorder struct {
	mu      sync.Mutex
	entries []Notification
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Notify(message string, severity Severity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Notification{Message: message, Severity: severity})
}

// Notifications returns a copy of everything recorded so far.
func (r *Recorder) Notifications() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.entries))
	copy(out, r.entries)
	return out
}

// BySeverity returns recorded notifications of one severity.
func (r *Recorder) BySeverity(severity Severity) []Notification {
	var out []Notification
	for _, n := range r.Notifications() {
		if n.Severity == severity {
			out = append(out, n)
		}
	}
	return out
}
