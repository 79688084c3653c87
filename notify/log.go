package notify

import (
	"github.com/sirupsen/logrus"
)

// LogNotifier renders notifications through logrus. Used by the CLI and as the
// default surface when no other sink is wired.
type LogNotifier struct {
	logger *logrus.Logger
}

func NewLogNotifier(logger *logrus.Logger) *LogNotifier {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(message string, severity Severity) {
	entry := n.logger.WithField("severity", string(severity))
	switch severity {
	case SeverityError:
		entry.Error(message)
	case SeverityWarning:
		entry.Warn(message)
	default:
		entry.Info(message)
	}
}
