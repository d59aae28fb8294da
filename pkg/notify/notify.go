package notify

import (
	"storefront/internal/domain"

	"github.com/sirupsen/logrus"
)

// logNotifier emits toast notifications as structured log events. A web
// frontend consuming this service renders its own toasts from the
// response envelope; this keeps the one-notification-per-mutation
// contract observable on the server side.
type logNotifier struct {
	log *logrus.Logger
}

func NewLogNotifier(logger *logrus.Logger) domain.Notifier {
	return &logNotifier{log: logger}
}

func (n *logNotifier) Success(title string) {
	n.log.WithField("toast", "success").Info(title)
}

func (n *logNotifier) Warning(title string) {
	n.log.WithField("toast", "warning").Warn(title)
}

func (n *logNotifier) Error(title string) {
	n.log.WithField("toast", "error").Error(title)
}
