package domain

import "errors"

// ErrLoginRequired is returned by shopper operations invoked without an
// authenticated user. No backend call is made in that case.
var ErrLoginRequired = errors.New("login required")

// Notifier is the toast contract: every mutating shopper operation emits
// exactly one notification, success or failure, independent of the state
// update.
type Notifier interface {
	Success(title string)
	Warning(title string)
	Error(title string)
}
