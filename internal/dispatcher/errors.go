package dispatcher

import "errors"

// Dispatcher errors.
var (
	// ErrModalActive indicates a modal-input bracket was requested while
	// another dialog is already active. Dialogs are mutually exclusive.
	ErrModalActive = errors.New("dispatcher: modal input already active")

	// ErrSearchInactive indicates a search continuation was requested
	// outside an active search mode.
	ErrSearchInactive = errors.New("dispatcher: search mode not active")

	// ErrStyleRequired indicates ReplaceStyle was called without a target
	// style.
	ErrStyleRequired = errors.New("dispatcher: replacement style required")

	// ErrEmptySearch indicates Search was called with empty search text.
	ErrEmptySearch = errors.New("dispatcher: search text is empty")
)
