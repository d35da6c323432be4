package common

import "errors"

// Error classes callers can test for with errors.Is. Everything is wrapped
// with context (stage, path) at the place of failure.
var (
	// invalid pagination or layout parameters, nothing is produced
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// neither tabular source nor snapshot could be loaded
	ErrSourceUnavailable = errors.New("source unavailable")
	// destination and all alternate destinations are unwritable
	ErrOutputWriteConflict = errors.New("output write conflict")
	// cosmetic post-processing cannot run on this system
	ErrThemingUnavailable = errors.New("theming unavailable")
	// rendered records do not add up to category statistics
	ErrInconsistentDeck = errors.New("inconsistent deck")
)
