package apperrors

import "errors"

// ErrValidation indicates that input data failed validation checks
// before any request was issued.
var ErrValidation = errors.New("validation error")

// ErrNotFound indicates that a referenced resource could not be resolved.
var ErrNotFound = errors.New("resource not found")

// ErrSubmitInFlight indicates that a form already has a pending
// submission; the re-entrant attempt was ignored.
var ErrSubmitInFlight = errors.New("submission already in progress")

// ErrRefreshFailed indicates that the snapshot refresh after a
// successful mutation failed. The mutation itself went through; only
// the locally cached view may be stale.
var ErrRefreshFailed = errors.New("snapshot refresh failed")
