package domain

import "errors"

// ErrKeyNotFound is returned when no option in an environment matches a value.
var ErrKeyNotFound = errors.New("key not found in environment")

// ErrOptionMismatch is returned when a value matches no trigger of a single option.
var ErrOptionMismatch = errors.New("option mismatch")

// ErrTokenRejected is returned when a token of the input line is not a member of the environment.
var ErrTokenRejected = errors.New("token not in environment")

// ErrSelectionRequired is reported when a loop that requires a return value is asked to break without one.
var ErrSelectionRequired = errors.New("selection required")

// ErrInputRequired is reported when an empty line is entered on a loop that does not allow it.
var ErrInputRequired = errors.New("input required")
