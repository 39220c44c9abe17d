package domain

import "errors"

// ErrAlreadyExists reports that a unique (recruiter, talent) row was
// already present when an insert ran. Writers treat it as "a concurrent
// request won the race" and skip their counter and notification side
// effects instead of double-counting.
var ErrAlreadyExists = errors.New("row already exists")
