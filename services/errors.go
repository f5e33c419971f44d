package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound covers both records that do not exist and records owned by
// another user. The two cases are deliberately indistinguishable so that
// nothing leaks about other users' data.
var ErrNotFound = errors.New("record not found")

// ErrConflict reports an optimistic-concurrency collision: the record was
// changed by another writer after it was read. The caller must re-read and
// retry the whole operation.
var ErrConflict = errors.New("record was modified concurrently")

// ErrCasinoInUse reports an attempt to delete a casino that still has
// sessions referencing it.
var ErrCasinoInUse = errors.New("casino has recorded sessions")

// ValidationError carries per-field messages for input that failed
// constraint checks. No write happens when one is returned.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
