package model

import (
	"strconv"
	"sync"
	"time"
)

var (
	idMu   sync.Mutex
	lastID int64
)

// NewID returns a string id derived from the wall clock in milliseconds.
// Creations landing on the same millisecond are bumped by one so ids stay
// unique and monotonically increasing within a single process, which is the
// only writer this system has.
func NewID() string {
	idMu.Lock()
	defer idMu.Unlock()
	now := time.Now().UnixMilli()
	if now <= lastID {
		now = lastID + 1
	}
	lastID = now
	return strconv.FormatInt(now, 10)
}

// Timestamp returns the current time as the ISO-8601 string every createdAt
// and dueDate field carries.
func Timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
