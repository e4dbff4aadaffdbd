package routing

import "errors"

var (
	// ErrNodeNotFound. graph references an absent node id; aborts the current search only.
	ErrNodeNotFound = errors.New("node not found in graph")
	// ErrNoPathFound. open set exhausted before reaching the target. valid outcome.
	ErrNoPathFound = errors.New("no path found")
)
