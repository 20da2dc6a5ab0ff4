package storage

import "errors"

// Common client storage errors
var (
	// ErrStateNotFound indicates that no sync state has been saved yet
	ErrStateNotFound = errors.New("sync state not found")

	// ErrUnsupportedVersion indicates a snapshot written by an incompatible version
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")

	// ErrCorruptState indicates a snapshot that cannot be decoded
	ErrCorruptState = errors.New("corrupt sync state")
)
