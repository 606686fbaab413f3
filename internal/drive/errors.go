package drive

import (
	"errors"
	"fmt"
)

var (
	// ErrNameRequired is returned before any collaborator call when a
	// create or rename arrives with a name that is empty after trimming.
	ErrNameRequired = errors.New("name cannot be empty")

	// ErrAuthRequired is returned when a mutating operation is attempted
	// without an authenticated actor.
	ErrAuthRequired = errors.New("authentication required")

	// ErrInvalidSize rejects upload registrations with a negative size.
	ErrInvalidSize = errors.New("size cannot be negative")

	ErrNotFound = errors.New("item not found")

	// ErrFolderNotEmpty rejects deletion of a folder that still has
	// children, so descendants are never orphaned.
	ErrFolderNotEmpty = errors.New("folder is not empty")

	// ErrBusy is returned when another mutation on the same node is still
	// in flight.
	ErrBusy = errors.New("another operation on this item is in progress")

	// ErrLockConflict is returned when the lock state changed between the
	// read and the write; the caller should re-read and retry.
	ErrLockConflict = errors.New("lock state changed concurrently")
)

// LockDenied is returned when an actor other than the recorded owner tries
// to unlock a private item. It names the blocking owner so the requester
// knows whom to ask; this is never a silent failure.
type LockDenied struct {
	OwnerID    int64
	OwnerEmail string
}

func (e *LockDenied) Error() string {
	return fmt.Sprintf("this item can only be unlocked by %s", e.OwnerEmail)
}
