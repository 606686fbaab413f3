package drive

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluateToggle(t *testing.T) {
	tests := []struct {
		name      string
		isPrivate bool
		ownerID   int64
		actorID   int64
		want      lockTransition
	}{
		{
			name:    "unlocked node locks for any actor",
			actorID: 2,
			want:    lockTransition{allowed: true, private: true, ownerID: 2},
		},
		{
			name:      "owner unlocks, ownership untouched",
			isPrivate: true,
			ownerID:   1,
			actorID:   1,
			want:      lockTransition{allowed: true, private: false, ownerID: 1},
		},
		{
			name:      "non-owner denied",
			isPrivate: true,
			ownerID:   1,
			actorID:   2,
			want:      lockTransition{allowed: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := evaluateToggle(tt.isPrivate, tt.ownerID, tt.actorID)
			require.Equal(t, tt.want, got)
		})
	}
}

// Locking is first mover wins: the creator holds no special claim once
// someone else locks first.
func TestLockFirstMoverBecomesOwner(t *testing.T) {
	svc, store := newTestService(t)
	creator := &Actor{ID: 1, Email: "u1@example.com"}
	other := &Actor{ID: 2, Email: "u2@example.com"}
	store.addUser(1, "u1@example.com")
	store.addUser(2, "u2@example.com")

	view, err := svc.CreateFolder(context.Background(), creator, "Docs", nil, nil)
	require.NoError(t, err)
	id := view.Folders[0].ID

	_, err = svc.ToggleLock(context.Background(), other, NodeRef{Kind: KindFolder, ID: id}, nil)
	require.NoError(t, err)
	require.True(t, store.folders[id].IsPrivate)
	require.Equal(t, int64(2), store.folders[id].OwnerID)

	// Now the creator is the outsider.
	_, err = svc.ToggleLock(context.Background(), creator, NodeRef{Kind: KindFolder, ID: id}, nil)
	var denied *LockDenied
	require.ErrorAs(t, err, &denied)
	require.Equal(t, int64(2), denied.OwnerID)
	require.Equal(t, "u2@example.com", denied.OwnerEmail)
}

func TestUnlockLeavesOwnerIDStale(t *testing.T) {
	svc, store := newTestService(t)
	actor := &Actor{ID: 7, Email: "u7@example.com"}
	store.addUser(7, "u7@example.com")

	view, err := svc.CreateFolder(context.Background(), actor, "Docs", nil, nil)
	require.NoError(t, err)
	id := view.Folders[0].ID

	_, err = svc.ToggleLock(context.Background(), actor, NodeRef{Kind: KindFolder, ID: id}, nil)
	require.NoError(t, err)
	_, err = svc.ToggleLock(context.Background(), actor, NodeRef{Kind: KindFolder, ID: id}, nil)
	require.NoError(t, err)

	f := store.folders[id]
	require.False(t, f.IsPrivate)
	require.Equal(t, int64(7), f.OwnerID, "unlock keeps the last owner on record")

	// The stale owner is inert: anyone can lock again.
	other := &Actor{ID: 8, Email: "u8@example.com"}
	_, err = svc.ToggleLock(context.Background(), other, NodeRef{Kind: KindFolder, ID: id}, nil)
	require.NoError(t, err)
	require.Equal(t, int64(8), store.folders[id].OwnerID)
}

func TestLockDenialWithoutDirectoryEntry(t *testing.T) {
	svc, store := newTestService(t)
	owner := &Actor{ID: 1, Email: "u1@example.com"}
	other := &Actor{ID: 2, Email: "u2@example.com"}
	// Owner never registered in the user directory.

	view, err := svc.CreateFolder(context.Background(), owner, "Docs", nil, nil)
	require.NoError(t, err)
	id := view.Folders[0].ID

	_, err = svc.ToggleLock(context.Background(), owner, NodeRef{Kind: KindFolder, ID: id}, nil)
	require.NoError(t, err)

	_, err = svc.ToggleLock(context.Background(), other, NodeRef{Kind: KindFolder, ID: id}, nil)
	var denied *LockDenied
	require.ErrorAs(t, err, &denied)
	require.Equal(t, int64(1), denied.OwnerID)
	require.Empty(t, denied.OwnerEmail, "denial stands even without a contact address")
	require.True(t, store.folders[id].IsPrivate)
}

func TestToggleLockFileNode(t *testing.T) {
	svc, store := newTestService(t)
	actor := &Actor{ID: 1, Email: "u1@example.com"}
	store.addUser(1, "u1@example.com")

	_, err := svc.RegisterUpload(context.Background(), actor, UploadParams{Name: "a.txt"}, nil)
	require.NoError(t, err)
	var fileID string
	for id := range store.files {
		fileID = id
	}

	_, err = svc.ToggleLock(context.Background(), actor, NodeRef{Kind: KindFile, ID: fileID}, nil)
	require.NoError(t, err)
	require.True(t, store.files[fileID].IsPrivate)
	require.Equal(t, int64(1), store.files[fileID].OwnerID)
}

func TestToggleLockMissingNode(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.ToggleLock(context.Background(), &Actor{ID: 1}, NodeRef{Kind: KindFolder, ID: "nope"}, nil)
	require.ErrorIs(t, err, ErrNotFound)
}

// A toggle that loses the race between reading the lock state and writing
// the new one must fail rather than overwrite the winner.
func TestToggleLockDetectsConcurrentFlip(t *testing.T) {
	svc, store := newTestService(t)
	actor := &Actor{ID: 1, Email: "u1@example.com"}
	store.addUser(1, "u1@example.com")

	view, err := svc.CreateFolder(context.Background(), actor, "Docs", nil, nil)
	require.NoError(t, err)
	id := view.Folders[0].ID

	// Another writer flips the state right after our read.
	store.onGetFolder = func() {
		f := store.folders[id]
		f.IsPrivate = true
		f.OwnerID = 9
		store.folders[id] = f
	}

	_, err = svc.ToggleLock(context.Background(), actor, NodeRef{Kind: KindFolder, ID: id}, nil)
	require.ErrorIs(t, err, ErrLockConflict)

	f := store.folders[id]
	require.True(t, f.IsPrivate)
	require.Equal(t, int64(9), f.OwnerID, "the concurrent winner's write survives")
}
