package drive

import "context"

// lockTransition is the outcome of evaluating a toggle request against the
// single-owner rule.
type lockTransition struct {
	allowed bool
	// next state, meaningful only when allowed
	private bool
	ownerID int64
}

// evaluateToggle applies the ownership rule to a node's current lock state.
//
//   - Unlocked: anyone may lock, and doing so makes them the owner. Locking
//     is first mover wins, not tied to the creator.
//   - Locked, actor is the owner: unlock; ownerID stays as-is. The stale
//     value is inert while is_private is false.
//   - Locked, actor is not the owner: denied.
func evaluateToggle(isPrivate bool, ownerID int64, actorID int64) lockTransition {
	if !isPrivate {
		return lockTransition{allowed: true, private: true, ownerID: actorID}
	}
	if ownerID == actorID {
		return lockTransition{allowed: true, private: false, ownerID: ownerID}
	}
	return lockTransition{allowed: false}
}

// denial builds the user-facing rejection, naming the blocking owner. The
// owner's contact comes from the user directory; if even that lookup fails
// the denial still stands, just without an address to show.
func (s *Service) denial(ctx context.Context, ownerID int64) error {
	owner, err := s.users.GetUserByID(ctx, ownerID)
	if err != nil {
		s.log.Error().Err(err).Int64("owner_id", ownerID).Msg("owner lookup for lock denial failed")
		return &LockDenied{OwnerID: ownerID}
	}
	denied := &LockDenied{OwnerID: ownerID}
	if owner != nil {
		denied.OwnerEmail = owner.Email
	}
	return denied
}
