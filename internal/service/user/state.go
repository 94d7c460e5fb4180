package user

import (
	"context"

	"github.com/looplab/fsm"

	"authors-api/internal/domain/models"
)

const (
	StateUnverified = "unverified"
	StateVerified   = "verified"

	EventVerify = "verify"
)

// newAccountState builds the lifecycle machine positioned at the given state.
// Accounts are stored unverified; verified is terminal.
func newAccountState(initial string) *fsm.FSM {
	return fsm.NewFSM(
		initial,
		fsm.Events{
			{Name: EventVerify, Src: []string{StateUnverified}, Dst: StateVerified},
		},
		fsm.Callbacks{},
	)
}

func accountState(u models.User) *fsm.FSM {
	if u.IsVerified {
		return newAccountState(StateVerified)
	}
	return newAccountState(StateUnverified)
}

// transition fires event and reports whether the state changed.
func transition(ctx context.Context, sm *fsm.FSM, event string) (bool, error) {
	if !sm.Can(event) {
		return false, nil
	}

	if err := sm.Event(ctx, event); err != nil {
		return false, err
	}

	return true, nil
}
