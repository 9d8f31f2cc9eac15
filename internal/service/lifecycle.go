package service

import (
	"fmt"

	"github.com/hsvanberg/offert-service/internal/model"
)

// Action is a user-triggered lifecycle step. Transitions never fire
// automatically; a stale draft only looks expired in the list view.
type Action string

const (
	ActionSend   Action = "send"
	ActionAccept Action = "accept"
	ActionReject Action = "reject"
)

// transitions is the whole state machine. Anything not listed is invalid,
// which leaves accepted and rejected terminal and keeps the expired status
// unreachable from the API.
var transitions = map[model.QuoteStatus]map[Action]model.QuoteStatus{
	model.QuoteStatusDraft: {
		ActionSend: model.QuoteStatusSent,
	},
	model.QuoteStatusSent: {
		ActionAccept: model.QuoteStatusAccepted,
		ActionReject: model.QuoteStatusRejected,
	},
}

// Transition resolves the next status for an action, or ErrInvalidTransition
// when the action is not defined for the current status.
func Transition(current model.QuoteStatus, action Action) (model.QuoteStatus, error) {
	next, ok := transitions[current][action]
	if !ok {
		return current, fmt.Errorf("%w: %s from %s", ErrInvalidTransition, action, current)
	}
	return next, nil
}
