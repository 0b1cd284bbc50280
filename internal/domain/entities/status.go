package entities

import (
	domainerrors "fx-bothub.backend/internal/domain/errors"
)

// ApprovalStatus is the review lifecycle shared by user accounts, KYC
// submissions and bot requests: pending until an admin decides, then terminal.
type ApprovalStatus string

const (
	StatusPending  ApprovalStatus = "pending"
	StatusApproved ApprovalStatus = "approved"
	StatusRejected ApprovalStatus = "rejected"
)

// Valid reports whether s is one of the three known states.
func (s ApprovalStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Terminal reports whether no further transition is allowed out of s.
func (s ApprovalStatus) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Transition validates a status change and returns the resulting state.
// Rules:
//   - pending -> approved or rejected
//   - repeating a terminal decision is a no-op (approve twice is fine)
//   - crossing terminal states (rejected -> approved and vice versa) is refused
//   - nothing ever goes back to pending
//
// An empty current status is treated as pending, matching records written
// before the status column had a default.
func Transition(current, target ApprovalStatus) (ApprovalStatus, error) {
	if current == "" {
		current = StatusPending
	}
	if !current.Valid() || !target.Valid() {
		return current, domainerrors.ErrInvalidTransition
	}
	if target == StatusPending {
		return current, domainerrors.ErrInvalidTransition
	}
	if current == target {
		return current, nil
	}
	if current.Terminal() {
		return current, domainerrors.ErrInvalidTransition
	}
	return target, nil
}
