package treasury

import (
	"errors"

	"veralux/core/types"
)

var (
	// ErrWithdrawalPending is returned when a new withdrawal is initiated
	// while another one is still queued.
	ErrWithdrawalPending = errors.New("treasury: withdrawal already pending")
	// ErrNoWithdrawal is returned when completion targets an empty queue.
	ErrNoWithdrawal = errors.New("treasury: no pending withdrawal")
	// ErrWithdrawalLocked is returned before the slot delay has elapsed.
	ErrWithdrawalLocked = errors.New("treasury: withdrawal slot delay not met")
)

// PendingWithdrawal is a queued governance-reserve withdrawal. Large amounts
// carry a slot delay on top of the wall-clock admin delay.
type PendingWithdrawal struct {
	Recipient      types.PublicKey `json:"recipient"`
	Amount         uint64          `json:"amount"`
	InitiationSlot uint64          `json:"initiationSlot"`
	DelaySlots     uint64          `json:"delaySlots"`
	Set            bool            `json:"set"`
}

// Initiate queues a withdrawal. threshold and delaySlots come from policy;
// amounts at or below the threshold settle without a slot delay.
func (w *PendingWithdrawal) Initiate(recipient types.PublicKey, amount, slot, threshold, delaySlots uint64) error {
	if w.Set {
		return ErrWithdrawalPending
	}
	delay := uint64(0)
	if amount > threshold {
		delay = delaySlots
	}
	*w = PendingWithdrawal{
		Recipient:      recipient,
		Amount:         amount,
		InitiationSlot: slot,
		DelaySlots:     delay,
		Set:            true,
	}
	return nil
}

// Complete returns the queued withdrawal once its slot delay has elapsed and
// clears the queue.
func (w *PendingWithdrawal) Complete(slot uint64) (types.PublicKey, uint64, error) {
	if !w.Set {
		return types.ZeroKey, 0, ErrNoWithdrawal
	}
	if slot < w.InitiationSlot+w.DelaySlots {
		return types.ZeroKey, 0, ErrWithdrawalLocked
	}
	recipient, amount := w.Recipient, w.Amount
	*w = PendingWithdrawal{}
	return recipient, amount, nil
}
