package events

import "veralux/core/types"

const (
	// TypePauseInitiated is emitted when a pause or resume enters the queue.
	TypePauseInitiated = "admin.pauseInitiated"
	// TypePaused is emitted when a confirmed pause takes effect.
	TypePaused = "admin.paused"
	// TypeResumed is emitted when a confirmed resume takes effect.
	TypeResumed = "admin.resumed"
	// TypeMultisigRotationInitiated is emitted when a new owner set is queued.
	TypeMultisigRotationInitiated = "admin.multisigRotationInitiated"
	// TypeMultisigRotated is emitted when a queued owner set takes effect.
	TypeMultisigRotated = "admin.multisigRotated"
	// TypeWhitelistQueued is emitted when a whitelist change enters the queue.
	TypeWhitelistQueued = "admin.whitelistQueued"
	// TypeWithdrawalInitiated is emitted when a treasury withdrawal is queued.
	TypeWithdrawalInitiated = "admin.withdrawalInitiated"
	// TypeWithdrawalCompleted is emitted when a queued withdrawal settles.
	TypeWithdrawalCompleted = "admin.withdrawalCompleted"
	// TypeGlobalsUpdated is emitted when global wallet or schedule fields
	// change.
	TypeGlobalsUpdated = "admin.globalsUpdated"
)

// PauseInitiated captures a queued pause or resume request.
type PauseInitiated struct {
	Pause  bool
	Reason string
}

// EventType satisfies the Event interface.
func (PauseInitiated) EventType() string { return TypePauseInitiated }

// Paused captures the activation of an emergency pause.
type Paused struct {
	Reason string
}

// EventType satisfies the Event interface.
func (Paused) EventType() string { return TypePaused }

// Resumed captures the lifting of an emergency pause.
type Resumed struct{}

// EventType satisfies the Event interface.
func (Resumed) EventType() string { return TypeResumed }

// MultisigRotationInitiated captures a queued multisig owner rotation.
type MultisigRotationInitiated struct {
	Owners    []types.PublicKey
	Threshold uint8
}

// EventType satisfies the Event interface.
func (MultisigRotationInitiated) EventType() string { return TypeMultisigRotationInitiated }

// MultisigRotated captures an applied multisig owner rotation.
type MultisigRotated struct {
	Owners    []types.PublicKey
	Threshold uint8
}

// EventType satisfies the Event interface.
func (MultisigRotated) EventType() string { return TypeMultisigRotated }

// WhitelistQueued captures a queued contract whitelist mutation.
type WhitelistQueued struct {
	Add      bool
	Contract types.PublicKey
}

// EventType satisfies the Event interface.
func (WhitelistQueued) EventType() string { return TypeWhitelistQueued }

// WithdrawalInitiated captures a queued governance-reserve withdrawal.
type WithdrawalInitiated struct {
	Recipient  types.PublicKey
	Amount     uint64
	DelaySlots uint64
}

// EventType satisfies the Event interface.
func (WithdrawalInitiated) EventType() string { return TypeWithdrawalInitiated }

// WithdrawalCompleted captures a settled governance-reserve withdrawal.
type WithdrawalCompleted struct {
	Recipient types.PublicKey
	Amount    uint64
}

// EventType satisfies the Event interface.
func (WithdrawalCompleted) EventType() string { return TypeWithdrawalCompleted }

// GlobalsUpdated captures an applied update of the global wallet and
// schedule fields.
type GlobalsUpdated struct {
	LaunchTimestamp int64
	TeamWallet      types.PublicKey
	CharityWallet   types.PublicKey
	PresaleReceiver types.PublicKey
}

// EventType satisfies the Event interface.
func (GlobalsUpdated) EventType() string { return TypeGlobalsUpdated }
