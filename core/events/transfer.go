package events

import "veralux/core/types"

const (
	// TypeTransferTaxed is emitted after a taxed transfer settles.
	TypeTransferTaxed = "transfer.taxed"
	// TypeNothingToDo marks zero-effect outcomes that are not failures, such
	// as a claim with nothing claimable or an empty distribution batch.
	TypeNothingToDo = "ledger.nothingToDo"
)

// TransferTaxed captures the full tax breakdown of a settled transfer. Amount
// is the net amount received by the recipient.
type TransferTaxed struct {
	From           types.PublicKey
	To             types.PublicKey
	Amount         uint64
	Tax            uint64
	Burn           uint64
	TreasuryTax    uint64
	LiquidityTax   uint64
	LPIncentiveTax uint64
	CharityTax     uint64
	TeamTax        uint64
}

// EventType satisfies the Event interface.
func (TransferTaxed) EventType() string { return TypeTransferTaxed }

// NothingToDo reports an operation that succeeded without any state change.
type NothingToDo struct {
	User   types.PublicKey
	Reason string
}

// EventType satisfies the Event interface.
func (NothingToDo) EventType() string { return TypeNothingToDo }
