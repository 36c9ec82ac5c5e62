package events

import "veralux/core/types"

const (
	// TypeProposalSubmitted is emitted when a proposal enters the pending set.
	TypeProposalSubmitted = "gov.proposalSubmitted"
	// TypeVoteCast is emitted for every accepted vote, including re-votes.
	TypeVoteCast = "gov.voteCast"
	// TypeProposalExecuted is emitted once a proposal has been finalized.
	TypeProposalExecuted = "gov.proposalExecuted"
	// TypePolicyChanged records a policy mutation applied by execution or by a
	// direct authority update.
	TypePolicyChanged = "gov.policyChanged"
)

// ProposalSubmitted captures the creation of a governance proposal.
type ProposalSubmitted struct {
	ID          uint64
	Proposer    types.PublicKey
	Kind        uint8
	Description string
	EndTime     int64
}

// EventType satisfies the Event interface.
func (ProposalSubmitted) EventType() string { return TypeProposalSubmitted }

// VoteCast captures one accepted vote and the power it carried.
type VoteCast struct {
	ProposalID uint64
	Voter      types.PublicKey
	InFavor    bool
	Power      uint64
	Revote     bool
}

// EventType satisfies the Event interface.
func (VoteCast) EventType() string { return TypeVoteCast }

// ProposalExecuted captures the terminal outcome of a proposal.
type ProposalExecuted struct {
	ProposalID uint64
	Approved   bool
}

// EventType satisfies the Event interface.
func (ProposalExecuted) EventType() string { return TypeProposalExecuted }

// PolicyChanged records which policy field group was mutated.
type PolicyChanged struct {
	Kind uint8
}

// EventType satisfies the Event interface.
func (PolicyChanged) EventType() string { return TypePolicyChanged }
