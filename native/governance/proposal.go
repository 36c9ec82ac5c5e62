// Package governance implements proposals, tier-weighted voting, and the
// policy effects an approved proposal applies.
package governance

import (
	"veralux/core/types"
	"veralux/native/common"
)

// Voting schedule and thresholds.
const (
	// VotingPeriod is how long a proposal accepts votes.
	VotingPeriod int64 = 14 * 86_400
	// NoticePeriod separates the end of voting from execution.
	NoticePeriod int64 = 3 * 86_400
	// QuorumPct of the total voting power must participate.
	QuorumPct = 30
	// ApprovalPct of cast votes must be in favor, rounded up.
	ApprovalPct = 51
	// ThresholdPct of the total voting power must be in favor.
	ThresholdPct = 20
)

// Proposal status values.
const (
	StatusPending uint8 = iota
	StatusApproved
	StatusRejected
)

// Proposal is one governance proposal. The raw values are retained next to
// the decoded effect for audit.
type Proposal struct {
	ID            uint64   `json:"id"`
	Description   string   `json:"description"`
	VotesFor      uint64   `json:"votesFor"`
	VotesAgainst  uint64   `json:"votesAgainst"`
	Status        uint8    `json:"status"`
	StartTime     int64    `json:"startTime"`
	EndTime       int64    `json:"endTime"`
	ExecutionTime int64    `json:"executionTime"`
	Effect        Effect   `json:"effect"`
	RawValues     []uint64 `json:"rawValues"`
}

// VoteRecord is one staker's standing vote on a proposal. Re-votes replace
// the prior contribution.
type VoteRecord struct {
	Staker     types.PublicKey `json:"staker"`
	ProposalID uint64          `json:"proposalId"`
	Voted      bool            `json:"voted"`
	InFavor    bool            `json:"inFavor"`
}

// Tally decides a proposal after voting has closed. A zero total voting
// power rejects outright; otherwise approval requires quorum participation,
// majority approval of cast votes, and a floor of the total power in favor.
func (p *Proposal) Tally(totalVotingPower uint64) (uint8, error) {
	if totalVotingPower == 0 {
		return StatusRejected, nil
	}
	totalVotes, err := common.CheckedAdd(p.VotesFor, p.VotesAgainst)
	if err != nil {
		return 0, err
	}
	quorum, err := common.MulDiv(totalVotingPower, QuorumPct, 100)
	if err != nil {
		return 0, err
	}
	approval, err := common.MulDivCeil(totalVotes, ApprovalPct, 100)
	if err != nil {
		return 0, err
	}
	threshold, err := common.MulDiv(totalVotingPower, ThresholdPct, 100)
	if err != nil {
		return 0, err
	}
	if totalVotes >= quorum && p.VotesFor >= approval && p.VotesFor >= threshold {
		return StatusApproved, nil
	}
	return StatusRejected, nil
}
