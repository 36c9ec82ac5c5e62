package events

import "veralux/core/types"

const (
	// TypePresalePurchased is emitted for every accepted presale purchase.
	TypePresalePurchased = "presale.purchased"
	// TypePresaleClaimed is emitted when vested presale tokens are claimed.
	TypePresaleClaimed = "presale.claimed"
	// TypeTeamVestingUpdated is emitted when a team allocation is granted,
	// extended, or canceled.
	TypeTeamVestingUpdated = "vesting.teamUpdated"
	// TypeTeamVestingClaimed is emitted when a team member claims tokens.
	TypeTeamVestingClaimed = "vesting.teamClaimed"
	// TypeFreelancerReleased is emitted when authority releases freelancer pay.
	TypeFreelancerReleased = "vesting.freelancerReleased"
	// TypeFreelancerClaimed is emitted when a freelancer claims released pay.
	TypeFreelancerClaimed = "vesting.freelancerClaimed"
	// TypeAirdropped is emitted once per completed airdrop batch.
	TypeAirdropped = "treasury.airdropped"
)

// PresalePurchased captures a presale buy.
type PresalePurchased struct {
	Buyer      types.PublicKey
	USDTAmount uint64
	Tokens     uint64
}

// EventType satisfies the Event interface.
func (PresalePurchased) EventType() string { return TypePresalePurchased }

// PresaleClaimed captures a presale vesting claim.
type PresaleClaimed struct {
	Buyer  types.PublicKey
	Amount uint64
}

// EventType satisfies the Event interface.
func (PresaleClaimed) EventType() string { return TypePresaleClaimed }

// TeamVestingUpdated captures a change to a team member's schedule.
type TeamVestingUpdated struct {
	Member    types.PublicKey
	Total     uint64
	Immediate uint64
	Canceled  bool
}

// EventType satisfies the Event interface.
func (TeamVestingUpdated) EventType() string { return TypeTeamVestingUpdated }

// TeamVestingClaimed captures a team vesting payout.
type TeamVestingClaimed struct {
	Member types.PublicKey
	Amount uint64
}

// EventType satisfies the Event interface.
func (TeamVestingClaimed) EventType() string { return TypeTeamVestingClaimed }

// FreelancerReleased captures an authority release of freelancer compensation.
type FreelancerReleased struct {
	Freelancer types.PublicKey
	Amount     uint64
}

// EventType satisfies the Event interface.
func (FreelancerReleased) EventType() string { return TypeFreelancerReleased }

// FreelancerClaimed captures a freelancer claim of released compensation.
type FreelancerClaimed struct {
	Freelancer types.PublicKey
	Amount     uint64
}

// EventType satisfies the Event interface.
func (FreelancerClaimed) EventType() string { return TypeFreelancerClaimed }

// Airdropped captures a completed multi-recipient airdrop.
type Airdropped struct {
	Recipients int
	Total      uint64
}

// EventType satisfies the Event interface.
func (Airdropped) EventType() string { return TypeAirdropped }
