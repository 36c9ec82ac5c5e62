package events

import "veralux/core/types"

const (
	// TypeStaked is emitted when tokens are locked into the staking vault.
	TypeStaked = "stake.staked"
	// TypeUnstaked is emitted when a staker exits and their record is reset.
	TypeUnstaked = "stake.unstaked"
	// TypeRewardsClaimed is emitted when staking rewards are paid out.
	TypeRewardsClaimed = "stake.rewardsClaimed"
	// TypeVotingPowerChanged records adjustments to the global power total.
	TypeVotingPowerChanged = "stake.votingPowerChanged"
	// TypeLPStaked is emitted when LP tokens enter the incentive program.
	TypeLPStaked = "lp.staked"
	// TypeLPUnstaked is emitted when LP tokens leave the incentive program.
	TypeLPUnstaked = "lp.unstaked"
	// TypeLPRewardsClaimed is emitted when accrued LP rewards are paid out.
	TypeLPRewardsClaimed = "lp.rewardsClaimed"
	// TypeDailyRewardsProcessed marks a completed daily LP distribution.
	TypeDailyRewardsProcessed = "lp.dailyProcessed"
)

// Staked captures a stake deposit and the resulting tier.
type Staked struct {
	User   types.PublicKey
	Amount uint64
	Tier   uint8
}

// EventType satisfies the Event interface.
func (Staked) EventType() string { return TypeStaked }

// Unstaked captures a full exit from the staking program.
type Unstaked struct {
	User   types.PublicKey
	Amount uint64
}

// EventType satisfies the Event interface.
func (Unstaked) EventType() string { return TypeUnstaked }

// RewardsClaimed captures a staking reward payout.
type RewardsClaimed struct {
	User   types.PublicKey
	Amount uint64
}

// EventType satisfies the Event interface.
func (RewardsClaimed) EventType() string { return TypeRewardsClaimed }

// VotingPowerChanged records a change to the aggregate voting power.
type VotingPowerChanged struct {
	OldPower uint64
	NewPower uint64
}

// EventType satisfies the Event interface.
func (VotingPowerChanged) EventType() string { return TypeVotingPowerChanged }

// LPStaked captures an LP token deposit.
type LPStaked struct {
	User   types.PublicKey
	Amount uint64
}

// EventType satisfies the Event interface.
func (LPStaked) EventType() string { return TypeLPStaked }

// LPUnstaked captures an LP token withdrawal.
type LPUnstaked struct {
	User   types.PublicKey
	Amount uint64
}

// EventType satisfies the Event interface.
func (LPUnstaked) EventType() string { return TypeLPUnstaked }

// LPRewardsClaimed captures an LP incentive payout.
type LPRewardsClaimed struct {
	User   types.PublicKey
	Amount uint64
}

// EventType satisfies the Event interface.
func (LPRewardsClaimed) EventType() string { return TypeLPRewardsClaimed }

// DailyRewardsProcessed marks the completion of one day's LP distribution.
type DailyRewardsProcessed struct {
	Day         int64
	Distributed uint64
	Remainder   uint64
}

// EventType satisfies the Event interface.
func (DailyRewardsProcessed) EventType() string { return TypeDailyRewardsProcessed }
