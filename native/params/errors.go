package params

import "errors"

// Governance-adjustable bounds.
const (
	// MinTaxRateBps and MaxTaxRateBps bound the transfer tax rate.
	MinTaxRateBps uint16 = 100
	MaxTaxRateBps uint16 = 1000
	// MinTier0Stake is the smallest permitted entry tier.
	MinTier0Stake uint64 = 20_000 * Unit
	// MaxTier3Stake caps the top tier at a tenth of supply.
	MaxTier3Stake uint64 = TotalSupply / 10
	// MaxAllocationBps caps any single tax allocation.
	MaxAllocationBps uint16 = 5000
	// MinTxnLimit and MaxTxnLimit bound the adjustable transaction limits and
	// the progressive tax threshold.
	MinTxnLimit uint64 = TotalSupply / 1000
	MaxTxnLimit uint64 = TotalSupply / 50
	// MinWeeklyReward and MaxWeeklyReward bound per-tier weekly rewards.
	MinWeeklyReward uint64 = 100 * Unit
	MaxWeeklyReward uint64 = 1_000_000 * Unit
	// MinReductionThreshold and MaxReductionThreshold bound the volume
	// discount thresholds; factors are per-mille multipliers.
	MinReductionThreshold uint64 = 100
	MaxReductionThreshold uint64 = 900
	MinReductionFactor    uint64 = 100
	MaxReductionFactor    uint64 = 2000
	// LaunchShiftBack and LaunchShiftForward bound launch rescheduling.
	LaunchShiftBack    = 30 * 24 * 3600
	LaunchShiftForward = 365 * 24 * 3600
)

var (
	ErrInvalidTaxRate      = errors.New("params: tax rate out of range")
	ErrInvalidAllocations  = errors.New("params: tax allocations must sum to 10000 bps")
	ErrInvalidStakingTiers = errors.New("params: staking tiers must be strictly increasing")
	ErrInvalidRewards      = errors.New("params: staking rewards out of range")
	ErrInvalidReduction    = errors.New("params: reduction schedule out of range")
	ErrInvalidLimit        = errors.New("params: transaction limit out of range")
	ErrInvalidLaunchTime   = errors.New("params: launch timestamp out of range")
	ErrTooManyDexPrograms  = errors.New("params: too many dex programs")
	ErrWhitelistFull       = errors.New("params: contract whitelist full")
	ErrTooManyDestinations = errors.New("params: too many allowed destinations")
	ErrPauseReasonTooLong  = errors.New("params: pause reason too long")
)
