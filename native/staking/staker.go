// Package staking implements token staking with time-locked tiers, staking
// rewards drawn from the treasury staking pool, tier-weighted voting power,
// and the LP incentive program with its daily batch distributor.
package staking

import (
	"veralux/native/common"
	"veralux/native/params"
)

// TierIneligible marks a staker below the entry tier or not yet locked long
// enough to qualify.
const TierIneligible uint8 = 255

const daySeconds = 86_400

// TierDurations are the minimum lock durations per tier in seconds.
var TierDurations = [4]int64{
	7 * daySeconds,
	14 * daySeconds,
	30 * daySeconds,
	30 * daySeconds,
}

// tierVotes is the base voting power per tier. Tier 0 stakes but does not
// vote.
var tierVotes = [4]uint64{0, 1, 4, 20}

// Staker is one account's staking position. Times are unix seconds.
type Staker struct {
	Tier      uint8  `json:"tier"`
	Amount    uint64 `json:"amount"`
	StartTime int64  `json:"startTime"`
	LastClaim int64  `json:"lastClaim"`
}

// Tier classifies a position by amount and lock time: ineligible below the
// entry minimum or under seven days, otherwise the highest tier whose amount
// and duration requirements are both met.
func Tier(policy *params.Policy, amount uint64, timeStaked int64) uint8 {
	if amount < params.MinTier0Stake || timeStaked < TierDurations[0] {
		return TierIneligible
	}
	for i := 3; i >= 0; i-- {
		if amount >= policy.StakingTiers[i] && timeStaked >= TierDurations[i] {
			return uint8(i)
		}
	}
	return 0
}

// HighestEligibleTier classifies by amount alone, ignoring duration. It caps
// voting power so a position that shrank below its original tier cannot keep
// the old tier's votes.
func HighestEligibleTier(policy *params.Policy, amount uint64) uint8 {
	for i := 3; i >= 0; i-- {
		if amount >= policy.StakingTiers[i] {
			return uint8(i)
		}
	}
	return TierIneligible
}

// timeMultiplier scales voting power by lock duration, per-mille.
func timeMultiplier(timeStaked int64) uint64 {
	switch {
	case timeStaked >= 90*daySeconds:
		return 1995
	case timeStaked >= 60*daySeconds:
		return 1500
	default:
		return 1000
	}
}

func scaledVotes(base, multiplier uint64) uint64 {
	return (base*multiplier + 999) / 1000
}

// VotingPower computes a staker's current voting power: the tier's base
// votes scaled up by lock duration, capped by the tier the current amount
// alone would earn.
func VotingPower(policy *params.Policy, staker *Staker, now int64) (uint64, error) {
	if staker.Tier == TierIneligible {
		return 0, nil
	}
	if staker.Tier > 3 {
		return 0, ErrInvalidTier
	}
	multiplier := timeMultiplier(now - staker.StartTime)
	power := scaledVotes(tierVotes[staker.Tier], multiplier)

	highest := HighestEligibleTier(policy, staker.Amount)
	if highest == TierIneligible {
		return 0, nil
	}
	cap := scaledVotes(tierVotes[highest], multiplier)
	if power > cap {
		power = cap
	}
	return power, nil
}

// PendingRewards computes the unclaimed staking reward. The weekly tier
// reward accrues daily, scaled down as the treasury staking pool drains
// relative to its genesis share of the reserve.
func PendingRewards(policy *params.Policy, staker *Staker, stakingPool uint64, now int64) (uint64, error) {
	if staker.Amount == 0 || staker.Tier == TierIneligible {
		return 0, nil
	}
	if staker.Tier > 3 {
		return 0, ErrInvalidTier
	}
	days := uint64((now - staker.LastClaim) / daySeconds)
	if days == 0 {
		return 0, nil
	}
	// Pool fraction is per-mille of the staking pool's genesis funding.
	genesisPool := params.TreasuryReserve / 100 * params.PoolPctStaking
	poolFraction, err := common.MulDiv(stakingPool, 1000, genesisPool)
	if err != nil {
		return 0, err
	}
	factor := policy.ReductionFactors[3]
	for i := 0; i < 3; i++ {
		if poolFraction < policy.ReductionThresholds[i] {
			factor = policy.ReductionFactors[i]
			break
		}
	}
	daily := policy.StakingRewards[staker.Tier] / 7
	scaled, err := common.CheckedMul(factor, days)
	if err != nil {
		return 0, err
	}
	return common.MulDiv(daily, scaled, 1000)
}
