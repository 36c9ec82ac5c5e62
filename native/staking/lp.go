package staking

import (
	"veralux/native/common"
)

// MaxBatchSize caps one ProcessDailyRewards batch.
const MaxBatchSize = 50

// LPActionCooldown is the minimum spacing between LP stake, unstake and
// claim actions, and the age a position needs before it earns a day's
// rewards.
const LPActionCooldown int64 = 7 * daySeconds

// LPStaker is one account's LP token position. The record is deleted when
// the amount reaches zero on unstake.
type LPStaker struct {
	Amount           uint64 `json:"amount"`
	LastActionTime   int64  `json:"lastActionTime"`
	UnclaimedRewards uint64 `json:"unclaimedRewards"`
}

// EligibleForDay reports whether the position has been untouched long enough
// to earn rewards for the day starting at dayStart.
func (s *LPStaker) EligibleForDay(dayStart int64) bool {
	return s.Amount > 0 && s.LastActionTime < dayStart-LPActionCooldown
}

// Distribution phases. A day is scanned in full to total the eligible stake
// before any share is credited, so every share uses the same denominator.
const (
	PhaseAccumulate uint8 = iota
	PhaseDistribute
)

// DayState is the resumable cursor of one day's LP reward distribution.
type DayState struct {
	Day           int64  `json:"day"`
	Phase         uint8  `json:"phase"`
	Cursor        uint64 `json:"cursor"`
	DailyReward   uint64 `json:"dailyReward"`
	EligibleStake uint64 `json:"eligibleStake"`
	Distributed   uint64 `json:"distributed"`
	Active        bool   `json:"active"`
}

// Begin opens a distribution for the day starting at dayStart with the given
// reward budget.
func (d *DayState) Begin(dayStart int64, reward uint64) {
	*d = DayState{Day: dayStart, Phase: PhaseAccumulate, DailyReward: reward, Active: true}
}

// Share computes one eligible position's floor-divided cut of the day's
// reward.
func (d *DayState) Share(amount uint64) (uint64, error) {
	if d.EligibleStake == 0 {
		return 0, nil
	}
	return common.MulDiv(amount, d.DailyReward, d.EligibleStake)
}

// DayStart truncates a unix timestamp to its UTC day boundary.
func DayStart(now int64) int64 {
	return now / daySeconds * daySeconds
}
