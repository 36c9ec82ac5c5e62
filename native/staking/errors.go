package staking

import "errors"

var (
	// ErrNothingStaked is returned for operations on an empty stake record.
	ErrNothingStaked = errors.New("staking: nothing staked")
	// ErrStakeLocked is returned when a claim or unstake happens before the
	// tier's lock duration has elapsed.
	ErrStakeLocked = errors.New("staking: stake still locked")
	// ErrInvalidTier is returned for a tier value outside the defined set.
	ErrInvalidTier = errors.New("staking: invalid tier")
	// ErrActionCooldown is returned when an LP action repeats within the
	// 7-day cooldown.
	ErrActionCooldown = errors.New("staking: lp action cooldown active")
	// ErrBatchTooLarge is returned when a distribution batch exceeds the cap.
	ErrBatchTooLarge = errors.New("staking: batch size too large")
	// ErrDayAlreadyProcessed is returned when a distribution day that has
	// already completed is processed again.
	ErrDayAlreadyProcessed = errors.New("staking: day already processed")
)
