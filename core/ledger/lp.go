package ledger

import (
	"veralux/core/events"
	"veralux/core/types"
	"veralux/native/common"
	"veralux/native/staking"
	"veralux/native/treasury"
)

// StakeLP deposits LP tokens into the incentive program. A fresh position
// starts its action clock now; top-ups keep the original clock.
func (l *Ledger) StakeLP(user types.PublicKey, amount uint64) error {
	return l.run("stakeLP", func() error {
		if _, err := l.loadPolicy(true); err != nil {
			return err
		}
		now := l.now().Unix()
		position, _, err := l.state.LPStaker(user)
		if err != nil {
			return err
		}
		if position.Amount == 0 {
			position.LastActionTime = now
		}
		if position.Amount, err = common.CheckedAdd(position.Amount, amount); err != nil {
			return err
		}
		if err := l.vault.Transfer(user, LPVaultAccount, amount); err != nil {
			return err
		}
		if err := l.state.SetLPStaker(user, position); err != nil {
			return err
		}
		l.emitter.Emit(events.LPStaked{User: user, Amount: amount})
		return nil
	})
}

// UnstakeLP withdraws LP tokens after the action cooldown. Unclaimed
// rewards survive a full withdrawal; the record is deleted once both reach
// zero.
func (l *Ledger) UnstakeLP(user types.PublicKey, amount uint64) error {
	return l.run("unstakeLP", func() error {
		if _, err := l.loadPolicy(true); err != nil {
			return err
		}
		now := l.now().Unix()
		position, exists, err := l.state.LPStaker(user)
		if err != nil {
			return err
		}
		if !exists || position.Amount < amount {
			return staking.ErrNothingStaked
		}
		if now-position.LastActionTime < staking.LPActionCooldown {
			return staking.ErrActionCooldown
		}
		position.Amount -= amount
		position.LastActionTime = now

		if err := l.vault.Transfer(LPVaultAccount, user, amount); err != nil {
			return err
		}
		if err := l.state.SetLPStaker(user, position); err != nil {
			return err
		}
		l.emitter.Emit(events.LPUnstaked{User: user, Amount: amount})
		return nil
	})
}

// ClaimLPRewards pays out accrued daily distributions from the reward
// holding account. Nothing accrued reports success with an informational
// event.
func (l *Ledger) ClaimLPRewards(user types.PublicKey) error {
	return l.run("claimLPRewards", func() error {
		if _, err := l.loadPolicy(true); err != nil {
			return err
		}
		now := l.now().Unix()
		position, exists, err := l.state.LPStaker(user)
		if err != nil {
			return err
		}
		if !exists {
			return staking.ErrNothingStaked
		}
		if now-position.LastActionTime < staking.LPActionCooldown {
			return staking.ErrActionCooldown
		}
		rewards := position.UnclaimedRewards
		if rewards == 0 {
			l.emitter.Emit(events.NothingToDo{User: user, Reason: "no unclaimed rewards available"})
			return nil
		}
		position.UnclaimedRewards = 0
		if err := l.vault.Transfer(RewardHoldingAccount, user, rewards); err != nil {
			return err
		}
		if err := l.state.SetLPStaker(user, position); err != nil {
			return err
		}
		l.emitter.Emit(events.LPRewardsClaimed{User: user, Amount: rewards})
		return nil
	})
}

// ProcessDailyRewards advances the day's LP distribution by one batch. A day
// runs in two passes over the position index: the first totals the eligible
// stake so every share uses the same denominator, the second credits shares.
// The day's budget moves to the holding account up front; whatever flooring
// leaves undistributed is swept back when the day completes.
func (l *Ledger) ProcessDailyRewards(batchSize int) error {
	return l.run("processDailyRewards", func() error {
		if _, err := l.loadPolicy(true); err != nil {
			return err
		}
		if batchSize <= 0 || batchSize > staking.MaxBatchSize {
			return staking.ErrBatchTooLarge
		}
		now := l.now().Unix()
		day := staking.DayStart(now)

		ds, err := l.state.DayState()
		if err != nil {
			return err
		}
		if !ds.Active {
			if ds.Day >= day {
				l.emitter.Emit(events.NothingToDo{Reason: "rewards already processed for today"})
				return nil
			}
			pools, err := l.state.Pools()
			if err != nil {
				return err
			}
			if pools.LiquidityIncentive == 0 {
				ds = staking.DayState{Day: day}
				if err := l.state.SetDayState(ds); err != nil {
					return err
				}
				l.emitter.Emit(events.NothingToDo{Reason: "no liquidity incentives available"})
				return nil
			}
			reward := pools.LiquidityIncentive
			if err := pools.Debit(treasury.PoolLiquidityIncentive, reward); err != nil {
				return err
			}
			if err := l.vault.Transfer(TreasuryAccount, RewardHoldingAccount, reward); err != nil {
				return err
			}
			if err := l.state.SetPools(pools); err != nil {
				return err
			}
			ds.Begin(day, reward)
		}

		index, err := l.state.LPStakerIndex()
		if err != nil {
			return err
		}
		end := int(ds.Cursor) + batchSize
		if end > len(index) {
			end = len(index)
		}

		switch ds.Phase {
		case staking.PhaseAccumulate:
			for _, user := range index[ds.Cursor:end] {
				position, exists, err := l.state.LPStaker(user)
				if err != nil {
					return err
				}
				if exists && position.EligibleForDay(ds.Day) {
					if ds.EligibleStake, err = common.CheckedAdd(ds.EligibleStake, position.Amount); err != nil {
						return err
					}
				}
			}
			ds.Cursor = uint64(end)
			if end == len(index) {
				if ds.EligibleStake == 0 {
					if err := l.refundDay(&ds, ds.DailyReward); err != nil {
						return err
					}
					if err := l.state.SetDayState(ds); err != nil {
						return err
					}
					l.emitter.Emit(events.NothingToDo{Reason: "no eligible stakers"})
					return nil
				}
				ds.Phase = staking.PhaseDistribute
				ds.Cursor = 0
			}
			return l.state.SetDayState(ds)

		case staking.PhaseDistribute:
			for _, user := range index[ds.Cursor:end] {
				position, exists, err := l.state.LPStaker(user)
				if err != nil {
					return err
				}
				if !exists || !position.EligibleForDay(ds.Day) {
					continue
				}
				share, err := ds.Share(position.Amount)
				if err != nil {
					return err
				}
				// A position topped up between the passes carries more stake
				// than the accumulated denominator accounts for; shares never
				// exceed what is left of the escrowed budget.
				if remaining := ds.DailyReward - ds.Distributed; share > remaining {
					share = remaining
				}
				if position.UnclaimedRewards, err = common.CheckedAdd(position.UnclaimedRewards, share); err != nil {
					return err
				}
				if err := l.state.SetLPStaker(user, position); err != nil {
					return err
				}
				ds.Distributed += share
			}
			ds.Cursor = uint64(end)
			if end == len(index) {
				remainder := ds.DailyReward - ds.Distributed
				if err := l.refundDay(&ds, remainder); err != nil {
					return err
				}
				if err := l.state.SetDayState(ds); err != nil {
					return err
				}
				l.emitter.Emit(events.DailyRewardsProcessed{
					Day:         ds.Day,
					Distributed: ds.Distributed,
					Remainder:   remainder,
				})
				return nil
			}
			return l.state.SetDayState(ds)
		}
		return nil
	})
}

// refundDay closes a distribution day, returning any unspent budget from
// the holding account to the liquidity incentive pool.
func (l *Ledger) refundDay(ds *staking.DayState, remainder uint64) error {
	if remainder > 0 {
		pools, err := l.state.Pools()
		if err != nil {
			return err
		}
		if err := pools.Credit(treasury.PoolLiquidityIncentive, remainder); err != nil {
			return err
		}
		if err := l.vault.Transfer(RewardHoldingAccount, TreasuryAccount, remainder); err != nil {
			return err
		}
		if err := l.state.SetPools(pools); err != nil {
			return err
		}
	}
	ds.Active = false
	ds.Phase = staking.PhaseAccumulate
	ds.Cursor = 0
	return nil
}
