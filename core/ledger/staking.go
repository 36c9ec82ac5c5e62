package ledger

import (
	"veralux/core/events"
	"veralux/core/types"
	"veralux/native/common"
	"veralux/native/params"
	"veralux/native/staking"
	"veralux/native/treasury"
)

// updateVotingPower replaces one staker's contribution to the global total.
func updateVotingPower(policy *params.Policy, oldPower, newPower uint64) (uint64, error) {
	total, err := common.CheckedSub(policy.TotalVotingPower, oldPower)
	if err != nil {
		return 0, err
	}
	return common.CheckedAdd(total, newPower)
}

// Stake locks tokens into the staking vault, creating or topping up the
// position, reclassifying its tier and refreshing the global voting power.
func (l *Ledger) Stake(user types.PublicKey, amount uint64) error {
	return l.run("stake", func() error {
		policy, err := l.loadPolicy(true)
		if err != nil {
			return err
		}
		now := l.now().Unix()
		staker, exists, err := l.state.Staker(user)
		if err != nil {
			return err
		}

		var oldPower uint64
		if exists && staker.StartTime != 0 {
			if oldPower, err = staking.VotingPower(&policy, &staker, now); err != nil {
				return err
			}
			if staker.Amount, err = common.CheckedAdd(staker.Amount, amount); err != nil {
				return err
			}
		} else {
			staker = staking.Staker{Amount: amount, StartTime: now, LastClaim: now}
		}
		staker.Tier = staking.Tier(&policy, staker.Amount, now-staker.StartTime)
		newPower, err := staking.VotingPower(&policy, &staker, now)
		if err != nil {
			return err
		}
		oldTotal := policy.TotalVotingPower
		if policy.TotalVotingPower, err = updateVotingPower(&policy, oldPower, newPower); err != nil {
			return err
		}

		if err := l.vault.Transfer(user, StakingVaultAccount, amount); err != nil {
			return err
		}
		if err := l.state.SetStaker(user, staker); err != nil {
			return err
		}
		if err := l.state.SetPolicy(policy); err != nil {
			return err
		}

		l.emitter.Emit(events.VotingPowerChanged{OldPower: oldTotal, NewPower: policy.TotalVotingPower})
		l.emitter.Emit(events.Staked{User: user, Amount: amount, Tier: staker.Tier})
		return nil
	})
}

// checkLock enforces the tier's lock duration. Ineligible positions are
// still inside the entry lock.
func checkLock(staker *staking.Staker, now int64) error {
	if staker.Tier == staking.TierIneligible {
		return staking.ErrStakeLocked
	}
	if now-staker.StartTime < staking.TierDurations[staker.Tier] {
		return staking.ErrStakeLocked
	}
	return nil
}

// ClaimRewards pays out accrued staking rewards from the treasury staking
// pool. A fully accrued-but-empty position reports success with an
// informational event.
func (l *Ledger) ClaimRewards(user types.PublicKey) error {
	return l.run("claimRewards", func() error {
		policy, err := l.loadPolicy(true)
		if err != nil {
			return err
		}
		now := l.now().Unix()
		staker, exists, err := l.state.Staker(user)
		if err != nil {
			return err
		}
		if !exists || staker.Amount == 0 {
			return staking.ErrNothingStaked
		}
		if err := checkLock(&staker, now); err != nil {
			return err
		}

		pools, err := l.state.Pools()
		if err != nil {
			return err
		}
		rewards, err := staking.PendingRewards(&policy, &staker, pools.Staking, now)
		if err != nil {
			return err
		}
		if rewards == 0 {
			l.emitter.Emit(events.NothingToDo{User: user, Reason: "no rewards available"})
			return nil
		}
		if err := pools.Debit(treasury.PoolStaking, rewards); err != nil {
			return err
		}
		if err := l.vault.Transfer(TreasuryAccount, user, rewards); err != nil {
			return err
		}

		staker.LastClaim = now
		if err := l.state.SetPools(pools); err != nil {
			return err
		}
		if err := l.state.SetStaker(user, staker); err != nil {
			return err
		}
		l.emitter.Emit(events.RewardsClaimed{User: user, Amount: rewards})
		return nil
	})
}

// Unstake exits the position entirely: pending rewards are paid first, the
// record is zeroed, the position's voting power leaves the global total and
// the principal returns to the user.
func (l *Ledger) Unstake(user types.PublicKey) error {
	return l.run("unstake", func() error {
		policy, err := l.loadPolicy(true)
		if err != nil {
			return err
		}
		now := l.now().Unix()
		staker, exists, err := l.state.Staker(user)
		if err != nil {
			return err
		}
		if !exists || staker.Amount == 0 {
			return staking.ErrNothingStaked
		}
		if err := checkLock(&staker, now); err != nil {
			return err
		}

		pools, err := l.state.Pools()
		if err != nil {
			return err
		}
		rewards, err := staking.PendingRewards(&policy, &staker, pools.Staking, now)
		if err != nil {
			return err
		}
		if rewards > 0 {
			if err := pools.Debit(treasury.PoolStaking, rewards); err != nil {
				return err
			}
			if err := l.vault.Transfer(TreasuryAccount, user, rewards); err != nil {
				return err
			}
			staker.LastClaim = now
			l.emitter.Emit(events.RewardsClaimed{User: user, Amount: rewards})
		} else {
			l.emitter.Emit(events.NothingToDo{User: user, Reason: "no pending rewards"})
		}

		power, err := staking.VotingPower(&policy, &staker, now)
		if err != nil {
			return err
		}
		amount := staker.Amount
		staker = staking.Staker{}
		oldTotal := policy.TotalVotingPower
		if policy.TotalVotingPower, err = common.CheckedSub(oldTotal, power); err != nil {
			return err
		}

		if err := l.vault.Transfer(StakingVaultAccount, user, amount); err != nil {
			return err
		}
		if err := l.state.SetPools(pools); err != nil {
			return err
		}
		if err := l.state.SetStaker(user, staker); err != nil {
			return err
		}
		if err := l.state.SetPolicy(policy); err != nil {
			return err
		}

		l.emitter.Emit(events.VotingPowerChanged{OldPower: oldTotal, NewPower: policy.TotalVotingPower})
		l.emitter.Emit(events.Unstaked{User: user, Amount: amount})
		return nil
	})
}
