package ledger

import (
	"errors"

	"veralux/core/types"
	"veralux/native/governance"
	"veralux/native/params"
	"veralux/native/staking"
	"veralux/native/treasury"
	"veralux/native/vesting"
)

// Read paths bypass the operation guard. They never mutate state, so a
// concurrent operation at worst makes them return the pre-operation view.

// QueryPolicy returns the current policy snapshot.
func (l *Ledger) QueryPolicy() (params.Policy, error) {
	policy, ok, err := l.state.Policy()
	if err != nil {
		return params.Policy{}, err
	}
	if !ok {
		return params.Policy{}, ErrNotInitialized
	}
	return policy, nil
}

// QueryPools returns the treasury pool balances.
func (l *Ledger) QueryPools() (treasury.Pools, error) {
	return l.state.Pools()
}

// QueryStaker returns a user's staking position. ok is false when the user
// has never staked.
func (l *Ledger) QueryStaker(user types.PublicKey) (staking.Staker, bool, error) {
	return l.state.Staker(user)
}

// QueryPendingRewards computes the rewards a staker could claim right now
// without mutating anything.
func (l *Ledger) QueryPendingRewards(user types.PublicKey) (uint64, error) {
	policy, err := l.QueryPolicy()
	if err != nil {
		return 0, err
	}
	staker, ok, err := l.state.Staker(user)
	if err != nil {
		return 0, err
	}
	if !ok || staker.Amount == 0 {
		return 0, nil
	}
	pools, err := l.state.Pools()
	if err != nil {
		return 0, err
	}
	return staking.PendingRewards(&policy, &staker, pools.Staking, l.now().Unix())
}

// QueryVotingPower computes a staker's current voting power.
func (l *Ledger) QueryVotingPower(user types.PublicKey) (uint64, error) {
	policy, err := l.QueryPolicy()
	if err != nil {
		return 0, err
	}
	staker, ok, err := l.state.Staker(user)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}
	return staking.VotingPower(&policy, &staker, l.now().Unix())
}

// QueryProposal returns a proposal by id. ok is false for unknown ids.
func (l *Ledger) QueryProposal(id uint64) (governance.Proposal, bool, error) {
	return l.state.Proposal(id)
}

// QueryPresaleClaimable returns the tokens a presale buyer could claim right
// now. A schedule that has not started reports zero.
func (l *Ledger) QueryPresaleClaimable(buyer types.PublicKey) (uint64, error) {
	policy, err := l.QueryPolicy()
	if err != nil {
		return 0, err
	}
	schedule, err := l.state.PresaleVesting(buyer)
	if err != nil {
		return 0, err
	}
	if schedule.Total == 0 {
		return 0, nil
	}
	claimable, err := schedule.Claimable(policy.LaunchTimestamp, l.now().Unix())
	if errors.Is(err, vesting.ErrNotStarted) {
		return 0, nil
	}
	return claimable, err
}
