package ledger

import (
	"veralux/core/events"
	"veralux/core/types"
	"veralux/native/vesting"
)

// UpdateTeamVesting grants or resets a team member's schedule. An immediate
// portion pays out at once from the team pool account; the remainder vests
// monthly after the cliff.
func (l *Ledger) UpdateTeamVesting(signers []*types.PublicKey, member types.PublicKey, total, immediate uint64) error {
	return l.run("updateTeamVesting", func() error {
		if _, err := l.loadPolicy(true); err != nil {
			return err
		}
		if _, err := l.requireAuthority(signers); err != nil {
			return err
		}
		schedule, _, err := l.state.TeamVesting(member)
		if err != nil {
			return err
		}
		paid, err := schedule.Grant(member, total, immediate, l.now().Unix())
		if err != nil {
			return err
		}
		if paid > 0 {
			if err := l.vault.Transfer(TreasuryAccount, member, paid); err != nil {
				return err
			}
		}
		if err := l.state.SetTeamVesting(member, schedule); err != nil {
			return err
		}
		l.emitter.Emit(events.TeamVestingUpdated{Member: member, Total: total, Immediate: paid})
		return nil
	})
}

// CancelTeamVesting freezes a team member's future unlocks.
func (l *Ledger) CancelTeamVesting(signers []*types.PublicKey, member types.PublicKey) error {
	return l.run("cancelTeamVesting", func() error {
		if _, err := l.loadPolicy(true); err != nil {
			return err
		}
		if _, err := l.requireAuthority(signers); err != nil {
			return err
		}
		schedule, ok, err := l.state.TeamVesting(member)
		if err != nil {
			return err
		}
		if !ok {
			return vesting.ErrUnknownMember
		}
		if err := schedule.Cancel(member); err != nil {
			return err
		}
		if err := l.state.SetTeamVesting(member, schedule); err != nil {
			return err
		}
		l.emitter.Emit(events.TeamVestingUpdated{Member: member, Total: schedule.Total, Canceled: true})
		return nil
	})
}

// ClaimTeamVesting pays out a team member's unlocked balance, capped per
// call. Nothing unlocked reports success with an informational event.
func (l *Ledger) ClaimTeamVesting(member types.PublicKey) error {
	return l.run("claimTeamVesting", func() error {
		if _, err := l.loadPolicy(true); err != nil {
			return err
		}
		schedule, ok, err := l.state.TeamVesting(member)
		if err != nil {
			return err
		}
		if !ok {
			return vesting.ErrNotInitialized
		}
		claimable, err := schedule.Claim(l.now().Unix())
		if err != nil {
			return err
		}
		if claimable == 0 {
			l.emitter.Emit(events.NothingToDo{User: member, Reason: "no claimable amount available"})
			return nil
		}
		if err := l.vault.Transfer(TreasuryAccount, member, claimable); err != nil {
			return err
		}
		if err := l.state.SetTeamVesting(member, schedule); err != nil {
			return err
		}
		l.emitter.Emit(events.TeamVestingClaimed{Member: member, Amount: claimable})
		return nil
	})
}

// UpdateFreelancerVesting grants or resets a freelancer's milestone
// schedule.
func (l *Ledger) UpdateFreelancerVesting(signers []*types.PublicKey, freelancer types.PublicKey, total uint64) error {
	return l.run("updateFreelancerVesting", func() error {
		if _, err := l.loadPolicy(true); err != nil {
			return err
		}
		if _, err := l.requireAuthority(signers); err != nil {
			return err
		}
		schedule, _, err := l.state.FreelancerVesting(freelancer)
		if err != nil {
			return err
		}
		schedule.Grant(freelancer, total, l.now().Unix())
		return l.state.SetFreelancerVesting(freelancer, schedule)
	})
}

// ReleaseFreelancerMilestone unlocks part of a freelancer's total for
// claiming.
func (l *Ledger) ReleaseFreelancerMilestone(signers []*types.PublicKey, freelancer types.PublicKey, amount uint64) error {
	return l.run("releaseFreelancerMilestone", func() error {
		if _, err := l.loadPolicy(true); err != nil {
			return err
		}
		if _, err := l.requireAuthority(signers); err != nil {
			return err
		}
		schedule, ok, err := l.state.FreelancerVesting(freelancer)
		if err != nil {
			return err
		}
		if !ok {
			return vesting.ErrNotInitialized
		}
		if err := schedule.Release(amount); err != nil {
			return err
		}
		if err := l.state.SetFreelancerVesting(freelancer, schedule); err != nil {
			return err
		}
		l.emitter.Emit(events.FreelancerReleased{Freelancer: freelancer, Amount: amount})
		return nil
	})
}

// ClaimFreelancerVesting pays out released milestone funds behind the claim
// cooldown and per-call cap.
func (l *Ledger) ClaimFreelancerVesting(freelancer types.PublicKey) error {
	return l.run("claimFreelancerVesting", func() error {
		if _, err := l.loadPolicy(true); err != nil {
			return err
		}
		schedule, ok, err := l.state.FreelancerVesting(freelancer)
		if err != nil {
			return err
		}
		if !ok {
			return vesting.ErrNotInitialized
		}
		claimable, err := schedule.Claim(l.now().Unix())
		if err != nil {
			return err
		}
		if claimable == 0 {
			l.emitter.Emit(events.NothingToDo{User: freelancer, Reason: "no claimable amount available"})
			return nil
		}
		if err := l.vault.Transfer(TreasuryAccount, freelancer, claimable); err != nil {
			return err
		}
		if err := l.state.SetFreelancerVesting(freelancer, schedule); err != nil {
			return err
		}
		l.emitter.Emit(events.FreelancerClaimed{Freelancer: freelancer, Amount: claimable})
		return nil
	})
}
