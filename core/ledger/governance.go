package ledger

import (
	"veralux/core/events"
	"veralux/core/types"
	"veralux/native/common"
	"veralux/native/governance"
	"veralux/native/multisig"
	"veralux/native/params"
	"veralux/native/staking"
)

// SubmitProposal opens a proposal carrying a typed policy effect. The
// proposer must be an authority owner and the call must meet the multisig
// threshold. The returned id identifies the proposal for voting.
func (l *Ledger) SubmitProposal(proposer types.PublicKey, signers []*types.PublicKey, description string, effect governance.Effect) (uint64, error) {
	var id uint64
	err := l.run("submitProposal", func() error {
		policy, err := l.loadPolicy(true)
		if err != nil {
			return err
		}
		ms, err := l.requireAuthority(signers)
		if err != nil {
			return err
		}
		if len(ms.Owners) > 0 && !ms.IsOwner(proposer) {
			return multisig.ErrSignerNotOwner
		}
		if len(description) > params.MaxProposalDescription {
			return governance.ErrDescriptionTooLong
		}
		if len(effect.Values) > governance.MaxValues {
			return governance.ErrTooManyValues
		}
		if err := effect.Validate(&policy); err != nil {
			return err
		}

		now := l.now().Unix()
		proposal := governance.Proposal{
			ID:            policy.ProposalCount,
			Description:   description,
			Status:        governance.StatusPending,
			StartTime:     now,
			EndTime:       now + governance.VotingPeriod,
			ExecutionTime: now + governance.VotingPeriod + governance.NoticePeriod,
			Effect:        effect,
			RawValues:     effect.Values,
		}
		if policy.ProposalCount, err = common.CheckedAdd(policy.ProposalCount, 1); err != nil {
			return err
		}
		if err := l.state.SetProposal(proposal); err != nil {
			return err
		}
		if err := l.state.SetPolicy(policy); err != nil {
			return err
		}
		id = proposal.ID
		l.emitter.Emit(events.ProposalSubmitted{
			ID:          proposal.ID,
			Proposer:    proposer,
			Kind:        effect.Kind,
			Description: description,
			EndTime:     proposal.EndTime,
		})
		return nil
	})
	return id, err
}

// Vote casts or replaces a staker's vote. Only tiers one and up carry
// votes; a re-vote first subtracts the contribution recomputed at the
// current time.
func (l *Ledger) Vote(voter types.PublicKey, proposalID uint64, inFavor bool) error {
	return l.run("vote", func() error {
		policy, err := l.loadPolicy(true)
		if err != nil {
			return err
		}
		staker, exists, err := l.state.Staker(voter)
		if err != nil {
			return err
		}
		if !exists || staker.Tier == staking.TierIneligible || staker.Tier < 1 {
			return governance.ErrInsufficientTier
		}
		proposal, ok, err := l.state.Proposal(proposalID)
		if err != nil {
			return err
		}
		if !ok {
			return governance.ErrUnknownProposal
		}
		now := l.now().Unix()
		if proposal.Status != governance.StatusPending || now > proposal.EndTime {
			return governance.ErrProposalClosed
		}

		power, err := staking.VotingPower(&policy, &staker, now)
		if err != nil {
			return err
		}
		record, err := l.state.VoteRecord(proposalID, voter)
		if err != nil {
			return err
		}
		revote := record.Voted
		if revote {
			if record.InFavor {
				if proposal.VotesFor, err = common.CheckedSub(proposal.VotesFor, power); err != nil {
					return err
				}
			} else {
				if proposal.VotesAgainst, err = common.CheckedSub(proposal.VotesAgainst, power); err != nil {
					return err
				}
			}
		}
		if inFavor {
			if proposal.VotesFor, err = common.CheckedAdd(proposal.VotesFor, power); err != nil {
				return err
			}
		} else {
			if proposal.VotesAgainst, err = common.CheckedAdd(proposal.VotesAgainst, power); err != nil {
				return err
			}
		}

		record = governance.VoteRecord{
			Staker:     voter,
			ProposalID: proposalID,
			Voted:      true,
			InFavor:    inFavor,
		}
		if err := l.state.SetProposal(proposal); err != nil {
			return err
		}
		if err := l.state.SetVoteRecord(record); err != nil {
			return err
		}
		l.emitter.Emit(events.VoteCast{
			ProposalID: proposalID,
			Voter:      voter,
			InFavor:    inFavor,
			Power:      power,
			Revote:     revote,
		})
		return nil
	})
}

// ExecuteProposal finalizes a proposal after the voting and notice periods.
// Approved proposals apply their effect against the current policy; the
// decision is single-shot either way.
func (l *Ledger) ExecuteProposal(proposalID uint64) error {
	return l.run("executeProposal", func() error {
		policy, err := l.loadPolicy(true)
		if err != nil {
			return err
		}
		proposal, ok, err := l.state.Proposal(proposalID)
		if err != nil {
			return err
		}
		if !ok {
			return governance.ErrUnknownProposal
		}
		if proposal.Status != governance.StatusPending {
			return governance.ErrAlreadyExecuted
		}
		now := l.now().Unix()
		if now <= proposal.EndTime {
			return governance.ErrVotingNotEnded
		}
		if now < proposal.ExecutionTime {
			return governance.ErrNoticePeriodNotMet
		}

		status, err := proposal.Tally(policy.TotalVotingPower)
		if err != nil {
			return err
		}
		if status == governance.StatusApproved {
			if err := proposal.Effect.Apply(&policy); err != nil {
				return err
			}
			if err := l.state.SetPolicy(policy); err != nil {
				return err
			}
			l.emitter.Emit(events.PolicyChanged{Kind: proposal.Effect.Kind})
		}
		proposal.Status = status
		if err := l.state.SetProposal(proposal); err != nil {
			return err
		}
		l.emitter.Emit(events.ProposalExecuted{
			ProposalID: proposalID,
			Approved:   status == governance.StatusApproved,
		})
		return nil
	})
}
