package ledger

import (
	"errors"

	"veralux/core/events"
	"veralux/core/types"
	"veralux/native/common"
	"veralux/native/multisig"
	"veralux/native/params"
	"veralux/native/treasury"
)

var (
	// ErrAlreadyPaused is returned when pausing a paused ledger.
	ErrAlreadyPaused = errors.New("ledger: already paused")
	// ErrNotPaused is returned when resuming a running ledger.
	ErrNotPaused = errors.New("ledger: not paused")
	// ErrTooManyRecipients is returned when a batch payout exceeds its cap.
	ErrTooManyRecipients = errors.New("ledger: too many recipients")
	// ErrContractNotWhitelisted is returned when a queued removal targets a
	// contract that is not on the whitelist.
	ErrContractNotWhitelisted = errors.New("ledger: contract not whitelisted")
)

// Payout names one recipient of a batch distribution.
type Payout struct {
	Recipient types.PublicKey
	Amount    uint64
}

// InitiatePause queues an emergency pause behind the admin time lock.
func (l *Ledger) InitiatePause(signers []*types.PublicKey, reason string) error {
	return l.run("initiatePause", func() error {
		policy, err := l.loadPolicy(false)
		if err != nil {
			return err
		}
		if policy.Paused {
			return ErrAlreadyPaused
		}
		if len(reason) > params.MaxPauseReasonLen {
			return params.ErrPauseReasonTooLong
		}
		if _, err := l.requireAuthority(signers); err != nil {
			return err
		}
		pending, err := l.state.PendingPause()
		if err != nil {
			return err
		}
		pending.Initiate(params.PauseRequest{Pause: true, Reason: reason}, l.now())
		if err := l.state.SetPendingPause(pending); err != nil {
			return err
		}
		l.emitter.Emit(events.PauseInitiated{Pause: true, Reason: reason})
		return nil
	})
}

// ConfirmPause activates a queued pause once its time lock has elapsed.
func (l *Ledger) ConfirmPause() error {
	return l.run("confirmPause", func() error {
		policy, err := l.loadPolicy(false)
		if err != nil {
			return err
		}
		if policy.Paused {
			return ErrAlreadyPaused
		}
		pending, err := l.state.PendingPause()
		if err != nil {
			return err
		}
		request, err := pending.Confirm(common.DelayAdmin, l.now())
		if err != nil {
			return err
		}
		if !request.Pause {
			return common.ErrNoPendingAction
		}
		policy.Paused = true
		policy.PauseReason = request.Reason
		if err := l.state.SetPendingPause(pending); err != nil {
			return err
		}
		if err := l.state.SetPolicy(policy); err != nil {
			return err
		}
		l.emitter.Emit(events.Paused{Reason: request.Reason})
		return nil
	})
}

// InitiateResume queues the lifting of a pause behind the admin time lock.
func (l *Ledger) InitiateResume(signers []*types.PublicKey) error {
	return l.run("initiateResume", func() error {
		policy, err := l.loadPolicy(false)
		if err != nil {
			return err
		}
		if !policy.Paused {
			return ErrNotPaused
		}
		if _, err := l.requireAuthority(signers); err != nil {
			return err
		}
		pending, err := l.state.PendingPause()
		if err != nil {
			return err
		}
		pending.Initiate(params.PauseRequest{Pause: false}, l.now())
		if err := l.state.SetPendingPause(pending); err != nil {
			return err
		}
		l.emitter.Emit(events.PauseInitiated{Pause: false})
		return nil
	})
}

// ConfirmResume lifts the pause once the queued resume's lock has elapsed.
func (l *Ledger) ConfirmResume() error {
	return l.run("confirmResume", func() error {
		policy, err := l.loadPolicy(false)
		if err != nil {
			return err
		}
		if !policy.Paused {
			return ErrNotPaused
		}
		pending, err := l.state.PendingPause()
		if err != nil {
			return err
		}
		request, err := pending.Confirm(common.DelayAdmin, l.now())
		if err != nil {
			return err
		}
		if request.Pause {
			return common.ErrNoPendingAction
		}
		policy.Paused = false
		policy.PauseReason = ""
		if err := l.state.SetPendingPause(pending); err != nil {
			return err
		}
		if err := l.state.SetPolicy(policy); err != nil {
			return err
		}
		l.emitter.Emit(events.Resumed{})
		return nil
	})
}

// InitiateSetMultisig queues a new authority owner set behind the admin
// time lock. The new configuration is validated up front.
func (l *Ledger) InitiateSetMultisig(signers []*types.PublicKey, next multisig.Multisig) error {
	return l.run("initiateSetMultisig", func() error {
		if _, err := l.loadPolicy(true); err != nil {
			return err
		}
		if _, err := l.requireAuthority(signers); err != nil {
			return err
		}
		if err := next.Validate(); err != nil {
			return err
		}
		pending, err := l.state.PendingMultisig()
		if err != nil {
			return err
		}
		pending.Initiate(next, l.now())
		if err := l.state.SetPendingMultisig(pending); err != nil {
			return err
		}
		l.emitter.Emit(events.MultisigRotationInitiated{Owners: next.Owners, Threshold: next.Threshold})
		return nil
	})
}

// ConfirmSetMultisig installs the queued owner set after its time lock.
func (l *Ledger) ConfirmSetMultisig() error {
	return l.run("confirmSetMultisig", func() error {
		if _, err := l.loadPolicy(true); err != nil {
			return err
		}
		pending, err := l.state.PendingMultisig()
		if err != nil {
			return err
		}
		next, err := pending.Confirm(common.DelayAdmin, l.now())
		if err != nil {
			return err
		}
		if err := l.state.SetPendingMultisig(pending); err != nil {
			return err
		}
		if err := l.state.SetMultisig(next); err != nil {
			return err
		}
		l.emitter.Emit(events.MultisigRotated{Owners: next.Owners, Threshold: next.Threshold})
		return nil
	})
}

// queueWhitelistChange shares the add/remove initiation path.
func (l *Ledger) queueWhitelistChange(op string, signers []*types.PublicKey, contract types.PublicKey, add bool) error {
	return l.run(op, func() error {
		if _, err := l.loadPolicy(true); err != nil {
			return err
		}
		if _, err := l.requireAuthority(signers); err != nil {
			return err
		}
		pending, err := l.state.PendingWhitelist()
		if err != nil {
			return err
		}
		pending.Initiate(params.WhitelistChange{Add: add, Contract: contract}, l.now())
		if err := l.state.SetPendingWhitelist(pending); err != nil {
			return err
		}
		l.emitter.Emit(events.WhitelistQueued{Add: add, Contract: contract})
		return nil
	})
}

// AddWhitelistedContract queues a contract for the tax discount whitelist
// behind the extended time lock.
func (l *Ledger) AddWhitelistedContract(signers []*types.PublicKey, contract types.PublicKey) error {
	return l.queueWhitelistChange("addWhitelistedContract", signers, contract, true)
}

// RemoveWhitelistedContract queues a whitelist removal behind the extended
// time lock.
func (l *Ledger) RemoveWhitelistedContract(signers []*types.PublicKey, contract types.PublicKey) error {
	return l.queueWhitelistChange("removeWhitelistedContract", signers, contract, false)
}

// ConfirmWhitelistChange applies the queued whitelist change after its time
// lock. Additions record the contract key as the approved version hash.
func (l *Ledger) ConfirmWhitelistChange() error {
	return l.run("confirmWhitelistChange", func() error {
		policy, err := l.loadPolicy(true)
		if err != nil {
			return err
		}
		pending, err := l.state.PendingWhitelist()
		if err != nil {
			return err
		}
		change, err := pending.Confirm(common.DelayWhitelist, l.now())
		if err != nil {
			return err
		}
		if change.Add {
			if len(policy.WhitelistedContracts) >= params.MaxWhitelistedContracts {
				return params.ErrWhitelistFull
			}
			var hash [32]byte
			copy(hash[:], change.Contract[:])
			policy.WhitelistedContracts = append(policy.WhitelistedContracts, params.WhitelistedContract{
				Contract:    change.Contract,
				VersionHash: hash,
			})
		} else {
			removed := false
			for i, entry := range policy.WhitelistedContracts {
				if entry.Contract == change.Contract {
					policy.WhitelistedContracts = append(policy.WhitelistedContracts[:i], policy.WhitelistedContracts[i+1:]...)
					removed = true
					break
				}
			}
			if !removed {
				return ErrContractNotWhitelisted
			}
		}
		if err := l.state.SetPendingWhitelist(pending); err != nil {
			return err
		}
		return l.state.SetPolicy(policy)
	})
}

// InitiateWithdrawal queues a governance-reserve withdrawal. Amounts above
// the policy threshold carry a slot delay before completion.
func (l *Ledger) InitiateWithdrawal(signers []*types.PublicKey, recipient types.PublicKey, amount uint64) error {
	return l.run("initiateWithdrawal", func() error {
		if _, err := l.loadPolicy(true); err != nil {
			return err
		}
		if _, err := l.requireAuthority(signers); err != nil {
			return err
		}
		pools, err := l.state.Pools()
		if err != nil {
			return err
		}
		if amount > pools.GovernanceReserve {
			return treasury.ErrInsufficientFunds
		}
		withdrawal, err := l.state.PendingWithdrawal()
		if err != nil {
			return err
		}
		threshold := params.TotalSupply / 200
		if err := withdrawal.Initiate(recipient, amount, l.slot(), threshold, params.WithdrawalDelaySlots); err != nil {
			return err
		}
		if err := l.state.SetPendingWithdrawal(withdrawal); err != nil {
			return err
		}
		l.emitter.Emit(events.WithdrawalInitiated{
			Recipient:  recipient,
			Amount:     amount,
			DelaySlots: withdrawal.DelaySlots,
		})
		return nil
	})
}

// CompleteWithdrawal settles the queued withdrawal once its slot delay has
// elapsed, debiting the governance reserve.
func (l *Ledger) CompleteWithdrawal(signers []*types.PublicKey) error {
	return l.run("completeWithdrawal", func() error {
		if _, err := l.loadPolicy(true); err != nil {
			return err
		}
		if _, err := l.requireAuthority(signers); err != nil {
			return err
		}
		withdrawal, err := l.state.PendingWithdrawal()
		if err != nil {
			return err
		}
		recipient, amount, err := withdrawal.Complete(l.slot())
		if err != nil {
			return err
		}
		pools, err := l.state.Pools()
		if err != nil {
			return err
		}
		if err := pools.Debit(treasury.PoolGovernanceReserve, amount); err != nil {
			return err
		}
		if err := l.vault.Transfer(TreasuryAccount, recipient, amount); err != nil {
			return err
		}
		if err := l.state.SetPendingWithdrawal(withdrawal); err != nil {
			return err
		}
		if err := l.state.SetPools(pools); err != nil {
			return err
		}
		l.emitter.Emit(events.WithdrawalCompleted{Recipient: recipient, Amount: amount})
		return nil
	})
}

// Airdrop pays a batch of recipients from the airdrop pool.
func (l *Ledger) Airdrop(signers []*types.PublicKey, winners []Payout) error {
	return l.run("airdrop", func() error {
		if _, err := l.loadPolicy(true); err != nil {
			return err
		}
		if len(winners) > params.MaxAirdropRecipients {
			return ErrTooManyRecipients
		}
		if _, err := l.requireAuthority(signers); err != nil {
			return err
		}
		var total uint64
		var err error
		for _, winner := range winners {
			if total, err = common.CheckedAdd(total, winner.Amount); err != nil {
				return err
			}
		}
		pools, err := l.state.Pools()
		if err != nil {
			return err
		}
		if err := pools.Debit(treasury.PoolAirdrop, total); err != nil {
			return err
		}
		for _, winner := range winners {
			if err := l.vault.Transfer(TreasuryAccount, winner.Recipient, winner.Amount); err != nil {
				return err
			}
		}
		if err := l.state.SetPools(pools); err != nil {
			return err
		}
		l.emitter.Emit(events.Airdropped{Recipients: len(winners), Total: total})
		return nil
	})
}

// DistributeLPIncentives pays an explicit recipient list from the liquidity
// incentive pool, outside the daily batch distributor.
func (l *Ledger) DistributeLPIncentives(signers []*types.PublicKey, recipients []Payout) error {
	return l.run("distributeLPIncentives", func() error {
		if _, err := l.loadPolicy(true); err != nil {
			return err
		}
		if len(recipients) > params.MaxAirdropRecipients {
			return ErrTooManyRecipients
		}
		if _, err := l.requireAuthority(signers); err != nil {
			return err
		}
		var total uint64
		var err error
		for _, recipient := range recipients {
			if total, err = common.CheckedAdd(total, recipient.Amount); err != nil {
				return err
			}
		}
		pools, err := l.state.Pools()
		if err != nil {
			return err
		}
		if err := pools.Debit(treasury.PoolLiquidityIncentive, total); err != nil {
			return err
		}
		for _, recipient := range recipients {
			if err := l.vault.Transfer(TreasuryAccount, recipient.Recipient, recipient.Amount); err != nil {
				return err
			}
		}
		return l.state.SetPools(pools)
	})
}

// UpdateDexPrograms replaces the DEX registry used for sell classification.
func (l *Ledger) UpdateDexPrograms(signers []*types.PublicKey, dexPrograms []types.PublicKey) error {
	return l.run("updateDexPrograms", func() error {
		policy, err := l.loadPolicy(true)
		if err != nil {
			return err
		}
		if len(dexPrograms) > params.MaxDexPrograms {
			return params.ErrTooManyDexPrograms
		}
		if _, err := l.requireAuthority(signers); err != nil {
			return err
		}
		policy.DexPrograms = append([]types.PublicKey(nil), dexPrograms...)
		return l.state.SetPolicy(policy)
	})
}

// GlobalUpdate carries replacement values for the global wallet and
// schedule fields. A zero key or a non-positive timestamp leaves the current
// setting in place.
type GlobalUpdate struct {
	LaunchTimestamp int64
	TeamWallet      types.PublicKey
	CharityWallet   types.PublicKey
	PresaleReceiver types.PublicKey
}

// UpdateGlobals replaces the launch timestamp, team and charity wallets and
// the presale receiver on the policy.
func (l *Ledger) UpdateGlobals(signers []*types.PublicKey, update GlobalUpdate) error {
	return l.run("updateGlobals", func() error {
		policy, err := l.loadPolicy(true)
		if err != nil {
			return err
		}
		if _, err := l.requireAuthority(signers); err != nil {
			return err
		}
		if update.LaunchTimestamp > 0 {
			policy.LaunchTimestamp = update.LaunchTimestamp
		}
		if !update.TeamWallet.IsZero() {
			policy.TeamWallet = update.TeamWallet
		}
		if !update.CharityWallet.IsZero() {
			policy.CharityWallet = update.CharityWallet
		}
		if !update.PresaleReceiver.IsZero() {
			policy.PresaleReceiver = update.PresaleReceiver
		}
		if err := l.state.SetPolicy(policy); err != nil {
			return err
		}
		l.emitter.Emit(events.GlobalsUpdated{
			LaunchTimestamp: policy.LaunchTimestamp,
			TeamWallet:      policy.TeamWallet,
			CharityWallet:   policy.CharityWallet,
			PresaleReceiver: policy.PresaleReceiver,
		})
		return nil
	})
}

// TransferBetweenPools moves funds between treasury sub-pools.
func (l *Ledger) TransferBetweenPools(signers []*types.PublicKey, from, to treasury.Pool, amount uint64) error {
	return l.run("transferBetweenPools", func() error {
		if _, err := l.loadPolicy(true); err != nil {
			return err
		}
		if _, err := l.requireAuthority(signers); err != nil {
			return err
		}
		pools, err := l.state.Pools()
		if err != nil {
			return err
		}
		if err := pools.Transfer(from, to, amount); err != nil {
			return err
		}
		return l.state.SetPools(pools)
	})
}
