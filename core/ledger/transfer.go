package ledger

import (
	"bytes"

	"veralux/core/events"
	"veralux/core/types"
	"veralux/native/params"
	"veralux/native/tax"
	"veralux/native/treasury"
)

// settleTax applies a computed tax split: pool credits, the burn, the five
// tax transfers and the net delivery, then persists the pools and emits the
// breakdown. Vault effects run after all validation so state is never left
// partially applied on a validation failure.
func (l *Ledger) settleTax(policy *params.Policy, sender, recipient types.PublicKey, amount, taxed uint64, split tax.Split) error {
	pools, err := l.state.Pools()
	if err != nil {
		return err
	}
	if err := pools.Credit(treasury.PoolStaking, split.Treasury); err != nil {
		return err
	}
	if err := pools.Credit(treasury.PoolLiquidityIncentive, split.LPIncentive); err != nil {
		return err
	}
	if err := pools.Credit(treasury.PoolTeam, split.Team); err != nil {
		return err
	}

	if split.Burn > 0 {
		if err := l.vault.Burn(sender, split.Burn); err != nil {
			return err
		}
	}
	transfers := []struct {
		to     types.PublicKey
		amount uint64
	}{
		{TreasuryAccount, split.Treasury},
		{policy.LiquidityPool, split.Liquidity},
		{TreasuryAccount, split.LPIncentive},
		{policy.CharityWallet, split.Charity},
		{policy.TeamWallet, split.Team},
		{recipient, amount - taxed},
	}
	for _, t := range transfers {
		if err := l.vault.Transfer(sender, t.to, t.amount); err != nil {
			return err
		}
	}

	if err := l.state.SetPools(pools); err != nil {
		return err
	}
	l.emitter.Emit(events.TransferTaxed{
		From:           sender,
		To:             recipient,
		Amount:         amount - taxed,
		Tax:            taxed,
		Burn:           split.Burn,
		TreasuryTax:    split.Treasury,
		LiquidityTax:   split.Liquidity,
		LPIncentiveTax: split.LPIncentive,
		CharityTax:     split.Charity,
		TeamTax:        split.Team,
	})
	return nil
}

// Transfer settles a taxed transfer from sender to recipient. The transfer
// is classified as a sell when the recipient is a registered DEX, checked
// against the per-transaction and 24-hour limits, taxed, split six ways,
// and the net amount delivered.
func (l *Ledger) Transfer(sender, recipient types.PublicKey, amount uint64) error {
	return l.run("transfer", func() error {
		policy, err := l.loadPolicy(false)
		if err != nil {
			return err
		}
		// Zero-amount transfers pass the pause gate so wallets can probe
		// liveness; they still fail the net-amount check below.
		if policy.Paused && amount != 0 {
			return tax.ErrPaused
		}

		now := l.now().Unix()
		record, err := l.state.TaxRecord(sender)
		if err != nil {
			return err
		}
		if now-record.LastTxnTime < int64(params.TxnCooldown.Seconds()) {
			return tax.ErrCooldownActive
		}

		isSell := policy.IsDex(recipient)
		record.Advance(now)
		if err := tax.CheckLimits(&policy, &record, amount, isSell); err != nil {
			return err
		}

		// The discount requires the recorded version hash to still match the
		// recipient's identity, as on the whitelisted-transfer path.
		entry, recipientWhitelisted := policy.Whitelisted(recipient)
		if recipientWhitelisted && !bytes.Equal(entry.VersionHash[:], recipient[:]) {
			recipientWhitelisted = false
		}
		rate := tax.Rate(&policy, amount, recipientWhitelisted)
		taxed, err := tax.Compute(amount, rate)
		if err != nil {
			return err
		}
		split, err := tax.SplitTax(&policy, taxed)
		if err != nil {
			return err
		}
		if err := l.settleTax(&policy, sender, recipient, amount, taxed, split); err != nil {
			return err
		}

		record.RecordAmount(amount, isSell)
		record.LastTxnTime = now
		if amount >= policy.TrackingThreshold {
			if isSell && record.SellCooldownStart == 0 {
				record.SellCooldownStart = now
			} else if !isSell && record.TransferCooldownStart == 0 {
				record.TransferCooldownStart = now
			}
		}
		return l.state.SetTaxRecord(sender, record)
	})
}

// WhitelistedTransfer settles a transfer initiated by a whitelisted
// contract at half the base rate, outside the sliding-window accounting.
// The destination must be on the allowed list and the contract's recorded
// version hash must still match its identity.
func (l *Ledger) WhitelistedTransfer(caller, sender, recipient types.PublicKey, amount uint64) error {
	return l.run("whitelistedTransfer", func() error {
		policy, err := l.loadPolicy(true)
		if err != nil {
			return err
		}
		entry, ok := policy.Whitelisted(caller)
		if !ok {
			return tax.ErrCallerNotWhitelisted
		}
		if !policy.IsAllowedDestination(recipient) {
			return tax.ErrInvalidDestination
		}
		if !bytes.Equal(entry.VersionHash[:], caller[:]) {
			return tax.ErrVersionMismatch
		}

		taxed, err := tax.Compute(amount, policy.TaxRateBps/2)
		if err != nil {
			return err
		}
		split, err := tax.SplitTax(&policy, taxed)
		if err != nil {
			return err
		}
		return l.settleTax(&policy, sender, recipient, amount, taxed, split)
	})
}
