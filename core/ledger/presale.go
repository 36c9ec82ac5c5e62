package ledger

import (
	"veralux/core/events"
	"veralux/core/types"
	"veralux/native/common"
	"veralux/native/presale"
)

// SetKYCVerified records a wallet's verification status. Purchases at or
// above the KYC threshold require it.
func (l *Ledger) SetKYCVerified(signers []*types.PublicKey, wallet types.PublicKey, verified bool) error {
	return l.run("setKYCVerified", func() error {
		if _, err := l.loadPolicy(true); err != nil {
			return err
		}
		if _, err := l.requireAuthority(signers); err != nil {
			return err
		}
		purchase, err := l.state.PresalePurchase(wallet)
		if err != nil {
			return err
		}
		purchase.Wallet = wallet
		purchase.KYCVerified = verified
		return l.state.SetPresalePurchase(wallet, purchase)
	})
}

// BuyPresale sells tokens at the fixed presale price. The USDT payment goes
// to the configured receiver and the purchased tokens enter the buyer's
// vesting schedule rather than circulating.
func (l *Ledger) BuyPresale(buyer types.PublicKey, usdtAmount uint64) error {
	return l.run("buyPresale", func() error {
		policy, err := l.loadPolicy(true)
		if err != nil {
			return err
		}
		if !policy.PresaleActive {
			return presale.ErrNotActive
		}
		purchase, err := l.state.PresalePurchase(buyer)
		if err != nil {
			return err
		}
		tokens, err := purchase.Buy(buyer, usdtAmount, policy.PresaleTotalSold)
		if err != nil {
			return err
		}
		schedule, err := l.state.PresaleVesting(buyer)
		if err != nil {
			return err
		}
		if schedule.Total, err = common.CheckedAdd(schedule.Total, tokens); err != nil {
			return err
		}
		if policy.PresaleTotalSold, err = common.CheckedAdd(policy.PresaleTotalSold, tokens); err != nil {
			return err
		}

		// The USDT leg settles on the payment token's vault.
		if err := l.vault.Transfer(buyer, policy.PresaleReceiver, usdtAmount); err != nil {
			return err
		}
		if err := l.state.SetPresalePurchase(buyer, purchase); err != nil {
			return err
		}
		if err := l.state.SetPresaleVesting(buyer, schedule); err != nil {
			return err
		}
		if err := l.state.SetPolicy(policy); err != nil {
			return err
		}
		l.emitter.Emit(events.PresalePurchased{Buyer: buyer, USDTAmount: usdtAmount, Tokens: tokens})
		return nil
	})
}

// ClaimPresaleTokens pays out whatever the weekly unlock curve has made
// claimable since the last claim. Nothing unlocked reports success with an
// informational event.
func (l *Ledger) ClaimPresaleTokens(buyer types.PublicKey) error {
	return l.run("claimPresaleTokens", func() error {
		policy, err := l.loadPolicy(true)
		if err != nil {
			return err
		}
		schedule, err := l.state.PresaleVesting(buyer)
		if err != nil {
			return err
		}
		claimable, err := schedule.Claim(policy.LaunchTimestamp, l.now().Unix())
		if err != nil {
			return err
		}
		if claimable == 0 {
			l.emitter.Emit(events.NothingToDo{User: buyer, Reason: "no tokens available to claim"})
			return nil
		}
		if err := l.vault.Transfer(TreasuryAccount, buyer, claimable); err != nil {
			return err
		}
		if err := l.state.SetPresaleVesting(buyer, schedule); err != nil {
			return err
		}
		l.emitter.Emit(events.PresaleClaimed{Buyer: buyer, Amount: claimable})
		return nil
	})
}
