package tax

import (
	"veralux/native/common"
	"veralux/native/params"
)

// Rate returns the tax rate in bps for a transfer: half the base rate when
// the recipient contract is whitelisted, triple for amounts at or above the
// progressive threshold, otherwise the base rate.
func Rate(policy *params.Policy, amount uint64, recipientWhitelisted bool) uint16 {
	switch {
	case recipientWhitelisted:
		return policy.TaxRateBps / 2
	case amount >= policy.ProgressiveTaxThreshold:
		return policy.TaxRateBps * 3
	default:
		return policy.TaxRateBps
	}
}

// Compute returns the tax charged on amount at the given rate, rounded up.
// ErrAmountTooSmallAfterTax is returned when nothing would remain.
func Compute(amount uint64, rateBps uint16) (uint64, error) {
	tax, err := common.MulDivCeil(amount, uint64(rateBps), params.BpsDenominator)
	if err != nil {
		return 0, err
	}
	if tax >= amount {
		return 0, ErrAmountTooSmallAfterTax
	}
	return tax, nil
}

// Split is the six-way breakdown of a collected tax. Each component is
// ceiling-divided independently, so the parts can sum to slightly more than
// the tax; senders bear the rounding.
type Split struct {
	Burn        uint64
	Treasury    uint64
	Liquidity   uint64
	LPIncentive uint64
	Charity     uint64
	Team        uint64
}

// SplitTax apportions the tax across the six configured allocations.
func SplitTax(policy *params.Policy, tax uint64) (Split, error) {
	var (
		s   Split
		err error
	)
	parts := []struct {
		dst *uint64
		bps uint16
	}{
		{&s.Burn, policy.BurnAllocationBps},
		{&s.Treasury, policy.TreasuryAllocationBps},
		{&s.Liquidity, policy.LiquidityAllocationBps},
		{&s.LPIncentive, policy.LPIncentiveAllocationBps},
		{&s.Charity, policy.CharityAllocationBps},
		{&s.Team, policy.TeamAllocationBps},
	}
	for _, part := range parts {
		*part.dst, err = common.MulDivCeil(tax, uint64(part.bps), params.BpsDenominator)
		if err != nil {
			return Split{}, err
		}
	}
	return s, nil
}

// CheckLimits validates a transfer of the given class against the per-txn
// and daily limits. The record must already be advanced to now.
func CheckLimits(policy *params.Policy, record *Record, amount uint64, sell bool) error {
	if sell {
		if amount > policy.MaxSellLimit {
			return ErrMaxSellExceeded
		}
		daily, err := common.CheckedAdd(record.DailySellVolume(), amount)
		if err != nil || daily > policy.DailySellLimit {
			return ErrDailySellExceeded
		}
		return nil
	}
	if amount > policy.MaxTransferLimit {
		return ErrMaxTransferExceeded
	}
	daily, err := common.CheckedAdd(record.DailyTransferVolume(), amount)
	if err != nil || daily > policy.DailyTransferLimit {
		return ErrDailyTransferExceeded
	}
	return nil
}
