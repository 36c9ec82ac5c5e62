// Package presale implements the USDT-denominated token presale: fixed
// pricing, supply and per-wallet caps, and the KYC gate on large purchases.
package presale

import (
	"errors"

	"veralux/core/types"
	"veralux/native/common"
	"veralux/native/params"
)

var (
	// ErrNotActive is returned when buying outside the presale window.
	ErrNotActive = errors.New("presale: presale not active")
	// ErrSupplyExceeded is returned when a purchase would exceed the presale
	// supply.
	ErrSupplyExceeded = errors.New("presale: supply exceeded")
	// ErrWalletCapExceeded is returned when a wallet's cumulative purchases
	// would exceed the per-wallet cap.
	ErrWalletCapExceeded = errors.New("presale: wallet cap exceeded")
	// ErrKYCRequired is returned for large purchases without verification.
	ErrKYCRequired = errors.New("presale: kyc verification required")
)

// Purchase tracks one wallet's cumulative presale position.
type Purchase struct {
	Wallet         types.PublicKey `json:"wallet"`
	TotalPurchased uint64          `json:"totalPurchased"`
	KYCVerified    bool            `json:"kycVerified"`
}

// Quote converts a USDT amount into token base units at the fixed presale
// price.
func Quote(usdtAmount uint64) (uint64, error) {
	return common.MulDiv(usdtAmount, params.Unit, params.PresalePrice)
}

// Buy validates and applies a purchase against the wallet record. totalSold
// is the presale-wide running total before this purchase; the returned token
// amount has already been added to the record.
func (p *Purchase) Buy(wallet types.PublicKey, usdtAmount, totalSold uint64) (uint64, error) {
	tokens, err := Quote(usdtAmount)
	if err != nil {
		return 0, err
	}
	sold, err := common.CheckedAdd(totalSold, tokens)
	if err != nil || sold > params.PresaleSupply {
		return 0, ErrSupplyExceeded
	}
	if usdtAmount >= params.PresaleKYCThreshold && !p.KYCVerified {
		return 0, ErrKYCRequired
	}
	purchased, err := common.CheckedAdd(p.TotalPurchased, tokens)
	if err != nil || purchased > params.PresaleWalletCap {
		return 0, ErrWalletCapExceeded
	}
	p.Wallet = wallet
	p.TotalPurchased = purchased
	return tokens, nil
}
