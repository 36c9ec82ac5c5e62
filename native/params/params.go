// Package params holds the global economic policy of the ledger: tax rates
// and allocations, staking tiers, transaction limits, whitelists, and the
// launch schedule. Governance and the authority mutate it through validated
// setters; every engine reads it.
package params

import (
	"time"

	"veralux/core/types"
)

// Unit is one whole token in base units (9 decimals).
const Unit = 1_000_000_000

// Supply and distribution constants.
const (
	// TotalSupply is the fixed token supply in base units.
	TotalSupply uint64 = 1_000_000_000 * Unit
	// TreasuryReserve is the portion of supply held by the treasury at genesis.
	TreasuryReserve uint64 = 660_000_000 * Unit
	// PresaleSupply caps the total tokens sold through the presale.
	PresaleSupply uint64 = 250_000_000 * Unit
	// PresalePrice is USDT base units charged per whole token.
	PresalePrice uint64 = 1600
	// PresaleWalletCap bounds one wallet's cumulative presale purchase.
	PresaleWalletCap uint64 = 2_000_000 * Unit
	// PresaleKYCThreshold is the USDT purchase size requiring verification.
	PresaleKYCThreshold uint64 = 1000
)

// Tax and limit defaults.
const (
	DefaultTaxRateBps uint16 = 500
	// BpsDenominator converts basis points to a fraction.
	BpsDenominator uint64 = 10_000
	// TxnCooldown is the minimum spacing between taxed transfers per sender.
	TxnCooldown = 60 * time.Second
	// WithdrawalDelaySlots delays large treasury withdrawals.
	WithdrawalDelaySlots uint64 = 432_000
)

// Treasury pool split percentages, applied to the treasury reserve at
// genesis. The liquidity incentive pool starts empty and is fed by tax.
const (
	PoolPctStaking    = 30
	PoolPctAirdrop    = 8
	PoolPctGovernance = 16
	PoolPctMarketing  = 18
	PoolPctEmergency  = 5
	PoolPctTeam       = 18
)

// Collection size bounds.
const (
	MaxDexPrograms          = 10
	MaxWhitelistedContracts = 20
	MaxAllowedDestinations  = 10
	MaxAirdropRecipients    = 100
	MaxPauseReasonLen       = 100
	MaxProposalDescription  = 200
)

// WhitelistedContract pairs a contract key with the version hash its
// deployment was approved under. Transfers through the contract are only
// discounted while the recorded hash still matches.
type WhitelistedContract struct {
	Contract    types.PublicKey `json:"contract"`
	VersionHash [32]byte        `json:"versionHash"`
}

// Policy is the global policy record. Amounts are base units; times are unix
// seconds.
type Policy struct {
	Paused      bool   `json:"paused"`
	PauseReason string `json:"pauseReason"`

	TaxRateBps uint16 `json:"taxRateBps"`

	// StakingTiers are the minimum stake per tier, ascending.
	StakingTiers [4]uint64 `json:"stakingTiers"`
	// StakingRewards are the weekly reward per tier, ascending.
	StakingRewards [4]uint64 `json:"stakingRewards"`

	// Allocations split the collected tax in basis points summing to 10000.
	BurnAllocationBps        uint16 `json:"burnAllocationBps"`
	TreasuryAllocationBps    uint16 `json:"treasuryAllocationBps"`
	LiquidityAllocationBps   uint16 `json:"liquidityAllocationBps"`
	LPIncentiveAllocationBps uint16 `json:"lpIncentiveAllocationBps"`
	CharityAllocationBps     uint16 `json:"charityAllocationBps"`
	TeamAllocationBps        uint16 `json:"teamAllocationBps"`

	// ReductionThresholds and factors shape the volume-based tax discount.
	ReductionThresholds [3]uint64 `json:"reductionThresholds"`
	ReductionFactors    [4]uint64 `json:"reductionFactors"`

	MaxSellLimit            uint64 `json:"maxSellLimit"`
	DailySellLimit          uint64 `json:"dailySellLimit"`
	MaxTransferLimit        uint64 `json:"maxTransferLimit"`
	DailyTransferLimit      uint64 `json:"dailyTransferLimit"`
	ProgressiveTaxThreshold uint64 `json:"progressiveTaxThreshold"`
	TrackingThreshold       uint64 `json:"trackingThreshold"`

	DexPrograms          []types.PublicKey     `json:"dexPrograms"`
	WhitelistedContracts []WhitelistedContract `json:"whitelistedContracts"`
	AllowedDestinations  []types.PublicKey     `json:"allowedDestinations"`

	// Destination wallets for the non-pool tax splits.
	CharityWallet types.PublicKey `json:"charityWallet"`
	TeamWallet    types.PublicKey `json:"teamWallet"`
	LiquidityPool types.PublicKey `json:"liquidityPool"`

	PresaleActive    bool            `json:"presaleActive"`
	PresaleReceiver  types.PublicKey `json:"presaleReceiver"`
	PresaleTotalSold uint64          `json:"presaleTotalSold"`

	LaunchTimestamp  int64  `json:"launchTimestamp"`
	ProposalCount    uint64 `json:"proposalCount"`
	TotalVotingPower uint64 `json:"totalVotingPower"`
}

// DefaultPolicy returns the genesis policy with the launch schedule anchored
// at the given time.
func DefaultPolicy(launch time.Time) Policy {
	return Policy{
		TaxRateBps:     DefaultTaxRateBps,
		StakingTiers:   [4]uint64{20_000 * Unit, 100_000 * Unit, 500_000 * Unit, 5_000_000 * Unit},
		StakingRewards: [4]uint64{500 * Unit, 2_500 * Unit, 12_500 * Unit, 125_000 * Unit},

		BurnAllocationBps:        2000,
		TreasuryAllocationBps:    2000,
		LiquidityAllocationBps:   2400,
		LPIncentiveAllocationBps: 600,
		CharityAllocationBps:     2000,
		TeamAllocationBps:        1000,

		ReductionThresholds: [3]uint64{250, 500, 750},
		ReductionFactors:    [4]uint64{512, 640, 800, 1000},

		MaxSellLimit:            TotalSupply / 200,
		DailySellLimit:          TotalSupply / 200,
		MaxTransferLimit:        TotalSupply / 200,
		DailyTransferLimit:      TotalSupply / 200,
		ProgressiveTaxThreshold: TotalSupply / 200,
		TrackingThreshold:       TotalSupply / 1000,

		LaunchTimestamp: launch.Unix(),
	}
}

// IsDex reports whether the key is a registered DEX program. Transfers to a
// DEX are classified as sells.
func (p *Policy) IsDex(key types.PublicKey) bool {
	for _, dex := range p.DexPrograms {
		if dex == key {
			return true
		}
	}
	return false
}

// IsAllowedDestination reports whether whitelisted contracts may send here.
func (p *Policy) IsAllowedDestination(key types.PublicKey) bool {
	for _, dest := range p.AllowedDestinations {
		if dest == key {
			return true
		}
	}
	return false
}

// Whitelisted returns the whitelist entry for the contract, if present.
func (p *Policy) Whitelisted(contract types.PublicKey) (WhitelistedContract, bool) {
	for _, entry := range p.WhitelistedContracts {
		if entry.Contract == contract {
			return entry, true
		}
	}
	return WhitelistedContract{}, false
}

// AllocationSum returns the total of the six tax allocations in bps.
func (p *Policy) AllocationSum() uint64 {
	return uint64(p.BurnAllocationBps) + uint64(p.TreasuryAllocationBps) +
		uint64(p.LiquidityAllocationBps) + uint64(p.LPIncentiveAllocationBps) +
		uint64(p.CharityAllocationBps) + uint64(p.TeamAllocationBps)
}

// Validate checks the structural invariants the policy must hold at rest.
func (p *Policy) Validate() error {
	if p.TaxRateBps < MinTaxRateBps || p.TaxRateBps > MaxTaxRateBps {
		return ErrInvalidTaxRate
	}
	if p.AllocationSum() != BpsDenominator {
		return ErrInvalidAllocations
	}
	for i := 1; i < len(p.StakingTiers); i++ {
		if p.StakingTiers[i] <= p.StakingTiers[i-1] {
			return ErrInvalidStakingTiers
		}
	}
	if len(p.DexPrograms) > MaxDexPrograms {
		return ErrTooManyDexPrograms
	}
	if len(p.WhitelistedContracts) > MaxWhitelistedContracts {
		return ErrWhitelistFull
	}
	if len(p.AllowedDestinations) > MaxAllowedDestinations {
		return ErrTooManyDestinations
	}
	if len(p.PauseReason) > MaxPauseReasonLen {
		return ErrPauseReasonTooLong
	}
	return nil
}
