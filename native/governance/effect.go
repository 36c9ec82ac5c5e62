package governance

import (
	"fmt"

	"veralux/core/types"
	"veralux/native/params"
)

// Effect kinds. Each kind mutates one policy field group when its proposal
// is approved and executed.
const (
	KindSetTaxRate uint8 = iota
	KindSetStakingTiers
	KindSetTaxAllocations
	KindSetReductionSchedule
	KindSetLaunchTimestamp
	KindSetMaxSellLimit
	KindSetDailySellLimit
	KindSetMaxTransferLimit
	KindSetDailyTransferLimit
	KindSetProgressiveTaxThreshold
	KindSetStakingRewards
	KindUpdateWhitelist
	kindCount
)

// MaxValues bounds the raw value payload of a proposal.
const MaxValues = 7

// MaxWhitelistKeys bounds a whitelist effect's combined add and remove
// lists; two payload slots carry the counts, the rest carry keys.
const MaxWhitelistKeys = MaxValues - 2

var kindValueCounts = [kindCount]int{
	1, // tax rate
	4, // staking tiers
	6, // tax allocations
	7, // reduction schedule
	1, // launch timestamp
	1, 1, 1, 1, 1, // limits and threshold
	4, // staking rewards
	0, // whitelist carries keys, not values
}

// Effect is the typed policy change a proposal carries. Values holds the
// numeric payload for most kinds; the whitelist kind uses the key slices
// instead.
type Effect struct {
	Kind            uint8             `json:"kind"`
	Values          []uint64          `json:"values,omitempty"`
	AddContracts    []types.PublicKey `json:"addContracts,omitempty"`
	RemoveContracts []types.PublicKey `json:"removeContracts,omitempty"`
}

// Validate checks the effect's payload shape and value ranges against the
// policy it would apply to. Effects are validated both at submission and
// again at execution against the then-current policy.
func (e Effect) Validate(policy *params.Policy) error {
	if e.Kind >= uint8(kindCount) {
		return ErrInvalidKind
	}
	if e.Kind != KindUpdateWhitelist {
		if len(e.Values) != kindValueCounts[e.Kind] {
			return ErrValueCount
		}
	}
	switch e.Kind {
	case KindSetTaxRate:
		rate := e.Values[0]
		if rate < uint64(params.MinTaxRateBps) || rate > uint64(params.MaxTaxRateBps) {
			return params.ErrInvalidTaxRate
		}
	case KindSetStakingTiers:
		tiers := e.Values
		if tiers[0] < params.MinTier0Stake || tiers[3] > params.MaxTier3Stake {
			return params.ErrInvalidStakingTiers
		}
		for i := 1; i < 4; i++ {
			if tiers[i] <= tiers[i-1] {
				return params.ErrInvalidStakingTiers
			}
		}
	case KindSetTaxAllocations:
		var total uint64
		for _, alloc := range e.Values {
			if alloc > uint64(params.MaxAllocationBps) {
				return params.ErrInvalidAllocations
			}
			total += alloc
		}
		if total != params.BpsDenominator {
			return params.ErrInvalidAllocations
		}
	case KindSetReductionSchedule:
		thresholds, factors := e.Values[:3], e.Values[3:]
		if thresholds[0] < params.MinReductionThreshold || thresholds[2] > params.MaxReductionThreshold {
			return params.ErrInvalidReduction
		}
		if thresholds[0] >= thresholds[1] || thresholds[1] >= thresholds[2] {
			return params.ErrInvalidReduction
		}
		for _, factor := range factors {
			if factor < params.MinReductionFactor || factor > params.MaxReductionFactor {
				return params.ErrInvalidReduction
			}
		}
	case KindSetLaunchTimestamp:
		ts := int64(e.Values[0])
		if ts < policy.LaunchTimestamp-params.LaunchShiftBack ||
			ts > policy.LaunchTimestamp+params.LaunchShiftForward {
			return params.ErrInvalidLaunchTime
		}
	case KindSetMaxSellLimit, KindSetDailySellLimit, KindSetMaxTransferLimit,
		KindSetDailyTransferLimit, KindSetProgressiveTaxThreshold:
		limit := e.Values[0]
		if limit < params.MinTxnLimit || limit > params.MaxTxnLimit {
			return params.ErrInvalidLimit
		}
	case KindSetStakingRewards:
		for _, reward := range e.Values {
			if reward < params.MinWeeklyReward || reward > params.MaxWeeklyReward {
				return params.ErrInvalidRewards
			}
		}
	case KindUpdateWhitelist:
		if len(e.Values) != 0 {
			return ErrValueCount
		}
		total := len(e.AddContracts) + len(e.RemoveContracts)
		if total == 0 || total > MaxWhitelistKeys {
			return ErrValueCount
		}
	}
	return nil
}

// Apply mutates the policy with the validated effect. Whitelist additions
// record the contract key as its own version hash; a later deployment under
// a different identity will not match.
func (e Effect) Apply(policy *params.Policy) error {
	if err := e.Validate(policy); err != nil {
		return err
	}
	switch e.Kind {
	case KindSetTaxRate:
		policy.TaxRateBps = uint16(e.Values[0])
	case KindSetStakingTiers:
		copy(policy.StakingTiers[:], e.Values)
	case KindSetTaxAllocations:
		policy.BurnAllocationBps = uint16(e.Values[0])
		policy.TreasuryAllocationBps = uint16(e.Values[1])
		policy.LiquidityAllocationBps = uint16(e.Values[2])
		policy.LPIncentiveAllocationBps = uint16(e.Values[3])
		policy.CharityAllocationBps = uint16(e.Values[4])
		policy.TeamAllocationBps = uint16(e.Values[5])
	case KindSetReductionSchedule:
		copy(policy.ReductionThresholds[:], e.Values[:3])
		copy(policy.ReductionFactors[:], e.Values[3:])
	case KindSetLaunchTimestamp:
		policy.LaunchTimestamp = int64(e.Values[0])
	case KindSetMaxSellLimit:
		policy.MaxSellLimit = e.Values[0]
	case KindSetDailySellLimit:
		policy.DailySellLimit = e.Values[0]
	case KindSetMaxTransferLimit:
		policy.MaxTransferLimit = e.Values[0]
	case KindSetDailyTransferLimit:
		policy.DailyTransferLimit = e.Values[0]
	case KindSetProgressiveTaxThreshold:
		policy.ProgressiveTaxThreshold = e.Values[0]
	case KindSetStakingRewards:
		copy(policy.StakingRewards[:], e.Values)
	case KindUpdateWhitelist:
		return e.applyWhitelist(policy)
	default:
		return ErrInvalidKind
	}
	return nil
}

func (e Effect) applyWhitelist(policy *params.Policy) error {
	next := make([]params.WhitelistedContract, 0, len(policy.WhitelistedContracts))
	for _, entry := range policy.WhitelistedContracts {
		removed := false
		for _, contract := range e.RemoveContracts {
			if entry.Contract == contract {
				removed = true
				break
			}
		}
		if !removed {
			next = append(next, entry)
		}
	}
	for _, contract := range e.AddContracts {
		if len(next) >= params.MaxWhitelistedContracts {
			return fmt.Errorf("governance: add %s: %w", contract, params.ErrWhitelistFull)
		}
		var hash [32]byte
		copy(hash[:], contract[:])
		next = append(next, params.WhitelistedContract{Contract: contract, VersionHash: hash})
	}
	policy.WhitelistedContracts = next
	return nil
}
