package governance

import (
	"errors"
	"testing"
	"time"

	"veralux/core/types"
	"veralux/native/params"
)

func testPolicy() params.Policy {
	return params.DefaultPolicy(time.Unix(1_700_000_000, 0))
}

func contractKey(b byte) types.PublicKey {
	var k types.PublicKey
	k[0] = b
	return k
}

func TestEffectValidate(t *testing.T) {
	policy := testPolicy()
	supply := params.TotalSupply
	cases := []struct {
		name   string
		effect Effect
		err    error
	}{
		{"unknown kind", Effect{Kind: 99}, ErrInvalidKind},
		{"wrong value count", Effect{Kind: KindSetTaxRate, Values: []uint64{1, 2}}, ErrValueCount},
		{"tax rate ok", Effect{Kind: KindSetTaxRate, Values: []uint64{300}}, nil},
		{"tax rate low", Effect{Kind: KindSetTaxRate, Values: []uint64{99}}, params.ErrInvalidTaxRate},
		{"tax rate high", Effect{Kind: KindSetTaxRate, Values: []uint64{1001}}, params.ErrInvalidTaxRate},
		{"tiers ok", Effect{Kind: KindSetStakingTiers, Values: []uint64{20_000 * params.Unit, 100_000 * params.Unit, 500_000 * params.Unit, 5_000_000 * params.Unit}}, nil},
		{"tiers not increasing", Effect{Kind: KindSetStakingTiers, Values: []uint64{20_000 * params.Unit, 20_000 * params.Unit, 500_000 * params.Unit, 5_000_000 * params.Unit}}, params.ErrInvalidStakingTiers},
		{"tier three too large", Effect{Kind: KindSetStakingTiers, Values: []uint64{20_000 * params.Unit, 100_000 * params.Unit, 500_000 * params.Unit, supply/10 + 1}}, params.ErrInvalidStakingTiers},
		{"allocations ok", Effect{Kind: KindSetTaxAllocations, Values: []uint64{2000, 2000, 2400, 600, 2000, 1000}}, nil},
		{"allocations bad sum", Effect{Kind: KindSetTaxAllocations, Values: []uint64{2000, 2000, 2400, 600, 2000, 999}}, params.ErrInvalidAllocations},
		{"allocation too large", Effect{Kind: KindSetTaxAllocations, Values: []uint64{5001, 1000, 1000, 999, 1000, 1000}}, params.ErrInvalidAllocations},
		{"reduction ok", Effect{Kind: KindSetReductionSchedule, Values: []uint64{250, 500, 750, 512, 640, 800, 1000}}, nil},
		{"reduction unordered", Effect{Kind: KindSetReductionSchedule, Values: []uint64{500, 500, 750, 512, 640, 800, 1000}}, params.ErrInvalidReduction},
		{"launch in range", Effect{Kind: KindSetLaunchTimestamp, Values: []uint64{uint64(policy.LaunchTimestamp + 86_400)}}, nil},
		{"launch too far out", Effect{Kind: KindSetLaunchTimestamp, Values: []uint64{uint64(policy.LaunchTimestamp + 366*86_400)}}, params.ErrInvalidLaunchTime},
		{"limit ok", Effect{Kind: KindSetMaxSellLimit, Values: []uint64{supply / 100}}, nil},
		{"limit too small", Effect{Kind: KindSetMaxSellLimit, Values: []uint64{supply/1000 - 1}}, params.ErrInvalidLimit},
		{"limit too large", Effect{Kind: KindSetDailyTransferLimit, Values: []uint64{supply/50 + 1}}, params.ErrInvalidLimit},
		{"rewards ok", Effect{Kind: KindSetStakingRewards, Values: []uint64{500 * params.Unit, 2_500 * params.Unit, 12_500 * params.Unit, 125_000 * params.Unit}}, nil},
		{"reward too small", Effect{Kind: KindSetStakingRewards, Values: []uint64{99 * params.Unit, 2_500 * params.Unit, 12_500 * params.Unit, 125_000 * params.Unit}}, params.ErrInvalidRewards},
		{"whitelist empty", Effect{Kind: KindUpdateWhitelist}, ErrValueCount},
		{"whitelist add", Effect{Kind: KindUpdateWhitelist, AddContracts: []types.PublicKey{contractKey(1)}}, nil},
		{"whitelist at key cap", Effect{Kind: KindUpdateWhitelist,
			AddContracts:    []types.PublicKey{contractKey(1), contractKey(2), contractKey(3)},
			RemoveContracts: []types.PublicKey{contractKey(4), contractKey(5)}}, nil},
		{"whitelist over key cap", Effect{Kind: KindUpdateWhitelist,
			AddContracts:    []types.PublicKey{contractKey(1), contractKey(2), contractKey(3)},
			RemoveContracts: []types.PublicKey{contractKey(4), contractKey(5), contractKey(6)}}, ErrValueCount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.effect.Validate(&policy); !errors.Is(err, tc.err) {
				t.Fatalf("got %v, want %v", err, tc.err)
			}
		})
	}
}

func TestEffectApplyTaxRate(t *testing.T) {
	policy := testPolicy()
	effect := Effect{Kind: KindSetTaxRate, Values: []uint64{300}}
	if err := effect.Apply(&policy); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if policy.TaxRateBps != 300 {
		t.Fatalf("rate %d, want 300", policy.TaxRateBps)
	}
}

func TestEffectApplyAllocations(t *testing.T) {
	policy := testPolicy()
	effect := Effect{Kind: KindSetTaxAllocations, Values: []uint64{1000, 3000, 2400, 600, 2000, 1000}}
	if err := effect.Apply(&policy); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if policy.BurnAllocationBps != 1000 || policy.TreasuryAllocationBps != 3000 {
		t.Fatalf("allocations not applied: %+v", policy)
	}
	if policy.AllocationSum() != params.BpsDenominator {
		t.Fatalf("sum %d, want %d", policy.AllocationSum(), params.BpsDenominator)
	}
}

func TestEffectApplyRevalidates(t *testing.T) {
	policy := testPolicy()
	effect := Effect{Kind: KindSetTaxRate, Values: []uint64{5}}
	if err := effect.Apply(&policy); !errors.Is(err, params.ErrInvalidTaxRate) {
		t.Fatalf("got %v, want ErrInvalidTaxRate", err)
	}
	if policy.TaxRateBps != params.DefaultTaxRateBps {
		t.Fatal("failed apply mutated policy")
	}
}

func TestEffectWhitelistAddRemove(t *testing.T) {
	policy := testPolicy()
	a, b := contractKey(1), contractKey(2)
	add := Effect{Kind: KindUpdateWhitelist, AddContracts: []types.PublicKey{a, b}}
	if err := add.Apply(&policy); err != nil {
		t.Fatalf("add: %v", err)
	}
	if len(policy.WhitelistedContracts) != 2 {
		t.Fatalf("whitelist size %d, want 2", len(policy.WhitelistedContracts))
	}
	entry, ok := policy.Whitelisted(a)
	if !ok {
		t.Fatal("contract a missing")
	}
	if entry.VersionHash != [32]byte(a) {
		t.Fatal("version hash should mirror the contract key")
	}

	remove := Effect{Kind: KindUpdateWhitelist, RemoveContracts: []types.PublicKey{a}}
	if err := remove.Apply(&policy); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, ok := policy.Whitelisted(a); ok {
		t.Fatal("contract a still whitelisted")
	}
	if _, ok := policy.Whitelisted(b); !ok {
		t.Fatal("contract b was dropped")
	}
}

func TestEffectWhitelistCap(t *testing.T) {
	policy := testPolicy()
	for i := 0; i < params.MaxWhitelistedContracts; i++ {
		policy.WhitelistedContracts = append(policy.WhitelistedContracts, params.WhitelistedContract{Contract: contractKey(byte(i + 1))})
	}
	effect := Effect{Kind: KindUpdateWhitelist, AddContracts: []types.PublicKey{contractKey(100)}}
	if err := effect.Apply(&policy); !errors.Is(err, params.ErrWhitelistFull) {
		t.Fatalf("got %v, want ErrWhitelistFull", err)
	}
}
