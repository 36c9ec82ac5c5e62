package params

import (
	"errors"
	"testing"
	"time"

	"veralux/core/types"
)

func launch() time.Time {
	return time.Unix(1_700_000_000, 0)
}

func TestDefaultPolicyValidates(t *testing.T) {
	policy := DefaultPolicy(launch())
	if err := policy.Validate(); err != nil {
		t.Fatalf("default policy invalid: %v", err)
	}
	if policy.AllocationSum() != BpsDenominator {
		t.Fatalf("allocation sum %d, want %d", policy.AllocationSum(), BpsDenominator)
	}
	if policy.LaunchTimestamp != launch().Unix() {
		t.Fatalf("launch %d, want %d", policy.LaunchTimestamp, launch().Unix())
	}
}

func TestValidateRejectsBadPolicies(t *testing.T) {
	mutate := func(fn func(*Policy)) Policy {
		p := DefaultPolicy(launch())
		fn(&p)
		return p
	}
	cases := []struct {
		name   string
		policy Policy
		err    error
	}{
		{"tax rate low", mutate(func(p *Policy) { p.TaxRateBps = 99 }), ErrInvalidTaxRate},
		{"tax rate high", mutate(func(p *Policy) { p.TaxRateBps = 1001 }), ErrInvalidTaxRate},
		{"allocation sum off", mutate(func(p *Policy) { p.TeamAllocationBps++ }), ErrInvalidAllocations},
		{"tiers not increasing", mutate(func(p *Policy) { p.StakingTiers[1] = p.StakingTiers[0] }), ErrInvalidStakingTiers},
		{"too many dex programs", mutate(func(p *Policy) {
			p.DexPrograms = make([]types.PublicKey, MaxDexPrograms+1)
		}), ErrTooManyDexPrograms},
		{"pause reason too long", mutate(func(p *Policy) {
			p.PauseReason = string(make([]byte, MaxPauseReasonLen+1))
		}), ErrPauseReasonTooLong},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.policy.Validate(); !errors.Is(err, tc.err) {
				t.Fatalf("got %v, want %v", err, tc.err)
			}
		})
	}
}

func TestMembershipHelpers(t *testing.T) {
	policy := DefaultPolicy(launch())
	var dex, dest, contract types.PublicKey
	dex[0], dest[0], contract[0] = 1, 2, 3

	if policy.IsDex(dex) {
		t.Fatal("empty dex list matched")
	}
	policy.DexPrograms = append(policy.DexPrograms, dex)
	if !policy.IsDex(dex) {
		t.Fatal("dex not recognized")
	}

	policy.AllowedDestinations = append(policy.AllowedDestinations, dest)
	if !policy.IsAllowedDestination(dest) || policy.IsAllowedDestination(dex) {
		t.Fatal("destination membership wrong")
	}

	policy.WhitelistedContracts = append(policy.WhitelistedContracts, WhitelistedContract{Contract: contract})
	if _, ok := policy.Whitelisted(contract); !ok {
		t.Fatal("whitelisted contract not found")
	}
	if _, ok := policy.Whitelisted(dex); ok {
		t.Fatal("non-whitelisted contract found")
	}
}
