package tax

import (
	"errors"
	"testing"
	"time"

	"veralux/native/params"
)

func testPolicy() params.Policy {
	return params.DefaultPolicy(time.Unix(1_700_000_000, 0))
}

func TestRateSelection(t *testing.T) {
	policy := testPolicy()
	if got := Rate(&policy, 1000, false); got != 500 {
		t.Fatalf("base rate %d, want 500", got)
	}
	if got := Rate(&policy, 1000, true); got != 250 {
		t.Fatalf("whitelisted rate %d, want 250", got)
	}
	if got := Rate(&policy, policy.ProgressiveTaxThreshold, false); got != 1500 {
		t.Fatalf("progressive rate %d, want 1500", got)
	}
	// Whitelisting wins over the progressive threshold.
	if got := Rate(&policy, policy.ProgressiveTaxThreshold, true); got != 250 {
		t.Fatalf("whitelisted large rate %d, want 250", got)
	}
}

func TestComputeBaseRate(t *testing.T) {
	tax, err := Compute(1_000_000, 500)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if tax != 50_000 {
		t.Fatalf("tax %d, want 50000", tax)
	}
}

func TestComputeRoundsUp(t *testing.T) {
	tax, err := Compute(999, 500)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	// 999*500/10000 = 49.95 rounds to 50.
	if tax != 50 {
		t.Fatalf("tax %d, want 50", tax)
	}
}

func TestComputeDustRejected(t *testing.T) {
	if _, err := Compute(1, 500); !errors.Is(err, ErrAmountTooSmallAfterTax) {
		t.Fatalf("got %v, want ErrAmountTooSmallAfterTax", err)
	}
}

func TestSplitTaxDefaultAllocations(t *testing.T) {
	policy := testPolicy()
	split, err := SplitTax(&policy, 50_000)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	want := Split{
		Burn:        10_000,
		Treasury:    10_000,
		Liquidity:   12_000,
		LPIncentive: 3_000,
		Charity:     10_000,
		Team:        5_000,
	}
	if split != want {
		t.Fatalf("split %+v, want %+v", split, want)
	}
}

func TestSplitTaxCeilsEachPart(t *testing.T) {
	policy := testPolicy()
	split, err := SplitTax(&policy, 7)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	// 7*2000/10000 = 1.4 -> 2, 7*2400/10000 = 1.68 -> 2, 7*600/10000 = 0.42 -> 1.
	want := Split{Burn: 2, Treasury: 2, Liquidity: 2, LPIncentive: 1, Charity: 2, Team: 1}
	if split != want {
		t.Fatalf("split %+v, want %+v", split, want)
	}
}

func TestCheckLimits(t *testing.T) {
	policy := testPolicy()
	var r Record
	r.Advance(hour * 10)

	if err := CheckLimits(&policy, &r, policy.MaxSellLimit+1, true); !errors.Is(err, ErrMaxSellExceeded) {
		t.Fatalf("max sell: got %v", err)
	}
	if err := CheckLimits(&policy, &r, policy.MaxTransferLimit+1, false); !errors.Is(err, ErrMaxTransferExceeded) {
		t.Fatalf("max transfer: got %v", err)
	}

	r.RecordAmount(policy.DailySellLimit-10, true)
	if err := CheckLimits(&policy, &r, 10, true); err != nil {
		t.Fatalf("at daily limit: %v", err)
	}
	if err := CheckLimits(&policy, &r, 11, true); !errors.Is(err, ErrDailySellExceeded) {
		t.Fatalf("over daily limit: got %v", err)
	}

	r.RecordAmount(policy.DailyTransferLimit, false)
	if err := CheckLimits(&policy, &r, 1, false); !errors.Is(err, ErrDailyTransferExceeded) {
		t.Fatalf("over daily transfer: got %v", err)
	}
}
