package ledger

import (
	"errors"
	"testing"
	"time"

	"veralux/core/events"
	"veralux/native/params"
	"veralux/native/presale"
)

func TestBuyPresaleSettlesUSDTLeg(t *testing.T) {
	env := newEnv(t)
	buyer := acct(1)

	// 800 USDT stays under the verification threshold.
	if err := env.ledger.BuyPresale(buyer, 800); err != nil {
		t.Fatalf("buy: %v", err)
	}
	policy := env.policy(t)
	if got := env.vault.received(policy.PresaleReceiver); got != 800 {
		t.Fatalf("receiver %d, want 800", got)
	}
	if policy.PresaleTotalSold != params.Unit/2 {
		t.Fatalf("total sold %d, want %d", policy.PresaleTotalSold, params.Unit/2)
	}
	schedule, err := env.state.PresaleVesting(buyer)
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if schedule.Total != params.Unit/2 {
		t.Fatalf("vesting total %d, want %d", schedule.Total, params.Unit/2)
	}
	if !env.emitter.has(events.TypePresalePurchased) {
		t.Fatal("missing purchase event")
	}
}

func TestBuyPresaleKYCGate(t *testing.T) {
	env := newEnv(t)
	buyer := acct(1)

	if err := env.ledger.BuyPresale(buyer, 1600); !errors.Is(err, presale.ErrKYCRequired) {
		t.Fatalf("unverified large buy: got %v", err)
	}
	if err := env.ledger.SetKYCVerified(env.signers, buyer, true); err != nil {
		t.Fatalf("verify: %v", err)
	}
	if err := env.ledger.BuyPresale(buyer, 1600); err != nil {
		t.Fatalf("verified buy: %v", err)
	}
	if env.policy(t).PresaleTotalSold != params.Unit {
		t.Fatalf("total sold %d, want %d", env.policy(t).PresaleTotalSold, params.Unit)
	}
}

func TestBuyPresaleRequiresActiveWindow(t *testing.T) {
	env := newEnv(t)
	policy := env.policy(t)
	policy.PresaleActive = false
	if err := env.state.SetPolicy(policy); err != nil {
		t.Fatalf("set policy: %v", err)
	}
	if err := env.ledger.BuyPresale(acct(1), 800); !errors.Is(err, presale.ErrNotActive) {
		t.Fatalf("got %v, want ErrNotActive", err)
	}
}

func TestClaimPresaleTokensWeeklyUnlock(t *testing.T) {
	env := newEnv(t)
	buyer := acct(1)
	if err := env.ledger.SetKYCVerified(env.signers, buyer, true); err != nil {
		t.Fatalf("verify: %v", err)
	}
	if err := env.ledger.BuyPresale(buyer, 1600); err != nil {
		t.Fatalf("buy: %v", err)
	}

	// 10% unlocks at launch.
	if err := env.ledger.ClaimPresaleTokens(buyer); err != nil {
		t.Fatalf("launch claim: %v", err)
	}
	if got := env.vault.received(buyer); got != params.Unit/10 {
		t.Fatalf("launch claim %d, want %d", got, params.Unit/10)
	}

	// Another 10% per elapsed week.
	env.advance(7 * 24 * time.Hour)
	if err := env.ledger.ClaimPresaleTokens(buyer); err != nil {
		t.Fatalf("week claim: %v", err)
	}
	if got := env.vault.received(buyer); got != 2*params.Unit/10 {
		t.Fatalf("after week one %d, want %d", got, 2*params.Unit/10)
	}

	// Re-claiming without further unlocks is informational.
	env.emitter.events = nil
	if err := env.ledger.ClaimPresaleTokens(buyer); err != nil {
		t.Fatalf("empty claim: %v", err)
	}
	if !env.emitter.has(events.TypeNothingToDo) {
		t.Fatal("empty claim should emit an informational event")
	}
}
