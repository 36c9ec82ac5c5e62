package ledger

import (
	"errors"
	"testing"
	"time"

	"veralux/core/types"
	"veralux/native/common"
	"veralux/native/multisig"
	"veralux/native/params"
	"veralux/native/treasury"
)

func TestPauseTimeLock(t *testing.T) {
	env := newEnv(t)

	if err := env.ledger.InitiatePause(env.signers, "exploit under investigation"); err != nil {
		t.Fatalf("initiate: %v", err)
	}
	env.advance(time.Hour)
	if err := env.ledger.ConfirmPause(); !errors.Is(err, common.ErrTimeLockNotMet) {
		t.Fatalf("one hour in: got %v", err)
	}
	env.advance(23*time.Hour + time.Second)
	if err := env.ledger.ConfirmPause(); err != nil {
		t.Fatalf("past delay: %v", err)
	}
	policy := env.policy(t)
	if !policy.Paused || policy.PauseReason != "exploit under investigation" {
		t.Fatalf("policy %+v", policy)
	}
	if err := env.ledger.InitiatePause(env.signers, "again"); !errors.Is(err, ErrAlreadyPaused) {
		t.Fatalf("double pause: got %v", err)
	}
}

func TestResumeLiftsPause(t *testing.T) {
	env := newEnv(t)
	pauseFor(t, env, "maintenance")

	if err := env.ledger.InitiateResume(env.signers); err != nil {
		t.Fatalf("initiate resume: %v", err)
	}
	env.advance(24*time.Hour + time.Second)
	if err := env.ledger.ConfirmResume(); err != nil {
		t.Fatalf("confirm resume: %v", err)
	}
	policy := env.policy(t)
	if policy.Paused || policy.PauseReason != "" {
		t.Fatalf("policy %+v", policy)
	}
	if err := env.ledger.ConfirmResume(); !errors.Is(err, ErrNotPaused) {
		t.Fatalf("double resume: got %v", err)
	}
}

func TestPauseRequiresAuthority(t *testing.T) {
	env := newEnv(t)
	outsider := acct(9)
	err := env.ledger.InitiatePause([]*types.PublicKey{&outsider, &env.owners[0]}, "x")
	if !errors.Is(err, multisig.ErrSignerNotOwner) {
		t.Fatalf("got %v, want ErrSignerNotOwner", err)
	}
}

func TestMultisigRotation(t *testing.T) {
	env := newEnv(t)
	next := multisig.Multisig{
		Owners:    []types.PublicKey{acct(0xB1), acct(0xB2), acct(0xB3)},
		Threshold: 2,
	}
	if err := env.ledger.InitiateSetMultisig(env.signers, next); err != nil {
		t.Fatalf("initiate: %v", err)
	}
	env.advance(24*time.Hour + time.Second)
	if err := env.ledger.ConfirmSetMultisig(); err != nil {
		t.Fatalf("confirm: %v", err)
	}

	// The old signer set no longer authorizes privileged calls.
	err := env.ledger.InitiatePause(env.signers, "x")
	if !errors.Is(err, multisig.ErrSignerNotOwner) {
		t.Fatalf("stale signers: got %v", err)
	}
}

func TestMultisigRotationValidatesUpFront(t *testing.T) {
	env := newEnv(t)
	bad := multisig.Multisig{Owners: []types.PublicKey{acct(0xB1)}, Threshold: 2}
	if err := env.ledger.InitiateSetMultisig(env.signers, bad); !errors.Is(err, multisig.ErrInvalidConfig) {
		t.Fatalf("got %v, want ErrInvalidConfig", err)
	}
}

func TestSmallWithdrawalSettlesImmediately(t *testing.T) {
	env := newEnv(t)
	recipient := acct(7)

	if err := env.ledger.InitiateWithdrawal(env.signers, recipient, 1000); err != nil {
		t.Fatalf("initiate: %v", err)
	}
	if err := env.ledger.CompleteWithdrawal(env.signers); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if got := env.vault.received(recipient); got != 1000 {
		t.Fatalf("received %d, want 1000", got)
	}
	pools, err := env.state.Pools()
	if err != nil {
		t.Fatalf("pools: %v", err)
	}
	if pools.GovernanceReserve != params.TreasuryReserve/100*16-1000 {
		t.Fatalf("reserve %d", pools.GovernanceReserve)
	}
}

func TestLargeWithdrawalSlotDelay(t *testing.T) {
	env := newEnv(t)
	recipient := acct(7)
	amount := params.TotalSupply/200 + 1

	if err := env.ledger.InitiateWithdrawal(env.signers, recipient, amount); err != nil {
		t.Fatalf("initiate: %v", err)
	}
	if err := env.ledger.CompleteWithdrawal(env.signers); !errors.Is(err, treasury.ErrWithdrawalLocked) {
		t.Fatalf("immediate complete: got %v", err)
	}
	env.slot = params.WithdrawalDelaySlots
	if err := env.ledger.CompleteWithdrawal(env.signers); err != nil {
		t.Fatalf("after delay: %v", err)
	}
	if got := env.vault.received(recipient); got != amount {
		t.Fatalf("received %d, want %d", got, amount)
	}
}

func TestWithdrawalChecksReserve(t *testing.T) {
	env := newEnv(t)
	err := env.ledger.InitiateWithdrawal(env.signers, acct(7), params.TreasuryReserve)
	if !errors.Is(err, treasury.ErrInsufficientFunds) {
		t.Fatalf("got %v, want ErrInsufficientFunds", err)
	}
}

func TestAirdropDebitsPool(t *testing.T) {
	env := newEnv(t)
	winners := []Payout{
		{Recipient: acct(1), Amount: 100},
		{Recipient: acct(2), Amount: 200},
	}
	if err := env.ledger.Airdrop(env.signers, winners); err != nil {
		t.Fatalf("airdrop: %v", err)
	}
	pools, err := env.state.Pools()
	if err != nil {
		t.Fatalf("pools: %v", err)
	}
	if pools.Airdrop != params.TreasuryReserve/100*8-300 {
		t.Fatalf("airdrop pool %d", pools.Airdrop)
	}
	if env.vault.received(acct(1)) != 100 || env.vault.received(acct(2)) != 200 {
		t.Fatal("winners not paid")
	}
}

func TestAirdropRecipientCap(t *testing.T) {
	env := newEnv(t)
	winners := make([]Payout, params.MaxAirdropRecipients+1)
	for i := range winners {
		winners[i] = Payout{Recipient: acct(byte(i + 1)), Amount: 1}
	}
	if err := env.ledger.Airdrop(env.signers, winners); !errors.Is(err, ErrTooManyRecipients) {
		t.Fatalf("got %v, want ErrTooManyRecipients", err)
	}
}

func TestTransferBetweenPools(t *testing.T) {
	env := newEnv(t)
	if err := env.ledger.TransferBetweenPools(env.signers, treasury.PoolEmergencyFund, treasury.PoolMarketingFund, 500); err != nil {
		t.Fatalf("transfer: %v", err)
	}
	pools, err := env.state.Pools()
	if err != nil {
		t.Fatalf("pools: %v", err)
	}
	if pools.EmergencyFund != params.TreasuryReserve/100*5-500 {
		t.Fatalf("emergency %d", pools.EmergencyFund)
	}
	if pools.MarketingFund != params.TreasuryReserve/100*18+500 {
		t.Fatalf("marketing %d", pools.MarketingFund)
	}
}

func TestUpdateDexPrograms(t *testing.T) {
	env := newEnv(t)
	next := []types.PublicKey{acct(0xE1), acct(0xE2)}
	if err := env.ledger.UpdateDexPrograms(env.signers, next); err != nil {
		t.Fatalf("update: %v", err)
	}
	policy := env.policy(t)
	if !policy.IsDex(acct(0xE1)) || policy.IsDex(acct(0xD1)) {
		t.Fatal("dex registry not replaced")
	}
}

func TestUpdateGlobals(t *testing.T) {
	env := newEnv(t)
	before := env.policy(t)

	update := GlobalUpdate{
		LaunchTimestamp: before.LaunchTimestamp + day,
		CharityWallet:   acct(0xF1),
	}
	if err := env.ledger.UpdateGlobals(env.signers, update); err != nil {
		t.Fatalf("update: %v", err)
	}
	policy := env.policy(t)
	if policy.LaunchTimestamp != before.LaunchTimestamp+day {
		t.Fatalf("launch %d, want %d", policy.LaunchTimestamp, before.LaunchTimestamp+day)
	}
	if policy.CharityWallet != acct(0xF1) {
		t.Fatal("charity wallet not replaced")
	}
	// Zero keys leave the remaining fields alone.
	if policy.TeamWallet != before.TeamWallet || policy.PresaleReceiver != before.PresaleReceiver {
		t.Fatal("untouched fields changed")
	}

	outsider := acct(9)
	err := env.ledger.UpdateGlobals([]*types.PublicKey{&outsider, &env.owners[0]}, update)
	if !errors.Is(err, multisig.ErrSignerNotOwner) {
		t.Fatalf("outsider update: got %v", err)
	}
}

func TestWhitelistRemoval(t *testing.T) {
	env := newEnv(t)
	contract := acct(3)
	whitelist(t, env, contract)

	if err := env.ledger.RemoveWhitelistedContract(env.signers, contract); err != nil {
		t.Fatalf("queue removal: %v", err)
	}
	env.advance(72*time.Hour + time.Second)
	if err := env.ledger.ConfirmWhitelistChange(); err != nil {
		t.Fatalf("confirm removal: %v", err)
	}
	policy := env.policy(t)
	if _, ok := policy.Whitelisted(contract); ok {
		t.Fatal("contract still whitelisted")
	}
}
