// Package ledger is the public operation surface of the policy core. Every
// operation runs behind a single-flight guard, reads records through the
// state manager, validates against the domain engines, applies token effects
// through the vault, and persists mutated records last.
package ledger

import (
	"errors"
	"log/slog"
	"time"

	"veralux/core/events"
	"veralux/core/types"
	"veralux/native/common"
	"veralux/native/multisig"
	"veralux/native/params"
	"veralux/native/treasury"
	"veralux/observability/metrics"
	"veralux/state"
	"veralux/storage"
)

// TokenVault moves and destroys tokens on the host token layer. Both calls
// are assumed atomic: they either fully apply or fail without effect.
type TokenVault interface {
	Transfer(from, to types.PublicKey, amount uint64) error
	Burn(from types.PublicKey, amount uint64) error
}

var (
	// ErrNotInitialized is returned for operations before genesis.
	ErrNotInitialized = errors.New("ledger: not initialized")
	// ErrAlreadyInitialized is returned for a second genesis.
	ErrAlreadyInitialized = errors.New("ledger: already initialized")
	// ErrPaused is returned for operations blocked by an emergency pause.
	ErrPaused = errors.New("ledger: paused")
	// ErrNilVault is returned when the ledger is constructed without a vault.
	ErrNilVault = errors.New("ledger: token vault not configured")
)

// Module accounts. Tokens the ledger custodies sit under these derived
// identities on the vault, mirroring the per-concern escrow accounts of the
// original deployment.
var (
	TreasuryAccount      = moduleAccount("module/treasury")
	StakingVaultAccount  = moduleAccount("module/staking")
	LPVaultAccount       = moduleAccount("module/lp-vault")
	RewardHoldingAccount = moduleAccount("module/lp-holding")
	MigrationEscrow      = moduleAccount("module/migration")
)

func moduleAccount(tag string) types.PublicKey {
	var key types.PublicKey
	copy(key[:], storage.RecordKey(tag))
	return key
}

// Ledger coordinates the domain engines over shared state.
type Ledger struct {
	guard   common.Guard
	state   *state.Manager
	vault   TokenVault
	emitter events.Emitter
	logger  *slog.Logger
	metrics *metrics.Metrics
	now     func() time.Time
	slot    func() uint64
}

// NewLedger wires a ledger over a state manager and token vault.
func NewLedger(st *state.Manager, vault TokenVault) (*Ledger, error) {
	if vault == nil {
		return nil, ErrNilVault
	}
	return &Ledger{
		state:   st,
		vault:   vault,
		emitter: events.NoopEmitter{},
		logger:  slog.Default(),
		now:     time.Now,
		slot:    func() uint64 { return 0 },
	}, nil
}

// SetEmitter routes ledger events to the given emitter.
func (l *Ledger) SetEmitter(emitter events.Emitter) {
	if emitter == nil {
		emitter = events.NoopEmitter{}
	}
	l.emitter = emitter
}

// SetLogger replaces the ledger's logger.
func (l *Ledger) SetLogger(logger *slog.Logger) {
	if logger != nil {
		l.logger = logger
	}
}

// SetMetrics attaches operation counters.
func (l *Ledger) SetMetrics(m *metrics.Metrics) { l.metrics = m }

// SetNowFunc overrides the wall clock, used by tests.
func (l *Ledger) SetNowFunc(now func() time.Time) {
	if now != nil {
		l.now = now
	}
}

// SetSlotFunc overrides the slot source for slot-delayed withdrawals.
func (l *Ledger) SetSlotFunc(slot func() uint64) {
	if slot != nil {
		l.slot = slot
	}
}

// run executes one guarded operation and records its outcome.
func (l *Ledger) run(op string, fn func() error) error {
	release, err := l.guard.Acquire()
	if err != nil {
		l.metrics.Observe(op, err)
		return err
	}
	defer release()

	err = fn()
	l.metrics.Observe(op, err)
	if err != nil {
		l.logger.Warn("ledger operation failed", "op", op, "error", err)
	}
	return err
}

// loadPolicy fetches the policy, enforcing genesis and optionally the pause
// gate.
func (l *Ledger) loadPolicy(gatePause bool) (params.Policy, error) {
	policy, ok, err := l.state.Policy()
	if err != nil {
		return params.Policy{}, err
	}
	if !ok {
		return params.Policy{}, ErrNotInitialized
	}
	if gatePause && policy.Paused {
		return params.Policy{}, ErrPaused
	}
	return policy, nil
}

// requireAuthority validates a privileged call's signers against the stored
// multisig.
func (l *Ledger) requireAuthority(signers []*types.PublicKey) (multisig.Multisig, error) {
	ms, _, err := l.state.Multisig()
	if err != nil {
		return multisig.Multisig{}, err
	}
	if err := ms.ValidateSigners(signers); err != nil {
		return multisig.Multisig{}, err
	}
	return ms, nil
}

// Initialize seeds the ledger: authority, policy, and the treasury pool
// split of the reserve. It can run once.
func (l *Ledger) Initialize(ms multisig.Multisig, policy params.Policy) error {
	return l.run("initialize", func() error {
		if _, ok, err := l.state.Policy(); err != nil {
			return err
		} else if ok {
			return ErrAlreadyInitialized
		}
		// An empty owner set is the single-operator bootstrap mode; a real
		// deployment configures owners before genesis.
		if len(ms.Owners) > 0 {
			if err := ms.Validate(); err != nil {
				return err
			}
		}
		policy.PresaleActive = true
		if err := policy.Validate(); err != nil {
			return err
		}

		pools := treasury.Pools{
			Staking:           params.TreasuryReserve / 100 * params.PoolPctStaking,
			Airdrop:           params.TreasuryReserve / 100 * params.PoolPctAirdrop,
			GovernanceReserve: params.TreasuryReserve / 100 * params.PoolPctGovernance,
			MarketingFund:     params.TreasuryReserve / 100 * params.PoolPctMarketing,
			EmergencyFund:     params.TreasuryReserve / 100 * params.PoolPctEmergency,
			Team:              params.TreasuryReserve / 100 * params.PoolPctTeam,
		}

		if err := l.state.SetMultisig(ms); err != nil {
			return err
		}
		if err := l.state.SetPools(pools); err != nil {
			return err
		}
		if err := l.state.SetPolicy(policy); err != nil {
			return err
		}
		l.logger.Info("ledger initialized",
			"owners", len(ms.Owners),
			"threshold", ms.Threshold,
			"launch", policy.LaunchTimestamp)
		return nil
	})
}
