// Package state persists every ledger record as a JSON document in a
// key-value store. Record addresses are derived from a tag and the owning
// account, so the same record always lives at the same key.
package state

import (
	"encoding/json"
	"errors"
	"fmt"

	"veralux/core/types"
	"veralux/native/common"
	"veralux/native/governance"
	"veralux/native/migration"
	"veralux/native/multisig"
	"veralux/native/params"
	"veralux/native/presale"
	"veralux/native/staking"
	"veralux/native/tax"
	"veralux/native/treasury"
	"veralux/native/vesting"
	"veralux/storage"
)

// Record tags. Changing a tag orphans every record stored under it.
const (
	tagPolicy            = "policy"
	tagMultisig          = "multisig"
	tagPools             = "treasury/pools"
	tagWithdrawal        = "treasury/withdrawal"
	tagPendingPause      = "pending/pause"
	tagPendingMultisig   = "pending/multisig"
	tagPendingWhitelist  = "pending/whitelist"
	tagTaxRecord         = "tax/record"
	tagStaker            = "staking/staker"
	tagLPStaker          = "staking/lp"
	tagLPIndex           = "staking/lp/index"
	tagDayState          = "staking/lp/day"
	tagProposal          = "gov/proposal"
	tagVote              = "gov/vote"
	tagPresalePurchase   = "presale/purchase"
	tagPresaleVesting    = "vesting/presale"
	tagTeamVesting       = "vesting/team"
	tagFreelancerVesting = "vesting/freelancer"
	tagMigrationState    = "migration/state"
	tagMigrationRecord   = "migration/record"
)

// Manager reads and writes ledger records over a storage backend.
type Manager struct {
	db storage.Database
}

// NewManager wraps a database in a record manager.
func NewManager(db storage.Database) *Manager {
	return &Manager{db: db}
}

func (m *Manager) load(key []byte, out any) (bool, error) {
	raw, err := m.db.Get(key)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("state: decode record: %w", err)
	}
	return true, nil
}

func (m *Manager) store(key []byte, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("state: encode record: %w", err)
	}
	return m.db.Put(key, raw)
}

// Policy loads the global policy. ok is false before genesis.
func (m *Manager) Policy() (params.Policy, bool, error) {
	var p params.Policy
	ok, err := m.load(storage.RecordKey(tagPolicy), &p)
	return p, ok, err
}

// SetPolicy persists the global policy.
func (m *Manager) SetPolicy(p params.Policy) error {
	return m.store(storage.RecordKey(tagPolicy), p)
}

// Multisig loads the authority configuration.
func (m *Manager) Multisig() (multisig.Multisig, bool, error) {
	var ms multisig.Multisig
	ok, err := m.load(storage.RecordKey(tagMultisig), &ms)
	return ms, ok, err
}

// SetMultisig persists the authority configuration.
func (m *Manager) SetMultisig(ms multisig.Multisig) error {
	return m.store(storage.RecordKey(tagMultisig), ms)
}

// Pools loads the treasury pool balances.
func (m *Manager) Pools() (treasury.Pools, error) {
	var pools treasury.Pools
	_, err := m.load(storage.RecordKey(tagPools), &pools)
	return pools, err
}

// SetPools persists the treasury pool balances.
func (m *Manager) SetPools(pools treasury.Pools) error {
	return m.store(storage.RecordKey(tagPools), pools)
}

// PendingWithdrawal loads the queued treasury withdrawal.
func (m *Manager) PendingWithdrawal() (treasury.PendingWithdrawal, error) {
	var w treasury.PendingWithdrawal
	_, err := m.load(storage.RecordKey(tagWithdrawal), &w)
	return w, err
}

// SetPendingWithdrawal persists the queued treasury withdrawal.
func (m *Manager) SetPendingWithdrawal(w treasury.PendingWithdrawal) error {
	return m.store(storage.RecordKey(tagWithdrawal), w)
}

// PendingPause loads the queued pause or resume request.
func (m *Manager) PendingPause() (common.Pending[params.PauseRequest], error) {
	var p common.Pending[params.PauseRequest]
	_, err := m.load(storage.RecordKey(tagPendingPause), &p)
	return p, err
}

// SetPendingPause persists the queued pause or resume request.
func (m *Manager) SetPendingPause(p common.Pending[params.PauseRequest]) error {
	return m.store(storage.RecordKey(tagPendingPause), p)
}

// PendingMultisig loads the queued authority rotation.
func (m *Manager) PendingMultisig() (common.Pending[multisig.Multisig], error) {
	var p common.Pending[multisig.Multisig]
	_, err := m.load(storage.RecordKey(tagPendingMultisig), &p)
	return p, err
}

// SetPendingMultisig persists the queued authority rotation.
func (m *Manager) SetPendingMultisig(p common.Pending[multisig.Multisig]) error {
	return m.store(storage.RecordKey(tagPendingMultisig), p)
}

// PendingWhitelist loads the queued whitelist change.
func (m *Manager) PendingWhitelist() (common.Pending[params.WhitelistChange], error) {
	var p common.Pending[params.WhitelistChange]
	_, err := m.load(storage.RecordKey(tagPendingWhitelist), &p)
	return p, err
}

// SetPendingWhitelist persists the queued whitelist change.
func (m *Manager) SetPendingWhitelist(p common.Pending[params.WhitelistChange]) error {
	return m.store(storage.RecordKey(tagPendingWhitelist), p)
}

// TaxRecord loads a sender's transaction window.
func (m *Manager) TaxRecord(sender types.PublicKey) (tax.Record, error) {
	var r tax.Record
	_, err := m.load(storage.RecordKey(tagTaxRecord, sender[:]), &r)
	return r, err
}

// SetTaxRecord persists a sender's transaction window.
func (m *Manager) SetTaxRecord(sender types.PublicKey, r tax.Record) error {
	return m.store(storage.RecordKey(tagTaxRecord, sender[:]), r)
}

// Staker loads a user's staking position.
func (m *Manager) Staker(user types.PublicKey) (staking.Staker, bool, error) {
	var s staking.Staker
	ok, err := m.load(storage.RecordKey(tagStaker, user[:]), &s)
	return s, ok, err
}

// SetStaker persists a user's staking position.
func (m *Manager) SetStaker(user types.PublicKey, s staking.Staker) error {
	return m.store(storage.RecordKey(tagStaker, user[:]), s)
}

// LPStaker loads a user's LP position.
func (m *Manager) LPStaker(user types.PublicKey) (staking.LPStaker, bool, error) {
	var s staking.LPStaker
	ok, err := m.load(storage.RecordKey(tagLPStaker, user[:]), &s)
	return s, ok, err
}

// SetLPStaker persists a user's LP position, maintaining the distribution
// index: new positions are appended, emptied ones removed and deleted.
func (m *Manager) SetLPStaker(user types.PublicKey, s staking.LPStaker) error {
	index, err := m.LPStakerIndex()
	if err != nil {
		return err
	}
	pos := -1
	for i, key := range index {
		if key == user {
			pos = i
			break
		}
	}
	if s.Amount == 0 && s.UnclaimedRewards == 0 {
		if pos >= 0 {
			index = append(index[:pos], index[pos+1:]...)
			if err := m.store(storage.RecordKey(tagLPIndex), index); err != nil {
				return err
			}
		}
		return m.db.Delete(storage.RecordKey(tagLPStaker, user[:]))
	}
	if pos < 0 {
		index = append(index, user)
		if err := m.store(storage.RecordKey(tagLPIndex), index); err != nil {
			return err
		}
	}
	return m.store(storage.RecordKey(tagLPStaker, user[:]), s)
}

// LPStakerIndex lists every account with a live LP position, in insertion
// order. The daily distributor iterates it with a cursor.
func (m *Manager) LPStakerIndex() ([]types.PublicKey, error) {
	var index []types.PublicKey
	_, err := m.load(storage.RecordKey(tagLPIndex), &index)
	return index, err
}

// DayState loads the daily distribution cursor.
func (m *Manager) DayState() (staking.DayState, error) {
	var d staking.DayState
	_, err := m.load(storage.RecordKey(tagDayState), &d)
	return d, err
}

// SetDayState persists the daily distribution cursor.
func (m *Manager) SetDayState(d staking.DayState) error {
	return m.store(storage.RecordKey(tagDayState), d)
}

func proposalKey(id uint64) []byte {
	raw := []byte{
		byte(id >> 56), byte(id >> 48), byte(id >> 40), byte(id >> 32),
		byte(id >> 24), byte(id >> 16), byte(id >> 8), byte(id),
	}
	return storage.RecordKey(tagProposal, raw)
}

// Proposal loads a governance proposal by id.
func (m *Manager) Proposal(id uint64) (governance.Proposal, bool, error) {
	var p governance.Proposal
	ok, err := m.load(proposalKey(id), &p)
	return p, ok, err
}

// SetProposal persists a governance proposal.
func (m *Manager) SetProposal(p governance.Proposal) error {
	return m.store(proposalKey(p.ID), p)
}

// VoteRecord loads a staker's vote on a proposal.
func (m *Manager) VoteRecord(id uint64, voter types.PublicKey) (governance.VoteRecord, error) {
	var v governance.VoteRecord
	key := storage.RecordKey(tagVote, proposalKey(id), voter[:])
	_, err := m.load(key, &v)
	return v, err
}

// SetVoteRecord persists a staker's vote on a proposal.
func (m *Manager) SetVoteRecord(v governance.VoteRecord) error {
	key := storage.RecordKey(tagVote, proposalKey(v.ProposalID), v.Staker[:])
	return m.store(key, v)
}

// PresalePurchase loads a wallet's presale record.
func (m *Manager) PresalePurchase(wallet types.PublicKey) (presale.Purchase, error) {
	var p presale.Purchase
	_, err := m.load(storage.RecordKey(tagPresalePurchase, wallet[:]), &p)
	return p, err
}

// SetPresalePurchase persists a wallet's presale record.
func (m *Manager) SetPresalePurchase(wallet types.PublicKey, p presale.Purchase) error {
	return m.store(storage.RecordKey(tagPresalePurchase, wallet[:]), p)
}

// PresaleVesting loads a buyer's vesting schedule.
func (m *Manager) PresaleVesting(wallet types.PublicKey) (vesting.PresaleVesting, error) {
	var v vesting.PresaleVesting
	_, err := m.load(storage.RecordKey(tagPresaleVesting, wallet[:]), &v)
	return v, err
}

// SetPresaleVesting persists a buyer's vesting schedule.
func (m *Manager) SetPresaleVesting(wallet types.PublicKey, v vesting.PresaleVesting) error {
	return m.store(storage.RecordKey(tagPresaleVesting, wallet[:]), v)
}

// TeamVesting loads a team member's schedule.
func (m *Manager) TeamVesting(member types.PublicKey) (vesting.TeamVesting, bool, error) {
	var v vesting.TeamVesting
	ok, err := m.load(storage.RecordKey(tagTeamVesting, member[:]), &v)
	return v, ok, err
}

// SetTeamVesting persists a team member's schedule.
func (m *Manager) SetTeamVesting(member types.PublicKey, v vesting.TeamVesting) error {
	return m.store(storage.RecordKey(tagTeamVesting, member[:]), v)
}

// FreelancerVesting loads a freelancer's schedule.
func (m *Manager) FreelancerVesting(freelancer types.PublicKey) (vesting.FreelancerVesting, bool, error) {
	var v vesting.FreelancerVesting
	ok, err := m.load(storage.RecordKey(tagFreelancerVesting, freelancer[:]), &v)
	return v, ok, err
}

// SetFreelancerVesting persists a freelancer's schedule.
func (m *Manager) SetFreelancerVesting(freelancer types.PublicKey, v vesting.FreelancerVesting) error {
	return m.store(storage.RecordKey(tagFreelancerVesting, freelancer[:]), v)
}

// MigrationState loads the global migration escrow state.
func (m *Manager) MigrationState() (migration.State, error) {
	var s migration.State
	_, err := m.load(storage.RecordKey(tagMigrationState), &s)
	return s, err
}

// SetMigrationState persists the global migration escrow state.
func (m *Manager) SetMigrationState(s migration.State) error {
	return m.store(storage.RecordKey(tagMigrationState), s)
}

// MigrationRecord loads a user's migration position.
func (m *Manager) MigrationRecord(user types.PublicKey) (migration.Record, error) {
	var r migration.Record
	_, err := m.load(storage.RecordKey(tagMigrationRecord, user[:]), &r)
	return r, err
}

// SetMigrationRecord persists a user's migration position.
func (m *Manager) SetMigrationRecord(user types.PublicKey, r migration.Record) error {
	return m.store(storage.RecordKey(tagMigrationRecord, user[:]), r)
}
