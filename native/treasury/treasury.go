// Package treasury tracks the ledger's internal sub-pool balances and the
// time-locked withdrawal workflow over the governance reserve.
package treasury

import (
	"errors"
	"fmt"

	"veralux/native/common"
)

// Pool identifies one treasury sub-pool.
type Pool uint8

const (
	PoolStaking Pool = iota
	PoolAirdrop
	PoolGovernanceReserve
	PoolMarketingFund
	PoolEmergencyFund
	PoolLiquidityIncentive
	PoolTeam
	poolCount
)

var poolNames = [poolCount]string{
	"staking",
	"airdrop",
	"governanceReserve",
	"marketingFund",
	"emergencyFund",
	"liquidityIncentive",
	"team",
}

// String returns the pool's canonical name.
func (p Pool) String() string {
	if p >= poolCount {
		return fmt.Sprintf("pool(%d)", uint8(p))
	}
	return poolNames[p]
}

var (
	// ErrUnknownPool is returned for a pool identifier outside the set.
	ErrUnknownPool = errors.New("treasury: unknown pool")
	// ErrInsufficientFunds is returned when a debit exceeds the pool balance.
	// Callers match it with errors.Is; the wrapped form names the pool.
	ErrInsufficientFunds = errors.New("treasury: insufficient pool funds")
)

// Pools holds the balances of every treasury sub-pool in base units.
type Pools struct {
	Staking            uint64 `json:"staking"`
	Airdrop            uint64 `json:"airdrop"`
	GovernanceReserve  uint64 `json:"governanceReserve"`
	MarketingFund      uint64 `json:"marketingFund"`
	EmergencyFund      uint64 `json:"emergencyFund"`
	LiquidityIncentive uint64 `json:"liquidityIncentive"`
	Team               uint64 `json:"team"`
}

func (t *Pools) balance(pool Pool) (*uint64, error) {
	switch pool {
	case PoolStaking:
		return &t.Staking, nil
	case PoolAirdrop:
		return &t.Airdrop, nil
	case PoolGovernanceReserve:
		return &t.GovernanceReserve, nil
	case PoolMarketingFund:
		return &t.MarketingFund, nil
	case PoolEmergencyFund:
		return &t.EmergencyFund, nil
	case PoolLiquidityIncentive:
		return &t.LiquidityIncentive, nil
	case PoolTeam:
		return &t.Team, nil
	default:
		return nil, ErrUnknownPool
	}
}

// Balance returns the current balance of a pool.
func (t *Pools) Balance(pool Pool) (uint64, error) {
	b, err := t.balance(pool)
	if err != nil {
		return 0, err
	}
	return *b, nil
}

// Total returns the sum across all pools.
func (t *Pools) Total() uint64 {
	return t.Staking + t.Airdrop + t.GovernanceReserve + t.MarketingFund +
		t.EmergencyFund + t.LiquidityIncentive + t.Team
}

// Credit adds amount to a pool, failing on overflow.
func (t *Pools) Credit(pool Pool, amount uint64) error {
	b, err := t.balance(pool)
	if err != nil {
		return err
	}
	next, err := common.CheckedAdd(*b, amount)
	if err != nil {
		return fmt.Errorf("treasury: credit %s: %w", pool, err)
	}
	*b = next
	return nil
}

// Debit removes amount from a pool, failing when the balance is short.
func (t *Pools) Debit(pool Pool, amount uint64) error {
	b, err := t.balance(pool)
	if err != nil {
		return err
	}
	if amount > *b {
		return fmt.Errorf("treasury: debit %s: %w", pool, ErrInsufficientFunds)
	}
	*b -= amount
	return nil
}

// Transfer moves amount between pools. Both legs are validated before any
// balance changes, so a failure leaves the pools untouched.
func (t *Pools) Transfer(from, to Pool, amount uint64) error {
	src, err := t.balance(from)
	if err != nil {
		return err
	}
	dst, err := t.balance(to)
	if err != nil {
		return err
	}
	if amount > *src {
		return fmt.Errorf("treasury: transfer from %s: %w", from, ErrInsufficientFunds)
	}
	next, err := common.CheckedAdd(*dst, amount)
	if err != nil {
		return fmt.Errorf("treasury: transfer to %s: %w", to, err)
	}
	*src -= amount
	*dst = next
	return nil
}
