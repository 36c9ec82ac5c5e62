// Package vesting implements the three vesting programs: presale buyers on
// a weekly curve from launch, team members on a monthly curve with a cliff,
// and freelancers on milestone releases behind a claim cooldown.
package vesting

import (
	"veralux/core/types"
	"veralux/native/common"
	"veralux/native/params"
)

const (
	daySeconds   = 86_400
	weekSeconds  = 7 * daySeconds
	monthSeconds = 30 * daySeconds

	// TeamClaimCap bounds one team vesting claim.
	TeamClaimCap uint64 = 20_000_000 * params.Unit
	// FreelancerClaimCap bounds one freelancer claim.
	FreelancerClaimCap uint64 = 500_000 * params.Unit
	// FreelancerClaimCooldown spaces freelancer claims.
	FreelancerClaimCooldown int64 = 3 * daySeconds
)

// PresaleVesting tracks one presale buyer's allocation. Tokens unlock 10%
// at launch plus 10% per elapsed week.
type PresaleVesting struct {
	Total   uint64 `json:"total"`
	Claimed uint64 `json:"claimed"`
}

// Claimable returns the amount unlocked but not yet claimed at now, for a
// schedule anchored at launch.
func (v *PresaleVesting) Claimable(launch, now int64) (uint64, error) {
	if v.Total == 0 {
		return 0, ErrNotInitialized
	}
	if now < launch {
		return 0, ErrNotStarted
	}
	weeks := uint64((now - launch) / weekSeconds)
	pct := 10 + 10*weeks
	if pct > 100 {
		pct = 100
	}
	vested, err := common.MulDiv(v.Total, pct, 100)
	if err != nil {
		return 0, err
	}
	return common.CheckedSub(vested, v.Claimed)
}

// Claim moves the currently claimable amount to claimed and returns it. A
// zero return with nil error means nothing was unlocked.
func (v *PresaleVesting) Claim(launch, now int64) (uint64, error) {
	claimable, err := v.Claimable(launch, now)
	if err != nil || claimable == 0 {
		return 0, err
	}
	v.Claimed += claimable
	return claimable, nil
}

// TeamVesting tracks one team member's schedule. Nothing unlocks for the
// first two months; from month three, 10% per elapsed month.
type TeamVesting struct {
	Member    types.PublicKey `json:"member"`
	Total     uint64          `json:"total"`
	Claimed   uint64          `json:"claimed"`
	StartTime int64           `json:"startTime"`
	Canceled  bool            `json:"canceled"`
}

// Grant resets the schedule. The immediate portion is paid out at once and
// only the remainder vests; the returned value is the immediate payout.
func (v *TeamVesting) Grant(member types.PublicKey, total, immediate uint64, now int64) (uint64, error) {
	if immediate > total {
		return 0, ErrImmediateExceedsTotal
	}
	*v = TeamVesting{
		Member:    member,
		Total:     total - immediate,
		StartTime: now,
	}
	return immediate, nil
}

// Cancel freezes all future unlocks. The named member must match the
// schedule.
func (v *TeamVesting) Cancel(member types.PublicKey) error {
	if v.Member != member {
		return ErrUnknownMember
	}
	v.Canceled = true
	return nil
}

// Claimable returns the unlocked, unclaimed amount at now, capped per call.
func (v *TeamVesting) Claimable(now int64) (uint64, error) {
	if v.Canceled {
		return 0, ErrCanceled
	}
	if now < v.StartTime {
		return 0, ErrNotStarted
	}
	months := uint64((now - v.StartTime) / monthSeconds)
	var pct uint64
	if months >= 3 {
		pct = 10 * (months - 2)
		if pct > 100 {
			pct = 100
		}
	}
	vested, err := common.MulDiv(v.Total, pct, 100)
	if err != nil {
		return 0, err
	}
	claimable, err := common.CheckedSub(vested, v.Claimed)
	if err != nil {
		return 0, err
	}
	if claimable > TeamClaimCap {
		claimable = TeamClaimCap
	}
	return claimable, nil
}

// Claim moves the currently claimable amount to claimed and returns it.
func (v *TeamVesting) Claim(now int64) (uint64, error) {
	claimable, err := v.Claimable(now)
	if err != nil || claimable == 0 {
		return 0, err
	}
	v.Claimed += claimable
	return claimable, nil
}

// FreelancerVesting tracks milestone-based compensation. The authority
// releases portions of the total; the freelancer claims released funds
// behind a cooldown and per-claim cap.
type FreelancerVesting struct {
	Freelancer    types.PublicKey `json:"freelancer"`
	Total         uint64          `json:"total"`
	Released      uint64          `json:"released"`
	Claimed       uint64          `json:"claimed"`
	StartTime     int64           `json:"startTime"`
	LastClaimTime int64           `json:"lastClaimTime"`
}

// Grant resets the schedule with a new total.
func (v *FreelancerVesting) Grant(freelancer types.PublicKey, total uint64, now int64) {
	*v = FreelancerVesting{
		Freelancer:    freelancer,
		Total:         total,
		StartTime:     now,
		LastClaimTime: now,
	}
}

// Release unlocks a milestone amount for claiming.
func (v *FreelancerVesting) Release(amount uint64) error {
	released, err := common.CheckedAdd(v.Released, amount)
	if err != nil {
		return err
	}
	if released > v.Total {
		return ErrExceedsTotal
	}
	v.Released = released
	return nil
}

// Claim pays out released funds up to the per-claim cap. A zero return with
// nil error means nothing was available.
func (v *FreelancerVesting) Claim(now int64) (uint64, error) {
	if now-v.LastClaimTime < FreelancerClaimCooldown {
		return 0, ErrClaimCooldown
	}
	available, err := common.CheckedSub(v.Released, v.Claimed)
	if err != nil {
		return 0, err
	}
	if available > FreelancerClaimCap {
		available = FreelancerClaimCap
	}
	if available == 0 {
		return 0, nil
	}
	v.Claimed += available
	v.LastClaimTime = now
	return available, nil
}
