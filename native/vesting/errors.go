package vesting

import "errors"

var (
	// ErrNotInitialized is returned for a claim against an empty schedule.
	ErrNotInitialized = errors.New("vesting: schedule not initialized")
	// ErrNotStarted is returned when a schedule's clock has not begun.
	ErrNotStarted = errors.New("vesting: schedule not started")
	// ErrCanceled is returned for claims against a canceled schedule.
	ErrCanceled = errors.New("vesting: schedule canceled")
	// ErrUnknownMember is returned when a cancel names the wrong member.
	ErrUnknownMember = errors.New("vesting: unknown team member")
	// ErrImmediateExceedsTotal is returned when a grant's immediate payout
	// exceeds its total.
	ErrImmediateExceedsTotal = errors.New("vesting: immediate amount exceeds total")
	// ErrExceedsTotal is returned when releases would exceed the schedule
	// total.
	ErrExceedsTotal = errors.New("vesting: release exceeds schedule total")
	// ErrClaimCooldown is returned when a freelancer claims within the
	// cooldown window.
	ErrClaimCooldown = errors.New("vesting: claim cooldown not met")
)
