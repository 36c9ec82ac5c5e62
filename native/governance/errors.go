package governance

import "errors"

var (
	// ErrDescriptionTooLong is returned when a proposal description exceeds
	// the cap.
	ErrDescriptionTooLong = errors.New("governance: description too long")
	// ErrTooManyValues is returned when a proposal carries more raw values
	// than any effect kind accepts.
	ErrTooManyValues = errors.New("governance: too many proposal values")
	// ErrUnknownProposal is returned for a proposal id with no record.
	ErrUnknownProposal = errors.New("governance: unknown proposal")
	// ErrInvalidKind is returned for an effect kind outside the defined set.
	ErrInvalidKind = errors.New("governance: invalid proposal kind")
	// ErrValueCount is returned when an effect's value count does not match
	// its kind.
	ErrValueCount = errors.New("governance: wrong value count for proposal kind")
	// ErrInsufficientTier is returned when a staker below tier 1 votes.
	ErrInsufficientTier = errors.New("governance: staking tier too low to vote")
	// ErrProposalClosed is returned when voting on a decided or expired
	// proposal.
	ErrProposalClosed = errors.New("governance: proposal closed")
	// ErrAlreadyExecuted is returned when executing a decided proposal.
	ErrAlreadyExecuted = errors.New("governance: proposal already executed")
	// ErrVotingNotEnded is returned when execution is attempted during the
	// voting period.
	ErrVotingNotEnded = errors.New("governance: voting period not ended")
	// ErrNoticePeriodNotMet is returned when execution is attempted before
	// the post-vote notice period has elapsed.
	ErrNoticePeriodNotMet = errors.New("governance: notice period not met")
)
