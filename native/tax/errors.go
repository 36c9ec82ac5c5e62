package tax

import "errors"

var (
	// ErrPaused is returned when taxed transfers are attempted during an
	// emergency pause. Zero-amount transfers are exempt.
	ErrPaused = errors.New("tax: transfers paused")
	// ErrCooldownActive is returned when a sender transfers again within the
	// per-sender cooldown window.
	ErrCooldownActive = errors.New("tax: sender cooldown active")
	// ErrMaxSellExceeded is returned when a single sell exceeds the limit.
	ErrMaxSellExceeded = errors.New("tax: max sell transaction limit exceeded")
	// ErrDailySellExceeded is returned when the 24h sell volume would exceed
	// the daily limit.
	ErrDailySellExceeded = errors.New("tax: daily sell limit exceeded")
	// ErrMaxTransferExceeded is returned when a single transfer exceeds the
	// limit.
	ErrMaxTransferExceeded = errors.New("tax: max transfer limit exceeded")
	// ErrDailyTransferExceeded is returned when the 24h transfer volume would
	// exceed the daily limit.
	ErrDailyTransferExceeded = errors.New("tax: daily transfer limit exceeded")
	// ErrAmountTooSmallAfterTax is returned when the tax consumes the full
	// transfer amount.
	ErrAmountTooSmallAfterTax = errors.New("tax: amount too small after tax")
	// ErrCallerNotWhitelisted is returned on the whitelisted path when the
	// calling contract is not on the whitelist.
	ErrCallerNotWhitelisted = errors.New("tax: caller not whitelisted")
	// ErrInvalidDestination is returned on the whitelisted path for a
	// destination outside the allowed set.
	ErrInvalidDestination = errors.New("tax: destination not allowed")
	// ErrVersionMismatch is returned when the whitelisted contract's recorded
	// version hash no longer matches.
	ErrVersionMismatch = errors.New("tax: contract version mismatch")
)
