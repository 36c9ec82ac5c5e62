// Package tax implements the transfer tax engine: the per-sender sliding
// window rate limiter, rate selection, and the six-way split of collected
// tax.
package tax

// DayHours is the number of hourly buckets in the sliding window.
const DayHours = 24

const hourSeconds = 3600

// Record tracks one sender's recent transfer volume across a 24-hour ring of
// hourly buckets. Sells (transfers into a DEX) and ordinary transfers are
// accounted separately.
type Record struct {
	LastTxnTime           int64            `json:"lastTxnTime"`
	SellBuckets           [DayHours]uint64 `json:"sellBuckets"`
	TransferBuckets       [DayHours]uint64 `json:"transferBuckets"`
	CurrentBucketIndex    uint8            `json:"currentBucketIndex"`
	BucketStartTime       int64            `json:"bucketStartTime"`
	SellCooldownStart     int64            `json:"sellCooldownStart"`
	TransferCooldownStart int64            `json:"transferCooldownStart"`
}

// Advance rotates the bucket ring to cover the hour containing now. Buckets
// are cleared lazily: each elapsed hour zeroes the bucket it advances into,
// and a gap of a full day resets the whole ring. The window start stays
// aligned to hour boundaries.
func (r *Record) Advance(now int64) {
	if r.BucketStartTime == 0 {
		r.BucketStartTime = now - now%hourSeconds
		r.CurrentBucketIndex = 0
		return
	}
	hoursPassed := (now - r.BucketStartTime) / hourSeconds
	if hoursPassed <= 0 {
		return
	}
	if hoursPassed >= DayHours {
		r.SellBuckets = [DayHours]uint64{}
		r.TransferBuckets = [DayHours]uint64{}
		r.CurrentBucketIndex = 0
		r.BucketStartTime = now - now%hourSeconds
		return
	}
	index := int(r.CurrentBucketIndex)
	for i := int64(0); i < hoursPassed; i++ {
		index = (index + 1) % DayHours
		r.SellBuckets[index] = 0
		r.TransferBuckets[index] = 0
	}
	r.CurrentBucketIndex = uint8(index)
	r.BucketStartTime += hoursPassed * hourSeconds
}

// DailySellVolume sums the sell buckets across the window.
func (r *Record) DailySellVolume() uint64 {
	var total uint64
	for _, v := range r.SellBuckets {
		total += v
	}
	return total
}

// DailyTransferVolume sums the transfer buckets across the window.
func (r *Record) DailyTransferVolume() uint64 {
	var total uint64
	for _, v := range r.TransferBuckets {
		total += v
	}
	return total
}

// RecordAmount adds the amount to the current bucket of the matching class.
func (r *Record) RecordAmount(amount uint64, sell bool) {
	idx := int(r.CurrentBucketIndex)
	if sell {
		r.SellBuckets[idx] += amount
	} else {
		r.TransferBuckets[idx] += amount
	}
}
