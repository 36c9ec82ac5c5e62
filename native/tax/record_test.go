package tax

import "testing"

const hour = int64(3600)

func TestAdvanceFirstUseAlignsToHour(t *testing.T) {
	var r Record
	r.Advance(hour*10 + 1234)
	if r.BucketStartTime != hour*10 {
		t.Fatalf("start %d, want %d", r.BucketStartTime, hour*10)
	}
	if r.CurrentBucketIndex != 0 {
		t.Fatalf("index %d, want 0", r.CurrentBucketIndex)
	}
}

func TestAdvanceWithinHourIsNoop(t *testing.T) {
	var r Record
	r.Advance(hour * 10)
	r.RecordAmount(100, true)
	r.Advance(hour*10 + 3599)
	if r.SellBuckets[0] != 100 || r.CurrentBucketIndex != 0 {
		t.Fatal("advance within the hour must not rotate")
	}
}

func TestAdvanceClearsSteppedBuckets(t *testing.T) {
	var r Record
	r.Advance(hour * 10)
	r.RecordAmount(100, true)
	r.RecordAmount(40, false)

	r.Advance(hour * 13)
	if r.CurrentBucketIndex != 3 {
		t.Fatalf("index %d, want 3", r.CurrentBucketIndex)
	}
	if r.BucketStartTime != hour*13 {
		t.Fatalf("start %d, want %d", r.BucketStartTime, hour*13)
	}
	// Old volume survives until its bucket is stepped over.
	if r.DailySellVolume() != 100 || r.DailyTransferVolume() != 40 {
		t.Fatal("volume inside the window was lost")
	}
	r.RecordAmount(7, true)
	if r.SellBuckets[3] != 7 {
		t.Fatalf("bucket 3 holds %d, want 7", r.SellBuckets[3])
	}
}

func TestAdvanceFullDayResets(t *testing.T) {
	var r Record
	r.Advance(hour * 10)
	r.RecordAmount(100, true)
	r.RecordAmount(40, false)

	r.Advance(hour*34 + 59)
	if r.DailySellVolume() != 0 || r.DailyTransferVolume() != 0 {
		t.Fatal("full-day gap must clear the ring")
	}
	if r.CurrentBucketIndex != 0 {
		t.Fatalf("index %d, want 0", r.CurrentBucketIndex)
	}
	if r.BucketStartTime != hour*34 {
		t.Fatalf("start %d, want %d", r.BucketStartTime, hour*34)
	}
}

func TestAdvanceWrapsRing(t *testing.T) {
	var r Record
	r.Advance(hour * 10)
	r.RecordAmount(100, true)
	for i := int64(1); i < 23; i++ {
		r.Advance(hour * (10 + i))
		r.RecordAmount(1, true)
	}
	if r.DailySellVolume() != 122 {
		t.Fatalf("volume %d, want 122", r.DailySellVolume())
	}
	// Stepping past the ring end wraps around and clears the original bucket.
	r.Advance(hour * 34)
	if r.CurrentBucketIndex != 0 {
		t.Fatalf("index %d, want 0", r.CurrentBucketIndex)
	}
	if r.DailySellVolume() != 22 {
		t.Fatalf("volume %d, want 22", r.DailySellVolume())
	}
}
