package governance

import "testing"

func tally(t *testing.T, votesFor, votesAgainst, totalPower uint64) uint8 {
	t.Helper()
	p := Proposal{VotesFor: votesFor, VotesAgainst: votesAgainst}
	status, err := p.Tally(totalPower)
	if err != nil {
		t.Fatalf("tally: %v", err)
	}
	return status
}

func TestTallyZeroTotalPowerRejects(t *testing.T) {
	if got := tally(t, 100, 0, 0); got != StatusRejected {
		t.Fatalf("status %d, want rejected", got)
	}
}

func TestTallyApproval(t *testing.T) {
	// Total power 1000: quorum 300, threshold 200.
	if got := tally(t, 300, 0, 1000); got != StatusApproved {
		t.Fatalf("unanimous quorum: status %d, want approved", got)
	}
}

func TestTallyQuorumGate(t *testing.T) {
	// 299 of 1000 participating misses the 30% quorum.
	if got := tally(t, 299, 0, 1000); got != StatusRejected {
		t.Fatalf("status %d, want rejected", got)
	}
}

func TestTallyMajorityGate(t *testing.T) {
	// 400 of 800 cast in favor is 50%, below the 51% approval line.
	if got := tally(t, 400, 400, 1000); got != StatusRejected {
		t.Fatalf("even split: status %d, want rejected", got)
	}
	// 408 of 800 meets ceil(800*51/100) = 408.
	if got := tally(t, 408, 392, 1000); got != StatusApproved {
		t.Fatalf("51 percent: status %d, want approved", got)
	}
}

func TestTallyThresholdGate(t *testing.T) {
	// Quorum and majority pass, but 199 in favor misses 20% of 1000.
	if got := tally(t, 199, 101, 1000); got != StatusRejected {
		t.Fatalf("status %d, want rejected", got)
	}
	if got := tally(t, 200, 100, 1000); got != StatusApproved {
		t.Fatalf("at threshold: status %d, want approved", got)
	}
}
