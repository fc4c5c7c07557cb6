package history_repo

import "testing"

func TestHistoryRepo_Ring(t *testing.T) {
	r := NewRoundHistoryRepository(3)

	for _, m := range []float64{1.10, 2.20, 3.30, 4.40} {
		r.Append(m)
	}

	recent := r.Recent(10)
	if len(recent) != 3 {
		t.Fatalf("recent len %d, want 3", len(recent))
	}
	// Самый старый вытеснен, новые в конце
	want := []float64{2.20, 3.30, 4.40}
	for i := range want {
		if recent[i] != want[i] {
			t.Errorf("recent[%d] = %.2f, want %.2f", i, recent[i], want[i])
		}
	}

	if r.TotalRounds() != 4 {
		t.Errorf("total %d, want 4", r.TotalRounds())
	}
}

func TestHistoryRepo_RecentSubset(t *testing.T) {
	r := NewRoundHistoryRepository(5)
	for _, m := range []float64{1.5, 2.5, 3.5} {
		r.Append(m)
	}

	recent := r.Recent(2)
	if len(recent) != 2 || recent[0] != 2.5 || recent[1] != 3.5 {
		t.Errorf("recent(2) = %v, want [2.5 3.5]", recent)
	}

	if got := r.Recent(0); len(got) != 3 {
		t.Errorf("recent(0) len %d, want all 3", len(got))
	}
}
