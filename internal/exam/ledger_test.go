package exam

import "testing"

func TestLedgerToggle(t *testing.T) {
	l := NewLedger()

	l.Select(7, "B")
	if opt, ok := l.Get(7); !ok || opt != "B" {
		t.Fatalf("Get(7) = %q, %v; want B, true", opt, ok)
	}

	// Selecting the same option again clears the entry.
	l.Select(7, "B")
	if _, ok := l.Get(7); ok {
		t.Fatal("expected question 7 to be unanswered after re-selecting the same option")
	}
	if l.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", l.Len())
	}

	// Selecting a different option replaces, not toggles.
	l.Select(7, "B")
	l.Select(7, "C")
	if opt, _ := l.Get(7); opt != "C" {
		t.Fatalf("Get(7) = %q, want C", opt)
	}
}

func TestLedgerSnapshotIsCopy(t *testing.T) {
	l := NewLedger()
	l.Select(1, "A")

	snap := l.Snapshot()
	snap[1] = "D"
	snap[2] = "B"

	if opt, _ := l.Get(1); opt != "A" {
		t.Errorf("mutating snapshot leaked into ledger: Get(1) = %q", opt)
	}
	if _, ok := l.Get(2); ok {
		t.Error("mutating snapshot added entries to ledger")
	}
}
