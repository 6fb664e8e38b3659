package analytics

import "testing"

func TestNewEventID_Format(t *testing.T) {
	id := newEventID()
	if len(id) != 36 {
		t.Fatalf("newEventID() length = %d, want 36", len(id))
	}
	for _, pos := range []int{8, 13, 18, 23} {
		if id[pos] != '-' {
			t.Errorf("newEventID() = %q, want '-' at position %d", id, pos)
		}
	}
}

func TestNewEventID_Unique(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := newEventID()
		if _, dup := seen[id]; dup {
			t.Fatalf("newEventID() produced duplicate %q", id)
		}
		seen[id] = struct{}{}
	}
}
