package booking

import "testing"

func TestCanTransition(t *testing.T) {
	allowed := [][2]Status{
		{StatusPending, StatusConfirmed},
		{StatusPending, StatusCancelled},
		{StatusConfirmed, StatusCompleted},
		{StatusConfirmed, StatusCancelled},
		{StatusConfirmed, StatusNoShow},
	}

	for _, pair := range allowed {
		if err := CanTransition(pair[0], pair[1]); err != nil {
			t.Errorf("%s -> %s should be allowed: %v", pair[0], pair[1], err)
		}
	}

	rejected := [][2]Status{
		{StatusCompleted, StatusPending},
		{StatusPending, StatusCompleted},
		{StatusPending, StatusNoShow},
		{StatusCancelled, StatusConfirmed},
		{StatusNoShow, StatusCompleted},
		{StatusCompleted, StatusCancelled},
	}

	for _, pair := range rejected {
		if err := CanTransition(pair[0], pair[1]); err == nil {
			t.Errorf("%s -> %s should be rejected", pair[0], pair[1])
		}
	}
}

func TestTransitionSequence(t *testing.T) {
	// pending -> confirmed -> completed succeeds in sequence.
	cur := InitialStatus()
	for _, next := range []Status{StatusConfirmed, StatusCompleted} {
		if err := CanTransition(cur, next); err != nil {
			t.Fatalf("%s -> %s: %v", cur, next, err)
		}
		cur = next
	}
}

func TestParseStatus(t *testing.T) {
	if _, err := ParseStatus("confirmed"); err != nil {
		t.Errorf("ParseStatus(confirmed): %v", err)
	}
	if _, err := ParseStatus("done"); err == nil {
		t.Error("ParseStatus(done) expected error")
	}
}

func TestStatusActive(t *testing.T) {
	if StatusCancelled.Active() {
		t.Error("cancelled must not occupy its slot")
	}
	for _, s := range []Status{StatusPending, StatusConfirmed, StatusCompleted, StatusNoShow} {
		if !s.Active() {
			t.Errorf("%s should occupy its slot", s)
		}
	}
}
