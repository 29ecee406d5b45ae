package calculator

import "testing"

func TestSwingLows(t *testing.T) {
	values := []float64{5, 4, 3, 4, 5, 4, 3, 2, 3, 4}
	got := SwingLows(values, 2, 2)
	if !got[2] {
		t.Error("expected swing low at index 2")
	}
	if !got[7] {
		t.Error("expected swing low at index 7")
	}
	for _, i := range []int{0, 1, 8, 9} {
		if got[i] {
			t.Errorf("index %d lacks full context and must not be flagged", i)
		}
	}
}

func TestSwingHighs(t *testing.T) {
	values := []float64{1, 2, 3, 2, 1}
	got := SwingHighs(values, 2, 2)
	if !got[2] {
		t.Error("expected swing high at index 2")
	}
	for i, flagged := range got {
		if flagged && i != 2 {
			t.Errorf("unexpected swing high at index %d", i)
		}
	}
}

func TestSwings_ShortInput(t *testing.T) {
	got := SwingLows([]float64{1, 2}, 3, 3)
	for i, flagged := range got {
		if flagged {
			t.Errorf("index %d flagged without context", i)
		}
	}
}

func TestSwings_PlateauFlagsAllMembers(t *testing.T) {
	got := SwingLows([]float64{3, 1, 1, 3, 3}, 1, 1)
	if !got[1] || !got[2] {
		t.Errorf("expected both plateau members flagged, got %v", got)
	}
}
