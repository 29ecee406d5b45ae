package alert

import (
	"fmt"
	"testing"
	"time"

	"ScalpRadar/internal/model"
)

func longSignal(symbol string, score int) *model.ScalpSignal {
	return model.NewLong(symbol, score, "test", 100, 99, time.Now(), model.SessionOpening, nil)
}

func TestCapture_ThresholdAndBias(t *testing.T) {
	m := NewManager(5*time.Minute, 80, 10)

	if _, fired := m.Capture(longSignal("AAPL", 79)); fired {
		t.Error("score below threshold must not fire")
	}
	neutral := model.NewNeutral("AAPL", 95, "r", 100, time.Now(), model.SessionOpening, nil)
	if _, fired := m.Capture(neutral); fired {
		t.Error("neutral signals must not fire")
	}
	if _, fired := m.Capture(nil); fired {
		t.Error("nil signal must not fire")
	}

	a, fired := m.Capture(longSignal("AAPL", 85))
	if !fired {
		t.Fatal("expected alert to fire")
	}
	if a.ID == "" {
		t.Error("expected a generated id")
	}
}

func TestCapture_Cooldown(t *testing.T) {
	m := NewManager(5*time.Minute, 80, 10)
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	if _, fired := m.Capture(longSignal("NVDA", 90)); !fired {
		t.Fatal("first capture must fire")
	}
	now = now.Add(3 * time.Minute)
	if _, fired := m.Capture(longSignal("NVDA", 90)); fired {
		t.Error("same symbol and side inside cooldown must not fire")
	}

	// The opposite side is tracked independently.
	short := model.NewShort("NVDA", 90, "r", 100, 101, now, model.SessionOpening, nil)
	if _, fired := m.Capture(short); !fired {
		t.Error("opposite side must not share the cooldown")
	}

	now = now.Add(5 * time.Minute)
	if _, fired := m.Capture(longSignal("NVDA", 90)); !fired {
		t.Error("capture after cooldown must fire")
	}
}

func TestHistory_NewestFirstAndBounded(t *testing.T) {
	m := NewManager(0, 80, 3)
	for i := 0; i < 5; i++ {
		if _, fired := m.Capture(longSignal(fmt.Sprintf("SYM%d", i), 90)); !fired {
			t.Fatalf("capture %d did not fire", i)
		}
	}
	hist := m.History()
	if len(hist) != 3 {
		t.Fatalf("expected history capped at 3, got %d", len(hist))
	}
	if hist[0].Signal.Symbol != "SYM4" {
		t.Errorf("expected newest first, got %s", hist[0].Signal.Symbol)
	}
	if hist[2].Signal.Symbol != "SYM2" {
		t.Errorf("expected oldest retained SYM2, got %s", hist[2].Signal.Symbol)
	}
}

func TestClear(t *testing.T) {
	m := NewManager(time.Hour, 80, 10)
	if _, fired := m.Capture(longSignal("QQQ", 90)); !fired {
		t.Fatal("expected first capture to fire")
	}
	m.Clear()
	if len(m.History()) != 0 {
		t.Error("expected empty history after clear")
	}
	if _, fired := m.Capture(longSignal("QQQ", 90)); !fired {
		t.Error("clear must also reset cooldowns")
	}
}
