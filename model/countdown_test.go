package model

import "testing"

func TestCountdownExpiresExactlyOnce(t *testing.T) {
	fired := 0
	c := NewCountdown(300, func() { fired++ })

	if c.State() != CountdownRunning {
		t.Fatalf("expected new countdown to be running, got %s", c.State())
	}

	for i := 0; i < 299; i++ {
		c.Tick()
	}
	if c.State() != CountdownRunning {
		t.Fatalf("expected countdown still running at 1s left, got %s", c.State())
	}
	if fired != 0 {
		t.Fatalf("callback fired early: %d", fired)
	}

	c.Tick()
	if c.State() != CountdownExpired {
		t.Fatalf("expected expired after 300 ticks, got %s", c.State())
	}
	if c.Remaining() != 0 {
		t.Fatalf("expected 0 remaining, got %d", c.Remaining())
	}
	if fired != 1 {
		t.Fatalf("expected callback fired once, got %d", fired)
	}

	// Late ticks must stay inert.
	c.Tick()
	c.Tick()
	if fired != 1 {
		t.Fatalf("callback refired on late tick: %d", fired)
	}
	if c.Remaining() != 0 {
		t.Fatalf("remaining went below zero: %d", c.Remaining())
	}
}

func TestCountdownPauseFreezesRemaining(t *testing.T) {
	c := NewCountdown(300, nil)

	for i := 0; i < 10; i++ {
		c.Tick()
	}
	c.Pause()

	if c.State() != CountdownPaused {
		t.Fatalf("expected paused, got %s", c.State())
	}

	for i := 0; i < 5; i++ {
		c.Tick()
	}
	if c.Remaining() != 290 {
		t.Fatalf("paused countdown lost time: remaining = %d", c.Remaining())
	}

	c.Resume()
	if c.State() != CountdownRunning {
		t.Fatalf("expected running after resume, got %s", c.State())
	}

	c.Tick()
	if c.Remaining() != 289 {
		t.Fatalf("expected resume to continue from frozen value, remaining = %d", c.Remaining())
	}
}

func TestCountdownResumeOnlyFromPaused(t *testing.T) {
	c := NewCountdown(2, nil)

	c.Resume() // running, no-op
	if c.State() != CountdownRunning {
		t.Fatalf("resume while running changed state to %s", c.State())
	}

	c.Tick()
	c.Tick()
	if c.State() != CountdownExpired {
		t.Fatalf("expected expired, got %s", c.State())
	}

	c.Resume() // expired, no-op
	c.Pause()  // expired, no-op
	if c.State() != CountdownExpired {
		t.Fatalf("expired countdown left expired state: %s", c.State())
	}
}

func TestCountdownFormat(t *testing.T) {
	tests := []struct {
		remaining int
		want      string
	}{
		{300, "05:00"},
		{299, "04:59"},
		{61, "01:01"},
		{9, "00:09"},
		{0, "00:00"},
	}

	for _, tt := range tests {
		c := NewCountdown(300, nil)
		for i := 0; i < 300-tt.remaining; i++ {
			c.Tick()
		}
		if got := c.Format(); got != tt.want {
			t.Errorf("Format() at %ds = %q, want %q", tt.remaining, got, tt.want)
		}
	}
}

func TestCountdownProgressMonotone(t *testing.T) {
	c := NewCountdown(100, nil)

	if c.Progress() != 0 {
		t.Fatalf("expected 0%% at start, got %f", c.Progress())
	}

	prev := c.Progress()
	for i := 0; i < 100; i++ {
		c.Tick()
		p := c.Progress()
		if p < prev {
			t.Fatalf("progress decreased: %f -> %f", prev, p)
		}
		prev = p
	}

	if c.Progress() != 100 {
		t.Fatalf("expected 100%% at expiry, got %f", c.Progress())
	}
}

func TestCountdownStateString(t *testing.T) {
	if CountdownRunning.String() != "running" || CountdownPaused.String() != "paused" || CountdownExpired.String() != "expired" {
		t.Fatal("unexpected state strings")
	}
}
