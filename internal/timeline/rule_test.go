package timeline

import "testing"

func TestRuleSecondsToFrames(t *testing.T) {
	c := NewRuleCell(1, 2, 4, 2, false, 24)
	if c.OffFrames != 96 || c.OnFrames != 48 {
		t.Errorf("expected 96/48 frames, got %d/%d", c.OffFrames, c.OnFrames)
	}
}

func TestRuleToggleFiresEarly(t *testing.T) {
	// offFrames=48, onFrames=24, starting off: on at local frame 47,
	// then off again at the on-phase's frame 23 boundary.
	c := RuleCell{OffFrames: 48, OnFrames: 24}

	on := false
	for f := 0; f < 47; f++ {
		on = c.advance(on, f)
		if on {
			t.Fatalf("switched on too early at frame %d", f)
		}
	}
	on = c.advance(on, 47)
	if !on {
		t.Fatal("expected switch on at frame 47")
	}

	// On-phase: frames 48..70 stay on, frame 71 (71 mod 24 == 23) drops.
	for f := 48; f < 71; f++ {
		on = c.advance(on, f)
		if !on {
			t.Fatalf("switched off too early at frame %d", f)
		}
	}
	on = c.advance(on, 71)
	if on {
		t.Fatal("expected switch off at frame 71")
	}
}

func TestRuleOffCheckSeesOnCheckResult(t *testing.T) {
	// Both toggle checks run in order within one frame: a cell whose
	// on-phase ends exactly when the off-phase is at its last index
	// flips off and straight back on.
	c := RuleCell{OffFrames: 4, OnFrames: 4}
	if got := c.advance(true, 3); !got {
		t.Error("expected off-check to re-raise the switch in the same frame")
	}
}

func TestRuleNoDriftLongRun(t *testing.T) {
	// Toggles may only ever fire at frames satisfying the mod condition
	// of the phase being left. 10k+ frames, no accumulation anywhere.
	c := RuleCell{OffFrames: 96, OnFrames: 72}

	on := false
	for f := 0; f < 12000; f++ {
		next := c.advance(on, f)
		if next != on {
			switch {
			case on && !next:
				if f%c.OnFrames != c.OnFrames-1 {
					t.Fatalf("off-toggle at frame %d violates phase", f)
				}
			case !on && next:
				if f%c.OffFrames != c.OffFrames-1 {
					t.Fatalf("on-toggle at frame %d violates phase", f)
				}
			}
		}
		on = next
	}
}

func TestRuleValidate(t *testing.T) {
	tests := []struct {
		name    string
		off, on int
		wantErr bool
	}{
		{"both fine", 48, 24, false},
		{"minimum", 2, 2, false},
		{"one-frame on", 48, 1, true},
		{"one-frame off", 1, 24, true},
		{"zero", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := RuleCell{OffFrames: tt.off, OnFrames: tt.on}
			err := c.validate()
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
