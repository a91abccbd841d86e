package config

import "testing"

func TestPatternScheduleIsFixed(t *testing.T) {
	want := [8]byte{0x00, 0xFF, 0xAA, 0x55, 0x3D, 0xC2, 0x8E, 0x4E}
	if Pattern != want {
		t.Fatalf("pattern schedule changed: got %v, want %v", Pattern, want)
	}
}

func TestNewDefaults(t *testing.T) {
	c := New()
	if c.Passes != DefaultPasses {
		t.Fatalf("expected default passes %d, got %d", DefaultPasses, c.Passes)
	}
	if !c.Verify {
		t.Fatal("expected verify to default to true")
	}
	if c.Secure || c.Keep || c.Force || c.DryRun {
		t.Fatal("expected all other flags to default to false")
	}
}

func TestValidateRejectsNonPositivePasses(t *testing.T) {
	c := New()
	c.Passes = 0
	if err := c.Validate(); err == nil {
		t.Fatal("expected validation error for zero passes")
	}
}
