// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import "testing"

func TestNilConfigHasSafeDefaults(t *testing.T) {
	var c *Config
	if c.Format() != "" {
		t.Errorf("nil Config.Format() = %q, want empty", c.Format())
	}
	if c.Debug("anything") {
		t.Errorf("nil Config.Debug() = true, want false")
	}
	if !c.PackedExponentsEnabled() {
		t.Errorf("nil Config.PackedExponentsEnabled() = false, want true")
	}
	if c.MaxPackedVars() != 8 {
		t.Errorf("nil Config.MaxPackedVars() = %d, want 8", c.MaxPackedVars())
	}
}

func TestZeroValueConfigHasSameDefaults(t *testing.T) {
	var c Config
	if c.Format() != "" {
		t.Errorf("zero-value Config.Format() = %q, want empty", c.Format())
	}
	if !c.PackedExponentsEnabled() {
		t.Errorf("zero-value Config.PackedExponentsEnabled() = false, want true")
	}
	if c.MaxPackedVars() != 8 {
		t.Errorf("zero-value Config.MaxPackedVars() = %d, want 8", c.MaxPackedVars())
	}
}

func TestSetFormatRoundTrips(t *testing.T) {
	var c Config
	c.SetFormat("%.4g")
	if got := c.Format(); got != "%.4g" {
		t.Errorf("Format() = %q, want %%.4g", got)
	}
}

func TestSetDebugTogglesIndependently(t *testing.T) {
	var c Config
	c.SetDebug("gc", true)
	c.SetDebug("parse", false)
	if !c.Debug("gc") {
		t.Errorf("Debug(gc) = false, want true")
	}
	if c.Debug("parse") {
		t.Errorf("Debug(parse) = true, want false")
	}
	if c.Debug("never-set") {
		t.Errorf("Debug(never-set) = true, want false")
	}
}

func TestSetPackedExponentsEnabledDisables(t *testing.T) {
	var c Config
	c.SetPackedExponentsEnabled(false)
	if c.PackedExponentsEnabled() {
		t.Errorf("PackedExponentsEnabled() = true after disabling, want false")
	}
	c.SetPackedExponentsEnabled(true)
	if !c.PackedExponentsEnabled() {
		t.Errorf("PackedExponentsEnabled() = false after re-enabling, want true")
	}
}

func TestSetMaxPackedVarsOverridesDefault(t *testing.T) {
	var c Config
	c.SetMaxPackedVars(3)
	if got := c.MaxPackedVars(); got != 3 {
		t.Errorf("MaxPackedVars() = %d, want 3", got)
	}
}

func TestRandomSeedIsDeterministic(t *testing.T) {
	var c1, c2 Config
	c1.RandomSeed(42)
	c2.RandomSeed(42)

	for i := 0; i < 10; i++ {
		a := c1.Random().Int63()
		b := c2.Random().Int63()
		if a != b {
			t.Fatalf("two Configs seeded with 42 diverged at draw %d: %d vs %d", i, a, b)
		}
	}
}

func TestRandomInitializesLazily(t *testing.T) {
	var c Config
	r := c.Random()
	if r == nil {
		t.Fatal("Random() returned nil")
	}
}
