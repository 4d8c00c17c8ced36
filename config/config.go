// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds process-wide settings for the algebraic core:
// numeric print format, debug flags, a random source, and packed-exponent
// settings. The zero value holds the defaults for
// everything, mirroring the nil-receiver-safe style used throughout this
// codebase so a *Config can be passed around (including as nil) without
// every call site checking first.
package config

import (
	"math/rand"
	"time"
)

// Config holds runtime-tunable behavior of the core. The zero value is a
// usable default configuration.
type Config struct {
	format string // Printf-style format for numeric output; "" means default.

	debug map[string]bool

	source rand.Source
	random *rand.Rand

	// disablePackedExponents is true when the packed-exponent setting is
	// off; the default (zero value) means enabled.
	disablePackedExponents bool

	maxPackedVars int // variable-count ceiling for the packed fast path; 0 means use the default (8).
}

func (c *Config) init() {
	if c.random == nil {
		c.source = rand.NewSource(time.Now().UnixNano())
		c.random = rand.New(c.source)
	}
}

// Format returns the configured numeric print format, or "" for the default.
func (c *Config) Format() string {
	if c == nil {
		return ""
	}
	return c.format
}

// SetFormat sets the numeric print format.
func (c *Config) SetFormat(s string) {
	c.format = s
}

// Debug reports whether the named debug flag is set.
func (c *Config) Debug(name string) bool {
	if c == nil {
		return false
	}
	return c.debug[name]
}

// SetDebug sets or clears the named debug flag.
func (c *Config) SetDebug(name string, state bool) {
	if c.debug == nil {
		c.debug = make(map[string]bool)
	}
	c.debug[name] = state
}

// Random returns the configuration's random source, initializing it from
// the wall clock on first use.
func (c *Config) Random() *rand.Rand {
	c.init()
	return c.random
}

// RandomSeed reseeds the configuration's random source deterministically,
// for reproducible tests.
func (c *Config) RandomSeed(seed int64) {
	c.init()
	c.source.Seed(seed)
}

// PackedExponentsEnabled reports the packed-exponent setting. Default
// true. Package poly does not read it: HeapMul picks its packed path from
// the operands' variable count and degrees alone.
func (c *Config) PackedExponentsEnabled() bool {
	if c == nil {
		return true
	}
	return !c.disablePackedExponents
}

// SetPackedExponentsEnabled sets the value PackedExponentsEnabled reports.
func (c *Config) SetPackedExponentsEnabled(enabled bool) {
	c.disablePackedExponents = !enabled
}

// MaxPackedVars returns the configured variable-count ceiling for packing.
// Default 8. Package poly does not read it; its own ceiling is fixed at 8.
func (c *Config) MaxPackedVars() int {
	if c == nil || c.maxPackedVars == 0 {
		return 8
	}
	return c.maxPackedVars
}

// SetMaxPackedVars overrides the packing ceiling, mainly for tests that
// want to exercise the packed path at a smaller variable count.
func (c *Config) SetMaxPackedVars(n int) {
	c.maxPackedVars = n
}
