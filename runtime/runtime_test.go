// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runtime

import (
	"os"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/dynacore/config"
)

func newTestConfig(tst *testing.T) *config.Data {
	var cfg config.Data
	cfg.SetDefault()
	cfg.XMax, cfg.YMax = 1000, 1000
	cfg.ResX, cfg.ResY, cfg.Levels = 2, 2, 2
	cfg.Horder, cfg.Vorder = 3, 3
	cfg.DeltaT = 0.5
	cfg.OutputDeltaT = 1.0
	cfg.EndTime = 1.0
	cfg.MaxHalvings = 2
	cfg.TestCase = "bubble"
	cfg.DirOut = tst.TempDir()
	cfg.Key = "test"
	return &cfg
}

func TestRunExecutesToEndTimeAndWritesFrames(tst *testing.T) {
	chk.PrintTitle("RunExecutesToEndTimeAndWritesFrames")
	cfg := newTestConfig(tst)
	run, err := New(cfg, false)
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	if err := run.Execute(); err != nil {
		tst.Fatalf("Execute failed: %v", err)
	}
	entries, err := os.ReadDir(cfg.DirOut)
	if err != nil {
		tst.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) == 0 {
		tst.Fatalf("expected at least one output frame to be written to %q", cfg.DirOut)
	}
}

func TestNewRejectsUnknownTestCase(tst *testing.T) {
	chk.PrintTitle("NewRejectsUnknownTestCase")
	cfg := newTestConfig(tst)
	cfg.TestCase = "nonexistent"
	if _, err := New(cfg, false); err == nil {
		tst.Fatalf("expected New to reject an unknown test case")
	}
}

func TestNewRejectsUnknownScheme(tst *testing.T) {
	chk.PrintTitle("NewRejectsUnknownScheme")
	cfg := newTestConfig(tst)
	cfg.Scheme = "nonexistent"
	if _, err := New(cfg, false); err == nil {
		tst.Fatalf("expected New to reject an unknown scheme")
	}
}
