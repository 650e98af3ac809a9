// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func writeTestSim(tst *testing.T, dir, name, content string) string {
	fn := filepath.Join(dir, name)
	if err := os.WriteFile(fn, []byte(content), 0644); err != nil {
		tst.Fatalf("WriteFile failed: %v", err)
	}
	return fn
}

func TestReadAppliesDefaultsForMissingFields(tst *testing.T) {
	chk.PrintTitle("ReadAppliesDefaultsForMissingFields")
	dir := tst.TempDir()
	fn := writeTestSim(tst, dir, "bubble.json", `{"delta_t": 0.5, "end_time": 10}`)
	cfg := Read(fn)
	chk.Float64(tst, "delta_t preserved from file", 1e-12, cfg.DeltaT, 0.5)
	chk.Float64(tst, "end_time preserved from file", 1e-12, cfg.EndTime, 10)
	if cfg.Horder != 4 {
		tst.Fatalf("expected default horizontal_order=4, got %d", cfg.Horder)
	}
	if cfg.Scheme != "ark2" {
		tst.Fatalf("expected default scheme=ark2, got %q", cfg.Scheme)
	}
	if cfg.EncType != "gob" {
		tst.Fatalf("expected default enctype=gob, got %q", cfg.EncType)
	}
	if cfg.Key != "bubble" {
		tst.Fatalf("expected key derived from filename 'bubble', got %q", cfg.Key)
	}
}

func TestReadPreservesExplicitEncType(tst *testing.T) {
	chk.PrintTitle("ReadPreservesExplicitEncType")
	dir := tst.TempDir()
	fn := writeTestSim(tst, dir, "wave.json", `{"enctype": "json"}`)
	cfg := Read(fn)
	if cfg.EncType != "json" {
		tst.Fatalf("expected explicit enctype=json to survive defaulting, got %q", cfg.EncType)
	}
}

func TestApplyFlagOnlyOverridesVisitedFlags(tst *testing.T) {
	chk.PrintTitle("ApplyFlagOnlyOverridesVisitedFlags")
	dir := tst.TempDir()
	fn := writeTestSim(tst, dir, "bubble.json", `{"delta_t": 0.5, "end_time": 10}`)
	cfg := Read(fn)

	var flagVals Data
	flagVals.SetDefault()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	flagVals.BindFlags(fs)
	if err := fs.Parse([]string{"-delta_t=2.0"}); err != nil {
		tst.Fatalf("Parse failed: %v", err)
	}
	fs.Visit(func(f *flag.Flag) { ApplyFlag(cfg, &flagVals, f.Name) })

	chk.Float64(tst, "delta_t overridden by explicit flag", 1e-12, cfg.DeltaT, 2.0)
	chk.Float64(tst, "end_time left untouched by unset flag", 1e-12, cfg.EndTime, 10)
}
