// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestIsCategoryMatchesWrappedError(tst *testing.T) {
	chk.PrintTitle("IsCategoryMatchesWrappedError")
	err := fmt.Errorf("step failed: %w", New(Solver, "JFNK did not converge after %d iterations", 20))
	if !IsCategory(err, Solver) {
		tst.Fatalf("expected err to carry the Solver category")
	}
	if IsCategory(err, IO) {
		tst.Fatalf("expected err not to carry the IO category")
	}
}

func TestWrapPreservesCauseForUnwrap(tst *testing.T) {
	chk.PrintTitle("WrapPreservesCauseForUnwrap")
	cause := errors.New("disk full")
	err := Wrap(IO, cause, "cannot write frame")
	if !errors.Is(err, cause) {
		tst.Fatalf("expected errors.Is to find the wrapped cause")
	}
}

func TestFatalPanics(tst *testing.T) {
	chk.PrintTitle("FatalPanics")
	defer func() {
		if r := recover(); r == nil {
			tst.Fatalf("expected Fatal to panic")
		}
	}()
	Fatal(Configuration, "missing required field %q", "delta_t")
}
