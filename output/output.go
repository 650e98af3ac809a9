// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package output writes simulation frames to disk: per variable, a 3D real
// array in (k,j,i) order plus axis metadata (§6 "Output record"), encoded
// the way the teacher's fem.Domain.SaveSol/SaveIvs encode state to a
// buffered gob (or json) stream before a single file write.
package output

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	goio "io"
	"os"
	"path"

	"github.com/cpmech/gosl/io"

	"github.com/cpmech/dynacore/dynerr"
	"github.com/cpmech/dynacore/eqset"
	"github.com/cpmech/dynacore/grid"
)

// Frame is one output record (§6 "Output record"): every component of one
// state slot, sampled on the node grid, plus the axis metadata needed to
// reconstruct physical coordinates without the originating Grid.
type Frame struct {
	Time   float64
	XEdges []float64
	YEdges []float64
	ZNodes []float64 // representative column's physical height per level

	// Vars[component name][k][j][i], one array per patch in Patches order
	Vars    map[string][][][][]float64
	NA, NB  []int // per-patch horizontal extents, for decoding
	PatchId []int
}

// componentNames mirrors eqset.Component's declaration order; used as the
// stable key set of Frame.Vars.
var componentNames = [...]string{eqset.Rho: "rho", eqset.U: "u", eqset.V: "v", eqset.Theta: "rhotheta", eqset.W: "rhow"}

// Encoder defines encoders; e.g. gob or json (matches the teacher's
// fem.Encoder/fem.Decoder factory pair).
type Encoder interface {
	Encode(e interface{}) error
}

// Decoder defines decoders; e.g. gob or json
type Decoder interface {
	Decode(e interface{}) error
}

func getEncoder(w goio.Writer, enctype string) Encoder {
	if enctype == "json" {
		return json.NewEncoder(w)
	}
	return gob.NewEncoder(w)
}

func getDecoder(r goio.Reader, enctype string) Decoder {
	if enctype == "json" {
		return json.NewDecoder(r)
	}
	return gob.NewDecoder(r)
}

// Config bundles the output directory and encoding options.
type Config struct {
	OutputDir string
	FnKey     string
	EncType   string // "gob" (default) or "json"
}

// Writer samples named state slots off a Grid into Frames and persists them
// (§6 "Output record", §4.9 grounded on out/out.go's result sampler).
type Writer struct {
	Grid *grid.Grid
	Cfg  Config
}

// New returns a Writer bound to g, creating the output directory.
func New(g *grid.Grid, cfg Config) (*Writer, error) {
	if cfg.EncType != "json" {
		cfg.EncType = "gob"
	}
	if err := os.MkdirAll(cfg.OutputDir, 0777); err != nil {
		return nil, dynerr.Wrap(dynerr.IO, err, "output: cannot create output directory %q", cfg.OutputDir)
	}
	return &Writer{Grid: g, Cfg: cfg}, nil
}

// Sample builds one Frame from slotName at time t, optionally subtracting
// each patch's reference state (§6 "Reference state is subtracted on
// request").
func (o *Writer) Sample(slotName string, t float64, subtractReference bool) *Frame {
	f := &Frame{Time: t, Vars: make(map[string][][][][]float64)}
	for c := eqset.Component(0); c < eqset.NComponents; c++ {
		f.Vars[componentNames[c]] = make([][][][]float64, len(o.Grid.Patches))
	}
	for pi, p := range o.Grid.Patches {
		slot := p.Slot(slotName)
		var ref *grid.StateSlot
		if subtractReference {
			ref = p.RefStateSlot()
		}
		f.NA = append(f.NA, p.NA)
		f.NB = append(f.NB, p.NB)
		f.PatchId = append(f.PatchId, p.Box.Id)
		if pi == 0 {
			f.XEdges = []float64{p.X[0][0], p.X[p.NA-1][0]}
			f.YEdges = []float64{p.Y[0][0], p.Y[0][p.NB-1]}
			f.ZNodes = make([]float64, len(p.ZNode[0][0]))
			for k := range f.ZNodes {
				f.ZNodes[k] = p.ZNode[0][0][k]
			}
		}
		for c := eqset.Component(0); c < eqset.NComponents; c++ {
			arr := sampleComponent(slot.Node[c], ref, c)
			f.Vars[componentNames[c]][pi] = arr
		}
	}
	return f
}

func sampleComponent(field [][][]float64, ref *grid.StateSlot, c eqset.Component) [][][]float64 {
	if ref == nil {
		out := make([][][]float64, len(field))
		for k := range field {
			out[k] = cloneMat(field[k])
		}
		return out
	}
	out := make([][][]float64, len(field))
	for k := range field {
		out[k] = subMat(field[k], ref.Node[c][k])
	}
	return out
}

// cloneMat copies an [i][j] slice into [j][i] order
func cloneMat(a [][]float64) [][]float64 {
	out := make([][]float64, len(a[0]))
	for j := range out {
		out[j] = make([]float64, len(a))
		for i := range a {
			out[j][i] = a[i][j]
		}
	}
	return out
}

// subMat returns a-b, taking [i][j] inputs to a [j][i] result
func subMat(a, b [][]float64) [][]float64 {
	out := make([][]float64, len(a[0]))
	for j := range out {
		out[j] = make([]float64, len(a))
		for i := range a {
			out[j][i] = a[i][j] - b[i][j]
		}
	}
	return out
}

// Write encodes f and saves it under the configured output directory, named
// by the frame index (§6 "per frame").
func (o *Writer) Write(f *Frame, frameIdx int) error {
	var buf bytes.Buffer
	enc := getEncoder(&buf, o.Cfg.EncType)
	if err := enc.Encode(f); err != nil {
		return dynerr.Wrap(dynerr.IO, err, "output: cannot encode frame %d", frameIdx)
	}
	fn := framePath(o.Cfg.OutputDir, o.Cfg.FnKey, o.Cfg.EncType, frameIdx)
	fil, err := os.Create(fn)
	if err != nil {
		return dynerr.Wrap(dynerr.IO, err, "output: cannot create %q", fn)
	}
	defer fil.Close()
	if _, err := fil.Write(buf.Bytes()); err != nil {
		return dynerr.Wrap(dynerr.IO, err, "output: cannot write %q", fn)
	}
	io.Pfblue2("file <%s> written\n", fn)
	return nil
}

// ReadFrame decodes one previously-written frame, for restart or
// post-processing.
func ReadFrame(dir, fnkey, enctype string, frameIdx int) (*Frame, error) {
	fn := framePath(dir, fnkey, enctype, frameIdx)
	fil, err := os.Open(fn)
	if err != nil {
		return nil, dynerr.Wrap(dynerr.IO, err, "output: cannot open %q", fn)
	}
	defer fil.Close()
	var f Frame
	dec := getDecoder(fil, enctype)
	if err := dec.Decode(&f); err != nil {
		return nil, dynerr.Wrap(dynerr.IO, err, "output: cannot decode %q", fn)
	}
	return &f, nil
}

func framePath(dir, fnkey, enctype string, frameIdx int) string {
	return path.Join(dir, io.Sf("%s_frame_%010d.%s", fnkey, frameIdx, enctype))
}
