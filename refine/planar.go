package refine

import (
	"github.com/katalvlaran/surftess/core"
	"github.com/katalvlaran/surftess/heuristic"
	"github.com/katalvlaran/surftess/predicate"
	"github.com/katalvlaran/surftess/swap"
)

// runPlanar implements spec.md §4.8's planar branch: one angXYZ swap pass
// (with ts.Phase == core.PlanarPhase so AngXYZ skips its dihedral guard),
// then iterate addSideDist + the same swap pass until no split occurs or
// the point budget is met.
//
// The addSideDist loop is gated on maxlen > 0, the same guard §4.8's
// Phase 0 states explicitly for the general branch: spec.md's planar-
// branch sentence doesn't repeat it, but scenario A (flat quad, maxlen ==
// 0, chord == 0, mesh expected unchanged) only holds if the planar branch
// also skips addSideDist at maxlen <= 0 — otherwise it would split
// indefinitely against a zero threshold (SPEC_FULL.md §9).
func runPlanar(ts *core.TriStruct) error {
	ts.Phase = core.PlanarPhase

	if _, err := swap.Tris(ts, predicate.AngXYZ, 0, nil); err != nil {
		return err
	}

	if ts.MaxLen <= 0 {
		return nil
	}

	iter := 1
	for {
		if maxPtsReached(ts) {
			return nil
		}
		split, err := heuristic.AddSideDist(ts, iter, ts.MaxLen*ts.MaxLen, 0)
		if err != nil {
			return err
		}
		if _, err := swap.Tris(ts, predicate.AngXYZ, 0, nil); err != nil {
			return err
		}
		if split == 0 {
			return nil
		}
		iter++
	}
}
