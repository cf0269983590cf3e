package swap

import (
	"errors"

	"github.com/katalvlaran/surftess/core"
	"github.com/katalvlaran/surftess/midhash"
	"github.com/katalvlaran/surftess/predicate"
	"github.com/katalvlaran/surftess/surface"
)

// Tris runs spec.md §4.4's swapTris driver to fixed point: applies pred to
// every interior edge marked as a swap candidate, repeatedly, until a
// sweep performs zero flips or core.MaxSweeps sweeps have run. ts.Accum is
// seeded with startAccum at the start of every sweep, per pred's own
// accumulator semantics (predicate.AngUV/AngXYZ track a running max,
// predicate.Diag a running min).
//
// hash receives promoted midpoints during TOBEFILLED (ts.Phase ==
// core.TessellatingPhase); pass nil in any other phase, when mid-phase
// promotion never applies.
//
// Returns the total number of flips performed across all sweeps.
func Tris(ts *core.TriStruct, pred predicate.Predicate, startAccum float64, hash *midhash.Table) (int, error) {
	for i := 1; i <= ts.NTris(); i++ {
		ts.Tri(i).Hit = 0
	}

	total := 0
	for sweep := 0; sweep < core.MaxSweeps; sweep++ {
		ts.Accum = startAccum
		for i := 1; i <= ts.NTris(); i++ {
			ts.Tri(i).Count = 0
		}

		swapped := 0
		for t1ID := 1; t1ID <= ts.NTris(); t1ID++ {
			t1 := ts.Tri(t1ID)
			for side := 0; side < 3; side++ {
				if !t1.HasCandidate(side) {
					continue
				}
				t2ID := t1.N[side]
				if t2ID <= t1ID {
					continue
				}
				t2 := ts.Tri(t2ID)
				if t1.Hit == 1 && t2.Hit == 1 {
					continue
				}

				if !pred(ts, t1ID, side, t2ID) {
					continue
				}

				t1.Count++
				t2.Count++
				swapped++

				if ts.Phase == core.TessellatingPhase && hash != nil {
					promoteMid(hash, t1)
					promoteMid(hash, t2)
				}

				if err := flip(ts, t1ID, side, t2ID); err != nil {
					return total, err
				}
				if err := fillMidIgnoringExtrapolation(ts, t1ID); err != nil {
					return total, err
				}
				if err := fillMidIgnoringExtrapolation(ts, t2ID); err != nil {
					return total, err
				}
			}
		}

		for i := 1; i <= ts.NTris(); i++ {
			t := ts.Tri(i)
			if t.Count == 0 {
				t.Hit = 1
			}
		}

		total += swapped
		if swapped == 0 {
			break
		}
	}

	finalReadSweep(ts, pred, startAccum)
	return total, nil
}

// promoteMid caches t's pre-flip vertex triple -> mid/close state in hash,
// so later heuristics can recover the surface midpoint of a configuration
// the swap is about to discard without re-evaluating the surface.
func promoteMid(hash *midhash.Table, t *core.Triangle) {
	hash.Add(t.V[0], t.V[1], t.V[2], t.Close == core.CloseNear, t.Mid)
}

func fillMidIgnoringExtrapolation(ts *core.TriStruct, tID int) error {
	err := ts.FillMid(tID)
	if err == nil || errors.Is(err, surface.ErrExtrapolation) {
		return nil
	}
	return err
}

// finalReadSweep re-evaluates pred on every still-marked edge without
// flipping, so ts.Accum reflects the converged mesh's state for the
// driver's phase-stop conditions (spec.md §4.4's "one final read-only
// sweep").
func finalReadSweep(ts *core.TriStruct, pred predicate.Predicate, startAccum float64) {
	ts.Accum = startAccum
	for t1ID := 1; t1ID <= ts.NTris(); t1ID++ {
		t1 := ts.Tri(t1ID)
		for side := 0; side < 3; side++ {
			if !t1.HasCandidate(side) {
				continue
			}
			t2ID := t1.N[side]
			if t2ID <= t1ID {
				continue
			}
			pred(ts, t1ID, side, t2ID)
		}
	}
}
