package refine

import (
	"math"

	"github.com/katalvlaran/surftess/core"
	"github.com/katalvlaran/surftess/heuristic"
	"github.com/katalvlaran/surftess/midhash"
	"github.com/katalvlaran/surftess/predicate"
	"github.com/katalvlaran/surftess/swap"
)

// runGeneral implements spec.md §4.8's general branch: the ten phases run
// strictly in order, each gated on ts.OrCnt < core.MaxOrientationCount.
// initialNTris is the triangle count captured right after the frame
// snapshot, the baseline several phases' stop conditions compare against.
func runGeneral(ts *core.TriStruct, initialNTris int) error {
	phases := []func(*core.TriStruct, int) error{
		preSwap,
		phaseX,
		phase0,
		phaseA,
		phaseB,
		phaseC,
		phaseD,
		phase1,
		phase2,
		phase3,
	}
	for _, p := range phases {
		if ts.OrCnt >= core.MaxOrientationCount {
			break
		}
		if err := p(ts, initialNTris); err != nil {
			return err
		}
	}

	if ts.NTris() > 2*initialNTris {
		ts.Phase = 0
		if _, err := swap.Tris(ts, predicate.AngXYZ, 0, nil); err != nil {
			return err
		}
	}
	return nil
}

// preSwap is §4.8 phase 1: swapTris(angUV, 0), swapTris(diag, 1).
func preSwap(ts *core.TriStruct, _ int) error {
	ts.Phase = 0
	if _, err := swap.Tris(ts, predicate.AngUV, 0, nil); err != nil {
		return err
	}
	_, err := swap.Tris(ts, predicate.Diag, 1, nil)
	return err
}

// phaseX is §4.8 phase 2: antipodal-normal splitting, looping splitInter
// (with per-vertex normals) and both swaps until no split occurs or the
// vertex count reaches 6x its value at phase entry.
func phaseX(ts *core.TriStruct, _ int) error {
	original := ts.NVerts()
	aux := vertexNormals(ts)

	for {
		if ts.NVerts() >= 6*original {
			return nil
		}
		split, err := heuristic.SplitInter(ts, 0, &aux, 6*ts.NVerts())
		if err != nil {
			return err
		}
		if _, err := swap.Tris(ts, predicate.AngUV, 0, nil); err != nil {
			return err
		}
		if _, err := swap.Tris(ts, predicate.Diag, 1, nil); err != nil {
			return err
		}
		if split == 0 {
			return nil
		}
	}
}

// phase0 is §4.8 phase 3: a coarse maxlen pass at 4*maxlen^2 (only when
// maxlen > 0), stopping when the last swap round left angUV above MAXANG
// and diag's running minimum below zero.
func phase0(ts *core.TriStruct, _ int) error {
	if ts.MaxLen <= 0 {
		return nil
	}
	limit := 4 * ts.MaxLen * ts.MaxLen

	iter := 1
	for {
		if maxPtsReached(ts) {
			return nil
		}
		ts.Phase = 0
		split, err := heuristic.AddSideDist(ts, iter, limit, 0)
		if err != nil {
			return err
		}
		if _, err := swap.Tris(ts, predicate.AngUV, 0, nil); err != nil {
			return err
		}
		angAccum := ts.Accum
		if _, err := swap.Tris(ts, predicate.Diag, 1, nil); err != nil {
			return err
		}
		diagAccum := ts.Accum
		if split == 0 || (angAccum > core.MaxAngle && diagAccum < 0) {
			return nil
		}
		iter++
	}
}

// phaseA is §4.8 phase 4: inverted-neighbor insertion via breakTri(-1),
// stopping when diag's running minimum clears 0.866 or drops to -1 or
// below.
func phaseA(ts *core.TriStruct, _ int) error {
	for {
		split, err := heuristic.BreakTri(ts, -1, nil)
		if err != nil {
			return err
		}
		if _, err := swap.Tris(ts, predicate.AngUV, 0, nil); err != nil {
			return err
		}
		if _, err := swap.Tris(ts, predicate.Diag, 1, nil); err != nil {
			return err
		}
		if ts.Accum > 0.866 || ts.Accum <= -1 {
			return nil
		}
		if split == 0 {
			return nil
		}
	}
}

// phaseB is §4.8 phase 5: interior-antipodal splitting without
// precomputed normals, stopping once the running split total exceeds
// 3x the initial triangle count.
func phaseB(ts *core.TriStruct, initialNTris int) error {
	total := 0
	for {
		split, err := heuristic.SplitInter(ts, 0, nil, 0)
		if err != nil {
			return err
		}
		total += split
		if _, err := swap.Tris(ts, predicate.AngUV, 0, nil); err != nil {
			return err
		}
		if _, err := swap.Tris(ts, predicate.Diag, 1, nil); err != nil {
			return err
		}
		if total > 3*initialNTris || split == 0 {
			return nil
		}
	}
}

// phaseC is §4.8 phase 6: midpoint-mismatch insertion via breakTri(0)
// backed by a midpoint hash for the duration of the phase, same stop
// shape as phase A.
func phaseC(ts *core.TriStruct, _ int) error {
	hash := midhash.Create(core.Chunk)
	defer hash.Destroy()

	for {
		split, err := heuristic.BreakTri(ts, 0, hash)
		if err != nil {
			return err
		}
		if _, err := swap.Tris(ts, predicate.AngUV, 0, nil); err != nil {
			return err
		}
		if _, err := swap.Tris(ts, predicate.Diag, 1, nil); err != nil {
			return err
		}
		if ts.Accum > 0.866 || ts.Accum <= -1 {
			return nil
		}
		if split == 0 {
			return nil
		}
	}
}

// phaseD is §4.8 phase 7: a fine maxlen pass at maxlen^2 with sideMid = 1,
// the same loop shape as phase0, guarded by !ts.BadStart. ts.Phase is set
// to 3 around each AddSideDist call, and back to 0 for the swaps, so
// AddSideDist applies its close2Edge boundary protection
// (heuristic.AddSideDist's literal phase==3 check).
func phaseD(ts *core.TriStruct, _ int) error {
	if ts.BadStart || ts.MaxLen <= 0 {
		return nil
	}
	limit := ts.MaxLen * ts.MaxLen

	iter := 1
	for {
		if maxPtsReached(ts) {
			return nil
		}
		ts.Phase = 3
		split, err := heuristic.AddSideDist(ts, iter, limit, 1)
		if err != nil {
			return err
		}
		ts.Phase = 0
		if _, err := swap.Tris(ts, predicate.AngUV, 0, nil); err != nil {
			return err
		}
		angAccum := ts.Accum
		if _, err := swap.Tris(ts, predicate.Diag, 1, nil); err != nil {
			return err
		}
		diagAccum := ts.Accum
		if split == 0 || (angAccum > core.MaxAngle && diagAccum < 0) {
			return nil
		}
		iter++
	}
}

// phase1 is §4.8 phase 8: dihedral-driven insertion via addFacetNorm.
// fillMid is refreshed for every triangle once up front; each iteration
// that produces a split runs a midpoint-hash-backed angXYZ swap and
// reconciles every triangle's cached mid from the hash. A stall counter
// increments, per spec.md's literal condition, when the swap's running
// max angle stayed at or below its previous value while split count rose;
// the phase stops once that counter exceeds 6 or the point budget is met.
func phase1(ts *core.TriStruct, _ int) error {
	if err := fillAllMid(ts); err != nil {
		return err
	}
	return dihedralDrivenLoop(ts, heuristic.AddFacetNorm)
}

// phase2 is §4.8 phase 9: chord-driven insertion via addFacetDist, only
// run when chord > 0. Same shape as phase1.
func phase2(ts *core.TriStruct, _ int) error {
	if ts.Chord <= 0 {
		return nil
	}
	return dihedralDrivenLoop(ts, heuristic.AddFacetDist)
}

// dihedralDrivenLoop is the shared shape of phase1/phase2 (spec.md §4.8).
func dihedralDrivenLoop(ts *core.TriStruct, driver func(*core.TriStruct) (int, error)) error {
	stall, lastAccum, lastSplit := 0, math.Inf(-1), 0
	for {
		if maxPtsReached(ts) {
			return nil
		}
		split, err := driver(ts)
		if err != nil {
			return err
		}
		if split == 0 {
			// No remaining candidate: further iterations can only repeat
			// this one, so stop regardless of the stall counter (spec.md
			// §5's "no unbounded loops").
			return nil
		}

		hash := midhash.Create(core.Chunk)
		ts.Phase = core.TessellatingPhase
		if _, err := swap.Tris(ts, predicate.AngXYZ, 0, hash); err != nil {
			hash.Destroy()
			return err
		}
		ts.Phase = 0
		if err := reconcileMid(ts, hash); err != nil {
			hash.Destroy()
			return err
		}
		hash.Destroy()

		if ts.Accum <= lastAccum && split > lastSplit {
			stall++
		} else {
			stall = 0
		}
		lastAccum, lastSplit = ts.Accum, split

		if stall > 6 {
			return nil
		}
	}
}

// phase3 is §4.8 phase 10: the final swap, swapTris(angUV, 0) then
// swapTris(diag, 1).
func phase3(ts *core.TriStruct, _ int) error {
	ts.Phase = 0
	if _, err := swap.Tris(ts, predicate.AngUV, 0, nil); err != nil {
		return err
	}
	_, err := swap.Tris(ts, predicate.Diag, 1, nil)
	return err
}
