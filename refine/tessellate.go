package refine

import "github.com/katalvlaran/surftess/core"

// Tessellate implements spec.md §6's public entry point
// (tessellate(outLevel, &mut triStruct, tID) -> status): refines ts in
// place according to its bound Config, then returns a best-effort Status.
// faceID is recorded for diagnostics only; ts.FIndex already carries it
// from core.New and this core does not otherwise distinguish faces.
//
// Refuses with ErrNotSameThread if ts.Face.SameThread() reports false
// (spec.md §5's single-threaded-per-face concurrency guard) before any
// mutation happens.
func Tessellate(outLevel int, ts *core.TriStruct, faceID int) (core.Status, error) {
	if !ts.Face.SameThread() {
		return core.StatusOK, ErrNotSameThread
	}

	initBoundaryTolerances(ts, outLevel)
	markInteriorCandidates(ts)
	ts.SnapshotFrame()

	if ts.Planar {
		if err := runPlanar(ts); err != nil {
			return core.StatusOK, err
		}
		return core.StatusOK, nil
	}

	initialNTris := ts.NTris()
	ts.BadStart = ts.NTris() >= 16 && countBadOrientation(ts) == 1
	status := core.StatusOK
	if ts.BadStart {
		status = core.StatusBadStart
		logf(outLevel, levelNotFound, "refine: face %d: badStart continuation, skipping Phase D", faceID)
	}

	if err := runGeneral(ts, initialNTris); err != nil {
		return status, err
	}
	return status, nil
}
