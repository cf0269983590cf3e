package surface

import "gonum.org/v1/gonum/spatial/r3"

// UV is a parameter-space coordinate (u,v).
type UV struct{ U, V float64 }

// Derivatives holds a surface evaluation's position and its first and
// second partial derivatives, exactly as spec.md §6 requires:
// evaluate(face, uv) -> (xyz, ∂/∂u, ∂/∂v, d²/du², d²/dudv, d²/dv²).
type Derivatives struct {
	XYZ r3.Vec
	Du  r3.Vec
	Dv  r3.Vec
	Duu r3.Vec
	Duv r3.Vec
	Dvv r3.Vec
}

// Face is the external collaborator this core treats as an opaque
// evaluator: the parametric surface of a single B-rep face. THE CORE never
// constructs one; callers supply an implementation backed by their own
// geometric kernel (spec.md §1 OUT OF SCOPE).
//
// Concurrency: SameThread must be checked by the public entry point
// (refine.Tessellate) before any Evaluate/InverseEvaluate call; this core
// performs no cooperative yields and expects synchronous, reentrant-safe
// evaluation from the calling goroutine only (spec.md §5).
type Face interface {
	// Evaluate maps a parameter coordinate to world position and partial
	// derivatives. Returns ErrExtrapolation if uv lies outside Range().
	Evaluate(uv UV) (Derivatives, error)

	// InverseEvaluate projects a world point back to parameter space,
	// returning the parameter coordinate and the projected (possibly
	// adjusted) world point. Returns ErrExtrapolation on projection
	// failure.
	InverseEvaluate(xyz r3.Vec) (UV, r3.Vec, error)

	// Range reports the face's parameter-space bounding box and whether it
	// is periodic in u and/or v.
	Range() (uMin, uMax, vMin, vMax float64, periodicU, periodicV bool)

	// SameThread reports whether the calling goroutine is the one the face
	// object was bound to; refine.Tessellate refuses to run otherwise
	// (spec.md §5).
	SameThread() bool

	// OutLevel reports the caller's verbosity threshold (spec.md §6); 0
	// suppresses all diagnostic logging, higher values progressively widen
	// it (spec.md §7's Extrapolation/NotFound diagnostics).
	OutLevel() int
}
