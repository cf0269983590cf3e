package core

import (
	"github.com/katalvlaran/surftess/config"
	"github.com/katalvlaran/surftess/surface"
)

// Segment is one boundary edge segment of the initial triangulation
// (spec.md §3's segs), used by the driver's initialization pass to
// accumulate edist2/eps2.
type Segment struct {
	V0, V1 int // 1-based endpoint vertex indices
}

// TriStruct is the aggregate triangulation store (spec.md §3's TriStruct).
// It owns the dynamic verts/tris arrays, the frozen frame snapshot, the
// boundary segment list, the derived refinement tolerances, and the
// driver's running counters.
//
// Concurrency: exclusive per-goroutine ownership for the duration of one
// refine.Tessellate call (spec.md §5); no internal locking.
type TriStruct struct {
	verts []Vertex
	tris  []Triangle

	// Frame is the immutable snapshot of the triangulation at the moment
	// refinement begins, as flat [i0,i1,i2] vertex-index triples
	// (spec.md §3, §8 property 4). Never mutated after the snapshot.
	Frame       []int
	NFrameVerts int

	Segs []Segment

	Face   surface.Face
	Config *config.Config
	FIndex int

	// Derived tolerances, computed once by refine's initialization pass
	// (spec.md §4.8).
	MaxLen float64
	Chord  float64
	DotNrm float64
	MinLen float64
	VoverU float64
	Eps2   float64
	Devia2 float64
	Edist2 float64
	OrUV   int

	// Phase is the driver's current phase tag; predicate.AngXYZ consults it
	// to skip its dihedral guard in planar mode (phase == -3, spec.md
	// §4.4), and swap.Tris to gate promotion into the midpoint hash during
	// TOBEFILLED (phase == -2, spec.md §4.4).
	Phase int

	// Accum is the running accumulator a swap predicate publishes across
	// one sweep (spec.md §4.4's per-predicate max/min semantics).
	Accum float64

	// OrCnt counts checkOr's "wrong orientation" incidents (spec.md §4.3);
	// once it exceeds MaxOrientationCount, the driver aborts further
	// insertion phases.
	OrCnt int

	Planar  bool
	TFI     bool // true if this face was triangulated via a quad override
	BadStart bool

	// Bary holds one record per vertex (spec.md §4.9); entries for frame
	// vertices are left at the zero value (FrameTri == 0).
	Bary []BaryRecord
}

const (
	// TessellatingPhase is used by swap.Tris to recognize the
	// "TOBEFILLED" mid-phase state (spec.md §4.4).
	TessellatingPhase = -2
	// PlanarPhase marks the planar branch so angXYZ skips its dihedral
	// guard (spec.md §4.4).
	PlanarPhase = -3
)

// New constructs an empty TriStruct bound to face and cfg. Callers then
// append the initial boundary-triangulated verts/tris before calling
// refine.Tessellate.
func New(face surface.Face, cfg *config.Config, faceIndex int) *TriStruct {
	return &TriStruct{
		Face:   face,
		Config: cfg,
		FIndex: faceIndex,
		OrUV:   cfg.Orientation(),
		Planar: cfg.Planar(),
	}
}

// NVerts returns the current vertex count.
func (ts *TriStruct) NVerts() int { return len(ts.verts) }

// NTris returns the current triangle count.
func (ts *TriStruct) NTris() int { return len(ts.tris) }

// Vertex returns a pointer to the 1-based-indexed vertex i (1 <= i <=
// NVerts()). It does no range check and panics on an out-of-range i;
// callers validate untrusted indices with CheckVertexIndex first.
func (ts *TriStruct) Vertex(i int) *Vertex { return &ts.verts[i-1] }

// Tri returns a pointer to the 1-based-indexed triangle i.
func (ts *TriStruct) Tri(i int) *Triangle { return &ts.tris[i-1] }

// CheckVertexIndex validates a 1-based vertex index.
func (ts *TriStruct) CheckVertexIndex(i int) error {
	if i < 1 || i > len(ts.verts) {
		return ErrIndexRange
	}
	return nil
}

// CheckTriIndex validates a 1-based triangle index.
func (ts *TriStruct) CheckTriIndex(i int) error {
	if i < 1 || i > len(ts.tris) {
		return ErrIndexRange
	}
	return nil
}

// AppendVertex grows verts by one (geometric/chunked growth is handled by
// Go's append directly; Chunk governs only the initial capacity hint, see
// ReserveVerts) and returns the new 1-based index.
func (ts *TriStruct) AppendVertex(v Vertex) int {
	ts.verts = append(ts.verts, v)
	return len(ts.verts)
}

// AppendTriangle grows tris by one and returns the new 1-based index.
func (ts *TriStruct) AppendTriangle(t Triangle) int {
	ts.tris = append(ts.tris, t)
	return len(ts.tris)
}

// ReserveVerts hints at the eventual vertex count so the backing array
// grows in Chunk-sized steps rather than doubling repeatedly (spec.md §3's
// "fixed-size chunk" growth policy).
func (ts *TriStruct) ReserveVerts(n int) {
	if cap(ts.verts) >= n {
		return
	}
	chunks := (n + Chunk - 1) / Chunk
	grown := make([]Vertex, len(ts.verts), chunks*Chunk)
	copy(grown, ts.verts)
	ts.verts = grown
}

// ReserveTris hints at the eventual triangle count, chunked as
// ReserveVerts does.
func (ts *TriStruct) ReserveTris(n int) {
	if cap(ts.tris) >= n {
		return
	}
	chunks := (n + Chunk - 1) / Chunk
	grown := make([]Triangle, len(ts.tris), chunks*Chunk)
	copy(grown, ts.tris)
	ts.tris = grown
}

// SnapshotFrame freezes the current triangulation as Frame (spec.md §3,
// §8 property 4). Must be called exactly once, before any collapse
// (spec.md §9's design note).
func (ts *TriStruct) SnapshotFrame() {
	ts.Frame = make([]int, 3*len(ts.tris))
	for i, t := range ts.tris {
		ts.Frame[3*i] = t.V[0]
		ts.Frame[3*i+1] = t.V[1]
		ts.Frame[3*i+2] = t.V[2]
	}
	ts.NFrameVerts = len(ts.verts)
	ts.Bary = make([]BaryRecord, len(ts.verts))
}

// FrameTriVerts returns the 1-based vertex triple of the j-th (0-based)
// frame triangle.
func (ts *TriStruct) FrameTriVerts(j int) (int, int, int) {
	return ts.Frame[3*j], ts.Frame[3*j+1], ts.Frame[3*j+2]
}

// NFrameTris returns the number of triangles captured in the frame
// snapshot.
func (ts *TriStruct) NFrameTris() int { return len(ts.Frame) / 3 }
