package insert

import (
	"github.com/katalvlaran/surftess/core"
	"github.com/katalvlaran/surftess/predicate"
)

// CollapseEdge implements spec.md §4.5's collapsEdge: removes vertex node
// (which must be FaceInterior unless flag == 1) together with the two
// triangles that contain both node and tnode, merging node into tnode.
//
// Every other triangle that referenced node is rewritten to reference
// tnode instead; each victim's two non-shared external neighbors are wired
// directly to each other, bypassing the victim; node and the two victims
// are then removed via the store's move-to-tail-and-truncate primitives.
// Both vertex and triangle indices may be renumbered by this call — spec.md
// §8's vertex-index-stability note — so callers must not retain indices
// across it.
func CollapseEdge(ts *core.TriStruct, node, tnode, flag int) error {
	if flag != 1 && ts.Vertex(node).Kind != core.FaceInterior {
		return ErrRange
	}

	var containing []int
	for tID := 1; tID <= ts.NTris(); tID++ {
		if ts.VertexSlot(tID, node) >= 0 {
			containing = append(containing, tID)
		}
	}
	var victims []int
	for _, tID := range containing {
		if ts.VertexSlot(tID, tnode) >= 0 {
			victims = append(victims, tID)
		}
	}
	if len(victims) != 2 {
		return ErrRange
	}
	v1, v2 := victims[0], victims[1]

	if err := unlinkVictim(ts, v1, v2); err != nil {
		return err
	}
	if err := unlinkVictim(ts, v2, v1); err != nil {
		return err
	}

	for _, tID := range containing {
		if tID == v1 || tID == v2 {
			continue
		}
		t := ts.Tri(tID)
		s := ts.VertexSlot(tID, node)
		t.V[s] = tnode
		if e := fillMidIgnoringExtrapolation(ts, tID); e != nil {
			return e
		}
		for side := 0; side < 3; side++ {
			predicate.Mark(ts, tID, side, t.N[side])
		}
	}

	if v1 < v2 {
		v1, v2 = v2, v1
	}
	lastBefore := ts.NTris()
	if err := ts.RemoveTriangle(v1); err != nil {
		return err
	}
	if v2 == lastBefore {
		v2 = v1
	}
	if err := ts.RemoveTriangle(v2); err != nil {
		return err
	}

	return ts.RemoveVertex(node)
}

// unlinkVictim wires victim's two neighbors other than sibling (its
// partner across the collapsed edge) directly to each other, per spec.md
// §4.5 step 5.
func unlinkVictim(ts *core.TriStruct, victim, sibling int) error {
	shared := ts.SideTo(victim, sibling)
	if shared < 0 {
		return ErrRange
	}
	na, nb := ts.OtherNeighbors(victim, shared)
	if err := ts.RepatchNeighbor(na, victim, nb); err != nil {
		return err
	}
	return ts.RepatchNeighbor(nb, victim, na)
}
