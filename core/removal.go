package core

// RemoveVertex implements spec.md §4.5's collapsEdge step 3: swaps vertex
// node with the last vertex in the store, rewriting every triangle's
// vertex reference to the old last index, then truncates by one. Callers
// must have already verified node carries no triangle references of its
// own (collapsEdge removes node's two incident triangles first).
func (ts *TriStruct) RemoveVertex(node int) error {
	if err := ts.CheckVertexIndex(node); err != nil {
		return err
	}
	last := len(ts.verts)
	if node != last {
		ts.verts[node-1] = ts.verts[last-1]
		for i := range ts.tris {
			t := &ts.tris[i]
			for s := 0; s < 3; s++ {
				if t.V[s] == last {
					t.V[s] = node
				}
			}
		}
		if ts.Bary != nil {
			ts.Bary[node-1] = ts.Bary[last-1]
		}
	}
	ts.verts = ts.verts[:last-1]
	if ts.Bary != nil {
		ts.Bary = ts.Bary[:last-1]
	}
	return nil
}

// RemoveTriangle implements spec.md §4.5's collapsEdge step 4/6: swaps
// triangle tID with the last triangle in the store, repatching every
// neighbor's back-pointer from the old last index to tID, then truncates
// by one. Callers must have already rewired tID's own neighbors away
// (collapsEdge wires each victim's two external neighbors to each other
// before either victim is removed).
func (ts *TriStruct) RemoveTriangle(tID int) error {
	if err := ts.CheckTriIndex(tID); err != nil {
		return err
	}
	last := len(ts.tris)
	if tID != last {
		moved := ts.tris[last-1]
		ts.tris[tID-1] = moved
		if err := ts.RetargetAll(moved.N, last, tID); err != nil {
			return err
		}
	}
	ts.tris = ts.tris[:last-1]
	return nil
}
