package core

// RepatchNeighbor rewrites the first of triangle nbrID's three neighbor
// slots that holds oldID to newID (spec.md §4.2's common routine: "walk
// every affected neighbor n and rewrite its back-pointer ... searching the
// three neighbor slots of n for the old value"). A no-op if nbrID is not a
// valid (positive) triangle reference. Returns ErrNeighborNotFound if
// nbrID is valid but none of its three slots held oldID — a
// neighbor-consistency violation (spec.md §8 property 1).
func (ts *TriStruct) RepatchNeighbor(nbrID, oldID, newID int) error {
	if nbrID <= 0 {
		return nil
	}
	if err := ts.CheckTriIndex(nbrID); err != nil {
		return err
	}
	n := ts.Tri(nbrID)
	for s := 0; s < 3; s++ {
		if n.N[s] == oldID {
			n.N[s] = newID
			return nil
		}
	}
	return ErrNeighborNotFound
}

// RetargetAll walks oldID's three recorded neighbors and repatches each
// one's back-pointer to newID — the common idiom used whenever a triangle
// is overwritten in place or moved (spec.md §4.2). neighbors is the
// triangle's N array *before* the overwrite/move.
func (ts *TriStruct) RetargetAll(neighbors [3]int, oldID, newID int) error {
	for _, nbr := range neighbors {
		if err := ts.RepatchNeighbor(nbr, oldID, newID); err != nil {
			return err
		}
	}
	return nil
}

// SideTo returns the local side index (0, 1, or 2) of triangle tID whose
// neighbor slot equals otherID, or -1 if none matches.
func (ts *TriStruct) SideTo(tID, otherID int) int {
	t := ts.Tri(tID)
	for s := 0; s < 3; s++ {
		if t.N[s] == otherID {
			return s
		}
	}
	return -1
}

// VertexSlot returns the local vertex slot (0, 1, or 2) of triangle tID
// holding vertex index v, or -1 if tID does not reference v.
func (ts *TriStruct) VertexSlot(tID, v int) int {
	t := ts.Tri(tID)
	for s := 0; s < 3; s++ {
		if t.V[s] == v {
			return s
		}
	}
	return -1
}

// CheckNeighborConsistency validates spec.md §8 property 1 over the whole
// triangulation: for every triangle t and side s with n = N[s] > 0,
// triangle n-1 has exactly one side pointing back to t+1, with matching
// unordered endpoint pairs. Returns the first violation found, or nil.
func (ts *TriStruct) CheckNeighborConsistency() error {
	for i := range ts.tris {
		tID := i + 1
		t := &ts.tris[i]
		for s := 0; s < 3; s++ {
			nID := t.N[s]
			if nID <= 0 {
				continue
			}
			if err := ts.CheckTriIndex(nID); err != nil {
				return err
			}
			back := ts.SideTo(nID, tID)
			hits := 0
			for _, m := range ts.Tri(nID).N {
				if m == tID {
					hits++
				}
			}
			if back < 0 || hits != 1 {
				return ErrNeighborNotFound
			}
			a0, b0 := t.OtherVerts(s)
			a1, b1 := ts.Tri(nID).OtherVerts(back)
			if !((a0 == a1 && b0 == b1) || (a0 == b1 && b0 == a1)) {
				return ErrNeighborNotFound
			}
		}
	}
	return nil
}
