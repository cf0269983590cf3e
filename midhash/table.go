package midhash

import "gonum.org/v1/gonum/spatial/r3"

// Value is the cached payload for one triangle's surface midpoint
// (spec.md §4.1).
type Value struct {
	Close bool   // true if the cached midpoint is close to the face boundary
	XYZ   r3.Vec // cached surface centroid in world coordinates
}

// AddResult reports the outcome of Table.Add.
type AddResult int

const (
	// Added indicates a new entry was inserted.
	Added AddResult = iota
	// AlreadyPresent indicates the key triple already had an entry; Add is
	// a no-op in that case (spec.md §4.1: "arbitrary insertion order").
	AlreadyPresent
)

type entry struct {
	k0, k1, k2 int
	val        Value
	next       *entry
}

// Table is the triple-keyed midpoint cache. The zero value is not usable;
// construct with Create.
//
// Complexity: Find/Add are O(1) expected (separate chaining over a
// prime-sized table), O(bucket length) worst case.
// Concurrency: not safe for concurrent use — matches spec.md §5's
// single-threaded-per-face model; callers create/destroy one Table per
// refinement phase.
type Table struct {
	buckets []*entry
	size    int
	count   int
}

// Create allocates a Table sized to the first prime at or above capacity
// (spec.md §4.1).
func Create(capacity int) *Table {
	size := sizeFor(capacity)
	return &Table{buckets: make([]*entry, size), size: size}
}

// Destroy releases the Table's storage. Go's garbage collector reclaims the
// backing arrays once the Table is no longer referenced; Destroy exists to
// mirror the explicit create/destroy lifecycle spec.md §3 and §4.1 require
// (a Table is rebuilt fresh around every refinement phase that performs
// collapses) and to make that lifecycle visible at call sites.
func (tb *Table) Destroy() {
	tb.buckets = nil
	tb.size = 0
	tb.count = 0
}

// sortedKey returns (min,mid,max) of the unordered triple (i0,i1,i2),
// spec.md §4.1's order-independent triangle identity.
func sortedKey(i0, i1, i2 int) (int, int, int) {
	if i0 > i1 {
		i0, i1 = i1, i0
	}
	if i1 > i2 {
		i1, i2 = i2, i1
	}
	if i0 > i1 {
		i0, i1 = i1, i0
	}
	return i0, i1, i2
}

// bucketIndex implements spec.md §4.1's hash function: (k0+k1+k2) mod
// tableSize.
func (tb *Table) bucketIndex(k0, k1, k2 int) int {
	sum := k0 + k1 + k2
	idx := sum % tb.size
	if idx < 0 {
		idx += tb.size
	}
	return idx
}

// Find looks up the cached Value for the unordered triple (i0,i1,i2).
func (tb *Table) Find(i0, i1, i2 int) (Value, bool) {
	k0, k1, k2 := sortedKey(i0, i1, i2)
	idx := tb.bucketIndex(k0, k1, k2)
	for e := tb.buckets[idx]; e != nil; e = e.next {
		if e.k0 == k0 && e.k1 == k1 && e.k2 == k2 {
			return e.val, true
		}
	}
	return Value{}, false
}

// Add inserts (close, xyz) keyed by the unordered triple (i0,i1,i2).
// Returns AlreadyPresent without modifying the existing entry if the key
// triple is already cached.
func (tb *Table) Add(i0, i1, i2 int, close bool, xyz r3.Vec) AddResult {
	k0, k1, k2 := sortedKey(i0, i1, i2)
	idx := tb.bucketIndex(k0, k1, k2)
	for e := tb.buckets[idx]; e != nil; e = e.next {
		if e.k0 == k0 && e.k1 == k1 && e.k2 == k2 {
			return AlreadyPresent
		}
	}
	tb.buckets[idx] = &entry{
		k0: k0, k1: k1, k2: k2,
		val:  Value{Close: close, XYZ: xyz},
		next: tb.buckets[idx],
	}
	tb.count++
	return Added
}

// Len returns the number of cached entries.
func (tb *Table) Len() int { return tb.count }

// Size returns the table's bucket-array size (always a tabulated prime).
func (tb *Table) Size() int { return tb.size }
