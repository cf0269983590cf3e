package midhash_test

import (
	"fmt"

	"github.com/katalvlaran/surftess/midhash"
	"gonum.org/v1/gonum/spatial/r3"
)

// ExampleTable demonstrates the add/find round-trip a swap phase uses to
// preserve a triangle's cached midpoint across a flip and back.
func ExampleTable() {
	tb := midhash.Create(64)
	defer tb.Destroy()

	tb.Add(3, 1, 2, true, r3.Vec{X: 1, Y: 2, Z: 3})

	v, ok := tb.Find(1, 2, 3)
	fmt.Println(ok, v.Close, v.XYZ)
	// Output: true true {1 2 3}
}
