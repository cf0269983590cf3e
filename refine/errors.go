package refine

import "errors"

// ErrNotSameThread indicates ts.Face.SameThread() reported false: the
// caller is not the goroutine the face evaluator was bound to (spec.md
// §5's concurrency guard). Tessellate refuses to run rather than risk a
// non-reentrant evaluator being called from the wrong goroutine.
var ErrNotSameThread = errors.New("refine: face evaluator bound to a different goroutine")
