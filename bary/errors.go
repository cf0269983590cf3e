package bary

import "errors"

// ErrNoBaryRecord indicates BaryTess was asked to reproject a vertex that
// BaryFrame never recorded for this *core.TriStruct (no record reaches
// that index, or its record names no frame triangle). An index outside
// 1..NVerts() is reported as core.ErrIndexRange instead.
var ErrNoBaryRecord = errors.New("bary: no barycentric record for vertex")
