package bary

import "log"

// levelFallback is the diagnostic level at which BaryFrame logs a vertex
// that fell back to its least-negative candidate triangle (the
// logged-fallback case listed in SPEC_FULL.md §2.1).
const levelFallback = 1

func logf(outLevel, level int, format string, args ...any) {
	if level > outLevel {
		return
	}
	log.Printf(format, args...)
}
