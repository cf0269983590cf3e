package refine

import "log"

// Diagnostic levels for logf's level argument (spec.md §2.3/§7): only
// Extrapolation and NotFound outcomes are ever logged; geometric
// RangeError rejections never are (spec.md §7 "all geometric rejections
// are local").
const (
	levelExtrapolation = 1
	levelNotFound      = 1
)

// logf writes a diagnostic line via log.Printf when level <= outLevel,
// mirroring spec.md §6's injected outLevel(face) verbosity hook. Not a
// package-global logger: outLevel is threaded in by the caller at every
// call site, matching lvlath/builder's "no hidden globals" convention
// (SPEC_FULL.md §2.3).
func logf(outLevel, level int, format string, args ...any) {
	if level > outLevel {
		return
	}
	log.Printf(format, args...)
}
