package midhash

// primesNear2ToN lists, for n = 7..31, the first prime at or above 2^n
// (spec.md §4.1's "precomputed list of primes near 2ⁿ for n=7..31"). Sizing
// a requested capacity picks the first entry >= that capacity.
var primesNear2ToN = []int{
	131,        // 2^7
	257,        // 2^8
	521,        // 2^9
	1031,       // 2^10
	2053,       // 2^11
	4099,       // 2^12
	8209,       // 2^13
	16411,      // 2^14
	32771,      // 2^15
	65537,      // 2^16
	131101,     // 2^17
	262147,     // 2^18
	524309,     // 2^19
	1048583,    // 2^20
	2097169,    // 2^21
	4194319,    // 2^22
	8388617,    // 2^23
	16777259,   // 2^24
	33554467,   // 2^25
	67108879,   // 2^26
	134217757,  // 2^27
	268435459,  // 2^28
	536870923,  // 2^29
	1073741827, // 2^30
	2147483659, // 2^31 (first prime >= 2^31, fits int64 / 64-bit int)
}

// sizeFor returns the first prime at or above requested, from
// primesNear2ToN, falling back to the largest tabulated prime if requested
// exceeds the table's range (a 2^31-vertex mesh is far beyond this core's
// realistic operating range, spec.md §5's bounded-iteration guarantees).
func sizeFor(requested int) int {
	if requested < 1 {
		requested = 1
	}
	for _, p := range primesNear2ToN {
		if p >= requested {
			return p
		}
	}
	return primesNear2ToN[len(primesNear2ToN)-1]
}
