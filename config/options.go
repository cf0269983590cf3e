// SPDX-License-Identifier: MIT
// Package: surftess/config
//
// options.go — functional options for a refinement Config, in the shape of
// lvlath/builder/options.go: option constructors validate and panic on
// meaningless inputs; the resulting Config itself is inert data and never
// panics once built.

package config

// RefineOption customizes a Config by mutating it before New returns.
// Complexity: applying N options costs O(N) time, O(1) space.
type RefineOption func(*Config)

// WithChord sets the maximum allowed centroid-to-surface chord deviation.
// chord == 0 disables chord-driven refinement (spec.md §4.8 Phase 2 guard).
// Panics if chord < 0.
func WithChord(chord float64) RefineOption {
	if chord < 0 {
		panic("config: WithChord(<0)")
	}
	return func(c *Config) { c.chord = chord }
}

// WithMaxLen sets the maximum allowed triangle side length.
// maxlen == 0 disables maxlen-driven refinement (spec.md §4.8 Phase 0/D guard).
// Panics if maxlen < 0.
func WithMaxLen(maxlen float64) RefineOption {
	if maxlen < 0 {
		panic("config: WithMaxLen(<0)")
	}
	return func(c *Config) { c.maxlen = maxlen }
}

// WithMinLen sets the floor under eps2/devia2 (spec.md §4.8 init).
// Panics if minlen < 0.
func WithMinLen(minlen float64) RefineOption {
	if minlen < 0 {
		panic("config: WithMinLen(<0)")
	}
	return func(c *Config) { c.minlen = minlen }
}

// WithDotNorm sets the dihedral (dot-of-normals) swap/insertion threshold.
// Panics if dotnrm is outside [-1, 1].
func WithDotNorm(dotnrm float64) RefineOption {
	if dotnrm < -1 || dotnrm > 1 {
		panic("config: WithDotNorm out of [-1,1]")
	}
	return func(c *Config) { c.dotnrm = dotnrm }
}

// WithMaxPoints caps the point budget. A positive value caps total vertices;
// a negative value caps interior vertices to |maxPts| - 2 (spec.md §6).
// Zero means "no cap" and is the default.
func WithMaxPoints(maxPts int) RefineOption {
	return func(c *Config) { c.maxPts = maxPts }
}

// WithPlanar selects the planar branch of the refinement driver (spec.md
// §4.8's "Planar branch"), skipping the general-branch phase sequence.
func WithPlanar(planar bool) RefineOption {
	return func(c *Config) { c.planar = planar }
}

// WithOrientation fixes the expected sign of signed UV triangle area.
// Required: New returns ErrMissingOrientation if it is never supplied.
// Panics if or is not ±1.
func WithOrientation(or int) RefineOption {
	if or != 1 && or != -1 {
		panic("config: WithOrientation must be +1 or -1")
	}
	return func(c *Config) {
		c.orUV = or
		c.orientationSet = true
	}
}

// WithOutLevel sets the verbosity threshold consumed by refine's logf helper
// (spec.md §6's outLevel(face)).
func WithOutLevel(level int) RefineOption {
	return func(c *Config) { c.outLevel = level }
}

// Config is the immutable (after New) parameter set for one tessellate call.
//
// Complexity: field access is O(1); New applies N options in O(N).
// Concurrency: Config is read-only after construction and safe to share
// across goroutines provided the *core.TriStruct* it configures is not
// (spec.md §5 — single-threaded per face).
type Config struct {
	chord  float64
	maxlen float64
	minlen float64
	dotnrm float64
	maxPts int
	planar bool
	orUV   int

	orientationSet bool
	outLevel       int
}

// New builds a Config from zero or more RefineOption values, applied
// left-to-right. Returns ErrMissingOrientation if WithOrientation was never
// supplied — orientation has no safe default (spec.md's orUV ∈ {+1,-1}).
func New(opts ...RefineOption) (*Config, error) {
	c := &Config{}
	for _, opt := range opts {
		opt(c)
	}
	if !c.orientationSet {
		return nil, ErrMissingOrientation
	}
	return c, nil
}

// Chord returns the configured chord-deviation tolerance.
func (c *Config) Chord() float64 { return c.chord }

// MaxLen returns the configured maximum side length.
func (c *Config) MaxLen() float64 { return c.maxlen }

// MinLen returns the configured floor for eps2/devia2.
func (c *Config) MinLen() float64 { return c.minlen }

// DotNorm returns the configured dihedral swap/insertion threshold.
func (c *Config) DotNorm() float64 { return c.dotnrm }

// MaxPoints returns the raw signed point-budget value (0 == uncapped).
func (c *Config) MaxPoints() int { return c.maxPts }

// Planar reports whether the planar branch of the driver is selected.
func (c *Config) Planar() bool { return c.planar }

// Orientation returns the expected sign of signed UV triangle area (+1/-1).
func (c *Config) Orientation() int { return c.orUV }

// OutLevel returns the configured verbosity threshold.
func (c *Config) OutLevel() int { return c.outLevel }

// InteriorCap reports the interior-vertex cap implied by MaxPoints, and
// whether a cap applies at all (spec.md §6: maxPts < 0 caps interior
// vertices to |maxPts| - 2).
func (c *Config) InteriorCap() (cap int, ok bool) {
	if c.maxPts >= 0 {
		return 0, false
	}
	n := -c.maxPts - 2
	if n < 0 {
		n = 0
	}
	return n, true
}

// TotalCap reports the total-vertex cap implied by MaxPoints, and whether a
// cap applies at all (spec.md §6: maxPts > 0 caps total vertices).
func (c *Config) TotalCap() (cap int, ok bool) {
	if c.maxPts <= 0 {
		return 0, false
	}
	return c.maxPts, true
}
