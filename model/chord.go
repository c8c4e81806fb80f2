package model

// Chord is one diatonic seventh chord, derived fresh on every generation.
// Nothing mutates a Chord after it is returned; variants (inversions etc.)
// are built as new values.
type Chord struct {
	// Symbol is the short token, e.g. "Cmaj7", "Dm7", "Bm7b5".
	Symbol string
	// Name is the display name, e.g. "C Major 7".
	Name string
	// Quality is the quality tag, e.g. "maj7", "m7b5".
	Quality string
	// Notes are spelled note names with octave, root-3rd-5th-7th order.
	Notes []string
	// Roman is the Roman-numeral function, e.g. "Imaj7", "viim7b5".
	Roman string
	// Degree is the 0-based scale degree the chord is built on.
	Degree int
}

// RelatedKey is one entry in a key-relationship listing.
type RelatedKey struct {
	Root        string
	ScaleType   string
	Label       string
	Tier        string // "high", "medium" or "low"
	Description string
}

// PivotChord is a chord shared by two scales, usable to modulate between
// them. RoleA/RoleB are functional labels like "Dominant (V)".
type PivotChord struct {
	Symbol string
	RoleA  string
	RoleB  string
	Notes  []string
	// Score rates modulation smoothness, 0 (awkward) to 10 (smooth).
	Score int
}
