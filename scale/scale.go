// Package scale holds the scale and chord-quality tables and derives diatonic
// seventh chords from them. The tables are constant data, safe to read from
// any number of goroutines.
package scale

import (
	"errors"
	"fmt"
)

var ErrUnknownScale = errors.New("unknown scale type")

// Type enumerates the built-in scale types.
type Type int

const (
	Major Type = iota
	NaturalMinor
	HarmonicMinor
	MelodicMinor
)

// Quality enumerates the seventh-chord qualities the scale tables produce.
type Quality int

const (
	Maj7 Quality = iota
	Min7
	Dom7
	HalfDim7
	MinMaj7
	Maj7Sharp5
	Dim7
)

type scaleDef struct {
	tag       string
	intervals [7]int
	qualities [7]Quality
}

// Melodic minor is the ascending form.
var scaleDefs = map[Type]scaleDef{
	Major: {
		tag:       "major",
		intervals: [7]int{0, 2, 4, 5, 7, 9, 11},
		qualities: [7]Quality{Maj7, Min7, Min7, Maj7, Dom7, Min7, HalfDim7},
	},
	NaturalMinor: {
		tag:       "natural_minor",
		intervals: [7]int{0, 2, 3, 5, 7, 8, 10},
		qualities: [7]Quality{Min7, HalfDim7, Maj7, Min7, Min7, Maj7, Dom7},
	},
	HarmonicMinor: {
		tag:       "harmonic_minor",
		intervals: [7]int{0, 2, 3, 5, 7, 8, 11},
		qualities: [7]Quality{MinMaj7, HalfDim7, Maj7Sharp5, Min7, Dom7, Maj7, Dim7},
	},
	MelodicMinor: {
		tag:       "melodic_minor",
		intervals: [7]int{0, 2, 3, 5, 7, 9, 11},
		qualities: [7]Quality{MinMaj7, Min7, Maj7Sharp5, Dom7, Dom7, HalfDim7, HalfDim7},
	},
}

type qualityDef struct {
	offsets     [4]int
	tag         string
	displayName string
	symbolSuffix string
	romanSuffix string
	// lowercase numerals for minor-ish qualities
	lowercase bool
}

var qualityDefs = map[Quality]qualityDef{
	Maj7:       {[4]int{0, 4, 7, 11}, "maj7", "Major 7", "maj7", "maj7", false},
	Min7:       {[4]int{0, 3, 7, 10}, "m7", "Minor 7", "m7", "7", true},
	Dom7:       {[4]int{0, 4, 7, 10}, "7", "Dominant 7", "7", "7", false},
	HalfDim7:   {[4]int{0, 3, 6, 10}, "m7b5", "Minor 7 flat 5", "m7b5", "m7b5", true},
	MinMaj7:    {[4]int{0, 3, 7, 11}, "mMaj7", "Minor Major 7", "mMaj7", "mMaj7", true},
	Maj7Sharp5: {[4]int{0, 4, 8, 11}, "maj7#5", "Major 7 sharp 5", "maj7#5", "maj7#5", false},
	Dim7:       {[4]int{0, 3, 6, 9}, "dim7", "Diminished 7", "dim7", "dim7", true},
}

var romanBase = [7]string{"I", "II", "III", "IV", "V", "VI", "VII"}
var romanLower = [7]string{"i", "ii", "iii", "iv", "v", "vi", "vii"}

var degreeNames = [7]string{
	"Tonic", "Supertonic", "Mediant", "Subdominant", "Dominant", "Submediant", "",
}

// Tags lists the recognized scale-type tags in a fixed order.
func Tags() []string {
	return []string{
		Major.Tag(), NaturalMinor.Tag(), HarmonicMinor.Tag(), MelodicMinor.Tag(),
	}
}

// ParseType resolves a scale-type tag ("major", "natural_minor",
// "harmonic_minor", "melodic_minor").
func ParseType(tag string) (Type, error) {
	for t, def := range scaleDefs {
		if def.tag == tag {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownScale, tag)
}

// Tag returns the scale type's canonical tag.
func (t Type) Tag() string {
	return scaleDefs[t].tag
}

// Intervals returns the 7 semitone offsets from the scale root.
func (t Type) Intervals() [7]int {
	return scaleDefs[t].intervals
}

// Qualities returns the seventh-chord quality built on each degree.
func (t Type) Qualities() [7]Quality {
	return scaleDefs[t].qualities
}

// IsMinor reports whether the type is in the minor family. Minor contexts
// spell notes with flats.
func (t Type) IsMinor() bool {
	return t != Major
}

// Tag returns the quality's short tag, e.g. "m7b5".
func (q Quality) Tag() string {
	return qualityDefs[q].tag
}

// Offsets returns the 4 semitone offsets from the chord root.
func (q Quality) Offsets() [4]int {
	return qualityDefs[q].offsets
}

// DisplayName returns the long name, e.g. "Minor 7 flat 5".
func (q Quality) DisplayName() string {
	return qualityDefs[q].displayName
}

// IsLowercase reports whether Roman numerals for this quality are written in
// lower case (minor, diminished, half-diminished, minor-major).
func (q Quality) IsLowercase() bool {
	return qualityDefs[q].lowercase
}

// Roman builds the Roman-numeral function string for a degree (0-based) and
// quality, e.g. (4, Dom7) -> "V7", (6, HalfDim7) -> "viim7b5".
func Roman(degree int, q Quality) string {
	return RomanNumeral(degree, q) + qualityDefs[q].romanSuffix
}

// RomanNumeral is the bare case-coded numeral without a quality suffix,
// e.g. "V" or "vii".
func RomanNumeral(degree int, q Quality) string {
	if qualityDefs[q].lowercase {
		return romanLower[degree]
	}
	return romanBase[degree]
}

// DegreeName names a scale degree (0-based): Tonic, Supertonic, Mediant,
// Subdominant, Dominant, Submediant, and for the 7th degree Leading Tone when
// it sits a semitone below the tonic, Subtonic when a whole tone below.
func DegreeName(degree int, t Type) string {
	if degree == 6 {
		if scaleDefs[t].intervals[6] == 11 {
			return "Leading Tone"
		}
		return "Subtonic"
	}
	return degreeNames[degree]
}
