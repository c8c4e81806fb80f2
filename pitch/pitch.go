// Package pitch converts between note names, MIDI-style pitch numbers and
// pitch classes. C4 = 60, so octave n starts at (n+1)*12.
package pitch

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

var (
	ErrMalformedNoteName = errors.New("malformed note name")
	ErrUnknownRoot       = errors.New("unknown root")
)

// letterClass maps a note letter to its semitone offset from C.
var letterClass = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

var sharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
var flatNames = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

// rootClass maps every recognized bare pitch-class token to its class.
var rootClass = map[string]int{
	"C": 0, "C#": 1, "Db": 1, "D": 2, "D#": 3, "Eb": 3, "E": 4,
	"F": 5, "F#": 6, "Gb": 6, "G": 7, "G#": 8, "Ab": 8, "A": 9,
	"A#": 10, "Bb": 10, "B": 11,
}

var noteNameRe = regexp.MustCompile(`^([A-G])(#|b)?([0-9]+)$`)

// NameToPitch parses a note name like "C4", "Eb3" or "F#5" into its pitch
// number. "Eb4" and "D#4" both come back as 63.
func NameToPitch(name string) (int, error) {
	m := noteNameRe.FindStringSubmatch(name)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedNoteName, name)
	}
	class := letterClass[m[1][0]]
	switch m[2] {
	case "#":
		class++
	case "b":
		class--
	}
	octave, err := strconv.Atoi(m[3])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedNoteName, name)
	}
	return Class(class) + (octave+1)*12, nil
}

// PitchToName spells a pitch number. preferFlats picks the flat spelling
// table; minor-scale contexts want flats, major wants sharps.
func PitchToName(p int, preferFlats bool) string {
	return ClassName(Class(p), preferFlats) + strconv.Itoa(p/12-1)
}

// Class reduces a pitch to its pitch class in [0,11]. Floor-mod, so negative
// offsets below the reference octave still land in range.
func Class(p int) int {
	c := p % 12
	if c < 0 {
		c += 12
	}
	return c
}

// ClassName spells a bare pitch class without an octave.
func ClassName(class int, preferFlats bool) string {
	if preferFlats {
		return flatNames[Class(class)]
	}
	return sharpNames[Class(class)]
}

// Roots lists the 12 canonical root tokens, flat spellings, in chromatic
// order.
func Roots() []string {
	return append([]string(nil), flatNames[:]...)
}

// ParseRoot resolves a bare root token ("C", "Db", "F#") to its pitch class.
func ParseRoot(root string) (int, error) {
	class, ok := rootClass[root]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownRoot, root)
	}
	return class, nil
}
