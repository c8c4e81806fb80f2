// Package chord holds the pitch-class-set primitives shared by the analyzers:
// canonical set keys for enharmonic comparison and the chord-degree
// classifier used to label notes relative to a chord.
package chord

import (
	"fmt"
	"sort"

	"github.com/keyatlas/keyatlas/pitch"
)

// DegreeUnknown is the classifier's sentinel for intervals with no
// functional label. Callers render nothing rather than failing.
const DegreeUnknown = "?"

// degreeLabels covers the chord-tone-adjacent intervals only. 1, 2 and 5
// semitones have no meaningful chord-degree name.
var degreeLabels = map[int]string{
	0:  "1",
	3:  "b3",
	4:  "3",
	6:  "b5",
	7:  "5",
	8:  "#5",
	9:  "6",
	10: "b7",
	11: "7",
}

// CreateChordKey reduces note names to a canonical pitch-class-set key.
// Two chords get the same key exactly when they sound the same pitch classes,
// regardless of spelling, octave or voicing order.
func CreateChordKey(notes []string) (string, error) {
	seen := make(map[int]bool)
	var classes []int
	for _, n := range notes {
		p, err := pitch.NameToPitch(n)
		if err != nil {
			return "", err
		}
		c := pitch.Class(p)
		if !seen[c] {
			seen[c] = true
			classes = append(classes, c)
		}
	}
	sort.Ints(classes)
	var res string
	for i, c := range classes {
		res += fmt.Sprintf("%v", c)
		if i < len(classes)-1 {
			res += "-"
		}
	}
	return res, nil
}

// Degree labels a pitch relative to a chord whose root is the first entry of
// chordPitches: "1", "b3", "3", "b5", "5", "#5", "6", "b7" or "7".
// Intervals outside the table come back as DegreeUnknown, never an error.
func Degree(notePitch int, chordPitches []int) string {
	if len(chordPitches) == 0 {
		return DegreeUnknown
	}
	interval := pitch.Class(pitch.Class(notePitch) - pitch.Class(chordPitches[0]))
	if label, ok := degreeLabels[interval]; ok {
		return label
	}
	return DegreeUnknown
}
