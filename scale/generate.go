package scale

import (
	"fmt"

	"github.com/keyatlas/keyatlas/model"
	"github.com/keyatlas/keyatlas/pitch"
)

// Generate derives the 7 diatonic seventh chords of a scale, in degree order
// (I..VII). Pure: same inputs always give structurally identical output.
// Fails with pitch.ErrUnknownRoot for an unrecognized root token.
func Generate(root string, t Type) ([]model.Chord, error) {
	rootClass, err := pitch.ParseRoot(root)
	if err != nil {
		return nil, err
	}

	def, ok := scaleDefs[t]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownScale, int(t))
	}

	preferFlats := t.IsMinor()
	chords := make([]model.Chord, 0, 7)
	seen := make(map[string]int)

	for degree := 0; degree < 7; degree++ {
		interval := def.intervals[degree]
		quality := def.qualities[degree]
		chordRoot := pitch.ClassName(rootClass+interval, preferFlats)

		notes := make([]string, 0, 4)
		for _, offset := range quality.Offsets() {
			class := pitch.Class(rootClass + interval + offset)
			// notes roll into higher octaves as they pass 12
			// semitones above the tonic
			octave := 4 + (interval+offset)/12
			notes = append(notes, pitch.ClassName(class, preferFlats)+fmt.Sprint(octave))
		}

		symbol := chordRoot + qualityDefs[quality].symbolSuffix
		if prev, dup := seen[symbol]; dup {
			// unreachable with the built-in tables (7 distinct
			// chord roots) but future table rows could collide
			return nil, fmt.Errorf("chord symbol %q produced by degrees %d and %d", symbol, prev+1, degree+1)
		}
		seen[symbol] = degree

		chords = append(chords, model.Chord{
			Symbol:  symbol,
			Name:    chordRoot + " " + quality.DisplayName(),
			Quality: quality.Tag(),
			Notes:   notes,
			Roman:   Roman(degree, quality),
			Degree:  degree,
		})
	}
	return chords, nil
}

// GenerateByTag is Generate with a scale-type tag instead of a Type.
func GenerateByTag(root, tag string) ([]model.Chord, error) {
	t, err := ParseType(tag)
	if err != nil {
		return nil, err
	}
	return Generate(root, t)
}

// FindBySymbol locates a chord by its symbol within a generated set.
func FindBySymbol(chords []model.Chord, symbol string) (model.Chord, bool) {
	for _, c := range chords {
		if c.Symbol == symbol {
			return c, true
		}
	}
	return model.Chord{}, false
}
