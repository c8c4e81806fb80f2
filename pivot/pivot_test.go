package pivot

import (
	"testing"

	"github.com/keyatlas/keyatlas/model"
	"github.com/keyatlas/keyatlas/scale"
	"github.com/stretchr/testify/assert"
)

func findBySymbol(pivots []model.PivotChord, symbol string) (model.PivotChord, bool) {
	for _, p := range pivots {
		if p.Symbol == symbol {
			return p, true
		}
	}
	return model.PivotChord{}, false
}

func TestRelativeKeysShareEverything(t *testing.T) {
	assert := assert.New(t)

	// A natural minor is the relative minor of C major: identical chords
	pivots, err := FindPivotChords("C", scale.Major, "A", scale.NaturalMinor)
	assert.NoError(err)
	assert.Len(pivots, 7)

	am7, ok := findBySymbol(pivots, "Am7")
	assert.True(ok)
	assert.Equal("Submediant (vi)", am7.RoleA)
	assert.Equal("Tonic (i)", am7.RoleB)

	g7, ok := findBySymbol(pivots, "G7")
	assert.True(ok)
	assert.Equal("Dominant (V)", g7.RoleA)
	assert.Equal("Subtonic (VII)", g7.RoleB)
	assert.Equal(8, g7.Score)
}

func TestDominantKeysShareASubset(t *testing.T) {
	assert := assert.New(t)

	pivots, err := FindPivotChords("C", scale.Major, "G", scale.Major)
	assert.NoError(err)
	assert.NotEmpty(pivots)
	assert.Less(len(pivots), 7)

	for _, symbol := range []string{"Cmaj7", "Em7", "Am7"} {
		_, ok := findBySymbol(pivots, symbol)
		assert.True(ok, symbol)
	}
	// the dominant sevenths differ (F vs F#), so G7 is not shared
	_, ok := findBySymbol(pivots, "G7")
	assert.False(ok)
}

func TestScoresSortedDescendingStable(t *testing.T) {
	assert := assert.New(t)

	pivots, err := FindPivotChords("C", scale.Major, "A", scale.NaturalMinor)
	assert.NoError(err)
	for i := 1; i < len(pivots); i++ {
		assert.GreaterOrEqual(pivots[i-1].Score, pivots[i].Score)
	}
	// the three 8s keep generation order: Dm7 (ii/iv), Em7 (iii/v), G7 (V/VII)
	assert.Equal("Dm7", pivots[0].Symbol)
	assert.Equal("Em7", pivots[1].Symbol)
	assert.Equal("G7", pivots[2].Symbol)
	// the tonic-bearing pivots tie at 4 and keep generation order:
	// Cmaj7 (I/III) before Am7 (vi/i)
	assert.Equal("Cmaj7", pivots[5].Symbol)
	assert.Equal(4, pivots[5].Score)
	assert.Equal("Am7", pivots[6].Symbol)
	assert.Equal(4, pivots[6].Score)
}

func TestSubdominantTokenDoesNotReadAsDominant(t *testing.T) {
	assert := assert.New(t)

	pivots, err := FindPivotChords("C", scale.Major, "G", scale.Major)
	assert.NoError(err)

	// Cmaj7 is Tonic (I) in C and Subdominant (IV) in G: 5 - 1 + 2 = 6.
	// A substring match of "V" inside "IV" would wrongly add the dominant
	// bonus and give 9.
	cmaj7, ok := findBySymbol(pivots, "Cmaj7")
	assert.True(ok)
	assert.Equal("Tonic (I)", cmaj7.RoleA)
	assert.Equal("Subdominant (IV)", cmaj7.RoleB)
	assert.Equal(6, cmaj7.Score)
}

func TestScoresStayInRange(t *testing.T) {
	assert := assert.New(t)

	roots := []string{"C", "G", "A", "Eb", "F#"}
	for _, ra := range roots {
		for _, rb := range roots {
			for _, ta := range []scale.Type{scale.Major, scale.NaturalMinor, scale.HarmonicMinor, scale.MelodicMinor} {
				for _, tb := range []scale.Type{scale.Major, scale.NaturalMinor} {
					pivots, err := FindPivotChords(ra, ta, rb, tb)
					assert.NoError(err)
					for _, p := range pivots {
						assert.GreaterOrEqual(p.Score, 0)
						assert.LessOrEqual(p.Score, 10)
					}
				}
			}
		}
	}
}

func TestNoSharedChordsIsNotAnError(t *testing.T) {
	assert := assert.New(t)

	// a tritone apart in major shares no diatonic seventh chord
	pivots, err := FindPivotChords("C", scale.Major, "Gb", scale.Major)
	assert.NoError(err)
	assert.Empty(pivots)
}

func TestUnknownInputsPropagate(t *testing.T) {
	assert := assert.New(t)

	_, err := FindPivotChordsByTag("C", "major", "X", "major")
	assert.Error(err)
	_, err = FindPivotChordsByTag("C", "locrian", "G", "major")
	assert.ErrorIs(err, scale.ErrUnknownScale)
}
