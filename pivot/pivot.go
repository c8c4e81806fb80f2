// Package pivot finds chords shared between two scales and ranks them as
// modulation candidates.
package pivot

import (
	"sort"
	"strings"

	"github.com/keyatlas/keyatlas/chord"
	"github.com/keyatlas/keyatlas/model"
	"github.com/keyatlas/keyatlas/scale"
)

// FindPivotChords compares the diatonic seventh chords of two scales by
// pitch-class-set equality and returns the shared ones, best-scoring first.
// An empty result just means the keys share no seventh chord.
func FindPivotChords(rootA string, tA scale.Type, rootB string, tB scale.Type) ([]model.PivotChord, error) {
	chordsA, err := scale.Generate(rootA, tA)
	if err != nil {
		return nil, err
	}
	chordsB, err := scale.Generate(rootB, tB)
	if err != nil {
		return nil, err
	}

	keysB := make([]string, len(chordsB))
	for i, c := range chordsB {
		keysB[i], err = chord.CreateChordKey(c.Notes)
		if err != nil {
			return nil, err
		}
	}

	pivots := make([]model.PivotChord, 0)
	for _, a := range chordsA {
		keyA, err := chord.CreateChordKey(a.Notes)
		if err != nil {
			return nil, err
		}
		for j, b := range chordsB {
			if keyA != keysB[j] {
				continue
			}
			p := model.PivotChord{
				Symbol: a.Symbol,
				RoleA:  functionalLabel(a, tA),
				RoleB:  functionalLabel(b, tB),
				Notes:  a.Notes,
			}
			p.Score = score(p.RoleA, p.RoleB)
			pivots = append(pivots, p)
		}
	}

	// ties keep enumeration order (A outer, B inner)
	sort.SliceStable(pivots, func(i, j int) bool {
		return pivots[i].Score > pivots[j].Score
	})
	return pivots, nil
}

// FindPivotChordsByTag is FindPivotChords with scale-type tags.
func FindPivotChordsByTag(rootA, tagA, rootB, tagB string) ([]model.PivotChord, error) {
	tA, err := scale.ParseType(tagA)
	if err != nil {
		return nil, err
	}
	tB, err := scale.ParseType(tagB)
	if err != nil {
		return nil, err
	}
	return FindPivotChords(rootA, tA, rootB, tB)
}

// functionalLabel names a chord's role within its own key, e.g.
// "Dominant (V)" or "Tonic (i)". The degree comes from the chord's position
// in its generated set, not from re-derived interval math.
func functionalLabel(c model.Chord, t scale.Type) string {
	q := qualityByTag(c.Quality)
	return scale.DegreeName(c.Degree, t) + " (" + scale.RomanNumeral(c.Degree, q) + ")"
}

func qualityByTag(tag string) scale.Quality {
	for _, q := range []scale.Quality{
		scale.Maj7, scale.Min7, scale.Dom7, scale.HalfDim7,
		scale.MinMaj7, scale.Maj7Sharp5, scale.Dim7,
	} {
		if q.Tag() == tag {
			return q
		}
	}
	return scale.Maj7
}

// numeralToken pulls the parenthesized numeral out of a functional label.
// Scoring compares whole tokens so "IV" and "VII" never read as "V".
func numeralToken(label string) string {
	open := strings.IndexByte(label, '(')
	end := strings.IndexByte(label, ')')
	if open < 0 || end < open {
		return ""
	}
	return label[open+1 : end]
}

// score rates modulation smoothness 0-10. Base 5; a dominant-function side is
// the strongest pivot, subdominant next, supertonic mild, tonic a liability
// (it undercuts the arrival of the new key). Each condition counts once even
// when both sides match it.
func score(roleA, roleB string) int {
	either := func(toks ...string) bool {
		for _, tok := range toks {
			if numeralToken(roleA) == tok || numeralToken(roleB) == tok {
				return true
			}
		}
		return false
	}

	s := 5
	if either("V", "v") {
		s += 3
	}
	if either("IV", "iv") {
		s += 2
	}
	if either("II", "ii") {
		s++
	}
	if either("I", "i") {
		s--
	}
	if s < 0 {
		s = 0
	}
	if s > 10 {
		s = 10
	}
	return s
}
