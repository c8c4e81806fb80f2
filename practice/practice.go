// Package practice implements the click-to-identify game: a round shows a
// chord's notes and the player picks its symbol from a set of choices.
package practice

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/keyatlas/keyatlas/model"
	"github.com/keyatlas/keyatlas/pitch"
	"github.com/keyatlas/keyatlas/scale"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

const numChoices = 4

// Options controls round generation. Zero values mean "pick at random".
type Options struct {
	Difficulty string
	Root       string
	ScaleType  string
	// Rand makes rounds reproducible in tests; nil uses the shared source.
	Rand *rand.Rand
}

// NewRound builds a fresh challenge. Difficulty changes the voicing and the
// decoy pool:
//   - easy: root-position notes, decoys from the same key
//   - medium: a random inversion
//   - hard: a random inversion, decoys drawn from the dominant key as well
//
// Chord values from the generator are never mutated; re-voicings are built
// as new note lists.
func NewRound(opts Options) (model.Round, error) {
	intn := rand.Intn
	shuffle := rand.Shuffle
	if opts.Rand != nil {
		intn = opts.Rand.Intn
		shuffle = opts.Rand.Shuffle
	}

	difficulty := opts.Difficulty
	switch difficulty {
	case "":
		difficulty = DifficultyEasy
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
	default:
		return model.Round{}, fmt.Errorf("unknown difficulty %q", opts.Difficulty)
	}

	tag := opts.ScaleType
	if tag == "" {
		tags := scale.Tags()
		tag = tags[intn(len(tags))]
	}
	t, err := scale.ParseType(tag)
	if err != nil {
		return model.Round{}, err
	}

	root := opts.Root
	if root == "" {
		roots := pitch.Roots()
		root = roots[intn(len(roots))]
	}

	chords, err := scale.Generate(root, t)
	if err != nil {
		return model.Round{}, err
	}

	target := chords[intn(len(chords))]
	notes := target.Notes
	if difficulty != DifficultyEasy {
		notes, err = invert(target.Notes, 1+intn(3), t.IsMinor())
		if err != nil {
			return model.Round{}, err
		}
	}

	pool := make([]string, 0, 14)
	for _, c := range chords {
		if c.Symbol != target.Symbol {
			pool = append(pool, c.Symbol)
		}
	}
	if difficulty == DifficultyHard {
		domRoot := pitch.ClassName(mustRootClass(root)+7, t.IsMinor())
		domChords, err := scale.Generate(domRoot, t)
		if err != nil {
			return model.Round{}, err
		}
		seen := map[string]bool{target.Symbol: true}
		for _, s := range pool {
			seen[s] = true
		}
		for _, c := range domChords {
			if !seen[c.Symbol] {
				pool = append(pool, c.Symbol)
			}
		}
	}

	shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	choices := append([]string{target.Symbol}, pool[:numChoices-1]...)
	shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})

	return model.Round{
		ID:         uuid.New().String(),
		Root:       root,
		ScaleType:  tag,
		Difficulty: difficulty,
		Notes:      notes,
		Choices:    choices,
		Answer:     target.Symbol,
	}, nil
}

// Check reports whether the answered symbol is the round's chord.
func Check(round model.Round, symbol string) bool {
	return symbol == round.Answer
}

// invert moves the bottom note up an octave, `times` times, producing a new
// note list.
func invert(notes []string, times int, preferFlats bool) ([]string, error) {
	res := append([]string(nil), notes...)
	for n := 0; n < times; n++ {
		p, err := pitch.NameToPitch(res[0])
		if err != nil {
			return nil, err
		}
		res = append(res[1:], pitch.PitchToName(p+12, preferFlats))
	}
	return res, nil
}

func mustRootClass(root string) int {
	// root has already been through scale.Generate
	class, _ := pitch.ParseRoot(root)
	return class
}
