// Package related enumerates keys musically related to a source scale,
// ordered from high to low commonality.
package related

import (
	"github.com/keyatlas/keyatlas/model"
	"github.com/keyatlas/keyatlas/pitch"
	"github.com/keyatlas/keyatlas/scale"
)

const (
	TierHigh   = "high"
	TierMedium = "medium"
	TierLow    = "low"
)

// descriptions is keyed by relationship label; the display layer shows these
// next to each entry.
var descriptions = map[string]string{
	"Relative Minor":           "Same key signature, minor mode; the smoothest mode change",
	"Relative Major":           "Same key signature, major mode; the smoothest mode change",
	"Parallel Minor":           "Same tonic, minor mode; borrows chords freely",
	"Parallel Major":           "Same tonic, major mode; borrows chords freely",
	"Dominant (V)":             "A fifth up; the strongest pull back to the source key",
	"Subdominant (IV)":         "A fifth down; softens tension, common in plagal motion",
	"Dominant (v)":             "A fifth up in minor; the strongest pull back to the source key",
	"Subdominant (iv)":         "A fifth down in minor; softens tension",
	"Dominant Minor (v)":       "The dominant with mixture; darkens a cadence",
	"Subdominant Minor (iv)":   "The subdominant with mixture; a classic borrowed color",
	"Supertonic (II)":          "A step up; pre-dominant territory",
	"Supertonic (ii)":          "A step up; pre-dominant territory",
	"Supertonic Minor (ii)":    "The relative minor of the subdominant",
	"Mediant (III)":            "A third up; shares the tonic triad's upper tones",
	"Mediant (iii)":            "A third up; shares the tonic triad's upper tones",
	"Mediant Minor (iii)":      "The minor mediant; gentle, shares two tonic tones",
	"Submediant (VI)":          "A sixth up; deceptive-cadence target",
	"Submediant (vi)":          "A sixth up; deceptive-cadence target",
	"Chromatic Mediant (bIII)": "A chromatic third; dramatic color shift",
	"Chromatic Submediant (bVI)": "A chromatic sixth; dramatic color shift",
	"Neapolitan (bII)":         "A semitone up; dark pre-dominant color",
	"Subtonic (bVII)":          "A whole tone down; modal, rock-flavored",
	"Subtonic (vii)":           "A whole tone below the tonic in minor",
	"Leading Tone Minor (vii)": "A semitone below the tonic; remote and tense",
	"Tritone":                  "Six semitones away; the most distant key",
}

// Describe returns the one-line description for a relationship label.
func Describe(label string) string {
	return descriptions[label]
}

type entry struct {
	offset int
	minor  bool // target mode; same-mode entries keep the source's exact type
	label  string
	tier   string
}

// FindRelatedKeys lists keys related to (root, scaleType), high tier first.
// Roots are spelled from the flats-preferring chromatic table.
func FindRelatedKeys(root string, t scale.Type) ([]model.RelatedKey, error) {
	rootClass, err := pitch.ParseRoot(root)
	if err != nil {
		return nil, err
	}

	var entries []entry
	if t == scale.Major {
		entries = []entry{
			{9, true, "Relative Minor", TierHigh},
			{0, true, "Parallel Minor", TierHigh},
			{7, false, "Dominant (V)", TierHigh},
			{5, false, "Subdominant (IV)", TierHigh},
			{7, true, "Dominant Minor (v)", TierHigh},
			{5, true, "Subdominant Minor (iv)", TierHigh},
			{2, false, "Supertonic (II)", TierMedium},
			{4, false, "Mediant (III)", TierMedium},
			{9, false, "Submediant (VI)", TierMedium},
			{2, true, "Supertonic Minor (ii)", TierMedium},
			{4, true, "Mediant Minor (iii)", TierMedium},
			{3, false, "Chromatic Mediant (bIII)", TierLow},
			{8, false, "Chromatic Submediant (bVI)", TierLow},
			{1, false, "Neapolitan (bII)", TierLow},
			{10, false, "Subtonic (bVII)", TierLow},
			{11, true, "Leading Tone Minor (vii)", TierLow},
			{6, false, "Tritone", TierLow},
		}
	} else {
		entries = []entry{
			{3, false, "Relative Major", TierHigh},
			{0, false, "Parallel Major", TierHigh},
			{7, true, "Dominant (v)", TierHigh},
			{5, true, "Subdominant (iv)", TierHigh},
			{2, true, "Supertonic (ii)", TierMedium},
			{3, true, "Mediant (iii)", TierMedium},
			{9, true, "Submediant (vi)", TierMedium},
			{10, true, "Subtonic (vii)", TierLow},
			{6, true, "Tritone", TierLow},
		}
	}

	res := make([]model.RelatedKey, 0, len(entries))
	for _, e := range entries {
		targetTag := t.Tag()
		if t == scale.Major {
			if e.minor {
				targetTag = scale.NaturalMinor.Tag()
			}
		} else if !e.minor {
			targetTag = scale.Major.Tag()
		}
		res = append(res, model.RelatedKey{
			Root:        pitch.ClassName(rootClass+e.offset, true),
			ScaleType:   targetTag,
			Label:       e.label,
			Tier:        e.tier,
			Description: descriptions[e.label],
		})
	}
	return res, nil
}

// FindRelatedKeysByTag is FindRelatedKeys with a scale-type tag.
func FindRelatedKeysByTag(root, tag string) ([]model.RelatedKey, error) {
	t, err := scale.ParseType(tag)
	if err != nil {
		return nil, err
	}
	return FindRelatedKeys(root, t)
}
