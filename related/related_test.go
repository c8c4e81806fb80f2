package related

import (
	"testing"

	"github.com/keyatlas/keyatlas/scale"
	"github.com/stretchr/testify/assert"
)

func labelsOf(t *testing.T, root string, st scale.Type) []string {
	keys, err := FindRelatedKeys(root, st)
	assert.NoError(t, err)
	labels := make([]string, 0, len(keys))
	for _, k := range keys {
		labels = append(labels, k.Label)
	}
	return labels
}

func TestMajorIncludesMixtureDominants(t *testing.T) {
	assert := assert.New(t)

	labels := labelsOf(t, "C", scale.Major)
	assert.Contains(labels, "Dominant Minor (v)")
	assert.Contains(labels, "Subdominant Minor (iv)")
}

func TestMinorExcludesMixtureDominants(t *testing.T) {
	assert := assert.New(t)

	labels := labelsOf(t, "C", scale.NaturalMinor)
	assert.NotContains(labels, "Dominant Minor (v)")
	assert.NotContains(labels, "Subdominant Minor (iv)")
	assert.Contains(labels, "Dominant (v)")
	assert.Contains(labels, "Subdominant (iv)")
}

func TestTiersOrderedHighToLow(t *testing.T) {
	assert := assert.New(t)

	rank := map[string]int{TierHigh: 0, TierMedium: 1, TierLow: 2}
	for _, st := range []scale.Type{scale.Major, scale.NaturalMinor, scale.HarmonicMinor} {
		keys, err := FindRelatedKeys("C", st)
		assert.NoError(err)
		prev := 0
		for _, k := range keys {
			assert.GreaterOrEqual(rank[k.Tier], prev)
			prev = rank[k.Tier]
		}
	}
}

func TestCMajorTargets(t *testing.T) {
	assert := assert.New(t)

	keys, err := FindRelatedKeys("C", scale.Major)
	assert.NoError(err)

	byLabel := make(map[string]int)
	for i, k := range keys {
		byLabel[k.Label] = i
	}

	relative := keys[byLabel["Relative Minor"]]
	assert.Equal("A", relative.Root)
	assert.Equal("natural_minor", relative.ScaleType)

	dominant := keys[byLabel["Dominant (V)"]]
	assert.Equal("G", dominant.Root)
	assert.Equal("major", dominant.ScaleType)

	// flats-preferring spelling throughout
	neapolitan := keys[byLabel["Neapolitan (bII)"]]
	assert.Equal("Db", neapolitan.Root)

	tritone := keys[byLabel["Tritone"]]
	assert.Equal("Gb", tritone.Root)
	assert.Equal("major", tritone.ScaleType)
}

func TestMinorVariantsKeepTheirScaleType(t *testing.T) {
	assert := assert.New(t)

	keys, err := FindRelatedKeys("A", scale.HarmonicMinor)
	assert.NoError(err)
	for _, k := range keys {
		switch k.Label {
		case "Relative Major", "Parallel Major":
			assert.Equal("major", k.ScaleType)
		default:
			assert.Equal("harmonic_minor", k.ScaleType, k.Label)
		}
	}

	byLabel := make(map[string]string)
	for _, k := range keys {
		byLabel[k.Label] = k.Root
	}
	assert.Equal("C", byLabel["Relative Major"])
	assert.Equal("A", byLabel["Parallel Major"])
	assert.Equal("E", byLabel["Dominant (v)"])
}

func TestEveryEntryHasADescription(t *testing.T) {
	assert := assert.New(t)

	for _, st := range []scale.Type{scale.Major, scale.NaturalMinor} {
		keys, err := FindRelatedKeys("Eb", st)
		assert.NoError(err)
		for _, k := range keys {
			assert.NotEmpty(k.Description, k.Label)
			assert.Equal(k.Description, Describe(k.Label))
		}
	}
}

func TestUnknownInputs(t *testing.T) {
	assert := assert.New(t)

	_, err := FindRelatedKeysByTag("C", "phrygian")
	assert.ErrorIs(err, scale.ErrUnknownScale)

	_, err = FindRelatedKeysByTag("X", "major")
	assert.Error(err)
}
