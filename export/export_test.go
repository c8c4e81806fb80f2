package export

import (
	"testing"

	"github.com/keyatlas/keyatlas/model"
	"github.com/keyatlas/keyatlas/scale"
	"github.com/stretchr/testify/assert"
)

func TestChordSetSMF(t *testing.T) {
	assert := assert.New(t)

	chords, err := scale.Generate("C", scale.Major)
	assert.NoError(err)

	s, err := ChordSetSMF(chords)
	assert.NoError(err)
	assert.Len(s.Tracks, 1)
}

func TestChordSetSMFBadNote(t *testing.T) {
	chords := []model.Chord{{Symbol: "Cmaj7", Notes: []string{"C4", "bogus"}}}
	_, err := ChordSetSMF(chords)
	assert.Error(t, err)
}
