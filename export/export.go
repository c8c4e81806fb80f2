// Package export writes a generated chord set as a Standard MIDI File: each
// diatonic chord sounds as a block chord for one bar, in degree order.
package export

import (
	"github.com/keyatlas/keyatlas/model"
	"github.com/keyatlas/keyatlas/pitch"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	ticksPerQuarter = 960
	velocity        = 90
)

// ChordSetSMF builds a single-track SMF playing the chords back to back.
func ChordSetSMF(chords []model.Chord) (*smf.SMF, error) {
	var s smf.SMF
	s.TimeFormat = smf.MetricTicks(ticksPerQuarter)

	var track smf.Track
	track.Add(0, smf.MetaTempo(120))
	track.Add(0, smf.MetaMeter(4, 4))

	bar := uint32(4 * ticksPerQuarter)
	for _, c := range chords {
		keys := make([]uint8, 0, len(c.Notes))
		for _, n := range c.Notes {
			p, err := pitch.NameToPitch(n)
			if err != nil {
				return nil, err
			}
			keys = append(keys, uint8(p))
		}
		for _, k := range keys {
			track.Add(0, midi.NoteOn(0, k, velocity))
		}
		for i, k := range keys {
			delta := uint32(0)
			if i == 0 {
				delta = bar
			}
			track.Add(delta, midi.NoteOff(0, k))
		}
	}
	track.Close(0)

	if err := s.Add(track); err != nil {
		return nil, err
	}
	return &s, nil
}

// WriteFile renders the chord set to a .mid file on disk.
func WriteFile(chords []model.Chord, path string) error {
	s, err := ChordSetSMF(chords)
	if err != nil {
		return err
	}
	return s.WriteFile(path)
}
