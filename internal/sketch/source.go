package sketch

import (
	"errors"
	"fmt"

	"spatialsketch/internal/samples"
	"spatialsketch/internal/space"
)

// Player is a looping playback handle. Looping is fixed when it is created.
type Player interface {
	Start()
	Stop()
	Playing() bool
}

// Panner is a 3D spatializer taking audio-space positions.
type Panner interface {
	SetPosition(x, y, z float64)
}

// VoiceFactory creates the playback and spatializer handles for one sample.
type VoiceFactory func(id samples.Descriptor) (Player, Panner, error)

// Source is one positioned, looping sound.
type Source struct {
	coord    space.Coordinate // audio space
	sampleID samples.Descriptor
	player   Player
	panner   Panner
}

// NewSource couples a coordinate with its handles and places the panner there.
func NewSource(coord space.Coordinate, sampleID samples.Descriptor, player Player, panner Panner) *Source {
	s := &Source{coord: coord, sampleID: sampleID, player: player, panner: panner}
	s.ApplyCoordinateToSpatializer()
	return s
}

// ApplyCoordinateToSpatializer pushes the current coordinate into the panner.
func (s *Source) ApplyCoordinateToSpatializer() {
	s.panner.SetPosition(s.coord.X, s.coord.Y, s.coord.Z)
}

// SetCoordinate replaces the coordinate. Call ApplyCoordinateToSpatializer to move the sound.
func (s *Source) SetCoordinate(c space.Coordinate) {
	s.coord = c
}

func (s *Source) Coordinate() space.Coordinate { return s.coord }

func (s *Source) SampleID() samples.Descriptor { return s.sampleID }

func (s *Source) StartPlayback() { s.player.Start() }

func (s *Source) StopPlayback() { s.player.Stop() }

func (s *Source) IsPlaying() bool { return s.player.Playing() }

var errNoSamples = errors.New("no samples to assign")

// BuildSources places count sources uniformly at random in the audio cube:
// x and y in [-audioRange, audioRange], z in [0, audioRange]. Negative z is not
// supported since the listener orientation is not derived from the view.
// Sample ids are assigned cyclically.
func BuildSources(count int, audioRange float64, sampleIDs []samples.Descriptor, autostart bool, rng *samples.Rand, voices VoiceFactory) ([]*Source, error) {
	if count < 0 {
		return nil, fmt.Errorf("build sources: negative count %d", count)
	}
	if count > 0 && len(sampleIDs) == 0 {
		return nil, fmt.Errorf("build sources: %w", errNoSamples)
	}

	out := make([]*Source, 0, count)
	for i := 0; i < count; i++ {
		coord := space.Coordinate{
			X: rng.RangeF(-audioRange, audioRange),
			Y: rng.RangeF(-audioRange, audioRange),
			Z: rng.RangeF(0, audioRange),
		}
		id := sampleIDs[i%len(sampleIDs)]
		player, panner, err := voices(id)
		if err != nil {
			return nil, fmt.Errorf("build sources: voice %d (%s): %w", i, id, err)
		}
		s := NewSource(coord, id, player, panner)
		if autostart {
			s.StartPlayback()
		}
		out = append(out, s)
	}
	return out, nil
}
