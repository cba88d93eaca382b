package audio

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-dsp/dsp/effects/spatial"

	"spatialsketch/internal/space"
)

// Inverse distance model (Web Audio PannerNode defaults).
const (
	RefDistance   = 1.0
	RolloffFactor = 1.0
)

// Listener is the ear position and orientation in audio space.
type Listener struct {
	Position space.Coordinate
	Forward  space.Coordinate
	Up       space.Coordinate
}

// DefaultListener faces -Z with +Y up, at the origin.
func DefaultListener() Listener {
	return Listener{
		Forward: space.Coordinate{Z: -1},
		Up:      space.Coordinate{Y: 1},
	}
}

// crossfadeLen is the number of samples over which a direction change
// blends from the old impulse responses to the new ones.
const crossfadeLen = 256

// Panner3D places a mono signal in 3D space with HRTF rendering and
// distance attenuation. Not safe for concurrent use.
//
// Loading new impulse responses clears a simulator's convolution history, so
// two simulators alternate: the new direction loads into the idle one and
// the old one keeps ringing out during the crossfade.
type Panner3D struct {
	pos  space.Coordinate
	sims [2]*spatial.HRTFCrosstalkSimulator
	cur  int
	fade int // crossfade samples left
	dir  direction
	gain float64
}

func NewPanner3D(sampleRate float64) (*Panner3D, error) {
	p := &Panner3D{gain: 1}
	for i := range p.sims {
		sim, err := spatial.NewHRTFCrosstalkSimulator(sampleRate,
			spatial.WithHRTFMode(spatial.HRTFModeComplete),
			spatial.WithHRTFProvider(hrtfProvider{dir: p.dir}))
		if err != nil {
			return nil, fmt.Errorf("panner: %w", err)
		}
		p.sims[i] = sim
	}
	return p, nil
}

// Reset clears the convolution state and any pending crossfade.
func (p *Panner3D) Reset() {
	for _, sim := range p.sims {
		sim.Reset()
	}
	p.fade = 0
}

func (p *Panner3D) SetPosition(x, y, z float64) {
	p.pos = space.Coordinate{X: x, Y: y, Z: z}
}

func (p *Panner3D) Position() space.Coordinate { return p.pos }

// Update recomputes direction and distance gain against the listener.
// The impulse responses are only reloaded when the quantized direction changes.
func (p *Panner3D) Update(l Listener) error {
	az, el, dist := relativeDirection(l, p.pos)
	p.gain = inverseDistanceGain(dist)
	d := quantize(az, el)
	if d == p.dir {
		return nil
	}
	next := 1 - p.cur
	if err := p.sims[next].SetProvider(hrtfProvider{dir: d}); err != nil {
		return fmt.Errorf("panner: %w", err)
	}
	p.dir = d
	p.cur = next
	p.fade = crossfadeLen
	return nil
}

// Process renders one mono sample to a stereo pair.
func (p *Panner3D) Process(x float64) (float64, float64) {
	x *= p.gain
	l, r := p.sims[p.cur].ProcessStereo(x, 0)
	if p.fade == 0 {
		return l, r
	}
	pl, pr := p.sims[1-p.cur].ProcessStereo(x, 0)
	t := float64(p.fade) / crossfadeLen
	p.fade--
	return l*(1-t) + pl*t, r*(1-t) + pr*t
}

func inverseDistanceGain(d float64) float64 {
	if d < RefDistance {
		d = RefDistance
	}
	return RefDistance / (RefDistance + RolloffFactor*(d-RefDistance))
}

// relativeDirection returns azimuth and elevation of pos as heard by l,
// and its distance. Azimuth 0 is ahead, positive to the right.
func relativeDirection(l Listener, pos space.Coordinate) (azimuth, elevation, dist float64) {
	s := pos.Sub(l.Position)
	dist = s.Len()
	if dist == 0 {
		return 0, 0, 0
	}

	f := l.Forward.Normalize()
	if f.Len() == 0 {
		f = space.Coordinate{Z: -1}
	}
	right := f.Cross(l.Up.Normalize())
	if right.Len() < 1e-9 {
		// Forward parallel to up: pick any perpendicular axis.
		right = f.Cross(space.Coordinate{Z: 1})
		if right.Len() < 1e-9 {
			right = f.Cross(space.Coordinate{X: 1})
		}
	}
	right = right.Normalize()
	up := right.Cross(f)

	x, y, z := s.Dot(right), s.Dot(up), s.Dot(f)
	azimuth = math.Atan2(x, z)
	elevation = math.Atan2(y, math.Hypot(x, z))
	return azimuth, elevation, dist
}
