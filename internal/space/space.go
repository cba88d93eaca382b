package space

import (
	"fmt"
	"math"
)

// Coordinate is a point in either audio space or world space.
// The type does not carry the space; callers track it.
type Coordinate struct {
	X, Y, Z float64
}

// Range holds the half-extents of the audio cube and the world cube.
type Range struct {
	Audio float64
	World float64
}

// MapAxis linearly remaps value from [inMin,inMax] to [outMin,outMax].
// Values outside the input interval extrapolate. inMin == inMax panics.
func MapAxis(value, inMin, inMax, outMin, outMax float64) float64 {
	if inMin == inMax {
		panic(fmt.Sprintf("space: empty input interval [%g,%g]", inMin, inMax))
	}
	return outMin + (value-inMin)*(outMax-outMin)/(inMax-inMin)
}

// Validate reports whether both half-extents are usable as mapping domains.
func (r Range) Validate() error {
	if !(r.Audio > 0) || math.IsInf(r.Audio, 0) {
		return fmt.Errorf("audio half-extent must be > 0 and finite: %g", r.Audio)
	}
	if !(r.World > 0) || math.IsInf(r.World, 0) {
		return fmt.Errorf("world half-extent must be > 0 and finite: %g", r.World)
	}
	return nil
}

// AudioToWorld maps an audio-space coordinate into world space.
func (r Range) AudioToWorld(c Coordinate) Coordinate {
	return Coordinate{
		X: MapAxis(c.X, 0, r.Audio, 0, r.World),
		Y: MapAxis(c.Y, 0, r.Audio, 0, r.World),
		Z: MapAxis(c.Z, 0, r.Audio, 0, r.World),
	}
}

// WorldToAudio maps a world-space coordinate into audio space.
func (r Range) WorldToAudio(c Coordinate) Coordinate {
	return Coordinate{
		X: MapAxis(c.X, 0, r.World, 0, r.Audio),
		Y: MapAxis(c.Y, 0, r.World, 0, r.Audio),
		Z: MapAxis(c.Z, 0, r.World, 0, r.Audio),
	}
}

func (c Coordinate) Sub(o Coordinate) Coordinate {
	return Coordinate{X: c.X - o.X, Y: c.Y - o.Y, Z: c.Z - o.Z}
}

func (c Coordinate) Dot(o Coordinate) float64 {
	return c.X*o.X + c.Y*o.Y + c.Z*o.Z
}

func (c Coordinate) Cross(o Coordinate) Coordinate {
	return Coordinate{
		X: c.Y*o.Z - c.Z*o.Y,
		Y: c.Z*o.X - c.X*o.Z,
		Z: c.X*o.Y - c.Y*o.X,
	}
}

func (c Coordinate) Len() float64 {
	return math.Sqrt(c.Dot(c))
}

// Normalize returns the unit vector along c, or the zero vector if c has no length.
func (c Coordinate) Normalize() Coordinate {
	l := c.Len()
	if l == 0 {
		return Coordinate{}
	}
	return Coordinate{X: c.X / l, Y: c.Y / l, Z: c.Z / l}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", c.X, c.Y, c.Z)
}
