package audio

import (
	"math"

	"github.com/cwbudde/algo-dsp/dsp/effects/spatial"
	"github.com/cwbudde/algo-dsp/dsp/filter/biquad"
	"github.com/cwbudde/algo-dsp/dsp/filter/design"
)

// Spherical head model.
const (
	headRadius   = 0.0875 // metres
	speedOfSound = 343.0  // m/s

	shadowTaps    = 24
	shadowMinFreq = 1800.0
	shadowMaxFreq = 16000.0
	backMinFreq   = 7000.0

	azimuthStep   = 5 * math.Pi / 180
	elevationStep = 10 * math.Pi / 180
)

// direction is a quantized source direction relative to the listener.
// Azimuth 0 is straight ahead, positive to the right.
type direction struct {
	az, el int
}

func quantize(azimuth, elevation float64) direction {
	return direction{
		az: int(math.Round(azimuth / azimuthStep)),
		el: int(math.Round(elevation / elevationStep)),
	}
}

func (d direction) angles() (azimuth, elevation float64) {
	return float64(d.az) * azimuthStep, float64(d.el) * elevationStep
}

// hrtfProvider synthesizes binaural impulse responses for one direction.
// The mono source is routed into the left input of a complete-mode
// simulator: LeftDirect is the left ear, RightCross the right ear.
type hrtfProvider struct {
	dir direction
}

func (p hrtfProvider) ImpulseResponses(sampleRate float64) (spatial.HRTFImpulseResponseSet, error) {
	az, el := p.dir.angles()
	left, right := earResponses(az, el, sampleRate)
	return spatial.HRTFImpulseResponseSet{
		LeftDirect:  left,
		LeftCross:   []float64{0},
		RightDirect: []float64{0},
		RightCross:  right,
	}, nil
}

// earResponses returns the left and right ear impulse responses.
func earResponses(azimuth, elevation, sampleRate float64) (left, right []float64) {
	lateral := math.Sin(azimuth) * math.Cos(elevation)
	theta := math.Asin(math.Min(1, math.Abs(lateral)))

	// Woodworth interaural time difference.
	itd := headRadius / speedOfSound * (theta + math.Sin(theta))
	delay := itd * sampleRate

	maxDelay := headRadius / speedOfSound * (math.Pi/2 + 1) * sampleRate
	n := int(math.Ceil(maxDelay)) + shadowTaps + 2

	nyq := 0.45 * sampleRate
	shadowFreq := math.Min(nyq, shadowMaxFreq-(shadowMaxFreq-shadowMinFreq)*math.Abs(lateral))
	backness := math.Max(0, -math.Cos(azimuth)) * math.Cos(elevation)
	elevGain := 1 - 0.15*math.Abs(math.Sin(elevation))

	// Both ears share the open-ear response; the far ear is additionally
	// shadowed and delayed, so a frontal source is exactly balanced.
	near := make([]float64, n)
	open := impulseResponse(design.Lowpass(math.Min(nyq, shadowMaxFreq), 1/math.Sqrt2, sampleRate), shadowTaps)
	nearGain := (1 + 0.15*math.Abs(lateral)) * elevGain
	for k, h := range open {
		near[k] = h * nearGain
	}

	far := make([]float64, n)
	shadow := impulseResponse(design.Lowpass(shadowFreq, 1/math.Sqrt2, sampleRate), shadowTaps)
	farGain := (1 - 0.4*math.Abs(lateral)) * elevGain
	i0 := int(delay)
	frac := delay - float64(i0)
	for k, h := range shadow {
		if i0+k < n {
			far[i0+k] += (1 - frac) * h * farGain
		}
		if i0+k+1 < n {
			far[i0+k+1] += frac * h * farGain
		}
	}

	if backness > 0.05 {
		backFreq := math.Min(nyq, shadowMaxFreq-(shadowMaxFreq-backMinFreq)*backness)
		back := impulseResponse(design.Lowpass(backFreq, 1/math.Sqrt2, sampleRate), shadowTaps)
		near = convolve(near, back, n)
		far = convolve(far, back, n)
	}

	if lateral >= 0 {
		return far, near
	}
	return near, far
}

func impulseResponse(c biquad.Coefficients, taps int) []float64 {
	s := biquad.NewSection(c)
	ir := make([]float64, taps)
	for i := range ir {
		x := 0.0
		if i == 0 {
			x = 1
		}
		ir[i] = s.ProcessSample(x)
	}
	return ir
}

// convolve returns a*b truncated to n taps.
func convolve(a, b []float64, n int) []float64 {
	out := make([]float64, n)
	for i, av := range a {
		if av == 0 {
			continue
		}
		for j, bv := range b {
			if i+j >= n {
				break
			}
			out[i+j] += av * bv
		}
	}
	return out
}
