package audio

import (
	"fmt"
	"log"
	"math"
	"sync"

	"spatialsketch/internal/space"
)

// Mixer sums every playing voice into interleaved float32 LE stereo.
// It is the io.Reader behind the output player and is read from the
// audio goroutine, so all voice and listener state sits behind mu.
type Mixer struct {
	mu         sync.Mutex
	sampleRate int
	listener   Listener
	voices     []*Voice
}

func NewMixer(sampleRate int) *Mixer {
	return &Mixer{
		sampleRate: sampleRate,
		listener:   DefaultListener(),
	}
}

func (m *Mixer) SampleRate() int { return m.sampleRate }

// NewVoice creates a looping, initially stopped voice for buf.
func (m *Mixer) NewVoice(buf *Buffer) (*Voice, error) {
	p, err := NewPanner3D(float64(m.sampleRate))
	if err != nil {
		return nil, err
	}
	v := &Voice{
		m:      m,
		player: NewLoopPlayer(buf, m.sampleRate),
		panner: p,
	}
	m.mu.Lock()
	m.voices = append(m.voices, v)
	m.mu.Unlock()
	return v, nil
}

func (m *Mixer) SetListenerPosition(c space.Coordinate) {
	m.mu.Lock()
	m.listener.Position = c
	m.mu.Unlock()
}

func (m *Mixer) SetListenerForward(c space.Coordinate) {
	m.mu.Lock()
	m.listener.Forward = c
	m.mu.Unlock()
}

func (m *Mixer) Listener() Listener {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listener
}

// Read fills p with whole stereo frames. It never returns io.EOF.
func (m *Mixer) Read(p []byte) (int, error) {
	frames := len(p) / 8
	if frames == 0 {
		return 0, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, v := range m.voices {
		if !v.playing {
			continue
		}
		if err := v.panner.Update(m.listener); err != nil {
			log.Printf("mixer: %v", err)
		}
	}

	for i := 0; i < frames; i++ {
		var l, r float64
		for _, v := range m.voices {
			if !v.playing {
				continue
			}
			vl, vr := v.panner.Process(v.player.Next())
			l += vl
			r += vr
		}
		putStereoF32LR(p, i, softSat(l*masterVolume), softSat(r*masterVolume))
	}
	return frames * 8, nil
}

// Voice is a looping player routed through its own 3D panner.
type Voice struct {
	m       *Mixer
	player  *LoopPlayer
	panner  *Panner3D
	playing bool
}

// Start plays the loop from its beginning. Starting a playing voice is a no-op.
func (v *Voice) Start() {
	v.m.mu.Lock()
	defer v.m.mu.Unlock()
	if v.playing {
		return
	}
	v.player.Rewind()
	v.panner.Reset()
	v.playing = true
}

func (v *Voice) Stop() {
	v.m.mu.Lock()
	v.playing = false
	v.m.mu.Unlock()
}

func (v *Voice) Playing() bool {
	v.m.mu.Lock()
	defer v.m.mu.Unlock()
	return v.playing
}

// SetPosition moves the voice's panner, in audio space.
func (v *Voice) SetPosition(x, y, z float64) {
	v.m.mu.Lock()
	v.panner.SetPosition(x, y, z)
	v.m.mu.Unlock()
}

func (v *Voice) Position() space.Coordinate {
	v.m.mu.Lock()
	defer v.m.mu.Unlock()
	return v.panner.Position()
}

func (v *Voice) String() string {
	return fmt.Sprintf("voice@%v", v.Position())
}

// putStereoF32LR writes independent left/right samples in [-1,1].
func putStereoF32LR(buf []byte, i int, left, right float64) {
	lv := math.Float32bits(float32(left))
	rv := math.Float32bits(float32(right))
	buf[i*8] = byte(lv)
	buf[i*8+1] = byte(lv >> 8)
	buf[i*8+2] = byte(lv >> 16)
	buf[i*8+3] = byte(lv >> 24)
	buf[i*8+4] = byte(rv)
	buf[i*8+5] = byte(rv >> 8)
	buf[i*8+6] = byte(rv >> 16)
	buf[i*8+7] = byte(rv >> 24)
}

// softSat limits the mix to (-1, 1). It is continuous and strictly increasing.
func softSat(x float64) float64 {
	return math.Tanh(x)
}
