package audio

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2

	masterVolume = 0.5
	readyTimeout = 2 * time.Second
)

// Engine owns the oto context and the single output player fed by the Mixer.
// Like a browser audio context it starts suspended; Resume starts output.
type Engine struct {
	ctx    *oto.Context
	ready  chan struct{}
	mixer  *Mixer
	mu     sync.Mutex
	player oto.Player
	active bool
}

// NewEngine opens the audio device.
func NewEngine() (*Engine, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, fmt.Errorf("oto context: %w", err)
	}
	return &Engine{ctx: ctx, ready: ready, mixer: NewMixer(SampleRate)}, nil
}

func (e *Engine) Mixer() *Mixer { return e.mixer }

// Resume starts or resumes output. It waits briefly for the device to become ready.
func (e *Engine) Resume() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.active {
		return nil
	}
	select {
	case <-e.ready:
	case <-time.After(readyTimeout):
		return errors.New("audio device not ready")
	}
	if e.player == nil {
		e.player = e.ctx.NewPlayer(e.mixer)
		e.player.Play()
	} else if err := e.ctx.Resume(); err != nil {
		return fmt.Errorf("resume audio: %w", err)
	}
	e.active = true
	return nil
}

// Suspend pauses device output without touching voice state. Resume undoes it.
func (e *Engine) Suspend() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.active {
		return nil
	}
	if err := e.ctx.Suspend(); err != nil {
		return fmt.Errorf("suspend audio: %w", err)
	}
	e.active = false
	return nil
}

func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.player != nil {
		if err := e.player.Close(); err != nil {
			return fmt.Errorf("close audio player: %w", err)
		}
		e.player = nil
	}
	e.active = false
	return nil
}
