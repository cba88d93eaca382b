package sketch

import (
	"context"
	"fmt"
	"log"
	"math"

	"spatialsketch/internal/space"
)

// SphereDetail is the number of segments around (X) and pole to pole (Y).
type SphereDetail struct {
	X, Y int
}

// Scene is the drawing surface the controller renders into.
type Scene interface {
	DrawSphere(center space.Coordinate, radius float64, detail SphereDetail, col RGB)
	DrawString(text string, sx, sy int, scale float32, col RGB)
}

// Spatializer is the global listener of the audio engine.
type Spatializer interface {
	SetListenerPosition(c space.Coordinate)
	SetListenerForward(c space.Coordinate)
}

// AudioContext is the playback context that must be resumed by a user action.
// It is suspended again while nothing plays.
type AudioContext interface {
	Resume() error
	Suspend() error
}

// FrameView is the camera state and timing of one rendered frame, in world space.
type FrameView struct {
	Eye    space.Coordinate
	Up     space.Coordinate
	FPS    float64
	Width  int
	Height int
}

// Key is a user command, decoupled from the windowing library.
type Key int

const (
	KeyNone Key = iota
	KeyToggleSound
	KeyRangeUp
	KeyRangeDown
	KeyPanelNext
	KeyPanelActivate
)

// Panel rows.
const (
	RowPlaySounds = iota
	RowAudioRange
	RowSourceCount
	numRows
)

// Controller owns all scene state: parameters, the source set and the
// listener. It is created once and driven by the frame and input callbacks.
type Controller struct {
	Params  Params
	world   float64
	state   SceneState
	loaded  <-chan LoadResult
	loadErr error
	sources []*Source

	listener Spatializer
	audioCtx AudioContext
	events   *EventBus

	panelRow int
}

// NewController creates a controller in the loading state. world is the world
// cube half-extent. audioCtx may be nil when no audio device is available.
func NewController(params Params, world float64, listener Spatializer, audioCtx AudioContext, loaded <-chan LoadResult) *Controller {
	return &Controller{
		Params:   params,
		world:    world,
		state:    StateLoading,
		loaded:   loaded,
		listener: listener,
		audioCtx: audioCtx,
		events:   NewEventBus(),
	}
}

func (c *Controller) Events() *EventBus { return c.events }

func (c *Controller) State() SceneState { return c.state }

func (c *Controller) Sources() []*Source { return c.sources }

func (c *Controller) LoadErr() error { return c.loadErr }

// Range is the current audio/world mapping. The audio half-extent follows
// the live parameter.
func (c *Controller) Range() space.Range {
	return space.Range{Audio: c.Params.AudioRange, World: c.world}
}

// Await blocks until loading completes or ctx is done.
func (c *Controller) Await(ctx context.Context) error {
	if c.state != StateLoading {
		return nil
	}
	select {
	case res := <-c.loaded:
		c.finishLoad(res)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// poll picks up the load result without blocking.
func (c *Controller) poll() {
	if c.state != StateLoading || c.loaded == nil {
		return
	}
	select {
	case res := <-c.loaded:
		c.finishLoad(res)
	default:
	}
}

func (c *Controller) finishLoad(res LoadResult) {
	c.loaded = nil
	if res.Err != nil {
		c.state = StateLoadFailed
		c.loadErr = res.Err
		c.events.Emit(Event{Type: EventLoadFailed, Err: res.Err})
		return
	}
	c.sources = res.Sources
	c.state = StateReady
	c.events.Emit(Event{Type: EventSourcesReady, Count: len(res.Sources)})
	if c.Params.SoundsEnabled && len(c.sources) > 0 {
		c.resumeAudio()
		c.startAll()
	}
}

// Frame updates the listener and draws the scene for one frame.
func (c *Controller) Frame(view FrameView, scene Scene) {
	c.poll()

	scene.DrawSphere(space.Coordinate{}, OriginRadius, SphereDetail{X: SphereDetailX, Y: SphereDetailY}, Palette.Origin)
	scene.DrawSphere(space.Coordinate{}, c.world*OuterRadiusMul, SphereDetail{X: SphereDetailX, Y: SphereDetailY}, Palette.Bounds)

	c.drawHUD(view, scene)

	if c.state == StateLoading || len(c.sources) == 0 {
		return
	}

	r := c.Range()
	if c.Params.SoundsEnabled {
		c.listener.SetListenerPosition(r.WorldToAudio(view.Eye))
		// The camera's up vector stands in for the listener's forward
		// direction; only valid for the default orbit.
		c.listener.SetListenerForward(view.Up)
	}

	n := min(c.Params.SourceCount, len(c.sources))
	for _, s := range c.sources[:n] {
		scene.DrawSphere(r.AudioToWorld(s.Coordinate()), MarkerRadius, SphereDetail{X: MarkerDetailX, Y: SphereDetailY}, Palette.Marker)
	}
}

// HandleKey applies one user command.
func (c *Controller) HandleKey(k Key) {
	switch k {
	case KeyToggleSound:
		c.ToggleSound()
	case KeyRangeUp:
		c.AdjustAudioRange(AudioRangeStep)
	case KeyRangeDown:
		c.AdjustAudioRange(-AudioRangeStep)
	case KeyPanelNext:
		c.panelRow = (c.panelRow + 1) % numRows
	case KeyPanelActivate:
		if c.panelRow == RowPlaySounds {
			c.ToggleSound()
		}
	}
}

// ToggleSound resumes the audio context, then starts every source if any is
// stopped, or stops them all otherwise.
func (c *Controller) ToggleSound() {
	c.resumeAudio()

	if len(c.sources) == 0 {
		c.Params.SoundsEnabled = !c.Params.SoundsEnabled
		if !c.Params.SoundsEnabled {
			c.suspendAudio()
		}
		c.events.Emit(Event{Type: EventSoundToggled, Playing: c.Params.SoundsEnabled})
		return
	}

	anyStopped := false
	for _, s := range c.sources {
		if !s.IsPlaying() {
			anyStopped = true
			break
		}
	}
	if anyStopped {
		c.startAll()
	} else {
		c.stopAll()
		c.suspendAudio()
	}
	c.Params.SoundsEnabled = anyStopped
	c.events.Emit(Event{Type: EventSoundToggled, Playing: anyStopped})
}

// AdjustAudioRange moves the audio half-extent by delta, clamped to the panel
// limits. Source coordinates are kept; markers and listener follow the new mapping.
func (c *Controller) AdjustAudioRange(delta float64) {
	v := c.Params.AudioRange + delta
	v = math.Round(v/AudioRangeStep) * AudioRangeStep
	v = clampF(v, MinAudioRange, MaxAudioRange)
	if v == c.Params.AudioRange {
		return
	}
	c.Params.AudioRange = v
	c.events.Emit(Event{Type: EventAudioRangeChanged, Value: v})
}

func (c *Controller) resumeAudio() {
	if c.audioCtx == nil {
		return
	}
	if err := c.audioCtx.Resume(); err != nil {
		log.Printf("resume audio: %v", err)
	}
}

func (c *Controller) suspendAudio() {
	if c.audioCtx == nil {
		return
	}
	if err := c.audioCtx.Suspend(); err != nil {
		log.Printf("suspend audio: %v", err)
	}
}

func (c *Controller) startAll() {
	for _, s := range c.sources {
		s.StartPlayback()
	}
}

func (c *Controller) stopAll() {
	for _, s := range c.sources {
		s.StopPlayback()
	}
}

// PanelRows returns the panel labels and values for display.
func (c *Controller) PanelRows() [numRows][2]string {
	return [numRows][2]string{
		RowPlaySounds:  {"playSounds", fmt.Sprintf("%t", c.Params.SoundsEnabled)},
		RowAudioRange:  {"rangeAudio", fmt.Sprintf("%.1f", c.Params.AudioRange)},
		RowSourceCount: {"objsCount", fmt.Sprintf("%d", c.Params.SourceCount)},
	}
}

func (c *Controller) PanelRow() int { return c.panelRow }
