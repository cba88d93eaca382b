package sketch

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"spatialsketch/internal/audio"
	"spatialsketch/internal/samples"
)

// Options are the resolved startup settings.
type Options struct {
	Manifest   string
	Sources    int
	AudioRange float64
	PlaySounds bool
	Seed       uint64
	Width      int
	Height     int
	Verbose    bool
}

// RunDesktop opens the window and runs the sketch until it is closed.
func RunDesktop(opts Options) {
	runtime.LockOSThread()

	window, err := initWindow(opts.Width, opts.Height)
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	// GL state.
	gl.Enable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.MULTISAMPLE)
	br, bg, bb := Palette.Background.Floats()
	gl.ClearColor(br, bg, bb, 1.0)

	rend, err := NewRenderer()
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()
	if err := rend.InitFont(); err != nil {
		panic(fmt.Errorf("font: %w", err))
	}

	// Audio. Without a device the mixer still runs so voices exist, it is
	// just never pulled.
	var (
		mixer    *audio.Mixer
		audioCtx AudioContext
	)
	engine, err := audio.NewEngine()
	if err != nil {
		fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
		mixer = audio.NewMixer(audio.SampleRate)
	} else {
		defer engine.Close()
		mixer = engine.Mixer()
		audioCtx = engine
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loader := Loader{
		Manifest:   opts.Manifest,
		Count:      opts.Sources,
		AudioRange: opts.AudioRange,
		Rand:       samples.NewRand(opts.Seed),
		Voices:     MixerVoices(mixer),
		Verbose:    opts.Verbose,
	}

	params := DefaultParams()
	params.SourceCount = opts.Sources
	params.AudioRange = opts.AudioRange
	params.SoundsEnabled = opts.PlaySounds

	ctrl := NewController(params, float64(opts.Width), mixer, audioCtx, loader.Start(ctx))
	subscribeLogs(ctrl.Events())

	cam := NewCamera(opts.Height)
	input := NewInput(window)
	var fps FPSCounter

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		fps.Tick(dt)
		if dt > 0.1 {
			dt = 0.1
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		for _, k := range input.Commands(window) {
			ctrl.HandleKey(k)
		}
		input.UpdateOrbit(window, &cam)
		cam.Update(dt)

		rend.BeginFrame(&cam, fbW, fbH, ctrl.world)
		ctrl.Frame(FrameView{
			Eye:    cam.EyeCoordinate(),
			Up:     cam.UpCoordinate(),
			FPS:    fps.FPS(),
			Width:  fbW,
			Height: fbH,
		}, rend)
		rend.FlushText()

		window.SwapBuffers()
	}
}

func subscribeLogs(bus *EventBus) {
	bus.Subscribe(EventSourcesReady, func(e Event) {
		log.Printf("%d sources ready", e.Count)
	})
	bus.Subscribe(EventLoadFailed, func(e Event) {
		log.Printf("running without sources: %v", e.Err)
	})
	bus.Subscribe(EventSoundToggled, func(e Event) {
		log.Printf("playSounds %t", e.Playing)
	})
	bus.Subscribe(EventAudioRangeChanged, func(e Event) {
		log.Printf("rangeAudio %.1f", e.Value)
	})
}
