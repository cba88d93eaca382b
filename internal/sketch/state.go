package sketch

type SceneState int

const (
	StateLoading    SceneState = iota
	StateReady                 // sources built
	StateLoadFailed            // ready with zero sources
)

func (s SceneState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateLoadFailed:
		return "load failed"
	default:
		return "unknown"
	}
}

// Params is the live parameter set edited through the panel.
type Params struct {
	SoundsEnabled bool
	SourceCount   int
	AudioRange    float64
}

func DefaultParams() Params {
	return Params{
		SourceCount: DefaultSourceCount,
		AudioRange:  DefaultAudioRange,
	}
}
