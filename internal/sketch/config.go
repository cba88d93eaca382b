package sketch

import (
	"math"

	"spatialsketch/internal/config"
)

// Window defaults.
const (
	WindowWidth  = config.DefaultWidth
	WindowHeight = config.DefaultHeight
	WindowTitle  = "Spatial Sketch"
)

// Parameter defaults and panel limits.
const (
	DefaultSourceCount = config.DefaultSources
	DefaultAudioRange  = config.DefaultAudioRange
	MinAudioRange      = config.MinAudioRange
	MaxAudioRange      = config.MaxAudioRange
	AudioRangeStep     = 0.1
	DefaultManifest    = config.DefaultManifest
)

// Scene markers (world units).
const (
	OriginRadius    = 10.0
	MarkerRadius    = 20.0
	OuterRadiusMul  = 2.0 // bounding sphere radius as a multiple of the world half-extent
	SphereDetailX   = 24
	SphereDetailY   = 16
	MarkerDetailX   = 8
	MaxSphereDetail = 48
)

// Camera.
const (
	CameraFovY        = math.Pi / 3
	OrbitSensitivity  = 0.005 // radians per pixel dragged
	ZoomSensitivity   = 0.3
	CameraMaxPitch    = 1.55
	CameraMinDistance = 20.0
)

// Font atlas layout (basicfont 7x13 glyphs, ASCII 32-126).
const (
	FontCellW  = 7
	FontCellH  = 13
	FontCols   = 16
	FontRows   = 6
	FontAtlasW = FontCellW * FontCols // 112
	FontAtlasH = FontCellH * FontRows // 78
	TextScale  = 2.0
)

// FPS smoothing factor per frame.
const FPSSmoothing = 0.1
