package sketch

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func approach(cur, target, maxDelta float64) float64 {
	if cur < target {
		cur += maxDelta
		if cur > target {
			cur = target
		}
		return cur
	}
	if cur > target {
		cur -= maxDelta
		if cur < target {
			cur = target
		}
	}
	return cur
}

// FPSCounter smooths the instantaneous frame rate.
type FPSCounter struct {
	fps float64
}

// Tick records a frame that took dt seconds and returns the smoothed rate.
func (f *FPSCounter) Tick(dt float64) float64 {
	if dt <= 0 {
		return f.fps
	}
	inst := 1 / dt
	if f.fps == 0 {
		f.fps = inst
		return f.fps
	}
	f.fps += (inst - f.fps) * FPSSmoothing
	return f.fps
}

func (f *FPSCounter) FPS() float64 { return f.fps }
