package audio

// LoopPlayer reads a Buffer forever, resampling linearly to the output rate.
type LoopPlayer struct {
	buf  *Buffer
	step float64
	pos  float64
}

func NewLoopPlayer(buf *Buffer, outRate int) *LoopPlayer {
	p := &LoopPlayer{buf: buf, step: 1}
	if buf != nil && buf.SampleRate > 0 && outRate > 0 {
		p.step = float64(buf.SampleRate) / float64(outRate)
	}
	return p
}

// Rewind moves the read position back to the start of the loop.
func (p *LoopPlayer) Rewind() { p.pos = 0 }

// Next returns the next output sample. An empty buffer plays silence.
func (p *LoopPlayer) Next() float64 {
	if p.buf == nil || len(p.buf.Samples) == 0 {
		return 0
	}
	s := p.buf.Samples
	n := len(s)
	i := int(p.pos)
	frac := p.pos - float64(i)
	j := i + 1
	if j >= n {
		j = 0
	}
	v := float64(s[i]) + (float64(s[j])-float64(s[i]))*frac

	p.pos += p.step
	for p.pos >= float64(n) {
		p.pos -= float64(n)
	}
	return v
}
