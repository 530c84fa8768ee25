package anim

import "time"

// Player runs queued animations back to back and ticks registered tickers
// every frame.
type Player struct {
	queue   []Animation
	current Animation
	elapsed time.Duration // time spent in current
	total   time.Duration
	tickers []Ticker
}

// NewPlayer creates a Player that ticks the given tickers each frame.
func NewPlayer(tickers ...Ticker) *Player {
	return &Player{tickers: tickers}
}

// Play appends animations to the queue.
func (p *Player) Play(anims ...Animation) {
	for _, a := range anims {
		if a != nil {
			p.queue = append(p.queue, a)
		}
	}
}

// Advance moves the timeline forward by dt. Time left over when an
// animation finishes carries into the next one. Tickers run once, after all
// animations for this frame.
func (p *Player) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	p.total += dt
	remaining := dt

	for {
		if p.current == nil {
			if !p.next() {
				break
			}
		}

		d := p.current.Duration()
		if p.elapsed+remaining >= d {
			remaining -= d - p.elapsed
			p.finishCurrent()
			continue
		}

		p.elapsed += remaining
		p.current.Interpolate(float64(p.elapsed) / float64(d))
		break
	}

	for _, t := range p.tickers {
		t.Tick(dt)
	}
}

// Skip jumps the current animation to its end.
func (p *Player) Skip() {
	if p.current == nil && !p.next() {
		return
	}
	p.finishCurrent()
}

// Clear drops the current and queued animations without finishing them.
func (p *Player) Clear() {
	p.queue = nil
	p.current = nil
	p.elapsed = 0
	p.total = 0
}

// Done reports whether nothing is playing or queued.
func (p *Player) Done() bool {
	return p.current == nil && len(p.queue) == 0
}

// Elapsed returns the total time advanced since creation or the last Clear.
func (p *Player) Elapsed() time.Duration {
	return p.total
}

// Pending returns the number of animations not yet finished.
func (p *Player) Pending() int {
	n := len(p.queue)
	if p.current != nil {
		n++
	}
	return n
}

func (p *Player) next() bool {
	if len(p.queue) == 0 {
		return false
	}
	p.current = p.queue[0]
	p.queue = p.queue[1:]
	p.elapsed = 0
	p.current.Begin()
	return true
}

func (p *Player) finishCurrent() {
	p.current.Interpolate(1)
	p.current.Finish()
	p.current = nil
	p.elapsed = 0
}
