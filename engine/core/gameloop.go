package core

import "time"

// GameState represents the run state of the simulation
type GameState uint8

const (
	StatePlaying GameState = iota
	StatePaused
)

// GameLoop runs terrain ticks at a fixed wall-clock interval, independent
// of the render frame rate
type GameLoop struct {
	Sandbox     *Sandbox
	Events      *EventBus
	State       GameState
	Interval    time.Duration
	MaxFrame    time.Duration
	accumulator time.Duration
	lastTime    time.Time
	now         func() time.Time
}

// NewGameLoop creates a loop ticking every interval
func NewGameLoop(sb *Sandbox, events *EventBus, interval, maxFrame time.Duration) *GameLoop {
	gl := &GameLoop{
		Sandbox:  sb,
		Events:   events,
		Interval: interval,
		MaxFrame: maxFrame,
		now:      time.Now,
	}
	gl.lastTime = gl.now()
	return gl
}

// SetClock replaces the time source
func (gl *GameLoop) SetClock(now func() time.Time) {
	gl.now = now
	gl.lastTime = now()
	gl.accumulator = 0
}

// Update should be called every frame. It runs as many ticks as the
// elapsed time allows and returns how many ran.
func (gl *GameLoop) Update() int {
	now := gl.now()
	frameTime := now.Sub(gl.lastTime)
	gl.lastTime = now

	// Cap frame time to avoid a burst of ticks after a stall
	if gl.MaxFrame > 0 && frameTime > gl.MaxFrame {
		frameTime = gl.MaxFrame
	}
	if gl.State != StatePlaying {
		return 0
	}

	gl.accumulator += frameTime
	ticks := 0
	for gl.accumulator >= gl.Interval {
		applied := gl.Sandbox.Tick()
		gl.accumulator -= gl.Interval
		ticks++
		if gl.Events != nil {
			gl.Events.Emit(Event{Type: EvtTerrainTick, Tick: gl.CurrentTick(), Payload: applied})
		}
	}
	return ticks
}

// Play starts or resumes ticking
func (gl *GameLoop) Play() {
	gl.State = StatePlaying
	gl.lastTime = gl.now()
}

// Pause stops ticking; elapsed time while paused is discarded
func (gl *GameLoop) Pause() {
	gl.State = StatePaused
}

// TogglePause flips between playing and paused and reports whether it is now paused
func (gl *GameLoop) TogglePause() bool {
	if gl.State == StatePlaying {
		gl.Pause()
	} else {
		gl.Play()
	}
	paused := gl.State == StatePaused
	if gl.Events != nil {
		gl.Events.Emit(Event{Type: EvtPaused, Tick: gl.CurrentTick(), Payload: paused})
	}
	return paused
}

// CurrentTick returns the number of terrain ticks run so far
func (gl *GameLoop) CurrentTick() uint64 {
	return gl.Sandbox.Terrain.TickCount
}
