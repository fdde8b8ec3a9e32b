package engine

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/firework/constant"
	"github.com/lixenwraith/firework/core"
	"github.com/lixenwraith/firework/input"
	"github.com/lixenwraith/firework/render"
)

// IntentSource yields at most one intent per call, waiting no longer than timeout
type IntentSource interface {
	Poll(timeout time.Duration) input.Intent
}

// Listener observes launches and bursts, e.g. for sound; called on the loop goroutine
type Listener interface {
	OnLaunch(p core.Pellet)
	OnBurst(b Burst)
}

// PaletteSetter is implemented by sinks that accept live color changes
type PaletteSetter interface {
	SetPalette(p render.Palette)
}

// LoopConfig holds loop pacing and display options
type LoopConfig struct {
	TickInterval time.Duration
	PollTimeout  time.Duration
	ShowStatus   bool
	// StatsEvery logs a stats line every n ticks, 0 disables
	StatsEvery uint64
}

// DefaultLoopConfig returns the built-in pacing
func DefaultLoopConfig() LoopConfig {
	return LoopConfig{
		TickInterval: constant.TickInterval,
		PollTimeout:  constant.PollTimeout,
		StatsEvery:   constant.StatsLogInterval,
	}
}

// Loop is the single mutator of a Simulation: tick, render, sleep, poll, repeat
type Loop struct {
	cfg       LoopConfig
	sim       *Simulation
	sink      render.Sink
	source    IntentSource
	clock     Clock
	listeners []Listener
	palettes  <-chan render.Palette
}

// NewLoop wires a simulation to its sink and input
func NewLoop(cfg LoopConfig, sim *Simulation, sink render.Sink, source IntentSource, clock Clock) *Loop {
	if clock == nil {
		clock = NewRealClock()
	}
	return &Loop{
		cfg:    cfg,
		sim:    sim,
		sink:   sink,
		source: source,
		clock:  clock,
	}
}

// AddListener registers a launch/burst observer
func (l *Loop) AddListener(li Listener) {
	l.listeners = append(l.listeners, li)
}

// WatchPalettes applies palettes received on ch at the next tick boundary
func (l *Loop) WatchPalettes(ch <-chan render.Palette) {
	l.palettes = ch
}

// Run drives the loop until a quit intent or ctx cancellation, checked at the top of each iteration.
// A quit returns nil; cancellation returns ctx.Err().
func (l *Loop) Run(ctx context.Context) error {
	intent := input.None
	for intent.Type != input.IntentQuit {
		if err := ctx.Err(); err != nil {
			return err
		}

		l.applyPalette()

		for _, b := range l.sim.Tick() {
			for _, li := range l.listeners {
				li.OnBurst(b)
			}
		}

		l.render()
		l.logStats()

		l.clock.Sleep(l.cfg.TickInterval)
		intent = l.source.Poll(l.cfg.PollTimeout)
		l.handle(intent)
	}

	log.Printf("loop stopped: %s", l.sim.Stats())
	return nil
}

func (l *Loop) handle(in input.Intent) {
	switch in.Type {
	case input.IntentSpawn:
		p, ok := l.sim.Spawn(in.Digit)
		if !ok {
			return
		}
		for _, li := range l.listeners {
			li.OnLaunch(p)
		}
	case input.IntentToggleStatus:
		l.cfg.ShowStatus = !l.cfg.ShowStatus
	}
}

func (l *Loop) render() {
	frame := l.sim.Frame()
	if l.cfg.ShowStatus {
		st := l.sim.Stats()
		frame.SetStatus(fmt.Sprintf(" pellets %d  tick %d  [1-9] launch  [s] status  [`] quit", st.Live, st.Ticks))
	}
	frame.Flush(l.sink)
}

func (l *Loop) applyPalette() {
	if l.palettes == nil {
		return
	}
	select {
	case p, ok := <-l.palettes:
		if !ok {
			l.palettes = nil
			return
		}
		if ps, ok := l.sink.(PaletteSetter); ok {
			ps.SetPalette(p)
			log.Printf("palette reloaded")
		}
	default:
	}
}

func (l *Loop) logStats() {
	if l.cfg.StatsEvery == 0 {
		return
	}
	if st := l.sim.Stats(); st.Ticks%l.cfg.StatsEvery == 0 {
		log.Printf("stats: %s", st)
	}
}
