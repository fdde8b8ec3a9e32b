package input

import (
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/firework/constant"
	"github.com/lixenwraith/firework/core"
)

// EventSource is the blocking event stream of a terminal, satisfied by tcell.Screen
type EventSource interface {
	PollEvent() tcell.Event
}

// Poller turns the blocking event stream into a non-blocking per-tick intent
type Poller struct {
	table   *KeyTable
	events  chan tcell.Event
	signals chan os.Signal
}

// NewPoller creates a poller reading from src.
// The pump goroutine exits when src returns nil (tcell does so after Fini).
func NewPoller(src EventSource, table *KeyTable) *Poller {
	if table == nil {
		table = DefaultKeyTable()
	}
	p := &Poller{
		table:   table,
		events:  make(chan tcell.Event, constant.InputQueueSize),
		signals: make(chan os.Signal, 1),
	}

	core.Go(func() {
		for {
			ev := src.PollEvent()
			if ev == nil {
				close(p.events)
				return
			}
			p.events <- ev
		}
	})

	return p
}

// WatchSignals routes termination signals to IntentQuit
func (p *Poller) WatchSignals() {
	notifySignals(p.signals)
}

// StopSignals detaches the poller from signal delivery
func (p *Poller) StopSignals() {
	stopSignals(p.signals)
}

// Poll waits up to timeout for one event and returns its intent.
// Events that do not map to an intent still consume the poll.
func (p *Poller) Poll(timeout time.Duration) Intent {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-p.signals:
		return Intent{Type: IntentQuit}
	case ev, ok := <-p.events:
		if !ok {
			return Intent{Type: IntentQuit}
		}
		return p.table.Translate(ev)
	case <-timer.C:
		return None
	}
}
