package tui

import (
	"errors"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickInterval is the fixed stopwatch resolution.
const tickInterval = time.Second

var (
	errTimerRunning = errors.New("timer already running")
	errTimerIdle    = errors.New("timer not running")
	errTimerClosed  = errors.New("timer closed")
)

// timerState tracks the current state of the timer.
type timerState int

const (
	timerIdle timerState = iota
	timerRunning
)

// scheduler delivers one message after d, the way tea.Tick does.
type scheduler func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd

var lastTimerID atomic.Int64

// timerTickMsg is one stopwatch tick. id and tag identify the timer and
// the tick that was scheduled; anything else is dropped.
type timerTickMsg struct {
	id  int64
	tag int
	at  time.Time
}

// tickHandle is the outstanding tick of a running timer.
type tickHandle struct {
	tag    int
	active bool
}

// timerModel counts whole seconds between start and stop. It is driven
// entirely by messages on the program loop, so it needs no locking.
type timerModel struct {
	id       int64
	state    timerState
	elapsed  int64
	interval time.Duration
	schedule scheduler

	tag     int
	pending tickHandle
	closed  bool
}

func newTimerModel() timerModel {
	return newTimerModelWith(tea.Tick)
}

func newTimerModelWith(s scheduler) timerModel {
	return timerModel{
		id:       lastTimerID.Add(1),
		state:    timerIdle,
		interval: tickInterval,
		schedule: s,
	}
}

// start resets the counter and schedules the first tick.
func (t *timerModel) start() (tea.Cmd, error) {
	if t.closed {
		return nil, errTimerClosed
	}
	if t.state == timerRunning {
		return nil, errTimerRunning
	}
	t.state = timerRunning
	t.elapsed = 0
	return t.scheduleTick(), nil
}

// stop cancels the pending tick and returns the final count. The
// counter keeps its value until the next start.
func (t *timerModel) stop() (int64, error) {
	if t.state != timerRunning {
		return 0, errTimerIdle
	}
	t.cancel()
	t.state = timerIdle
	return t.elapsed, nil
}

// tick advances a running timer by one second and schedules the next
// tick. Stale, duplicate or foreign ticks are ignored.
func (t *timerModel) tick(msg timerTickMsg) tea.Cmd {
	if t.state != timerRunning || msg.id != t.id || !t.pending.active || msg.tag != t.pending.tag {
		return nil
	}
	t.elapsed++
	return t.scheduleTick()
}

// scheduleTick issues a fresh single-use tick; any earlier tick message
// no longer matches.
func (t *timerModel) scheduleTick() tea.Cmd {
	t.tag++
	id, tag := t.id, t.tag
	t.pending = tickHandle{tag: tag, active: true}
	return t.schedule(t.interval, func(at time.Time) tea.Msg {
		return timerTickMsg{id: id, tag: tag, at: at}
	})
}

// cancel invalidates the pending tick. Safe to call repeatedly.
func (t *timerModel) cancel() {
	t.pending.active = false
}

// close releases the tick of a running timer and refuses further
// starts. Safe to call repeatedly.
func (t *timerModel) close() {
	t.cancel()
	t.state = timerIdle
	t.closed = true
}

func (t timerModel) running() bool {
	return t.state == timerRunning
}

func (t timerModel) currentElapsed() int64 {
	return t.elapsed
}
