package editor

import (
	"sync"
	"time"
)

// State is the visibility state of the non-default language rows.
type State int

const (
	// Collapsed shows only the default language row.
	Collapsed State = iota
	// Expanded shows every language row.
	Expanded
	// PendingCollapse keeps rows visible until the collapse timer fires.
	PendingCollapse
)

func (s State) String() string {
	switch s {
	case Expanded:
		return "expanded"
	case PendingCollapse:
		return "pending-collapse"
	default:
		return "collapsed"
	}
}

// Timer is the part of *time.Timer the expander needs.
type Timer interface {
	Stop() bool
}

// Clock schedules delayed callbacks.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Expander tracks focus-driven expansion:
//
//	Collapsed       --focus in-->  Expanded
//	Expanded        --focus out--> PendingCollapse (timer armed)
//	PendingCollapse --focus in-->  Expanded (timer cancelled)
//	PendingCollapse --timer-->     Collapsed
//
// A timer that fires after the expander left PendingCollapse is ignored.
type Expander struct {
	mu       sync.Mutex
	state    State
	delay    time.Duration
	clock    Clock
	timer    Timer
	gen      uint64
	onChange func(State)
}

// NewExpander returns a collapsed expander. onChange, when non-nil, is called
// outside the lock after every state change.
func NewExpander(clock Clock, delay time.Duration, onChange func(State)) *Expander {
	if clock == nil {
		clock = realClock{}
	}
	return &Expander{clock: clock, delay: delay, onChange: onChange}
}

// State returns the current state.
func (e *Expander) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Expanded reports whether non-default rows are visible.
func (e *Expander) Expanded() bool {
	return e.State() != Collapsed
}

// FocusIn expands immediately and cancels any pending collapse.
func (e *Expander) FocusIn() {
	e.mu.Lock()
	e.stopTimerLocked()
	changed := e.state != Expanded
	e.state = Expanded
	e.mu.Unlock()
	if changed {
		e.notify(Expanded)
	}
}

// FocusOut arms the collapse timer. It does nothing while collapsed.
func (e *Expander) FocusOut() {
	e.mu.Lock()
	if e.state != Expanded {
		e.mu.Unlock()
		return
	}
	e.stopTimerLocked()
	e.state = PendingCollapse
	gen := e.gen
	e.timer = e.clock.AfterFunc(e.delay, func() { e.fire(gen) })
	e.mu.Unlock()
	e.notify(PendingCollapse)
}

// Close cancels any pending collapse without changing state.
func (e *Expander) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopTimerLocked()
}

func (e *Expander) fire(gen uint64) {
	e.mu.Lock()
	if e.state != PendingCollapse || e.gen != gen {
		e.mu.Unlock()
		return
	}
	e.state = Collapsed
	e.timer = nil
	e.mu.Unlock()
	e.notify(Collapsed)
}

// stopTimerLocked cancels the armed timer and invalidates callbacks that
// already started.
func (e *Expander) stopTimerLocked() {
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	e.gen++
}

func (e *Expander) notify(s State) {
	if e.onChange != nil {
		e.onChange(s)
	}
}
