// Package sim implements the incremental-game simulation engine: a
// tick-driven core that advances resource amounts and upgrade levels over
// elapsed time according to per-blueprint growth curves.
//
// All mutable state is owned by a single worker goroutine. Every operation
// is marshaled onto that goroutine through a FIFO command channel, so timer
// ticks and user actions (purchases, manual generation, fast-forwards)
// never interleave mid-mutation. Tick notifications are the one thing
// delivered outside the worker: subscribers receive on their own buffered
// channels and may safely call back into the engine.
package sim

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/idle-engine/internal/blueprint"
)

// DefaultTickInterval is used when a configuration does not specify one.
const DefaultTickInterval = 100 * time.Millisecond

// Configuration holds the engine's timing parameters. TimeMultiplier scales
// every tick's elapsed-time delta (2.0 runs the world at double speed);
// changes applied through SetConfiguration take effect on the next tick.
type Configuration struct {
	TickInterval   time.Duration
	TimeMultiplier float64
}

// DefaultConfiguration returns the standard real-time configuration.
func DefaultConfiguration() Configuration {
	return Configuration{
		TickInterval:   DefaultTickInterval,
		TimeMultiplier: 1.0,
	}
}

func (c Configuration) normalized() Configuration {
	if c.TickInterval <= 0 {
		c.TickInterval = DefaultTickInterval
	}
	if c.TimeMultiplier <= 0 {
		c.TimeMultiplier = 1.0
	}
	return c
}

// CostInfo pairs a cost amount with the display name of the resource it is
// denominated in.
type CostInfo struct {
	Resource string
	Amount   float64
}

// UpgradeInfo describes an upgrade track for display: the target's current
// effect, its current level, and the price of the next level.
type UpgradeInfo struct {
	Value float64
	Level int
	Costs []CostInfo
}

// Engine owns the component store and the registered blueprints.
// It starts paused; call Resume to begin ticking.
type Engine struct {
	log  *log.Logger
	cmds chan func()
	quit chan struct{}
	stop sync.Once

	// Worker-owned state. Touched only from the worker goroutine.
	cfg        Configuration
	now        func() time.Time
	ticker     *time.Ticker
	paused     bool
	lastTick   time.Time
	total      time.Duration
	resources  map[string]*resourceComponent
	levels     map[string]*upgradeComponent
	generators []blueprint.Generator
	subs       []chan struct{}
}

// New creates an engine and starts its worker goroutine. The engine begins
// in the Paused state with no ticks firing. The logger receives structured
// reports of every non-fatal domain error; it must not be nil.
func New(cfg Configuration, logger *log.Logger) *Engine {
	e := &Engine{
		log:       logger,
		cmds:      make(chan func(), 64),
		quit:      make(chan struct{}),
		cfg:       cfg.normalized(),
		now:       time.Now,
		paused:    true,
		resources: make(map[string]*resourceComponent),
		levels:    make(map[string]*upgradeComponent),
	}

	go e.loop()
	return e
}

// Close shuts down the worker goroutine. Pending fire-and-forget commands
// may be discarded. The engine must not be used after Close.
func (e *Engine) Close() {
	e.stop.Do(func() { close(e.quit) })
}

// loop is the engine's serialized execution context.
func (e *Engine) loop() {
	e.ticker = time.NewTicker(e.cfg.TickInterval)
	e.ticker.Stop() // starts paused
	defer e.ticker.Stop()

	for {
		select {
		case <-e.quit:
			return
		case fn := <-e.cmds:
			fn()
		case now := <-e.ticker.C:
			if e.paused {
				continue
			}
			e.handleTick(now)
		}
	}
}

// do runs fn on the worker goroutine and waits for it to finish.
func (e *Engine) do(fn func()) {
	done := make(chan struct{})
	select {
	case e.cmds <- func() { fn(); close(done) }:
	case <-e.quit:
		return
	}
	select {
	case <-done:
	case <-e.quit:
	}
}

// enqueue runs fn on the worker goroutine without waiting.
func (e *Engine) enqueue(fn func()) {
	select {
	case e.cmds <- fn:
	case <-e.quit:
	}
}

// handleTick processes one timer tick: computes the elapsed delta, scales
// it by the time multiplier, and applies the update step. Non-positive
// deltas (clock anomalies) are discarded.
func (e *Engine) handleTick(now time.Time) {
	raw := now.Sub(e.lastTick)
	if raw <= 0 {
		e.log.Warn("discarding tick with non-positive delta", "delta", raw)
		return
	}
	e.lastTick = now

	delta := time.Duration(float64(raw) * e.cfg.TimeMultiplier)
	if delta <= 0 {
		return
	}
	e.applyUpdate(delta)
}

// applyUpdate advances the simulation by delta: every automatic generator
// produces curve(level)*seconds of its resource, the total duration grows,
// and tick subscribers are notified.
func (e *Engine) applyUpdate(delta time.Duration) {
	secs := delta.Seconds()

	for _, g := range e.generators {
		if !g.Automatic {
			continue
		}
		lvl, ok := e.levels[g.ID]
		if !ok {
			e.log.Error("generator has no level component", "generator", g.ID)
			continue
		}
		res, ok := e.resources[g.Resource.ID]
		if !ok {
			e.log.Error("generator targets unregistered resource",
				"generator", g.ID, "resource", g.Resource.ID)
			continue
		}
		res.value += g.Curve.Value(lvl.level) * secs
	}

	e.total += delta
	e.notifyTick()
}

// notifyTick signals every subscriber without blocking the worker.
// A subscriber that has not drained its channel misses the signal; the
// next tick will deliver another.
func (e *Engine) notifyTick() {
	for _, ch := range e.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Subscribe registers a tick observer and returns its notification channel.
// One signal is delivered per processed tick. Observers run outside the
// engine's worker and may call any engine method from their own goroutine.
func (e *Engine) Subscribe() <-chan struct{} {
	ch := make(chan struct{}, 1)
	e.do(func() {
		e.subs = append(e.subs, ch)
	})
	return ch
}

// Resume transitions to Running: the last-tick reference resets to now (so
// wall-clock time spent paused never becomes a catch-up burst) and the
// periodic timer restarts. No-op while running.
func (e *Engine) Resume() {
	e.do(func() {
		if !e.paused {
			return
		}
		e.paused = false
		e.lastTick = e.now()
		e.ticker.Reset(e.cfg.TickInterval)
	})
}

// Pause transitions to Paused and suspends the timer. No-op while paused.
func (e *Engine) Pause() {
	e.do(func() {
		if e.paused {
			return
		}
		e.paused = true
		e.ticker.Stop()
	})
}

// Paused reports whether the engine is currently paused.
func (e *Engine) Paused() bool {
	var p bool
	e.do(func() { p = e.paused })
	return p
}

// FastForward enqueues an update step with the given delta, bypassing the
// real-time clock. Fire-and-forget: it returns before the update runs, but
// any later call observes its effects (the command channel is FIFO).
// Non-positive intervals are ignored.
func (e *Engine) FastForward(interval time.Duration) {
	if interval <= 0 {
		return
	}
	e.enqueue(func() {
		e.applyUpdate(interval)
	})
}

// SetConfiguration applies a new configuration on the engine's worker.
// Fire-and-forget; takes effect on the next tick.
func (e *Engine) SetConfiguration(cfg Configuration) {
	e.enqueue(func() {
		cfg = cfg.normalized()
		restart := !e.paused && cfg.TickInterval != e.cfg.TickInterval
		e.cfg = cfg
		if restart {
			e.ticker.Reset(cfg.TickInterval)
		}
	})
}

// Configuration returns the engine's current configuration.
func (e *Engine) Configuration() Configuration {
	var cfg Configuration
	e.do(func() { cfg = e.cfg })
	return cfg
}

// TotalDuration returns the accumulated simulated time across all processed
// ticks and fast-forwards.
func (e *Engine) TotalDuration() time.Duration {
	var d time.Duration
	e.do(func() { d = e.total })
	return d
}

// RegisterResource creates a zero-valued component for the resource.
// Registering the same resource twice resets its balance; the engine warns
// when that happens.
func (e *Engine) RegisterResource(r blueprint.Resource) {
	e.do(func() {
		if _, exists := e.resources[r.ID]; exists {
			e.log.Warn("re-registering resource resets its balance",
				"resource", r.Name, "id", r.ID)
		}
		e.resources[r.ID] = &resourceComponent{}
	})
}

// RegisterUpgrade creates a zero-level component keyed by the upgrade's
// target identifier. Multiple upgrade tracks aimed at the same target share
// one level component.
func (e *Engine) RegisterUpgrade(u blueprint.Upgrade) {
	e.do(func() {
		if _, exists := e.levels[u.Target.ID]; exists {
			e.log.Warn("re-registering upgrade resets its level",
				"upgrade", u.ID, "target", u.Target.ID)
		}
		e.levels[u.Target.ID] = &upgradeComponent{}
	})
}

// RegisterGenerator adds the generator to the list consulted every tick.
// Only generators flagged Automatic produce during ticks; the rest produce
// through Generate calls.
func (e *Engine) RegisterGenerator(g blueprint.Generator) {
	e.do(func() {
		e.generators = append(e.generators, g)
	})
}

// Value returns the current amount of a resource. An unregistered resource
// yields 0 and ErrMissingComponent.
func (e *Engine) Value(r blueprint.Resource) (float64, error) {
	var (
		v   float64
		err error
	)
	e.do(func() {
		comp, ok := e.resources[r.ID]
		if !ok {
			err = fmt.Errorf("%w: resource %q", ErrMissingComponent, r.ID)
			e.log.Error("value lookup for unregistered resource",
				"resource", r.Name, "id", r.ID)
			return
		}
		v = comp.value
	})
	return v, err
}

// Info describes an upgrade track: the target curve evaluated at the
// current level, and each cost curve evaluated at level+1, the price of
// the next step. An unregistered target yields a zero UpgradeInfo and
// ErrMissingComponent.
func (e *Engine) Info(u blueprint.Upgrade) (UpgradeInfo, error) {
	var (
		info UpgradeInfo
		err  error
	)
	e.do(func() {
		lvl, ok := e.levels[u.Target.ID]
		if !ok {
			err = fmt.Errorf("%w: upgrade target %q", ErrMissingComponent, u.Target.ID)
			e.log.Error("info lookup for unregistered upgrade target",
				"upgrade", u.ID, "target", u.Target.ID)
			return
		}

		info.Level = lvl.level
		info.Value = u.Target.Curve.Value(lvl.level)
		info.Costs = make([]CostInfo, 0, len(u.Costs))
		for _, c := range u.Costs {
			info.Costs = append(info.Costs, CostInfo{
				Resource: c.Resource.Name,
				Amount:   c.Curve.Value(lvl.level + 1),
			})
		}
	})
	return info, err
}

// Purchase buys one level of the upgrade. Every cost curve is evaluated at
// the current level and checked against the resource balance; if any single
// cost is unaffordable the whole purchase aborts with no side effects.
// On success all deductions apply and the level increments by exactly 1.
func (e *Engine) Purchase(u blueprint.Upgrade) error {
	var err error
	e.do(func() {
		lvl, ok := e.levels[u.Target.ID]
		if !ok {
			err = fmt.Errorf("%w: upgrade target %q", ErrMissingComponent, u.Target.ID)
			e.log.Error("purchase for unregistered upgrade target",
				"upgrade", u.ID, "target", u.Target.ID)
			return
		}

		type deduction struct {
			comp   *resourceComponent
			amount float64
		}

		// Collect every deduction before applying any.
		pending := make([]deduction, 0, len(u.Costs))
		for _, c := range u.Costs {
			comp, ok := e.resources[c.Resource.ID]
			if !ok {
				err = fmt.Errorf("%w: resource %q", ErrMissingComponent, c.Resource.ID)
				e.log.Error("purchase cost references unregistered resource",
					"upgrade", u.ID, "resource", c.Resource.ID)
				return
			}
			amount := c.Curve.Value(lvl.level)
			if amount > comp.value {
				err = fmt.Errorf("%w: %s costs %v, have %v",
					ErrInsufficientFunds, c.Resource.Name, amount, comp.value)
				e.log.Info("purchase rejected",
					"upgrade", u.ID, "resource", c.Resource.Name,
					"cost", amount, "balance", comp.value)
				return
			}
			pending = append(pending, deduction{comp: comp, amount: amount})
		}

		for _, d := range pending {
			d.comp.value -= d.amount
		}
		lvl.level++
	})
	return err
}

// Generate applies a generator's curve once at its current level, adding
// the result directly to its resource. This is the manual, user-triggered
// production path; the multiplier is always 1.
func (e *Engine) Generate(g blueprint.Generator) error {
	var err error
	e.do(func() {
		lvl, ok := e.levels[g.ID]
		if !ok {
			err = fmt.Errorf("%w: generator %q", ErrMissingComponent, g.ID)
			e.log.Error("generate for generator with no level component", "generator", g.ID)
			return
		}
		res, ok := e.resources[g.Resource.ID]
		if !ok {
			err = fmt.Errorf("%w: resource %q", ErrMissingComponent, g.Resource.ID)
			e.log.Error("generate targets unregistered resource",
				"generator", g.ID, "resource", g.Resource.ID)
			return
		}
		res.value += g.Curve.Value(lvl.level)
	})
	return err
}
