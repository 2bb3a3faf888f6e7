package wave

import (
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/star-defender/internal/config"
	"github.com/vovakirdan/star-defender/internal/core"
	"github.com/vovakirdan/star-defender/internal/games/defender/entity"
	"github.com/vovakirdan/star-defender/internal/games/defender/event"
	"github.com/vovakirdan/star-defender/internal/games/defender/pattern"
)

// State is the spawner state.
type State int

const (
	StateWaiting  State = iota // Idle until Start
	StateSpawning              // Releasing queued enemies
	StateActive                // Queue empty, enemies still alive
	StateComplete              // Wave cleared, counting down to the next
)

func (s State) String() string {
	switch s {
	case StateWaiting:
		return "waiting"
	case StateSpawning:
		return "spawning"
	case StateActive:
		return "active"
	case StateComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Sink receives spawned enemies and reports how many are still alive.
type Sink interface {
	AddEnemy(e *entity.Enemy)
	ActiveEnemyCount() int
}

// Order is one queued spawn.
type Order struct {
	Kind    entity.EnemyKind
	Pattern string
	X, Y    float64 // Spawn center
}

// Spawner releases the enemies of a composed wave over time and detects
// when the wave is cleared.
type Spawner struct {
	cfg      config.DefenderConfig
	composer *Composer
	rng      *core.RNG
	log      *log.Logger

	state      State
	wave       int
	current    Descriptor
	queue      []Order
	sinceSpawn float64
	clearTimer float64
}

// NewSpawner creates a spawner in the Waiting state.
func NewSpawner(cfg config.DefenderConfig, composer *Composer, rng *core.RNG, logger *log.Logger) *Spawner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Spawner{cfg: cfg, composer: composer, rng: rng, log: logger}
}

// Start begins wave n. Only valid while Waiting; otherwise a no-op that
// reports false.
func (s *Spawner) Start(n int, q *event.Queue) bool {
	if s.state != StateWaiting {
		return false
	}
	s.begin(n, q)
	return true
}

func (s *Spawner) begin(n int, q *event.Queue) {
	d := s.composer.Compose(n)
	s.wave = d.Number
	s.current = d

	total := d.Total()
	s.queue = s.queue[:0]
	for _, e := range d.Entries {
		for i := 0; i < e.Count; i++ {
			x, y := s.composer.SpawnPosition(d.Formation, len(s.queue), total)
			s.queue = append(s.queue, Order{Kind: e.Kind, Pattern: e.Pattern, X: x, Y: y})
		}
	}

	// Spawn order is shuffled once; positions stay tied to their slot.
	s.rng.Shuffle(len(s.queue), func(i, j int) {
		s.queue[i], s.queue[j] = s.queue[j], s.queue[i]
	})

	s.state = StateSpawning
	s.sinceSpawn = math.Inf(1) // First order spawns on the first tick
	s.clearTimer = 0

	s.log.Debug("wave start", "wave", s.wave, "enemies", total, "formation", d.Formation, "delay", d.SpawnDelay)
	q.Push(event.Event{Kind: event.WaveStart, Wave: s.wave})
}

// Update advances the state machine by dt milliseconds.
func (s *Spawner) Update(dt float64, sink Sink, q *event.Queue) {
	switch s.state {
	case StateSpawning:
		s.sinceSpawn += dt
		if len(s.queue) > 0 && s.sinceSpawn >= s.current.SpawnDelay {
			order := s.queue[0]
			s.queue = s.queue[1:]
			sink.AddEnemy(s.build(order))
			s.sinceSpawn = 0
		}
		if len(s.queue) == 0 {
			s.state = StateActive
		}

	case StateActive:
		if sink.ActiveEnemyCount() == 0 {
			s.state = StateComplete
			s.clearTimer = 0
			s.log.Debug("wave complete", "wave", s.wave)
			q.Push(event.Event{Kind: event.WaveComplete, Wave: s.wave})
		}

	case StateComplete:
		s.clearTimer += dt
		if s.clearTimer >= s.cfg.Waves.ClearDelay {
			s.begin(s.wave+1, q)
		}
	}
}

// build instantiates an enemy for a queued order.
func (s *Spawner) build(o Order) *entity.Enemy {
	name := o.Pattern
	if _, ok := pattern.Lookup(name); !ok {
		_, fallback := pattern.Resolve(s.cfg.Patterns.FallbackPattern)
		s.log.Warn("unknown movement pattern, falling back", "wave", s.wave, "pattern", name, "fallback", fallback)
		name = fallback
	}

	kc := entity.KindConfig(s.cfg.Enemies, o.Kind)
	health := 0
	if o.Kind == entity.EnemyBoss {
		health = s.current.BossHealth
	}

	x := core.ClampF(o.X-kc.Width/2, 0, math.Max(0, s.cfg.Arena.Width-kc.Width))
	y := math.Min(o.Y-kc.Height/2, -kc.Height)

	return entity.NewEnemy(o.Kind, kc, x, y, s.cfg.Enemies.SpeedMultiplier(s.wave), health, name)
}

// Reset returns to Waiting and discards the queue and timers.
func (s *Spawner) Reset() {
	s.state = StateWaiting
	s.wave = 0
	s.current = Descriptor{}
	s.queue = s.queue[:0]
	s.sinceSpawn = 0
	s.clearTimer = 0
}

// State returns the current state.
func (s *Spawner) State() State {
	return s.state
}

// Wave returns the current wave number, 0 before the first Start.
func (s *Spawner) Wave() int {
	return s.wave
}

// Remaining returns the number of enemies still queued.
func (s *Spawner) Remaining() int {
	return len(s.queue)
}

// Current returns the descriptor of the wave in progress.
func (s *Spawner) Current() Descriptor {
	return s.current
}

// ClearCountdown returns the milliseconds left before the next wave starts
// while Complete, 0 otherwise.
func (s *Spawner) ClearCountdown() float64 {
	if s.state != StateComplete {
		return 0
	}
	return math.Max(0, s.cfg.Waves.ClearDelay-s.clearTimer)
}
