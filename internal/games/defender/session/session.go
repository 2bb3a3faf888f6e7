// Package session orchestrates one Star Defender run: it drives the frame
// pipeline and owns score, combo and buff state.
package session

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/star-defender/internal/config"
	"github.com/vovakirdan/star-defender/internal/core"
	"github.com/vovakirdan/star-defender/internal/games/defender/collision"
	"github.com/vovakirdan/star-defender/internal/games/defender/entity"
	"github.com/vovakirdan/star-defender/internal/games/defender/event"
	"github.com/vovakirdan/star-defender/internal/games/defender/wave"
	"github.com/vovakirdan/star-defender/internal/games/defender/world"
)

// MaxFrame caps a single step after a stalled frame.
const MaxFrame = 100.0

// SubStep is the longest slice of movement between two collision passes.
// A player bullet closing on a fast enemy covers about 13 px in it, well
// inside their combined height.
const SubStep = 1000.0 / 60

// bannerDuration is how long wave banners stay visible, in milliseconds.
const bannerDuration = 2000.0

// Session is a single game from spawn to game over.
type Session struct {
	cfg  config.DefenderConfig
	seed int64
	log  *log.Logger

	rng      *core.RNG
	world    *world.World
	composer *wave.Composer
	spawner  *wave.Spawner
	resolver *collision.Resolver
	queue    event.Queue

	state          State
	comboRefreshed bool
	cues           []event.Cue

	banner      string
	bannerTimer float64
}

// New creates a session and starts wave 1. The configuration is copied.
// A nil logger discards output.
func New(cfg config.DefenderConfig, seed int64, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rng := core.NewRNG(seed)
	composer := wave.NewComposer(cfg, rng, logger)

	s := &Session{
		cfg:      cfg,
		seed:     seed,
		log:      logger,
		rng:      rng,
		world:    world.New(cfg, rng),
		composer: composer,
		spawner:  wave.NewSpawner(cfg, composer, rng, logger),
		resolver: collision.NewResolver(cfg.Enemies.ContactDamage),
	}
	s.Reset()
	return s
}

// Reset clears the world, the spawner and the state, spawns the player and
// starts wave 1.
func (s *Session) Reset() {
	s.world.ClearAll()
	s.spawner.Reset()
	s.queue.Reset()
	s.rng.Seed(s.seed)

	s.state = newState()
	s.comboRefreshed = false
	s.cues = s.cues[:0]
	s.banner = ""
	s.bannerTimer = 0

	s.world.SpawnPlayer()
	s.spawner.Start(1, &s.queue)
	s.applyEvents()
}

// Step advances the simulation by dt milliseconds:
// input, update, collision, event effects, spawning, decay, cleanup.
// Update and collision repeat in slices of at most SubStep.
// Paused or finished sessions do not advance.
func (s *Session) Step(in core.Intents, dt float64) {
	if s.state.GameOver || s.state.Paused {
		return
	}
	dt = core.ClampF(dt, 0, MaxFrame)

	// Input
	if p := s.world.Player(); in.Fire && p != nil && p.CanFire() {
		if s.world.FirePlayer() > 0 {
			p.Fired()
			s.cue(event.CueShoot)
		}
	}

	n := max(1, int(math.Ceil(dt/SubStep-1e-9)))
	sub := dt / float64(n)
	for i := 0; i < n && !s.state.GameOver; i++ {
		s.world.Update(sub, in)
		s.resolver.Resolve(s.world, &s.queue)
		s.applyEvents()
	}

	s.spawner.Update(dt, s.world, &s.queue)
	s.applyEvents()

	s.decay(dt)
	s.world.Cleanup()

	s.state.Ticks++
	s.state.Elapsed += dt
}

// applyEvents drains the queue and applies every event.
func (s *Session) applyEvents() {
	for _, ev := range s.queue.Drain() {
		switch ev.Kind {
		case event.EnemyDestroyed:
			s.enemyDestroyed(ev)
		case event.PlayerHit:
			s.cue(event.CueHit)
		case event.ShieldAbsorbed:
			delete(s.state.Buffs, BuffShield)
			s.cue(event.CueHit)
		case event.PlayerKilled:
			s.state.GameOver = true
			s.world.SpawnExplosion(ev.X, ev.Y)
			s.cue(event.CueExplosion)
			s.log.Info("game over", "score", s.state.Score, "wave", s.state.Wave, "kills", s.state.Kills)
		case event.PowerUpCollected:
			s.collect(ev.PowerUp, ev.X, ev.Y)
		case event.WaveStart:
			s.state.Wave = ev.Wave
			s.showBanner(fmt.Sprintf("WAVE %d", ev.Wave))
			s.cue(event.CueWaveStart)
		case event.WaveComplete:
			s.showBanner(fmt.Sprintf("WAVE %d CLEAR", ev.Wave))
			s.cue(event.CueWaveComplete)
		}
	}
}

// enemyDestroyed extends the combo, awards multiplied points and rolls a drop.
func (s *Session) enemyDestroyed(ev event.Event) {
	s.state.Combo++
	s.state.ComboTimer = s.cfg.Combo.Timeout
	s.comboRefreshed = true

	points := Points(ev.Score, Multiplier(s.state.Combo, s.cfg.Combo))
	s.state.Score += points
	s.state.LastPoints = points
	s.state.Kills++

	s.world.SpawnExplosion(ev.X, ev.Y)
	s.world.SpawnText(fmt.Sprintf("+%d", points), ev.X, ev.Y)
	s.cue(event.CueExplosion)

	s.rollDrop(ev.X, ev.Y)
}

// rollDrop spawns a weighted random power-up with the configured chance.
func (s *Session) rollDrop(x, y float64) {
	pc := s.cfg.PowerUps
	if s.rng.Float64() >= pc.DropChance {
		return
	}
	total := pc.Weights.Total()
	if total <= 0 {
		return
	}

	weights := []struct {
		kind   entity.PowerUpKind
		weight int
	}{
		{entity.PowerUpTripleShot, pc.Weights.TripleShot},
		{entity.PowerUpRapidFire, pc.Weights.RapidFire},
		{entity.PowerUpShield, pc.Weights.Shield},
		{entity.PowerUpBomb, pc.Weights.Bomb},
	}

	roll := s.rng.Intn(total)
	cumulative := 0
	for _, w := range weights {
		cumulative += w.weight
		if roll < cumulative {
			s.world.SpawnPowerUp(w.kind, x, y)
			return
		}
	}
}

// collect applies a collected power-up. Timed buffs restart their full
// duration instead of stacking.
func (s *Session) collect(k entity.PowerUpKind, x, y float64) {
	p := s.world.Player()
	if p == nil {
		return
	}

	switch k {
	case entity.PowerUpTripleShot:
		p.UpgradeWeapon()
	case entity.PowerUpRapidFire:
		s.state.Buffs[BuffRapidFire] = s.cfg.PowerUps.RapidFireDuration
		p.SetRapidFire(true)
	case entity.PowerUpShield:
		s.state.Buffs[BuffShield] = s.cfg.PowerUps.ShieldDuration
		p.Shielded = true
	case entity.PowerUpBomb:
		s.detonate()
	}

	s.world.SpawnText(k.Label(), x, y)
	s.cue(event.CuePowerUpCollected)
}

// detonate destroys every active enemy for its raw score. Bomb kills do not
// touch the combo and never drop power-ups.
func (s *Session) detonate() {
	for _, e := range s.world.ActiveEnemies() {
		e.Health = 0
		e.Deactivate()
		s.state.Score += e.ScoreValue
		s.state.Kills++
		cx, cy := e.Center()
		s.world.SpawnExplosion(cx, cy)
	}
	s.cue(event.CueBomb)
}

// decay counts down the combo, buffs and banner.
func (s *Session) decay(dt float64) {
	if s.state.Combo > 0 && !s.comboRefreshed {
		s.state.ComboTimer -= dt
		if s.state.ComboTimer <= 0 {
			s.state.ComboTimer = 0
			s.state.Combo = 0
		}
	}
	s.comboRefreshed = false

	p := s.world.Player()
	for kind, remaining := range s.state.Buffs {
		remaining -= dt
		if remaining > 0 {
			s.state.Buffs[kind] = remaining
			continue
		}
		delete(s.state.Buffs, kind)
		if p == nil {
			continue
		}
		switch kind {
		case BuffRapidFire:
			p.SetRapidFire(false)
		case BuffShield:
			p.Shielded = false
		}
	}

	if s.bannerTimer > 0 {
		s.bannerTimer -= dt
		if s.bannerTimer <= 0 {
			s.bannerTimer = 0
			s.banner = ""
		}
	}
}

func (s *Session) showBanner(text string) {
	s.banner = text
	s.bannerTimer = bannerDuration
}

func (s *Session) cue(c event.Cue) {
	s.cues = append(s.cues, c)
}

// Drain returns the audio cues emitted since the last call.
func (s *Session) Drain() []event.Cue {
	if len(s.cues) == 0 {
		return nil
	}
	out := make([]event.Cue, len(s.cues))
	copy(out, s.cues)
	s.cues = s.cues[:0]
	return out
}

// TogglePause pauses or resumes the session. Finished sessions stay finished.
func (s *Session) TogglePause() {
	if s.state.GameOver {
		return
	}
	s.state.Paused = !s.state.Paused
}

// State returns a copy of the session state.
func (s *Session) State() State {
	return s.state.clone()
}

// Multiplier returns the current combo multiplier.
func (s *Session) Multiplier() float64 {
	return Multiplier(s.state.Combo, s.cfg.Combo)
}

// Result returns the final outcome. Meaningful once GameOver is set.
func (s *Session) Result() Result {
	return Result{
		Score:   s.state.Score,
		Wave:    s.state.Wave,
		Kills:   s.state.Kills,
		Elapsed: s.state.Elapsed,
	}
}

// Banner returns the wave banner currently on display.
func (s *Session) Banner() (string, bool) {
	return s.banner, s.banner != ""
}

// World exposes the entity collections for rendering.
func (s *Session) World() *world.World {
	return s.world
}

// Spawner exposes the wave state machine for display.
func (s *Session) Spawner() *wave.Spawner {
	return s.spawner
}

// Config returns the configuration the session runs with.
func (s *Session) Config() config.DefenderConfig {
	return s.cfg
}
