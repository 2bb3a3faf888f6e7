// Package wave composes enemy waves and spawns them over time.
package wave

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/star-defender/internal/config"
	"github.com/vovakirdan/star-defender/internal/core"
	"github.com/vovakirdan/star-defender/internal/games/defender/entity"
	"github.com/vovakirdan/star-defender/internal/games/defender/pattern"
)

// Formations.
const (
	FormationLine      = "line"
	FormationScattered = "scattered"
	FormationMixed     = "mixed"
	FormationAssault   = "assault"
	FormationChaos     = "chaos"
)

// spawnLine is the center Y of a spawn slot before formation jitter.
const spawnLine = -60

// formationJitter is the maximum extra height above spawnLine per formation.
var formationJitter = map[string]float64{
	FormationScattered: 60,
	FormationMixed:     120,
	FormationAssault:   30,
	FormationChaos:     200,
}

// Entry is a group of identical enemies.
type Entry struct {
	Kind    entity.EnemyKind
	Count   int
	Pattern string
}

// Descriptor is a composed wave.
type Descriptor struct {
	Number     int
	Entries    []Entry
	Formation  string
	SpawnDelay float64 // Milliseconds between individual spawns
	BossHealth int
}

// Total returns the number of enemies in the wave, boss included.
func (d Descriptor) Total() int {
	n := 0
	for _, e := range d.Entries {
		n += e.Count
	}
	return n
}

// Count returns the number of enemies of kind k.
func (d Descriptor) Count(k entity.EnemyKind) int {
	n := 0
	for _, e := range d.Entries {
		if e.Kind == k {
			n += e.Count
		}
	}
	return n
}

// Composer turns a wave number into a Descriptor.
type Composer struct {
	cfg config.DefenderConfig
	rng *core.RNG
	log *log.Logger
}

// NewComposer creates a composer. A nil logger discards output.
func NewComposer(cfg config.DefenderConfig, rng *core.RNG, logger *log.Logger) *Composer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Composer{cfg: cfg, rng: rng, log: logger}
}

// Compose returns the descriptor for wave n. Waves covered by the
// handcrafted table come from configuration; later waves are procedural.
func (c *Composer) Compose(n int) Descriptor {
	if n < 1 {
		n = 1
	}

	var d Descriptor
	if n <= len(c.cfg.Waves.Handcrafted) {
		d = c.fromTable(n, c.cfg.Waves.Handcrafted[n-1])
	} else {
		d = c.procedural(n)
	}

	for _, err := range Validate(d) {
		c.log.Warn("malformed wave descriptor", "wave", n, "err", err)
	}
	return d
}

func (c *Composer) fromTable(n int, t config.WaveTable) Descriptor {
	d := Descriptor{
		Number:     n,
		Formation:  t.Formation,
		SpawnDelay: t.SpawnDelay,
		BossHealth: c.cfg.Enemies.BossHealth(n),
	}
	for _, e := range t.Entries {
		kind, ok := entity.ParseEnemyKind(e.Kind)
		if !ok {
			c.log.Warn("unknown enemy kind, using basic", "wave", n, "kind", e.Kind)
		}
		d.Entries = append(d.Entries, Entry{Kind: kind, Count: e.Count, Pattern: e.Pattern})
	}
	return d
}

// procedural builds wave n >= 6: total = base + perWave*(n-1) regular enemies
// split by share curves, zigzag taking the rounding slack, plus one boss.
func (c *Composer) procedural(n int) Descriptor {
	p := c.cfg.Waves.Procedural
	total := p.BaseCount + p.CountPerWave*(n-1)

	basic := share(total, p.BasicShare.At(n))
	fast := share(total, p.FastShare.At(n))
	tank := share(total, p.TankShare.At(n))
	zig := total - basic - fast - tank

	// Shares over 1.0 in a custom config: take the excess back from basic, then fast, then tank.
	for _, g := range []*int{&basic, &fast, &tank} {
		if zig >= 0 {
			break
		}
		take := min(*g, -zig)
		*g -= take
		zig += take
	}

	d := Descriptor{
		Number:     n,
		Formation:  c.formation(n),
		SpawnDelay: math.Max(p.DelayMin, p.DelayStart-p.DelayStep*float64(n)),
		BossHealth: c.cfg.Enemies.BossHealth(n),
	}

	counts := []struct {
		kind  entity.EnemyKind
		count int
	}{
		{entity.EnemyBasic, basic},
		{entity.EnemyFast, fast},
		{entity.EnemyTank, tank},
		{entity.EnemyZigzag, zig},
		{entity.EnemyBoss, 1},
	}
	for _, k := range counts {
		if k.count <= 0 {
			continue
		}
		d.Entries = append(d.Entries, Entry{Kind: k.kind, Count: k.count, Pattern: c.pickPattern(k.kind)})
	}
	return d
}

func share(total int, s float64) int {
	return int(math.Floor(float64(total)*s + 1e-9))
}

func (c *Composer) formation(n int) string {
	list := c.cfg.Waves.Procedural.Formations
	if len(list) == 0 {
		return FormationScattered
	}
	i := (n - len(c.cfg.Waves.Handcrafted) - 1) % len(list)
	if i < 0 {
		i += len(list)
	}
	return list[i]
}

func (c *Composer) pickPattern(k entity.EnemyKind) string {
	pool := c.cfg.Waves.Procedural.Patterns[k.String()]
	if len(pool) == 0 {
		return pattern.Straight
	}
	return pool[c.rng.Intn(len(pool))]
}

// SpawnPosition returns the spawn center for slot index of total in a
// formation. Every position lies above the top edge of the arena.
// Line formations are evenly spaced; the others are uniform-random across
// the width with formation-specific vertical jitter.
func (c *Composer) SpawnPosition(formation string, index, total int) (x, y float64) {
	w := c.cfg.Arena.Width
	if total < 1 {
		total = 1
	}

	jitter, ok := formationJitter[formation]
	if !ok {
		// Line and unknown formations
		return w * float64(index+1) / float64(total+1), spawnLine
	}

	margin := math.Min(40, w/4)
	return c.rng.Range(margin, w-margin), spawnLine - c.rng.Range(0, jitter)
}

// Validate reports every problem with a descriptor. A malformed descriptor
// is still spawnable: unknown patterns fall back at spawn time.
func Validate(d Descriptor) []error {
	var errs []error
	bosses := 0

	for i, e := range d.Entries {
		if e.Kind < entity.EnemyBasic || e.Kind >= entity.EnemyKindCount {
			errs = append(errs, fmt.Errorf("entry %d: unknown enemy kind %d", i, e.Kind))
		}
		if e.Count <= 0 {
			errs = append(errs, fmt.Errorf("entry %d: count must be positive, got %d", i, e.Count))
		}
		if _, ok := pattern.Lookup(e.Pattern); !ok {
			errs = append(errs, fmt.Errorf("entry %d: unknown movement pattern %q", i, e.Pattern))
		}
		if e.Kind == entity.EnemyBoss {
			bosses += e.Count
		}
	}

	if d.SpawnDelay <= 0 {
		errs = append(errs, errors.New("spawn delay must be positive"))
	}
	if bosses != 1 {
		errs = append(errs, fmt.Errorf("expected exactly one boss, got %d", bosses))
	}
	return errs
}
