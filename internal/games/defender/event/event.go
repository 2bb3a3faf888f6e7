// Package event carries the per-frame notifications exchanged by the
// simulation components. Collisions and wave transitions are appended to a
// Queue and consumed once per frame by the session.
package event

import "github.com/vovakirdan/star-defender/internal/games/defender/entity"

// Kind identifies an event.
type Kind int

const (
	EnemyDestroyed   Kind = iota // An enemy's health crossed zero
	PlayerHit                    // The player lost health
	PlayerKilled                 // The player's health reached zero
	ShieldAbsorbed               // The shield absorbed a hit
	PowerUpCollected             // The player touched a power-up
	WaveStart                    // The spawner began a wave
	WaveComplete                 // The last enemy of a wave is gone
)

func (k Kind) String() string {
	switch k {
	case EnemyDestroyed:
		return "enemy-destroyed"
	case PlayerHit:
		return "player-hit"
	case PlayerKilled:
		return "player-killed"
	case ShieldAbsorbed:
		return "shield-absorbed"
	case PowerUpCollected:
		return "powerup-collected"
	case WaveStart:
		return "wave-start"
	case WaveComplete:
		return "wave-complete"
	default:
		return "unknown"
	}
}

// Event is a tagged record. Only the fields relevant to Kind are set.
// Events hold copies, never entity pointers, so they stay valid after cleanup.
type Event struct {
	Kind Kind

	// EnemyDestroyed
	Enemy entity.EnemyKind
	Score int // Raw score value of the destroyed enemy

	// PowerUpCollected
	PowerUp entity.PowerUpKind

	// Position of the cause (enemy center, power-up center, player center)
	X, Y float64

	// WaveStart, WaveComplete
	Wave int
}

// Queue is an append-only list of events drained once per frame.
type Queue struct {
	events []Event
}

// Push appends an event.
func (q *Queue) Push(e Event) {
	q.events = append(q.events, e)
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	return len(q.events)
}

// Drain returns the pending events and empties the queue.
// The returned slice is a copy and may be kept by the caller.
func (q *Queue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := make([]Event, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}

// Count returns how many pending events have the given kind.
func (q *Queue) Count(k Kind) int {
	n := 0
	for _, e := range q.events {
		if e.Kind == k {
			n++
		}
	}
	return n
}

// Reset discards all pending events.
func (q *Queue) Reset() {
	q.events = q.events[:0]
}
