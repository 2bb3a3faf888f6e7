package event

import "testing"

func TestQueueDrain(t *testing.T) {
	var q Queue
	q.Push(Event{Kind: EnemyDestroyed, Score: 100})
	q.Push(Event{Kind: WaveStart, Wave: 2})
	q.Push(Event{Kind: EnemyDestroyed, Score: 150})

	if q.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", q.Len())
	}
	if got := q.Count(EnemyDestroyed); got != 2 {
		t.Errorf("Count(EnemyDestroyed) = %d, expected 2", got)
	}

	drained := q.Drain()
	if len(drained) != 3 {
		t.Fatalf("Drain() returned %d events, expected 3", len(drained))
	}
	if q.Len() != 0 {
		t.Errorf("Len() after Drain() = %d, expected 0", q.Len())
	}

	// Drained slice must not alias the queue storage
	q.Push(Event{Kind: PlayerHit})
	if drained[0].Kind != EnemyDestroyed {
		t.Errorf("drained[0] was overwritten by a later Push: %v", drained[0].Kind)
	}
}

func TestQueueDrainEmpty(t *testing.T) {
	var q Queue
	if got := q.Drain(); got != nil {
		t.Errorf("Drain() on empty queue = %v, expected nil", got)
	}
}

func TestKindString(t *testing.T) {
	if WaveComplete.String() != "wave-complete" {
		t.Errorf("WaveComplete.String() = %q", WaveComplete.String())
	}
	if Kind(99).String() != "unknown" {
		t.Errorf("Kind(99).String() = %q, expected unknown", Kind(99).String())
	}
}

func TestCueNames(t *testing.T) {
	expected := []string{"shoot", "explosion", "hit", "powerup-collected", "wave-start", "wave-complete", "bomb"}
	if len(AllCues) != len(expected) {
		t.Fatalf("AllCues has %d entries, expected %d", len(AllCues), len(expected))
	}
	for i, c := range AllCues {
		if string(c) != expected[i] {
			t.Errorf("AllCues[%d] = %q, expected %q", i, c, expected[i])
		}
	}
}
