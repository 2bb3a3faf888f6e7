package event

// Cue is a named audio notification. Cues carry no payload; the sink decides
// what, if anything, to play.
type Cue string

const (
	CueShoot            Cue = "shoot"
	CueExplosion        Cue = "explosion"
	CueHit              Cue = "hit"
	CuePowerUpCollected Cue = "powerup-collected"
	CueWaveStart        Cue = "wave-start"
	CueWaveComplete     Cue = "wave-complete"
	CueBomb             Cue = "bomb"
)

// AllCues lists every cue the simulation can emit.
var AllCues = []Cue{
	CueShoot,
	CueExplosion,
	CueHit,
	CuePowerUpCollected,
	CueWaveStart,
	CueWaveComplete,
	CueBomb,
}
