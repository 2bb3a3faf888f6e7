package pattern

import (
	"math"

	"github.com/vovakirdan/star-defender/internal/games/defender/entity"
)

// sine sways horizontally: offset = amplitude*sin(phase), phase advancing by
// frequency radians per second. Only the change in offset is applied, so
// clamping or wrapping the enemy does not break the motion.
func sine(e *entity.Enemy, dt float64, ctx Context) {
	p := ctx.Params
	p0 := e.Scratch[keyPhase]
	p1 := p0 + seconds(dt)*p.SineFrequency
	e.Scratch[keyPhase] = p1

	dx := p.SineAmplitude * (math.Sin(p1) - math.Sin(p0))
	e.X += dx
	if dt > 0 {
		e.VX = dx / seconds(dt)
	}
	descend(e, dt)
}

// zigzag moves diagonally and flips horizontal direction every ZigzagInterval.
func zigzag(e *entity.Enemy, dt float64, ctx Context) {
	interval := ctx.Params.ZigzagInterval
	dir := direction(e)
	timer := e.Scratch[keyTimer]

	if interval <= 0 {
		e.VX = dir * e.Speed
		e.X += e.VX * seconds(dt)
		descend(e, dt)
		return
	}

	for remaining := dt; remaining > 0; {
		step := math.Min(remaining, interval-timer)
		e.X += dir * e.Speed * seconds(step)
		timer += step
		remaining -= step
		if timer >= interval {
			timer = 0
			dir = -dir
		}
	}

	e.Scratch[keyTimer] = timer
	e.Scratch[keyDir] = dir
	e.VX = dir * e.Speed
	descend(e, dt)
}

// circular orbits a center that drifts downward at the enemy speed.
func circular(e *entity.Enemy, dt float64, ctx Context) {
	p := ctx.Params
	a0 := e.Scratch[keyAngle]
	a1 := a0 + seconds(dt)*p.CircleSpeed
	e.Scratch[keyAngle] = a1

	dx := p.CircleRadius * (math.Cos(a1) - math.Cos(a0))
	dy := p.CircleRadius * (math.Sin(a1) - math.Sin(a0))
	e.X += dx
	e.Y += dy
	if dt > 0 {
		e.VX = dx / seconds(dt)
	}
	descend(e, dt)
}

// random re-rolls horizontal velocity every JitterInterval.
func random(e *entity.Enemy, dt float64, ctx Context) {
	interval := ctx.Params.JitterInterval
	timer := e.Scratch[keyTimer]

	if e.Scratch[keyRolled] == 0 {
		e.Scratch[keyRolled] = 1
		e.VX = roll(e, ctx)
	}

	if interval <= 0 {
		e.X += e.VX * seconds(dt)
		descend(e, dt)
		return
	}

	for remaining := dt; remaining > 0; {
		step := math.Min(remaining, interval-timer)
		e.X += e.VX * seconds(step)
		timer += step
		remaining -= step
		if timer >= interval {
			timer = 0
			e.VX = roll(e, ctx)
		}
	}

	e.Scratch[keyTimer] = timer
	descend(e, dt)
}

func roll(e *entity.Enemy, ctx Context) float64 {
	if ctx.RNG == nil {
		return 0
	}
	return ctx.RNG.Range(-e.Speed, e.Speed)
}

// dive hovers for DiveCharge ms, then locks a unit vector toward the
// player's current center and keeps that velocity for good.
func dive(e *entity.Enemy, dt float64, ctx Context) {
	p := ctx.Params
	remaining := dt

	if e.Scratch[keyDiving] == 0 {
		charged := e.Scratch[keyCharged]
		step := math.Min(remaining, p.DiveCharge-charged)
		if step < 0 {
			step = 0
		}
		e.VX = 0
		e.VY = p.HoverSpeed
		e.Y += p.HoverSpeed * seconds(step)
		charged += step
		remaining -= step
		e.Scratch[keyCharged] = charged

		if charged < p.DiveCharge {
			return
		}
		commitDive(e, ctx)
	}

	e.X += e.VX * seconds(remaining)
	e.Y += e.VY * seconds(remaining)
}

func commitDive(e *entity.Enemy, ctx Context) {
	speed := e.Speed * ctx.Params.DiveMultiplier
	ux, uy := 0.0, 1.0

	if ctx.HasPlayer {
		cx, cy := e.Center()
		dx, dy := ctx.PlayerX-cx, ctx.PlayerY-cy
		if d := math.Hypot(dx, dy); d > 0 {
			ux, uy = dx/d, dy/d
		}
	}

	e.VX = ux * speed
	e.VY = uy * speed
	e.Scratch[keyDiving] = 1
}

// strafe descends to StrafeLine, then sweeps left and right across the
// arena, bouncing off the side edges.
func strafe(e *entity.Enemy, dt float64, ctx Context) {
	line := ctx.Params.StrafeLine
	remaining := seconds(dt)
	speed := e.Speed

	if e.Y < line && speed > 0 {
		t := math.Min(remaining, (line-e.Y)/speed)
		e.VX = 0
		e.VY = speed
		e.Y += speed * t
		remaining -= t
		if remaining <= 0 {
			return
		}
	}

	dir := direction(e)
	e.VY = 0
	e.X += dir * speed * remaining

	maxX := ctx.Width - e.W
	if maxX > 0 {
		if e.X < 0 {
			e.X = -e.X
			dir = 1
		}
		if e.X > maxX {
			e.X = 2*maxX - e.X
			dir = -1
		}
		e.X = math.Max(0, math.Min(maxX, e.X))
	}
	e.Scratch[keyDir] = dir
	e.VX = dir * speed
}
