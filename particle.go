package cinescroll

import (
	"math"
	"math/rand/v2"
)

// particle holds per-particle simulation state. Unexported; managed by ParticleField.
type particle struct {
	pos     Vec3
	vel     Vec3
	life    float64 // remaining lifetime in seconds
	maxLife float64 // initial lifetime (for computing t)
	size    float64
	alpha   float64
}

// ParticleConfig controls how a particle field spawns and moves particles.
type ParticleConfig struct {
	// MaxParticles is the pool size. New particles are silently dropped when full.
	MaxParticles int
	// EmitRate is the number of particles spawned per second.
	EmitRate float64
	// Lifetime is the range of particle lifetimes in seconds.
	Lifetime Range
	// Radius is the range of spawn distances from the field's anchor in the
	// x/y plane.
	Radius Range
	// Depth is the range of spawn offsets along z around the anchor.
	Depth Range
	// Speed is the range of initial speeds in world units per second.
	Speed Range
	// Size is the range of particle sizes in world units.
	Size Range
	// Swirl is the angular velocity around the z axis in radians per second.
	Swirl float64
	// Gravity is the constant acceleration applied every frame.
	Gravity Vec3
	// Color tints every particle.
	Color Color
}

// ParticleField is a CPU-simulated particle group anchored at a timeline
// depth. It integrates only when its owner calls Update, which a scene does
// only while the field's layer is visible.
type ParticleField struct {
	Anchor Vec3

	config    ParticleConfig
	particles []particle
	alive     int
	emitAccum float64
	rng       *rand.Rand

	integrations int
}

// NewParticleField creates a field with a preallocated pool anchored at the
// world position of depth.
func NewParticleField(depth float64, cfg ParticleConfig) *ParticleField {
	n := cfg.MaxParticles
	if n <= 0 {
		n = 128
	}
	return &ParticleField{
		Anchor:    Vec3{Z: DepthWorldZ(depth)},
		config:    cfg,
		particles: make([]particle, n),
		rng:       rand.New(rand.NewPCG(uint64(n), math.Float64bits(depth))),
	}
}

// Config returns a pointer to the field's config for live tuning.
func (f *ParticleField) Config() *ParticleConfig {
	return &f.config
}

// AliveCount returns the number of alive particles.
func (f *ParticleField) AliveCount() int {
	return f.alive
}

// IntegrationCount returns how many times the field has been integrated.
func (f *ParticleField) IntegrationCount() int {
	return f.integrations
}

// Reset kills all alive particles.
func (f *ParticleField) Reset() {
	f.alive = 0
	f.emitAccum = 0
}

// Particle is a read-only view of one alive particle for drawing.
type Particle struct {
	Pos   Vec3
	Size  float64
	Alpha float64
}

// Each calls fn for every alive particle.
func (f *ParticleField) Each(fn func(Particle)) {
	for i := 0; i < f.alive; i++ {
		p := &f.particles[i]
		fn(Particle{Pos: p.pos, Size: p.size, Alpha: p.alpha})
	}
}

// Update advances the simulation by dt seconds.
func (f *ParticleField) Update(dt float64) {
	f.integrations++
	g := f.config.Gravity
	swirl := f.config.Swirl * dt
	sin, cos := math.Sincos(swirl)

	// Update existing particles, swap-remove dead ones.
	i := 0
	for i < f.alive {
		p := &f.particles[i]
		p.life -= dt
		if p.life <= 0 {
			f.alive--
			f.particles[i] = f.particles[f.alive]
			continue
		}

		p.vel.X += g.X * dt
		p.vel.Y += g.Y * dt
		p.vel.Z += g.Z * dt

		// Rotate around the anchor axis, then move.
		rx, ry := p.pos.X-f.Anchor.X, p.pos.Y-f.Anchor.Y
		p.pos.X = f.Anchor.X + rx*cos - ry*sin
		p.pos.Y = f.Anchor.Y + rx*sin + ry*cos
		p.pos.X += p.vel.X * dt
		p.pos.Y += p.vel.Y * dt
		p.pos.Z += p.vel.Z * dt

		// Fade in over the first fifth of life, out over the rest.
		t := 1 - p.life/p.maxLife
		if t < 0.2 {
			p.alpha = t / 0.2
		} else {
			p.alpha = 1 - (t-0.2)/0.8
		}
		i++
	}

	if f.config.EmitRate > 0 {
		f.emitAccum += f.config.EmitRate * dt
		for f.emitAccum >= 1.0 {
			f.emitAccum -= 1.0
			if f.alive < len(f.particles) {
				f.spawn()
			}
		}
	}
}

// spawn initializes the particle at slot f.alive and increments alive.
func (f *ParticleField) spawn() {
	p := &f.particles[f.alive]
	c := &f.config

	angle := f.rng.Float64() * 2 * math.Pi
	r := f.random(c.Radius)
	sin, cos := math.Sincos(angle)
	p.pos = Vec3{
		X: f.Anchor.X + cos*r,
		Y: f.Anchor.Y + sin*r,
		Z: f.Anchor.Z + f.random(c.Depth),
	}
	speed := f.random(c.Speed)
	p.vel = Vec3{X: cos * speed, Y: sin * speed}

	p.life = f.random(c.Lifetime)
	if p.life <= 0 {
		p.life = 1.0
	}
	p.maxLife = p.life
	p.size = f.random(c.Size)
	p.alpha = 0

	f.alive++
}

// random returns a value in [r.Min, r.Max].
func (f *ParticleField) random(r Range) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + f.rng.Float64()*(r.Max-r.Min)
}
