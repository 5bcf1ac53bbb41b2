package cinescroll

import "testing"

func testParticleConfig() ParticleConfig {
	return ParticleConfig{
		MaxParticles: 10,
		EmitRate:     100,
		Lifetime:     Range{Min: 1, Max: 1},
		Radius:       Range{Min: 5, Max: 10},
		Depth:        Range{Min: -2, Max: 2},
		Speed:        Range{Min: 1, Max: 2},
		Size:         Range{Min: 1, Max: 3},
		Swirl:        0.5,
	}
}

func TestParticleFieldDefaults(t *testing.T) {
	f := NewParticleField(1000, ParticleConfig{})
	if len(f.particles) != 128 {
		t.Errorf("pool size = %d, want 128", len(f.particles))
	}
	if f.Anchor.Z != -1000 {
		t.Errorf("Anchor.Z = %v, want -1000", f.Anchor.Z)
	}
	if f.AliveCount() != 0 || f.IntegrationCount() != 0 {
		t.Errorf("new field alive %d integrations %d", f.AliveCount(), f.IntegrationCount())
	}
}

func TestParticleFieldEmitAndPoolLimit(t *testing.T) {
	f := NewParticleField(1000, testParticleConfig())
	f.Update(0.055)
	if f.AliveCount() != 5 {
		t.Errorf("after 0.055s alive = %d, want 5", f.AliveCount())
	}
	f.Update(0.1)
	if f.AliveCount() != 10 {
		t.Errorf("pool full: alive = %d, want 10", f.AliveCount())
	}
	if f.IntegrationCount() != 2 {
		t.Errorf("IntegrationCount() = %d, want 2", f.IntegrationCount())
	}
}

func TestParticleFieldSpawnBounds(t *testing.T) {
	f := NewParticleField(1000, testParticleConfig())
	f.Config().Swirl = 0
	f.Config().Speed = Range{}
	f.Update(0.1)
	n := 0
	f.Each(func(p Particle) {
		n++
		dx, dy := p.Pos.X-f.Anchor.X, p.Pos.Y-f.Anchor.Y
		r2 := dx*dx + dy*dy
		if r2 < 25-epsilon || r2 > 100+epsilon {
			t.Errorf("particle radius^2 %v outside [25, 100]", r2)
		}
		if p.Pos.Z < -1002 || p.Pos.Z > -998 {
			t.Errorf("particle z %v outside anchor depth range", p.Pos.Z)
		}
		if p.Size < 1 || p.Size > 3 {
			t.Errorf("particle size %v outside [1, 3]", p.Size)
		}
	})
	if n != f.AliveCount() {
		t.Errorf("Each visited %d, alive %d", n, f.AliveCount())
	}
}

func TestParticleFieldExpire(t *testing.T) {
	f := NewParticleField(1000, testParticleConfig())
	f.Update(0.1)
	f.Config().EmitRate = 0
	f.Update(2)
	if f.AliveCount() != 0 {
		t.Errorf("alive = %d after lifetime, want 0", f.AliveCount())
	}
}

func TestParticleFieldReset(t *testing.T) {
	f := NewParticleField(1000, testParticleConfig())
	f.Update(0.1)
	f.Reset()
	if f.AliveCount() != 0 {
		t.Errorf("alive = %d after Reset, want 0", f.AliveCount())
	}
}

func TestParticleFieldDeterministic(t *testing.T) {
	a := NewParticleField(1000, testParticleConfig())
	b := NewParticleField(1000, testParticleConfig())
	for i := 0; i < 5; i++ {
		a.Update(0.03)
		b.Update(0.03)
	}
	var pa, pb []Particle
	a.Each(func(p Particle) { pa = append(pa, p) })
	b.Each(func(p Particle) { pb = append(pb, p) })
	if len(pa) != len(pb) {
		t.Fatalf("alive %d vs %d", len(pa), len(pb))
	}
	for i := range pa {
		if pa[i] != pb[i] {
			t.Errorf("particle %d differs: %+v vs %+v", i, pa[i], pb[i])
		}
	}
}
