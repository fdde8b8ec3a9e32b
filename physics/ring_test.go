package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/firework/core"
)

func TestAppendBurstCountsAndOrigin(t *testing.T) {
	for n := 10; n < 16; n++ {
		burst := AppendBurst(nil, 31000, 4200, n, 2500)

		if len(burst) != n+n/2 {
			t.Fatalf("n=%d: got %d pellets, want %d", n, len(burst), n+n/2)
		}
		if BurstSize(n) != len(burst) {
			t.Errorf("n=%d: BurstSize = %d, want %d", n, BurstSize(n), len(burst))
		}
		for i, p := range burst {
			if p.X != 31000 || p.Y != 4200 {
				t.Errorf("n=%d pellet %d: position (%d, %d), want parent position", n, i, p.X, p.Y)
			}
			if p.Model != core.ModelInert {
				t.Errorf("n=%d pellet %d: model %v, want inert", n, i, p.Model)
			}
		}
	}
}

func TestAppendBurstVelocities(t *testing.T) {
	const n, m = 12, 2000
	burst := AppendBurst(nil, 0, 0, n, m)
	coeff := 2 * math.Pi / float64(n)

	for r := 0; r < n; r++ {
		a := float64(r) * coeff
		wantX := int(float64(m) * math.Sin(a))
		wantY := int(float64(m) * 0.7 * math.Cos(a))
		if burst[r].VelX != wantX || burst[r].VelY != wantY {
			t.Errorf("outer r=%d: velocity (%d, %d), want (%d, %d)", r, burst[r].VelX, burst[r].VelY, wantX, wantY)
		}
	}

	for r := 0; r < n/2; r++ {
		a := float64(r) * coeff * 2.0
		wantX := int(float64(m) * 0.5 * math.Sin(a))
		wantY := int(float64(m) * 0.35 * math.Cos(a))
		got := burst[n+r]
		if got.VelX != wantX || got.VelY != wantY {
			t.Errorf("inner r=%d: velocity (%d, %d), want (%d, %d)", r, got.VelX, got.VelY, wantX, wantY)
		}
	}
}

func TestRingShape(t *testing.T) {
	const m = 3000
	// Top of the outer ring points straight down-screen at 0.7 magnitude
	vx, vy := RingVelocity(OuterRing(12, m), 0)
	if vx != 0 || math.Abs(float64(vy)-0.7*m) > 1 {
		t.Errorf("outer r=0: (%d, %d), want (0, ~%d)", vx, vy, int(0.7*m))
	}

	// Quarter turn of the outer ring is horizontal at full magnitude
	vx, vy = RingVelocity(OuterRing(12, m), 3)
	if math.Abs(float64(vx)-m) > 1 || math.Abs(float64(vy)) > 1 {
		t.Errorf("outer r=3: (%d, %d), want (~%d, ~0)", vx, vy, m)
	}

	// Inner ring reaches the same quarter turn at half the index
	vx, _ = RingVelocity(InnerRing(12, m), 1)
	if math.Abs(float64(vx)-0.5*math.Sin(math.Pi/3)*m) > 1 {
		t.Errorf("inner r=1: vx = %d, want ~%v", vx, 0.5*math.Sin(math.Pi/3)*m)
	}
}

func TestInnerRingOddCount(t *testing.T) {
	ring := InnerRing(13, 1000)
	if ring.Count != 6 {
		t.Errorf("InnerRing(13).Count = %d, want 6", ring.Count)
	}
}

func TestAppendRingPreservesExisting(t *testing.T) {
	existing := []core.Pellet{{X: 1, Y: 2, Model: core.ModelActive}}
	out := AppendRing(existing, 9, 9, OuterRing(10, 1000))
	if len(out) != 11 {
		t.Fatalf("len = %d, want 11", len(out))
	}
	if out[0].X != 1 || out[0].Model != core.ModelActive {
		t.Errorf("existing pellet modified: %+v", out[0])
	}
}

func TestRingVelocityZeroBase(t *testing.T) {
	vx, vy := RingVelocity(RingSpec{Count: 1, Magnitude: 1000}, 0)
	if vx != 0 || vy != 0 {
		t.Errorf("zero base: (%d, %d), want (0, 0)", vx, vy)
	}
}
