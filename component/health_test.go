package component

import "testing"

func TestHealthHitConsumesShieldFirst(t *testing.T) {
	h := NewHealth(3, 0.05, 60)
	h.Shield = true

	if !h.Hit() {
		t.Fatalf("first hit should be accepted")
	}
	if h.Shield || h.Current != 3 {
		t.Fatalf("shield should absorb the hit, got shield=%v hp=%d", h.Shield, h.Current)
	}
	if h.Hit() {
		t.Fatalf("hit during god mode should be ignored")
	}
	for h.InGodMode() {
		h.Tick()
	}
	if !h.Hit() || h.Current != 2 {
		t.Fatalf("expected hp 2 after god mode, got %d", h.Current)
	}
}

func TestHealthDeathCallbacks(t *testing.T) {
	var damaged, died int
	h := NewHealth(1, 0, 60)
	h.OnDamage = func(*Health) { damaged++ }
	h.OnDeath = func(*Health) { died++ }

	h.Hit()
	if h.IsAlive() || damaged != 1 || died != 1 {
		t.Fatalf("expected one damage and one death, got %d/%d alive=%v", damaged, died, h.IsAlive())
	}
	h.Kill()
	if died != 1 {
		t.Fatalf("Kill on a dead health must not fire OnDeath again")
	}
}

func TestHealthHealCapsAtMax(t *testing.T) {
	h := NewHealth(3, 0, 60)
	h.Hit()
	h.Heal(5)
	if h.Current != 3 {
		t.Fatalf("expected heal to cap at 3, got %d", h.Current)
	}
	h.Kill()
	h.Heal(1)
	if h.IsAlive() {
		t.Fatalf("heal must not revive")
	}
}
