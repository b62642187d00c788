package sim

import (
	"errors"
	"testing"
	"time"
)

func TestSnapshotRoundTrip(t *testing.T) {
	e := newTestEngine(t)
	gold, _, track := clickerWorld(t, e)

	setBalance(e, gold, 250)
	if err := e.Purchase(track); err != nil {
		t.Fatalf("Purchase failed: %v", err)
	}
	e.FastForward(42 * time.Second)

	data, err := e.Snapshot().Encode()
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	// Restore into a fresh engine with the same blueprints.
	e2 := newTestEngine(t)
	e2.RegisterResource(gold)
	e2.RegisterUpgrade(track)
	if err := e2.RestoreBytes(data); err != nil {
		t.Fatalf("RestoreBytes failed: %v", err)
	}

	v1, _ := e.Value(gold)
	v2, _ := e2.Value(gold)
	if v1 != v2 {
		t.Errorf("restored gold = %v, want %v", v2, v1)
	}
	if info, _ := e2.Info(track); info.Level != 1 {
		t.Errorf("restored level = %d, want 1", info.Level)
	}
	if d := e2.TotalDuration(); d != 42*time.Second {
		t.Errorf("restored TotalDuration = %v, want 42s", d)
	}
}

func TestSnapshotCapturesRunState(t *testing.T) {
	e := newTestEngine(t)
	clickerWorld(t, e)

	if snap := e.Snapshot(); !snap.Paused {
		t.Error("snapshot of a paused engine should record Paused")
	}

	e.Resume()
	if snap := e.Snapshot(); snap.Paused {
		t.Error("snapshot of a running engine should not record Paused")
	}
	e.Pause()
}

func TestDecodeMalformedSnapshot(t *testing.T) {
	cases := []struct {
		name string
		data []byte
	}{
		{"garbage", []byte("{{{not yaml")},
		{"wrong version", []byte("version: 99\n")},
		{"missing version", []byte("resources: {}\n")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeSnapshot(tc.data); !errors.Is(err, ErrMalformedSnapshot) {
				t.Errorf("DecodeSnapshot err = %v, want ErrMalformedSnapshot", err)
			}
		})
	}
}

func TestRestoreSkipsUnknownIdentifiers(t *testing.T) {
	e := newTestEngine(t)
	gold, _, _ := clickerWorld(t, e)

	snap := Snapshot{
		Version:   SnapshotVersion,
		Resources: map[string]float64{gold.ID: 7, "ghost": 99},
		Levels:    map[string]int{"ghost": 3},
	}
	e.Restore(snap)

	if v, _ := e.Value(gold); v != 7 {
		t.Errorf("gold after restore = %v, want 7", v)
	}
}

func TestRestoreBytesRejectsMalformedWithoutSideEffects(t *testing.T) {
	e := newTestEngine(t)
	gold, _, _ := clickerWorld(t, e)
	setBalance(e, gold, 5)

	if err := e.RestoreBytes([]byte("version: 99\n")); !errors.Is(err, ErrMalformedSnapshot) {
		t.Fatalf("RestoreBytes err = %v, want ErrMalformedSnapshot", err)
	}
	if v, _ := e.Value(gold); v != 5 {
		t.Errorf("gold after failed restore = %v, want 5 (untouched)", v)
	}
}
