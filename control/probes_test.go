// File: control/probes_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package control

import (
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// TestProbes_RegisterSnapshot checks registration and snapshot isolation.
func TestProbes_RegisterSnapshot(t *testing.T) {
	p := NewProbes()
	calls := 0
	p.Register("a", func() any { calls++; return calls })
	p.Register("b", func() any { return "static" })

	snap := p.Snapshot()
	if len(snap) != 2 {
		t.Fatalf("snapshot size %d, want 2", len(snap))
	}
	if snap["a"] != 1 || snap["b"] != "static" {
		t.Fatalf("snapshot %v", snap)
	}
	// Probes re-evaluate on every snapshot.
	if snap = p.Snapshot(); snap["a"] != 2 {
		t.Fatalf("second snapshot: got %v, want 2", snap["a"])
	}
}

// TestProbes_Overwrite checks that re-registering a name replaces the hook.
func TestProbes_Overwrite(t *testing.T) {
	p := NewProbes()
	p.Register("x", func() any { return 1 })
	p.Register("x", func() any { return 2 })
	if got := p.Snapshot()["x"]; got != 2 {
		t.Fatalf("got %v, want 2", got)
	}
}

// TestProbes_ConcurrentAccess checks registry safety under parallel
// registration and snapshots.
func TestProbes_ConcurrentAccess(t *testing.T) {
	p := NewProbes()
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(tag int) {
			defer wg.Done()
			name := string(rune('a' + tag))
			for i := 0; i < 200; i++ {
				p.Register(name, func() any { return tag })
				_ = p.Snapshot()
			}
		}(w)
	}
	wg.Wait()
	if len(p.Snapshot()) != 8 {
		t.Fatalf("snapshot size %d, want 8", len(p.Snapshot()))
	}
}

// TestLogState checks that every probe reaches the log sink.
func TestLogState(t *testing.T) {
	p := NewProbes()
	p.Register("pool", func() any { return map[string]int{"retained": 3} })
	p.Register("buffer", func() any { return 7 })
	core, logs := observer.New(zap.InfoLevel)
	p.LogState(zap.New(core))
	if logs.Len() != 2 {
		t.Fatalf("logged %d entries, want 2", logs.Len())
	}
	names := map[string]bool{}
	for _, entry := range logs.All() {
		names[entry.ContextMap()["probe"].(string)] = true
	}
	if !names["pool"] || !names["buffer"] {
		t.Fatalf("probe names %v", names)
	}
}
