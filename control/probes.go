// control/probes.go
// Author: momentics <momentics@gmail.com>
//
// Runtime probe registry for internal inspection: pools and buffer
// factories publish stats functions here, diagnostics pull them out.

package control

import (
	"sync"

	"go.uber.org/zap"
)

// Probes holds registered probe functions.
type Probes struct {
	mu     sync.RWMutex
	probes map[string]func() any
}

// NewProbes creates a probe registry.
func NewProbes() *Probes {
	return &Probes{
		probes: make(map[string]func() any),
	}
}

// Register inserts a named probe hook.
func (p *Probes) Register(name string, fn func() any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.probes[name] = fn
}

// Snapshot returns output of all probes.
func (p *Probes) Snapshot() map[string]any {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make(map[string]any)
	for k, fn := range p.probes {
		out[k] = fn()
	}
	return out
}

// LogState dumps every probe as one structured log entry.
func (p *Probes) LogState(logger *zap.Logger) {
	for name, value := range p.Snapshot() {
		logger.Info("state probe", zap.String("probe", name), zap.Any("value", value))
	}
}

// defaultProbes is the process-wide registry.
var defaultProbes = NewProbes()

// Register inserts a named probe hook into the process-wide registry.
func Register(name string, fn func() any) {
	defaultProbes.Register(name, fn)
}

// Snapshot returns the output of all process-wide probes.
func Snapshot() map[string]any {
	return defaultProbes.Snapshot()
}

// LogState dumps the process-wide registry.
func LogState(logger *zap.Logger) {
	defaultProbes.LogState(logger)
}
