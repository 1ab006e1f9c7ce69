// Package testutil holds deterministic generators and fixtures shared by
// package tests.
package testutil

import (
	"fmt"
	"sync"
)

// SequentialIDs generates order IDs "order-0001", "order-0002", ...
//
// Golden output that includes order IDs stays byte-identical across runs.
// Thread-safety: Next is safe for concurrent use.
type SequentialIDs struct {
	mu     sync.Mutex
	prefix string
	seq    int64
}

// NewSequentialIDs creates a generator. An empty prefix means "order".
func NewSequentialIDs(prefix string) *SequentialIDs {
	if prefix == "" {
		prefix = "order"
	}
	return &SequentialIDs{prefix: prefix}
}

// Next returns the next ID. The first call returns <prefix>-0001.
func (g *SequentialIDs) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq++
	return fmt.Sprintf("%s-%04d", g.prefix, g.seq)
}

// Reset restarts the sequence at 1.
func (g *SequentialIDs) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq = 0
}
