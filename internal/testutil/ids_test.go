package testutil

import (
	"sync"
	"testing"
)

func TestSequentialIDs_Next(t *testing.T) {
	g := NewSequentialIDs("")

	if got := g.Next(); got != "order-0001" {
		t.Errorf("first Next() = %q, want order-0001", got)
	}
	if got := g.Next(); got != "order-0002" {
		t.Errorf("second Next() = %q, want order-0002", got)
	}
}

func TestSequentialIDs_Reset(t *testing.T) {
	g := NewSequentialIDs("pedido")
	g.Next()
	g.Next()
	g.Reset()

	if got := g.Next(); got != "pedido-0001" {
		t.Errorf("Next() after Reset() = %q, want pedido-0001", got)
	}
}

func TestSequentialIDs_Concurrent(t *testing.T) {
	g := NewSequentialIDs("")
	const workers = 50

	var wg sync.WaitGroup
	seen := make(chan string, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seen <- g.Next()
		}()
	}
	wg.Wait()
	close(seen)

	unique := map[string]bool{}
	for id := range seen {
		if unique[id] {
			t.Errorf("duplicate id %q", id)
		}
		unique[id] = true
	}
	if len(unique) != workers {
		t.Errorf("got %d unique ids, want %d", len(unique), workers)
	}
}
