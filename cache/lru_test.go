package cache

import (
	"fmt"
	"testing"
)

func TestLRUGetPut(t *testing.T) {
	lru := NewLRU[string, string](2)
	lru.Put("caresses", "caress")
	if v, ok := lru.Get("caresses"); !ok || v != "caress" {
		t.Errorf("Get = %q, %v", v, ok)
	}
	if _, ok := lru.Get("missing"); ok {
		t.Error("expected miss")
	}
}

func TestLRUEviction(t *testing.T) {
	lru := NewLRU[string, int](2)
	lru.Put("a", 1)
	lru.Put("b", 2)
	lru.Get("a") // refresh a, b becomes the oldest
	lru.Put("c", 3)
	if _, ok := lru.Get("b"); ok {
		t.Error("expected b to be evicted")
	}
	if _, ok := lru.Get("a"); !ok {
		t.Error("expected a to survive")
	}
	if lru.Len() != 2 {
		t.Errorf("Len = %d, want 2", lru.Len())
	}
}

func TestLRUUpdate(t *testing.T) {
	lru := NewLRU[string, int](2)
	lru.Put("a", 1)
	lru.Put("a", 2)
	if v, _ := lru.Get("a"); v != 2 {
		t.Errorf("Get = %d, want 2", v)
	}
	if lru.Len() != 1 {
		t.Errorf("Len = %d, want 1", lru.Len())
	}
}

func TestLRURemove(t *testing.T) {
	lru := NewLRU[string, int](2)
	lru.Put("a", 1)
	lru.Remove("a")
	if _, ok := lru.Get("a"); ok {
		t.Error("expected a to be removed")
	}
}

func TestLRUConcurrent(t *testing.T) {
	lru := NewLRU[string, int](64)
	done := make(chan struct{})
	for g := 0; g < 4; g++ {
		go func(g int) {
			defer func() { done <- struct{}{} }()
			for i := 0; i < 200; i++ {
				key := fmt.Sprintf("%d-%d", g, i%32)
				lru.Put(key, i)
				lru.Get(key)
			}
		}(g)
	}
	for g := 0; g < 4; g++ {
		<-done
	}
}
