package bpe

import "testing"

func TestCacheEvictsOldestOnOverflow(t *testing.T) {
	c := NewCache(2)
	c.Put("a", []uint32{1})
	c.Put("b", []uint32{2})
	c.Put("c", []uint32{3}) // evicts "a"

	if _, ok := c.Get("a"); ok {
		t.Error(`"a" should have been evicted`)
	}
	if _, ok := c.Get("b"); !ok {
		t.Error(`"b" should still be present`)
	}
	if _, ok := c.Get("c"); !ok {
		t.Error(`"c" should be present`)
	}
}

func TestCacheHitsDoNotReorder(t *testing.T) {
	c := NewCache(2)
	c.Put("a", []uint32{1})
	c.Put("b", []uint32{2})
	c.Get("a") // a hit; must not protect "a" from the next eviction
	c.Put("c", []uint32{3})

	if _, ok := c.Get("a"); ok {
		t.Error(`"a" should still be evicted despite the intervening hit`)
	}
}

func TestZeroCapacityCacheIsNoOp(t *testing.T) {
	c := NewCache(0)
	c.Put("a", []uint32{1})
	if _, ok := c.Get("a"); ok {
		t.Error("zero-capacity cache must never report a hit")
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
}
