package bpe

import (
	"testing"

	"github.com/promptmeter/promptmeter/pkg/encoding"
)

func mustEngine(t *testing.T, cacheSize int) *Engine {
	t.Helper()
	tbl, err := encoding.Load(encoding.CL100kBase)
	if err != nil {
		t.Fatal(err)
	}
	eng, err := NewEngine(tbl, cacheSize)
	if err != nil {
		t.Fatal(err)
	}
	return eng
}

func TestRoundTrip(t *testing.T) {
	eng := mustEngine(t, DefaultCacheSize)
	for _, text := range []string{
		"",
		"a",
		"Hello, world!",
		"the quick brown fox jumps over the lazy dog",
		"line one\nline two\r\nline three",
		"   leading and trailing spaces   ",
		"function foo() { return 1; }",
	} {
		ranks, err := eng.EncodeOrdinary(text)
		if err != nil {
			t.Fatalf("EncodeOrdinary(%q): %v", text, err)
		}
		got := eng.Decode(ranks)
		if got != text {
			t.Errorf("round trip for %q: got %q", text, got)
		}
	}
}

func TestCountConsistency(t *testing.T) {
	eng := mustEngine(t, DefaultCacheSize)
	for _, text := range []string{"", "hello", "the quick brown fox", "a b c d e"} {
		ranks, err := eng.EncodeOrdinary(text)
		if err != nil {
			t.Fatal(err)
		}
		n, err := eng.Count(text)
		if err != nil {
			t.Fatal(err)
		}
		if n != len(ranks) {
			t.Errorf("Count(%q) = %d, want %d", text, n, len(ranks))
		}
	}
}

func TestEmptyInput(t *testing.T) {
	eng := mustEngine(t, DefaultCacheSize)
	ranks, err := eng.EncodeOrdinary("")
	if err != nil {
		t.Fatal(err)
	}
	if len(ranks) != 0 {
		t.Errorf("EncodeOrdinary(\"\") = %v, want empty", ranks)
	}
	n, err := eng.Count("")
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("Count(\"\") = %d, want 0", n)
	}
}

func TestCacheIrrelevance(t *testing.T) {
	text := "the quick brown fox jumps over the lazy dog, repeatedly, the fox, the dog"
	cached := mustEngine(t, 8)
	uncached, err := NewEngineWithoutCache(cached.Table())
	if err != nil {
		t.Fatal(err)
	}

	want, err := cached.EncodeOrdinary(text)
	if err != nil {
		t.Fatal(err)
	}
	// Encode twice through the cached engine: a cache hit must not change
	// the result.
	again, err := cached.EncodeOrdinary(text)
	if err != nil {
		t.Fatal(err)
	}
	if !equalRanks(want, again) {
		t.Errorf("cached repeat encode diverged: %v vs %v", want, again)
	}

	got, err := uncached.EncodeOrdinary(text)
	if err != nil {
		t.Fatal(err)
	}
	if !equalRanks(want, got) {
		t.Errorf("cache presence changed output: cached=%v uncached=%v", want, got)
	}
}

func TestDisallowedSpecial(t *testing.T) {
	eng := mustEngine(t, DefaultCacheSize)
	text := "before " + encoding.EndOfText + " after"

	_, err := eng.Encode(text, nil, []string{encoding.EndOfText})
	if err == nil {
		t.Fatal("expected DisallowedSpecialError")
	}
	if _, ok := err.(*DisallowedSpecialError); !ok {
		t.Errorf("error = %T, want *DisallowedSpecialError", err)
	}

	ranks, err := eng.Encode(text, []string{encoding.EndOfText}, nil)
	if err != nil {
		t.Fatalf("allowed encode failed: %v", err)
	}
	rank, _ := eng.Table().SpecialToken(encoding.EndOfText)
	found := false
	for _, r := range ranks {
		if r == rank {
			found = true
		}
	}
	if !found {
		t.Errorf("expected special-token rank %d in %v", rank, ranks)
	}
}

func TestEncodeOrdinaryIgnoresSpecialTokens(t *testing.T) {
	eng := mustEngine(t, DefaultCacheSize)
	text := encoding.EndOfText
	ranks, err := eng.EncodeOrdinary(text)
	if err != nil {
		t.Fatal(err)
	}
	rank, _ := eng.Table().SpecialToken(encoding.EndOfText)
	for _, r := range ranks {
		if r == rank {
			t.Errorf("EncodeOrdinary must not emit the special-token rank %d", rank)
		}
	}
	if eng.Decode(ranks) != text {
		t.Errorf("Decode(EncodeOrdinary(%q)) round trip failed", text)
	}
}

func equalRanks(a, b []uint32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
