package tagger

import (
	"sync"
	"testing"
)

func TestNextUnique(t *testing.T) {
	const n = 200000 // spans several offset batches

	seen := make(map[Tag]struct{}, n)
	for i := 0; i < n; i++ {
		tag := Next()
		if _, dup := seen[tag]; dup {
			t.Fatalf("duplicate tag %v after %d draws", tag, i)
		}
		seen[tag] = struct{}{}
	}
}

func TestNextUniqueConcurrent(t *testing.T) {
	const (
		goroutines = 8
		perG       = 100000
	)

	results := make([][]Tag, goroutines)

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			tags := make([]Tag, perG)
			for i := range tags {
				tags[i] = Next()
			}
			results[g] = tags
		}(g)
	}
	wg.Wait()

	seen := make(map[Tag]struct{}, goroutines*perG)
	for g, tags := range results {
		for _, tag := range tags {
			if _, dup := seen[tag]; dup {
				t.Fatalf("goroutine %d produced duplicate tag %v", g, tag)
			}
			seen[tag] = struct{}{}
		}
	}
}

func TestCursorOffsetsIncreaseUntilRollover(t *testing.T) {
	var src source
	c := &cursor{next: maxOffset + 1}

	first := c.take(&src)
	if first.offset() != 0 {
		t.Fatalf("first offset = %d, want 0", first.offset())
	}

	prev := first
	for i := 1; i <= maxOffset; i++ {
		tag := c.take(&src)
		if tag.offset() != prev.offset()+1 {
			t.Fatalf("offset %d followed %d, want strict increment", tag.offset(), prev.offset())
		}
		if tag.Compare(prev) <= 0 {
			t.Fatalf("tag %v does not sort after %v", tag, prev)
		}
		prev = tag
	}

	// Batch is spent; the next draw must move to a fresh prefix and
	// restart the offsets.
	rolled := c.take(&src)
	if rolled.offset() != 0 {
		t.Errorf("offset after rollover = %d, want 0", rolled.offset())
	}
	if rolled.hi == first.hi && rolled.lo>>offsetBits == first.lo>>offsetBits {
		t.Error("rollover did not draw a new prefix")
	}
}

func TestSourcePrefixCarry(t *testing.T) {
	src := source{hi: 7, lo: maxPrefixLo}

	hi, lo := src.nextPrefix()
	if hi != 7 || lo != maxPrefixLo {
		t.Fatalf("nextPrefix() = (%d, %d), want (7, %d)", hi, lo, uint64(maxPrefixLo))
	}

	hi, lo = src.nextPrefix()
	if hi != 8 || lo != 0 {
		t.Errorf("after carry nextPrefix() = (%d, %d), want (8, 0)", hi, lo)
	}
}

func TestSourceExhaustionPanics(t *testing.T) {
	src := source{hi: ^uint64(0), lo: maxPrefixLo}

	// Hand out the very last prefix; advancing past it must panic.
	defer func() {
		if recover() == nil {
			t.Error("expected panic on prefix space exhaustion")
		}
	}()
	src.nextPrefix()
}

func BenchmarkNext(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Next()
	}
}

func BenchmarkNextParallel(b *testing.B) {
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			Next()
		}
	})
}
