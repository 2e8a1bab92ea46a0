package tagger

import "sync"

// source is the global prefix counter. The mutex is held only for the
// read-modify-write of the counter pair, never across anything that can
// block.
type source struct {
	mu sync.Mutex

	// hi and lo form the 112-bit prefix that the next batch will receive.
	// lo stays below 1<<48; incrementing past that carries into hi.
	hi, lo uint64
}

// nextPrefix returns the current prefix and advances the counter.
// It panics once the prefix space is exhausted: at that point the process
// can no longer mint unique tags.
func (s *source) nextPrefix() (hi, lo uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	hi, lo = s.hi, s.lo

	s.lo++
	if s.lo > maxPrefixLo {
		s.lo = 0
		s.hi++
		if s.hi == 0 {
			panic("tagger: prefix space exhausted")
		}
	}

	return hi, lo
}

// global is the process-wide counter. Zero at process start, never reset.
var global source

// cursor is one batch of 65,536 offsets under a single prefix.
//
// Cursors are cached in a sync.Pool, which keeps them per-P: a goroutine
// checking one out has exclusive use of it, so no further synchronization
// is needed. A cursor collected by the pool before its batch is used up
// wastes the remaining offsets, which the 112-bit prefix space absorbs
// without concern.
type cursor struct {
	hi, lo uint64 // current prefix
	next   uint32 // next offset to hand out; > maxOffset means exhausted
}

func (c *cursor) take(s *source) Tag {
	if c.next > maxOffset {
		c.hi, c.lo = s.nextPrefix()
		c.next = 0
	}

	t := Tag{hi: c.hi, lo: c.lo<<offsetBits | uint64(c.next)}
	c.next++

	return t
}

var cursors = sync.Pool{
	New: func() any {
		// Start exhausted so the first use draws a fresh prefix.
		return &cursor{next: maxOffset + 1}
	},
}

// Next returns a tag that no other call in this process has returned or
// will ever return.
//
// Next never blocks beyond a brief mutex hold, and only reaches the
// global counter once per offset batch.
func Next() Tag {
	c := cursors.Get().(*cursor)
	t := c.take(&global)
	cursors.Put(c)
	return t
}
