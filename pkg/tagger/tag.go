package tagger

import "fmt"

const (
	// offsetBits is the width of the per-batch offset within a Tag.
	offsetBits = 16

	// maxOffset is the largest offset a batch can hand out.
	maxOffset = 1<<offsetBits - 1

	// prefixLoBits is the width of the low half of the prefix. Together
	// with the 64-bit high half this gives a 112-bit prefix, and 128 bits
	// for the whole Tag.
	prefixLoBits = 48

	// maxPrefixLo is the largest value of the low half of the prefix
	// before it carries into the high half.
	maxPrefixLo = 1<<prefixLoBits - 1
)

// Tag is a process-unique instance identifier.
//
// Tags are comparable with == and ordered lexicographically on
// (prefix, offset). The zero Tag is a valid tag (the very first one the
// process can mint), so it must not be used as a sentinel.
type Tag struct {
	// hi holds the high 64 bits of the prefix.
	hi uint64

	// lo packs the low 48 bits of the prefix and the 16-bit offset.
	lo uint64
}

// Compare orders two tags lexicographically on (prefix, offset).
// It returns -1 if t sorts before other, 0 if equal, and 1 otherwise.
func (t Tag) Compare(other Tag) int {
	switch {
	case t.hi < other.hi:
		return -1
	case t.hi > other.hi:
		return 1
	case t.lo < other.lo:
		return -1
	case t.lo > other.lo:
		return 1
	default:
		return 0
	}
}

// String formats the tag as prefix:offset in hex.
func (t Tag) String() string {
	return fmt.Sprintf("%016x%012x:%04x", t.hi, t.lo>>offsetBits, t.lo&maxOffset)
}

// offset reports the 16-bit offset component. Used by tests to observe
// batch progression.
func (t Tag) offset() uint16 {
	return uint16(t.lo & maxOffset)
}
