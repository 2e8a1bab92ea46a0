// Package tagger mints process-unique instance tags.
//
// A Tag identifies one owner (typically one store instance) for the
// lifetime of the process. Tags are drawn from a 128-bit counter space:
// a 112-bit prefix handed out by a mutex-guarded global counter, and a
// 16-bit offset advanced locally. Callers take whole offset batches at a
// time, so the global lock is acquired once per 65,536 tags rather than
// once per tag.
//
// The counter starts at zero when the process starts and is never reset.
package tagger
