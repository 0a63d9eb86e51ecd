package compiler

import "unsafe"

// DefaultArenaSize is the byte budget reserved for one parse.
const DefaultArenaSize = 4 * 1024 * 1024

// ArenaAllocator is a monotonic bump allocator. It only hands out offsets;
// nothing is ever stored in or freed from it.
type ArenaAllocator struct {
	size   int
	offset int
}

func NewArenaAllocator(bytes int) *ArenaAllocator {
	return &ArenaAllocator{size: bytes}
}

// Allocate returns the current offset and advances it by size bytes.
// Offsets are not aligned.
func (a *ArenaAllocator) Allocate(size uintptr) (int, error) {
	if a.offset+int(size) > a.size {
		return 0, newCompileError(ResourceError, ErrArenaExhausted,
			"arena exhausted: %d of %d bytes used, %d requested", a.offset, a.size, size)
	}

	old := a.offset
	a.offset += int(size)
	return old, nil
}

// Used returns the number of bytes handed out so far.
func (a *ArenaAllocator) Used() int {
	return a.offset
}

// Cap returns the reserved byte budget.
func (a *ArenaAllocator) Cap() int {
	return a.size
}

// allocateFor reserves room for one value of type T.
func allocateFor[T any](a *ArenaAllocator) (int, error) {
	var zero T
	return a.Allocate(unsafe.Sizeof(zero))
}
