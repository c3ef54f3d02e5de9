package memkit

import (
	"sort"
	"unsafe"
)

// block is a free region of the arena, addressed as (offset, length)
// rather than raw pointers.
type block struct {
	off  int
	size int
}

// Pool is a first-fit allocator over a fixed byte arena. Blocks are
// carved out of a free-list on Alloc and merged back, coalescing with
// adjacent free blocks, on Free. The arena never grows: requests it
// cannot satisfy return nil. Not goroutine-safe.
type Pool struct {
	arena []byte
	free  []block     // disjoint, sorted by offset
	live  map[int]int // offset -> aligned block size

	allocatedBytes int
	allocCount     int
	freeCount      int
}

// NewPool creates a Pool backed by a poolSize-byte arena. A poolSize
// <= 0 yields a zero-size pool on which every Alloc fails; the fixed
// bound is the point of the type, so there is no default size.
func NewPool(poolSize int) *Pool {
	p := &Pool{live: make(map[int]int)}
	if poolSize > 0 {
		p.arena = make([]byte, poolSize)
		p.free = []block{{off: 0, size: poolSize}}
	}
	return p
}

// Alloc returns a size-byte slice carved out of the arena, or nil when
// size <= 0 or no free block is large enough. Failure leaves the pool
// and its counters untouched. Block sizes are rounded up to pointer
// alignment, so every returned slice starts on an aligned offset.
func (p *Pool) Alloc(size int) []byte {
	if size <= 0 {
		return nil
	}
	need := alignUp(size)

	// First-fit scan
	for i := range p.free {
		b := p.free[i]
		if b.size < need {
			continue
		}
		if b.size == need {
			p.free = append(p.free[:i], p.free[i+1:]...)
		} else {
			p.free[i].off += need
			p.free[i].size -= need
		}
		p.live[b.off] = need
		p.allocatedBytes += need
		p.allocCount++
		return p.arena[b.off : b.off+size : b.off+need]
	}
	return nil
}

// Free returns buf's block to the free-list, merging it with adjacent
// free blocks on both sides. Freeing nil (or an empty slice) is a no-op
// that does not touch the counters. Freeing a slice that was not
// returned by Alloc, or freeing one twice, panics.
func (p *Pool) Free(buf []byte) {
	if len(buf) == 0 {
		return
	}
	off := p.offsetOf(buf)
	size, ok := p.live[off]
	if !ok {
		panic("memkit: Free of block not allocated from this pool")
	}
	delete(p.live, off)
	p.allocatedBytes -= size
	p.freeCount++

	i := sort.Search(len(p.free), func(j int) bool { return p.free[j].off > off })
	p.free = append(p.free, block{})
	copy(p.free[i+1:], p.free[i:])
	p.free[i] = block{off: off, size: size}

	// Coalesce with the previous block
	if i > 0 && p.free[i-1].off+p.free[i-1].size == p.free[i].off {
		p.free[i-1].size += p.free[i].size
		p.free = append(p.free[:i], p.free[i+1:]...)
		i--
	}
	// Coalesce with the next block
	if i+1 < len(p.free) && p.free[i].off+p.free[i].size == p.free[i+1].off {
		p.free[i].size += p.free[i+1].size
		p.free = append(p.free[:i+1], p.free[i+2:]...)
	}
}

// Reset drops every outstanding allocation and restores the arena to a
// single free block. Allocation and deallocation history counters are
// preserved; AllocatedBytes returns to zero.
func (p *Pool) Reset() {
	clear(p.live)
	p.allocatedBytes = 0
	if len(p.arena) > 0 {
		p.free = p.free[:0]
		p.free = append(p.free, block{off: 0, size: len(p.arena)})
	}
}

// PoolSize returns the fixed arena size in bytes.
func (p *Pool) PoolSize() int {
	return len(p.arena)
}

// AllocatedBytes returns the bytes currently carved out of the arena,
// including alignment padding.
func (p *Pool) AllocatedBytes() int {
	return p.allocatedBytes
}

// AllocationCount returns the number of successful Alloc calls.
func (p *Pool) AllocationCount() int {
	return p.allocCount
}

// DeallocationCount returns the number of effective Free calls.
// Free(nil) is not counted.
func (p *Pool) DeallocationCount() int {
	return p.freeCount
}

// FreeBlockCount returns the number of blocks on the free-list.
func (p *Pool) FreeBlockCount() int {
	return len(p.free)
}

// LargestFreeBlock returns the size of the largest free block, or 0
// when the arena is exhausted.
func (p *Pool) LargestFreeBlock() int {
	largest := 0
	for _, b := range p.free {
		if b.size > largest {
			largest = b.size
		}
	}
	return largest
}

// Utilization returns the ratio of allocated bytes to arena size
// (0.0 to 1.0). Returns 0.0 for a zero-size pool.
func (p *Pool) Utilization() float64 {
	if len(p.arena) == 0 {
		return 0
	}
	return float64(p.allocatedBytes) / float64(len(p.arena))
}

// Metrics returns a snapshot of pool statistics.
func (p *Pool) Metrics() PoolMetrics {
	return PoolMetrics{
		PoolSize:          p.PoolSize(),
		AllocatedBytes:    p.AllocatedBytes(),
		AllocationCount:   p.AllocationCount(),
		DeallocationCount: p.DeallocationCount(),
		FreeBlockCount:    p.FreeBlockCount(),
		LargestFreeBlock:  p.LargestFreeBlock(),
		Utilization:       p.Utilization(),
	}
}

// PoolMetrics contains statistical information about a Pool.
type PoolMetrics struct {
	PoolSize          int     // Fixed arena size in bytes
	AllocatedBytes    int     // Bytes currently allocated
	AllocationCount   int     // Successful Alloc calls
	DeallocationCount int     // Effective Free calls
	FreeBlockCount    int     // Blocks on the free-list
	LargestFreeBlock  int     // Largest single free block
	Utilization       float64 // Ratio of allocated bytes to arena size
}

// offsetOf maps a slice returned by Alloc back to its arena offset.
func (p *Pool) offsetOf(buf []byte) int {
	if len(p.arena) == 0 {
		panic("memkit: Free of block not allocated from this pool")
	}
	base := uintptr(unsafe.Pointer(&p.arena[0]))
	addr := uintptr(unsafe.Pointer(&buf[0]))
	if addr < base || addr >= base+uintptr(len(p.arena)) {
		panic("memkit: Free of block not allocated from this pool")
	}
	return int(addr - base)
}

// alignUp rounds n up to pointer-size alignment.
func alignUp(n int) int {
	const align = int(unsafe.Sizeof(uintptr(0)))
	return (n + align - 1) &^ (align - 1)
}
