// Package memkit implements manual-memory data structures: a growable
// array with explicit capacity management, a copy-on-write string, and a
// fixed-arena pool allocator with free-list coalescing.
//
// # Overview
//
// The three types are independent and share no state:
//
//   - Vector[T]: contiguous, indexable sequence with amortized O(1)
//     append and grow-only capacity management.
//   - COWString: reference-counted byte string that shares its buffer
//     across copies and duplicates it lazily on the first mutation.
//   - Pool: first-fit allocator over a fixed byte arena with block
//     splitting, coalescing on free, and fragmentation counters.
//
// # Basic Usage
//
//	v := memkit.NewVector[int]()
//	v.Push(42)
//	n, err := v.At(0)
//
//	s := memkit.NewCOWString("Hello")
//	t := s.Clone()          // shares the buffer, no bytes copied
//	t.SetByte(0, 'h')       // detaches: t now owns a private copy
//
//	p := memkit.NewPool(1 << 20)
//	buf := p.Alloc(256)     // nil when the pool cannot satisfy the request
//	p.Free(buf)
//
// # Thread Safety
//
// None of the types are goroutine-safe. Concurrent use requires external
// synchronization (e.g. a mutex guarding all mutating operations).
//
// # Error Handling
//
// Checked accessors return ErrOutOfRange or ErrEmpty. Pool exhaustion is
// not an error value: Alloc returns nil and the caller decides how to
// recover. Unchecked accessors (Get, Set) panic on bad indices, and using
// a COWString after Release panics, matching Go's misuse conventions.
//
// # Performance Characteristics
//
//   - Vector.Push: O(1) amortized (growth factor 2)
//   - COWString.Clone: O(1), copy-on-write
//   - Pool.Alloc: O(free-list length), first-fit
//   - Pool.Free: O(log free-list length) insert plus O(1) coalescing
//
// # Metrics and Monitoring
//
// Vector and Pool expose snapshot metrics for verifying internal state
// without touching private storage:
//
//	m := p.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Free blocks: %d\n", m.FreeBlockCount)
package memkit
