package memkit

import "bytes"

// sharedBuf is the reference-counted storage behind one or more
// COWString handles. refs always equals the number of live handles.
type sharedBuf struct {
	data []byte
	refs int
}

// COWString is a copy-on-write byte string. Clone and Assign share the
// backing buffer in O(1); the first mutating access through a handle
// detaches it onto a private copy. Not goroutine-safe.
//
// Handles are explicit about lifetime: Clone acts as the copy
// constructor and Release as the destructor. Using a handle after
// Release panics.
type COWString struct {
	buf *sharedBuf
}

// NewCOWString creates a COWString holding a private copy of s.
func NewCOWString(s string) COWString {
	return COWString{buf: &sharedBuf{data: []byte(s), refs: 1}}
}

// COWStringFromBytes creates a COWString holding a private copy of b.
// A nil b yields the canonical empty string.
func COWStringFromBytes(b []byte) COWString {
	data := make([]byte, len(b))
	copy(data, b)
	return COWString{buf: &sharedBuf{data: data, refs: 1}}
}

// Clone returns a new handle sharing this string's buffer. No bytes are
// copied; the buffer's reference count is incremented.
func (s *COWString) Clone() COWString {
	s.panicIfReleased()
	s.buf.refs++
	return COWString{buf: s.buf}
}

// Assign replaces s's contents with other's, sharing other's buffer.
// Assigning a string to itself is a no-op and does not change reference
// counts.
func (s *COWString) Assign(other COWString) {
	s.panicIfReleased()
	other.panicIfReleased()
	if s.buf == other.buf {
		return
	}
	other.buf.refs++
	s.drop()
	s.buf = other.buf
}

// Release drops this handle's reference. The buffer is freed when the
// last handle referencing it is released. Any subsequent operation on
// this handle panics.
func (s *COWString) Release() {
	s.panicIfReleased()
	s.drop()
	s.buf = nil
}

// Len returns the length in bytes. Never detaches.
func (s *COWString) Len() int {
	s.panicIfReleased()
	return len(s.buf.data)
}

// Empty reports whether the string has zero length.
func (s *COWString) Empty() bool {
	return s.Len() == 0
}

// String returns the contents as a Go string. Never detaches.
func (s *COWString) String() string {
	s.panicIfReleased()
	return string(s.buf.data)
}

// Bytes returns a copy of the contents. Never detaches.
func (s *COWString) Bytes() []byte {
	s.panicIfReleased()
	b := make([]byte, len(s.buf.data))
	copy(b, s.buf.data)
	return b
}

// ByteAt returns the byte at index i, or ErrOutOfRange. Read-only:
// never detaches.
func (s *COWString) ByteAt(i int) (byte, error) {
	s.panicIfReleased()
	if i < 0 || i >= len(s.buf.data) {
		return 0, ErrOutOfRange
	}
	return s.buf.data[i], nil
}

// SetByte writes c at index i, or returns ErrOutOfRange. A shared
// buffer is detached first, so sibling handles are never affected.
func (s *COWString) SetByte(i int, c byte) error {
	s.panicIfReleased()
	if i < 0 || i >= len(s.buf.data) {
		return ErrOutOfRange
	}
	s.detach()
	s.buf.data[i] = c
	return nil
}

// Concat returns a new COWString holding s's bytes followed by other's.
// The result always gets a fresh buffer, regardless of how either
// operand is shared.
func (s *COWString) Concat(other COWString) COWString {
	s.panicIfReleased()
	other.panicIfReleased()
	data := make([]byte, 0, len(s.buf.data)+len(other.buf.data))
	data = append(data, s.buf.data...)
	data = append(data, other.buf.data...)
	return COWString{buf: &sharedBuf{data: data, refs: 1}}
}

// Equal reports whether s and other hold identical bytes. Equality is
// content-based: two strings with distinct buffers compare equal when
// their bytes match.
func (s *COWString) Equal(other COWString) bool {
	s.panicIfReleased()
	other.panicIfReleased()
	return bytes.Equal(s.buf.data, other.buf.data)
}

// RefCount returns the number of live handles sharing this string's
// buffer. Exposed so callers can verify sharing behavior.
func (s *COWString) RefCount() int {
	s.panicIfReleased()
	return s.buf.refs
}

// SharesStorage reports whether s and other reference the same buffer.
func (s *COWString) SharesStorage(other COWString) bool {
	s.panicIfReleased()
	other.panicIfReleased()
	return s.buf == other.buf
}

// detach gives this handle a private copy of the buffer when it is
// shared. A buffer with a single reference is left in place.
func (s *COWString) detach() {
	if s.buf.refs == 1 {
		return
	}
	s.buf.refs--
	data := make([]byte, len(s.buf.data))
	copy(data, s.buf.data)
	s.buf = &sharedBuf{data: data, refs: 1}
}

// drop decrements the buffer's reference count and frees it at zero.
func (s *COWString) drop() {
	s.buf.refs--
	if s.buf.refs == 0 {
		s.buf.data = nil
	}
}

// panicIfReleased panics if the handle has been released.
func (s *COWString) panicIfReleased() {
	if s.buf == nil {
		panic("memkit: use of COWString after Release()")
	}
}
