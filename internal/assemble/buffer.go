package assemble

import (
	"fmt"
	"math"

	"github.com/vvka-141/scriptsort/pkg/scriptsort"
)

// AllocationError reports a buffer growth that could not be satisfied.
// It carries the attempted size and unwraps to scriptsort.ErrAllocationFailed.
type AllocationError struct {
	Size int
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("cannot allocate buffer of %d byte(s)", e.Size)
}

func (e *AllocationError) Unwrap() error {
	return scriptsort.ErrAllocationFailed
}

// Buffer is a growable byte buffer owned by the assembler for the lifetime
// of one invocation. Its capacity is always a power-of-two multiple of the
// initial size: EnsureCapacity doubles until the requested size fits.
type Buffer struct {
	data []byte
}

// NewBuffer creates a buffer with the given initial capacity.
// Returns an AllocationError for non-positive sizes.
func NewBuffer(initial int) (*Buffer, error) {
	if initial <= 0 {
		return nil, &AllocationError{Size: initial}
	}
	return &Buffer{data: make([]byte, 0, initial)}, nil
}

// Len returns the number of bytes appended so far.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Cap returns the current capacity.
func (b *Buffer) Cap() int {
	return cap(b.data)
}

// Bytes returns the appended bytes. The slice is valid until the next append.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// EnsureCapacity grows the buffer until its capacity is at least needed,
// doubling from the current capacity. Appended bytes are preserved.
// Returns an AllocationError when the doubling would overflow int.
func (b *Buffer) EnsureCapacity(needed int) error {
	if needed <= cap(b.data) {
		return nil
	}

	newCap := cap(b.data)
	for newCap < needed {
		if newCap > math.MaxInt/2 {
			return &AllocationError{Size: needed}
		}
		newCap *= 2
	}

	grown := make([]byte, len(b.data), newCap)
	copy(grown, b.data)
	b.data = grown
	return nil
}

// Append adds p to the buffer, growing it as needed.
func (b *Buffer) Append(p []byte) error {
	if err := b.EnsureCapacity(len(b.data) + len(p)); err != nil {
		return err
	}
	b.data = append(b.data, p...)
	return nil
}

// AppendString adds s to the buffer, growing it as needed.
func (b *Buffer) AppendString(s string) error {
	if err := b.EnsureCapacity(len(b.data) + len(s)); err != nil {
		return err
	}
	b.data = append(b.data, s...)
	return nil
}

// AppendByte adds a single byte to the buffer, growing it as needed.
func (b *Buffer) AppendByte(c byte) error {
	if err := b.EnsureCapacity(len(b.data) + 1); err != nil {
		return err
	}
	b.data = append(b.data, c)
	return nil
}
