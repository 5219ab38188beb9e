package rbstat

import (
	"math/bits"
)

// NewBitArray with at least size bits, all down.
func NewBitArray(size int) BitArray {
	return BitArray{bits: make([]uint, (size+bits.UintSize-1)/bits.UintSize)}
}

// BitArray is a fixed size bit set. The zero value has length 0.
type BitArray struct {
	bits []uint
}

func (u BitArray) Len() int {
	return len(u.bits) * bits.UintSize
}

func (u BitArray) Get(i int) bool {
	return (u.bits[i/bits.UintSize]>>(i%bits.UintSize))&1 == 1
}

func (u BitArray) Up(i int) {
	u.bits[i/bits.UintSize] |= 1 << (i % bits.UintSize)
}

func (u BitArray) Down(i int) {
	u.bits[i/bits.UintSize] &^= 1 << (i % bits.UintSize)
}

// Swap bit i to b, returning the previous value.
func (u BitArray) Swap(i int, b bool) bool {
	old := u.Get(i)
	if b {
		u.Up(i)
	} else {
		u.Down(i)
	}
	return old
}

// Grow returns a BitArray holding at least size bits, reusing u when it's large enough. Existing bits are kept.
func (u BitArray) Grow(size int) BitArray {
	if size <= u.Len() {
		return u
	}
	a := NewBitArray(size)
	copy(a.bits, u.bits)
	return a
}
