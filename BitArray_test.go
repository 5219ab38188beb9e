package rbstat

import (
	"math/bits"
	"testing"
)

func TestBitArray(t *testing.T) {
	a := NewBitArray(bits.UintSize + 1)
	if a.Len() != 2*bits.UintSize {
		t.Fatalf("len is %d, want %d", a.Len(), 2*bits.UintSize)
	}
	for _, i := range []int{0, 3, bits.UintSize, bits.UintSize + 1} {
		a.Up(i)
		if !a.Get(i) {
			t.Errorf("bit %d is down after Up", i)
		}
	}
	if a.Get(1) {
		t.Errorf("bit 1 is up")
	}
	a.Down(3)
	if a.Get(3) {
		t.Errorf("bit 3 is up after Down")
	}
	if old := a.Swap(0, false); !old || a.Get(0) {
		t.Errorf("swap of bit 0 returned %v", old)
	}
	if old := a.Swap(5, true); old || !a.Get(5) {
		t.Errorf("swap of bit 5 returned %v", old)
	}
	b := a.Grow(5 * bits.UintSize)
	if b.Len() != 5*bits.UintSize || !b.Get(bits.UintSize) || !b.Get(5) {
		t.Errorf("grow lost bits")
	}
	if c := b.Grow(3); c.Len() != b.Len() {
		t.Errorf("grow shrank the array")
	}
}
