// Package mmio provides 32-bit register cells for emulated register files.
// On real hardware these accesses would be volatile loads and stores; on a
// host they are atomic so that a register file can be shared between the
// code under test and the test driving it.
package mmio

import "sync/atomic"

// A Reg32 is a single 32-bit register.
type Reg32 struct {
	v atomic.Uint32
}

// Load reads the register.
func (r *Reg32) Load() uint32 {
	return r.v.Load()
}

// Store writes the register.
func (r *Reg32) Store(val uint32) {
	r.v.Store(val)
}

// SetBits sets every bit in mask.
func (r *Reg32) SetBits(mask uint32) {
	for {
		old := r.v.Load()
		if r.v.CompareAndSwap(old, old|mask) {
			return
		}
	}
}

// ClearBits clears every bit in mask.
func (r *Reg32) ClearBits(mask uint32) {
	for {
		old := r.v.Load()
		if r.v.CompareAndSwap(old, old&^mask) {
			return
		}
	}
}

// ReplaceBits clears the masked field and stores val in its place. The
// caller shifts val to the field position.
func (r *Reg32) ReplaceBits(mask, val uint32) {
	for {
		old := r.v.Load()
		if r.v.CompareAndSwap(old, (old&^mask)|(val&mask)) {
			return
		}
	}
}

// Bits returns the masked field without shifting.
func (r *Reg32) Bits(mask uint32) uint32 {
	return r.v.Load() & mask
}
