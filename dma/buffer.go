package dma

import (
	"errors"
	"unsafe"
)

// An Element is the fixed-size atomic unit moved by one DMA operation step.
type Element interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// A Source can supply a readable region to a DMA transfer.
//
// PrepareSource runs after the region is programmed and before the channel
// is armed; on real hardware this is where cache clean or write barriers
// belong. CompleteSource runs when the controller hands the buffer back
// after a completed transfer.
type Source[E Element] interface {
	SourceRegion() Region
	PrepareSource()
	CompleteSource()
}

// A Destination is the writable counterpart of Source. CompleteDestination
// is where cache invalidation belongs on real hardware.
type Destination[E Element] interface {
	DestinationRegion() Region
	PrepareDestination()
	CompleteDestination()
}

// ErrCircularCapacity reports a circular buffer capacity that is zero or
// not a power of two.
var ErrCircularCapacity = errors.New("dma: circular buffer capacity must be a power of two")

// A Linear buffer is a slice-backed transfer buffer. The transfer length
// can be set below the capacity to bound how many elements the next
// transfer reads or writes.
type Linear[E Element] struct {
	elems       []E
	transferLen int
}

// NewLinear creates a linear buffer of the given capacity. The transfer
// length starts at the full capacity.
func NewLinear[E Element](capacity int) *Linear[E] {
	return &Linear[E]{
		elems:       make([]E, capacity),
		transferLen: capacity,
	}
}

// Elements exposes the backing storage. Callers must not touch it while a
// transfer using this buffer is outstanding.
func (l *Linear[E]) Elements() []E {
	return l.elems
}

// SetTransferLen bounds the next transfer. Lengths beyond the capacity are
// clamped.
func (l *Linear[E]) SetTransferLen(n int) {
	if n > len(l.elems) {
		n = len(l.elems)
	}
	if n < 0 {
		n = 0
	}
	l.transferLen = n
}

// TransferLen returns the current transfer bound.
func (l *Linear[E]) TransferLen() int {
	return l.transferLen
}

func (l *Linear[E]) region() Region {
	return Region{
		Ptr:   unsafe.Pointer(unsafe.SliceData(l.elems)),
		Elems: l.transferLen,
	}
}

func (l *Linear[E]) SourceRegion() Region      { return l.region() }
func (l *Linear[E]) DestinationRegion() Region { return l.region() }

// The cache-maintenance hooks are no-ops on a cache-coherent host.
func (l *Linear[E]) PrepareSource()       {}
func (l *Linear[E]) CompleteSource()      {}
func (l *Linear[E]) PrepareDestination()  {}
func (l *Linear[E]) CompleteDestination() {}

// A Circular buffer is a power-of-two ring. As a source it yields its
// contiguous readable run; as a destination, its contiguous writable run.
// The matching completion hook consumes or publishes the yielded run.
//
// The hooks carry no element count, so a ring paired with a shorter peer
// advances by its full yielded run even though the engine moved fewer
// elements. Pair rings with peers at least as long as the run they yield.
type Circular[E Element] struct {
	elems []E
	read  int
	write int
	size  int

	// Element count of the region handed out for the transfer in flight.
	pending int
}

// NewCircular creates a circular buffer. The capacity must be a non-zero
// power of two.
func NewCircular[E Element](capacity int) (*Circular[E], error) {
	if capacity == 0 || capacity&(capacity-1) != 0 {
		return nil, ErrCircularCapacity
	}
	return &Circular[E]{elems: make([]E, capacity)}, nil
}

// Len returns the number of readable elements.
func (c *Circular[E]) Len() int {
	return c.size
}

// Cap returns the buffer capacity.
func (c *Circular[E]) Cap() int {
	return len(c.elems)
}

// Insert appends one element. It reports false when the ring is full.
func (c *Circular[E]) Insert(e E) bool {
	if c.size == len(c.elems) {
		return false
	}
	c.elems[c.write] = e
	c.write = (c.write + 1) & (len(c.elems) - 1)
	c.size++
	return true
}

// Remove pops the oldest element. It reports false when the ring is empty.
func (c *Circular[E]) Remove() (E, bool) {
	var zero E
	if c.size == 0 {
		return zero, false
	}
	e := c.elems[c.read]
	c.read = (c.read + 1) & (len(c.elems) - 1)
	c.size--
	return e, true
}

// SourceRegion yields the contiguous readable run starting at the read
// index. A run that wraps the ring is bounded at the wrap point.
func (c *Circular[E]) SourceRegion() Region {
	n := c.size
	if wrap := len(c.elems) - c.read; n > wrap {
		n = wrap
	}
	c.pending = n
	return Region{
		Ptr:   unsafe.Pointer(&c.elems[c.read]),
		Elems: n,
	}
}

// DestinationRegion yields the contiguous writable run starting at the
// write index, bounded at the wrap point.
func (c *Circular[E]) DestinationRegion() Region {
	n := len(c.elems) - c.size
	if wrap := len(c.elems) - c.write; n > wrap {
		n = wrap
	}
	c.pending = n
	return Region{
		Ptr:   unsafe.Pointer(&c.elems[c.write]),
		Elems: n,
	}
}

func (c *Circular[E]) PrepareSource()      {}
func (c *Circular[E]) PrepareDestination() {}

// CompleteSource consumes the elements the transfer read out of the ring.
func (c *Circular[E]) CompleteSource() {
	c.read = (c.read + c.pending) & (len(c.elems) - 1)
	c.size -= c.pending
	c.pending = 0
}

// CompleteDestination publishes the elements the transfer wrote into the
// ring.
func (c *Circular[E]) CompleteDestination() {
	c.write = (c.write + c.pending) & (len(c.elems) - 1)
	c.size += c.pending
	c.pending = 0
}
