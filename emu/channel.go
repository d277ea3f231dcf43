// Package emu provides a software eDMA channel. It implements the full
// channel contract and really moves the programmed bytes, so the copy
// engine can be exercised end to end without hardware.
package emu

import (
	"sync"
	"unsafe"

	"github.com/hwblocks/edma/dma"
)

// A Channel is an emulated DMA channel.
//
// By default Start performs the whole transfer synchronously and latches
// the completion flag, which matches how fast a real engine looks to
// polling code. DeferCompletion switches to a two-phase mode where Start
// only marks the channel active and a later Finish performs the copy —
// useful for observing the active window.
type Channel struct {
	mu sync.Mutex

	enabled  bool
	active   bool
	complete bool
	errFlag  bool
	errWord  uint32

	injected *uint32
	deferred bool

	src        dma.Region
	dst        dma.Region
	elemSize   uintptr
	minorElems int
	iterations int

	intrCompletion      bool
	intrHalf            bool
	disableOnCompletion bool
	trigger             *dma.TriggerSource

	starts int
}

var _ dma.Channel = (*Channel)(nil)

// NewChannel creates a disabled, idle channel.
func NewChannel() *Channel {
	return &Channel{}
}

// DeferCompletion switches the channel into two-phase mode.
func (c *Channel) DeferCompletion() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deferred = true
}

// InjectError makes the next Start raise the error flag with the given raw
// status word instead of copying.
func (c *Channel) InjectError(status uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.injected = &status
}

func (c *Channel) SetInterruptOnCompletion(enable bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.intrCompletion = enable
}

func (c *Channel) SetInterruptOnHalf(enable bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.intrHalf = enable
}

func (c *Channel) SetTriggerFromHardware(src *dma.TriggerSource) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.trigger = src
}

func (c *Channel) SetDisableOnCompletion(enable bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.disableOnCompletion = enable
}

func (c *Channel) IsEnabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enabled
}

func (c *Channel) IsActive() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

func (c *Channel) IsComplete() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.complete
}

func (c *Channel) IsError() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errFlag
}

func (c *Channel) SetSourceTransfer(r dma.Region) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.src = r
}

func (c *Channel) SetDestinationTransfer(r dma.Region) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dst = r
}

func (c *Channel) SetMinorLoopElements(elemSize uintptr, count int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.elemSize = elemSize
	c.minorElems = count
}

func (c *Channel) SetTransferIterations(count int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.iterations = count
}

func (c *Channel) SetEnable(enable bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enabled = enable
	if !enable {
		c.active = false
	}
}

// Start fires the transfer. A start on a disabled channel is ignored, as
// on hardware.
func (c *Channel) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.enabled {
		return
	}

	c.starts++

	if c.injected != nil {
		c.errFlag = true
		c.errWord = *c.injected
		c.injected = nil
		return
	}

	if c.deferred {
		c.active = true
		return
	}

	c.run()
}

// Finish performs the copy for a transfer started in deferred mode and
// latches the completion flag.
func (c *Channel) Finish() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.active {
		return
	}

	c.run()
}

// run moves minorElems*iterations elements between the programmed regions,
// bounded by both. Caller holds the lock.
func (c *Channel) run() {
	elems := c.minorElems * c.iterations
	elems = min(elems, c.src.Elems, c.dst.Elems)

	if elems > 0 && c.elemSize > 0 {
		bytes := uintptr(elems) * c.elemSize
		srcBytes := unsafe.Slice((*byte)(c.src.Ptr), bytes)
		dstBytes := unsafe.Slice((*byte)(c.dst.Ptr), bytes)
		copy(dstBytes, srcBytes)
	}

	c.active = false
	c.complete = true
	if c.disableOnCompletion {
		c.enabled = false
	}
}

func (c *Channel) ErrorStatus() uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errWord
}

func (c *Channel) ClearError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errFlag = false
	c.errWord = 0
}

func (c *Channel) ClearComplete() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.complete = false
}

// Starts returns how many times the channel fired. Test helper.
func (c *Channel) Starts() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.starts
}
