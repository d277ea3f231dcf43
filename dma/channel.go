// Package dma provides a typed, ownership-tracked memory-to-memory copy
// engine on top of a single hardware DMA channel.
package dma

import "unsafe"

//go:generate mockgen -destination=mock_channel.go -package=dma -self_package=github.com/hwblocks/edma/dma -write_package_comment=false github.com/hwblocks/edma/dma Channel

// A TriggerSource identifies a hardware request line that can pace a
// channel. Memory-to-memory transfers do not use one.
type TriggerSource uint32

// A Region is a raw view of caller memory that is handed to the DMA engine.
//
// Once a region is programmed into a channel, the memory it points to must
// stay valid and must not be accessed through any other path until the
// transfer finishes or is cancelled. The engine moves data outside the reach
// of the type system; nothing checks this at runtime.
type Region struct {
	Ptr   unsafe.Pointer
	Elems int
}

// Channel is the register-level service owning one hardware DMA channel.
// A Memcpy consumes the channel exclusively; nothing else may touch it while
// the controller holds it.
type Channel interface {
	// Configuration, normally set once at construction.
	SetInterruptOnCompletion(enable bool)
	SetInterruptOnHalf(enable bool)
	// SetTriggerFromHardware selects the request line pacing the channel.
	// nil selects always-on (software) pacing.
	SetTriggerFromHardware(src *TriggerSource)
	SetDisableOnCompletion(enable bool)

	// Status queries.
	IsEnabled() bool
	IsActive() bool
	IsComplete() bool
	IsError() bool

	// Transfer programming. The regions obey the Region contract above.
	SetSourceTransfer(r Region)
	SetDestinationTransfer(r Region)
	// SetMinorLoopElements programs the per-iteration element count.
	// elemSize is the size of one element in bytes.
	SetMinorLoopElements(elemSize uintptr, count int)
	SetTransferIterations(count int)

	// Arm and fire.
	SetEnable(enable bool)
	Start()

	// Error and completion acknowledgment.
	ErrorStatus() uint32
	ClearError()
	ClearComplete()
}
