package dma

import (
	"errors"
	"fmt"
	"strings"
)

// ErrScheduledTransfer reports that a transfer was requested while an
// earlier one is still scheduled or active on the channel. The caller keeps
// both buffers and may retry after finishing the outstanding transfer.
var ErrScheduledTransfer = errors.New("dma: transfer already scheduled")

// An ErrorStatus is the structured decode of a channel's raw error-status
// word, captured when the hardware flags an error right after start.
type ErrorStatus uint32

// Field decoders for the error-status word. The bit layout follows the eDMA
// ES register.
func (es ErrorStatus) Valid() bool              { return es&(1<<31) != 0 }
func (es ErrorStatus) TransferCancelled() bool  { return es&(1<<16) != 0 }
func (es ErrorStatus) GroupPriority() bool      { return es&(1<<15) != 0 }
func (es ErrorStatus) ChannelPriority() bool    { return es&(1<<14) != 0 }
func (es ErrorStatus) ErrorChannel() uint8      { return uint8((es >> 8) & 0x1F) }
func (es ErrorStatus) SourceAddress() bool      { return es&(1<<7) != 0 }
func (es ErrorStatus) SourceOffset() bool       { return es&(1<<6) != 0 }
func (es ErrorStatus) DestinationAddress() bool { return es&(1<<5) != 0 }
func (es ErrorStatus) DestinationOffset() bool  { return es&(1<<4) != 0 }
func (es ErrorStatus) MinorLoopCount() bool     { return es&(1<<3) != 0 }
func (es ErrorStatus) ScatterGather() bool      { return es&(1<<2) != 0 }
func (es ErrorStatus) SourceBus() bool          { return es&(1<<1) != 0 }
func (es ErrorStatus) DestinationBus() bool     { return es&1 != 0 }

func (es ErrorStatus) String() string {
	if !es.Valid() {
		return "no error"
	}

	flags := []struct {
		set  bool
		name string
	}{
		{es.TransferCancelled(), "transfer-cancelled"},
		{es.GroupPriority(), "group-priority"},
		{es.ChannelPriority(), "channel-priority"},
		{es.SourceAddress(), "source-address"},
		{es.SourceOffset(), "source-offset"},
		{es.DestinationAddress(), "destination-address"},
		{es.DestinationOffset(), "destination-offset"},
		{es.MinorLoopCount(), "minor-loop-count"},
		{es.ScatterGather(), "scatter-gather"},
		{es.SourceBus(), "source-bus"},
		{es.DestinationBus(), "destination-bus"},
	}

	var set []string
	for _, f := range flags {
		if f.set {
			set = append(set, f.name)
		}
	}

	return fmt.Sprintf("channel %d: %s",
		es.ErrorChannel(), strings.Join(set, ", "))
}

// A SetupError reports that the hardware flagged an error immediately after
// the channel was armed and started. No transfer is outstanding afterwards;
// the caller keeps both buffers and may inspect Status before retrying.
type SetupError struct {
	Status ErrorStatus
}

func (e *SetupError) Error() string {
	return "dma: transfer setup failed: " + e.Status.String()
}
