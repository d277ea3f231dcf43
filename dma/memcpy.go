package dma

import (
	"sync/atomic"
	"unsafe"

	"github.com/hwblocks/edma/trace"
)

// A Memcpy performs memory-to-memory DMA transfers over one exclusively
// owned hardware channel.
//
// Transfer returns immediately; completion is observed by polling
// IsComplete. The controller never enables interrupts — it operates purely
// in polling mode.
//
// While a transfer is outstanding the controller owns both buffers. They
// come back through Complete (success path, completion hooks run) or Cancel
// (abort path, destination contents undefined). This ownership window is
// what keeps the CPU and the in-flight engine from touching the same memory.
type Memcpy[E Element, S Source[E], D Destination[E]] struct {
	name    string
	channel Channel

	// buffers holds the owned pair while a transfer is outstanding. The
	// slot is atomic so that Status can be polled from the monitoring
	// goroutines while the owning goroutine transfers and acknowledges.
	buffers atomic.Pointer[bufferPair[S, D]]

	// armSeq is the publication point between buffer preparation and the
	// arm/start sequence. The atomic add is a release fence: every store
	// made while preparing the transfer is visible before the channel is
	// told to proceed.
	armSeq atomic.Uint32

	tracers       []trace.Tracer
	currentTaskID string

	transfers     atomic.Uint64
	completes     atomic.Uint64
	cancels       atomic.Uint64
	setupFailures atomic.Uint64
}

type bufferPair[S, D any] struct {
	source      S
	destination D
}

// NewMemcpy builds a controller around a channel. The channel's interrupt
// generation, hardware trigger, and auto-disable-on-completion are all
// switched off; the controller polls for everything.
func NewMemcpy[E Element, S Source[E], D Destination[E]](
	channel Channel,
) *Memcpy[E, S, D] {
	channel.SetInterruptOnCompletion(false)
	channel.SetInterruptOnHalf(false)
	channel.SetTriggerFromHardware(nil)
	channel.SetDisableOnCompletion(false)

	return &Memcpy[E, S, D]{
		name:    "Memcpy." + trace.GetIDGenerator().Generate(),
		channel: channel,
	}
}

// WithName gives the controller a name for tracing and monitoring.
func (m *Memcpy[E, S, D]) WithName(name string) *Memcpy[E, S, D] {
	m.name = name
	return m
}

// Name returns the controller name.
func (m *Memcpy[E, S, D]) Name() string {
	return m.name
}

// Tracers returns the attached tracers.
func (m *Memcpy[E, S, D]) Tracers() []trace.Tracer {
	return m.tracers
}

// AttachTracer subscribes a tracer to this controller's transfer lifecycle.
func (m *Memcpy[E, S, D]) AttachTracer(t trace.Tracer) {
	m.tracers = append(m.tracers, t)
}

// Take disables the channel and returns it, destroying the controller.
//
// If a transfer is still outstanding, Take cancels it and drops the owned
// buffer pair. Call Cancel first to get the buffers back.
func (m *Memcpy[E, S, D]) Take() Channel {
	if m.buffers.Swap(nil) != nil {
		m.channel.SetEnable(false)
		m.endTask("take")
	}
	return m.channel
}

// Transfer moves data from source to destination.
//
// The number of elements moved is the minimum of the two regions' element
// counts; a shorter region silently bounds the copy. On success the
// controller owns both buffers and the call returns nil immediately — poll
// IsComplete and then call Complete. On failure nothing is outstanding and
// the caller keeps both buffers: ErrScheduledTransfer when an earlier
// transfer has not been acknowledged yet, or a *SetupError when the
// hardware flags an error right after start.
func (m *Memcpy[E, S, D]) Transfer(source S, destination D) error {
	if m.channel.IsEnabled() {
		return ErrScheduledTransfer
	}

	src := source.SourceRegion()
	dst := destination.DestinationRegion()

	m.channel.SetSourceTransfer(src)
	m.channel.SetDestinationTransfer(dst)

	source.PrepareSource()
	destination.PrepareDestination()

	length := min(src.Elems, dst.Elems)

	var elem E
	m.channel.SetMinorLoopElements(unsafe.Sizeof(elem), length)
	m.channel.SetTransferIterations(1)

	m.armSeq.Add(1) // release: preparation is published before the start

	m.channel.SetEnable(true)
	m.channel.Start()

	if m.channel.IsError() {
		es := ErrorStatus(m.channel.ErrorStatus())
		m.channel.ClearError()
		m.setupFailures.Add(1)
		return &SetupError{Status: es}
	}

	m.buffers.Store(&bufferPair[S, D]{source, destination})
	m.transfers.Add(1)
	m.startTask(length)

	return nil
}

// IsComplete reports whether the channel's completion flag is set.
func (m *Memcpy[E, S, D]) IsComplete() bool {
	return m.channel.IsComplete()
}

// IsActive reports whether the channel has an active transfer. The flag can
// be false even though a transfer was submitted: the transfer may have
// finished already, never been scheduled, or been preempted by other use of
// the hardware channel.
func (m *Memcpy[E, S, D]) IsActive() bool {
	return m.channel.IsActive()
}

// Complete acknowledges a finished transfer and hands the buffer pair back,
// running each buffer's completion hook first.
//
// Completion must be acknowledged before another transfer is admissible.
// Calling Complete before IsComplete reports true cancels the transfer
// instead of waiting (see Cancel). The bool result is false when no
// transfer was outstanding.
func (m *Memcpy[E, S, D]) Complete() (S, D, bool) {
	if !m.IsComplete() {
		return m.Cancel()
	}

	m.channel.ClearComplete()
	m.channel.SetEnable(false)

	pair := m.buffers.Swap(nil)
	if pair == nil {
		var s S
		var d D
		return s, d, false
	}

	pair.source.CompleteSource()
	pair.destination.CompleteDestination()

	m.completes.Add(1)
	m.endTask("complete")

	return pair.source, pair.destination, true
}

// Cancel disables the channel and hands back whatever buffer pair is owned.
// The destination contents are undefined after a cancel — the hardware may
// have partially written them. Cancel is idempotent; with no outstanding
// transfer it is a no-op reporting false.
func (m *Memcpy[E, S, D]) Cancel() (S, D, bool) {
	m.channel.SetEnable(false)

	pair := m.buffers.Swap(nil)
	if pair == nil {
		var s S
		var d D
		return s, d, false
	}

	m.cancels.Add(1)
	m.endTask("cancel")

	return pair.source, pair.destination, true
}

// Status snapshots the controller state for monitoring.
func (m *Memcpy[E, S, D]) Status() ControllerStatus {
	return ControllerStatus{
		Active:        m.channel.IsActive(),
		Complete:      m.channel.IsComplete(),
		BuffersOwned:  m.buffers.Load() != nil,
		Transfers:     m.transfers.Load(),
		Completes:     m.completes.Load(),
		Cancels:       m.cancels.Load(),
		SetupFailures: m.setupFailures.Load(),
	}
}

// A ControllerStatus is a point-in-time view of one controller.
type ControllerStatus struct {
	Active        bool   `json:"active"`
	Complete      bool   `json:"complete"`
	BuffersOwned  bool   `json:"buffers_owned"`
	Transfers     uint64 `json:"transfers"`
	Completes     uint64 `json:"completes"`
	Cancels       uint64 `json:"cancels"`
	SetupFailures uint64 `json:"setup_failures"`
}

func (m *Memcpy[E, S, D]) startTask(length int) {
	if len(m.tracers) == 0 {
		return
	}

	m.currentTaskID = trace.GetIDGenerator().Generate()
	trace.StartTask(m.currentTaskID, "", m, "transfer", "memcpy", length)
}

func (m *Memcpy[E, S, D]) endTask(how string) {
	if len(m.tracers) == 0 || m.currentTaskID == "" {
		return
	}

	trace.EndTask(m.currentTaskID, m, how)
	m.currentTaskID = ""
}
