package dma

import (
	"unsafe"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("Memcpy", func() {
	var (
		mockCtrl    *gomock.Controller
		channel     *MockChannel
		memcpy      *Memcpy[uint32, *Linear[uint32], *Linear[uint32]]
		source      *Linear[uint32]
		destination *Linear[uint32]
	)

	const elemSize = unsafe.Sizeof(uint32(0))

	// expectTransfer sets up the channel expectations for one admitted
	// transfer programming length elements.
	expectTransfer := func(length int) {
		channel.EXPECT().IsEnabled().Return(false)
		channel.EXPECT().SetSourceTransfer(source.SourceRegion())
		channel.EXPECT().SetDestinationTransfer(destination.DestinationRegion())
		channel.EXPECT().SetMinorLoopElements(elemSize, length)
		channel.EXPECT().SetTransferIterations(1)
		channel.EXPECT().SetEnable(true)
		channel.EXPECT().Start()
		channel.EXPECT().IsError().Return(false)
	}

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		channel = NewMockChannel(mockCtrl)

		channel.EXPECT().SetInterruptOnCompletion(false)
		channel.EXPECT().SetInterruptOnHalf(false)
		channel.EXPECT().SetTriggerFromHardware(nil)
		channel.EXPECT().SetDisableOnCompletion(false)

		memcpy = NewMemcpy[uint32, *Linear[uint32], *Linear[uint32]](channel)

		source = NewLinear[uint32](14)
		destination = NewLinear[uint32](12)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should reject a transfer while one is outstanding", func() {
		channel.EXPECT().IsEnabled().Return(true)

		err := memcpy.Transfer(source, destination)

		Expect(err).To(MatchError(ErrScheduledTransfer))
		Expect(memcpy.buffers.Load()).To(BeNil())
	})

	It("should arm, start, and take ownership of the buffers", func() {
		expectTransfer(12)

		err := memcpy.Transfer(source, destination)

		Expect(err).ToNot(HaveOccurred())
		Expect(memcpy.buffers.Load()).ToNot(BeNil())
		Expect(memcpy.buffers.Load().source).To(BeIdenticalTo(source))
		Expect(memcpy.buffers.Load().destination).To(BeIdenticalTo(destination))
	})

	It("should bound the transfer by the shorter region", func() {
		// 14 source elements against 12 destination elements moves
		// exactly 12, with no error.
		source.SetTransferLen(14)
		destination.SetTransferLen(12)

		expectTransfer(12)

		err := memcpy.Transfer(source, destination)

		Expect(err).ToNot(HaveOccurred())
	})

	It("should report a setup failure and keep nothing", func() {
		channel.EXPECT().IsEnabled().Return(false)
		channel.EXPECT().SetSourceTransfer(source.SourceRegion())
		channel.EXPECT().SetDestinationTransfer(destination.DestinationRegion())
		channel.EXPECT().SetMinorLoopElements(elemSize, 12)
		channel.EXPECT().SetTransferIterations(1)
		channel.EXPECT().SetEnable(true)
		channel.EXPECT().Start()
		channel.EXPECT().IsError().Return(true)
		channel.EXPECT().ErrorStatus().Return(uint32(1<<31 | 1))
		channel.EXPECT().ClearError()

		err := memcpy.Transfer(source, destination)

		var setupErr *SetupError
		Expect(err).To(BeAssignableToTypeOf(setupErr))
		setupErr = err.(*SetupError)
		Expect(setupErr.Status.Valid()).To(BeTrue())
		Expect(setupErr.Status.DestinationBus()).To(BeTrue())
		Expect(memcpy.buffers.Load()).To(BeNil())
	})

	It("should treat Complete before completion as Cancel", func() {
		expectTransfer(12)
		Expect(memcpy.Transfer(source, destination)).To(Succeed())

		channel.EXPECT().IsComplete().Return(false)
		channel.EXPECT().SetEnable(false)

		s, d, ok := memcpy.Complete()

		Expect(ok).To(BeTrue())
		Expect(s).To(BeIdenticalTo(source))
		Expect(d).To(BeIdenticalTo(destination))
		Expect(memcpy.buffers.Load()).To(BeNil())
	})

	It("should acknowledge completion and hand the buffers back", func() {
		expectTransfer(12)
		Expect(memcpy.Transfer(source, destination)).To(Succeed())

		channel.EXPECT().IsComplete().Return(true)
		channel.EXPECT().ClearComplete()
		channel.EXPECT().SetEnable(false)

		s, d, ok := memcpy.Complete()

		Expect(ok).To(BeTrue())
		Expect(s).To(BeIdenticalTo(source))
		Expect(d).To(BeIdenticalTo(destination))
	})

	It("should admit a new transfer after a completed one", func() {
		expectTransfer(12)
		Expect(memcpy.Transfer(source, destination)).To(Succeed())

		channel.EXPECT().IsComplete().Return(true)
		channel.EXPECT().ClearComplete()
		channel.EXPECT().SetEnable(false)
		_, _, ok := memcpy.Complete()
		Expect(ok).To(BeTrue())

		expectTransfer(12)

		Expect(memcpy.Transfer(source, destination)).To(Succeed())
	})

	It("should make Cancel a repeatable no-op with nothing outstanding", func() {
		channel.EXPECT().SetEnable(false).Times(3)

		for i := 0; i < 3; i++ {
			_, _, ok := memcpy.Cancel()
			Expect(ok).To(BeFalse())
		}
	})

	It("should return the channel from Take when idle", func() {
		ch := memcpy.Take()

		Expect(ch).To(BeIdenticalTo(channel))
	})

	It("should cancel an outstanding transfer on Take", func() {
		expectTransfer(12)
		Expect(memcpy.Transfer(source, destination)).To(Succeed())

		channel.EXPECT().SetEnable(false)

		ch := memcpy.Take()

		Expect(ch).To(BeIdenticalTo(channel))
		Expect(memcpy.buffers.Load()).To(BeNil())
	})
})
