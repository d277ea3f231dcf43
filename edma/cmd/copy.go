package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/hwblocks/edma/dma"
	"github.com/hwblocks/edma/emu"
	"github.com/hwblocks/edma/recording"
	"github.com/hwblocks/edma/trace"
)

var copyCmd = &cobra.Command{
	Use:   "copy",
	Short: "Run one memory-to-memory transfer over the emulated channel.",
	Run: func(cmd *cobra.Command, args []string) {
		srcLen, _ := cmd.Flags().GetInt("source-elements")
		dstLen, _ := cmd.Flags().GetInt("dest-elements")
		deferred, _ := cmd.Flags().GetBool("defer")
		record, _ := cmd.Flags().GetBool("record")

		channel := emu.NewChannel()
		if deferred {
			channel.DeferCompletion()
		}

		memcpy := dma.NewMemcpy[uint32, *dma.Linear[uint32], *dma.Linear[uint32]](
			channel).WithName("edma.Copy")

		if record {
			dbPath := envOr("EDMA_DB_PATH", "")
			backend := recording.New(dbPath)
			memcpy.AttachTracer(trace.NewDBTracer(backend))
		}

		source := dma.NewLinear[uint32](srcLen)
		for i := range source.Elements() {
			source.Elements()[i] = uint32(i)
		}
		destination := dma.NewLinear[uint32](dstLen)

		err := memcpy.Transfer(source, destination)
		if err != nil {
			log.Fatalf("transfer rejected: %v", err)
		}

		if deferred {
			fmt.Printf("transfer active: %v\n", memcpy.IsActive())
			channel.Finish()
		}

		for !memcpy.IsComplete() {
		}

		_, _, ok := memcpy.Complete()
		if !ok {
			log.Fatal("no transfer was outstanding")
		}

		moved := min(srcLen, dstLen)
		if moved == 0 {
			fmt.Println("moved 0 elements")
			return
		}
		fmt.Printf("moved %d of %d source elements, last value %d\n",
			moved, srcLen, destination.Elements()[moved-1])
	},
}

func init() {
	copyCmd.Flags().Int("source-elements", 14, "source buffer length")
	copyCmd.Flags().Int("dest-elements", 12, "destination buffer length")
	copyCmd.Flags().Bool("defer", false,
		"hold the transfer in the active state before finishing it")
	copyCmd.Flags().Bool("record", false,
		"record the transfer trace into a SQLite database")
	rootCmd.AddCommand(copyCmd)
}
