package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/hwblocks/edma/dma"
	"github.com/hwblocks/edma/emu"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run repeated transfer/complete cycles and report throughput.",
	Run: func(cmd *cobra.Command, args []string) {
		iterations, _ := cmd.Flags().GetInt("iterations")
		elements, _ := cmd.Flags().GetInt("elements")

		channel := emu.NewChannel()
		memcpy := dma.NewMemcpy[uint64, *dma.Linear[uint64], *dma.Linear[uint64]](
			channel).WithName("edma.Bench")

		source := dma.NewLinear[uint64](elements)
		destination := dma.NewLinear[uint64](elements)
		for i := range source.Elements() {
			source.Elements()[i] = uint64(i)
		}

		start := time.Now()
		for i := 0; i < iterations; i++ {
			err := memcpy.Transfer(source, destination)
			if err != nil {
				log.Fatalf("iteration %d rejected: %v", i, err)
			}

			for !memcpy.IsComplete() {
			}

			_, _, ok := memcpy.Complete()
			if !ok {
				log.Fatalf("iteration %d lost its buffers", i)
			}
		}
		elapsed := time.Since(start)

		bytes := int64(iterations) * int64(elements) * 8
		fmt.Printf("%d transfers of %d elements in %v (%.1f MB/s)\n",
			iterations, elements, elapsed,
			float64(bytes)/elapsed.Seconds()/1e6)
	},
}

func init() {
	benchCmd.Flags().Int("iterations", 1000, "number of transfer cycles")
	benchCmd.Flags().Int("elements", 4096, "elements per transfer")
	rootCmd.AddCommand(benchCmd)
}
