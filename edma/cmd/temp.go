package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/hwblocks/edma/tempmon"
)

// A plausible ANA1 calibration word: room count 1580, hot count 1360,
// hot temperature 85 °C.
const demoCalibration = 1580<<20 | 1360<<8 | 85

var tempCmd = &cobra.Command{
	Use:   "temp",
	Short: "Read the emulated temperature sensor.",
	Run: func(cmd *cobra.Command, args []string) {
		count, _ := cmd.Flags().GetUint32("count")

		regs := &tempmon.Registers{}
		regs.Calibration.Store(demoCalibration)

		monitor := tempmon.New(regs).Init()

		// Emulate the sensor finishing a conversion with the given count.
		regs.Sense0.SetBits(count << 8)
		regs.Sense0.SetBits(1 << 2)

		milliC, err := monitor.MeasureTemp()
		if err != nil {
			log.Fatalf("measurement failed: %v", err)
		}

		fmt.Printf("%d.%03d °C\n", milliC/1000, milliC%1000)
	},
}

func init() {
	tempCmd.Flags().Uint32("count", 1500, "raw sensor count to emulate")
	rootCmd.AddCommand(tempCmd)
}
