package cmd

import (
	"log"
	"strconv"
	"time"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/hwblocks/edma/dma"
	"github.com/hwblocks/edma/emu"
	"github.com/hwblocks/edma/monitoring"
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Serve live controller state over HTTP.",
	Long: "`monitor` starts a controller that keeps running transfers in " +
		"the background and serves its state over HTTP.",
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetInt("port")
		open, _ := cmd.Flags().GetBool("open")

		if port == 0 {
			port, _ = strconv.Atoi(envOr("EDMA_MONITOR_PORT", "0"))
		}

		channel := emu.NewChannel()
		memcpy := dma.NewMemcpy[uint32, *dma.Linear[uint32], *dma.Linear[uint32]](
			channel).WithName("edma.Monitored")

		monitor := monitoring.NewMonitor()
		if port != 0 {
			monitor.WithPortNumber(port)
		}
		monitor.RegisterController(memcpy)
		addr := monitor.StartServer()

		if open {
			err := browser.OpenURL(addr + "/api/transfers")
			if err != nil {
				log.Printf("cannot open browser: %v", err)
			}
		}

		source := dma.NewLinear[uint32](4096)
		destination := dma.NewLinear[uint32](4096)

		for {
			err := memcpy.Transfer(source, destination)
			if err != nil {
				log.Fatalf("transfer rejected: %v", err)
			}

			for !memcpy.IsComplete() {
			}

			memcpy.Complete()
			time.Sleep(100 * time.Millisecond)
		}
	},
}

func init() {
	monitorCmd.Flags().Int("port", 0,
		"port to listen on (0 picks EDMA_MONITOR_PORT or a random port)")
	monitorCmd.Flags().Bool("open", false, "open the endpoint in a browser")
	rootCmd.AddCommand(monitorCmd)
}
