package main

import "github.com/hwblocks/edma/edma/cmd"

func main() {
	cmd.Execute()
}
