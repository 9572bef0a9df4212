package main

import (
	"fmt"
	"os"

	"github.com/cl455/lodz-rations/cmd/lodz-rations/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
