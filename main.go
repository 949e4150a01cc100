// Package main is the entry point for the forge frame encoder.
package main

import (
	"fmt"
	"os"

	"firestige.xyz/forge/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
