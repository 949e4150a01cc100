package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"firestige.xyz/forge/internal/config"
	"firestige.xyz/forge/internal/core/encoder"
)

var validateFile string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a descriptor file without producing output",
	Long: `Validate every packet in a YAML descriptor file by running the full
assembly and discarding the result. Useful for pre-checking descriptor
files before generating traffic.

Examples:
  forge validate -f packets.yml`,
	Run: func(cmd *cobra.Command, args []string) {
		runValidateCommand()
	},
}

func init() {
	validateCmd.Flags().StringVarP(&validateFile, "file", "f", "",
		"descriptor file to validate (required)")
	validateCmd.MarkFlagRequired("file")
}

func runValidateCommand() {
	df, err := config.LoadDescriptors(validateFile)
	if err != nil {
		exitWithError("failed to load descriptors", err)
	}

	invalid := 0
	for _, p := range df.Packets {
		res, err := encoder.Assemble(encoder.PacketDescriptor(p.Fields))
		if err != nil {
			fmt.Fprintf(os.Stderr, "INVALID %s: %v\n", p.Name, err)
			invalid++
			continue
		}
		if len(res.Notices) > 0 {
			fmt.Printf("VALID   %s: %d bytes, %d notice(s)\n", p.Name, len(res.Frame), len(res.Notices))
			for _, n := range res.Notices {
				fmt.Printf("        [%s] %s\n", n.Layer, n.Reason)
			}
		} else {
			fmt.Printf("VALID   %s: %d bytes\n", p.Name, len(res.Frame))
		}
	}

	if invalid > 0 {
		exitWithError(fmt.Sprintf("%d of %d packet(s) invalid", invalid, len(df.Packets)), nil)
	}
}
