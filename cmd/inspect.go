package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
	"github.com/spf13/cobra"
)

var inspectFile string

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Decode frames from a pcap file and print their layers",
	Long: `Read frames back from a pcap file and print the decoded layer summary
for each, as a round-trip sanity check of generated traffic.

Examples:
  forge inspect -f out.pcap`,
	Run: func(cmd *cobra.Command, args []string) {
		runInspectCommand()
	},
}

func init() {
	inspectCmd.Flags().StringVarP(&inspectFile, "file", "f", "",
		"pcap file to inspect (required)")
	inspectCmd.MarkFlagRequired("file")
}

func runInspectCommand() {
	f, err := os.Open(inspectFile)
	if err != nil {
		exitWithError("failed to open pcap file", err)
	}
	defer f.Close()

	r, err := pcapgo.NewReader(f)
	if err != nil {
		exitWithError("failed to read pcap header", err)
	}

	for i := 1; ; i++ {
		data, _, err := r.ReadPacketData()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			exitWithError(fmt.Sprintf("failed to read frame %d", i), err)
		}
		pkt := gopacket.NewPacket(data, layers.LayerTypeEthernet, gopacket.Default)
		fmt.Printf("frame %d (%d bytes)\n", i, len(data))
		for _, layer := range pkt.Layers() {
			fmt.Printf("  %s\n", layer.LayerType())
		}
	}
}
