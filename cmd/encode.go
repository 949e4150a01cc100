package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"firestige.xyz/forge/internal/config"
	"firestige.xyz/forge/internal/core/encoder"
	"firestige.xyz/forge/internal/log"
	"firestige.xyz/forge/internal/sink"
)

var (
	encodeFile   string
	encodeOutput string
	encodeHex    bool
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Assemble frames from a descriptor file",
	Long: `Assemble every packet in a YAML descriptor file into a link-layer frame.

Frames go to a pcap file (default, openable by wireshark/tcpdump) or are
hex-dumped to stdout with --hex. Any assembly error aborts without output;
layers the encoder skipped permissively are reported as warnings.

Examples:
  forge encode -f packets.yml -o out.pcap
  forge encode -f packets.yml --hex`,
	Run: func(cmd *cobra.Command, args []string) {
		runEncodeCommand()
	},
}

func init() {
	encodeCmd.Flags().StringVarP(&encodeFile, "file", "f", "",
		"descriptor file to encode (required)")
	encodeCmd.Flags().StringVarP(&encodeOutput, "output", "o", "",
		"output pcap path (default from config)")
	encodeCmd.Flags().BoolVar(&encodeHex, "hex", false,
		"hex-dump frames to stdout instead of writing a pcap file")
	encodeCmd.MarkFlagRequired("file")
}

func runEncodeCommand() {
	logger := log.GetLogger()

	df, err := config.LoadDescriptors(encodeFile)
	if err != nil {
		exitWithError("failed to load descriptors", err)
	}

	out, path := openSink()
	defer out.Close()

	for _, p := range df.Packets {
		res, err := encoder.Assemble(encoder.PacketDescriptor(p.Fields))
		if err != nil {
			exitWithError("failed to assemble packet "+p.Name, err)
		}
		for _, n := range res.Notices {
			logger.WithField("packet", p.Name).WithField("layer", string(n.Layer)).Warn(n.Reason)
		}
		if err := out.Write(res.Frame); err != nil {
			exitWithError("failed to write packet "+p.Name, err)
		}
		logger.WithField("packet", p.Name).Debugf("assembled %d bytes", len(res.Frame))
	}

	if path != "" {
		logger.Infof("wrote %d frame(s) to %s", len(df.Packets), path)
	}
}

// openSink picks the output sink from the --hex flag, the --output flag and
// the config default, in that order.
func openSink() (sink.Sink, string) {
	if encodeHex {
		return sink.NewConsoleSink(os.Stdout), ""
	}
	path := encodeOutput
	if path == "" {
		path = cfg.Output.Path
	}
	s, err := sink.NewPcapSink(path, cfg.Output.SnapLen)
	if err != nil {
		exitWithError("failed to open output", err)
	}
	return s, path
}
