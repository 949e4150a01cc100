// Package cmd implements CLI commands using cobra framework.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"firestige.xyz/forge/internal/config"
	"firestige.xyz/forge/internal/log"
)

var (
	// Global flags
	configFile string

	// Loaded global configuration, available to all subcommands.
	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "forge",
	Short: "Forge - synthetic network frame encoder",
	Long: `Forge assembles well-formed link-layer frames from declarative packet
descriptors: Ethernet carrying an IPv4 datagram with an ICMP Echo or UDP
payload. Frames are written to pcap files or hex-dumped, ready for replay
and capture-pipeline testing — no live network access involved.`,
	Version:           "0.1.0",
	PersistentPreRunE: loadConfigAndLogger,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "",
		"config file path (default forge.yml if present)")

	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(inspectCmd)
}

func loadConfigAndLogger(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log.Init(&cfg.Log)
	return nil
}

// exitWithError prints error message and exits with code 1
func exitWithError(msg string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
	}
	os.Exit(1)
}
