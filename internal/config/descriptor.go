package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"firestige.xyz/forge/internal/core"
)

// DescriptorFile is a YAML document carrying one or more packet
// descriptors:
//
//	packets:
//	  - name: udp-probe
//	    fields:
//	      ethDst: "ff:ff:ff:ff:ff:ff"
//	      ethSrc: "00:11:22:33:44:55"
//	      ipVer: 4
//	      ...
//
// Field keys and semantics belong to the encoder; this loader only carries
// them through untouched.
type DescriptorFile struct {
	Packets []PacketEntry `yaml:"packets"`
}

// PacketEntry is a single named descriptor inside a descriptor file.
type PacketEntry struct {
	Name   string         `yaml:"name"`
	Fields map[string]any `yaml:"fields"`
}

// LoadDescriptors reads and parses a descriptor file. Unnamed entries get
// positional names so logs and verdicts stay addressable.
func LoadDescriptors(path string) (*DescriptorFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read descriptor file %s: %w", path, err)
	}

	var df DescriptorFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return nil, fmt.Errorf("failed to parse descriptor file %s: %w", path, err)
	}
	if len(df.Packets) == 0 {
		return nil, fmt.Errorf("%w: descriptor file %s contains no packets", core.ErrConfigInvalid, path)
	}

	for i := range df.Packets {
		if df.Packets[i].Name == "" {
			df.Packets[i].Name = fmt.Sprintf("packet-%d", i+1)
		}
		if df.Packets[i].Fields == nil {
			return nil, fmt.Errorf("%w: packet %q has no fields", core.ErrConfigInvalid, df.Packets[i].Name)
		}
	}
	return &df, nil
}
