package sink

import (
	"fmt"
	"os"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
)

const defaultSnapLen = 65536

// PcapSink writes frames into a pcap capture file with an Ethernet link
// type, so forged traffic can be opened by any capture tooling.
type PcapSink struct {
	f *os.File
	w *pcapgo.Writer
	n int
}

func NewPcapSink(path string, snapLen uint32) (*PcapSink, error) {
	if snapLen == 0 {
		snapLen = defaultSnapLen
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create pcap file %s: %w", path, err)
	}
	w := pcapgo.NewWriter(f)
	if err := w.WriteFileHeader(snapLen, layers.LinkTypeEthernet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write pcap header: %w", err)
	}
	return &PcapSink{f: f, w: w}, nil
}

func (s *PcapSink) Write(frame []byte) error {
	ci := gopacket.CaptureInfo{
		Timestamp:     time.Now(),
		CaptureLength: len(frame),
		Length:        len(frame),
	}
	if err := s.w.WritePacket(ci, frame); err != nil {
		return fmt.Errorf("failed to write frame %d: %w", s.n+1, err)
	}
	s.n++
	return nil
}

// Count reports how many frames have been written so far.
func (s *PcapSink) Count() int {
	return s.n
}

func (s *PcapSink) Close() error {
	return s.f.Close()
}
