package machine

import (
	"bytes"
	"strings"
)

const (
	// SB is the serial transfer data register.
	SB uint16 = 0xFF01
	// SC is the serial transfer control register.
	SC uint16 = 0xFF02
)

// Serial is a link port with nothing plugged in. Every byte the program
// transfers with the internal clock is captured, which is how test ROMs
// report their results.
type Serial struct {
	data    uint8
	control uint8
	out     bytes.Buffer
}

// NewSerial returns a new Serial.
func NewSerial() *Serial {
	return &Serial{}
}

// Read implements mmu.IOBus.
func (s *Serial) Read(address uint16) uint8 {
	if address == SB {
		return s.data
	}
	// unused bits read back as 1
	return s.control | 0x7E
}

// Write implements mmu.IOBus. Requesting a transfer with the internal
// clock completes it immediately; the byte shifted in from the
// unconnected port is 0xFF.
func (s *Serial) Write(address uint16, value uint8) {
	if address == SB {
		s.data = value
		return
	}

	s.control = value & 0x81
	if s.control == 0x81 {
		s.out.WriteByte(s.data)
		s.data = 0xFF
		s.control &^= 0x80
	}
}

// Output returns everything transferred so far.
func (s *Serial) Output() string {
	return s.out.String()
}

// Finished reports whether the output contains a test verdict.
func (s *Serial) Finished() bool {
	out := s.Output()
	return strings.Contains(out, "Passed") || strings.Contains(out, "Failed")
}
