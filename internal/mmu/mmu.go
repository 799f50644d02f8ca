// Package mmu provides the memory bus consumed by the CPU. The CPU only
// relies on the IOBus contract; MMU is a flat 64kB implementation of it
// that lets an embedder redirect address ranges to other devices.
package mmu

import (
	"errors"
	"fmt"

	"github.com/kaioluanro/emulador-gba/pkg/log"
)

// AddressSpace is the size of the addressable memory.
const AddressSpace = 0x10000

// ErrImageTooLarge is returned by Load when the data does not fit in
// the address space at the requested offset.
var ErrImageTooLarge = errors.New("mmu: image does not fit in address space")

// IOBus is the byte addressable read/write surface used by the CPU and
// by any device mapped into the MMU. Writes must be visible to the
// next read immediately.
type IOBus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// MMU is a flat 64kB memory. Every address is backed by RAM unless a
// device has been mapped over it with Map.
type MMU struct {
	raw [AddressSpace]uint8

	// devices that own part of the address space, nil for plain RAM
	mapped [AddressSpace]IOBus

	Log log.Logger
}

// NewMMU returns a new, zeroed MMU.
func NewMMU() *MMU {
	return &MMU{
		Log: log.NewNullLogger(),
	}
}

// Load copies data into memory starting at offset. Mapped devices are
// bypassed, the bytes always land in RAM.
func (m *MMU) Load(offset uint16, data []byte) error {
	if int(offset)+len(data) > AddressSpace {
		return fmt.Errorf("%w: %d bytes at 0x%04X", ErrImageTooLarge, len(data), offset)
	}
	copy(m.raw[offset:], data)
	m.Log.Debugf("loaded %d bytes at 0x%04X", len(data), offset)
	return nil
}

// Map redirects reads and writes for the inclusive range start-end to
// the given device. Mapping nil restores plain RAM.
func (m *MMU) Map(start, end uint16, device IOBus) {
	for i := int(start); i <= int(end); i++ {
		m.mapped[i] = device
	}
	m.Log.Debugf("mapped 0x%04X-0x%04X", start, end)
}

// Reset clears memory. Mappings are preserved.
func (m *MMU) Reset() {
	m.raw = [AddressSpace]uint8{}
}

// Read returns the value at the given address.
func (m *MMU) Read(address uint16) uint8 {
	if d := m.mapped[address]; d != nil {
		return d.Read(address)
	}
	return m.raw[address]
}

// Write writes the value to the given address.
func (m *MMU) Write(address uint16, value uint8) {
	if d := m.mapped[address]; d != nil {
		d.Write(address, value)
		return
	}
	m.raw[address] = value
}

// Dump returns a copy of n bytes of RAM starting at address, wrapping
// around the end of the address space. Mapped devices are not read.
func (m *MMU) Dump(address uint16, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = m.raw[address+uint16(i)]
	}
	return out
}
