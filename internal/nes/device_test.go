package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Bus_DispatchesToFirstMatchingDevice(t *testing.T) {
	bus := NewBus()
	ram := NewRAM(0x10)
	assert.NoError(t, bus.Attach(AddressRange{Low: 0x0000, High: 0x000F}, ram))

	bus.Write(0x0005, 0x42)
	assert.Equal(t, uint8(0x42), bus.Read(0x0005))
}

func Test_Bus_UnmappedAddressReadsZero(t *testing.T) {
	bus := NewBus()
	assert.Equal(t, uint8(0), bus.Read(0x1234))
	bus.Write(0x1234, 0xFF) // silent no-op, must not panic
}

func Test_Bus_Attach_RejectsOverlap(t *testing.T) {
	bus := NewBus()
	ram1 := NewRAM(0x100)
	ram2 := NewRAM(0x100)

	assert.NoError(t, bus.Attach(AddressRange{Low: 0x0000, High: 0x00FF}, ram1))
	err := bus.Attach(AddressRange{Low: 0x00F0, High: 0x01FF}, ram2)
	assert.ErrorIs(t, err, ErrBusOverlap)
}

func Test_Bus_Attach_AdjacentRangesDoNotOverlap(t *testing.T) {
	bus := NewBus()
	ram1 := NewRAM(0x100)
	ram2 := NewRAM(0x100)

	assert.NoError(t, bus.Attach(AddressRange{Low: 0x0000, High: 0x00FF}, ram1))
	assert.NoError(t, bus.Attach(AddressRange{Low: 0x0100, High: 0x01FF}, ram2))
}
