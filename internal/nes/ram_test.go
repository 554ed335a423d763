package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_RAM_PowerOfTwoMirroring(t *testing.T) {
	ram := NewRAM(0x800)
	ram.Write(0x0000, 0x11)

	// classic 2 KiB NES RAM mirrored 4x across 0x0000-0x1FFF.
	assert.Equal(t, uint8(0x11), ram.Read(0x0000))
	assert.Equal(t, uint8(0x11), ram.Read(0x0800))
	assert.Equal(t, uint8(0x11), ram.Read(0x1000))
	assert.Equal(t, uint8(0x11), ram.Read(0x1800))
}

func Test_RAM_NonPowerOfTwoModulus(t *testing.T) {
	ram := NewRAM(0x300) // 768 bytes, not a power of two
	ram.Write(0x0005, 0x99)

	assert.Equal(t, uint8(0x99), ram.Read(0x0005))
	assert.Equal(t, uint8(0x99), ram.Read(0x0305))
	assert.Equal(t, uint8(0x99), ram.Read(0x0605))
}

func Test_RAM_WriteThenReadWithinRange(t *testing.T) {
	ram := NewRAM(0x10)
	for i := uint16(0); i < 0x10; i++ {
		ram.Write(i, uint8(i))
	}
	for i := uint16(0); i < 0x10; i++ {
		assert.Equal(t, uint8(i), ram.Read(i))
	}
}

func Test_ValidateRAMRange(t *testing.T) {
	assert.NoError(t, validateRAMRange(AddressRange{Low: 0x0000, High: 0x1FFF}, 0x800))
	err := validateRAMRange(AddressRange{Low: 0x0000, High: 0x1FFE}, 0x800)
	assert.ErrorIs(t, err, ErrAddressRangeNotMultipleOfMemorySize)
}
