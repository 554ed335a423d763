package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test_PISO_8Bit is spec §8's universal shift-register invariant: after
// loading v, eight Output calls yield v's bits MSB to LSB, then zero.
func Test_PISO_8Bit(t *testing.T) {
	reg := newPISO(8)
	reg.Load(0b1001_0110)

	want := []uint8{1, 0, 0, 1, 0, 1, 1, 0}
	for i, w := range want {
		assert.Equal(t, w, reg.Output(), "bit %d", i)
	}
	assert.Equal(t, uint8(0), reg.Output(), "drained register keeps returning 0")
}

func Test_PISO_NarrowerWidth(t *testing.T) {
	reg := newPISO(4)
	reg.Load(0b1101)

	want := []uint8{1, 1, 0, 1}
	for i, w := range want {
		assert.Equal(t, w, reg.Output(), "bit %d", i)
	}
	assert.Equal(t, uint8(0), reg.Output())
}

func Test_PISO_ReloadMidDrain(t *testing.T) {
	reg := newPISO(8)
	reg.Load(0xFF)
	reg.Output()
	reg.Output()

	reg.Load(0x00)
	assert.Equal(t, uint8(0), reg.Output())
}
