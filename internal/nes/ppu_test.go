package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test_PPU_VBlankAndNMI is spec §8 end-to-end scenario 5.
func Test_PPU_VBlankAndNMI(t *testing.T) {
	ppu := NewPPU()
	ppu.Reset()
	ppu.ctrl |= ctrlEnableNMI
	// mask left at 0: rendering disabled.

	for i := 0; i < 100000 && ppu.status&statusVBlank == 0; i++ {
		ppu.Clock()
	}

	assert.Equal(t, 241, ppu.scanline)
	assert.Equal(t, 2, ppu.dot, "dot has advanced past the (241,1) tick that set vblank")
	assert.NotZero(t, ppu.status&statusVBlank)
	assert.True(t, ppu.TakeNMI(), "NMI requested since enable-NMI was set")
	assert.False(t, ppu.TakeNMI(), "TakeNMI consumes the edge")

	before := ppu.Read(0x2002)
	assert.NotZero(t, before&0x80, "status read reports vblank set")
	assert.Zero(t, ppu.status&statusVBlank, "reading status cleared vblank")
}

func Test_PPU_VBlankWithoutEnableNMI(t *testing.T) {
	ppu := NewPPU()
	ppu.Reset()

	for i := 0; i < 100000 && ppu.status&statusVBlank == 0; i++ {
		ppu.Clock()
	}

	assert.NotZero(t, ppu.status&statusVBlank)
	assert.False(t, ppu.TakeNMI(), "no NMI without enable-NMI")
}

// Test_PPU_SpriteOverflow is spec §8 end-to-end scenario 6.
func Test_PPU_SpriteOverflow(t *testing.T) {
	ppu := NewPPU()
	ppu.Reset()

	for i := 0; i < 9; i++ {
		ppu.oam[i*4] = 100 // y
		ppu.oam[i*4+1] = uint8(i)
		ppu.oam[i*4+2] = 0
		ppu.oam[i*4+3] = uint8(i * 10)
	}

	ppu.scanline = 101
	ppu.dot = 257
	ppu.Clock()

	assert.NotZero(t, ppu.status&statusSpriteOverflow)
	assert.Equal(t, 8, ppu.spriteCount)
	for i := 0; i < 8; i++ {
		assert.Equal(t, uint8(i), ppu.spriteScanline[i].id, "sprite %d", i)
	}
}

func Test_PPU_SpriteZeroHitPossibleWhenOAM0Kept(t *testing.T) {
	ppu := NewPPU()
	ppu.Reset()
	ppu.oam[0] = 50 // y

	ppu.scanline = 51
	ppu.dot = 257
	ppu.Clock()

	assert.True(t, ppu.spriteZeroHitPossible)
}

func Test_PPU_NametableMirroring_Horizontal(t *testing.T) {
	ppu := NewPPU()
	ppu.Reset()

	ppu.ppuWrite(0x2000, 0xAA)
	assert.Equal(t, uint8(0xAA), ppu.ppuRead(0x2400), "horizontal: 0x2000 and 0x2400 share the first physical table")

	ppu.ppuWrite(0x2800, 0xBB)
	assert.Equal(t, uint8(0xBB), ppu.ppuRead(0x2C00), "horizontal: 0x2800 and 0x2C00 share the second physical table")
}

func Test_PPU_NametableMirroring_Vertical(t *testing.T) {
	header := make([]byte, 16)
	copy(header, []byte{'N', 'E', 'S', 0x1A})
	header[4] = 1
	header[5] = 1
	header[6] = 0x01 // vertical mirroring, mapper 0

	data := append([]byte{}, header...)
	data = append(data, make([]byte, prgBankBytes)...)
	data = append(data, make([]byte, chrBankBytes)...)

	cart, err := NewCartridgeFromBytes(data)
	assert.NoError(t, err)

	ppu := NewPPU()
	ppu.Reset()
	ppu.AttachCartridge(cart)

	ppu.ppuWrite(0x2000, 0x11)
	assert.Equal(t, uint8(0x11), ppu.ppuRead(0x2800), "vertical: 0x2000 and 0x2800 share a physical table")

	ppu.ppuWrite(0x2400, 0x22)
	assert.Equal(t, uint8(0x22), ppu.ppuRead(0x2C00), "vertical: 0x2400 and 0x2C00 share a physical table")
}

func Test_PPU_PaletteMirroring(t *testing.T) {
	ppu := NewPPU()
	ppu.Reset()

	ppu.writePalette(0x3F00, 0x0F)
	assert.Equal(t, uint8(0x0F), ppu.readPalette(0x3F10))

	ppu.writePalette(0x3F04, 0x1A)
	assert.Equal(t, uint8(0x1A), ppu.readPalette(0x3F14))

	ppu.writePalette(0x3F08, 0x2B)
	assert.Equal(t, uint8(0x2B), ppu.readPalette(0x3F18))

	ppu.writePalette(0x3F0C, 0x3C)
	assert.Equal(t, uint8(0x3C), ppu.readPalette(0x3F1C))
}

func Test_PPU_StatusReadResetsWriteToggle(t *testing.T) {
	ppu := NewPPU()
	ppu.Reset()

	ppu.Write(0x2006, 0x3F) // first of the two toggle-driven writes
	assert.True(t, ppu.writeToggle)

	ppu.Read(0x2002)
	assert.False(t, ppu.writeToggle, "status read resets the write latch to high")
}
