package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_DMA_FullTransfer(t *testing.T) {
	bus := NewBus()
	ram := NewRAM(0x10000)
	assert.NoError(t, bus.Attach(AddressRange{Low: 0x0000, High: 0xFFFF}, ram))
	for i := 0; i < 256; i++ {
		ram.Write(uint16(0x0200+i), uint8(i))
	}

	cpu := NewCPU(bus)
	ppu := NewPPU()
	dma := NewDMA(cpu, ppu)

	dma.Write(0x4014, 0x02)
	assert.True(t, dma.Transferring())

	// clock enough master cycles to cover the sync stall plus the
	// even/odd read-write pair for all 256 bytes.
	for i := uint64(0); i < 3 + 512; i++ {
		dma.Clock(i)
	}

	assert.False(t, dma.Transferring())
	for i := 0; i < 256; i++ {
		assert.Equal(t, uint8(i), ppu.oam[i], "oam byte %d", i)
	}
}

func Test_DMA_NoOpWhenIdle(t *testing.T) {
	cpu := NewCPU(NewBus())
	ppu := NewPPU()
	dma := NewDMA(cpu, ppu)

	dma.Clock(0)
	dma.Clock(1)
	assert.False(t, dma.Transferring())
}

func Test_DMA_ReadRegisterIsWriteOnly(t *testing.T) {
	dma := NewDMA(NewCPU(NewBus()), NewPPU())
	assert.Equal(t, uint8(0), dma.Read(0x4014))
}

func Test_DMA_Reset(t *testing.T) {
	cpu := NewCPU(NewBus())
	ppu := NewPPU()
	dma := NewDMA(cpu, ppu)

	dma.Write(0x4014, 0x02)
	assert.True(t, dma.Transferring())

	dma.Reset()
	assert.False(t, dma.Transferring())
}
