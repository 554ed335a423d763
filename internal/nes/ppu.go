package nes

import (
	"image"
	"image/color"
)

// VideoSink receives the pixel stream the PPU produces one dot at a
// time. Init declares the frame resolution once; SetPixel is called
// for every visible pixel with a packed 0xAARRGGBB color.
type VideoSink interface {
	Init(width, height int)
	SetPixel(x, y int, rgba uint32)
}

// AudioSink is the hook a frontend plugs in to receive audio frames.
// This core never calls it: APU synthesis is out of scope, so the
// hook exists purely so a frontend can wire a sink without the core
// needing to know it produces no samples.
type AudioSink interface {
	QueueSample(sample float32)
}

const (
	ctrlNametableX         uint8 = 1 << 0
	ctrlNametableY         uint8 = 1 << 1
	ctrlIncrementMode      uint8 = 1 << 2
	ctrlSpritePatternTable uint8 = 1 << 3
	ctrlBgPatternTable     uint8 = 1 << 4
	ctrlSpriteSize         uint8 = 1 << 5
	ctrlMasterSlave        uint8 = 1 << 6
	ctrlEnableNMI          uint8 = 1 << 7
)

const (
	maskGrayscale         uint8 = 1 << 0
	maskRenderBgLeft      uint8 = 1 << 1
	maskRenderSpritesLeft uint8 = 1 << 2
	maskRenderBg          uint8 = 1 << 3
	maskRenderSprites     uint8 = 1 << 4
	maskEnhanceR          uint8 = 1 << 5
	maskEnhanceG          uint8 = 1 << 6
	maskEnhanceB          uint8 = 1 << 7
)

const (
	statusSpriteOverflow uint8 = 1 << 5
	statusSpriteZeroHit  uint8 = 1 << 6
	statusVBlank         uint8 = 1 << 7
)

type spriteEntry struct {
	y    uint8
	id   uint8
	attr uint8
	x    uint8
}

// PPU is a cycle-driven 2C02-class picture processor: background tile
// pipeline via a loopy-style 15-bit scroll register, sprite
// evaluation and fetch, pixel compositing, and nametable/palette
// mirroring. One Clock call advances exactly one dot.
type PPU struct {
	cart *Cartridge

	ctrl   uint8
	mask   uint8
	status uint8

	oamAddr uint8
	oam     [256]uint8

	vramAddr    uint16
	tempAddr    uint16
	fineXReg    uint8
	writeToggle bool
	readBuffer  uint8

	nametables [2][1024]uint8
	paletteRAM [32]uint8

	scanline      int
	dot           int
	frameComplete bool
	nmiRequested  bool

	bgNextTileID     uint8
	bgNextTileAttrib uint8
	bgNextTileLSB    uint8
	bgNextTileMSB    uint8

	bgShifterPatternLo uint16
	bgShifterPatternHi uint16
	bgShifterAttribLo  uint16
	bgShifterAttribHi  uint16

	spriteScanline        [8]spriteEntry
	spriteCount           int
	spritePatternLo       [8]uint8
	spritePatternHi       [8]uint8
	spriteZeroHitPossible bool

	video VideoSink
	frame *image.RGBA
}

// NewPPU returns a PPU with no cartridge or video sink attached;
// callers must Reset after wiring both. The internal frame buffer is
// always live, independent of whether a VideoSink is attached, so
// Frame() has something to hand back even to a headless caller.
func NewPPU() *PPU {
	p := &PPU{scanline: -1, frame: image.NewRGBA(image.Rect(0, 0, 256, 240))}
	return p
}

// Frame returns the framebuffer the PPU has been painting into, one
// pixel per emitted dot. The same image is reused across frames; a
// caller that needs a stable snapshot should copy it.
func (p *PPU) Frame() *image.RGBA {
	return p.frame
}

// AttachCartridge wires the cartridge whose CHR memory backs pattern
// reads/writes and whose header/mapper mirroring mode nametable
// addressing follows.
func (p *PPU) AttachCartridge(cart *Cartridge) {
	p.cart = cart
}

// AttachVideoSink wires the sink that receives the pixel stream,
// announcing the fixed 256x240 frame size immediately.
func (p *PPU) AttachVideoSink(sink VideoSink) {
	p.video = sink
	if sink != nil {
		sink.Init(256, 240)
	}
}

// Reset returns the PPU to its power-up state: registers cleared,
// scan position at the start of the pre-render line, and the 256x240
// frame size announced again to the video sink, if one is attached.
func (p *PPU) Reset() {
	if p.video != nil {
		p.video.Init(256, 240)
	}
	p.ctrl = 0
	p.mask = 0
	p.status = 0
	p.oamAddr = 0
	p.vramAddr = 0
	p.tempAddr = 0
	p.fineXReg = 0
	p.writeToggle = false
	p.readBuffer = 0
	p.scanline = -1
	p.dot = 0
	p.frameComplete = false
	p.nmiRequested = false
	p.bgNextTileID = 0
	p.bgNextTileAttrib = 0
	p.bgNextTileLSB = 0
	p.bgNextTileMSB = 0
	p.bgShifterPatternLo = 0
	p.bgShifterPatternHi = 0
	p.bgShifterAttribLo = 0
	p.bgShifterAttribHi = 0
	p.spriteCount = 0
	p.spriteZeroHitPossible = false
}

// FrameComplete reports whether the last Clock call finished a frame.
func (p *PPU) FrameComplete() bool {
	return p.frameComplete
}

// ClearFrameComplete acknowledges a completed frame.
func (p *PPU) ClearFrameComplete() {
	p.frameComplete = false
}

// TakeNMI consumes an edge-triggered NMI request raised during
// vblank-start, reporting whether one was pending.
func (p *PPU) TakeNMI() bool {
	if p.nmiRequested {
		p.nmiRequested = false
		return true
	}
	return false
}

// WriteOAM lets the DMA controller burst 256 bytes directly into OAM
// without going through the $2004 register (and its address
// auto-increment).
func (p *PPU) WriteOAM(offset uint8, value uint8) {
	p.oam[offset] = value
}

// Read answers a CPU-bus access to one of the eight mirrored PPU
// registers (addr & 0x0007 selects it).
func (p *PPU) Read(addr uint16) uint8 {
	switch addr & 0x0007 {
	case 2:
		result := (p.status & 0xE0) | (p.readBuffer & 0x1F)
		p.status &^= statusVBlank
		p.writeToggle = false
		return result
	case 4:
		return p.oam[p.oamAddr]
	case 7:
		return p.readPPUData()
	default:
		return 0
	}
}

// Write answers a CPU-bus write to one of the eight mirrored PPU
// registers.
func (p *PPU) Write(addr uint16, value uint8) {
	switch addr & 0x0007 {
	case 0:
		p.ctrl = value
		p.tempAddr = (p.tempAddr &^ 0x0C00) | (uint16(value&0x03) << 10)
	case 1:
		p.mask = value
	case 3:
		p.oamAddr = value
	case 4:
		p.oam[p.oamAddr] = value
		p.oamAddr++
	case 5:
		if !p.writeToggle {
			p.fineXReg = value & 0x07
			p.tempAddr = (p.tempAddr &^ 0x001F) | uint16(value>>3)
		} else {
			p.tempAddr = (p.tempAddr &^ 0x73E0) | (uint16(value&0x07) << 12) | (uint16(value>>3) << 5)
		}
		p.writeToggle = !p.writeToggle
	case 6:
		if !p.writeToggle {
			p.tempAddr = (p.tempAddr & 0x00FF) | (uint16(value&0x3F) << 8)
		} else {
			p.tempAddr = (p.tempAddr & 0xFF00) | uint16(value)
			p.vramAddr = p.tempAddr
		}
		p.writeToggle = !p.writeToggle
	case 7:
		p.ppuWrite(p.vramAddr, value)
		p.incrementVRAMAddr()
	}
}

func (p *PPU) incrementVRAMAddr() {
	if p.ctrl&ctrlIncrementMode != 0 {
		p.vramAddr += 32
	} else {
		p.vramAddr++
	}
}

func (p *PPU) readPPUData() uint8 {
	var result uint8
	if p.vramAddr >= 0x3F00 {
		result = p.ppuRead(p.vramAddr)
		p.readBuffer = p.ppuRead(p.vramAddr - 0x1000)
	} else {
		result = p.readBuffer
		p.readBuffer = p.ppuRead(p.vramAddr)
	}
	p.incrementVRAMAddr()
	return result
}

// ppuRead resolves an address on the PPU's own bus: pattern memory
// through the cartridge, nametables through mirroring, palette
// through its 32-entry aliasing.
func (p *PPU) ppuRead(addr uint16) uint8 {
	addr &= 0x3FFF
	switch {
	case addr <= 0x1FFF:
		if p.cart != nil {
			return p.cart.Read(addr)
		}
		return 0
	case addr <= 0x3EFF:
		off := p.mirrorNametable(addr)
		return p.nametables[off>>10][off&0x03FF]
	default:
		return p.readPalette(addr)
	}
}

func (p *PPU) ppuWrite(addr uint16, value uint8) {
	addr &= 0x3FFF
	switch {
	case addr <= 0x1FFF:
		if p.cart != nil {
			p.cart.Write(addr, value)
		}
	case addr <= 0x3EFF:
		off := p.mirrorNametable(addr)
		p.nametables[off>>10][off&0x03FF] = value
	default:
		p.writePalette(addr, value)
	}
}

func (p *PPU) mirrorNametable(addr uint16) uint16 {
	addr = (addr - 0x2000) & 0x0FFF
	table := addr >> 10
	offset := addr & 0x03FF

	mode := MirrorHorizontal
	if p.cart != nil {
		mode = p.cart.Mirroring()
	}

	var physical uint16
	if mode == MirrorVertical {
		physical = table & 1
	} else {
		physical = table >> 1
	}
	return physical<<10 | offset
}

func paletteIndex(addr uint16) uint16 {
	idx := addr & 0x1F
	switch idx {
	case 0x10, 0x14, 0x18, 0x1C:
		idx -= 0x10
	}
	return idx
}

func (p *PPU) readPalette(addr uint16) uint8 {
	return p.paletteRAM[paletteIndex(addr)]
}

func (p *PPU) writePalette(addr uint16, value uint8) {
	p.paletteRAM[paletteIndex(addr)] = value & 0x3F
}

func (p *PPU) coarseX() uint16 { return p.vramAddr & 0x001F }
func (p *PPU) coarseY() uint16 { return (p.vramAddr >> 5) & 0x001F }
func (p *PPU) fineY() uint16   { return (p.vramAddr >> 12) & 0x0007 }

func (p *PPU) incrementScrollX() {
	if p.mask&(maskRenderBg|maskRenderSprites) == 0 {
		return
	}
	if p.vramAddr&0x001F == 31 {
		p.vramAddr &^= 0x001F
		p.vramAddr ^= 0x0400
	} else {
		p.vramAddr++
	}
}

func (p *PPU) incrementScrollY() {
	if p.mask&(maskRenderBg|maskRenderSprites) == 0 {
		return
	}
	if p.vramAddr&0x7000 != 0x7000 {
		p.vramAddr += 0x1000
		return
	}
	p.vramAddr &^= 0x7000
	y := (p.vramAddr & 0x03E0) >> 5
	switch y {
	case 29:
		y = 0
		p.vramAddr ^= 0x0800
	case 31:
		y = 0
	default:
		y++
	}
	p.vramAddr = (p.vramAddr &^ 0x03E0) | (y << 5)
}

func (p *PPU) transferAddressX() {
	if p.mask&(maskRenderBg|maskRenderSprites) == 0 {
		return
	}
	p.vramAddr = (p.vramAddr &^ 0x041F) | (p.tempAddr & 0x041F)
}

func (p *PPU) transferAddressY() {
	if p.mask&(maskRenderBg|maskRenderSprites) == 0 {
		return
	}
	p.vramAddr = (p.vramAddr &^ 0x7BE0) | (p.tempAddr & 0x7BE0)
}

func (p *PPU) loadBackgroundShifters() {
	p.bgShifterPatternLo = (p.bgShifterPatternLo & 0xFF00) | uint16(p.bgNextTileLSB)
	p.bgShifterPatternHi = (p.bgShifterPatternHi & 0xFF00) | uint16(p.bgNextTileMSB)

	var lo, hi uint16
	if p.bgNextTileAttrib&0x01 != 0 {
		lo = 0x00FF
	}
	if p.bgNextTileAttrib&0x02 != 0 {
		hi = 0x00FF
	}
	p.bgShifterAttribLo = (p.bgShifterAttribLo & 0xFF00) | lo
	p.bgShifterAttribHi = (p.bgShifterAttribHi & 0xFF00) | hi
}

func (p *PPU) shiftBackgroundShifters() {
	if p.mask&maskRenderBg == 0 {
		return
	}
	p.bgShifterPatternLo <<= 1
	p.bgShifterPatternHi <<= 1
	p.bgShifterAttribLo <<= 1
	p.bgShifterAttribHi <<= 1
}

func (p *PPU) shiftSpriteShifters() {
	for i := 0; i < p.spriteCount; i++ {
		if p.spriteScanline[i].x > 0 {
			p.spriteScanline[i].x--
		} else {
			p.spritePatternLo[i] <<= 1
			p.spritePatternHi[i] <<= 1
		}
	}
}

// backgroundFetchStep runs the eight-step tile-fetch micro-sequence,
// one step per dot, active on dots 2..257 and 321..337.
func (p *PPU) backgroundFetchStep() {
	switch (p.dot - 1) % 8 {
	case 0:
		p.loadBackgroundShifters()
		p.bgNextTileID = p.ppuRead(0x2000 | (p.vramAddr & 0x0FFF))
	case 2:
		addr := uint16(0x23C0) | (p.vramAddr & 0x0C00) | ((p.coarseY() >> 2) << 3) | (p.coarseX() >> 2)
		p.bgNextTileAttrib = p.ppuRead(addr)
		if p.coarseY()&0x02 != 0 {
			p.bgNextTileAttrib >>= 4
		}
		if p.coarseX()&0x02 != 0 {
			p.bgNextTileAttrib >>= 2
		}
		p.bgNextTileAttrib &= 0x03
	case 4:
		bank := uint16(0)
		if p.ctrl&ctrlBgPatternTable != 0 {
			bank = 0x1000
		}
		p.bgNextTileLSB = p.ppuRead(bank + uint16(p.bgNextTileID)*16 + p.fineY())
	case 6:
		bank := uint16(0)
		if p.ctrl&ctrlBgPatternTable != 0 {
			bank = 0x1000
		}
		p.bgNextTileMSB = p.ppuRead(bank + uint16(p.bgNextTileID)*16 + p.fineY() + 8)
	case 7:
		p.incrementScrollX()
	}
}

func (p *PPU) evaluateSprites() {
	p.spriteCount = 0
	p.spriteZeroHitPossible = false

	height := 8
	if p.ctrl&ctrlSpriteSize != 0 {
		height = 16
	}

	for i := 0; i < 64; i++ {
		y := p.oam[i*4]
		diff := p.scanline - int(y)
		if diff < 0 || diff >= height {
			continue
		}
		if p.spriteCount == 8 {
			p.status |= statusSpriteOverflow
			break
		}
		if i == 0 {
			p.spriteZeroHitPossible = true
		}
		p.spriteScanline[p.spriteCount] = spriteEntry{
			y:    y,
			id:   p.oam[i*4+1],
			attr: p.oam[i*4+2],
			x:    p.oam[i*4+3],
		}
		p.spriteCount++
	}
}

func reverseBits(b uint8) uint8 {
	b = (b&0xF0)>>4 | (b&0x0F)<<4
	b = (b&0xCC)>>2 | (b&0x33)<<2
	b = (b&0xAA)>>1 | (b&0x55)<<1
	return b
}

func (p *PPU) fetchSpritePatterns() {
	height := 8
	if p.ctrl&ctrlSpriteSize != 0 {
		height = 16
	}

	for i := 0; i < p.spriteCount; i++ {
		s := p.spriteScanline[i]
		flipV := s.attr&0x80 != 0
		flipH := s.attr&0x40 != 0

		row := p.scanline - int(s.y)

		var bank uint16
		tile := s.id
		if height == 16 {
			bank = uint16(s.id&0x01) * 0x1000
			tile = s.id &^ 0x01
			if flipV {
				row = 15 - row
			}
			if row >= 8 {
				tile++
				row -= 8
			}
		} else {
			if p.ctrl&ctrlSpritePatternTable != 0 {
				bank = 0x1000
			}
			if flipV {
				row = 7 - row
			}
		}

		addr := bank + uint16(tile)*16 + uint16(row)
		lo := p.ppuRead(addr)
		hi := p.ppuRead(addr + 8)
		if flipH {
			lo = reverseBits(lo)
			hi = reverseBits(hi)
		}
		p.spritePatternLo[i] = lo
		p.spritePatternHi[i] = hi
	}
}

func (p *PPU) emitPixel() {
	var bgPixel, bgPalette uint8
	if p.mask&maskRenderBg != 0 {
		selector := uint16(0x8000) >> p.fineXReg

		var lo, hi uint8
		if p.bgShifterPatternLo&selector != 0 {
			lo = 1
		}
		if p.bgShifterPatternHi&selector != 0 {
			hi = 1
		}
		bgPixel = (hi << 1) | lo

		var alo, ahi uint8
		if p.bgShifterAttribLo&selector != 0 {
			alo = 1
		}
		if p.bgShifterAttribHi&selector != 0 {
			ahi = 1
		}
		bgPalette = (ahi << 1) | alo
	}

	var fgPixel, fgPalette uint8
	fgPriority := true
	spriteZeroRendered := false
	if p.mask&maskRenderSprites != 0 {
		for i := 0; i < p.spriteCount; i++ {
			if p.spriteScanline[i].x != 0 {
				continue
			}
			var lo, hi uint8
			if p.spritePatternLo[i]&0x80 != 0 {
				lo = 1
			}
			if p.spritePatternHi[i]&0x80 != 0 {
				hi = 1
			}
			pixel := (hi << 1) | lo
			if pixel == 0 {
				continue
			}
			fgPixel = pixel
			fgPalette = (p.spriteScanline[i].attr & 0x03) + 4
			fgPriority = p.spriteScanline[i].attr&0x20 == 0
			spriteZeroRendered = i == 0
			break
		}
	}

	var pixel, palette uint8
	switch {
	case bgPixel == 0 && fgPixel == 0:
		pixel, palette = 0, 0
	case bgPixel == 0 && fgPixel != 0:
		pixel, palette = fgPixel, fgPalette
	case bgPixel != 0 && fgPixel == 0:
		pixel, palette = bgPixel, bgPalette
	default:
		if fgPriority {
			pixel, palette = fgPixel, fgPalette
		} else {
			pixel, palette = bgPixel, bgPalette
		}

		if p.spriteZeroHitPossible && spriteZeroRendered &&
			p.mask&maskRenderBg != 0 && p.mask&maskRenderSprites != 0 {
			gateLow, gateHigh := 1, 257
			if p.mask&(maskRenderBgLeft|maskRenderSpritesLeft) != (maskRenderBgLeft | maskRenderSpritesLeft) {
				gateLow = 9
			}
			if p.dot >= gateLow && p.dot <= gateHigh {
				p.status |= statusSpriteZeroHit
			}
		}
	}

	colorIdx := p.readPalette(0x3F00+(uint16(palette)<<2)+uint16(pixel)) & 0x3F
	rgba := paletteRGBA(colorIdx)
	x, y := p.dot-1, p.scanline
	if p.video != nil {
		p.video.SetPixel(x, y, rgba)
	}
	p.frame.Set(x, y, unpackRGBA(rgba))
}

// unpackRGBA turns a packed 0xAARRGGBB color into an image/color.RGBA,
// the form *image.RGBA.Set expects.
func unpackRGBA(packed uint32) color.RGBA {
	return color.RGBA{
		A: uint8(packed >> 24),
		R: uint8(packed >> 16),
		G: uint8(packed >> 8),
		B: uint8(packed),
	}
}

// Clock advances the PPU by exactly one dot: the 341x262 dot/scanline
// grid with scanline running [-1, 260] (-1 is pre-render) and dot
// running [0, 340].
func (p *PPU) Clock() {
	if p.scanline == -1 && p.dot == 1 {
		p.status &^= statusVBlank | statusSpriteOverflow | statusSpriteZeroHit
		for i := range p.spritePatternLo {
			p.spritePatternLo[i] = 0
			p.spritePatternHi[i] = 0
		}
	}

	if p.scanline >= -1 && p.scanline <= 239 {
		if p.dot >= 1 && p.dot <= 257 {
			p.shiftBackgroundShifters()
			if p.mask&maskRenderSprites != 0 {
				p.shiftSpriteShifters()
			}
		}

		if (p.dot >= 2 && p.dot <= 257) || (p.dot >= 321 && p.dot <= 337) {
			p.backgroundFetchStep()
		}

		if p.dot == 256 {
			p.incrementScrollY()
		}
		if p.dot == 257 {
			p.transferAddressX()
			p.evaluateSprites()
		}
		if p.scanline == -1 && p.dot >= 280 && p.dot <= 304 {
			p.transferAddressY()
		}
		if p.dot == 340 {
			p.fetchSpritePatterns()
		}
	}

	if p.scanline == 241 && p.dot == 1 {
		p.status |= statusVBlank
		if p.ctrl&ctrlEnableNMI != 0 {
			p.nmiRequested = true
		}
	}

	if p.scanline >= 0 && p.scanline <= 239 && p.dot >= 1 && p.dot <= 256 {
		p.emitPixel()
	}

	p.dot++
	if p.dot > 340 {
		p.dot = 0
		p.scanline++
		if p.scanline > 260 {
			p.scanline = -1
			p.frameComplete = true
		}
	}
}

// GetColorFromPalette resolves a (palette, pixel) pair to its color,
// for debug UIs that render the palette swatches directly.
func (p *PPU) GetColorFromPalette(palette, pixel uint8) uint32 {
	idx := p.readPalette(0x3F00+(uint16(palette)<<2)+uint16(pixel)) & 0x3F
	return paletteRGBA(idx)
}

// GetPatternTable renders one of the two 128x128 pattern tables using
// the given palette, for debug UIs.
func (p *PPU) GetPatternTable(table int, palette uint8) [128 * 128]uint32 {
	var out [128 * 128]uint32
	for tileY := 0; tileY < 16; tileY++ {
		for tileX := 0; tileX < 16; tileX++ {
			offset := uint16(tileY*256 + tileX*16)
			for row := 0; row < 8; row++ {
				lo := p.ppuRead(uint16(table)*0x1000 + offset + uint16(row))
				hi := p.ppuRead(uint16(table)*0x1000 + offset + uint16(row) + 8)
				for col := 0; col < 8; col++ {
					pixel := (hi&0x01)<<1 | (lo & 0x01)
					lo >>= 1
					hi >>= 1
					x := tileX*8 + (7 - col)
					y := tileY*8 + row
					out[y*128+x] = p.GetColorFromPalette(palette, pixel)
				}
			}
		}
	}
	return out
}
