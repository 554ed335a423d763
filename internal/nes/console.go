package nes

import (
	"image"
	"image/color"
)

// cartSlot is a swappable AddressableDevice wrapping whatever
// cartridge is currently loaded, so Console can attach it to the CPU
// bus once at construction and hot-swap the cartridge behind it on
// LoadCartridge without rebuilding the bus.
type cartSlot struct {
	cart *Cartridge
}

func (s *cartSlot) Read(addr uint16) uint8 {
	if s.cart == nil {
		return 0
	}
	return s.cart.Read(addr)
}

func (s *cartSlot) Write(addr uint16, value uint8) {
	if s.cart == nil {
		return
	}
	s.cart.Write(addr, value)
}

// Console is the master scheduler: it owns the CPU, PPU, DMA
// controller, RAM, controller ports and the currently loaded
// cartridge, and drives them all from a single master-tick loop per
// spec §4.9. It is the thing a frontend holds for the lifetime of a
// running game.
type Console struct {
	bus *Bus
	cpu *CPU
	ppu *PPU
	dma *DMA
	ram *RAM

	cart     *cartSlot
	pad1     *ControlPad
	pad2     *ControlPad
	port1    *ControllerPort
	port2    *ControllerPort
	disasm   map[uint16]string
	audio    AudioSink
	elapsed  float64
	clockCnt uint64

	paused    bool
	stepArmed bool
}

// NewConsole wires RAM, the PPU, the DMA register, two controller
// ports and an empty cartridge slot onto a fresh Bus, in the order
// spec §9 requires: devices, then bus, then CPU/PPU, then the
// scheduler wires DMA endpoints last.
func NewConsole() *Console {
	c := &Console{
		bus:  NewBus(),
		ppu:  NewPPU(),
		ram:  NewRAM(0x800),
		cart: &cartSlot{},
		pad1: NewControlPad(),
		pad2: NewControlPad(),
	}

	c.port1 = NewControllerPort()
	c.port1.Attach(c.pad1)
	c.port2 = NewControllerPort()
	c.port2.Attach(c.pad2)

	if err := c.bus.Attach(AddressRange{Low: 0x0000, High: 0x1FFF}, c.ram); err != nil {
		panic(err)
	}
	if err := c.bus.Attach(AddressRange{Low: 0x2000, High: 0x3FFF}, c.ppu); err != nil {
		panic(err)
	}
	if err := c.bus.Attach(AddressRange{Low: 0x4016, High: 0x4016}, c.port1); err != nil {
		panic(err)
	}
	if err := c.bus.Attach(AddressRange{Low: 0x4017, High: 0x4017}, c.port2); err != nil {
		panic(err)
	}
	if err := c.bus.Attach(AddressRange{Low: 0x8000, High: 0xFFFF}, c.cart); err != nil {
		panic(err)
	}

	c.cpu = NewCPU(c.bus)
	c.dma = NewDMA(c.cpu, c.ppu)
	// the DMA register occupies a single address, 0x4014, wired last
	// since it closes over cpu and ppu rather than the bus itself.
	if err := c.bus.Attach(AddressRange{Low: 0x4014, High: 0x4014}, c.dma); err != nil {
		panic(err)
	}

	return c
}

// AttachAudioSink wires the optional audio hook. This core never
// calls it; it exists so a frontend can register a sink without the
// core needing to know it produces no samples.
func (c *Console) AttachAudioSink(sink AudioSink) {
	c.audio = sink
}

// Pad1 returns the control pad plugged into port 1, for a frontend to
// drive with SetButtons.
func (c *Console) Pad1() *ControlPad {
	return c.pad1
}

// Pad2 returns the control pad plugged into port 2.
func (c *Console) Pad2() *ControlPad {
	return c.pad2
}

// LoadCartridge swaps in cart, wires it into both the CPU bus (via
// the cartridge slot) and the PPU's pattern-memory window, resets the
// cartridge's mapper state, and resets the rest of the console so
// execution starts from the new program's reset vector.
func (c *Console) LoadCartridge(cart *Cartridge) {
	c.cart.cart = cart
	c.ppu.AttachCartridge(cart)
	c.Reset()
	c.disasm = Disassemble(c.bus)
}

// Reset zeroes the master-tick counter, resets the CPU and cartridge,
// and re-initializes the PPU so its scanline/dot counters and video
// output parameters start clean. Spec §4.9 names CPU and cartridge
// explicitly; resetting the PPU here too is this core's addition, so
// a reloaded cartridge always starts rendering from a known state
// rather than wherever the previous game's PPU happened to be.
func (c *Console) Reset() {
	c.clockCnt = 0
	c.cpu.Reset()
	if c.cart.cart != nil {
		c.cart.cart.Reset()
	}
	c.ppu.Reset()
	c.dma.Reset()
	c.paused = false
	c.stepArmed = false
}

// clock runs exactly one master tick, per spec §4.9: the PPU always
// advances; the CPU (or DMA, if a transfer is in progress) gets every
// third tick; an edge-triggered NMI raised this tick is delivered to
// the CPU on the same tick, after the CPU/DMA slot.
func (c *Console) clock() {
	c.ppu.Clock()

	if c.clockCnt%3 == 0 {
		if c.dma.Transferring() {
			c.dma.Clock(c.clockCnt)
		} else {
			c.cpu.Clock()
		}
	}

	if c.ppu.TakeNMI() {
		c.cpu.NMI()
	}

	c.clockCnt++
}

// AdvanceInstruction runs the console until the CPU's current
// instruction boundary is crossed: it clocks past the tail of
// whatever instruction is mid-flight, then clocks through exactly one
// more complete instruction.
func (c *Console) AdvanceInstruction() {
	for !c.cpu.IsCurrentInstructionComplete() {
		c.clock()
	}
	// the CPU only fetches on its own slot (every third master tick,
	// and not while DMA holds it), so clock until that fetch happens.
	for c.cpu.IsCurrentInstructionComplete() && !c.cpu.halted {
		c.clock()
	}
	for !c.cpu.IsCurrentInstructionComplete() {
		c.clock()
	}
}

// AdvanceFrame runs the console until the PPU completes a frame, then
// finishes whatever CPU instruction was mid-flight at that instant so
// callers never observe a torn instruction.
func (c *Console) AdvanceFrame() {
	c.ppu.ClearFrameComplete()
	for !c.ppu.FrameComplete() {
		c.clock()
	}
	for !c.cpu.IsCurrentInstructionComplete() {
		c.clock()
	}
}

// Update paces the console to 60 Hz: it accumulates elapsed wall-clock
// seconds and runs whole frames out of the accumulator, carrying any
// leftover residual into the next call. Honors pause and the armed
// single-step request the debug UI can set via TooglePause and
// OneStepAndStop.
func (c *Console) Update(elapsedSeconds float64) {
	const frameTime = 1.0 / 60.0

	if c.stepArmed {
		c.AdvanceInstruction()
		c.stepArmed = false
		c.paused = true
		return
	}
	if c.paused {
		return
	}

	c.elapsed += elapsedSeconds
	for c.elapsed >= frameTime {
		c.AdvanceFrame()
		c.elapsed -= frameTime
	}
}

// Tic drives one UI frame tick: run a whole emulated frame, unless
// paused, in which case an armed single step still executes exactly
// one instruction before re-pausing. Kept under this name so the demo
// frontend's per-Update call reads the way the console's debug
// controls (pause / step) are named.
func (c *Console) Tic() {
	if c.stepArmed {
		c.AdvanceInstruction()
		c.stepArmed = false
		c.paused = true
		return
	}
	if c.paused {
		return
	}
	c.AdvanceFrame()
}

// TooglePause toggles whether Tic/Update advance the emulation at
// all. The spelling matches the call in internal/ui, which binds it to
// the P key.
func (c *Console) TooglePause() {
	c.paused = !c.paused
}

// OneStepAndStop arms a single full instruction to run on the next
// Tic/Update call, after which the console re-pauses. Calling it
// while already paused is the normal case (the debug UI's "R" key);
// calling it while running makes the next Tic/Update run that single
// instruction instead of a frame, leaving the console paused.
func (c *Console) OneStepAndStop() {
	c.stepArmed = true
}

// DebugInfo snapshots the CPU's register file for the debug overlay.
func (c *Console) DebugInfo() CPUState {
	return c.cpu.State()
}

// Disassemble returns the disassembly computed at cartridge load time
// (the address space a cartridge exposes doesn't change once loaded,
// so the mapping never needs recomputing here).
func (c *Console) Disassemble() map[uint16]string {
	return c.disasm
}

// Screen returns the PPU's live framebuffer as an image.Image, ready
// for a frontend to hand to its own image type (e.g.
// ebiten.NewImageFromImage).
func (c *Console) Screen() image.Image {
	return c.ppu.Frame()
}

// GetColorFromPalette resolves palette entry j of palette set i to an
// image/color.Color, for a debug UI rendering palette swatches.
func (c *Console) GetColorFromPalette(i, j uint8) color.Color {
	return unpackRGBA(c.ppu.GetColorFromPalette(i, j))
}

// GetPatternTable renders pattern table `table` (0 or 1) tinted with
// palette `palette` as a 128x128 image, for a debug UI's tile viewer.
func (c *Console) GetPatternTable(palette uint8, table int) image.Image {
	pixels := c.ppu.GetPatternTable(table, palette)
	img := image.NewRGBA(image.Rect(0, 0, 128, 128))
	for y := 0; y < 128; y++ {
		for x := 0; x < 128; x++ {
			img.Set(x, y, unpackRGBA(pixels[y*128+x]))
		}
	}
	return img
}
