package nes

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

const (
	inesMagic    = 0x1a53454e
	prgBankBytes = 0x4000
	chrBankBytes = 0x2000
	chrRAMBytes  = 0x2000
)

// Cartridge owns program and character memory, delegating address
// translation to a Mapper. It implements AddressableDevice so it can
// be attached directly to a Bus.
type Cartridge struct {
	prg []uint8
	chr []uint8

	prgBanks int
	chrBanks int
	mapperID uint8

	headerMirror  MirroringMode
	mapper        Mapper
	chrIsWritable bool // true when CHR is RAM (chrBanks == 0 in the header)
}

type inesHeader struct {
	Magic      uint32
	PrgRomSize uint8
	ChrRomSize uint8
	Flags6     uint8
	Flags7     uint8
	Flags8     uint8
	Flags9     uint8
	Flags10    uint8
	_          [5]uint8 // unused
}

// NewCartridgeFromFile reads an iNES (.nes) file from disk.
func NewCartridgeFromFile(path string) (*Cartridge, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("nes: couldn't open rom file: %w", err)
	}
	defer file.Close()
	return NewCartridgeFromINES(file)
}

// NewCartridgeFromINES parses an iNES image from r: 16-byte header,
// optional 512-byte trainer, then PRG and CHR banks.
func NewCartridgeFromINES(r io.Reader) (*Cartridge, error) {
	var header inesHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("%w: couldn't read header: %s", ErrInvalidDataFormat, err)
	}
	if header.Magic != inesMagic {
		return nil, ErrInvalidDataFormat
	}

	// flags6 bit 2 is the trainer-present flag.
	if header.Flags6&0x04 != 0 {
		if _, err := io.CopyN(io.Discard, r, 512); err != nil {
			return nil, fmt.Errorf("%w: couldn't skip trainer: %s", ErrInvalidDataFormat, err)
		}
	}

	// flags6 holds the mapper id's low nibble (high bits), flags7 the
	// high nibble.
	mapperID := (header.Flags7 & 0xf0) | (header.Flags6 >> 4)

	prgBanks := int(header.PrgRomSize)
	chrBanks := int(header.ChrRomSize)

	cart := &Cartridge{
		prg:          make([]uint8, prgBanks*prgBankBytes),
		prgBanks:     prgBanks,
		chrBanks:     chrBanks,
		mapperID:     mapperID,
		headerMirror: MirroringMode(header.Flags6 & 0x1),
	}

	if chrBanks == 0 {
		cart.chr = make([]uint8, chrRAMBytes)
		cart.chrIsWritable = true
	} else {
		cart.chr = make([]uint8, chrBanks*chrBankBytes)
	}

	mapper, err := NewMapper(mapperID, prgBanks, chrBanks)
	if err != nil {
		return nil, err
	}
	cart.mapper = mapper

	if n, err := io.ReadFull(r, cart.prg); n != len(cart.prg) || (err != nil && err != io.EOF) {
		return nil, fmt.Errorf("%w: program memory: expected %d bytes, read %d (%v)",
			ErrInvalidDataFormat, len(cart.prg), n, err)
	}
	if !cart.chrIsWritable {
		if n, err := io.ReadFull(r, cart.chr); n != len(cart.chr) || (err != nil && err != io.EOF) {
			return nil, fmt.Errorf("%w: character memory: expected %d bytes, read %d (%v)",
				ErrInvalidDataFormat, len(cart.chr), n, err)
		}
	}

	return cart, nil
}

// NewCartridgeFromBytes is a convenience wrapper over
// NewCartridgeFromINES for in-memory images (e.g. test fixtures).
func NewCartridgeFromBytes(data []byte) (*Cartridge, error) {
	return NewCartridgeFromINES(bytes.NewReader(data))
}

// Mirroring reports the mirroring mode in effect: the mapper's
// override if it has one, else the header's.
func (c *Cartridge) Mirroring() MirroringMode {
	if mode, ok := c.mapper.MirroringMode(); ok {
		return mode
	}
	return c.headerMirror
}

// Reset restores the mapper's initial bank selection.
func (c *Cartridge) Reset() {
	c.mapper.Reset()
}

// Read answers a CPU or PPU bus read by delegating address
// translation to the mapper.
func (c *Cartridge) Read(addr uint16) uint8 {
	result := c.mapper.Read(addr)
	if off, ok := result.IsProgram(); ok {
		return c.prg[off]
	}
	if off, ok := result.IsCharacter(); ok {
		return c.chr[off]
	}
	if v, ok := result.IsValue(); ok {
		return v
	}
	return 0
}

// Write answers a CPU or PPU bus write. A write that the mapper maps
// to program memory updates it directly, supporting test harnesses
// that program reset vectors at 0xFFFC/0xFFFD; a write mapped to
// character memory only lands when the cartridge carries CHR RAM.
func (c *Cartridge) Write(addr uint16, value uint8) {
	result := c.mapper.Write(value, addr)
	if off, ok := result.IsProgram(); ok {
		c.prg[off] = value
		return
	}
	if off, ok := result.IsCharacter(); ok {
		c.chr[off] = value
		return
	}
}
