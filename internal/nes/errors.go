package nes

import (
	"errors"
	"fmt"
)

// ErrInvalidDataFormat is returned when an iNES image is missing its
// magic number or is truncated relative to its declared bank counts.
var ErrInvalidDataFormat = errors.New("nes: invalid iNES data format")

// ErrAddressRangeNotMultipleOfMemorySize is returned when a RAM device
// is attached to a range whose length isn't a multiple of its backing
// store size.
var ErrAddressRangeNotMultipleOfMemorySize = errors.New("nes: address range length is not a multiple of memory size")

// ErrBusOverlap is returned when two devices are attached to a Bus
// with overlapping address ranges.
var ErrBusOverlap = errors.New("nes: overlapping address ranges on bus")

// ErrMapperNotImplemented is returned when a cartridge requests a
// mapper id this core doesn't support.
func ErrMapperNotImplemented(id uint8) error {
	return fmt.Errorf("nes: mapper %d not implemented", id)
}

// ErrInvalidNumberOfProgramMemoryBanks is returned when a mapper
// rejects its program-bank count.
func ErrInvalidNumberOfProgramMemoryBanks(n int) error {
	return fmt.Errorf("nes: invalid number of program memory banks: %d", n)
}

// ErrInvalidNumberOfCharacterMemoryBanks is returned when a mapper
// rejects its character-bank count.
func ErrInvalidNumberOfCharacterMemoryBanks(n int) error {
	return fmt.Errorf("nes: invalid number of character memory banks: %d", n)
}
