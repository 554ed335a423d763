package nes

// AddressRange is an inclusive closed interval over the 16-bit address
// space.
type AddressRange struct {
	Low  uint16
	High uint16
}

func (r AddressRange) contains(addr uint16) bool {
	return addr >= r.Low && addr <= r.High
}

func (r AddressRange) overlaps(other AddressRange) bool {
	return r.Low <= other.High && other.Low <= r.High
}

// length returns the number of addresses covered by the range.
// A full 0x0000-0xFFFF range reports 0x10000 even though that doesn't
// fit in a uint16, so the return type is int.
func (r AddressRange) length() int {
	return int(r.High) - int(r.Low) + 1
}

// AddressableDevice is the mandatory read/write contract every device
// bound to a Bus implements. Devices that don't respond to reads
// return 0; devices that don't respond to writes ignore them.
type AddressableDevice interface {
	Read(addr uint16) uint8
	Write(addr uint16, value uint8)
}

type deviceBinding struct {
	rang   AddressRange
	device AddressableDevice
}

// Bus dispatches reads and writes to the first attached device whose
// range contains the address. Ranges attached to one bus must be
// pairwise disjoint; Attach validates this at registration time.
// A linear scan is sufficient: real buses in this core carry at most a
// handful of devices.
type Bus struct {
	devices []deviceBinding
}

// NewBus returns an empty Bus. Devices are wired in with Attach.
func NewBus() *Bus {
	return &Bus{}
}

// Attach registers a device for the given range. It fails with
// ErrBusOverlap if the range intersects one already registered, and
// with ErrAddressRangeNotMultipleOfMemorySize if device is a *RAM whose
// size doesn't evenly divide the range length.
func (b *Bus) Attach(rang AddressRange, device AddressableDevice) error {
	for _, existing := range b.devices {
		if existing.rang.overlaps(rang) {
			return ErrBusOverlap
		}
	}
	if ram, ok := device.(*RAM); ok {
		if err := validateRAMRange(rang, len(ram.mem)); err != nil {
			return err
		}
	}
	b.devices = append(b.devices, deviceBinding{rang: rang, device: device})
	return nil
}

func (b *Bus) find(addr uint16) AddressableDevice {
	for _, d := range b.devices {
		if d.rang.contains(addr) {
			return d.device
		}
	}
	return nil
}

// Read returns the value produced by the first device whose range
// contains addr, or 0 if no device matches.
func (b *Bus) Read(addr uint16) uint8 {
	if d := b.find(addr); d != nil {
		return d.Read(addr)
	}
	return 0
}

// ReadDMA is identical to Read; it exists so DMA transfers make their
// bus access explicit at call sites.
func (b *Bus) ReadDMA(addr uint16) uint8 {
	return b.Read(addr)
}

// Write delivers data to the first matching device. No match is a
// silent no-op.
func (b *Bus) Write(addr uint16, value uint8) {
	if d := b.find(addr); d != nil {
		d.Write(addr, value)
	}
}
