package nes

// Button bit positions within the pressed-buttons mask, A in the most
// significant bit as spec §4.7 requires.
const (
	ButtonRight uint8 = 1 << iota
	ButtonLeft
	ButtonDown
	ButtonUp
	ButtonStart
	ButtonSelect
	ButtonB
	ButtonA
)

// ControlPad holds the currently pressed buttons and an 8-bit
// MSB-first shift register. A write latches the buttons into the
// register; a read drains one bit at a time.
type ControlPad struct {
	buttons uint8
	reg     piso
}

// NewControlPad returns a control pad with no buttons held.
func NewControlPad() *ControlPad {
	return &ControlPad{reg: newPISO(8)}
}

// SetButtons updates the bitmask the pad will latch on the next
// strobe write. The host may call this at any time; whichever value
// is current at the instant the game strobes the port is what gets
// latched.
func (c *ControlPad) SetButtons(mask uint8) {
	c.buttons = mask
}

func (c *ControlPad) latch() {
	c.reg.Load(c.buttons)
}

func (c *ControlPad) serialRead() uint8 {
	return c.reg.Output()
}

// Controller is anything a ControllerPort can drive: a strobe write
// and a one-bit-per-read serial output.
type Controller interface {
	latch()
	serialRead() uint8
}

var _ Controller = (*ControlPad)(nil)

// ControllerPort is mapped to a single CPU-bus address. A write
// forwards to the attached controller as a latch strobe; a read
// returns the controller's current serial bit, or 0 if nothing is
// attached. Controllers are hot-swappable.
type ControllerPort struct {
	controller Controller
}

// NewControllerPort returns an empty port.
func NewControllerPort() *ControllerPort {
	return &ControllerPort{}
}

// Attach hot-swaps the controller plugged into this port.
func (p *ControllerPort) Attach(c Controller) {
	p.controller = c
}

func (p *ControllerPort) Read(addr uint16) uint8 {
	if p.controller == nil {
		return 0
	}
	return p.controller.serialRead()
}

func (p *ControllerPort) Write(addr uint16, value uint8) {
	if p.controller == nil {
		return
	}
	p.controller.latch()
}
