// Package gpio drives the general purpose I/O ports.
//
// Every pin mode is its own type. A pin can be:
//   - Analog
//   - FloatingInput, PullDownInput, PullUpInput
//   - PushPullOutput, OpenDrainOutput
//   - PushPullAlternate, OpenDrainAlternate (driven by another peripheral)
//
// Operations only exist on the modes that support them, so driving an analog
// pin or reading an output-only pin does not compile. Changing the mode
// returns a pin of the new type; the old value must not be used afterwards.
//
// After power on every pin is a floating input, except the debug pins which
// start in their alternate function.
package gpio

import (
	"strconv"

	"github.com/ch32go/hal/device"
)

const (
	badPort       = "gpio: unknown port"
	badPortHandle = "gpio: register block does not belong to port"
)

// Port identifies a GPIO port.
type Port uint8

const (
	PortA Port = iota
	PortB
	PortC
	PortD
	PortE
)

func (p Port) String() string {
	if p > PortE {
		return "P?"
	}
	return "P" + string(rune('A'+p))
}

func (p Port) hw() *device.GPIO_Type {
	switch p {
	case PortA:
		return device.GPIOA
	case PortB:
		return device.GPIOB
	case PortC:
		return device.GPIOC
	case PortD:
		return device.GPIOD
	case PortE:
		return device.GPIOE
	}
	panic(badPort)
}

// Speed is the maximum output frequency (slew rate) of an output pin.
type Speed uint8

const (
	SpeedMedium Speed = 0b01 // 10 MHz
	SpeedLow    Speed = 0b10 // 2 MHz
	SpeedHigh   Speed = 0b11 // 50 MHz
)

// PinState is the logic level of a pin.
type PinState bool

const (
	Low  PinState = false
	High PinState = true
)

// pin is the port and number shared by all pin types. M records the mode.
type pin[M mode] struct {
	port Port
	num  uint8
}

// Port returns the port the pin belongs to.
func (p pin[M]) Port() Port { return p.port }

// Number returns the pin number within its port, 0 to 15.
func (p pin[M]) Number() uint8 { return p.num }

// String returns the pin name, for example "PA5".
func (p pin[M]) String() string {
	return p.port.String() + strconv.Itoa(int(p.num))
}

// config returns the configuration register holding the pin's 4-bit field
// and the offset of that field.
func (p pin[M]) config() (*device.Register32, uint8) {
	hw := p.port.hw()
	offset := 4 * (p.num % 8)
	if p.num < 8 {
		return &hw.CFGLR, offset
	}
	return &hw.CFGHR, offset
}

// BSHR and BCR ignore zero bits, so these writes cannot disturb other pins.

func (p pin[M]) setHigh() {
	p.port.hw().BSHR.Set(1 << p.num)
}

func (p pin[M]) setLow() {
	p.port.hw().BSHR.Set(1 << (16 + p.num))
}

func (p pin[M]) setState(state PinState) {
	if state == High {
		p.setHigh()
	} else {
		p.setLow()
	}
}

func (p pin[M]) isSetLow() bool {
	return !p.port.hw().OUTDR.HasBits(1 << p.num)
}

func (p pin[M]) isLow() bool {
	return !p.port.hw().INDR.HasBits(1 << p.num)
}

// setSpeed rewrites the MODE bits of the pin's field. Like mode changes it
// is a read-modify-write of a register shared with seven other pins.
func (p pin[M]) setSpeed(speed Speed) {
	reg, offset := p.config()
	reg.ReplaceBits(uint32(speed), 0b11, offset)
}

// active pins can drive their output latch. All modes but Analog are active.
type active[M mode] struct{ pin[M] }

// SetHigh drives the pin high.
func (p active[M]) SetHigh() { p.setHigh() }

// SetLow drives the pin low.
func (p active[M]) SetLow() { p.setLow() }

// SetState drives the pin to state.
func (p active[M]) SetState(state PinState) { p.setState(state) }

// readable pins can sense their logic level.
type readable[M mode] struct{ active[M] }

// IsHigh reports whether the pin reads high.
func (p readable[M]) IsHigh() bool { return !p.isLow() }

// IsLow reports whether the pin reads low.
func (p readable[M]) IsLow() bool { return p.isLow() }

// IsSetHigh reports whether the output latch is set high.
func (p readable[M]) IsSetHigh() bool { return !p.isSetLow() }

// IsSetLow reports whether the output latch is set low.
func (p readable[M]) IsSetLow() bool { return p.isSetLow() }

// adjustable pins have a configurable output speed.
type adjustable[M mode] struct{ active[M] }

// SetSpeed sets the output speed.
func (p adjustable[M]) SetSpeed(speed Speed) { p.setSpeed(speed) }
