package rcc

import (
	"errors"
	"sync/atomic"

	"github.com/ch32go/hal/critical"
	"github.com/ch32go/hal/device"
)

// ErrTaken is returned by Take after the tokens have already been handed out.
var ErrTaken = errors.New("rcc: peripheral tokens already taken")

const (
	badBus                = "rcc: invalid bus"
	adcClockUnimplemented = "rcc: ADC clock selection not implemented"
)

// Bus is the peripheral bus whose enable and reset registers hold a
// peripheral's control bits.
type Bus uint8

const (
	APB1 Bus = iota + 1
	APB2
)

func (b Bus) String() string {
	switch b {
	case APB1:
		return "APB1"
	case APB2:
		return "APB2"
	}
	return "invalid"
}

// registers returns the clock enable and reset registers of the bus.
func (b Bus) registers() (enr, rstr *device.Register32) {
	switch b {
	case APB1:
		return &device.RCC.APB1PCENR, &device.RCC.APB1PRSTR
	case APB2:
		return &device.RCC.APB2PCENR, &device.RCC.APB2PRSTR
	}
	panic(badBus)
}

// Peripheral describes where a peripheral's enable and reset bits live. The
// enable and reset registers of a bus share one bit layout.
type Peripheral struct {
	Name string
	Bus  Bus
	Bit  uint8
}

// The enable and reset registers pack the bits of many peripherals into one
// word, so every read-modify-write runs inside a critical section.

func (p Peripheral) enable() {
	critical.Free(func() {
		enr, _ := p.Bus.registers()
		enr.SetBits(1 << p.Bit)
	})
}

func (p Peripheral) disable() {
	critical.Free(func() {
		enr, _ := p.Bus.registers()
		enr.ClearBits(1 << p.Bit)
	})
}

// reset asserts the reset line. It is left asserted; clearing it is up to
// the caller.
func (p Peripheral) reset() {
	critical.Free(func() {
		_, rstr := p.Bus.registers()
		rstr.SetBits(1 << p.Bit)
	})
}

func (p Peripheral) isEnabled() bool {
	enr, _ := p.Bus.registers()
	return enr.HasBits(1 << p.Bit)
}

// Token is implemented by every reset and enable control token.
type Token interface {
	Peripheral() Peripheral
	IsEnabled() bool
}

var taken atomic.Bool

// Take returns the reset and enable control tokens of all peripherals. Only
// the first call succeeds; later calls return ErrTaken.
func Take() (*PeripheralREC, error) {
	if !taken.CompareAndSwap(false, true) {
		return nil, ErrTaken
	}
	return &PeripheralREC{}, nil
}

// MustTake is like Take but panics if the tokens were already taken.
func MustTake() *PeripheralREC {
	rec, err := Take()
	if err != nil {
		panic(err)
	}
	return rec
}

// ADCClkSel selects the ADC clock prescaler applied to PCLK2.
type ADCClkSel uint8

const (
	ADCClkDiv2 ADCClkSel = iota
	ADCClkDiv4
	ADCClkDiv6
	ADCClkDiv8
)

// SetADCClock selects the ADC clock prescaler.
//
// The register field behind this selection is not implemented yet and the
// call panics.
func (rec *PeripheralREC) SetADCClock(sel ADCClkSel) {
	panic(adcClockUnimplemented)
}

// noCopy may be embedded into structs which must not be copied
// after the first use.
//
// See https://golang.org/issues/8005#issuecomment-190753527
// for details.
type noCopy struct{}

// Lock is a no-op used by -copylocks checker from `go vet`.
func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
