// Package softspi is a bit-banged SPI master on GPIO pins.
//
// The bus implements tinygo.org/x/drivers.SPI, so device drivers written
// against that interface run on any three free pins:
//
//	sck := gpioa.PA5.IntoPushPullOutput()
//	sdo := gpioa.PA7.IntoPushPullOutput()
//	sdi := gpioa.PA6.IntoPullUpInput()
//	bus := softspi.New(sck, sdo, sdi, delay.New(clocks.SysTick()))
//	err := bus.Configure(softspi.Config{Frequency: 100_000})
package softspi

import (
	"errors"

	"tinygo.org/x/drivers"
)

var (
	ErrInvalidMode    = errors.New("softspi: invalid mode")
	ErrLengthMismatch = errors.New("softspi: tx and rx buffers differ in length")
)

// DefaultFrequency is used when Config.Frequency is zero.
const DefaultFrequency = 100_000

// Output is a pin the bus drives: SCK and SDO. gpio.PushPullOutput and
// gpio.OpenDrainOutput qualify.
type Output interface {
	SetHigh()
	SetLow()
}

// Input is the pin the bus samples: SDI. Any readable gpio pin qualifies.
type Input interface {
	IsHigh() bool
}

// Delayer times the clock. *delay.Delay qualifies.
type Delayer interface {
	DelayUs(us uint32)
}

// Config is the bus configuration.
type Config struct {
	// Frequency is the SCK frequency in Hz. The achievable rate is bounded by
	// the 1 µs delay resolution.
	Frequency uint32
	// Mode is the SPI mode, 0 to 3: bit 1 is CPOL, bit 0 is CPHA.
	Mode     uint8
	LSBFirst bool
}

// Bus is a software SPI master.
type Bus struct {
	sck, sdo Output
	sdi      Input
	delay    Delayer

	cpol, cpha bool
	lsbFirst   bool
	halfPeriod uint32 // µs
}

var _ drivers.SPI = (*Bus)(nil)

// New returns a bus on the given pins, configured for mode 0 at
// DefaultFrequency. sdi may be nil for a write-only bus; reads then return 0.
func New(sck, sdo Output, sdi Input, delay Delayer) *Bus {
	b := &Bus{sck: sck, sdo: sdo, sdi: sdi, delay: delay}
	b.Configure(Config{})
	return b
}

// Configure sets the bus mode and speed and moves SCK to its idle level.
func (b *Bus) Configure(cfg Config) error {
	if cfg.Mode > 3 {
		return ErrInvalidMode
	}
	if cfg.Frequency == 0 {
		cfg.Frequency = DefaultFrequency
	}
	b.cpol = cfg.Mode&0b10 != 0
	b.cpha = cfg.Mode&0b01 != 0
	b.lsbFirst = cfg.LSBFirst
	b.halfPeriod = max(500_000/cfg.Frequency, 1)
	b.clock(false)
	return nil
}

// Transfer writes w and returns the byte read at the same time.
func (b *Bus) Transfer(w byte) (byte, error) {
	return b.transfer(w), nil
}

// Tx writes w while reading into r. Either may be nil: a nil w sends zeros
// and a nil r discards what is read. Otherwise their lengths must match.
func (b *Bus) Tx(w, r []byte) error {
	switch {
	case w == nil:
		for i := range r {
			r[i] = b.transfer(0)
		}
	case r == nil:
		for _, c := range w {
			b.transfer(c)
		}
	case len(w) != len(r):
		return ErrLengthMismatch
	default:
		for i, c := range w {
			r[i] = b.transfer(c)
		}
	}
	return nil
}

func (b *Bus) transfer(w byte) (r byte) {
	for i := 0; i < 8; i++ {
		bit := 7 - i
		if b.lsbFirst {
			bit = i
		}
		out := w&(1<<bit) != 0
		if b.cpha {
			// Shift on the leading edge, sample on the trailing one.
			b.clock(true)
			b.write(out)
			b.delay.DelayUs(b.halfPeriod)
			b.clock(false)
			if b.read() {
				r |= 1 << bit
			}
			b.delay.DelayUs(b.halfPeriod)
		} else {
			b.write(out)
			b.delay.DelayUs(b.halfPeriod)
			b.clock(true)
			if b.read() {
				r |= 1 << bit
			}
			b.delay.DelayUs(b.halfPeriod)
			b.clock(false)
		}
	}
	return r
}

// clock drives SCK to its active level, or to idle when active is false.
func (b *Bus) clock(active bool) {
	if active != b.cpol {
		b.sck.SetHigh()
	} else {
		b.sck.SetLow()
	}
}

func (b *Bus) write(high bool) {
	if high {
		b.sdo.SetHigh()
	} else {
		b.sdo.SetLow()
	}
}

func (b *Bus) read() bool {
	return b.sdi != nil && b.sdi.IsHigh()
}
