// Package rcc holds the reset and clock control side of the HAL: the
// frequencies handed over by clock configuration and the per-peripheral
// reset/enable tokens.
package rcc

//go:generate go run ./internal/genrec -o rec_gen.go

// Hertz is a frequency in cycles per second.
type Hertz uint32

// Hz returns n Hertz.
func Hz(n uint32) Hertz { return Hertz(n) }

// KHz returns n kilohertz.
func KHz(n uint32) Hertz { return Hertz(n * 1_000) }

// MHz returns n megahertz.
func MHz(n uint32) Hertz { return Hertz(n * 1_000_000) }

// Raw returns the frequency as a plain integer.
func (f Hertz) Raw() uint32 { return uint32(f) }

// Clocks are the bus frequencies produced by clock configuration. The HAL
// does not program the clock tree; it only consumes these values.
type Clocks struct {
	SYSCLK Hertz
	HCLK   Hertz
	PCLK1  Hertz
	PCLK2  Hertz
}

// HSI is the frequency of the internal RC oscillator the chip boots from.
const HSI = Hertz(8_000_000)

// ResetClocks returns the clocks right after reset: everything runs from HSI
// without prescaling.
func ResetClocks() Clocks {
	return Clocks{SYSCLK: HSI, HCLK: HSI, PCLK1: HSI, PCLK2: HSI}
}

// SysTick returns the SysTick time base with STCLK cleared, HCLK/8.
func (c Clocks) SysTick() Hertz {
	return c.HCLK / 8
}
