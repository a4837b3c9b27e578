// Package delay implements blocking delays on the 64-bit SysTick counter of
// the QingKe V4 core.
//
// The counter is clocked from HCLK/8 unless STCLK is set; pass the matching
// frequency to New, for example rcc.Clocks.SysTick.
package delay

import (
	"math"
	"time"

	"golang.org/x/exp/constraints"

	"github.com/ch32go/hal/device"
	"github.com/ch32go/hal/rcc"
)

const (
	badNegative = "delay: negative duration"
	badRange    = "delay: duration out of range"
)

// start enables the counter, counting down from CMP after reloading it.
const start = device.SYSTICK_CTLR_STE | device.SYSTICK_CTLR_MODE | device.SYSTICK_CTLR_INIT

// Delay is a busy-wait delay provider. It owns the SysTick counter: two
// delays must never run at the same time, for example from main code and an
// interrupt handler.
type Delay struct {
	hw        *device.SYSTICK_Type
	frequency uint32
}

// New returns a delay provider for a SysTick running at frequency.
func New(frequency rcc.Hertz) *Delay {
	return &Delay{
		hw:        device.SYSTICK,
		frequency: frequency.Raw(),
	}
}

// Frequency returns the SysTick frequency the delay was configured with.
func (d *Delay) Frequency() rcc.Hertz {
	return rcc.Hertz(d.frequency)
}

// DelayUs blocks for us microseconds.
func (d *Delay) DelayUs(us uint32) {
	d.wait(ticks(us, d.frequency, 1_000_000))
}

// DelayMs blocks for ms milliseconds.
func (d *Delay) DelayMs(ms uint32) {
	d.wait(ticks(ms, d.frequency, 1_000))
}

// Sleep blocks for dur, rounded down to whole microseconds.
func (d *Delay) Sleep(dur time.Duration) {
	if dur < 0 {
		panic(badNegative)
	}
	for ms := dur / time.Millisecond; ms > 0; {
		n := min(ms, math.MaxUint32)
		d.DelayMs(uint32(n))
		ms -= n
	}
	if us := dur % time.Millisecond / time.Microsecond; us > 0 {
		d.DelayUs(uint32(us))
	}
}

// ticks converts n units, perSecond of which make a second, into counter
// ticks. The product is taken in 64 bits so large counts at high frequencies
// do not overflow.
func ticks(n, frequency, perSecond uint32) uint64 {
	return uint64(n) * uint64(frequency) / uint64(perSecond)
}

// wait counts down from ticks and spins until the compare flag is raised.
// A zero count matches right away.
func (d *Delay) wait(ticks uint64) {
	hw := d.hw
	hw.SR.ClearBits(device.SYSTICK_SR_CNTIF)
	hw.CMP.Set(ticks)
	hw.CTLR.SetBits(start)
	for !hw.SR.HasBits(device.SYSTICK_SR_CNTIF) {
	}
	hw.CTLR.ClearBits(device.SYSTICK_CTLR_STE)
}

// Us blocks for us microseconds. It accepts any integer type and panics,
// before touching the counter, if us is negative or does not fit in 32 bits.
func Us[T constraints.Integer](d *Delay, us T) {
	d.DelayUs(toUint32(us))
}

// Ms blocks for ms milliseconds, with the same checks as Us.
func Ms[T constraints.Integer](d *Delay, ms T) {
	d.DelayMs(toUint32(ms))
}

func toUint32[T constraints.Integer](n T) uint32 {
	if n < 0 {
		panic(badNegative)
	}
	if uint64(n) > math.MaxUint32 {
		panic(badRange)
	}
	return uint32(n)
}
