package gpio

// mode is implemented by the zero-size markers below. Each one carries the
// static attributes of a pin mode.
type mode interface {
	// code is the 4-bit configuration field, CNF in bits 2..3 and MODE in
	// bits 0..1. Outputs are configured at 2 MHz.
	code() uint32
	pull() pull
}

type pull uint8

const (
	pullNone pull = iota
	pullDown
	pullUp
)

type (
	analogMode             struct{}
	floatingInputMode      struct{}
	pullDownInputMode      struct{}
	pullUpInputMode        struct{}
	pushPullOutputMode     struct{}
	openDrainOutputMode    struct{}
	pushPullAlternateMode  struct{}
	openDrainAlternateMode struct{}
)

func (analogMode) code() uint32             { return 0b00_00 }
func (floatingInputMode) code() uint32      { return 0b01_00 }
func (pullDownInputMode) code() uint32      { return 0b10_00 }
func (pullUpInputMode) code() uint32        { return 0b10_00 }
func (pushPullOutputMode) code() uint32     { return 0b00_10 }
func (openDrainOutputMode) code() uint32    { return 0b01_10 }
func (pushPullAlternateMode) code() uint32  { return 0b10_10 }
func (openDrainAlternateMode) code() uint32 { return 0b11_10 }

func (analogMode) pull() pull             { return pullNone }
func (floatingInputMode) pull() pull      { return pullNone }
func (pullDownInputMode) pull() pull      { return pullDown }
func (pullUpInputMode) pull() pull        { return pullUp }
func (pushPullOutputMode) pull() pull     { return pullNone }
func (openDrainOutputMode) pull() pull    { return pullNone }
func (pushPullAlternateMode) pull() pull  { return pullNone }
func (openDrainAlternateMode) pull() pull { return pullNone }

// Analog is a pin in analog mode. It can be neither read nor driven.
type Analog struct{ pin[analogMode] }

// FloatingInput is an input without pull resistor.
type FloatingInput struct{ readable[floatingInputMode] }

// PullDownInput is an input with the pull-down resistor enabled.
type PullDownInput struct{ readable[pullDownInputMode] }

// PullUpInput is an input with the pull-up resistor enabled.
type PullUpInput struct{ readable[pullUpInputMode] }

// PushPullOutput is a push-pull output.
type PushPullOutput struct{ adjustable[pushPullOutputMode] }

// OpenDrainOutput is an open-drain output. Its level can be read back.
type OpenDrainOutput struct{ readable[openDrainOutputMode] }

// SetSpeed sets the output speed.
func (p OpenDrainOutput) SetSpeed(speed Speed) { p.setSpeed(speed) }

// PushPullAlternate is a push-pull pin driven by another peripheral.
type PushPullAlternate struct {
	adjustable[pushPullAlternateMode]
}

// OpenDrainAlternate is an open-drain pin driven by another peripheral.
type OpenDrainAlternate struct {
	adjustable[openDrainAlternateMode]
}

// Debugger is the mode of the debug interface pins after reset.
type Debugger = PushPullAlternate

// setMode moves pin num of port from mode From to mode To.
//
// The configuration field is only rewritten when the codes differ. The
// rewrite is a read-modify-write of a register shared by eight pins and is
// not protected against interrupts: pins sharing a configuration register
// must not be reconfigured from different contexts at the same time.
func setMode[From, To mode](port Port, num uint8) {
	var (
		from From
		to   To
	)
	hw := port.hw()
	if from.code() != to.code() {
		reg := &hw.CFGLR
		if num >= 8 {
			reg = &hw.CFGHR
		}
		reg.ReplaceBits(to.code(), 0b1111, 4*(num%8))
	}

	// The pull direction is selected through the output latch.
	switch to.pull() {
	case pullDown:
		hw.BCR.Set(1 << num)
	case pullUp:
		hw.BSHR.Set(1 << num)
	}
}

func into[To, From mode](p pin[From]) pin[To] {
	setMode[From, To](p.port, p.num)
	return pin[To]{port: p.port, num: p.num}
}

// IntoAnalog configures the pin as an analog pin.
func (p pin[M]) IntoAnalog() Analog {
	return Analog{into[analogMode](p)}
}

// IntoFloatingInput configures the pin as a floating input.
func (p pin[M]) IntoFloatingInput() FloatingInput {
	return FloatingInput{readable[floatingInputMode]{active[floatingInputMode]{into[floatingInputMode](p)}}}
}

// IntoPullDownInput configures the pin as an input with pull-down resistor.
func (p pin[M]) IntoPullDownInput() PullDownInput {
	return PullDownInput{readable[pullDownInputMode]{active[pullDownInputMode]{into[pullDownInputMode](p)}}}
}

// IntoPullUpInput configures the pin as an input with pull-up resistor.
func (p pin[M]) IntoPullUpInput() PullUpInput {
	return PullUpInput{readable[pullUpInputMode]{active[pullUpInputMode]{into[pullUpInputMode](p)}}}
}

// IntoPushPullOutput configures the pin as a push-pull output. The output
// keeps whatever level its latch held.
func (p pin[M]) IntoPushPullOutput() PushPullOutput {
	return PushPullOutput{adjustable[pushPullOutputMode]{active[pushPullOutputMode]{into[pushPullOutputMode](p)}}}
}

// IntoPushPullOutputWithState sets the output latch to state and then
// configures the pin as a push-pull output, so the pin never drives the
// wrong level.
func (p pin[M]) IntoPushPullOutputWithState(state PinState) PushPullOutput {
	p.setState(state)
	return p.IntoPushPullOutput()
}

// IntoOpenDrainOutput configures the pin as an open-drain output.
func (p pin[M]) IntoOpenDrainOutput() OpenDrainOutput {
	return OpenDrainOutput{readable[openDrainOutputMode]{active[openDrainOutputMode]{into[openDrainOutputMode](p)}}}
}

// IntoOpenDrainOutputWithState sets the output latch to state and then
// configures the pin as an open-drain output.
func (p pin[M]) IntoOpenDrainOutputWithState(state PinState) OpenDrainOutput {
	p.setState(state)
	return p.IntoOpenDrainOutput()
}

// IntoPushPullAlternate hands the pin to a peripheral as a push-pull output.
func (p pin[M]) IntoPushPullAlternate() PushPullAlternate {
	return PushPullAlternate{adjustable[pushPullAlternateMode]{active[pushPullAlternateMode]{into[pushPullAlternateMode](p)}}}
}

// IntoOpenDrainAlternate hands the pin to a peripheral as an open-drain output.
func (p pin[M]) IntoOpenDrainAlternate() OpenDrainAlternate {
	return OpenDrainAlternate{adjustable[openDrainAlternateMode]{active[openDrainAlternateMode]{into[openDrainAlternateMode](p)}}}
}

func floatingInput(port Port, num uint8) FloatingInput {
	return FloatingInput{readable[floatingInputMode]{active[floatingInputMode]{pin[floatingInputMode]{port: port, num: num}}}}
}
