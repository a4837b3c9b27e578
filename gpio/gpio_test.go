package gpio

import (
	"testing"

	"github.com/ch32go/hal/device"
	"github.com/ch32go/hal/rcc"
)

// latch applies BSHR and BCR to OUTDR the way the port hardware does and
// clears them again. Set wins over reset when both bits are written.
func latch(hw *device.GPIO_Type) {
	bshr, bcr := hw.BSHR.Get(), hw.BCR.Get()
	out := hw.OUTDR.Get()
	out &^= bshr >> 16
	out &^= bcr & 0xFFFF
	out |= bshr & 0xFFFF
	hw.OUTDR.Set(out)
	hw.BSHR.Set(0)
	hw.BCR.Set(0)
}

var transitions = []struct {
	name string
	code uint32
	pull pull
	into func(FloatingInput)
}{
	{"Analog", 0b0000, pullNone, func(p FloatingInput) { p.IntoAnalog() }},
	{"FloatingInput", 0b0100, pullNone, func(p FloatingInput) { p.IntoFloatingInput() }},
	{"PullDownInput", 0b1000, pullDown, func(p FloatingInput) { p.IntoPullDownInput() }},
	{"PullUpInput", 0b1000, pullUp, func(p FloatingInput) { p.IntoPullUpInput() }},
	{"PushPullOutput", 0b0010, pullNone, func(p FloatingInput) { p.IntoPushPullOutput() }},
	{"OpenDrainOutput", 0b0110, pullNone, func(p FloatingInput) { p.IntoOpenDrainOutput() }},
	{"PushPullAlternate", 0b1010, pullNone, func(p FloatingInput) { p.IntoPushPullAlternate() }},
	{"OpenDrainAlternate", 0b1110, pullNone, func(p FloatingInput) { p.IntoOpenDrainAlternate() }},
}

func TestIntoModeConfig(t *testing.T) {
	// Other pins hold arbitrary codes; the pin under test is at its reset code.
	const background = 0x9B3F_6E21
	for _, tc := range transitions {
		for num := uint8(0); num < 16; num++ {
			device.ResetSimulation()
			hw := device.GPIOC
			offset := 4 * uint32(num%8)
			target, other := &hw.CFGLR, &hw.CFGHR
			if num >= 8 {
				target, other = other, target
			}
			target.Set(background&^(0xF<<offset) | 0b0100<<offset)
			other.Set(background)

			tc.into(floatingInput(PortC, num))

			got := target.Get()
			if field := got >> offset & 0xF; field != tc.code {
				t.Errorf("%s pin %d: field = %#04b, want %#04b", tc.name, num, field, tc.code)
			}
			if got&^(0xF<<offset) != background&^(0xF<<offset) {
				t.Errorf("%s pin %d: other fields changed: %#x", tc.name, num, got)
			}
			if other.Get() != background {
				t.Errorf("%s pin %d: wrong config register touched: %#x", tc.name, num, other.Get())
			}
		}
	}
}

func TestIntoModePull(t *testing.T) {
	for _, tc := range transitions {
		for num := uint8(0); num < 16; num++ {
			device.ResetSimulation()
			hw := device.GPIOD
			tc.into(floatingInput(PortD, num))

			var wantBSHR, wantBCR uint32
			switch tc.pull {
			case pullDown:
				wantBCR = 1 << num
			case pullUp:
				wantBSHR = 1 << num
			}
			if got := hw.BSHR.Get(); got != wantBSHR {
				t.Errorf("%s pin %d: BSHR = %#x, want %#x", tc.name, num, got, wantBSHR)
			}
			if got := hw.BCR.Get(); got != wantBCR {
				t.Errorf("%s pin %d: BCR = %#x, want %#x", tc.name, num, got, wantBCR)
			}
		}
	}
}

func TestPullSwitchKeepsConfig(t *testing.T) {
	device.ResetSimulation()
	hw := device.GPIOB
	down := floatingInput(PortB, 3).IntoPullDownInput()
	latch(hw)
	if hw.OUTDR.HasBits(1 << 3) {
		t.Fatal("pull-down left ODR bit set")
	}

	// Same configuration code: only the latch may be written.
	hw.CFGLR.Set(0x1234_5678)
	up := down.IntoPullUpInput()
	if got := hw.CFGLR.Get(); got != 0x1234_5678 {
		t.Fatalf("CFGLR rewritten: %#x", got)
	}
	latch(hw)
	if !hw.OUTDR.HasBits(1 << 3) {
		t.Fatal("pull-up did not set ODR bit")
	}
	if up.Number() != 3 || up.Port() != PortB {
		t.Fatalf("identity lost: %v", up)
	}
}

func TestSetSpeed(t *testing.T) {
	tests := []struct {
		num   uint8
		speed Speed
	}{
		{0, SpeedHigh},
		{7, SpeedMedium},
		{8, SpeedLow},
		{15, SpeedHigh},
	}
	for _, tc := range tests {
		device.ResetSimulation()
		hw := device.GPIOA
		out := floatingInput(PortA, tc.num).IntoOpenDrainOutput()
		out.SetSpeed(tc.speed)

		reg := &hw.CFGLR
		if tc.num >= 8 {
			reg = &hw.CFGHR
		}
		offset := 4 * uint32(tc.num%8)
		want := 0b0100 | uint32(tc.speed)
		if field := reg.Get() >> offset & 0xF; field != want {
			t.Errorf("pin %d: field = %#04b, want %#04b", tc.num, field, want)
		}
		if reg.Get()&^(0xF<<offset) != device.GPIO_CFGR_ResetValue&^(0xF<<offset) {
			t.Errorf("pin %d: neighbours changed: %#x", tc.num, reg.Get())
		}
	}

	device.ResetSimulation()
	alt := floatingInput(PortE, 12).IntoPushPullAlternate()
	alt.SetSpeed(SpeedHigh)
	if field := device.GPIOE.CFGHR.Get() >> 16 & 0xF; field != 0b1011 {
		t.Errorf("alternate field = %#04b", field)
	}
}

func TestOutputWrites(t *testing.T) {
	device.ResetSimulation()
	hw := device.GPIOC
	led := floatingInput(PortC, 13).IntoPushPullOutput()

	led.SetHigh()
	if got := hw.BSHR.Get(); got != 1<<13 {
		t.Fatalf("SetHigh wrote BSHR = %#x", got)
	}
	led.SetLow()
	if got := hw.BSHR.Get(); got != 1<<(16+13) {
		t.Fatalf("SetLow wrote BSHR = %#x", got)
	}
	led.SetState(High)
	if got := hw.BSHR.Get(); got != 1<<13 {
		t.Fatalf("SetState(High) wrote BSHR = %#x", got)
	}
}

func TestOutputRoundTrip(t *testing.T) {
	device.ResetSimulation()
	hw := device.GPIOB
	hw.OUTDR.Set(0xFFFF)
	p := floatingInput(PortB, 6).IntoOpenDrainOutput()

	p.SetLow()
	latch(hw)
	if !p.IsSetLow() || p.IsSetHigh() {
		t.Fatal("IsSetLow = false after SetLow")
	}
	if hw.OUTDR.Get() != 0xFFFF&^(1<<6) {
		t.Fatalf("other latch bits changed: %#x", hw.OUTDR.Get())
	}
	p.SetHigh()
	latch(hw)
	if p.IsSetLow() || !p.IsSetHigh() {
		t.Fatal("IsSetLow = true after SetHigh")
	}
}

func TestInputRead(t *testing.T) {
	device.ResetSimulation()
	hw := device.GPIOA
	in := floatingInput(PortA, 9).IntoPullUpInput()
	if !in.IsLow() || in.IsHigh() {
		t.Fatal("input reads high with INDR clear")
	}
	hw.INDR.Set(1 << 9)
	if in.IsLow() || !in.IsHigh() {
		t.Fatal("input reads low with INDR set")
	}
	// Reads have no side effects.
	if hw.BSHR.Get() != 1<<9 || hw.BCR.Get() != 0 || hw.OUTDR.Get() != 0 {
		t.Fatal("read touched output registers")
	}
}

func TestWithState(t *testing.T) {
	device.ResetSimulation()
	hw := device.GPIOD
	p := floatingInput(PortD, 2).IntoPushPullOutputWithState(High)
	if hw.BSHR.Get() != 1<<2 {
		t.Fatalf("BSHR = %#x", hw.BSHR.Get())
	}
	if field := hw.CFGLR.Get() >> 8 & 0xF; field != 0b0010 {
		t.Fatalf("field = %#04b", field)
	}
	od := p.IntoOpenDrainOutputWithState(Low)
	latch(hw)
	if !od.IsSetLow() {
		t.Fatal("latch not low")
	}
}

func TestCapabilities(t *testing.T) {
	type (
		driver   interface{ SetHigh() }
		reader   interface{ IsLow() bool }
		speeder  interface{ SetSpeed(Speed) }
		switcher interface{ IntoAnalog() Analog }
	)
	tests := []struct {
		pin                   any
		drive, read, setSpeed bool
	}{
		{Analog{}, false, false, false},
		{FloatingInput{}, true, true, false},
		{PullDownInput{}, true, true, false},
		{PullUpInput{}, true, true, false},
		{PushPullOutput{}, true, false, true},
		{OpenDrainOutput{}, true, true, true},
		{PushPullAlternate{}, true, false, true},
		{OpenDrainAlternate{}, true, false, true},
	}
	for _, tc := range tests {
		if _, ok := tc.pin.(driver); ok != tc.drive {
			t.Errorf("%T: drive = %v", tc.pin, ok)
		}
		if _, ok := tc.pin.(reader); ok != tc.read {
			t.Errorf("%T: read = %v", tc.pin, ok)
		}
		if _, ok := tc.pin.(speeder); ok != tc.setSpeed {
			t.Errorf("%T: set speed = %v", tc.pin, ok)
		}
		if _, ok := tc.pin.(switcher); !ok {
			t.Errorf("%T: cannot change mode", tc.pin)
		}
	}
}

func TestSplit(t *testing.T) {
	device.ResetSimulation()
	rec := new(rcc.PeripheralREC)

	b := SplitB(device.GPIOB, &rec.GPIOB)
	hw := device.GPIOB
	if hw.CFGLR.Get() != device.GPIO_CFGR_ResetValue || hw.CFGHR.Get() != device.GPIO_CFGR_ResetValue ||
		hw.BSHR.Get() != 0 || hw.BCR.Get() != 0 {
		t.Fatal("SplitB wrote registers")
	}
	if b.PB0.String() != "PB0" || b.PB15.String() != "PB15" || b.PB7.Number() != 7 {
		t.Fatalf("unexpected pins %v %v %v", b.PB0, b.PB15, b.PB7)
	}

	a := SplitA(device.GPIOA, &rec.GPIOA)
	hw = device.GPIOA
	if hw.CFGLR.Get() != device.GPIO_CFGR_ResetValue {
		t.Fatalf("CFGLR = %#x", hw.CFGLR.Get())
	}
	if got := hw.CFGHR.Get(); got != 0x4AA44444 {
		t.Fatalf("CFGHR = %#x, want debug pins in alternate mode", got)
	}
	if a.PA13.String() != "PA13" || a.PA14.Number() != 14 {
		t.Fatalf("unexpected debug pins %v %v", a.PA13, a.PA14)
	}

	c := SplitC(device.GPIOC, &rec.GPIOC)
	d := SplitD(device.GPIOD, &rec.GPIOD)
	e := SplitE(device.GPIOE, &rec.GPIOE)
	if c.PC13.Port() != PortC || d.PD2.Port() != PortD || e.PE15.Port() != PortE {
		t.Fatal("pins attached to wrong ports")
	}
}

func TestSplitWrongBlock(t *testing.T) {
	rec := new(rcc.PeripheralREC)
	defer func() {
		if r := recover(); r != badPortHandle {
			t.Fatalf("recovered %v, want %q", r, badPortHandle)
		}
	}()
	SplitC(device.GPIOD, &rec.GPIOC)
}

func TestUnknownPort(t *testing.T) {
	defer func() {
		if r := recover(); r != badPort {
			t.Fatalf("recovered %v, want %q", r, badPort)
		}
	}()
	floatingInput(Port(7), 0).SetHigh()
}

func TestPortString(t *testing.T) {
	for port, want := range map[Port]string{PortA: "PA", PortC: "PC", PortE: "PE", Port(9): "P?"} {
		if got := port.String(); got != want {
			t.Errorf("Port(%d) = %q, want %q", port, got, want)
		}
	}
}
