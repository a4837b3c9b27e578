package device

import "testing"

func TestRegister32Bits(t *testing.T) {
	var r Register32
	r.Set(0xF0F0_0000)
	r.SetBits(0x0000_000F)
	if got := r.Get(); got != 0xF0F0_000F {
		t.Fatalf("SetBits: got %#x", got)
	}
	r.ClearBits(0xF000_0000)
	if got := r.Get(); got != 0x00F0_000F {
		t.Fatalf("ClearBits: got %#x", got)
	}
	if !r.HasBits(0x0000_0001) || r.HasBits(0x0F00_0000) {
		t.Fatalf("HasBits wrong for %#x", r.Get())
	}
}

func TestRegister32ReplaceBits(t *testing.T) {
	tests := []struct {
		start uint32
		value uint32
		mask  uint32
		pos   uint8
		want  uint32
	}{
		{0x44444444, 0b0010, 0b1111, 0, 0x44444442},
		{0x44444444, 0b0010, 0b1111, 28, 0x24444444},
		{0x44444444, 0b11, 0b11, 4, 0x44444474},
		{0xFFFFFFFF, 0, 0b1111, 12, 0xFFFF0FFF},
		// Bits of value outside mask are dropped.
		{0, 0xFF, 0b1111, 8, 0x00000F00},
	}
	for _, tc := range tests {
		r := Register32{Reg: tc.start}
		r.ReplaceBits(tc.value, tc.mask, tc.pos)
		if got := r.Get(); got != tc.want {
			t.Errorf("ReplaceBits(%#x, %#b, %#b, %d) = %#x, want %#x", tc.start, tc.value, tc.mask, tc.pos, got, tc.want)
		}
	}
}

func TestRegister64(t *testing.T) {
	var r Register64
	r.Set(48_000_000 * 1000)
	if got := r.Get(); got != 48_000_000_000 {
		t.Fatalf("got %d", got)
	}
}

func TestResetSimulation(t *testing.T) {
	GPIOC.CFGLR.Set(0)
	GPIOC.BSHR.Set(1)
	RCC.APB2PCENR.Set(0xFF)
	SYSTICK.CMP.Set(12)
	ResetSimulation()
	if GPIOC.CFGLR.Get() != GPIO_CFGR_ResetValue || GPIOC.CFGHR.Get() != GPIO_CFGR_ResetValue {
		t.Errorf("GPIOC config not at reset value: %#x %#x", GPIOC.CFGLR.Get(), GPIOC.CFGHR.Get())
	}
	if GPIOC.BSHR.Get() != 0 || RCC.APB2PCENR.Get() != 0 || SYSTICK.CMP.Get() != 0 {
		t.Error("registers not cleared")
	}
}
