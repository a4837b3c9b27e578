package gpio

import (
	"github.com/ch32go/hal/device"
	"github.com/ch32go/hal/rcc"
)

// checkPort panics unless hw is the register block of port.
func checkPort(port Port, hw *device.GPIO_Type) {
	if hw == nil || hw != port.hw() {
		panic(badPortHandle)
	}
}

// PartsA are the pins of GPIOA in their reset modes.
type PartsA struct {
	PA0  FloatingInput
	PA1  FloatingInput
	PA2  FloatingInput
	PA3  FloatingInput
	PA4  FloatingInput
	PA5  FloatingInput
	PA6  FloatingInput
	PA7  FloatingInput
	PA8  FloatingInput
	PA9  FloatingInput
	PA10 FloatingInput
	PA11 FloatingInput
	PA12 FloatingInput
	PA13 Debugger // SWDIO
	PA14 Debugger // SWCLK
	PA15 FloatingInput

	rec *rcc.Gpioa
}

// SplitA splits GPIOA into its pins. The port clock must already be enabled
// through rec; SplitA does not touch the clock.
//
// PA13 and PA14 belong to the debug interface and are switched to their
// alternate function. No other register is written.
func SplitA(hw *device.GPIO_Type, rec *rcc.Gpioa) *PartsA {
	checkPort(PortA, hw)
	return &PartsA{
		PA0:  floatingInput(PortA, 0),
		PA1:  floatingInput(PortA, 1),
		PA2:  floatingInput(PortA, 2),
		PA3:  floatingInput(PortA, 3),
		PA4:  floatingInput(PortA, 4),
		PA5:  floatingInput(PortA, 5),
		PA6:  floatingInput(PortA, 6),
		PA7:  floatingInput(PortA, 7),
		PA8:  floatingInput(PortA, 8),
		PA9:  floatingInput(PortA, 9),
		PA10: floatingInput(PortA, 10),
		PA11: floatingInput(PortA, 11),
		PA12: floatingInput(PortA, 12),
		PA13: floatingInput(PortA, 13).IntoPushPullAlternate(),
		PA14: floatingInput(PortA, 14).IntoPushPullAlternate(),
		PA15: floatingInput(PortA, 15),
		rec:  rec,
	}
}

// PartsB are the pins of GPIOB in their reset modes.
type PartsB struct {
	PB0  FloatingInput
	PB1  FloatingInput
	PB2  FloatingInput
	PB3  FloatingInput
	PB4  FloatingInput
	PB5  FloatingInput
	PB6  FloatingInput
	PB7  FloatingInput
	PB8  FloatingInput
	PB9  FloatingInput
	PB10 FloatingInput
	PB11 FloatingInput
	PB12 FloatingInput
	PB13 FloatingInput
	PB14 FloatingInput
	PB15 FloatingInput

	rec *rcc.Gpiob
}

// SplitB splits GPIOB into its pins. The port clock must already be enabled
// through rec; SplitB does not touch the clock. No register is written.
func SplitB(hw *device.GPIO_Type, rec *rcc.Gpiob) *PartsB {
	checkPort(PortB, hw)
	return &PartsB{
		PB0:  floatingInput(PortB, 0),
		PB1:  floatingInput(PortB, 1),
		PB2:  floatingInput(PortB, 2),
		PB3:  floatingInput(PortB, 3),
		PB4:  floatingInput(PortB, 4),
		PB5:  floatingInput(PortB, 5),
		PB6:  floatingInput(PortB, 6),
		PB7:  floatingInput(PortB, 7),
		PB8:  floatingInput(PortB, 8),
		PB9:  floatingInput(PortB, 9),
		PB10: floatingInput(PortB, 10),
		PB11: floatingInput(PortB, 11),
		PB12: floatingInput(PortB, 12),
		PB13: floatingInput(PortB, 13),
		PB14: floatingInput(PortB, 14),
		PB15: floatingInput(PortB, 15),
		rec:  rec,
	}
}

// PartsC are the pins of GPIOC in their reset modes.
type PartsC struct {
	PC0  FloatingInput
	PC1  FloatingInput
	PC2  FloatingInput
	PC3  FloatingInput
	PC4  FloatingInput
	PC5  FloatingInput
	PC6  FloatingInput
	PC7  FloatingInput
	PC8  FloatingInput
	PC9  FloatingInput
	PC10 FloatingInput
	PC11 FloatingInput
	PC12 FloatingInput
	PC13 FloatingInput
	PC14 FloatingInput
	PC15 FloatingInput

	rec *rcc.Gpioc
}

// SplitC splits GPIOC into its pins. The port clock must already be enabled
// through rec; SplitC does not touch the clock. No register is written.
func SplitC(hw *device.GPIO_Type, rec *rcc.Gpioc) *PartsC {
	checkPort(PortC, hw)
	return &PartsC{
		PC0:  floatingInput(PortC, 0),
		PC1:  floatingInput(PortC, 1),
		PC2:  floatingInput(PortC, 2),
		PC3:  floatingInput(PortC, 3),
		PC4:  floatingInput(PortC, 4),
		PC5:  floatingInput(PortC, 5),
		PC6:  floatingInput(PortC, 6),
		PC7:  floatingInput(PortC, 7),
		PC8:  floatingInput(PortC, 8),
		PC9:  floatingInput(PortC, 9),
		PC10: floatingInput(PortC, 10),
		PC11: floatingInput(PortC, 11),
		PC12: floatingInput(PortC, 12),
		PC13: floatingInput(PortC, 13),
		PC14: floatingInput(PortC, 14),
		PC15: floatingInput(PortC, 15),
		rec:  rec,
	}
}

// PartsD are the pins of GPIOD in their reset modes.
type PartsD struct {
	PD0  FloatingInput
	PD1  FloatingInput
	PD2  FloatingInput
	PD3  FloatingInput
	PD4  FloatingInput
	PD5  FloatingInput
	PD6  FloatingInput
	PD7  FloatingInput
	PD8  FloatingInput
	PD9  FloatingInput
	PD10 FloatingInput
	PD11 FloatingInput
	PD12 FloatingInput
	PD13 FloatingInput
	PD14 FloatingInput
	PD15 FloatingInput

	rec *rcc.Gpiod
}

// SplitD splits GPIOD into its pins. The port clock must already be enabled
// through rec; SplitD does not touch the clock. No register is written.
func SplitD(hw *device.GPIO_Type, rec *rcc.Gpiod) *PartsD {
	checkPort(PortD, hw)
	return &PartsD{
		PD0:  floatingInput(PortD, 0),
		PD1:  floatingInput(PortD, 1),
		PD2:  floatingInput(PortD, 2),
		PD3:  floatingInput(PortD, 3),
		PD4:  floatingInput(PortD, 4),
		PD5:  floatingInput(PortD, 5),
		PD6:  floatingInput(PortD, 6),
		PD7:  floatingInput(PortD, 7),
		PD8:  floatingInput(PortD, 8),
		PD9:  floatingInput(PortD, 9),
		PD10: floatingInput(PortD, 10),
		PD11: floatingInput(PortD, 11),
		PD12: floatingInput(PortD, 12),
		PD13: floatingInput(PortD, 13),
		PD14: floatingInput(PortD, 14),
		PD15: floatingInput(PortD, 15),
		rec:  rec,
	}
}

// PartsE are the pins of GPIOE in their reset modes.
type PartsE struct {
	PE0  FloatingInput
	PE1  FloatingInput
	PE2  FloatingInput
	PE3  FloatingInput
	PE4  FloatingInput
	PE5  FloatingInput
	PE6  FloatingInput
	PE7  FloatingInput
	PE8  FloatingInput
	PE9  FloatingInput
	PE10 FloatingInput
	PE11 FloatingInput
	PE12 FloatingInput
	PE13 FloatingInput
	PE14 FloatingInput
	PE15 FloatingInput

	rec *rcc.Gpioe
}

// SplitE splits GPIOE into its pins. The port clock must already be enabled
// through rec; SplitE does not touch the clock. No register is written.
func SplitE(hw *device.GPIO_Type, rec *rcc.Gpioe) *PartsE {
	checkPort(PortE, hw)
	return &PartsE{
		PE0:  floatingInput(PortE, 0),
		PE1:  floatingInput(PortE, 1),
		PE2:  floatingInput(PortE, 2),
		PE3:  floatingInput(PortE, 3),
		PE4:  floatingInput(PortE, 4),
		PE5:  floatingInput(PortE, 5),
		PE6:  floatingInput(PortE, 6),
		PE7:  floatingInput(PortE, 7),
		PE8:  floatingInput(PortE, 8),
		PE9:  floatingInput(PortE, 9),
		PE10: floatingInput(PortE, 10),
		PE11: floatingInput(PortE, 11),
		PE12: floatingInput(PortE, 12),
		PE13: floatingInput(PortE, 13),
		PE14: floatingInput(PortE, 14),
		PE15: floatingInput(PortE, 15),
		rec:  rec,
	}
}
