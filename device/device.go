// Package device describes the memory-mapped register blocks of the CH32V3
// family that the rest of the HAL drives.
//
// Hardware builds (tinygo) map every block at its bus address. Host builds
// back the blocks with plain memory initialised to the documented reset
// values, which lets the drivers be exercised by ordinary Go tests.
package device

import "unsafe"

// Peripheral base addresses.
const (
	AFIO_BASE    = 0x40010000
	GPIOA_BASE   = 0x40010800
	GPIOB_BASE   = 0x40010C00
	GPIOC_BASE   = 0x40011000
	GPIOD_BASE   = 0x40011400
	GPIOE_BASE   = 0x40011800
	RCC_BASE     = 0x40021000
	SYSTICK_BASE = 0xE000F000
)

// General purpose I/O port.
type GPIO_Type struct {
	CFGLR Register32 // 0x00 configuration, pins 0..7
	CFGHR Register32 // 0x04 configuration, pins 8..15
	INDR  Register32 // 0x08 input data
	OUTDR Register32 // 0x0C output data
	BSHR  Register32 // 0x10 bit set (0..15) / bit reset (16..31)
	BCR   Register32 // 0x14 bit clear
	LCKR  Register32 // 0x18 configuration lock
}

// GPIO reset value of CFGLR and CFGHR: every pin a floating input.
const GPIO_CFGR_ResetValue = 0x44444444

// Reset and clock control.
type RCC_Type struct {
	CTLR      Register32 // 0x00
	CFGR0     Register32 // 0x04
	INTR      Register32 // 0x08
	APB2PRSTR Register32 // 0x0C
	APB1PRSTR Register32 // 0x10
	AHBPCENR  Register32 // 0x14
	APB2PCENR Register32 // 0x18
	APB1PCENR Register32 // 0x1C
	BDCTLR    Register32 // 0x20
	RSTSCKR   Register32 // 0x24
	AHBRSTR   Register32 // 0x28
	CFGR2     Register32 // 0x2C
}

// APB2 enable and reset bit positions. The reset register uses the same layout.
const (
	RCC_APB2_AFIO_Pos   = 0
	RCC_APB2_IOPA_Pos   = 2
	RCC_APB2_IOPB_Pos   = 3
	RCC_APB2_IOPC_Pos   = 4
	RCC_APB2_IOPD_Pos   = 5
	RCC_APB2_IOPE_Pos   = 6
	RCC_APB2_ADC1_Pos   = 9
	RCC_APB2_ADC2_Pos   = 10
	RCC_APB2_TIM1_Pos   = 11
	RCC_APB2_SPI1_Pos   = 12
	RCC_APB2_USART1_Pos = 14
)

// APB1 enable and reset bit positions.
const (
	RCC_APB1_TIM2_Pos   = 0
	RCC_APB1_TIM3_Pos   = 1
	RCC_APB1_TIM4_Pos   = 2
	RCC_APB1_SPI2_Pos   = 14
	RCC_APB1_USART2_Pos = 17
	RCC_APB1_USART3_Pos = 18
	RCC_APB1_I2C1_Pos   = 21
	RCC_APB1_I2C2_Pos   = 22
)

// 64-bit system timer (SysTick) of the QingKe V4 core.
type SYSTICK_Type struct {
	CTLR Register32 // 0x00
	SR   Register32 // 0x04
	CNT  Register64 // 0x08
	CMP  Register64 // 0x10
}

// SysTick CTLR and SR bits.
const (
	SYSTICK_CTLR_STE   = 1 << 0 // counter enable
	SYSTICK_CTLR_STIE  = 1 << 1 // interrupt enable
	SYSTICK_CTLR_STCLK = 1 << 2 // 1: HCLK, 0: HCLK/8
	SYSTICK_CTLR_STRE  = 1 << 3 // auto reload
	SYSTICK_CTLR_MODE  = 1 << 4 // 1: count down
	SYSTICK_CTLR_INIT  = 1 << 5 // reload the counter on enable
	SYSTICK_SR_CNTIF   = 1 << 0 // compare match
)

// Layout checks: indexing fails to compile unless the sizes match.
var (
	_ = [1]struct{}{}[unsafe.Sizeof(GPIO_Type{})-0x1C]
	_ = [1]struct{}{}[unsafe.Sizeof(RCC_Type{})-0x30]
	_ = [1]struct{}{}[unsafe.Sizeof(SYSTICK_Type{})-0x18]
)
