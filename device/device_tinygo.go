//go:build tinygo

package device

import "unsafe"

// Register blocks at their bus addresses.
var (
	GPIOA   = (*GPIO_Type)(unsafe.Pointer(uintptr(GPIOA_BASE)))
	GPIOB   = (*GPIO_Type)(unsafe.Pointer(uintptr(GPIOB_BASE)))
	GPIOC   = (*GPIO_Type)(unsafe.Pointer(uintptr(GPIOC_BASE)))
	GPIOD   = (*GPIO_Type)(unsafe.Pointer(uintptr(GPIOD_BASE)))
	GPIOE   = (*GPIO_Type)(unsafe.Pointer(uintptr(GPIOE_BASE)))
	RCC     = (*RCC_Type)(unsafe.Pointer(uintptr(RCC_BASE)))
	SYSTICK = (*SYSTICK_Type)(unsafe.Pointer(uintptr(SYSTICK_BASE)))
)
