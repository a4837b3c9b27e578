//go:build !tinygo

package device

// Simulated register blocks for host builds.
var (
	GPIOA   = new(GPIO_Type)
	GPIOB   = new(GPIO_Type)
	GPIOC   = new(GPIO_Type)
	GPIOD   = new(GPIO_Type)
	GPIOE   = new(GPIO_Type)
	RCC     = new(RCC_Type)
	SYSTICK = new(SYSTICK_Type)
)

func init() {
	ResetSimulation()
}

// ResetSimulation puts every simulated block back into its power-on state.
// It must not race with code that is accessing the blocks.
func ResetSimulation() {
	for _, port := range []*GPIO_Type{GPIOA, GPIOB, GPIOC, GPIOD, GPIOE} {
		*port = GPIO_Type{}
		port.CFGLR.Set(GPIO_CFGR_ResetValue)
		port.CFGHR.Set(GPIO_CFGR_ResetValue)
	}
	*RCC = RCC_Type{}
	*SYSTICK = SYSTICK_Type{}
}
