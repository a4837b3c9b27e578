//go:build tinygo

package critical

import "runtime/interrupt"

type state = interrupt.State

func disable() state {
	return interrupt.Disable()
}

func restore(s state) {
	interrupt.Restore(s)
}
