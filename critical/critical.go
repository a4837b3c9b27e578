// Package critical runs short sections of code with interrupts masked.
package critical

// Free calls fn with interrupts disabled and restores the previous interrupt
// state when fn returns. Sections must stay short: every interrupt is held
// off while fn runs.
func Free(fn func()) {
	state := disable()
	defer restore(state)
	fn()
}
