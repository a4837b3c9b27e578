package critical

import (
	"sync"
	"testing"
)

func TestFreeExcludes(t *testing.T) {
	const workers, rounds = 8, 1000
	var (
		wg      sync.WaitGroup
		counter int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < rounds; j++ {
				Free(func() {
					v := counter
					counter = v + 1
				})
			}
		}()
	}
	wg.Wait()
	if counter != workers*rounds {
		t.Fatalf("counter = %d, want %d", counter, workers*rounds)
	}
}

func TestFreeRestoresOnPanic(t *testing.T) {
	func() {
		defer func() { recover() }()
		Free(func() { panic("boom") })
	}()
	done := false
	Free(func() { done = true })
	if !done {
		t.Fatal("section did not run after a panicking section")
	}
}
