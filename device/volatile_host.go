//go:build !tinygo

package device

import "sync/atomic"

// The simulated registers may be touched by a test goroutine playing the
// hardware, so host builds use atomic loads and stores.

func loadUint32(addr *uint32) uint32     { return atomic.LoadUint32(addr) }
func storeUint32(addr *uint32, v uint32) { atomic.StoreUint32(addr, v) }
func loadUint64(addr *uint64) uint64     { return atomic.LoadUint64(addr) }
func storeUint64(addr *uint64, v uint64) { atomic.StoreUint64(addr, v) }
