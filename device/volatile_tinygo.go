//go:build tinygo

package device

import "runtime/volatile"

func loadUint32(addr *uint32) uint32     { return volatile.LoadUint32(addr) }
func storeUint32(addr *uint32, v uint32) { volatile.StoreUint32(addr, v) }
func loadUint64(addr *uint64) uint64     { return volatile.LoadUint64(addr) }
func storeUint64(addr *uint64, v uint64) { volatile.StoreUint64(addr, v) }
