package device

// Register32 is a 32-bit memory-mapped register. Every access is a single
// volatile load or store; read-modify-write helpers are not atomic.
type Register32 struct {
	Reg uint32
}

// Get returns the value in the register.
func (r *Register32) Get() uint32 {
	return loadUint32(&r.Reg)
}

// Set stores value in the register.
func (r *Register32) Set(value uint32) {
	storeUint32(&r.Reg, value)
}

// SetBits reads the register, sets the given bits, and writes it back.
func (r *Register32) SetBits(value uint32) {
	storeUint32(&r.Reg, loadUint32(&r.Reg)|value)
}

// ClearBits reads the register, clears the given bits, and writes it back.
func (r *Register32) ClearBits(value uint32) {
	storeUint32(&r.Reg, loadUint32(&r.Reg)&^value)
}

// HasBits reads the register and reports whether any of the given bits is set.
func (r *Register32) HasBits(value uint32) bool {
	return loadUint32(&r.Reg)&value != 0
}

// ReplaceBits replaces the field of width mask at position pos with value.
//
//	r = (r &^ (mask << pos)) | (value&mask) << pos
func (r *Register32) ReplaceBits(value uint32, mask uint32, pos uint8) {
	storeUint32(&r.Reg, loadUint32(&r.Reg)&^(mask<<pos)|(value&mask)<<pos)
}

// Register64 is a 64-bit memory-mapped register.
type Register64 struct {
	Reg uint64
}

// Get returns the value in the register.
func (r *Register64) Get() uint64 {
	return loadUint64(&r.Reg)
}

// Set stores value in the register.
func (r *Register64) Set(value uint64) {
	storeUint64(&r.Reg, value)
}
