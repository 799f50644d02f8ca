// Package bits provides helpers for working with the individual
// bits of a byte.
package bits

// Val returns the value of the bit at the given index.
func Val(b uint8, i uint8) uint8 {
	return (b >> i) & 1
}

// Reset resets the bit at the given index.
func Reset(b, i uint8) uint8 {
	return b &^ (1 << i)
}

// Set sets the bit at the given index.
func Set(b, i uint8) uint8 {
	return b | (1 << i)
}

// Test tests the bit at the given index.
func Test(b, i uint8) bool {
	return (b>>i)&1 != 0
}

// HalfCarryAdd reports whether adding b (and an optional carry) to a
// carries out of bit 3.
func HalfCarryAdd(a, b, carry uint8) bool {
	return (a&0xF)+(b&0xF)+carry > 0xF
}

// HalfBorrowSub reports whether subtracting b (and an optional borrow)
// from a borrows from bit 4.
func HalfBorrowSub(a, b, borrow uint8) bool {
	return int(a&0xF)-int(b&0xF)-int(borrow) < 0
}
