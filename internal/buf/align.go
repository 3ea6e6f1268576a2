package buf

// Alignment utilities. Every alignment handled by the allocators is a power of two,
// so rounding is a mask operation rather than a division.

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// AlignUp returns n rounded up to the next multiple of align.
// align must be a power of two; ok is false when the result would overflow int.
//
// Example:
//
//	AlignUp(20, 8) = 24
//	AlignUp(24, 8) = 24
//	AlignUp(0, 16) = 0
func AlignUp(n, align int) (int, bool) {
	mask := align - 1
	sum, ok := AddOverflowSafe(n, mask)
	if !ok {
		return 0, false
	}
	return sum &^ mask, true
}

// AlignAddr returns addr rounded up to the next multiple of align (a power of two).
func AlignAddr(addr, align uintptr) uintptr {
	return (addr + align - 1) &^ (align - 1)
}

// RoundUpMultiple returns n rounded up to the next multiple of m, which may be any
// positive value. ok is false when the result would overflow int.
//
// Example:
//
//	RoundUpMultiple(1, 48)  = 48
//	RoundUpMultiple(48, 48) = 48
//	RoundUpMultiple(49, 48) = 96
func RoundUpMultiple(n, m int) (int, bool) {
	if n%m == 0 {
		return n, true
	}
	return AddOverflowSafe(n, m-n%m)
}
