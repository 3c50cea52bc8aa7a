package buddy

import "golang.org/x/exp/constraints"

// log2Floor returns the base-2 logarithm of x, rounded down. x must be > 0.
func log2Floor(x uintptr) int {
	n := -1
	for x > 0 {
		x >>= 1
		n++
	}
	return n
}

// log2Ceil returns the base-2 logarithm of x, rounded up. x must be > 0.
func log2Ceil(x uintptr) int {
	if x <= 1 {
		return 0
	}
	return log2Floor(x-1) + 1
}

func isPow2(x uintptr) bool {
	return x != 0 && x&(x-1) == 0
}

// nextPow2 returns the smallest power of two >= x. x must be > 0.
func nextPow2(x uintptr) uintptr {
	if isPow2(x) {
		return x
	}
	return 1 << uint(log2Floor(x)+1)
}

// prevPow2 returns the largest power of two <= x. x must be > 0.
func prevPow2(x uintptr) uintptr {
	return 1 << uint(log2Floor(x))
}

// lowbit returns the largest power of two dividing x, or 0 if x is 0 (the
// caller must treat 0 as "aligned to anything" rather than "aligned to
// nothing").
func lowbit(x uintptr) uintptr {
	if x == 0 {
		return 0
	}
	return x & (^x + 1)
}

func alignUp(x, a uintptr) uintptr {
	return (x + a - 1) &^ (a - 1)
}

func alignDown(x, a uintptr) uintptr {
	return x &^ (a - 1)
}

func minOf[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func maxOf[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}
