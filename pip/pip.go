package pip

// NullPtr is the sentinel value representing "no successor". It is a fixed,
// nonzero constant — a zero sentinel would collide with addr == base — and
// not a multiple of 4, so it never equals the offset of a word-aligned node
// from a word-aligned base.
const NullPtr Word = 0x74e

// Encode translates an absolute address into its stored, position-
// independent form. addr == 0 is treated as the absolute null address and
// always maps to NullPtr, regardless of the current base.
func Encode(addr Word) Word {
	if addr == 0 {
		return NullPtr
	}
	return addr - currentBase()
}

// Decode translates a stored, position-independent value back into an
// absolute address. NullPtr always maps back to 0.
func Decode(stored Word) Word {
	if stored == NullPtr {
		return 0
	}
	return stored + currentBase()
}
