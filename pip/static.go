package pip

// Static returns a Provider that always reports base, for hosts whose data
// segment address is known at startup (or for tests that don't care about
// position independence at all — using 0 makes stored and absolute forms
// identical, modulo the NullPtr sentinel).
func Static(base Word) Provider {
	return func() Word { return base }
}
