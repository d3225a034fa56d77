package utils

// AssertInvariant panics when condition doesn't hold.
// Use only for states that indicate a programming error or a broken
// upstream contract, never for recoverable runtime conditions.
func AssertInvariant(condition bool, message string) {
	if !condition {
		panic("invariant violated - " + message)
	}
}
