// Package mathx provides fixed-width integer arithmetic with a flat,
// C-compatible signature.
package mathx

// Add returns a + b. The sum wraps around on overflow, matching a 32-bit C int.
func Add(a, b int32) int32 {
	return a + b
}
