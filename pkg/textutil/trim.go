// Package textutil provides whitespace trimming helpers.
//
// Whitespace is the classic ASCII set: space, tab, newline, carriage return,
// vertical tab and form feed. Strings are scanned byte by byte, so bytes of a
// multi-byte UTF-8 sequence are never treated as whitespace.
package textutil

// IsSpace reports whether c is one of ' ', '\t', '\n', '\r', '\v' or '\f'.
func IsSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

// LTrim returns value with all leading whitespace removed.
func LTrim(value string) string {
	start := 0
	for start < len(value) && IsSpace(value[start]) {
		start++
	}

	return value[start:]
}

// RTrim returns value with all trailing whitespace removed.
func RTrim(value string) string {
	end := len(value)
	for end > 0 && IsSpace(value[end-1]) {
		end--
	}

	return value[:end]
}

// Trim returns value with leading and trailing whitespace removed.
func Trim(value string) string {
	return RTrim(LTrim(value))
}
