package conv

import "unsafe"

// String2Bytes shares the memory of s, the result must not be written to.
func String2Bytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
