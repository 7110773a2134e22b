package fingerprint

import (
	"strconv"
	"unicode/utf16"
)

// HashString reduces a string to a short base-36 token. The exact
// semantics matter: historical fingerprints were produced by iterating
// UTF-16 code units through a 32-bit signed accumulator with
// acc = (acc << 5) - acc + code, then base-36 encoding the absolute
// value. HashString("") == "0".
func HashString(s string) string {
	var acc int32
	for _, code := range utf16.Encode([]rune(s)) {
		acc = (acc << 5) - acc + int32(code)
	}

	abs := int64(acc)
	if abs < 0 {
		abs = -abs
	}
	return strconv.FormatInt(abs, 36)
}
