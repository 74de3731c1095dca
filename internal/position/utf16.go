// Package position converts between LSP UTF-16 column offsets and Go byte offsets.
package position

import (
	"unicode/utf8"
)

// utf16RuneLen mirrors utf16.RuneLen from Go 1.23+, which is unavailable on
// the Go 1.21 toolchain this module is built with.
func utf16RuneLen(r rune) int {
	const (
		surr1    = 0xd800
		surr3    = 0xe000
		surrSelf = 0x10000
		maxRune  = '\U0010FFFF'
	)
	switch {
	case 0 <= r && r < surr1, surr3 <= r && r < surrSelf:
		return 1
	case surrSelf <= r && r <= maxRune:
		return 2
	}
	return -1
}

// UTF16ToByteOffset converts a UTF-16 code unit offset to a byte offset in a string.
// LSP positions use UTF-16 code units, but Go strings are UTF-8 byte sequences.
// Offsets that land inside a surrogate pair are clamped to the start of the rune.
func UTF16ToByteOffset(s string, utf16Col int) int {
	if utf16Col <= 0 {
		return 0
	}

	units := 0
	byteOffset := 0

	for byteOffset < len(s) && units < utf16Col {
		r, size := utf8.DecodeRuneInString(s[byteOffset:])
		if r == utf8.RuneError && size == 1 {
			// Invalid UTF-8 byte; count it as one unit and move on
			byteOffset++
			units++
			continue
		}

		runeUTF16Len := utf16RuneLen(r)
		if runeUTF16Len == 2 && units+1 == utf16Col {
			// Target falls inside a surrogate pair
			break
		}

		units += runeUTF16Len
		byteOffset += size
	}

	return byteOffset
}

// ByteOffsetToUTF16 converts a byte offset to a UTF-16 code unit offset.
// Offsets that land inside a multi-byte rune are clamped to the start of the rune.
func ByteOffsetToUTF16(s string, byteOffset int) int {
	if byteOffset <= 0 {
		return 0
	}
	if byteOffset > len(s) {
		byteOffset = len(s)
	}

	units := 0
	current := 0
	for current < byteOffset {
		r, size := utf8.DecodeRuneInString(s[current:])
		if r == utf8.RuneError && size == 0 {
			break
		}
		if current+size > byteOffset {
			break
		}
		units += utf16RuneLen(r)
		current += size
	}
	return units
}

// StringLengthUTF16 returns the length of a string in UTF-16 code units.
func StringLengthUTF16(s string) int {
	units := 0
	for _, r := range s {
		units += utf16RuneLen(r)
	}
	return units
}
