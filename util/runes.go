package util

// IsCJK reports whether r lies in the CJK Unified Ideographs block.
func IsCJK(r rune) bool {
	return r >= 0x4E00 && r <= 0x9FFF
}

// IsAlphaNum reports whether r is an ASCII letter or digit.
func IsAlphaNum(r rune) bool {
	if r < 128 {
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
	}
	return false
}

// IsWordChar reports whether r can be part of a segmentable word.
func IsWordChar(r rune) bool {
	return IsAlphaNum(r) || IsCJK(r)
}
