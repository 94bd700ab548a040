package guestbook

import "unicode"

// zeroWidth - символы, которые не видны на экране и не должны проходить проверку на пустое поле.
var zeroWidth = map[rune]struct{}{
	'\u200B': {}, // ZERO WIDTH SPACE
	'\u200C': {}, // ZERO WIDTH NON-JOINER
	'\u200D': {}, // ZERO WIDTH JOINER
	'\u2060': {}, // WORD JOINER
	'\uFEFF': {}, // ZERO WIDTH NO-BREAK SPACE (BOM)
	'\u180E': {}, // MONGOLIAN VOWEL SEPARATOR
	'\u3164': {}, // HANGUL FILLER
	'\u115F': {}, // HANGUL CHOSEONG FILLER
}

func isInvisible(r rune) bool {
	if _, ok := zeroWidth[r]; ok {
		return true
	}

	switch {
	case unicode.IsSpace(r), unicode.IsControl(r):
		return true

	// bidi marks, embeddings and isolates
	case r >= 0x200E && r <= 0x200F, r >= 0x202A && r <= 0x202E, r >= 0x2061 && r <= 0x206F:
		return true

	// variation selectors
	case r >= 0xFE00 && r <= 0xFE0F, r >= 0xE0100 && r <= 0xE01EF:
		return true

	// tag characters
	case r >= 0xE0000 && r <= 0xE007F:
		return true
	}

	return false
}

// isBlank - пустая строка после trim, с учетом невидимых символов.
func isBlank(s string) bool {
	for _, r := range s {
		if !isInvisible(r) {
			return false
		}
	}
	return true
}
