// Copyright (c) 2026 Mumu Design Studio. All rights reserved.
// Author: dev@mumudesign.kr

/*
Package mask obscures personal data before it is persisted or displayed.

The inquiry board shows author names publicly; masking keeps the first
character visible, hides the second, and leaves the remainder as-is
("김수현" → "김*현", "이도" → "이*").
*/
package mask

import "errors"

// ErrNameTooShort is returned for names with fewer than two characters.
// There is no way to mask a single character without erasing it entirely,
// so short names are rejected at validation time instead.
var ErrNameTooShort = errors.New("mask: name must have at least 2 characters")

// Name masks an author name: first rune, then '*', then runes from index 2.
//
// Operates on runes, not bytes — Hangul syllables are multi-byte in UTF-8.
func Name(name string) (string, error) {
	runes := []rune(name)
	if len(runes) < 2 {
		return "", ErrNameTooShort
	}

	masked := make([]rune, 0, len(runes))
	masked = append(masked, runes[0], '*')
	masked = append(masked, runes[2:]...)

	return string(masked), nil
}
