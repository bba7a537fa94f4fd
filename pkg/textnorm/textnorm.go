// Copyright (c) 2026 Mumu Design Studio. All rights reserved.
// Author: dev@mumudesign.kr

/*
Package textnorm normalizes Unicode text for comparison.

Board title search is an exact, case-sensitive substring match, but Korean
input arrives in two encodings: composed syllables (NFC, typical on the web)
and decomposed jamo sequences (NFD, typical of macOS filenames and some
IMEs). Both sides of a comparison are normalized to NFC so that visually
identical strings actually compare equal.
*/
package textnorm

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NFC returns the canonical composed form of s.
func NFC(s string) string {
	return norm.NFC.String(s)
}

// Contains reports whether haystack contains needle after both are
// NFC-normalized. Case is preserved: the match stays exact and as-typed.
func Contains(haystack, needle string) bool {
	return strings.Contains(norm.NFC.String(haystack), norm.NFC.String(needle))
}
