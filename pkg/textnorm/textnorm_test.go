// Copyright (c) 2026 Mumu Design Studio. All rights reserved.
// Author: dev@mumudesign.kr

package textnorm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mumudesign/studio-api/pkg/textnorm"
)

/*
TestContains covers exact, case-sensitive substring semantics.
*/
func TestContains(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		needle   string
		match    bool
	}{
		{"korean_substring", "견적 문의합니다", "견적", true},
		{"korean_no_match", "시공 기간 문의", "견적", false},
		{"empty_needle_matches_all", "아무 제목", "", true},
		{"case_sensitive", "Interior Quote", "interior", false},
		{"exact_case", "Interior Quote", "Interior", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.match, textnorm.Contains(tt.haystack, tt.needle))
		})
	}
}

/*
TestContains_NormalizesNFD verifies that decomposed jamo input (NFD) matches
its composed (NFC) equivalent.
*/
func TestContains_NormalizesNFD(t *testing.T) {
	composed := "견적"                                     // NFC
	decomposed := "\u1100\u1167\u11ab\u110c\u1165\u11a8" // same syllables in NFD

	assert.NotEqual(t, composed, decomposed, "raw strings differ byte-wise")
	assert.True(t, textnorm.Contains("견적 문의합니다", decomposed))
	assert.True(t, textnorm.Contains(decomposed, composed))
}
