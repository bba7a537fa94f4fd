// Copyright (c) 2026 Mumu Design Studio. All rights reserved.
// Author: dev@mumudesign.kr

package mask_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mumudesign/studio-api/pkg/mask"
)

/*
TestName verifies the first-char + '*' + remainder masking rule.
*/
func TestName(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{"korean_three_runes", "김수현", "김*현"},
		{"korean_two_runes", "이도", "이*"},
		{"korean_four_runes", "남궁민수", "남*민수"},
		{"ascii", "minsu", "m*nsu"},
		{"mixed", "J준호", "J*호"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			masked, err := mask.Name(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expect, masked)
		})
	}
}

/*
TestName_TooShort verifies that sub-2-rune names are rejected rather than
silently mangled.
*/
func TestName_TooShort(t *testing.T) {
	for _, input := range []string{"", "김", "a"} {
		_, err := mask.Name(input)
		assert.ErrorIs(t, err, mask.ErrNameTooShort, "input %q", input)
	}
}
