package safe_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/safevanity/pkg/address"
	"github.com/trebuchet-org/safevanity/pkg/safe"
)

func TestParsePrefix(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		nibbles int
		wantErr bool
	}{
		{input: "", want: "0x", nibbles: 0},
		{input: "0x", want: "0x", nibbles: 0},
		{input: "5afe", want: "0x5afe", nibbles: 4},
		{input: "0x5AFE", want: "0x5afe", nibbles: 4},
		{input: "0Xdead", want: "0xdead", nibbles: 4},
		{input: "abc", want: "0xabc", nibbles: 3},
		{input: "f", want: "0xf", nibbles: 1},
		{input: strings.Repeat("e", 40), want: "0x" + strings.Repeat("e", 40), nibbles: 40},
		{input: strings.Repeat("e", 41), wantErr: true},
		{input: "0xg0", wantErr: true},
		{input: "12z", wantErr: true},
		{input: "z", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, err := safe.ParsePrefix(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, safe.ErrInvalidPrefix)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.String())
			assert.Equal(t, tt.nibbles, p.Nibbles())
		})
	}
}

func TestPrefixMatches(t *testing.T) {
	addr := address.MustParse("0x5afe7A11E7000000000000000000000000000000")

	tests := []struct {
		prefix string
		want   bool
	}{
		{prefix: "", want: true},
		{prefix: "5", want: true},
		{prefix: "5a", want: true},
		{prefix: "5afe7", want: true},
		{prefix: "5AFE7A11E7", want: true},
		{prefix: "6", want: false},
		{prefix: "5b", want: false},
		{prefix: "5afe8", want: false},
		{prefix: "5afe7a11e70", want: true},
		{prefix: "5afe7a11e71", want: false},
		{prefix: "5afe7a11e7" + strings.Repeat("0", 30), want: true},
		{prefix: "5afe7a11e7" + strings.Repeat("0", 29) + "1", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			assert.Equal(t, tt.want, safe.MustParsePrefix(tt.prefix).Matches(addr))
		})
	}
}

func TestBytePrefix(t *testing.T) {
	p, err := safe.BytePrefix([]byte{0xde, 0xad})
	require.NoError(t, err)
	assert.Equal(t, "0xdead", p.String())
	assert.True(t, p.Matches(address.MustParse("0xdead000000000000000000000000000000000000")))
	assert.False(t, p.Matches(address.MustParse("0xdeae000000000000000000000000000000000000")))

	_, err = safe.BytePrefix(make([]byte, 21))
	require.ErrorIs(t, err, safe.ErrInvalidPrefix)
}

func TestExpectedAttempts(t *testing.T) {
	assert.InDelta(t, 1.0, safe.MustParsePrefix("").ExpectedAttempts(), 0)
	assert.InDelta(t, 16.0, safe.MustParsePrefix("a").ExpectedAttempts(), 0)
	assert.InDelta(t, 65536.0, safe.MustParsePrefix("5afe").ExpectedAttempts(), 0)
}
