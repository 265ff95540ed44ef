package address_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/safevanity/pkg/address"
)

func TestChecksumRoundTrip(t *testing.T) {
	for _, s := range []string{
		"0x90F8bf6A479f320ead074411a4B0e7944Ea8c9C1",
		"0xEeeeeEeeeEeEeeEeEeEeeEEEeeeeEeeeeeeeEEeE",
		"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
		"0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359",
		"0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB",
		"0xD1220A0cf47c7B9Be7A2E6BA89F429762e7b9aDb",
	} {
		t.Run(s, func(t *testing.T) {
			a, err := address.Parse(s)
			require.NoError(t, err)
			assert.Equal(t, s, a.String())

			again, err := address.Parse(a.String())
			require.NoError(t, err)
			assert.Equal(t, a, again)
		})
	}
}

func TestStringMatchesGoEthereum(t *testing.T) {
	for _, s := range []string{
		"0x0000000000000000000000000000000000000000",
		"0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		"0x4e1dcf7ad4e460cfd30791ccc4f9c8a4f820ec67",
		"0x41675c099f32341bf84bfc5382af534df5c7461a",
	} {
		a := address.MustParse(s)
		assert.Equal(t, common.HexToAddress(s).Hex(), a.String())
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "with prefix", input: "0x1111111111111111111111111111111111111111"},
		{name: "without prefix", input: "1111111111111111111111111111111111111111"},
		{name: "upper-case prefix", input: "0X1111111111111111111111111111111111111111"},
		{name: "too short", input: "0x1111", wantErr: address.ErrInvalidLength},
		{name: "too long", input: "0x" + strings.Repeat("11", 21), wantErr: address.ErrInvalidLength},
		{name: "empty", input: "", wantErr: address.ErrInvalidLength},
		{name: "odd length", input: "0x111", wantErr: hexutil.ErrOddLength},
		{name: "invalid digit", input: "0x" + strings.Repeat("zz", 20), wantErr: hexutil.ErrSyntax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := address.Parse(tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, address.ErrInvalidAddress)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, address.Address(common.HexToAddress(tt.input)), a)
		})
	}
}

func TestNonZero(t *testing.T) {
	t.Run("rejects zero from parse", func(t *testing.T) {
		_, err := address.ParseNonZero("0x0000000000000000000000000000000000000000")
		assert.ErrorIs(t, err, address.ErrInvalidAddress)
		assert.ErrorIs(t, err, address.ErrZeroAddress)
	})

	t.Run("rejects zero from value", func(t *testing.T) {
		_, err := address.NewNonZero(address.Zero())
		assert.ErrorIs(t, err, address.ErrZeroAddress)

		_, ok := address.Zero().NonZero()
		assert.False(t, ok)
	})

	t.Run("rejects zero from text", func(t *testing.T) {
		var nz address.NonZeroAddress
		err := json.Unmarshal([]byte(`"0x0000000000000000000000000000000000000000"`), &nz)
		assert.ErrorIs(t, err, address.ErrZeroAddress)
	})

	t.Run("panics on zero literal", func(t *testing.T) {
		assert.Panics(t, func() {
			address.MustNonZero("0000000000000000000000000000000000000000")
		})
	})

	t.Run("keeps non-zero value", func(t *testing.T) {
		nz := address.MustNonZero("0x0000000000000000000000000000000000000001")
		assert.Equal(t, "0x0000000000000000000000000000000000000001", nz.String())
		assert.False(t, nz.Get().IsZero())
	})
}

func TestChecksum(t *testing.T) {
	t.Run("valid mixed case", func(t *testing.T) {
		_, err := address.Checksum("0x90F8bf6A479f320ead074411a4B0e7944Ea8c9C1")
		assert.NoError(t, err)
	})

	t.Run("single case carries no checksum", func(t *testing.T) {
		_, err := address.Checksum("0x90f8bf6a479f320ead074411a4b0e7944ea8c9c1")
		assert.NoError(t, err)
		_, err = address.Checksum("0x90F8BF6A479F320EAD074411A4B0E7944EA8C9C1")
		assert.NoError(t, err)
	})

	t.Run("mismatch", func(t *testing.T) {
		_, err := address.Checksum("0x90f8bf6A479f320ead074411a4B0e7944Ea8c9C1")
		assert.ErrorIs(t, err, address.ErrChecksumMismatch)
	})
}

func TestJSON(t *testing.T) {
	a := address.MustParse("0x90f8bf6a479f320ead074411a4b0e7944ea8c9c1")

	data, err := json.Marshal(a)
	require.NoError(t, err)
	assert.Equal(t, `"0x90F8bf6A479f320ead074411a4B0e7944Ea8c9C1"`, string(data))

	var decoded address.Address
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, a, decoded)
}
