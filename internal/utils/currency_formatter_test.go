package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"150", "150.00", false},
		{"150.5", "150.50", false},
		{" 150.50 ", "150.50", false},
		{"0.01", "0.01", false},
		{"", "", true},
		{"abc", "", true},
		{"1.2.3", "", true},
		{"1e5", "", true},
		{"1E-2", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, FormatAmount(got))
		})
	}
}

func TestCentsRoundTrip(t *testing.T) {
	amount := decimal.RequireFromString("1234.56")

	cents, err := ToCents(amount)
	require.NoError(t, err)
	assert.Equal(t, int64(123456), cents)
	assert.True(t, FromCents(cents).Equal(amount))
}

func TestToCentsOutOfRange(t *testing.T) {
	maxCents, err := ToCents(decimal.RequireFromString("92233720368547758.07"))
	require.NoError(t, err)
	assert.Equal(t, int64(9223372036854775807), maxCents)

	for _, input := range []string{"92233720368547758.08", "184467440737095516.16", "-92233720368547758.09", "1e20000000"} {
		t.Run(input, func(t *testing.T) {
			_, err := ToCents(decimal.RequireFromString(input))
			assert.ErrorIs(t, err, ErrAmountOutOfRange)
		})
	}
}

func TestInAmountRange(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"0", true},
		{"0.01", true},
		{"1000000000.00", true},
		{"-1000000000.00", true},
		{"1000000000.01", false},
		{"184467440737095516.16", false},
		{"1e20000000", false},
		{"1e-20000000", false},
		{"1.000000000000000000000001", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, InAmountRange(decimal.RequireFromString(tt.input)))
		})
	}
}

func TestCompactAmount(t *testing.T) {
	assert.Equal(t, "12.5", CompactAmount(decimal.RequireFromString("12.50")))

	huge := decimal.RequireFromString("1e20000000")
	compact := CompactAmount(huge)
	assert.Equal(t, "1e20000000", compact)

	back, err := decimal.NewFromString(compact)
	require.NoError(t, err)
	assert.Equal(t, int32(20000000), back.Exponent())
}

func TestHasCentPrecision(t *testing.T) {
	assert.True(t, HasCentPrecision(decimal.RequireFromString("10")))
	assert.True(t, HasCentPrecision(decimal.RequireFromString("10.25")))
	assert.False(t, HasCentPrecision(decimal.RequireFromString("10.255")))
}

func TestMaskCardID(t *testing.T) {
	assert.Equal(t, "************2345", MaskCardID("4123456789012345"))
	assert.Equal(t, "9999", MaskCardID("9999"))
	assert.Equal(t, "", MaskCardID(""))
}
