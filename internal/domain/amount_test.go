package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		wantErr bool
	}{
		{"zero", "0", false},
		{"one", "1", false},
		{"large", "999999999999999999", false},
		{"max uint256", "115792089237316195423570985008687907853269984665640564039457584007913129639935", false},
		{"overflow", "115792089237316195423570985008687907853269984665640564039457584007913129639936", true},
		{"leading zero", "01", true},
		{"negative", "-1", true},
		{"decimal", "1.5", true},
		{"empty", "", true},
		{"hex", "0x10", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAmount(tt.amount)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidAmount))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatUnits(t *testing.T) {
	tests := []struct {
		amount   string
		decimals uint8
		want     string
	}{
		{"1", USDC_DECIMALS, "0.000001"},
		{"1000000", USDC_DECIMALS, "1"},
		{"1500000", USDC_DECIMALS, "1.5"},
		{"0", USDC_DECIMALS, "0"},
		{"999999999999999999", USDC_DECIMALS, "999999999999.999999"},
		{"42", 0, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			got, err := FormatUnits(tt.amount, tt.decimals)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseUnits(t *testing.T) {
	got, err := ParseUnits("1.5", USDC_DECIMALS)
	require.NoError(t, err)
	assert.Equal(t, "1500000", got)

	got, err = ParseUnits(".25", USDC_DECIMALS)
	require.NoError(t, err)
	assert.Equal(t, "250000", got)

	got, err = ParseUnits("0.000000", USDC_DECIMALS)
	require.NoError(t, err)
	assert.Equal(t, "0", got)

	_, err = ParseUnits("0.0000001", USDC_DECIMALS)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = ParseUnits("1.", USDC_DECIMALS)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = ParseUnits("1e6", USDC_DECIMALS)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestAmountRoundTrip(t *testing.T) {
	for _, amount := range []string{"1", "1000000", "999999999999999999"} {
		display, err := FormatUnits(amount, USDC_DECIMALS)
		require.NoError(t, err)

		back, err := ParseUnits(display, USDC_DECIMALS)
		require.NoError(t, err)
		assert.Equal(t, amount, back, "round trip through %q", display)
	}
}
