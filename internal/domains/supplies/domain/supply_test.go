package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveSKU(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Engine Soap", "ENGINE_SOA-001"},
		{"soap", "SOAP-001"},
		{"  Wax  ", "WAX-001"},
		{"Heavy Duty Degreaser", "HEAVY_DUTY-001"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DeriveSKU(tc.name), "name %q", tc.name)
	}
}

func TestNewSupply_DerivesSKUWhenAbsent(t *testing.T) {
	supply, err := NewSupply("Engine Soap", "", 5)
	require.NoError(t, err)
	assert.Equal(t, "ENGINE_SOA-001", supply.SKU)
	assert.Equal(t, 5.0, supply.CurrentQuantity)
}

func TestNewSupply_KeepsProvidedSKU(t *testing.T) {
	supply, err := NewSupply("Engine Soap", "CUSTOM-9", 5)
	require.NoError(t, err)
	assert.Equal(t, "CUSTOM-9", supply.SKU)
}

func TestNewSupply_EmptyName(t *testing.T) {
	_, err := NewSupply("   ", "", 5)
	require.ErrorIs(t, err, ErrEmptyName)
}

func TestDrain_ClampsAtZero(t *testing.T) {
	supply := &Supply{Name: "Bleach", CurrentQuantity: 0.3}
	got := supply.Drain(0.5)
	assert.Equal(t, 0.0, got)
	assert.Equal(t, 0.0, supply.CurrentQuantity)
}

func TestMatchesName_IgnoresCase(t *testing.T) {
	supply := &Supply{Name: "Soap"}
	assert.True(t, supply.MatchesName("soap"))
	assert.True(t, supply.MatchesName("SOAP"))
	assert.False(t, supply.MatchesName("soap 2"))
}
