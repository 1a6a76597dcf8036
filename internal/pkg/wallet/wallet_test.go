package wallet

import (
	"strings"
	"testing"

	"github.com/emperor6007/EtherLend/internal/pkg/consts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func TestDeriveAddressKnownVector(t *testing.T) {
	address, err := DeriveAddress(testMnemonic)

	require.NoError(t, err)
	assert.Equal(t, "0x9858EfFD232B4033E47d90003D41EC34EcaEda94", address)
}

func TestDeriveAddressNormalizesWhitespace(t *testing.T) {
	messy := "  " + strings.ReplaceAll(testMnemonic, " ", "   ") + "\n"

	address, err := DeriveAddress(messy)

	require.NoError(t, err)
	assert.Equal(t, "0x9858EfFD232B4033E47d90003D41EC34EcaEda94", address)
}

func TestDeriveAddressRejectsBadInput(t *testing.T) {
	tests := []struct {
		name   string
		phrase string
	}{
		{name: "Empty", phrase: ""},
		{name: "Wrong Word Count", phrase: "abandon abandon abandon"},
		{name: "Unknown Words", phrase: strings.Repeat("zzzz ", 11) + "zzzz"},
		{name: "Bad Checksum", phrase: strings.Repeat("abandon ", 11) + "abandon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DeriveAddress(tt.phrase)
			assert.ErrorIs(t, err, consts.ErrorInvalidPhrase)
		})
	}
}

func TestIsValidAddress(t *testing.T) {
	assert.True(t, IsValidAddress("0x9858EfFD232B4033E47d90003D41EC34EcaEda94"))
	assert.False(t, IsValidAddress("9858EfFD232B4033"))
	assert.False(t, IsValidAddress("not an address"))
}
