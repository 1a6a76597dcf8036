// Package wallet derives an Ethereum address from a recovery phrase. The
// phrase is consumed in memory only; nothing here persists, logs or forwards
// it.
package wallet

import (
	"strings"

	"github.com/emperor6007/EtherLend/internal/pkg/consts"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcutil/hdkeychain"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	bip39 "github.com/tyler-smith/go-bip39"
)

// Standard Ethereum derivation path m/44'/60'/0'/0/0.
var derivationPath = []uint32{
	hdkeychain.HardenedKeyStart + 44,
	hdkeychain.HardenedKeyStart + 60,
	hdkeychain.HardenedKeyStart,
	0,
	0,
}

// DeriveAddress turns a 12 or 24 word recovery phrase into a checksummed
// hex address.
func DeriveAddress(phrase string) (string, error) {
	words := strings.Fields(strings.TrimSpace(phrase))
	if len(words) != 12 && len(words) != 24 {
		return "", consts.ErrorInvalidPhrase
	}

	mnemonic := strings.Join(words, " ")
	if !bip39.IsMnemonicValid(mnemonic) {
		return "", consts.ErrorInvalidPhrase
	}

	key, err := hdkeychain.NewMaster(bip39.NewSeed(mnemonic, ""), &chaincfg.MainNetParams)
	if err != nil {
		return "", consts.ErrorInvalidPhrase
	}
	for _, index := range derivationPath {
		key, err = key.Child(index)
		if err != nil {
			return "", consts.ErrorInvalidPhrase
		}
	}

	priv, err := key.ECPrivKey()
	if err != nil {
		return "", consts.ErrorInvalidPhrase
	}

	return crypto.PubkeyToAddress(priv.ToECDSA().PublicKey).Hex(), nil
}

// IsValidAddress reports whether s looks like an Ethereum hex address.
func IsValidAddress(s string) bool {
	return common.IsHexAddress(s)
}
