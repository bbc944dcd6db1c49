package domain

import "github.com/mr-tron/base58"

// solanaPubkeyLen is the byte length of an ed25519 public key.
const solanaPubkeyLen = 32

// ValidSolanaAddress reports whether addr is a well-formed Solana address:
// base58 text decoding to exactly 32 bytes. It does not check curve
// membership; token mints are routinely program-derived and off-curve.
func ValidSolanaAddress(addr string) bool {
	b, err := base58.Decode(addr)
	if err != nil {
		return false
	}
	return len(b) == solanaPubkeyLen
}
