// Package keccak provides the Keccak-256 digest used for address derivation.
package keccak

import (
	"github.com/ethereum/go-ethereum/crypto"
)

// Size is the length of a Keccak-256 digest in bytes.
const Size = 32

// Sum256 returns the Keccak-256 digest of the concatenated chunks.
func Sum256(chunks ...[]byte) [Size]byte {
	return crypto.Keccak256Hash(chunks...)
}

// Hasher computes Keccak-256 digests with a reusable sponge state, avoiding
// an allocation per digest in hot loops. The zero value is ready to use.
//
// A Hasher must not be shared between goroutines.
type Hasher struct {
	state crypto.KeccakState
}

// Sum writes the Keccak-256 digest of data into dst.
func (h *Hasher) Sum(dst []byte, data []byte) {
	if h.state == nil {
		h.state = crypto.NewKeccakState()
	}
	h.state.Reset()
	h.state.Write(data)
	h.state.Read(dst[:Size])
}
