package safe

import (
	"context"
	crand "crypto/rand"
	"math/rand/v2"
)

// cancelCheckInterval is the number of attempts between two context checks
// in Search. It must be a power of two.
const cancelCheckInterval = 1 << 10

// SearchIter fills the salt nonce of s with fill and reports whether the
// resulting creation address matches prefix.
func SearchIter(s *Safe, prefix Prefix, fill func(nonce []byte)) bool {
	s.UpdateSaltNonce(fill)
	return prefix.Matches(s.CreationAddress())
}

// Search updates s with random salt nonces until its creation address
// matches prefix, and returns the number of attempts. The nonces come from
// a ChaCha8 generator seeded from the operating system, so repeated searches
// find different nonces.
//
// Search only returns early, with ctx.Err(), when ctx is done.
func Search(ctx context.Context, s *Safe, prefix Prefix) (uint64, error) {
	rng := newNonceSource()
	fill := func(nonce []byte) {
		_, _ = rng.Read(nonce)
	}

	var attempts uint64
	for {
		attempts++
		if SearchIter(s, prefix, fill) {
			return attempts, nil
		}
		if attempts%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return attempts, err
			}
		}
	}
}

func newNonceSource() *rand.ChaCha8 {
	var seed [32]byte
	// crypto/rand.Read never returns an error and crashes the program
	// irrecoverably instead.
	_, _ = crand.Read(seed[:])
	return rand.NewChaCha8(seed)
}
