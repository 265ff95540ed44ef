// Package safe computes deterministic Safe proxy deployment addresses and
// searches salt nonces for vanity addresses.
//
// A Safe proxy is created by SafeProxyFactory.createProxyWithNonce with
//
//	salt = keccak256(keccak256(initializer) ‖ saltNonce)
//
// so, for a fixed configuration, the proxy address only depends on the
// 32-byte salt nonce. Updating the nonce costs one Keccak-256 for the salt and
// one for the address.
package safe

import (
	"slices"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/trebuchet-org/safevanity/pkg/address"
	"github.com/trebuchet-org/safevanity/pkg/create2"
	"github.com/trebuchet-org/safevanity/pkg/keccak"
)

// Safe is a Safe proxy deployment whose salt nonce can be updated cheaply.
//
// A Safe is not safe for concurrent use; each goroutine must work on its own
// Clone.
type Safe struct {
	config      *Configuration
	initializer []byte
	// salt holds keccak256(initializer) in its first half and the salt nonce
	// in its second half.
	salt    [64]byte
	create2 *create2.Preimage
}

// Transaction is the proxy factory call that deploys a Safe.
type Transaction struct {
	// To is the proxy factory address.
	To address.Address `json:"to" yaml:"to"`
	// Calldata is the encoded createProxyWithNonce call.
	Calldata hexutil.Bytes `json:"calldata" yaml:"calldata"`
}

// New creates a Safe deployment for cfg with a zero salt nonce. It panics
// when cfg has a zero factory or singleton, which NewConfiguration never
// produces.
func New(cfg *Configuration) *Safe {
	if cfg.Proxy.Factory.Get().IsZero() || cfg.Proxy.Singleton.Get().IsZero() {
		panic("safe: configuration not built by NewConfiguration")
	}

	s := &Safe{
		config:      cfg,
		initializer: cfg.Account.Initializer(),
	}

	initializerHash := keccak.Sum256(s.initializer)
	copy(s.salt[:32], initializerHash[:])

	s.create2 = create2.New(cfg.Proxy.Factory.Get(), [32]byte{}, cfg.Proxy.InitCodeHash())
	s.create2.HashSalt(s.salt[:])

	return s
}

// Configuration returns the deployment configuration.
func (s *Safe) Configuration() *Configuration {
	return s.config
}

// CreationAddress returns the address the proxy will be deployed at.
func (s *Safe) CreationAddress() address.Address {
	return s.create2.Address()
}

// SaltNonce returns the current salt nonce.
func (s *Safe) SaltNonce() [32]byte {
	return [32]byte(s.salt[32:])
}

// Initializer returns the encoded setup call. The returned slice must not be
// modified.
func (s *Safe) Initializer() []byte {
	return s.initializer
}

// UpdateSaltNonce lets update overwrite the 32-byte salt nonce in place and
// recomputes the CREATE2 salt.
func (s *Safe) UpdateSaltNonce(update func(nonce []byte)) {
	update(s.salt[32:])
	s.create2.HashSalt(s.salt[:])
}

// SetSaltNonce sets the salt nonce.
func (s *Safe) SetSaltNonce(nonce [32]byte) {
	s.UpdateSaltNonce(func(n []byte) {
		copy(n, nonce[:])
	})
}

// Transaction returns the factory transaction deploying the proxy with the
// current salt nonce.
func (s *Safe) Transaction() Transaction {
	return Transaction{
		To:       s.config.Proxy.Factory.Get(),
		Calldata: s.config.Proxy.CreateProxyWithNonce(s.initializer, s.SaltNonce()),
	}
}

// Clone returns a copy of s that can be updated independently.
func (s *Safe) Clone() *Safe {
	return &Safe{
		config:      s.config,
		initializer: slices.Clone(s.initializer),
		salt:        s.salt,
		create2:     s.create2.Clone(),
	}
}
