// Package create2 implements CREATE2 deterministic contract address
// derivation.
//
// The preimage hashed by the EVM is the fixed 85 byte record
//
//	0xff ‖ factory (20) ‖ salt (32) ‖ init code hash (32)
//
// and the created contract lives at the last 20 bytes of its Keccak-256
// digest.
package create2

import (
	"github.com/trebuchet-org/safevanity/pkg/address"
	"github.com/trebuchet-org/safevanity/pkg/keccak"
)

const (
	// PreimageSize is the length of the CREATE2 preimage.
	PreimageSize = 1 + address.Length + 32 + keccak.Size

	marker = 0xff

	factoryOffset      = 1
	saltOffset         = factoryOffset + address.Length
	initCodeHashOffset = saltOffset + 32
)

// Preimage holds CREATE2 parameters and derives the resulting address on
// demand. Fields are updated independently; the digest is only computed by
// Address.
//
// A Preimage is not safe for concurrent use. Use Clone to hand a copy to
// another goroutine.
type Preimage struct {
	buf    [PreimageSize]byte
	hasher keccak.Hasher
}

// New creates a preimage for the specified parameters.
func New(factory address.Address, salt [32]byte, initCodeHash [keccak.Size]byte) *Preimage {
	p := &Preimage{}
	p.buf[0] = marker
	p.SetFactory(factory)
	p.SetSalt(salt)
	p.SetInitCodeHash(initCodeHash)
	return p
}

// Factory returns the deploying factory address.
func (p *Preimage) Factory() address.Address {
	var a address.Address
	copy(a[:], p.buf[factoryOffset:saltOffset])
	return a
}

// SetFactory updates the deploying factory address.
func (p *Preimage) SetFactory(factory address.Address) {
	copy(p.buf[factoryOffset:saltOffset], factory[:])
}

// Salt returns the CREATE2 salt.
func (p *Preimage) Salt() [32]byte {
	var s [32]byte
	copy(s[:], p.buf[saltOffset:initCodeHashOffset])
	return s
}

// SetSalt updates the CREATE2 salt.
func (p *Preimage) SetSalt(salt [32]byte) {
	copy(p.buf[saltOffset:initCodeHashOffset], salt[:])
}

// HashSalt sets the salt to the Keccak-256 digest of data.
func (p *Preimage) HashSalt(data []byte) {
	p.hasher.Sum(p.buf[saltOffset:initCodeHashOffset], data)
}

// InitCodeHash returns the digest of the contract init code.
func (p *Preimage) InitCodeHash() [keccak.Size]byte {
	var h [keccak.Size]byte
	copy(h[:], p.buf[initCodeHashOffset:])
	return h
}

// SetInitCodeHash updates the digest of the contract init code.
func (p *Preimage) SetInitCodeHash(hash [keccak.Size]byte) {
	copy(p.buf[initCodeHashOffset:], hash[:])
}

// Bytes returns a copy of the full 85 byte preimage.
func (p *Preimage) Bytes() []byte {
	return append([]byte(nil), p.buf[:]...)
}

// Address returns the address of the contract created with these
// parameters.
func (p *Preimage) Address() address.Address {
	var digest [keccak.Size]byte
	p.hasher.Sum(digest[:], p.buf[:])

	var a address.Address
	copy(a[:], digest[keccak.Size-address.Length:])
	return a
}

// Clone returns an independent copy of the preimage.
func (p *Preimage) Clone() *Preimage {
	return &Preimage{buf: p.buf}
}

// Address computes a CREATE2 address in one shot.
func Address(factory address.Address, salt [32]byte, initCodeHash [keccak.Size]byte) address.Address {
	return New(factory, salt, initCodeHash).Address()
}
