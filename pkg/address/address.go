// Package address implements 20-byte Ethereum addresses with EIP-55 checksum
// rendering and a non-zero refinement.
package address

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/trebuchet-org/safevanity/pkg/keccak"
)

// Length is the number of bytes in an address.
const Length = common.AddressLength

var (
	// ErrInvalidAddress is returned when an address cannot be decoded or
	// violates the non-zero invariant.
	ErrInvalidAddress = errors.New("invalid address")

	// ErrZeroAddress is returned when a non-zero address is constructed from
	// the zero address.
	ErrZeroAddress = errors.New("zero address")

	// ErrInvalidLength is returned when a hex string does not decode to
	// exactly 20 bytes.
	ErrInvalidLength = errors.New("invalid length")

	// ErrChecksumMismatch is returned when a mixed-case address does not
	// match its EIP-55 checksum.
	ErrChecksumMismatch = errors.New("checksum mismatch")
)

// Address is a 20-byte Ethereum account address. The zero value is used as
// the "absent" sentinel.
type Address [Length]byte

// Zero returns the zero address.
func Zero() Address {
	return Address{}
}

// Parse decodes a 40 digit hex string with an optional 0x prefix.
func Parse(s string) (Address, error) {
	var a Address
	raw, err := hexutil.Decode("0x" + trimPrefix(s))
	if err != nil {
		return a, fmt.Errorf("%w %q: %w", ErrInvalidAddress, s, err)
	}
	if len(raw) != Length {
		return a, fmt.Errorf("%w %q: %w: got %d bytes", ErrInvalidAddress, s, ErrInvalidLength, len(raw))
	}
	copy(a[:], raw)
	return a, nil
}

// MustParse is like Parse but panics on error. It is intended for
// initializing well-known addresses.
func MustParse(s string) Address {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

// FromCommon converts a go-ethereum address.
func FromCommon(a common.Address) Address {
	return Address(a)
}

// Common converts the address to a go-ethereum address.
func (a Address) Common() common.Address {
	return common.Address(a)
}

// Bytes returns a copy of the raw address bytes.
func (a Address) Bytes() []byte {
	return append([]byte(nil), a[:]...)
}

// IsZero reports whether a is the zero address.
func (a Address) IsZero() bool {
	return a == Address{}
}

// NonZero returns the address refined as non-zero, or false if a is zero.
func (a Address) NonZero() (NonZeroAddress, bool) {
	if a.IsZero() {
		return NonZeroAddress{}, false
	}
	return NonZeroAddress{a}, true
}

// String renders the address in EIP-55 mixed-case hex.
func (a Address) String() string {
	buf := make([]byte, 2+2*Length)
	copy(buf, "0x")
	digits := buf[2:]
	hex.Encode(digits, a[:])

	digest := keccak.Sum256(digits)
	for i, c := range digits {
		nibble := digest[i/2]
		if i%2 == 0 {
			nibble >>= 4
		}
		if nibble&0xf >= 8 && c >= 'a' {
			digits[i] = c - 'a' + 'A'
		}
	}
	return string(buf)
}

// Hex is an alias of String.
func (a Address) Hex() string {
	return a.String()
}

// MarshalText renders the checksummed address.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText parses a hex address.
func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Checksum parses s and, when s contains upper-case hex digits, verifies
// that it matches the EIP-55 rendering of the decoded address. All lower-case
// or all upper-case input carries no checksum and is accepted as is.
func Checksum(s string) (Address, error) {
	a, err := Parse(s)
	if err != nil {
		return a, err
	}
	digits := trimPrefix(s)
	if digits == strings.ToLower(digits) || digits == strings.ToUpper(digits) {
		return a, nil
	}
	if expected := a.String(); expected[2:] != digits {
		return a, fmt.Errorf("%w %q: %w, expected %s", ErrInvalidAddress, s, ErrChecksumMismatch, expected)
	}
	return a, nil
}

func trimPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}
