package address

import (
	"fmt"
)

// NonZeroAddress is an Address that is guaranteed not to be the zero
// address when built by NewNonZero, ParseNonZero, MustNonZero or
// Address.NonZero. Its zero value is invalid and only exists as a
// placeholder; callers holding one from a struct literal should treat
// Get().IsZero() as unset.
type NonZeroAddress struct {
	addr Address
}

// NewNonZero refines a as a non-zero address.
func NewNonZero(a Address) (NonZeroAddress, error) {
	nz, ok := a.NonZero()
	if !ok {
		return NonZeroAddress{}, fmt.Errorf("%w: %w", ErrInvalidAddress, ErrZeroAddress)
	}
	return nz, nil
}

// ParseNonZero parses s and refines it as a non-zero address.
func ParseNonZero(s string) (NonZeroAddress, error) {
	a, err := Parse(s)
	if err != nil {
		return NonZeroAddress{}, err
	}
	return NewNonZero(a)
}

// MustNonZero parses s as a non-zero address and panics on error. It is
// intended for initializing well-known contract addresses.
func MustNonZero(s string) NonZeroAddress {
	nz, err := ParseNonZero(s)
	if err != nil {
		panic(err)
	}
	return nz
}

// Get returns the underlying address.
func (nz NonZeroAddress) Get() Address {
	return nz.addr
}

// String renders the address in EIP-55 mixed-case hex.
func (nz NonZeroAddress) String() string {
	return nz.addr.String()
}

// MarshalText renders the checksummed address.
func (nz NonZeroAddress) MarshalText() ([]byte, error) {
	return nz.addr.MarshalText()
}

// UnmarshalText parses a hex address and rejects the zero address.
func (nz *NonZeroAddress) UnmarshalText(text []byte) error {
	parsed, err := ParseNonZero(string(text))
	if err != nil {
		return err
	}
	*nz = parsed
	return nil
}

// Unwrap returns the underlying addresses of a list of non-zero addresses.
func Unwrap(list []NonZeroAddress) []Address {
	out := make([]Address, len(list))
	for i, nz := range list {
		out[i] = nz.addr
	}
	return out
}
