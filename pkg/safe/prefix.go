package safe

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"math"
	"strings"

	"github.com/trebuchet-org/safevanity/pkg/address"
)

// MaxPrefixNibbles is the longest prefix an address can match.
const MaxPrefixNibbles = 2 * address.Length

// Prefix is a hex digit prefix an address must start with. Matching is
// nibble-granular: a prefix of k hex digits constrains the first k nibbles
// of the address, high nibble first, so odd-length prefixes are supported.
type Prefix struct {
	// full holds the complete leading bytes.
	full []byte
	// half is the trailing high nibble of an odd-length prefix.
	half    byte
	hasHalf bool
}

// ParsePrefix parses a case-insensitive hex prefix with an optional 0x.
func ParsePrefix(s string) (Prefix, error) {
	digits := strings.ToLower(s)
	if len(digits) >= 2 && digits[:2] == "0x" {
		digits = digits[2:]
	}
	if len(digits) > MaxPrefixNibbles {
		return Prefix{}, fmt.Errorf("%w %q: longer than %d hex digits", ErrInvalidPrefix, s, MaxPrefixNibbles)
	}

	var p Prefix
	if len(digits)%2 == 1 {
		last := digits[len(digits)-1]
		nibble, ok := fromHexDigit(last)
		if !ok {
			return Prefix{}, fmt.Errorf("%w %q: invalid hex digit %q", ErrInvalidPrefix, s, last)
		}
		p.half, p.hasHalf = nibble, true
		digits = digits[:len(digits)-1]
	}

	full, err := hex.DecodeString(digits)
	if err != nil {
		return Prefix{}, fmt.Errorf("%w %q: %w", ErrInvalidPrefix, s, err)
	}
	p.full = full
	return p, nil
}

// MustParsePrefix is like ParsePrefix but panics on error.
func MustParsePrefix(s string) Prefix {
	p, err := ParsePrefix(s)
	if err != nil {
		panic(err)
	}
	return p
}

// BytePrefix returns a prefix matching the leading bytes b.
func BytePrefix(b []byte) (Prefix, error) {
	if len(b) > address.Length {
		return Prefix{}, fmt.Errorf("%w: longer than %d bytes", ErrInvalidPrefix, address.Length)
	}
	return Prefix{full: bytes.Clone(b)}, nil
}

// Matches reports whether a starts with the prefix.
func (p Prefix) Matches(a address.Address) bool {
	if !bytes.HasPrefix(a[:], p.full) {
		return false
	}
	return !p.hasHalf || a[len(p.full)]>>4 == p.half
}

// Nibbles returns the number of hex digits in the prefix.
func (p Prefix) Nibbles() int {
	n := 2 * len(p.full)
	if p.hasHalf {
		n++
	}
	return n
}

// ExpectedAttempts is the mean number of uniformly random addresses that
// have to be tried before one matches.
func (p Prefix) ExpectedAttempts() float64 {
	return math.Pow(16, float64(p.Nibbles()))
}

// String returns the lower-case hex digits of the prefix with a 0x.
func (p Prefix) String() string {
	s := "0x" + hex.EncodeToString(p.full)
	if p.hasHalf {
		s += string("0123456789abcdef"[p.half])
	}
	return s
}

func fromHexDigit(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}
