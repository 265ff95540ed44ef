package cli

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
	"github.com/spf13/pflag"
	"github.com/trebuchet-org/safevanity/internal/usecase"
	"github.com/trebuchet-org/safevanity/pkg/address"
)

// addressValue is an optional address flag
type addressValue struct {
	value *address.Address
	input string
}

func (a *addressValue) Set(s string) error {
	parsed, err := address.Parse(s)
	if err != nil {
		return err
	}
	a.value = &parsed
	a.input = s
	return nil
}

// checksum verifies the EIP-55 checksum of a mixed-case input
func (a *addressValue) checksum() error {
	if a.value == nil {
		return nil
	}
	_, err := address.Checksum(a.input)
	return err
}

func (a *addressValue) String() string {
	if a.value == nil {
		return ""
	}
	return a.value.String()
}

func (a *addressValue) Type() string {
	return "address"
}

// addressListValue is a repeatable address flag that also accepts comma
// separated lists
type addressListValue struct {
	values []address.Address
	inputs []string
}

func (l *addressListValue) Set(s string) error {
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		parsed, err := address.Parse(part)
		if err != nil {
			return err
		}
		l.values = append(l.values, parsed)
		l.inputs = append(l.inputs, part)
	}
	return nil
}

func (l *addressListValue) checksum() error {
	for _, input := range l.inputs {
		if _, err := address.Checksum(input); err != nil {
			return err
		}
	}
	return nil
}

func (l *addressListValue) String() string {
	parts := make([]string, len(l.values))
	for i, v := range l.values {
		parts[i] = v.String()
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func (l *addressListValue) Type() string {
	return "address"
}

// hexValue is a hex encoded byte string flag, with or without 0x prefix
type hexValue struct {
	value []byte
}

func (h *hexValue) Set(s string) error {
	digits := s
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		digits = digits[2:]
	}
	if digits == "" {
		return fmt.Errorf("invalid hex %q: empty", s)
	}
	decoded, err := hexutil.Decode("0x" + digits)
	if err != nil {
		return fmt.Errorf("invalid hex %q: %w", s, err)
	}
	h.value = decoded
	return nil
}

func (h *hexValue) String() string {
	if h.value == nil {
		return ""
	}
	return hexutil.Encode(h.value)
}

func (h *hexValue) Type() string {
	return "hex"
}

// parseSaltNonce parses a decimal uint256 or a 0x prefixed big endian hex
// value of up to 32 bytes
func parseSaltNonce(s string) ([32]byte, error) {
	var nonce [32]byte
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		digits := s[2:]
		if digits == "" {
			return nonce, fmt.Errorf("invalid salt nonce %q: no digits", s)
		}
		if len(digits)%2 == 1 {
			digits = "0" + digits
		}
		b, err := hexutil.Decode("0x" + digits)
		if err != nil {
			return nonce, fmt.Errorf("invalid salt nonce %q: %w", s, err)
		}
		if len(b) > len(nonce) {
			return nonce, fmt.Errorf("invalid salt nonce %q: longer than 32 bytes", s)
		}
		copy(nonce[len(nonce)-len(b):], b)
		return nonce, nil
	}

	n, err := uint256.FromDecimal(s)
	if err != nil {
		return nonce, fmt.Errorf("invalid salt nonce %q: %w", s, err)
	}
	return n.Bytes32(), nil
}

// safeFlags holds the Safe account and contract override flags shared by the
// commands that build a Safe deployment
type safeFlags struct {
	owners          addressListValue
	threshold       int
	proxyFactory    addressValue
	proxyInitCode   hexValue
	singleton       addressValue
	fallbackHandler addressValue
	safeToL2Setup   addressValue
	l2Singleton     addressValue
	identifier      addressValue
	noL2Setup       bool
}

func (f *safeFlags) register(flags *pflag.FlagSet) {
	flags.VarP(&f.owners, "owner", "o", "Safe owner, repeat for multiple owners (kept in the given order)")
	flags.IntVarP(&f.threshold, "threshold", "t", 1, "Owner signature threshold")
	flags.Var(&f.proxyFactory, "proxy-factory", "Override for the SafeProxyFactory address")
	flags.Var(&f.proxyInitCode, "proxy-init-code", "Override for the SafeProxy init code")
	flags.Var(&f.singleton, "singleton", "Override for the Safe singleton address")
	flags.Var(&f.fallbackHandler, "fallback-handler", "Override for the fallback handler address")
	flags.Var(&f.safeToL2Setup, "safe-to-l2-setup", "Override for the SafeToL2Setup contract address")
	flags.Var(&f.l2Singleton, "l2-singleton", "Override for the SafeL2 singleton the setup switches to")
	flags.Var(&f.identifier, "identifier", "Address appended as the setup payment receiver to tag the deployment")
	flags.BoolVar(&f.noL2Setup, "no-l2-setup", false, "Deploy the chain's singleton directly without the SafeToL2Setup call")
}

// params builds the Safe parameters. With strict set, mixed-case addresses
// must carry a valid EIP-55 checksum.
func (f *safeFlags) params(strict bool) (usecase.SafeParams, error) {
	if strict {
		if err := f.checksum(); err != nil {
			return usecase.SafeParams{}, err
		}
	}

	return usecase.SafeParams{
		Owners:          f.owners.values,
		Threshold:       f.threshold,
		ProxyFactory:    f.proxyFactory.value,
		ProxyInitCode:   f.proxyInitCode.value,
		Singleton:       f.singleton.value,
		FallbackHandler: f.fallbackHandler.value,
		SafeToL2Setup:   f.safeToL2Setup.value,
		L2Singleton:     f.l2Singleton.value,
		NoL2Setup:       f.noL2Setup,
		Identifier:      f.identifier.value,
	}, nil
}

func (f *safeFlags) checksum() error {
	if err := f.owners.checksum(); err != nil {
		return err
	}
	for _, v := range []*addressValue{
		&f.proxyFactory, &f.singleton, &f.fallbackHandler,
		&f.safeToL2Setup, &f.l2Singleton, &f.identifier,
	} {
		if err := v.checksum(); err != nil {
			return err
		}
	}
	return nil
}
