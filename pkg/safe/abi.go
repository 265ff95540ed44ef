package safe

import (
	"github.com/holiman/uint256"
	"github.com/trebuchet-org/safevanity/pkg/address"
)

// Function selectors of the contract calls encoded by this package.
var (
	// SetupSelector is `Safe.setup(address[],uint256,address,bytes,address,address,uint256,address)`.
	SetupSelector = [4]byte{0xb6, 0x3e, 0x80, 0x0d}
	// SafeToL2SetupSelector is `SafeToL2Setup.setupToL2(address)`.
	SafeToL2SetupSelector = [4]byte{0xfe, 0x51, 0xf6, 0x43}
	// CreateProxyWithNonceSelector is `SafeProxyFactory.createProxyWithNonce(address,bytes,uint256)`.
	CreateProxyWithNonceSelector = [4]byte{0x16, 0x88, 0xf0, 0xb9}
)

const wordSize = 32

// Head layout of the setup call: eight static words precede the owners
// array, and the data bytes directly follow the owners.
const (
	setupHeadWords    = 8
	setupOwnersOffset = setupHeadWords * wordSize
	setupDataOffset   = setupOwnersOffset + wordSize
)

// Initializer encodes the Safe `setup` call that the proxy factory forwards
// to a freshly created proxy.
func (a Account) Initializer() []byte {
	to, data := a.SetupCall()

	var fallbackHandler, paymentReceiver address.Address
	if a.FallbackHandler != nil {
		fallbackHandler = a.FallbackHandler.Get()
	}
	if a.Identifier != nil {
		paymentReceiver = *a.Identifier
	}

	return encodeSetup(address.Unwrap(a.Owners), a.Threshold, to, data, fallbackHandler, paymentReceiver)
}

// SetupCall returns the optional delegate call performed during setup. It
// targets the SafeToL2Setup contract when one is configured, and is the zero
// address with empty data otherwise.
func (a Account) SetupCall() (address.Address, []byte) {
	if a.Setup == nil {
		return address.Address{}, nil
	}
	return a.Setup.Address.Get(), a.Setup.Calldata()
}

// Calldata encodes `setupToL2(l2Singleton)`.
func (s SafeToL2Setup) Calldata() []byte {
	var e encoder
	e.grow(4 + wordSize)
	e.selector(SafeToL2SetupSelector)
	e.address(s.L2Singleton.Get())
	return e.buf
}

// CreateProxyWithNonce encodes the factory call that deploys the proxy.
func (p Proxy) CreateProxyWithNonce(initializer []byte, saltNonce [32]byte) []byte {
	var e encoder
	e.grow(4 + 4*wordSize + paddedLen(len(initializer)))
	e.selector(CreateProxyWithNonceSelector)
	e.address(p.Singleton.Get())
	e.uint(3 * wordSize) // initializer offset
	e.word(saltNonce)
	e.bytes(initializer)
	return e.buf
}

func encodeSetup(
	owners []address.Address,
	threshold int,
	to address.Address,
	data []byte,
	fallbackHandler address.Address,
	paymentReceiver address.Address,
) []byte {
	var e encoder
	e.grow(4 + (setupHeadWords+2+len(owners))*wordSize + paddedLen(len(data)))

	e.selector(SetupSelector)
	e.uint(setupOwnersOffset)
	e.uint(threshold)
	e.address(to)
	e.uint(setupDataOffset + wordSize*len(owners))
	e.address(fallbackHandler)
	e.address(address.Address{}) // payment token
	e.uint(0)                    // payment
	e.address(paymentReceiver)

	e.uint(len(owners))
	for _, owner := range owners {
		e.address(owner)
	}
	e.bytes(data)

	return e.buf
}

// encoder appends ABI words to a buffer.
type encoder struct {
	buf []byte
}

func (e *encoder) grow(n int) {
	e.buf = make([]byte, 0, n)
}

func (e *encoder) selector(s [4]byte) {
	e.buf = append(e.buf, s[:]...)
}

func (e *encoder) word(w [wordSize]byte) {
	e.buf = append(e.buf, w[:]...)
}

func (e *encoder) uint(n int) {
	e.word(uint256.NewInt(uint64(n)).Bytes32())
}

func (e *encoder) address(a address.Address) {
	e.word(word(a))
}

// bytes appends a dynamic bytes tail: length, data and zero padding.
func (e *encoder) bytes(data []byte) {
	e.uint(len(data))
	e.buf = append(e.buf, data...)
	e.buf = append(e.buf, make([]byte, paddedLen(len(data))-len(data))...)
}

func word(a address.Address) [wordSize]byte {
	var w [wordSize]byte
	copy(w[wordSize-address.Length:], a[:])
	return w
}

func paddedLen(n int) int {
	return (n + wordSize - 1) / wordSize * wordSize
}
