package safe

import (
	"bytes"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/trebuchet-org/safevanity/pkg/address"
)

const (
	proxyFactoryABI = `[{
		"type": "function",
		"name": "createProxyWithNonce",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "_singleton", "type": "address"},
			{"name": "initializer", "type": "bytes"},
			{"name": "saltNonce", "type": "uint256"}
		],
		"outputs": [{"name": "proxy", "type": "address"}]
	}]`

	safeABI = `[{
		"type": "function",
		"name": "setup",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "_owners", "type": "address[]"},
			{"name": "_threshold", "type": "uint256"},
			{"name": "to", "type": "address"},
			{"name": "data", "type": "bytes"},
			{"name": "fallbackHandler", "type": "address"},
			{"name": "paymentToken", "type": "address"},
			{"name": "payment", "type": "uint256"},
			{"name": "paymentReceiver", "type": "address"}
		],
		"outputs": []
	}]`

	safeToL2SetupABI = `[{
		"type": "function",
		"name": "setupToL2",
		"stateMutability": "nonpayable",
		"inputs": [{"name": "l2Singleton", "type": "address"}],
		"outputs": []
	}]`
)

var (
	proxyFactoryContract  = mustParseABI(proxyFactoryABI)
	safeContract          = mustParseABI(safeABI)
	safeToL2SetupContract = mustParseABI(safeToL2SetupABI)
)

// DecodedDeployment is a createProxyWithNonce call decoded down to the
// arguments of the Safe setup call.
type DecodedDeployment struct {
	Singleton   address.Address `json:"singleton" yaml:"singleton"`
	Initializer []byte          `json:"-" yaml:"-"`
	SaltNonce   [32]byte        `json:"-" yaml:"-"`

	Owners    []address.Address `json:"owners" yaml:"owners"`
	Threshold *big.Int          `json:"threshold" yaml:"threshold"`
	SetupTo   address.Address   `json:"setupTo" yaml:"setupTo"`
	SetupData []byte            `json:"-" yaml:"-"`
	// L2Singleton is set when the setup call is a SafeToL2Setup.setupToL2
	// call.
	L2Singleton     *address.Address `json:"l2Singleton,omitempty" yaml:"l2Singleton,omitempty"`
	FallbackHandler address.Address  `json:"fallbackHandler" yaml:"fallbackHandler"`
	PaymentToken    address.Address  `json:"paymentToken" yaml:"paymentToken"`
	Payment         *big.Int         `json:"payment" yaml:"payment"`
	PaymentReceiver address.Address  `json:"paymentReceiver" yaml:"paymentReceiver"`
}

// DecodeTransaction decodes SafeProxyFactory.createProxyWithNonce calldata.
func DecodeTransaction(calldata []byte) (*DecodedDeployment, error) {
	args, err := unpack(proxyFactoryContract, CreateProxyWithNonceSelector, calldata)
	if err != nil {
		return nil, err
	}

	d := &DecodedDeployment{
		Singleton:   address.FromCommon(args[0].(common.Address)),
		Initializer: args[1].([]byte),
	}
	nonce, overflow := uint256.FromBig(args[2].(*big.Int))
	if overflow {
		return nil, fmt.Errorf("%w: salt nonce overflows 256 bits", ErrInvalidCalldata)
	}
	d.SaltNonce = nonce.Bytes32()

	if err := d.decodeInitializer(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *DecodedDeployment) decodeInitializer() error {
	args, err := unpack(safeContract, SetupSelector, d.Initializer)
	if err != nil {
		return fmt.Errorf("initializer: %w", err)
	}

	for _, owner := range args[0].([]common.Address) {
		d.Owners = append(d.Owners, address.FromCommon(owner))
	}
	d.Threshold = args[1].(*big.Int)
	d.SetupTo = address.FromCommon(args[2].(common.Address))
	d.SetupData = args[3].([]byte)
	d.FallbackHandler = address.FromCommon(args[4].(common.Address))
	d.PaymentToken = address.FromCommon(args[5].(common.Address))
	d.Payment = args[6].(*big.Int)
	d.PaymentReceiver = address.FromCommon(args[7].(common.Address))

	if bytes.HasPrefix(d.SetupData, SafeToL2SetupSelector[:]) {
		l2, err := unpack(safeToL2SetupContract, SafeToL2SetupSelector, d.SetupData)
		if err != nil {
			return fmt.Errorf("setup data: %w", err)
		}
		singleton := address.FromCommon(l2[0].(common.Address))
		d.L2Singleton = &singleton
	}
	return nil
}

// Options rebuilds the deployment options for a proxy created by factory
// with initCode. It fails for setup calls this package does not produce.
func (d *DecodedDeployment) Options(factory address.Address, initCode []byte) (Options, error) {
	if !d.PaymentToken.IsZero() || d.Payment.Sign() != 0 {
		return Options{}, fmt.Errorf("%w: setup with payment", ErrInvalidCalldata)
	}
	if !d.Threshold.IsInt64() {
		return Options{}, fmt.Errorf("%w: threshold %s", ErrInvalidCalldata, d.Threshold)
	}

	opts := Options{
		ProxyFactory:    factory,
		ProxyInitCode:   initCode,
		Singleton:       d.Singleton,
		Owners:          d.Owners,
		Threshold:       int(d.Threshold.Int64()),
		FallbackHandler: d.FallbackHandler,
		Identifier:      d.PaymentReceiver,
	}
	switch {
	case d.L2Singleton != nil:
		opts.SafeToL2Setup = d.SetupTo
		opts.L2Singleton = *d.L2Singleton
	case !d.SetupTo.IsZero() || len(d.SetupData) != 0:
		return Options{}, fmt.Errorf("%w: unsupported setup call to %s", ErrInvalidCalldata, d.SetupTo)
	}
	return opts, nil
}

func unpack(contract abi.ABI, selector [4]byte, calldata []byte) ([]any, error) {
	if len(calldata) < len(selector) {
		return nil, fmt.Errorf("%w: %d bytes is too short", ErrInvalidCalldata, len(calldata))
	}
	method, err := contract.MethodById(calldata[:4])
	if err != nil || !bytes.Equal(method.ID, selector[:]) {
		return nil, fmt.Errorf("%w: unexpected selector %x", ErrInvalidCalldata, calldata[:4])
	}
	args, err := method.Inputs.Unpack(calldata[4:])
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidCalldata, method.Name, err)
	}
	return args, nil
}

func mustParseABI(definition string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(definition))
	if err != nil {
		panic(fmt.Sprintf("safe: invalid ABI: %v", err))
	}
	return parsed
}
