package safe_test

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/safevanity/pkg/address"
	"github.com/trebuchet-org/safevanity/pkg/safe"
)

// SafeProxy creation code shared by the v1.3.0 and v1.4.1 factories. Only
// the Solidity metadata hash differs between the two releases.
const (
	proxyCreationCodeHead = "608060405234801561001057600080fd5b506040516101e63803806101e68339" +
		"818101604052602081101561003357600080fd5b810190808051906020019092" +
		"9190505050600073ffffffffffffffffffffffffffffffffffffffff168173ff" +
		"ffffffffffffffffffffffffffffffffffffff1614156100ca576040517f08c3" +
		"79a0000000000000000000000000000000000000000000000000000000008152" +
		"6004018080602001828103825260228152602001806101c46022913960400191" +
		"505060405180910390fd5b806000806101000a81548173ffffffffffffffffff" +
		"ffffffffffffffffffffff021916908373ffffffffffffffffffffffffffffff" +
		"ffffffffff1602179055505060ab806101196000396000f3fe608060405273ff" +
		"ffffffffffffffffffffffffffffffffffffff600054167fa619486e00000000" +
		"0000000000000000000000000000000000000000000000006000351415605057" +
		"8060005260206000f35b3660008037600080366000845af43d6000803e600081" +
		"14156070573d6000fd5b3d6000f3fea2646970667358221220"
	proxyCreationCodeTail = "64736f6c63430007060033496e76616c69642073696e676c65746f6e20616464" +
		"726573732070726f7669646564"

	v141Metadata = "03d1488ee65e08fa41e58e888a9865554c535f2c77126a82cb4c0f917f314413"
	v130Metadata = "d1429297349653a4918076d650332de1a1068c5f3e07c5c82360c277770b9552"
)

type deployment struct {
	factory         string
	initCode        string
	safe            string
	safeL2          string
	safeToL2Setup   string
	fallbackHandler string
}

var (
	v141 = deployment{
		factory:         "0x4e1DCf7AD4e460CfD30791CCC4F9c8a4f820ec67",
		initCode:        proxyCreationCodeHead + v141Metadata + proxyCreationCodeTail,
		safe:            "0x41675C099F32341bf84BFc5382aF534df5C7461a",
		safeL2:          "0x29fcB43b46531BcA003ddC8FCB67FFE91900C762",
		safeToL2Setup:   "0xBD89A1CE4DDe368FFAB0eC35506eEcE0b1fFdc54",
		fallbackHandler: "0xfd0732Dc9E303f09fCEf3a7388Ad10A83459Ec99",
	}
	v130 = deployment{
		factory:         "0xa6B71E26C5e0845f74c812102Ca7114b6a896AB2",
		initCode:        proxyCreationCodeHead + v130Metadata + proxyCreationCodeTail,
		safe:            "0xd9Db270c1B5E3Bd161E8c8503c55cEABeE709552",
		safeL2:          "0x3E5c63644E683549055b9Be8653de26E0B4CD36E",
		fallbackHandler: "0xf48f2B2d2a534e402487b3ee7C18c33Aec0Fe5e4",
	}
)

func repeatAddress(digit string) address.Address {
	return address.MustParse(strings.Repeat(digit, 40))
}

// mustHex decodes hex words, ignoring any whitespace between them.
func mustHex(t testing.TB, words ...string) []byte {
	t.Helper()
	b, err := hex.DecodeString(strings.Join(strings.Fields(strings.Join(words, " ")), ""))
	require.NoError(t, err)
	return b
}

// testOptions is a three owner, two confirmation Safe without an L2 setup.
func testOptions() safe.Options {
	return safe.Options{
		ProxyFactory:    repeatAddress("1"),
		Singleton:       repeatAddress("2"),
		FallbackHandler: repeatAddress("3"),
		Owners:          []address.Address{repeatAddress("a"), repeatAddress("b"), repeatAddress("c")},
		Threshold:       2,
	}
}

func mustConfiguration(t testing.TB, opts safe.Options) *safe.Configuration {
	t.Helper()
	cfg, err := safe.NewConfiguration(opts)
	require.NoError(t, err)
	return cfg
}
