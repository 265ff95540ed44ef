package chains

import (
	"encoding/hex"
	"strings"

	"github.com/trebuchet-org/safevanity/internal/domain"
	"github.com/trebuchet-org/safevanity/pkg/address"
)

// SafeProxy creation code shared by the v1.3.0 and v1.4.1 factories, as
// returned by SafeProxyFactory.proxyCreationCode(). The releases only differ
// in the Solidity metadata hash.
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
)

// V141 is the canonical Safe v1.4.1 deployment.
// https://github.com/safe-global/safe-deployments/tree/main/src/assets/v1.4.1
var V141 = domain.Deployment{
	Version:         "1.4.1",
	ProxyFactory:    address.MustNonZero("0x4e1DCf7AD4e460CfD30791CCC4F9c8a4f820ec67"),
	ProxyInitCode:   proxyCreationCode("03d1488ee65e08fa41e58e888a9865554c535f2c77126a82cb4c0f917f314413"),
	Safe:            address.MustNonZero("0x41675C099F32341bf84BFc5382aF534df5C7461a"),
	SafeL2:          address.MustNonZero("0x29fcB43b46531BcA003ddC8FCB67FFE91900C762"),
	SafeToL2Setup:   address.MustParse("0xBD89A1CE4DDe368FFAB0eC35506eEcE0b1fFdc54"),
	FallbackHandler: address.MustParse("0xfd0732Dc9E303f09fCEf3a7388Ad10A83459Ec99"),
}

// V130 is the canonical Safe v1.3.0 deployment.
// https://github.com/safe-global/safe-deployments/tree/main/src/assets/v1.3.0
var V130 = domain.Deployment{
	Version:         "1.3.0",
	ProxyFactory:    address.MustNonZero("0xa6B71E26C5e0845f74c812102Ca7114b6a896AB2"),
	ProxyInitCode:   proxyCreationCode("d1429297349653a4918076d650332de1a1068c5f3e07c5c82360c277770b9552"),
	Safe:            address.MustNonZero("0xd9Db270c1B5E3Bd161E8c8503c55cEABeE709552"),
	SafeL2:          address.MustNonZero("0x3E5c63644E683549055b9Be8653de26E0B4CD36E"),
	FallbackHandler: address.MustParse("0xf48f2B2d2a534e402487b3ee7C18c33Aec0Fe5e4"),
}

// Deployments are the built-in deployments by version.
var Deployments = map[string]*domain.Deployment{
	V141.Version: &V141,
	V130.Version: &V130,
}

type builtinChain struct {
	id         domain.ChainID
	name       string
	deployment *domain.Deployment
	explorer   domain.Explorer
	singleton  domain.SingletonKind
}

// builtinChains are the chains with official Safe deployments, by chain ID.
var builtinChains = []builtinChain{
	{1, "eth", &V141, domain.EtherscanExplorer("https://etherscan.io"), domain.SingletonSafe},
	{10, "oeth", &V141, domain.EtherscanExplorer("https://optimistic.etherscan.io"), domain.SingletonSafeL2},
	{56, "bnb", &V141, domain.EtherscanExplorer("https://bscscan.com"), domain.SingletonSafeL2},
	{100, "gno", &V141, domain.EtherscanExplorer("https://gnosisscan.io"), domain.SingletonSafeL2},
	{130, "unichain", &V141, domain.EtherscanExplorer("https://uniscan.xyz"), domain.SingletonSafeL2},
	{137, "matic", &V141, domain.EtherscanExplorer("https://polygonscan.com"), domain.SingletonSafeL2},
	{146, "sonic", &V141, domain.EtherscanExplorer("https://sonicscan.org"), domain.SingletonSafeL2},
	{196, "xlayer", &V141, domain.Explorer{
		URL:      "https://www.oklink.com/xlayer",
		Selector: "/contract#category=write&id=2",
	}, domain.SingletonSafeL2},
	{480, "wc", &V141, domain.BlockscoutExplorer("https://worldchain-mainnet.explorer.alchemy.com"), domain.SingletonSafeL2},
	{1101, "zkevm", &V141, domain.EtherscanExplorer("https://zkevm.polygonscan.com"), domain.SingletonSafeL2},
	{5000, "mnt", &V141, domain.EtherscanExplorer("https://mantlescan.xyz"), domain.SingletonSafeL2},
	{8453, "base", &V141, domain.EtherscanExplorer("https://basescan.org"), domain.SingletonSafeL2},
	{10200, "chiado", &V130, domain.BlockscoutExplorer("https://gnosis-chiado.blockscout.com"), domain.SingletonSafeL2},
	{42161, "arb1", &V141, domain.EtherscanExplorer("https://arbiscan.io"), domain.SingletonSafeL2},
	{42220, "celo", &V141, domain.BlockscoutExplorer("https://explorer.celo.org/mainnet"), domain.SingletonSafeL2},
	{43114, "avax", &V141, domain.Explorer{
		URL:      "https://snowtrace.io",
		Selector: "/contract/43114/writeContract?chainid=43114#F3",
	}, domain.SingletonSafeL2},
	{57073, "ink", &V141, domain.BlockscoutExplorer("https://explorer.inkonchain.com"), domain.SingletonSafeL2},
	{59144, "linea", &V141, domain.EtherscanExplorer("https://lineascan.build"), domain.SingletonSafeL2},
	{80094, "berachain", &V141, domain.EtherscanExplorer("https://berascan.com"), domain.SingletonSafeL2},
	{81457, "blast", &V141, domain.EtherscanExplorer("https://blastscan.io"), domain.SingletonSafeL2},
	{84532, "basesep", &V141, domain.EtherscanExplorer("https://sepolia.basescan.org"), domain.SingletonSafeL2},
	{534352, "scr", &V141, domain.EtherscanExplorer("https://scrollscan.com"), domain.SingletonSafeL2},
	{11155111, "sep", &V141, domain.EtherscanExplorer("https://sepolia.etherscan.io"), domain.SingletonSafeL2},
	{1313161554, "aurora", &V141, domain.BlockscoutExplorer("https://aurorascan.dev"), domain.SingletonSafeL2},
}

// zkSync Era derives contract addresses differently from CREATE2.
var zkSyncEra = domain.Chain{ID: 324, Name: "zksync", Singleton: domain.SingletonSafeL2, Unsupported: true}

func proxyCreationCode(metadata string) []byte {
	code, err := hex.DecodeString(strings.Join([]string{proxyCreationCodeHead, metadata, proxyCreationCodeTail}, ""))
	if err != nil {
		panic(err)
	}
	return code
}
