package chains

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/trebuchet-org/safevanity/internal/domain"
	"github.com/trebuchet-org/safevanity/pkg/address"
)

// deploymentsFile is the TOML layout of a deployments file:
//
//	[deployments.custom]
//	proxy_factory = "0x..."
//	proxy_init_code = "0x..."
//	safe = "0x..."
//	safe_l2 = "0x..."
//	safe_to_l2_setup = "0x..."   # optional
//	fallback_handler = "0x..."   # optional
//
//	[[chains]]
//	id = 31337
//	name = "devnet"
//	deployment = "custom"        # or a built-in version such as "1.4.1"
//	singleton = "SafeL2"         # optional, defaults to SafeL2
//	explorer = "https://..."     # optional
//	explorer_selector = "..."    # optional, defaults to Etherscan links
type deploymentsFile struct {
	Deployments map[string]fileDeployment `toml:"deployments"`
	Chains      []fileChain               `toml:"chains"`
}

type fileDeployment struct {
	ProxyFactory    address.Address `toml:"proxy_factory"`
	ProxyInitCode   hexutil.Bytes   `toml:"proxy_init_code"`
	Safe            address.Address `toml:"safe"`
	SafeL2          address.Address `toml:"safe_l2"`
	SafeToL2Setup   address.Address `toml:"safe_to_l2_setup"`
	FallbackHandler address.Address `toml:"fallback_handler"`
}

type fileChain struct {
	ID               uint64 `toml:"id"`
	Name             string `toml:"name"`
	Deployment       string `toml:"deployment"`
	Singleton        string `toml:"singleton"`
	Explorer         string `toml:"explorer"`
	ExplorerSelector string `toml:"explorer_selector"`
}

// LoadFile reads the chains declared in a TOML deployments file.
func LoadFile(path string) ([]*domain.Chain, error) {
	var file deploymentsFile
	md, err := toml.DecodeFile(path, &file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse deployments file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("%w: unknown keys in %s: %s", domain.ErrInvalidDeployment, path, strings.Join(keys, ", "))
	}

	return file.chains()
}

func (f *deploymentsFile) chains() ([]*domain.Chain, error) {
	deployments := make(map[string]*domain.Deployment, len(Deployments)+len(f.Deployments))
	for version, d := range Deployments {
		deployments[version] = d
	}
	for name, fd := range f.Deployments {
		d, err := fd.deployment(name)
		if err != nil {
			return nil, err
		}
		deployments[name] = d
	}

	chains := make([]*domain.Chain, 0, len(f.Chains))
	for _, fc := range f.Chains {
		if fc.ID == 0 {
			return nil, fmt.Errorf("%w: chain %q has no id", domain.ErrInvalidDeployment, fc.Name)
		}
		d, ok := deployments[fc.Deployment]
		if !ok {
			return nil, fmt.Errorf("%w: chain %d references unknown deployment %q", domain.ErrInvalidDeployment, fc.ID, fc.Deployment)
		}

		chain := &domain.Chain{
			ID:         domain.ChainID(fc.ID),
			Name:       strings.ToLower(fc.Name),
			Deployment: d,
			Singleton:  domain.SingletonSafeL2,
		}
		switch domain.SingletonKind(fc.Singleton) {
		case "", domain.SingletonSafeL2:
		case domain.SingletonSafe:
			chain.Singleton = domain.SingletonSafe
		default:
			return nil, fmt.Errorf("%w: chain %d has unknown singleton %q", domain.ErrInvalidDeployment, fc.ID, fc.Singleton)
		}
		if fc.Explorer != "" {
			explorer := domain.EtherscanExplorer(fc.Explorer)
			if fc.ExplorerSelector != "" {
				explorer.Selector = fc.ExplorerSelector
			}
			chain.Explorer = &explorer
		}
		chains = append(chains, chain)
	}
	return chains, nil
}

func (fd fileDeployment) deployment(name string) (*domain.Deployment, error) {
	required := []struct {
		field string
		value address.Address
	}{
		{"proxy_factory", fd.ProxyFactory},
		{"safe", fd.Safe},
		{"safe_l2", fd.SafeL2},
	}
	nonZero := make([]address.NonZeroAddress, len(required))
	for i, r := range required {
		nz, err := address.NewNonZero(r.value)
		if err != nil {
			return nil, fmt.Errorf("%w: deployment %q: %s: %w", domain.ErrInvalidDeployment, name, r.field, err)
		}
		nonZero[i] = nz
	}
	if len(fd.ProxyInitCode) == 0 {
		return nil, fmt.Errorf("%w: deployment %q: proxy_init_code is required", domain.ErrInvalidDeployment, name)
	}

	return &domain.Deployment{
		Version:         name,
		ProxyFactory:    nonZero[0],
		ProxyInitCode:   fd.ProxyInitCode,
		Safe:            nonZero[1],
		SafeL2:          nonZero[2],
		SafeToL2Setup:   fd.SafeToL2Setup,
		FallbackHandler: fd.FallbackHandler,
	}, nil
}
