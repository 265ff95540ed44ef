package render

import (
	"fmt"
	"io"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
	"github.com/samber/lo"
	"github.com/trebuchet-org/safevanity/internal/domain"
	"github.com/trebuchet-org/safevanity/internal/domain/config"
	"github.com/trebuchet-org/safevanity/internal/usecase"
	"github.com/trebuchet-org/safevanity/pkg/address"
	"github.com/trebuchet-org/safevanity/pkg/safe"
)

// SafeOutput is the structured output of a Safe deployment
type SafeOutput struct {
	Chain           ChainOutput         `json:"chain" yaml:"chain"`
	CreationAddress address.Address     `json:"creationAddress" yaml:"creationAddress"`
	SaltNonce       common.Hash         `json:"saltNonce" yaml:"saltNonce"`
	Transaction     safe.Transaction    `json:"transaction" yaml:"transaction"`
	Initializer     hexutil.Bytes       `json:"initializer" yaml:"initializer"`
	Configuration   ConfigurationOutput `json:"configuration" yaml:"configuration"`
	ExplorerURL     string              `json:"explorerUrl,omitempty" yaml:"explorerUrl,omitempty"`
	Search          *SearchOutput       `json:"search,omitempty" yaml:"search,omitempty"`
}

// ChainOutput identifies the chain of a deployment
type ChainOutput struct {
	ID   domain.ChainID `json:"id" yaml:"id"`
	Name string         `json:"name,omitempty" yaml:"name,omitempty"`
}

// ConfigurationOutput echoes the Safe configuration
type ConfigurationOutput struct {
	ProxyFactory      address.Address   `json:"proxyFactory" yaml:"proxyFactory"`
	ProxyInitCodeHash common.Hash       `json:"proxyInitCodeHash" yaml:"proxyInitCodeHash"`
	Singleton         address.Address   `json:"singleton" yaml:"singleton"`
	Owners            []address.Address `json:"owners" yaml:"owners"`
	Threshold         int               `json:"threshold" yaml:"threshold"`
	FallbackHandler   *address.Address  `json:"fallbackHandler,omitempty" yaml:"fallbackHandler,omitempty"`
	SafeToL2Setup     *address.Address  `json:"safeToL2Setup,omitempty" yaml:"safeToL2Setup,omitempty"`
	L2Singleton       *address.Address  `json:"l2Singleton,omitempty" yaml:"l2Singleton,omitempty"`
	Identifier        *address.Address  `json:"identifier,omitempty" yaml:"identifier,omitempty"`
}

// SearchOutput describes the search that found a deployment
type SearchOutput struct {
	Prefix   string `json:"prefix" yaml:"prefix"`
	Attempts uint64 `json:"attempts" yaml:"attempts"`
	Workers  int    `json:"workers" yaml:"workers"`
	Elapsed  string `json:"elapsed" yaml:"elapsed"`
}

// SafeRenderer renders Safe deployments
type SafeRenderer struct {
	out    io.Writer
	format config.OutputFormat
	quiet  bool
	params bool
}

// NewSafeRenderer creates a new Safe renderer for the configured output mode
func NewSafeRenderer(out io.Writer, cfg *config.RuntimeConfig) *SafeRenderer {
	return &SafeRenderer{
		out:    out,
		format: cfg.Format,
		quiet:  cfg.Quiet,
		params: cfg.Params,
	}
}

// RenderSearch renders the result of a vanity search
func (r *SafeRenderer) RenderSearch(result *usecase.SearchVanitySafeResult) error {
	search := &SearchOutput{
		Prefix:   result.Prefix.String(),
		Attempts: result.Attempts,
		Workers:  result.Workers,
		Elapsed:  result.Elapsed.Round(time.Millisecond).String(),
	}
	return r.render(&result.SafeDeployment, search)
}

// Render renders a Safe deployment
func (r *SafeRenderer) Render(result *usecase.SafeDeployment) error {
	return r.render(result, nil)
}

func (r *SafeRenderer) render(d *usecase.SafeDeployment, search *SearchOutput) error {
	if r.format != config.FormatText {
		return writeStructured(r.out, r.format, NewSafeOutput(d, search))
	}

	tx := d.Safe.Transaction()
	switch {
	case r.quiet:
		fmt.Fprintln(r.out, tx.Calldata)
	case r.params:
		r.renderParams(d)
	default:
		r.renderText(d, search)
	}
	return nil
}

// renderText prints the deployment with its configuration and calldata
func (r *SafeRenderer) renderText(d *usecase.SafeDeployment, search *SearchOutput) {
	cfg := d.Safe.Configuration()

	r.line("address", addressStyle.Sprint(d.Safe.CreationAddress()))
	r.line("factory", cfg.Proxy.Factory.String())
	r.line("singleton", cfg.Proxy.Singleton.String())
	if cfg.Account.Setup != nil {
		r.line("l2 setup", fmt.Sprintf("%s (%s)", cfg.Account.Setup.Address, cfg.Account.Setup.L2Singleton))
	}
	if cfg.Account.FallbackHandler != nil {
		r.line("fallback", cfg.Account.FallbackHandler.String())
	}
	for i, owner := range cfg.Account.Owners {
		label := ""
		if i == 0 {
			label = "owners"
		}
		r.line(label, owner.String())
	}
	r.line("threshold", fmt.Sprintf("%d", cfg.Account.Threshold))
	if cfg.Account.Identifier != nil {
		r.line("identifier", cfg.Account.Identifier.String())
	}
	r.line("calldata", d.Safe.Transaction().Calldata.String())

	if search != nil {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Found after %s attempts on %d workers in %s",
			FormatCount(search.Attempts), search.Workers, search.Elapsed)))
	}
}

// renderParams prints the createProxyWithNonce parameters for submitting the
// deployment through a block explorer
func (r *SafeRenderer) renderParams(d *usecase.SafeDeployment) {
	cfg := d.Safe.Configuration()
	factory := cfg.Proxy.Factory.Get()

	r.line("address", addressStyle.Sprint(d.Safe.CreationAddress()))
	if d.Explorer != nil {
		r.line("factory", linkStyle.Sprint(d.Explorer.CreateProxyWithNonceURL(factory)))
	} else {
		r.line("factory", factory.String())
	}
	r.line("singleton", cfg.Proxy.Singleton.String())
	r.line("initializer", hexutil.Encode(d.Safe.Initializer()))
	r.line("salt nonce", SaltNonceDecimal(d.Safe.SaltNonce()))
}

func (r *SafeRenderer) line(label, value string) {
	if label != "" {
		label += ":"
	}
	fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprintf("%-12s", label), valueStyle.Sprint(value))
}

// SaltNonceDecimal formats a salt nonce as the decimal uint256 explorers expect
func SaltNonceDecimal(nonce [32]byte) string {
	return new(uint256.Int).SetBytes32(nonce[:]).Dec()
}

// NewSafeOutput builds the structured output of a Safe deployment
func NewSafeOutput(d *usecase.SafeDeployment, search *SearchOutput) SafeOutput {
	cfg := d.Safe.Configuration()

	out := SafeOutput{
		Chain:           ChainOutput{ID: d.Chain.ID, Name: d.Chain.Name},
		CreationAddress: d.Safe.CreationAddress(),
		SaltNonce:       common.Hash(d.Safe.SaltNonce()),
		Transaction:     d.Safe.Transaction(),
		Initializer:     d.Safe.Initializer(),
		Configuration: ConfigurationOutput{
			ProxyFactory:      cfg.Proxy.Factory.Get(),
			ProxyInitCodeHash: common.Hash(cfg.Proxy.InitCodeHash()),
			Singleton:         cfg.Proxy.Singleton.Get(),
			Owners:            address.Unwrap(cfg.Account.Owners),
			Threshold:         cfg.Account.Threshold,
			Identifier:        cfg.Account.Identifier,
		},
		Search: search,
	}
	if h := cfg.Account.FallbackHandler; h != nil {
		out.Configuration.FallbackHandler = lo.ToPtr(h.Get())
	}
	if s := cfg.Account.Setup; s != nil {
		out.Configuration.SafeToL2Setup = lo.ToPtr(s.Address.Get())
		out.Configuration.L2Singleton = lo.ToPtr(s.L2Singleton.Get())
	}
	if d.Explorer != nil {
		out.ExplorerURL = d.Explorer.CreateProxyWithNonceURL(cfg.Proxy.Factory.Get())
	}
	return out
}

var _ Renderer[*usecase.SafeDeployment] = (*SafeRenderer)(nil)
