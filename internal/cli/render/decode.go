package render

import (
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/trebuchet-org/safevanity/internal/domain/config"
	"github.com/trebuchet-org/safevanity/internal/usecase"
	"github.com/trebuchet-org/safevanity/pkg/address"
	"github.com/trebuchet-org/safevanity/pkg/safe"
)

// DecodeOutput is the structured output of decoded factory calldata
type DecodeOutput struct {
	Chain           ChainOutput             `json:"chain" yaml:"chain"`
	CreationAddress *address.Address        `json:"creationAddress,omitempty" yaml:"creationAddress,omitempty"`
	SaltNonce       common.Hash             `json:"saltNonce" yaml:"saltNonce"`
	SetupData       hexutil.Bytes           `json:"setupData" yaml:"setupData"`
	Deployment      *safe.DecodedDeployment `json:"deployment" yaml:"deployment"`
}

// DecodeRenderer renders decoded factory calldata
type DecodeRenderer struct {
	out    io.Writer
	format config.OutputFormat
}

// NewDecodeRenderer creates a new decode renderer
func NewDecodeRenderer(out io.Writer, format config.OutputFormat) *DecodeRenderer {
	return &DecodeRenderer{
		out:    out,
		format: format,
	}
}

// Render renders the decoded calldata
func (r *DecodeRenderer) Render(result *usecase.DecodeCalldataResult) error {
	if r.format != config.FormatText {
		return writeStructured(r.out, r.format, DecodeOutput{
			Chain:           ChainOutput{ID: result.Chain.ID, Name: result.Chain.Name},
			CreationAddress: result.Address,
			SaltNonce:       common.Hash(result.Decoded.SaltNonce),
			SetupData:       result.Decoded.SetupData,
			Deployment:      result.Decoded,
		})
	}

	d := result.Decoded
	s := &SafeRenderer{out: r.out}
	if result.Address != nil {
		s.line("address", addressStyle.Sprint(*result.Address))
	} else {
		s.line("address", labelStyle.Sprintf("unknown on %s", result.Chain.DisplayName()))
	}
	s.line("singleton", d.Singleton.String())
	s.line("salt nonce", SaltNonceDecimal(d.SaltNonce))
	for i, owner := range d.Owners {
		label := ""
		if i == 0 {
			label = "owners"
		}
		s.line(label, owner.String())
	}
	s.line("threshold", d.Threshold.String())
	if !d.SetupTo.IsZero() {
		s.line("setup", fmt.Sprintf("%s %s", d.SetupTo, hexutil.Encode(d.SetupData)))
	}
	if d.L2Singleton != nil {
		s.line("l2 singleton", d.L2Singleton.String())
	}
	if !d.FallbackHandler.IsZero() {
		s.line("fallback", d.FallbackHandler.String())
	}
	if d.Payment != nil && d.Payment.Sign() != 0 {
		s.line("payment", fmt.Sprintf("%s %s to %s", d.Payment, d.PaymentToken, d.PaymentReceiver))
	}
	return nil
}

var _ Renderer[*usecase.DecodeCalldataResult] = (*DecodeRenderer)(nil)
