package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/trebuchet-org/safevanity/internal/domain"
	"github.com/trebuchet-org/safevanity/internal/domain/config"
	"github.com/trebuchet-org/safevanity/internal/usecase"
)

// ChainsRenderer renders the chain registry
type ChainsRenderer struct {
	out    io.Writer
	format config.OutputFormat
}

// NewChainsRenderer creates a new chains renderer
func NewChainsRenderer(out io.Writer, format config.OutputFormat) *ChainsRenderer {
	return &ChainsRenderer{
		out:    out,
		format: format,
	}
}

// Render renders the list of chains
func (r *ChainsRenderer) Render(result *usecase.ListChainsResult) error {
	if r.format != config.FormatText {
		return writeStructured(r.out, r.format, result.Chains)
	}

	if len(result.Chains) == 0 {
		fmt.Fprintln(r.out, "No chains found")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateHeader = true
	t.Style().Format.Header = text.FormatDefault
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
	})

	t.AppendHeader(table.Row{
		headerStyle.Sprint("Chain ID"),
		headerStyle.Sprint("Name"),
		headerStyle.Sprint("Version"),
		headerStyle.Sprint("Singleton"),
		headerStyle.Sprint("Explorer"),
	})
	for _, chain := range result.Chains {
		t.AppendRow(chainRow(chain))
	}
	t.Render()

	return nil
}

func chainRow(chain *domain.Chain) table.Row {
	version := "-"
	if chain.Deployment != nil {
		version = chain.Deployment.Version
	}
	singleton := string(chain.Singleton)
	if chain.Unsupported {
		singleton = "unsupported"
	}
	explorer := ""
	if chain.Explorer != nil {
		explorer = chain.Explorer.URL
	}
	return table.Row{
		chain.ID.String(),
		chain.Name,
		version,
		singleton,
		linkStyle.Sprint(explorer),
	}
}

var _ Renderer[*usecase.ListChainsResult] = (*ChainsRenderer)(nil)
