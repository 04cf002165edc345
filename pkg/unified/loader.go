package unified

import (
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/spikeyrock/tokengen/pkg/registry"
)

// Document is the parsed unified-registry payload. YAML and JSON are both
// accepted; JSON parses as a YAML subset.
type Document struct {
	Tokens []TokenDoc `yaml:"tokens"`
}

// TokenDoc is one token entry in the registry document.
type TokenDoc struct {
	Symbol      string          `yaml:"symbol"`
	Name        string          `yaml:"name"`
	CMCID       *int            `yaml:"cmc_id"`
	Category    string          `yaml:"category"`
	Deployments []DeploymentDoc `yaml:"deployments"`
}

// DeploymentDoc describes one chain deployment of a token. Decimals defaults
// to 18 when omitted, matching the ERC-20 convention the registry assumes.
type DeploymentDoc struct {
	Chain           string `yaml:"chain"`
	ChainType       string `yaml:"chain_type"`
	ChainID         *int   `yaml:"chain_id"`
	ContractAddress string `yaml:"contract_address"`
	Decimals        *int   `yaml:"decimals"`
	Symbol          string `yaml:"symbol"`
	IsNative        bool   `yaml:"is_native"`
	TokenStandard   string `yaml:"token_standard"`
}

// Load reads and parses the registry document behind the source.
func Load(source Source) (*Document, error) {
	if source == nil {
		return nil, fmt.Errorf("unified: source is required")
	}

	data, err := read(source)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes a YAML or JSON registry document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unified: parse registry document: %w", err)
	}
	return &doc, nil
}

func read(source Source) ([]byte, error) {
	switch src := source.(type) {
	case fileSource:
		data, err := os.ReadFile(src.path)
		if err != nil {
			return nil, fmt.Errorf("unified: read %s: %w", src.path, err)
		}
		return data, nil
	case fsSource:
		data, err := fs.ReadFile(src.fsys, src.name)
		if err != nil {
			return nil, fmt.Errorf("unified: read %s: %w", src.name, err)
		}
		return data, nil
	case urlSource:
		resp, err := http.Get(src.raw)
		if err != nil {
			return nil, fmt.Errorf("unified: fetch %s: %w", src.raw, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("unified: fetch %s: unexpected status %s", src.raw, resp.Status)
		}
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("unified: read response from %s: %w", src.raw, err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unified: unsupported source kind %q", source.Kind())
	}
}

// TokenSet extracts the document's tokens into an ordered set, keeping only
// deployments on chains the filter accepts. Tokens left with no deployments
// are dropped. Document order is preserved.
func (d *Document) TokenSet(chainSupported func(name string) bool) (*registry.TokenSet, error) {
	if chainSupported == nil {
		chainSupported = registry.ChainSupported
	}

	set := registry.NewTokenSet()
	for _, entry := range d.Tokens {
		deployments := make([]registry.Deployment, 0, len(entry.Deployments))
		for _, dep := range entry.Deployments {
			if !chainSupported(dep.Chain) {
				continue
			}
			deployments = append(deployments, dep.toDeployment(entry.Symbol))
		}
		if len(deployments) == 0 {
			continue
		}

		err := set.Add(registry.Token{
			BaseSymbol:  entry.Symbol,
			Name:        entry.Name,
			CMCID:       entry.CMCID,
			Category:    entry.Category,
			Deployments: deployments,
		})
		if err != nil {
			return nil, err
		}
	}
	return set, nil
}

func (d DeploymentDoc) toDeployment(tokenSymbol string) registry.Deployment {
	symbol := d.Symbol
	if symbol == "" {
		symbol = tokenSymbol
	}
	decimals := 18
	if d.Decimals != nil {
		decimals = *d.Decimals
	}
	return registry.Deployment{
		Chain:           d.Chain,
		ChainType:       d.ChainType,
		ChainID:         d.ChainID,
		ContractAddress: d.ContractAddress,
		Decimals:        decimals,
		Symbol:          symbol,
		IsNative:        d.IsNative,
		TokenStandard:   d.TokenStandard,
		ChainLogo:       registry.ChainLogoURL(d.Chain),
	}
}
