// Package snapshot renders token sets as indented JSON mirroring the wallet's
// UnifiedToken serde shape. Useful for golden-file tooling and for diffing
// generator output without parsing Rust.
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spikeyrock/tokengen/pkg/registry"
	"github.com/spikeyrock/tokengen/pkg/render"
)

// Name is the registry selector for this renderer.
const Name = "json"

type tokenPayload struct {
	BaseSymbol   string              `json:"base_symbol"`
	Name         string              `json:"name"`
	Logo         string              `json:"logo"`
	CMCID        *int                `json:"cmc_id"`
	CoingeckoID  *string             `json:"coingecko_id"`
	Category     string              `json:"category"`
	IsMultiChain bool                `json:"is_multi_chain"`
	AssetType    string              `json:"asset_type"`
	Deployments  []deploymentPayload `json:"deployments"`
}

type deploymentPayload struct {
	Chain           string `json:"chain"`
	ChainType       string `json:"chain_type"`
	ChainID         *int   `json:"chain_id"`
	ContractAddress string `json:"contract_address,omitempty"`
	Decimals        int    `json:"decimals"`
	Symbol          string `json:"symbol"`
	IsNative        bool   `json:"is_native"`
	TokenStandard   string `json:"token_standard"`
	ChainLogo       string `json:"chain_logo,omitempty"`
}

// Renderer serializes the set in insertion order.
type Renderer struct{}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the snapshot renderer.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "application/json"
}

func (r *Renderer) Render(ctx context.Context, set *registry.TokenSet, _ render.Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if set == nil {
		return nil, fmt.Errorf("snapshot: token set is required")
	}

	tokens := set.Tokens()
	payload := make([]tokenPayload, 0, len(tokens))
	for _, token := range tokens {
		deployments := make([]deploymentPayload, 0, len(token.Deployments))
		for _, d := range token.Deployments {
			deployments = append(deployments, deploymentPayload{
				Chain:           d.Chain,
				ChainType:       d.ChainType,
				ChainID:         d.ChainID,
				ContractAddress: d.ContractAddress,
				Decimals:        d.Decimals,
				Symbol:          d.Symbol,
				IsNative:        d.IsNative,
				TokenStandard:   d.TokenStandard,
				ChainLogo:       d.ChainLogo,
			})
		}
		payload = append(payload, tokenPayload{
			BaseSymbol:   token.BaseSymbol,
			Name:         token.Name,
			Logo:         token.LogoURL(),
			CMCID:        token.CMCID,
			CoingeckoID:  nil,
			Category:     token.Category,
			IsMultiChain: false,
			AssetType:    string(registry.AssetTypeToken),
			Deployments:  deployments,
		})
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("snapshot: marshal token set: %w", err)
	}
	return data, nil
}
