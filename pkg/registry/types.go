package registry

import "fmt"

// AssetType mirrors the wallet registry's asset classification enum. The
// generator only ever emits AssetTypeToken today, but the snapshot renderer
// serializes the tag so downstream tooling sees the same taxonomy as the
// wallet.
type AssetType string

const (
	AssetTypeNative     AssetType = "Native"
	AssetTypeToken      AssetType = "Token"
	AssetTypeWrapped    AssetType = "Wrapped"
	AssetTypeStablecoin AssetType = "Stablecoin"
	AssetTypeSynthetic  AssetType = "Synthetic"
)

// Deployment describes how a token exists on one particular chain: where its
// contract lives, how many decimals it uses, and which token standard it
// follows. Native deployments carry no contract address.
type Deployment struct {
	Chain           string
	ChainType       string
	ChainID         *int
	ContractAddress string
	Decimals        int
	Symbol          string
	IsNative        bool
	TokenStandard   string
	ChainLogo       string
}

// Token is the renderer-facing record. It matches the wallet's UnifiedToken
// shape field for field so rendered literals drop straight into the registry
// initializers.
type Token struct {
	BaseSymbol  string
	Name        string
	CMCID       *int
	Category    string
	Deployments []Deployment
}

// LogoURL returns the CoinMarketCap 64x64 image path for the token, or the
// empty string when no cmc id is known.
func (t Token) LogoURL() string {
	if t.CMCID == nil {
		return ""
	}
	return CMCLogoURL(*t.CMCID)
}

// TokenSpec is one entry of the curated additional-tokens table: an ERC-20
// token identified by its Ethereum contract address. Expand turns it into the
// full Token record the renderers consume.
type TokenSpec struct {
	Symbol          string
	Name            string
	CMCID           *int
	Category        string
	EthereumAddress string
}

const (
	ethereumChainID  = 1
	erc20Decimals    = 18
	erc20Standard    = "ERC-20"
	ethereumChainTag = "Ethereum"
)

// Expand builds the Token for this spec: a single Ethereum deployment with
// the fixed ERC-20 parameters (chain id 1, 18 decimals, non-native).
func (s TokenSpec) Expand() Token {
	chainID := ethereumChainID
	return Token{
		BaseSymbol: s.Symbol,
		Name:       s.Name,
		CMCID:      s.CMCID,
		Category:   s.Category,
		Deployments: []Deployment{
			{
				Chain:           ethereumChainTag,
				ChainType:       ethereumChainTag,
				ChainID:         &chainID,
				ContractAddress: s.EthereumAddress,
				Decimals:        erc20Decimals,
				Symbol:          s.Symbol,
				IsNative:        false,
				TokenStandard:   erc20Standard,
				ChainLogo:       ChainLogoURL(ethereumChainTag),
			},
		},
	}
}

const cmcImagePath = "https://s2.coinmarketcap.com/static/img/coins/64x64/%d.png"

// CMCLogoURL builds the CoinMarketCap 64x64 image URL for a cmc id.
func CMCLogoURL(id int) string {
	return fmt.Sprintf(cmcImagePath, id)
}
