package registry_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/spikeyrock/tokengen/pkg/registry"
)

func TestAdditionalTokensOrder(t *testing.T) {
	set := registry.AdditionalTokens()

	want := []string{"LDO", "IMX", "ENA", "ONDO", "HYPE", "MNT"}
	if diff := cmp.Diff(want, set.Symbols()); diff != "" {
		t.Fatalf("symbol order mismatch (-want +got):\n%s", diff)
	}
	if set.Len() != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), set.Len())
	}
}

func TestAdditionalTokensAreValid(t *testing.T) {
	if err := registry.ValidateSet(registry.AdditionalTokens()); err != nil {
		t.Fatalf("static table failed validation: %v", err)
	}
}

func TestTokenSpecExpand(t *testing.T) {
	id := 8000
	spec := registry.TokenSpec{
		Symbol:          "LDO",
		Name:            "Lido DAO",
		CMCID:           &id,
		Category:        "DeFi",
		EthereumAddress: "0x5A98FcBEA516Cf06857215779Fd812CA3beF1B32",
	}

	token := spec.Expand()

	if got := token.LogoURL(); got != "https://s2.coinmarketcap.com/static/img/coins/64x64/8000.png" {
		t.Fatalf("unexpected logo URL %q", got)
	}
	if len(token.Deployments) != 1 {
		t.Fatalf("expected a single deployment, got %d", len(token.Deployments))
	}

	d := token.Deployments[0]
	if d.Chain != "Ethereum" || d.ChainType != "Ethereum" {
		t.Fatalf("unexpected chain %q / chain type %q", d.Chain, d.ChainType)
	}
	if d.ChainID == nil || *d.ChainID != 1 {
		t.Fatalf("expected chain id 1, got %v", d.ChainID)
	}
	if d.Decimals != 18 {
		t.Fatalf("expected 18 decimals, got %d", d.Decimals)
	}
	if d.IsNative {
		t.Fatal("ERC-20 deployment must not be native")
	}
	if d.TokenStandard != "ERC-20" {
		t.Fatalf("expected ERC-20 standard, got %q", d.TokenStandard)
	}
	if d.ChainLogo != "https://s2.coinmarketcap.com/static/img/coins/64x64/1027.png" {
		t.Fatalf("unexpected chain logo %q", d.ChainLogo)
	}
	if d.Symbol != "LDO" {
		t.Fatalf("deployment symbol %q should match the token symbol", d.Symbol)
	}
}

func TestTokenLogoURLWithoutCMCID(t *testing.T) {
	token := registry.Token{BaseSymbol: "XYZ", Name: "Xyz"}
	if got := token.LogoURL(); got != "" {
		t.Fatalf("expected empty logo URL for missing cmc id, got %q", got)
	}
}

func TestSupportedChains(t *testing.T) {
	chains := registry.SupportedChains()
	if len(chains) != 18 {
		t.Fatalf("expected 18 supported chains, got %d", len(chains))
	}
	if chains[0].Name != "Bitcoin" || chains[len(chains)-1].Name != "Tezos" {
		t.Fatalf("unexpected chain table bounds: %q .. %q", chains[0].Name, chains[len(chains)-1].Name)
	}

	wantBitcoin := []string{"BitcoinLegacy", "BitcoinSegwit", "BitcoinTaproot"}
	if diff := cmp.Diff(wantBitcoin, chains[0].Variants); diff != "" {
		t.Fatalf("bitcoin variants mismatch (-want +got):\n%s", diff)
	}

	if !registry.ChainSupported("Ethereum") {
		t.Fatal("Ethereum must be supported")
	}
	if registry.ChainSupported("Polygon") {
		t.Fatal("Polygon is not in the supported table")
	}
}

func TestChainLogoURL(t *testing.T) {
	if got := registry.ChainLogoURL("Ethereum"); got != "https://s2.coinmarketcap.com/static/img/coins/64x64/1027.png" {
		t.Fatalf("unexpected ethereum logo %q", got)
	}
	if got := registry.ChainLogoURL("Tron"); got != "" {
		t.Fatalf("expected empty logo for chain without an id, got %q", got)
	}
}

func TestTokenSetAddRejectsDuplicates(t *testing.T) {
	set := registry.NewTokenSet()
	token := registry.Token{BaseSymbol: "LDO", Name: "Lido DAO"}

	if err := set.Add(token); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if err := set.Add(token); err == nil {
		t.Fatal("expected duplicate symbol error")
	}
}

func TestTokenSetSubset(t *testing.T) {
	set := registry.AdditionalTokens()

	subset, err := set.Subset([]string{"MNT", "LDO"})
	if err != nil {
		t.Fatalf("subset failed: %v", err)
	}

	// Subset keeps the set's order, not the argument order.
	want := []string{"LDO", "MNT"}
	if diff := cmp.Diff(want, subset.Symbols()); diff != "" {
		t.Fatalf("subset order mismatch (-want +got):\n%s", diff)
	}

	if _, err := set.Subset([]string{"DOGE"}); err == nil {
		t.Fatal("expected error for unknown symbol")
	}
}
