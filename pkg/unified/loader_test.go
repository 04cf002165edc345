package unified_test

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/spikeyrock/tokengen/pkg/registry"
	"github.com/spikeyrock/tokengen/pkg/unified"
)

func loadTestDocument(t *testing.T) *unified.Document {
	t.Helper()
	doc, err := unified.Load(unified.SourceFromFile(filepath.Join("testdata", "registry.yaml")))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	return doc
}

func TestLoadParsesDocument(t *testing.T) {
	doc := loadTestDocument(t)

	if len(doc.Tokens) != 3 {
		t.Fatalf("expected 3 tokens in the document, got %d", len(doc.Tokens))
	}
	if doc.Tokens[0].Symbol != "LDO" || doc.Tokens[2].Symbol != "USDT" {
		t.Fatalf("unexpected document order: %q .. %q", doc.Tokens[0].Symbol, doc.Tokens[2].Symbol)
	}
	if doc.Tokens[0].CMCID == nil || *doc.Tokens[0].CMCID != 8000 {
		t.Fatalf("unexpected cmc id %v", doc.Tokens[0].CMCID)
	}
}

func TestTokenSetFiltersUnsupportedChains(t *testing.T) {
	doc := loadTestDocument(t)

	set, err := doc.TokenSet(registry.ChainSupported)
	if err != nil {
		t.Fatalf("extraction failed: %v", err)
	}

	// ARB only deploys on Arbitrum, which the wallet does not support, so the
	// token disappears. USDT keeps its Ethereum deployment and loses Polygon.
	want := []string{"LDO", "USDT"}
	if diff := cmp.Diff(want, set.Symbols()); diff != "" {
		t.Fatalf("extracted symbols mismatch (-want +got):\n%s", diff)
	}

	usdt, ok := set.Get("USDT")
	if !ok {
		t.Fatal("USDT missing from extracted set")
	}
	if len(usdt.Deployments) != 1 {
		t.Fatalf("expected one surviving deployment, got %d", len(usdt.Deployments))
	}
	if usdt.Deployments[0].Chain != "Ethereum" {
		t.Fatalf("wrong deployment survived: %q", usdt.Deployments[0].Chain)
	}
	if usdt.Deployments[0].Decimals != 6 {
		t.Fatalf("explicit decimals lost, got %d", usdt.Deployments[0].Decimals)
	}
	if usdt.Deployments[0].ChainLogo == "" {
		t.Fatal("ethereum deployment should carry the chain logo")
	}
}

func TestTokenSetDefaults(t *testing.T) {
	doc, err := unified.Parse([]byte(`
tokens:
  - symbol: LDO
    name: Lido DAO
    deployments:
      - chain: Ethereum
        chain_type: Ethereum
        chain_id: 1
        contract_address: "0x5A98FcBEA516Cf06857215779Fd812CA3beF1B32"
        token_standard: ERC-20
`))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	set, err := doc.TokenSet(nil)
	if err != nil {
		t.Fatalf("extraction failed: %v", err)
	}

	token, ok := set.Get("LDO")
	if !ok {
		t.Fatal("LDO missing")
	}
	d := token.Deployments[0]
	if d.Decimals != 18 {
		t.Fatalf("omitted decimals should default to 18, got %d", d.Decimals)
	}
	if d.Symbol != "LDO" {
		t.Fatalf("omitted deployment symbol should inherit the token symbol, got %q", d.Symbol)
	}
	if token.CMCID != nil {
		t.Fatal("omitted cmc id must stay nil")
	}
}

func TestParseAcceptsJSON(t *testing.T) {
	doc, err := unified.Parse([]byte(`{"tokens":[{"symbol":"LDO","name":"Lido DAO","deployments":[{"chain":"Ethereum"}]}]}`))
	if err != nil {
		t.Fatalf("JSON document rejected: %v", err)
	}
	if len(doc.Tokens) != 1 || doc.Tokens[0].Symbol != "LDO" {
		t.Fatalf("unexpected document %+v", doc)
	}
}

func TestTokenSetRejectsDuplicateSymbols(t *testing.T) {
	doc, err := unified.Parse([]byte(`
tokens:
  - symbol: LDO
    name: Lido DAO
    deployments:
      - chain: Ethereum
  - symbol: LDO
    name: Lido DAO again
    deployments:
      - chain: Ethereum
`))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if _, err := doc.TokenSet(nil); err == nil {
		t.Fatal("expected duplicate symbol error")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := unified.Load(unified.SourceFromFile(filepath.Join("testdata", "absent.yaml"))); err == nil {
		t.Fatal("expected error for missing file")
	}
}
