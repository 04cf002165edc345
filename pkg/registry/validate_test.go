package registry_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/spikeyrock/tokengen/pkg/registry"
)

func TestTokenSpecValidate(t *testing.T) {
	id := 8000
	valid := registry.TokenSpec{
		Symbol:          "LDO",
		Name:            "Lido DAO",
		CMCID:           &id,
		Category:        "DeFi",
		EthereumAddress: "0x5A98FcBEA516Cf06857215779Fd812CA3beF1B32",
	}

	tests := []struct {
		name      string
		mutate    func(*registry.TokenSpec)
		wantField string
	}{
		{name: "valid", mutate: func(*registry.TokenSpec) {}},
		{
			name:      "empty symbol",
			mutate:    func(s *registry.TokenSpec) { s.Symbol = "" },
			wantField: "symbol",
		},
		{
			name:      "empty name",
			mutate:    func(s *registry.TokenSpec) { s.Name = "" },
			wantField: "name",
		},
		{
			name:      "address missing prefix",
			mutate:    func(s *registry.TokenSpec) { s.EthereumAddress = "5A98FcBEA516Cf06857215779Fd812CA3beF1B32ab" },
			wantField: "ethereum_address",
		},
		{
			name:      "address too short",
			mutate:    func(s *registry.TokenSpec) { s.EthereumAddress = "0x5A98" },
			wantField: "ethereum_address",
		},
		{
			name:      "address with non-hex digits",
			mutate:    func(s *registry.TokenSpec) { s.EthereumAddress = "0x5A98FcBEA516Cf06857215779Fd812CA3beF1BZZ" },
			wantField: "ethereum_address",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			spec := valid
			tc.mutate(&spec)

			err := spec.Validate()
			if tc.wantField == "" {
				if err != nil {
					t.Fatalf("expected valid spec, got %v", err)
				}
				return
			}

			var verr *registry.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T (%v)", err, err)
			}
			if verr.Field != tc.wantField {
				t.Fatalf("expected field %q, got %q", tc.wantField, verr.Field)
			}
		})
	}
}

func TestTokenValidateDeployments(t *testing.T) {
	chainID := 1
	base := registry.Token{
		BaseSymbol: "LDO",
		Name:       "Lido DAO",
		Deployments: []registry.Deployment{
			{
				Chain:           "Ethereum",
				ChainType:       "Ethereum",
				ChainID:         &chainID,
				ContractAddress: "0x5A98FcBEA516Cf06857215779Fd812CA3beF1B32",
				Decimals:        18,
				Symbol:          "LDO",
				TokenStandard:   "ERC-20",
			},
		},
	}

	if err := base.Validate(); err != nil {
		t.Fatalf("expected valid token, got %v", err)
	}

	noDeployments := base
	noDeployments.Deployments = nil
	if err := noDeployments.Validate(); err == nil {
		t.Fatal("expected error for token without deployments")
	}

	badAddress := base
	badAddress.Deployments = []registry.Deployment{base.Deployments[0]}
	badAddress.Deployments[0].ContractAddress = "not-an-address"
	err := badAddress.Validate()
	if err == nil {
		t.Fatal("expected error for malformed contract address")
	}
	if !strings.Contains(err.Error(), "LDO") || !strings.Contains(err.Error(), "contract_address") {
		t.Fatalf("error should name the token and field, got %q", err.Error())
	}

	badDecimals := base
	badDecimals.Deployments = []registry.Deployment{base.Deployments[0]}
	badDecimals.Deployments[0].Decimals = 300
	if err := badDecimals.Validate(); err == nil {
		t.Fatal("expected error for decimals outside 0..255")
	}
}

func TestValidateSetStopsAtFirstFailure(t *testing.T) {
	set := registry.NewTokenSet()
	if err := set.Add(registry.Token{BaseSymbol: "BAD", Name: ""}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	err := registry.ValidateSet(set)
	var verr *registry.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T (%v)", err, err)
	}
	if verr.Symbol != "BAD" || verr.Field != "name" {
		t.Fatalf("unexpected validation error %+v", verr)
	}
}

func TestValidEVMAddress(t *testing.T) {
	if !registry.ValidEVMAddress("0x3c3a81e81dc49A522A592e7622A7E711c06bf354") {
		t.Fatal("well-formed address rejected")
	}
	if registry.ValidEVMAddress("0x3c3a81e81dc49A522A592e7622A7E711c06bf3541") {
		t.Fatal("41-digit address accepted")
	}
	if registry.ValidEVMAddress("") {
		t.Fatal("empty address accepted")
	}
}
