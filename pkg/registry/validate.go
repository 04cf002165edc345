package registry

import (
	"fmt"
	"regexp"
)

// ValidationError identifies the token and field that failed validation so
// CLI output can point maintainers at the offending table entry.
type ValidationError struct {
	Symbol string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Symbol == "" {
		return fmt.Sprintf("registry: field %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("registry: token %q: field %s: %s", e.Symbol, e.Field, e.Reason)
}

// evmAddressPattern matches 0x followed by exactly 40 hex digits. Checksum
// casing is not enforced; the wallet treats addresses case-insensitively.
var evmAddressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// ValidEVMAddress reports whether addr is a syntactically well-formed
// Ethereum-style contract address.
func ValidEVMAddress(addr string) bool {
	return evmAddressPattern.MatchString(addr)
}

// Validate checks the table invariants: non-empty symbol and name and a
// well-formed Ethereum address.
func (s TokenSpec) Validate() error {
	if s.Symbol == "" {
		return &ValidationError{Symbol: s.Symbol, Field: "symbol", Reason: "must not be empty"}
	}
	if s.Name == "" {
		return &ValidationError{Symbol: s.Symbol, Field: "name", Reason: "must not be empty"}
	}
	if !ValidEVMAddress(s.EthereumAddress) {
		return &ValidationError{
			Symbol: s.Symbol,
			Field:  "ethereum_address",
			Reason: fmt.Sprintf("%q is not a 0x-prefixed 40-digit hex address", s.EthereumAddress),
		}
	}
	return nil
}

// Validate checks a fully expanded token, including every deployment. The
// emitter refuses to render broken literals, so any failure here aborts the
// whole run.
func (t Token) Validate() error {
	if t.BaseSymbol == "" {
		return &ValidationError{Field: "base_symbol", Reason: "must not be empty"}
	}
	if t.Name == "" {
		return &ValidationError{Symbol: t.BaseSymbol, Field: "name", Reason: "must not be empty"}
	}
	if len(t.Deployments) == 0 {
		return &ValidationError{Symbol: t.BaseSymbol, Field: "deployments", Reason: "at least one deployment is required"}
	}
	for i, d := range t.Deployments {
		if d.Chain == "" {
			return &ValidationError{
				Symbol: t.BaseSymbol,
				Field:  fmt.Sprintf("deployments[%d].chain", i),
				Reason: "must not be empty",
			}
		}
		if d.Decimals < 0 || d.Decimals > 255 {
			return &ValidationError{
				Symbol: t.BaseSymbol,
				Field:  fmt.Sprintf("deployments[%d].decimals", i),
				Reason: fmt.Sprintf("%d is outside 0..255", d.Decimals),
			}
		}
		if !d.IsNative && d.ChainType == "Ethereum" && !ValidEVMAddress(d.ContractAddress) {
			return &ValidationError{
				Symbol: t.BaseSymbol,
				Field:  fmt.Sprintf("deployments[%d].contract_address", i),
				Reason: fmt.Sprintf("%q is not a 0x-prefixed 40-digit hex address", d.ContractAddress),
			}
		}
	}
	return nil
}

// ValidateSet validates every token in set order and returns the first
// failure, leaving the set untouched.
func ValidateSet(set *TokenSet) error {
	for _, token := range set.Tokens() {
		if err := token.Validate(); err != nil {
			return err
		}
	}
	return nil
}
