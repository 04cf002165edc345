package registry

import (
	"fmt"

	"github.com/elliotchance/orderedmap/v2"
)

// TokenSet is an insertion-ordered mapping of base symbol to Token. Render
// output follows set order, so the order tokens are added in is the order
// their blocks appear in.
type TokenSet struct {
	entries *orderedmap.OrderedMap[string, Token]
}

// NewTokenSet returns an empty set.
func NewTokenSet() *TokenSet {
	return &TokenSet{entries: orderedmap.NewOrderedMap[string, Token]()}
}

// Add appends a token to the set. Duplicate base symbols are rejected so a
// registry document cannot silently shadow an earlier entry.
func (s *TokenSet) Add(token Token) error {
	if _, exists := s.entries.Get(token.BaseSymbol); exists {
		return fmt.Errorf("registry: duplicate token symbol %q", token.BaseSymbol)
	}
	s.entries.Set(token.BaseSymbol, token)
	return nil
}

// MustAdd panics on duplicate symbols. Used for the static tables where a
// duplicate is a programming error.
func (s *TokenSet) MustAdd(token Token) {
	if err := s.Add(token); err != nil {
		panic(err)
	}
}

// Get retrieves a token by base symbol.
func (s *TokenSet) Get(symbol string) (Token, bool) {
	return s.entries.Get(symbol)
}

// Len reports the number of tokens in the set.
func (s *TokenSet) Len() int {
	return s.entries.Len()
}

// Symbols returns the base symbols in insertion order.
func (s *TokenSet) Symbols() []string {
	return s.entries.Keys()
}

// Tokens returns the tokens in insertion order.
func (s *TokenSet) Tokens() []Token {
	out := make([]Token, 0, s.entries.Len())
	for el := s.entries.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value)
	}
	return out
}

// Subset returns a new set holding only the named symbols, preserving this
// set's order rather than the argument order. Unknown symbols are an error.
func (s *TokenSet) Subset(symbols []string) (*TokenSet, error) {
	keep := make(map[string]struct{}, len(symbols))
	for _, symbol := range symbols {
		if _, ok := s.entries.Get(symbol); !ok {
			return nil, fmt.Errorf("registry: unknown token symbol %q", symbol)
		}
		keep[symbol] = struct{}{}
	}

	out := NewTokenSet()
	for el := s.entries.Front(); el != nil; el = el.Next() {
		if _, ok := keep[el.Key]; ok {
			out.MustAdd(el.Value)
		}
	}
	return out, nil
}
