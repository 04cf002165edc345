// Package tokengen generates token-registry source snippets for the
// multichain wallet. The root package re-exports the common entry points so
// callers can render the curated table with a single call.
package tokengen

import (
	"context"

	"github.com/spikeyrock/tokengen/pkg/generator"
	"github.com/spikeyrock/tokengen/pkg/registry"
	"github.com/spikeyrock/tokengen/pkg/render"
	"github.com/spikeyrock/tokengen/pkg/unified"
)

// Options describes per-request rendering overrides; alias exported via the
// root package for convenience.
type Options = render.Options

// Request mirrors generator.Request for callers using the facade.
type Request = generator.Request

// NewGenerator exposes the generator constructor from the top-level module.
func NewGenerator(options ...generator.Option) *generator.Generator {
	return generator.New(options...)
}

// GenerateRust renders the static additional-tokens table as Rust
// UnifiedToken literals. It is the simplest entry point for callers that just
// want the paste-ready snippet.
func GenerateRust(ctx context.Context, options ...generator.Option) ([]byte, error) {
	gen := generator.New(options...)
	return gen.Generate(ctx, generator.Request{})
}

// GenerateRustFromSource extracts tokens from a unified-registry document,
// filters deployments to supported chains, and renders the result as Rust
// literals.
func GenerateRustFromSource(ctx context.Context, source unified.Source, options ...generator.Option) ([]byte, error) {
	gen := generator.New(options...)
	return gen.Generate(ctx, generator.Request{Source: source})
}

// AdditionalTokens exposes the static table for callers that want to subset
// or inspect it before rendering.
func AdditionalTokens() *registry.TokenSet {
	return registry.AdditionalTokens()
}
